package entities

// ChatMessage is one message fetched from an engagement's chat space.
type ChatMessage struct {
	Sender string `json:"sender"`
	Text   string `json:"text"`
}

// ChatSummary is the structured digest produced by the summarizer.
type ChatSummary struct {
	Summary       string   `json:"summary"`
	Topics        []string `json:"topics"`
	Participants  []string `json:"participants"`
	Sentiment     string   `json:"sentiment"` // positive, neutral, negative, mixed
	KeyHighlights []string `json:"keyHighlights"`
	ActionItems   []string `json:"actionItems"`
}

// CachedChatSummary is the per-engagement cache entry.
//
// Storage model (DynamoDB):
//   - PK: engagementId
//
// CachedAt is a unix timestamp so staleness is a plain subtraction.
type CachedChatSummary struct {
	EngagementID string      `json:"engagementId"`
	Summary      ChatSummary `json:"summary"`
	CachedAt     int64       `json:"cachedAt"`
	MessageCount int         `json:"messageCount"`
}
