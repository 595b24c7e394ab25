package chat

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"os"
	"sort"
	"strings"
	"time"

	"pulse_tracker/internal/domain/entities"
	"pulse_tracker/internal/usecase/interfaces"
)

var ErrMissingSummarizerAPIKey = errors.New("missing SUMMARIZER_API_KEY")
var ErrSummarizerGatewayNotConfigured = errors.New("summarizer gateway not configured")

const defaultSummarizerURL = "https://api.anthropic.com/v1/messages"
const defaultSummarizerModel = "claude-3-5-haiku-latest"

const summarizerPrompt = `Summarize this team chat transcript as JSON with keys:
summary (2-3 sentences), topics (list), participants (list), sentiment
(positive|neutral|negative|mixed), keyHighlights (list), actionItems (list).
Respond with JSON only.

Transcript:
%s`

// SummarizerGateway turns a chat transcript into a structured summary by
// calling a model provider's messages API. SUMMARIZER_MOCK switches to a
// local heuristic summary so the endpoint works without an API key.
type SummarizerGateway struct {
	apiURL   string
	apiKey   string
	model    string
	client   *http.Client
	mockMode bool
}

var _ interfaces.ISummarizerGateway = (*SummarizerGateway)(nil)

func NewSummarizerGateway() (*SummarizerGateway, error) {
	if isSummarizerMockEnabled() {
		log.Printf("[chat][summarizer] mock mode enabled")
		return &SummarizerGateway{mockMode: true}, nil
	}

	apiKey := os.Getenv("SUMMARIZER_API_KEY")
	if apiKey == "" {
		log.Printf("[chat][summarizer] missing SUMMARIZER_API_KEY")
		return nil, ErrMissingSummarizerAPIKey
	}

	apiURL := os.Getenv("SUMMARIZER_API_URL")
	if apiURL == "" {
		apiURL = defaultSummarizerURL
	}
	model := os.Getenv("SUMMARIZER_MODEL")
	if model == "" {
		model = defaultSummarizerModel
	}

	return &SummarizerGateway{
		apiURL: apiURL,
		apiKey: apiKey,
		model:  model,
		client: &http.Client{Timeout: 60 * time.Second},
	}, nil
}

type summarizerRequest struct {
	Model     string           `json:"model"`
	MaxTokens int              `json:"max_tokens"`
	Messages  []summarizerTurn `json:"messages"`
}

type summarizerTurn struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type summarizerResponse struct {
	Content []struct {
		Text string `json:"text"`
	} `json:"content"`
}

func (g *SummarizerGateway) Summarize(ctx context.Context, messages []entities.ChatMessage) (entities.ChatSummary, error) {
	if g != nil && g.mockMode {
		return mockSummary(messages), nil
	}

	if g == nil || g.client == nil {
		return entities.ChatSummary{}, ErrSummarizerGatewayNotConfigured
	}

	payload, err := json.Marshal(summarizerRequest{
		Model:     g.model,
		MaxTokens: 1024,
		Messages: []summarizerTurn{
			{Role: "user", Content: fmt.Sprintf(summarizerPrompt, renderTranscript(messages))},
		},
	})
	if err != nil {
		return entities.ChatSummary{}, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, g.apiURL, bytes.NewReader(payload))
	if err != nil {
		return entities.ChatSummary{}, err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("x-api-key", g.apiKey)
	req.Header.Set("anthropic-version", "2023-06-01")

	resp, err := g.client.Do(req)
	if err != nil {
		log.Printf("[chat][summarizer] request failed err=%v", err)
		return entities.ChatSummary{}, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		log.Printf("[chat][summarizer] status=%d", resp.StatusCode)
		return entities.ChatSummary{}, fmt.Errorf("summarizer api returned status %d: %s", resp.StatusCode, strings.TrimSpace(string(body)))
	}

	var parsed summarizerResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return entities.ChatSummary{}, err
	}
	if len(parsed.Content) == 0 {
		return entities.ChatSummary{}, errors.New("summarizer returned empty content")
	}

	var summary entities.ChatSummary
	text := extractJSONObject(parsed.Content[0].Text)
	if err := json.Unmarshal([]byte(text), &summary); err != nil {
		log.Printf("[chat][summarizer] response parse failed err=%v", err)
		return entities.ChatSummary{}, err
	}
	return summary, nil
}

func renderTranscript(messages []entities.ChatMessage) string {
	var b strings.Builder
	for _, m := range messages {
		sender := m.Sender
		if sender == "" {
			sender = "unknown"
		}
		fmt.Fprintf(&b, "%s: %s\n", sender, m.Text)
	}
	return b.String()
}

// extractJSONObject trims any prose the model wraps around the JSON body.
func extractJSONObject(text string) string {
	start := strings.Index(text, "{")
	end := strings.LastIndex(text, "}")
	if start >= 0 && end > start {
		return text[start : end+1]
	}
	return text
}

func mockSummary(messages []entities.ChatMessage) entities.ChatSummary {
	seen := map[string]bool{}
	participants := []string{}
	for _, m := range messages {
		if m.Sender == "" || seen[m.Sender] {
			continue
		}
		seen[m.Sender] = true
		participants = append(participants, m.Sender)
	}
	sort.Strings(participants)

	return entities.ChatSummary{
		Summary:       fmt.Sprintf("Mock summary of %d messages from %d participants.", len(messages), len(participants)),
		Topics:        []string{"general discussion"},
		Participants:  participants,
		Sentiment:     "neutral",
		KeyHighlights: []string{},
		ActionItems:   []string{},
	}
}

func isSummarizerMockEnabled() bool {
	for _, key := range []string{"SUMMARIZER_MOCK", "CHAT_GATEWAY_MOCK"} {
		v := strings.ToLower(strings.TrimSpace(os.Getenv(key)))
		switch v {
		case "1", "true", "yes", "on", "mock":
			return true
		}
	}
	return false
}
