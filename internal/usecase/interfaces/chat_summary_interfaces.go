package interfaces

import (
	"context"
	"pulse_tracker/internal/domain/entities"
)

// IChatSummaryRepository is the per-engagement summary cache.

type IChatSummaryRepository interface {
	Get(ctx context.Context, engagementID string) (entities.CachedChatSummary, error)
	Put(ctx context.Context, s entities.CachedChatSummary) error
}

// IChatFeedGateway fetches recent messages from an engagement's chat space.
type IChatFeedGateway interface {
	FetchMessages(ctx context.Context, spaceID string, limit int) ([]entities.ChatMessage, error)
}

// ISummarizerGateway turns a message transcript into a structured summary.
//
// Implementations call an external model provider; a mock implementation is
// used in tests and when no credentials are configured.
type ISummarizerGateway interface {
	Summarize(ctx context.Context, messages []entities.ChatMessage) (entities.ChatSummary, error)
}
