package usecase

import (
	"context"
	"errors"
	"log"
	"strings"
	"time"

	"pulse_tracker/internal/domain/entities"
	"pulse_tracker/internal/usecase/interfaces"
)

var ErrInvalidChatSpaceURL = errors.New("invalid chat space url")
var ErrChatGatewayNotConfigured = errors.New("chat gateway not configured")

const (
	chatSummaryCacheTTL = 24 * time.Hour
	chatFetchLimit      = 100
	noChatSpaceMessage  = "No chat space configured for this engagement"
)

// ChatSummaryResult is the report returned for one engagement's chat space.
type ChatSummaryResult struct {
	EngagementID string                `json:"engagementId"`
	HasChatSpace bool                  `json:"hasChatSpace"`
	ChatSpaceURL string                `json:"chatSpaceUrl,omitempty"`
	Summary      *entities.ChatSummary `json:"summary"`
	Message      string                `json:"message,omitempty"`
	CachedAt     string                `json:"cachedAt,omitempty"`
	FromCache    bool                  `json:"fromCache"`
	MessageCount int                   `json:"messageCount"`
}

// IChatSummaryUseCase produces cached digests of an engagement's chat space.

type IChatSummaryUseCase interface {
	GetSummary(ctx context.Context, engagementID string, refresh bool) (ChatSummaryResult, error)
}

type ChatSummaryUseCase struct {
	engagementRepo interfaces.IEngagementRepository
	cache          interfaces.IChatSummaryRepository
	feed           interfaces.IChatFeedGateway
	summarizer     interfaces.ISummarizerGateway
}

var _ IChatSummaryUseCase = (*ChatSummaryUseCase)(nil)

func NewChatSummaryUseCase(
	engagementRepo interfaces.IEngagementRepository,
	cache interfaces.IChatSummaryRepository,
	feed interfaces.IChatFeedGateway,
	summarizer interfaces.ISummarizerGateway,
) *ChatSummaryUseCase {
	return &ChatSummaryUseCase{engagementRepo: engagementRepo, cache: cache, feed: feed, summarizer: summarizer}
}

// GetSummary serves a cached summary younger than 24h unless refresh is
// forced, otherwise fetches the recent transcript and summarizes it.
func (u *ChatSummaryUseCase) GetSummary(ctx context.Context, engagementID string, refresh bool) (ChatSummaryResult, error) {
	engagementID = strings.TrimSpace(engagementID)
	if engagementID == "" {
		return ChatSummaryResult{}, ErrInvalidEngagementID
	}

	engagement, err := u.engagementRepo.GetByID(ctx, engagementID)
	if err != nil {
		return ChatSummaryResult{}, err
	}
	if engagement.ID == "" {
		return ChatSummaryResult{}, ErrEngagementNotFound
	}

	if engagement.ChatSpace == "" {
		return ChatSummaryResult{
			EngagementID: engagementID,
			HasChatSpace: false,
			Message:      noChatSpaceMessage,
		}, nil
	}

	spaceID := ExtractChatSpaceID(engagement.ChatSpace)
	if spaceID == "" {
		return ChatSummaryResult{}, ErrInvalidChatSpaceURL
	}

	now := time.Now().UTC()
	if !refresh {
		cached, err := u.cache.Get(ctx, engagementID)
		if err != nil {
			// Cache trouble never blocks a fresh summary.
			log.Printf("[chatsummary][usecase] cache lookup failed engagement_id=%s err=%v", engagementID, err)
		} else if cached.EngagementID != "" && now.Sub(time.Unix(cached.CachedAt, 0)) < chatSummaryCacheTTL {
			summary := cached.Summary
			return ChatSummaryResult{
				EngagementID: engagementID,
				HasChatSpace: true,
				ChatSpaceURL: engagement.ChatSpace,
				Summary:      &summary,
				CachedAt:     time.Unix(cached.CachedAt, 0).UTC().Format(time.RFC3339),
				FromCache:    true,
				MessageCount: cached.MessageCount,
			}, nil
		}
	}

	if u.feed == nil || u.summarizer == nil {
		return ChatSummaryResult{}, ErrChatGatewayNotConfigured
	}

	messages, err := u.feed.FetchMessages(ctx, spaceID, chatFetchLimit)
	if err != nil {
		return ChatSummaryResult{}, err
	}

	summary, err := u.summarizer.Summarize(ctx, messages)
	if err != nil {
		return ChatSummaryResult{}, err
	}

	cacheTime := now.Unix()
	if err := u.cache.Put(ctx, entities.CachedChatSummary{
		EngagementID: engagementID,
		Summary:      summary,
		CachedAt:     cacheTime,
		MessageCount: len(messages),
	}); err != nil {
		log.Printf("[chatsummary][usecase] cache write failed engagement_id=%s err=%v", engagementID, err)
	}

	return ChatSummaryResult{
		EngagementID: engagementID,
		HasChatSpace: true,
		ChatSpaceURL: engagement.ChatSpace,
		Summary:      &summary,
		CachedAt:     time.Unix(cacheTime, 0).UTC().Format(time.RFC3339),
		FromCache:    false,
		MessageCount: len(messages),
	}, nil
}

// ExtractChatSpaceID pulls the space id out of a Google Chat room URL
// (https://chat.google.com/room/<id>?...). Empty means unparseable.
func ExtractChatSpaceID(chatSpaceURL string) string {
	const marker = "/room/"
	idx := strings.Index(chatSpaceURL, marker)
	if idx < 0 {
		return ""
	}
	spaceID := chatSpaceURL[idx+len(marker):]
	if q := strings.IndexAny(spaceID, "?#/"); q >= 0 {
		spaceID = spaceID[:q]
	}
	return spaceID
}
