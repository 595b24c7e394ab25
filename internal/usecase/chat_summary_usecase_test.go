package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"pulse_tracker/internal/domain/entities"
	mock_interfaces "pulse_tracker/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func TestChatSummaryUseCase_GetSummary(t *testing.T) {
	engagement := entities.Engagement{
		ID:        "eng-1",
		Name:      "Rollout",
		ChatSpace: "https://chat.google.com/room/AAAAxyz?cls=1",
	}

	t.Run("invalid engagement id", func(t *testing.T) {
		uc := NewChatSummaryUseCase(nil, nil, nil, nil)
		_, err := uc.GetSummary(context.Background(), "  ", false)
		if !errors.Is(err, ErrInvalidEngagementID) {
			t.Fatalf("expected ErrInvalidEngagementID, got %v", err)
		}
	})

	t.Run("engagement not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		engagementRepo := mock_interfaces.NewMockIEngagementRepository(ctrl)
		uc := NewChatSummaryUseCase(engagementRepo, nil, nil, nil)
		engagementRepo.EXPECT().GetByID(gomock.Any(), "eng-1").Return(entities.Engagement{}, nil)

		_, err := uc.GetSummary(context.Background(), "eng-1", false)
		if !errors.Is(err, ErrEngagementNotFound) {
			t.Fatalf("expected ErrEngagementNotFound, got %v", err)
		}
	})

	t.Run("no chat space", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		engagementRepo := mock_interfaces.NewMockIEngagementRepository(ctrl)
		uc := NewChatSummaryUseCase(engagementRepo, nil, nil, nil)
		engagementRepo.EXPECT().GetByID(gomock.Any(), "eng-1").Return(entities.Engagement{ID: "eng-1"}, nil)

		res, err := uc.GetSummary(context.Background(), "eng-1", false)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.HasChatSpace || res.Message == "" || res.Summary != nil {
			t.Fatalf("unexpected result: %+v", res)
		}
	})

	t.Run("unparseable chat space url", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		engagementRepo := mock_interfaces.NewMockIEngagementRepository(ctrl)
		uc := NewChatSummaryUseCase(engagementRepo, nil, nil, nil)
		engagementRepo.EXPECT().GetByID(gomock.Any(), "eng-1").Return(entities.Engagement{
			ID:        "eng-1",
			ChatSpace: "https://chat.google.com/dm/whatever",
		}, nil)

		_, err := uc.GetSummary(context.Background(), "eng-1", false)
		if !errors.Is(err, ErrInvalidChatSpaceURL) {
			t.Fatalf("expected ErrInvalidChatSpaceURL, got %v", err)
		}
	})

	t.Run("fresh cache hit", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		engagementRepo := mock_interfaces.NewMockIEngagementRepository(ctrl)
		cache := mock_interfaces.NewMockIChatSummaryRepository(ctrl)
		uc := NewChatSummaryUseCase(engagementRepo, cache, nil, nil)

		engagementRepo.EXPECT().GetByID(gomock.Any(), "eng-1").Return(engagement, nil)
		cache.EXPECT().Get(gomock.Any(), "eng-1").Return(entities.CachedChatSummary{
			EngagementID: "eng-1",
			Summary:      entities.ChatSummary{Summary: "cached digest"},
			CachedAt:     time.Now().UTC().Add(-time.Hour).Unix(),
			MessageCount: 42,
		}, nil)

		res, err := uc.GetSummary(context.Background(), "eng-1", false)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !res.FromCache || res.Summary == nil || res.Summary.Summary != "cached digest" {
			t.Fatalf("expected cached summary, got %+v", res)
		}
		if res.MessageCount != 42 {
			t.Fatalf("expected cached message count, got %d", res.MessageCount)
		}
	})

	t.Run("stale cache refetches", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		engagementRepo := mock_interfaces.NewMockIEngagementRepository(ctrl)
		cache := mock_interfaces.NewMockIChatSummaryRepository(ctrl)
		feed := mock_interfaces.NewMockIChatFeedGateway(ctrl)
		summarizer := mock_interfaces.NewMockISummarizerGateway(ctrl)
		uc := NewChatSummaryUseCase(engagementRepo, cache, feed, summarizer)

		messages := []entities.ChatMessage{{Sender: "Dana", Text: "shipped"}}
		engagementRepo.EXPECT().GetByID(gomock.Any(), "eng-1").Return(engagement, nil)
		cache.EXPECT().Get(gomock.Any(), "eng-1").Return(entities.CachedChatSummary{
			EngagementID: "eng-1",
			CachedAt:     time.Now().UTC().Add(-25 * time.Hour).Unix(),
		}, nil)
		feed.EXPECT().FetchMessages(gomock.Any(), "AAAAxyz", 100).Return(messages, nil)
		summarizer.EXPECT().Summarize(gomock.Any(), messages).Return(entities.ChatSummary{Summary: "fresh digest"}, nil)
		cache.EXPECT().Put(gomock.Any(), gomock.Any()).Return(nil)

		res, err := uc.GetSummary(context.Background(), "eng-1", false)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.FromCache || res.Summary == nil || res.Summary.Summary != "fresh digest" {
			t.Fatalf("expected fresh summary, got %+v", res)
		}
		if res.MessageCount != 1 {
			t.Fatalf("expected message count 1, got %d", res.MessageCount)
		}
	})

	t.Run("refresh bypasses cache", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		engagementRepo := mock_interfaces.NewMockIEngagementRepository(ctrl)
		cache := mock_interfaces.NewMockIChatSummaryRepository(ctrl)
		feed := mock_interfaces.NewMockIChatFeedGateway(ctrl)
		summarizer := mock_interfaces.NewMockISummarizerGateway(ctrl)
		uc := NewChatSummaryUseCase(engagementRepo, cache, feed, summarizer)

		engagementRepo.EXPECT().GetByID(gomock.Any(), "eng-1").Return(engagement, nil)
		feed.EXPECT().FetchMessages(gomock.Any(), "AAAAxyz", 100).Return(nil, nil)
		summarizer.EXPECT().Summarize(gomock.Any(), gomock.Any()).Return(entities.ChatSummary{}, nil)
		cache.EXPECT().Put(gomock.Any(), gomock.Any()).Return(nil)

		res, err := uc.GetSummary(context.Background(), "eng-1", true)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.FromCache {
			t.Fatalf("refresh must not serve the cache: %+v", res)
		}
	})

	t.Run("cache read failure falls through", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		engagementRepo := mock_interfaces.NewMockIEngagementRepository(ctrl)
		cache := mock_interfaces.NewMockIChatSummaryRepository(ctrl)
		feed := mock_interfaces.NewMockIChatFeedGateway(ctrl)
		summarizer := mock_interfaces.NewMockISummarizerGateway(ctrl)
		uc := NewChatSummaryUseCase(engagementRepo, cache, feed, summarizer)

		engagementRepo.EXPECT().GetByID(gomock.Any(), "eng-1").Return(engagement, nil)
		cache.EXPECT().Get(gomock.Any(), "eng-1").Return(entities.CachedChatSummary{}, errors.New("ddb"))
		feed.EXPECT().FetchMessages(gomock.Any(), "AAAAxyz", 100).Return(nil, nil)
		summarizer.EXPECT().Summarize(gomock.Any(), gomock.Any()).Return(entities.ChatSummary{}, nil)
		cache.EXPECT().Put(gomock.Any(), gomock.Any()).Return(nil)

		if _, err := uc.GetSummary(context.Background(), "eng-1", false); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("gateways not configured", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		engagementRepo := mock_interfaces.NewMockIEngagementRepository(ctrl)
		cache := mock_interfaces.NewMockIChatSummaryRepository(ctrl)
		uc := NewChatSummaryUseCase(engagementRepo, cache, nil, nil)

		engagementRepo.EXPECT().GetByID(gomock.Any(), "eng-1").Return(engagement, nil)
		cache.EXPECT().Get(gomock.Any(), "eng-1").Return(entities.CachedChatSummary{}, nil)

		_, err := uc.GetSummary(context.Background(), "eng-1", false)
		if !errors.Is(err, ErrChatGatewayNotConfigured) {
			t.Fatalf("expected ErrChatGatewayNotConfigured, got %v", err)
		}
	})

	t.Run("cache write failure is not fatal", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		engagementRepo := mock_interfaces.NewMockIEngagementRepository(ctrl)
		cache := mock_interfaces.NewMockIChatSummaryRepository(ctrl)
		feed := mock_interfaces.NewMockIChatFeedGateway(ctrl)
		summarizer := mock_interfaces.NewMockISummarizerGateway(ctrl)
		uc := NewChatSummaryUseCase(engagementRepo, cache, feed, summarizer)

		engagementRepo.EXPECT().GetByID(gomock.Any(), "eng-1").Return(engagement, nil)
		feed.EXPECT().FetchMessages(gomock.Any(), "AAAAxyz", 100).Return(nil, nil)
		summarizer.EXPECT().Summarize(gomock.Any(), gomock.Any()).Return(entities.ChatSummary{Summary: "digest"}, nil)
		cache.EXPECT().Put(gomock.Any(), gomock.Any()).Return(errors.New("ddb"))

		res, err := uc.GetSummary(context.Background(), "eng-1", true)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.Summary == nil || res.Summary.Summary != "digest" {
			t.Fatalf("unexpected result: %+v", res)
		}
	})
}

func TestExtractChatSpaceID(t *testing.T) {
	cases := []struct {
		name string
		url  string
		want string
	}{
		{name: "plain", url: "https://chat.google.com/room/AAAAxyz", want: "AAAAxyz"},
		{name: "query string", url: "https://chat.google.com/room/AAAAxyz?cls=1", want: "AAAAxyz"},
		{name: "fragment", url: "https://chat.google.com/room/AAAAxyz#top", want: "AAAAxyz"},
		{name: "trailing path", url: "https://chat.google.com/room/AAAAxyz/thread/1", want: "AAAAxyz"},
		{name: "no room segment", url: "https://chat.google.com/dm/whatever", want: ""},
		{name: "empty", url: "", want: ""},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := ExtractChatSpaceID(tc.url); got != tc.want {
				t.Fatalf("expected %q, got %q", tc.want, got)
			}
		})
	}
}
