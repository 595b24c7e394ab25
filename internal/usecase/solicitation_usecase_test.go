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

func TestSolicitationUseCase_Create(t *testing.T) {
	t.Run("missing engagement id", func(t *testing.T) {
		uc := NewSolicitationUseCase(nil, nil, "http://localhost:3000")
		_, _, err := uc.Create(context.Background(), CreateSolicitationInput{RecipientName: "Dana"})
		if !errors.Is(err, ErrInvalidEngagementID) {
			t.Fatalf("expected ErrInvalidEngagementID, got %v", err)
		}
	})

	t.Run("missing recipient", func(t *testing.T) {
		uc := NewSolicitationUseCase(nil, nil, "http://localhost:3000")
		_, _, err := uc.Create(context.Background(), CreateSolicitationInput{EngagementID: "eng-1"})
		if !errors.Is(err, ErrInvalidRecipientName) {
			t.Fatalf("expected ErrInvalidRecipientName, got %v", err)
		}
	})

	t.Run("engagement not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		engagementRepo := mock_interfaces.NewMockIEngagementRepository(ctrl)
		uc := NewSolicitationUseCase(nil, engagementRepo, "http://localhost:3000")
		engagementRepo.EXPECT().GetByID(gomock.Any(), "eng-1").Return(entities.Engagement{}, nil)

		_, _, err := uc.Create(context.Background(), CreateSolicitationInput{EngagementID: "eng-1", RecipientName: "Dana"})
		if !errors.Is(err, ErrEngagementNotFound) {
			t.Fatalf("expected ErrEngagementNotFound, got %v", err)
		}
	})

	t.Run("default expiry and feedback url", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockISolicitationRepository(ctrl)
		engagementRepo := mock_interfaces.NewMockIEngagementRepository(ctrl)
		uc := NewSolicitationUseCase(repo, engagementRepo, "http://localhost:3000/")

		engagementRepo.EXPECT().GetByID(gomock.Any(), "eng-1").Return(entities.Engagement{ID: "eng-1", Name: "Rollout"}, nil)
		repo.EXPECT().Create(gomock.Any(), gomock.AssignableToTypeOf(entities.Solicitation{})).DoAndReturn(
			func(_ context.Context, s entities.Solicitation) (entities.Solicitation, error) {
				if s.Token == "" {
					t.Fatalf("expected generated token")
				}
				if s.Status != entities.SolicitationStatusPending {
					t.Fatalf("expected pending, got %s", s.Status)
				}
				if s.EngagementName != "Rollout" {
					t.Fatalf("expected denormalized engagement name, got %q", s.EngagementName)
				}
				window := s.ExpiresAt.Sub(s.CreatedAt)
				if window != 14*24*time.Hour {
					t.Fatalf("expected 14 day window, got %v", window)
				}
				return s, nil
			},
		)

		created, url, err := uc.Create(context.Background(), CreateSolicitationInput{
			EngagementID:  "eng-1",
			RecipientName: " Dana ",
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if created.RecipientName != "Dana" {
			t.Fatalf("expected trimmed recipient, got %q", created.RecipientName)
		}
		if url != "http://localhost:3000/feedback.html?token="+created.Token {
			t.Fatalf("unexpected feedback url: %s", url)
		}
	})

	t.Run("custom expiry", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockISolicitationRepository(ctrl)
		engagementRepo := mock_interfaces.NewMockIEngagementRepository(ctrl)
		uc := NewSolicitationUseCase(repo, engagementRepo, "http://localhost:3000")

		engagementRepo.EXPECT().GetByID(gomock.Any(), "eng-1").Return(entities.Engagement{ID: "eng-1"}, nil)
		repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, s entities.Solicitation) (entities.Solicitation, error) {
				if window := s.ExpiresAt.Sub(s.CreatedAt); window != 3*24*time.Hour {
					t.Fatalf("expected 3 day window, got %v", window)
				}
				return s, nil
			},
		)

		_, _, err := uc.Create(context.Background(), CreateSolicitationInput{
			EngagementID:  "eng-1",
			RecipientName: "Dana",
			ExpiryDays:    3,
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}

func TestSolicitationUseCase_TokenGeneration(t *testing.T) {
	seen := map[string]bool{}
	for i := 0; i < 50; i++ {
		token, err := generateToken()
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if token == "" || seen[token] {
			t.Fatalf("expected unique non-empty token, got %q", token)
		}
		seen[token] = true
	}
}

func TestSolicitationUseCase_GetByToken(t *testing.T) {
	t.Run("empty token", func(t *testing.T) {
		uc := NewSolicitationUseCase(nil, nil, "")
		_, err := uc.GetByToken(context.Background(), "  ")
		if !errors.Is(err, ErrInvalidSolicitationToken) {
			t.Fatalf("expected ErrInvalidSolicitationToken, got %v", err)
		}
	})

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockISolicitationRepository(ctrl)
		uc := NewSolicitationUseCase(repo, nil, "")
		repo.EXPECT().GetByToken(gomock.Any(), "tok-1").Return(entities.Solicitation{}, nil)

		_, err := uc.GetByToken(context.Background(), "tok-1")
		if !errors.Is(err, ErrSolicitationNotFound) {
			t.Fatalf("expected ErrSolicitationNotFound, got %v", err)
		}
	})

	t.Run("stale pending reads as expired", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockISolicitationRepository(ctrl)
		uc := NewSolicitationUseCase(repo, nil, "")
		repo.EXPECT().GetByToken(gomock.Any(), "tok-1").Return(entities.Solicitation{
			Token:     "tok-1",
			Status:    entities.SolicitationStatusPending,
			ExpiresAt: time.Now().UTC().Add(-time.Hour),
		}, nil)

		res, err := uc.GetByToken(context.Background(), "tok-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.Status != entities.SolicitationStatusExpired {
			t.Fatalf("expected expired, got %s", res.Status)
		}
	})

	t.Run("pending within window", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockISolicitationRepository(ctrl)
		uc := NewSolicitationUseCase(repo, nil, "")
		repo.EXPECT().GetByToken(gomock.Any(), "tok-1").Return(entities.Solicitation{
			Token:     "tok-1",
			Status:    entities.SolicitationStatusPending,
			ExpiresAt: time.Now().UTC().Add(time.Hour),
		}, nil)

		res, err := uc.GetByToken(context.Background(), "tok-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.Status != entities.SolicitationStatusPending {
			t.Fatalf("expected pending, got %s", res.Status)
		}
	})
}

func TestSolicitationUseCase_List(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	repo := mock_interfaces.NewMockISolicitationRepository(ctrl)
	uc := NewSolicitationUseCase(repo, nil, "")

	repo.EXPECT().List(gomock.Any(), "eng-1").Return([]entities.Solicitation{
		{Token: "tok-1", Status: entities.SolicitationStatusPending, ExpiresAt: time.Now().UTC().Add(-time.Minute)},
		{Token: "tok-2", Status: entities.SolicitationStatusCompleted, ExpiresAt: time.Now().UTC().Add(-time.Minute)},
	}, nil)

	res, err := uc.List(context.Background(), " eng-1 ")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res[0].Status != entities.SolicitationStatusExpired {
		t.Fatalf("expected stale pending to read expired, got %s", res[0].Status)
	}
	if res[1].Status != entities.SolicitationStatusCompleted {
		t.Fatalf("completed must stay completed, got %s", res[1].Status)
	}
}

func TestSolicitationUseCase_Resolve(t *testing.T) {
	t.Run("empty token", func(t *testing.T) {
		uc := NewSolicitationUseCase(nil, nil, "")
		_, err := uc.Resolve(context.Background(), "")
		if !errors.Is(err, ErrInvalidSolicitationToken) {
			t.Fatalf("expected ErrInvalidSolicitationToken, got %v", err)
		}
	})

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockISolicitationRepository(ctrl)
		uc := NewSolicitationUseCase(repo, nil, "")
		repo.EXPECT().GetByToken(gomock.Any(), "tok-1").Return(entities.Solicitation{}, nil)

		_, err := uc.Resolve(context.Background(), "tok-1")
		if !errors.Is(err, ErrSolicitationNotFound) {
			t.Fatalf("expected ErrSolicitationNotFound, got %v", err)
		}
	})

	t.Run("expired", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockISolicitationRepository(ctrl)
		uc := NewSolicitationUseCase(repo, nil, "")
		repo.EXPECT().GetByToken(gomock.Any(), "tok-1").Return(entities.Solicitation{
			Token:     "tok-1",
			Status:    entities.SolicitationStatusPending,
			ExpiresAt: time.Now().UTC().Add(-time.Hour),
		}, nil)

		_, err := uc.Resolve(context.Background(), "tok-1")
		if !errors.Is(err, ErrSolicitationExpired) {
			t.Fatalf("expected ErrSolicitationExpired, got %v", err)
		}
	})

	t.Run("already resolved", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockISolicitationRepository(ctrl)
		uc := NewSolicitationUseCase(repo, nil, "")
		repo.EXPECT().GetByToken(gomock.Any(), "tok-1").Return(entities.Solicitation{
			Token:     "tok-1",
			Status:    entities.SolicitationStatusCompleted,
			ExpiresAt: time.Now().UTC().Add(time.Hour),
		}, nil)

		_, err := uc.Resolve(context.Background(), "tok-1")
		if !errors.Is(err, ErrSolicitationAlreadyResolved) {
			t.Fatalf("expected ErrSolicitationAlreadyResolved, got %v", err)
		}
	})

	t.Run("lost conditional write", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockISolicitationRepository(ctrl)
		uc := NewSolicitationUseCase(repo, nil, "")
		repo.EXPECT().GetByToken(gomock.Any(), "tok-1").Return(entities.Solicitation{
			Token:     "tok-1",
			Status:    entities.SolicitationStatusPending,
			ExpiresAt: time.Now().UTC().Add(time.Hour),
		}, nil)
		repo.EXPECT().Resolve(gomock.Any(), "tok-1", gomock.Any()).Return(entities.Solicitation{}, nil)

		_, err := uc.Resolve(context.Background(), "tok-1")
		if !errors.Is(err, ErrSolicitationAlreadyResolved) {
			t.Fatalf("expected ErrSolicitationAlreadyResolved, got %v", err)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockISolicitationRepository(ctrl)
		uc := NewSolicitationUseCase(repo, nil, "")
		repo.EXPECT().GetByToken(gomock.Any(), "tok-1").Return(entities.Solicitation{
			Token:     "tok-1",
			Status:    entities.SolicitationStatusPending,
			ExpiresAt: time.Now().UTC().Add(time.Hour),
		}, nil)
		repo.EXPECT().Resolve(gomock.Any(), "tok-1", gomock.Any()).DoAndReturn(
			func(_ context.Context, token string, resolvedAt time.Time) (entities.Solicitation, error) {
				return entities.Solicitation{
					Token:      token,
					Status:     entities.SolicitationStatusCompleted,
					ResolvedAt: &resolvedAt,
				}, nil
			},
		)

		res, err := uc.Resolve(context.Background(), " tok-1 ")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.Status != entities.SolicitationStatusCompleted || res.ResolvedAt == nil {
			t.Fatalf("unexpected result: %+v", res)
		}
	})
}
