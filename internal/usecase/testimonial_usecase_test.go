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

func TestTestimonialUseCase_SubmitPublic_Adhoc(t *testing.T) {
	t.Run("missing submitter", func(t *testing.T) {
		uc := NewTestimonialUseCase(nil, nil, nil)
		_, err := uc.SubmitPublic(context.Background(), SubmitTestimonialInput{TestimonialText: "great"})
		if !errors.Is(err, ErrInvalidSubmitterName) {
			t.Fatalf("expected ErrInvalidSubmitterName, got %v", err)
		}
	})

	t.Run("missing text", func(t *testing.T) {
		uc := NewTestimonialUseCase(nil, nil, nil)
		_, err := uc.SubmitPublic(context.Background(), SubmitTestimonialInput{SubmitterName: "Dana", TestimonialText: "  "})
		if !errors.Is(err, ErrInvalidTestimonialText) {
			t.Fatalf("expected ErrInvalidTestimonialText, got %v", err)
		}
	})

	t.Run("without token records adhoc", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockITestimonialRepository(ctrl)
		engagementRepo := mock_interfaces.NewMockIEngagementRepository(ctrl)
		uc := NewTestimonialUseCase(repo, nil, engagementRepo)

		engagementRepo.EXPECT().GetByID(gomock.Any(), "eng-1").Return(entities.Engagement{ID: "eng-1", Name: "Rollout"}, nil)
		repo.EXPECT().Create(gomock.Any(), gomock.AssignableToTypeOf(entities.Testimonial{})).DoAndReturn(
			func(_ context.Context, tm entities.Testimonial) (entities.Testimonial, error) {
				if tm.Source != entities.TestimonialSourceAdhoc {
					t.Fatalf("expected adhoc source, got %s", tm.Source)
				}
				if tm.EngagementName != "Rollout" {
					t.Fatalf("expected denormalized engagement name, got %q", tm.EngagementName)
				}
				if tm.ID == "" || tm.SubmittedAt.IsZero() {
					t.Fatalf("expected id and timestamps: %+v", tm)
				}
				return tm, nil
			},
		)

		res, err := uc.SubmitPublic(context.Background(), SubmitTestimonialInput{
			EngagementID:    "eng-1",
			SubmitterName:   " Dana ",
			TestimonialText: " great work ",
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.SubmitterName != "Dana" || res.TestimonialText != "great work" {
			t.Fatalf("expected trimmed fields: %+v", res)
		}
	})

	t.Run("unknown engagement stays unlinked", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockITestimonialRepository(ctrl)
		engagementRepo := mock_interfaces.NewMockIEngagementRepository(ctrl)
		uc := NewTestimonialUseCase(repo, nil, engagementRepo)

		engagementRepo.EXPECT().GetByID(gomock.Any(), "ghost").Return(entities.Engagement{}, nil)
		repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, tm entities.Testimonial) (entities.Testimonial, error) {
				if tm.EngagementName != "" {
					t.Fatalf("expected no engagement name, got %q", tm.EngagementName)
				}
				return tm, nil
			},
		)

		_, err := uc.SubmitPublic(context.Background(), SubmitTestimonialInput{
			EngagementID:    "ghost",
			SubmitterName:   "Dana",
			TestimonialText: "great",
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("rating clamped", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockITestimonialRepository(ctrl)
		uc := NewTestimonialUseCase(repo, nil, nil)

		repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, tm entities.Testimonial) (entities.Testimonial, error) {
				if tm.Rating == nil || *tm.Rating != 5 {
					t.Fatalf("expected rating clamped to 5, got %+v", tm.Rating)
				}
				return tm, nil
			},
		)

		rating := 11
		_, err := uc.SubmitPublic(context.Background(), SubmitTestimonialInput{
			SubmitterName:   "Dana",
			TestimonialText: "great",
			Rating:          &rating,
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}

func TestTestimonialUseCase_SubmitPublic_Solicited(t *testing.T) {
	pending := func() entities.Solicitation {
		return entities.Solicitation{
			Token:          "tok-1",
			EngagementID:   "eng-1",
			EngagementName: "Rollout",
			Status:         entities.SolicitationStatusPending,
			ExpiresAt:      time.Now().UTC().Add(time.Hour),
		}
	}
	input := SubmitTestimonialInput{
		SubmitterName:     "Dana",
		TestimonialText:   "great",
		SolicitationToken: "tok-1",
	}

	t.Run("token not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockITestimonialRepository(ctrl)
		solicitationRepo := mock_interfaces.NewMockISolicitationRepository(ctrl)
		uc := NewTestimonialUseCase(repo, solicitationRepo, nil)
		solicitationRepo.EXPECT().GetByToken(gomock.Any(), "tok-1").Return(entities.Solicitation{}, nil)

		_, err := uc.SubmitPublic(context.Background(), input)
		if !errors.Is(err, ErrSolicitationNotFound) {
			t.Fatalf("expected ErrSolicitationNotFound, got %v", err)
		}
	})

	t.Run("token expired", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockITestimonialRepository(ctrl)
		solicitationRepo := mock_interfaces.NewMockISolicitationRepository(ctrl)
		uc := NewTestimonialUseCase(repo, solicitationRepo, nil)

		s := pending()
		s.ExpiresAt = time.Now().UTC().Add(-time.Hour)
		solicitationRepo.EXPECT().GetByToken(gomock.Any(), "tok-1").Return(s, nil)

		_, err := uc.SubmitPublic(context.Background(), input)
		if !errors.Is(err, ErrSolicitationExpired) {
			t.Fatalf("expected ErrSolicitationExpired, got %v", err)
		}
	})

	t.Run("token already resolved", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockITestimonialRepository(ctrl)
		solicitationRepo := mock_interfaces.NewMockISolicitationRepository(ctrl)
		uc := NewTestimonialUseCase(repo, solicitationRepo, nil)

		s := pending()
		s.Status = entities.SolicitationStatusCompleted
		solicitationRepo.EXPECT().GetByToken(gomock.Any(), "tok-1").Return(s, nil)

		_, err := uc.SubmitPublic(context.Background(), input)
		if !errors.Is(err, ErrSolicitationAlreadyResolved) {
			t.Fatalf("expected ErrSolicitationAlreadyResolved, got %v", err)
		}
	})

	t.Run("solicitation drives the linkage", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockITestimonialRepository(ctrl)
		solicitationRepo := mock_interfaces.NewMockISolicitationRepository(ctrl)
		uc := NewTestimonialUseCase(repo, solicitationRepo, nil)

		solicitationRepo.EXPECT().GetByToken(gomock.Any(), "tok-1").Return(pending(), nil)
		repo.EXPECT().CreateSolicited(gomock.Any(), gomock.Any(), "tok-1", gomock.Any()).DoAndReturn(
			func(_ context.Context, tm entities.Testimonial, token string, _ time.Time) (entities.Testimonial, error) {
				if tm.Source != entities.TestimonialSourceSolicited {
					t.Fatalf("expected solicited source, got %s", tm.Source)
				}
				if tm.EngagementID != "eng-1" || tm.EngagementName != "Rollout" {
					t.Fatalf("solicitation must drive engagement linkage: %+v", tm)
				}
				if tm.SolicitationToken != token {
					t.Fatalf("expected token on record, got %q", tm.SolicitationToken)
				}
				return tm, nil
			},
		)

		in := input
		in.EngagementID = "attacker-supplied"
		res, err := uc.SubmitPublic(context.Background(), in)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.EngagementID != "eng-1" {
			t.Fatalf("expected solicitation engagement, got %q", res.EngagementID)
		}
	})

	t.Run("lost transactional race", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockITestimonialRepository(ctrl)
		solicitationRepo := mock_interfaces.NewMockISolicitationRepository(ctrl)
		uc := NewTestimonialUseCase(repo, solicitationRepo, nil)

		solicitationRepo.EXPECT().GetByToken(gomock.Any(), "tok-1").Return(pending(), nil)
		repo.EXPECT().CreateSolicited(gomock.Any(), gomock.Any(), "tok-1", gomock.Any()).Return(entities.Testimonial{}, nil)

		_, err := uc.SubmitPublic(context.Background(), input)
		if !errors.Is(err, ErrSolicitationAlreadyResolved) {
			t.Fatalf("expected ErrSolicitationAlreadyResolved, got %v", err)
		}
	})
}

func TestTestimonialUseCase_CreateInternal(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	repo := mock_interfaces.NewMockITestimonialRepository(ctrl)
	uc := NewTestimonialUseCase(repo, nil, nil)

	repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, tm entities.Testimonial) (entities.Testimonial, error) {
			if tm.Source != entities.TestimonialSourceInternal {
				t.Fatalf("expected internal source, got %s", tm.Source)
			}
			return tm, nil
		},
	)

	_, err := uc.CreateInternal(context.Background(), SubmitTestimonialInput{
		SubmitterName:   "Dana",
		TestimonialText: "great",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestTestimonialUseCase_GetByID(t *testing.T) {
	t.Run("invalid id", func(t *testing.T) {
		uc := NewTestimonialUseCase(nil, nil, nil)
		_, err := uc.GetByID(context.Background(), " ")
		if !errors.Is(err, ErrInvalidTestimonialID) {
			t.Fatalf("expected ErrInvalidTestimonialID, got %v", err)
		}
	})

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockITestimonialRepository(ctrl)
		uc := NewTestimonialUseCase(repo, nil, nil)
		repo.EXPECT().GetByID(gomock.Any(), "id-1").Return(entities.Testimonial{}, nil)

		_, err := uc.GetByID(context.Background(), "id-1")
		if !errors.Is(err, ErrTestimonialNotFound) {
			t.Fatalf("expected ErrTestimonialNotFound, got %v", err)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockITestimonialRepository(ctrl)
		uc := NewTestimonialUseCase(repo, nil, nil)
		repo.EXPECT().GetByID(gomock.Any(), "id-1").Return(entities.Testimonial{ID: "id-1"}, nil)

		res, err := uc.GetByID(context.Background(), " id-1 ")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.ID != "id-1" {
			t.Fatalf("unexpected result: %+v", res)
		}
	})
}

func TestTestimonialUseCase_Update(t *testing.T) {
	t.Run("blank text patch", func(t *testing.T) {
		uc := NewTestimonialUseCase(nil, nil, nil)
		blank := "  "
		_, err := uc.Update(context.Background(), "id-1", entities.TestimonialPatch{TestimonialText: &blank})
		if !errors.Is(err, ErrInvalidTestimonialText) {
			t.Fatalf("expected ErrInvalidTestimonialText, got %v", err)
		}
	})

	t.Run("rating clamped", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockITestimonialRepository(ctrl)
		uc := NewTestimonialUseCase(repo, nil, nil)

		repo.EXPECT().Update(gomock.Any(), "id-1", gomock.Any()).DoAndReturn(
			func(_ context.Context, id string, patch entities.TestimonialPatch) (entities.Testimonial, error) {
				if patch.Rating == nil || *patch.Rating != 1 {
					t.Fatalf("expected rating clamped to 1, got %+v", patch.Rating)
				}
				return entities.Testimonial{ID: id}, nil
			},
		)

		rating := -3
		_, err := uc.Update(context.Background(), "id-1", entities.TestimonialPatch{Rating: &rating})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockITestimonialRepository(ctrl)
		uc := NewTestimonialUseCase(repo, nil, nil)
		repo.EXPECT().Update(gomock.Any(), "id-1", gomock.Any()).Return(entities.Testimonial{}, nil)

		_, err := uc.Update(context.Background(), "id-1", entities.TestimonialPatch{})
		if !errors.Is(err, ErrTestimonialNotFound) {
			t.Fatalf("expected ErrTestimonialNotFound, got %v", err)
		}
	})
}
