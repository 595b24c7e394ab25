package usecase

import (
	"context"
	"errors"
	"log"
	"strings"
	"time"

	"pulse_tracker/internal/domain/entities"
	"pulse_tracker/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var (
	ErrTestimonialNotFound    = errors.New("testimonial not found")
	ErrInvalidTestimonialID   = errors.New("invalid testimonial id")
	ErrInvalidSubmitterName   = errors.New("invalid submitter name")
	ErrInvalidTestimonialText = errors.New("invalid testimonial text")
)

// SubmitTestimonialInput carries the caller-supplied testimonial fields.
// Rating and WouldRecommend stay nil when the submitter skipped them.
type SubmitTestimonialInput struct {
	EngagementID      string
	SubmitterName     string
	SubmitterEmail    string
	SubmitterRole     string
	SubmitterTeam     string
	Rating            *int
	TestimonialText   string
	WhatWorkedWell    string
	WhatCouldImprove  string
	WouldRecommend    *bool
	SolicitationToken string
}

// ITestimonialUseCase records feedback.
//
// SubmitPublic serves the public form: with a solicitation token it performs
// the submit-and-resolve pair as one logical unit (both land or neither
// does); without one it records an ad-hoc testimonial. CreateInternal is the
// admin-side entry point.

type ITestimonialUseCase interface {
	SubmitPublic(ctx context.Context, in SubmitTestimonialInput) (entities.Testimonial, error)
	CreateInternal(ctx context.Context, in SubmitTestimonialInput) (entities.Testimonial, error)
	GetByID(ctx context.Context, id string) (entities.Testimonial, error)
	List(ctx context.Context, engagementID string) ([]entities.Testimonial, error)
	Update(ctx context.Context, id string, patch entities.TestimonialPatch) (entities.Testimonial, error)
}

type TestimonialUseCase struct {
	repo             interfaces.ITestimonialRepository
	solicitationRepo interfaces.ISolicitationRepository
	engagementRepo   interfaces.IEngagementRepository
}

var _ ITestimonialUseCase = (*TestimonialUseCase)(nil)

func NewTestimonialUseCase(repo interfaces.ITestimonialRepository, solicitationRepo interfaces.ISolicitationRepository, engagementRepo interfaces.IEngagementRepository) *TestimonialUseCase {
	return &TestimonialUseCase{repo: repo, solicitationRepo: solicitationRepo, engagementRepo: engagementRepo}
}

func (u *TestimonialUseCase) SubmitPublic(ctx context.Context, in SubmitTestimonialInput) (entities.Testimonial, error) {
	t, err := u.buildTestimonial(in)
	if err != nil {
		return entities.Testimonial{}, err
	}

	token := strings.TrimSpace(in.SolicitationToken)
	if token == "" {
		t.Source = entities.TestimonialSourceAdhoc
		return u.createUnsolicited(ctx, t)
	}

	log.Printf("[testimonial][usecase] solicited submit start token_len=%d", len(token))
	s, err := u.solicitationRepo.GetByToken(ctx, token)
	if err != nil {
		return entities.Testimonial{}, err
	}
	if s.Token == "" {
		return entities.Testimonial{}, ErrSolicitationNotFound
	}

	now := time.Now().UTC()
	if s.IsExpired(now) {
		log.Printf("[testimonial][usecase] solicitation expired engagement_id=%s", s.EngagementID)
		return entities.Testimonial{}, ErrSolicitationExpired
	}
	if s.Status != entities.SolicitationStatusPending {
		log.Printf("[testimonial][usecase] solicitation already resolved engagement_id=%s", s.EngagementID)
		return entities.Testimonial{}, ErrSolicitationAlreadyResolved
	}

	// The solicitation is authoritative for the engagement linkage.
	t.Source = entities.TestimonialSourceSolicited
	t.SolicitationToken = token
	t.EngagementID = s.EngagementID
	t.EngagementName = s.EngagementName

	created, err := u.repo.CreateSolicited(ctx, t, token, now)
	if err != nil {
		return entities.Testimonial{}, err
	}
	if created.ID == "" {
		// A concurrent submission consumed the token between our read and
		// the transactional write.
		log.Printf("[testimonial][usecase] lost resolve race engagement_id=%s", s.EngagementID)
		return entities.Testimonial{}, ErrSolicitationAlreadyResolved
	}
	log.Printf("[testimonial][usecase] solicited submit success testimonial_id=%s engagement_id=%s", created.ID, created.EngagementID)
	return created, nil
}

func (u *TestimonialUseCase) CreateInternal(ctx context.Context, in SubmitTestimonialInput) (entities.Testimonial, error) {
	t, err := u.buildTestimonial(in)
	if err != nil {
		return entities.Testimonial{}, err
	}
	t.Source = entities.TestimonialSourceInternal
	return u.createUnsolicited(ctx, t)
}

func (u *TestimonialUseCase) createUnsolicited(ctx context.Context, t entities.Testimonial) (entities.Testimonial, error) {
	// Best-effort denormalization; an unknown engagement id stays unlinked
	// rather than failing the submission.
	if t.EngagementID != "" && u.engagementRepo != nil {
		if e, err := u.engagementRepo.GetByID(ctx, t.EngagementID); err == nil && e.ID != "" {
			t.EngagementName = e.Name
		}
	}
	return u.repo.Create(ctx, t)
}

func (u *TestimonialUseCase) buildTestimonial(in SubmitTestimonialInput) (entities.Testimonial, error) {
	name := strings.TrimSpace(in.SubmitterName)
	if name == "" {
		return entities.Testimonial{}, ErrInvalidSubmitterName
	}
	text := strings.TrimSpace(in.TestimonialText)
	if text == "" {
		return entities.Testimonial{}, ErrInvalidTestimonialText
	}

	var rating *int
	if in.Rating != nil {
		clamped := entities.ClampRating(*in.Rating)
		rating = &clamped
	}

	now := time.Now().UTC()
	return entities.Testimonial{
		ID:               uuid.NewString(),
		EngagementID:     strings.TrimSpace(in.EngagementID),
		SubmitterName:    name,
		SubmitterEmail:   strings.TrimSpace(in.SubmitterEmail),
		SubmitterRole:    strings.TrimSpace(in.SubmitterRole),
		SubmitterTeam:    strings.TrimSpace(in.SubmitterTeam),
		Rating:           rating,
		TestimonialText:  text,
		WhatWorkedWell:   in.WhatWorkedWell,
		WhatCouldImprove: in.WhatCouldImprove,
		WouldRecommend:   in.WouldRecommend,
		SubmittedAt:      now,
		UpdatedAt:        now,
	}, nil
}

func (u *TestimonialUseCase) GetByID(ctx context.Context, id string) (entities.Testimonial, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Testimonial{}, ErrInvalidTestimonialID
	}

	t, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Testimonial{}, err
	}
	if t.ID == "" {
		return entities.Testimonial{}, ErrTestimonialNotFound
	}
	return t, nil
}

func (u *TestimonialUseCase) List(ctx context.Context, engagementID string) ([]entities.Testimonial, error) {
	return u.repo.List(ctx, strings.TrimSpace(engagementID))
}

// Update covers moderation only (approved/featured and text corrections);
// submissions themselves are immutable from the public surface.
func (u *TestimonialUseCase) Update(ctx context.Context, id string, patch entities.TestimonialPatch) (entities.Testimonial, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Testimonial{}, ErrInvalidTestimonialID
	}
	if patch.TestimonialText != nil && strings.TrimSpace(*patch.TestimonialText) == "" {
		return entities.Testimonial{}, ErrInvalidTestimonialText
	}
	if patch.Rating != nil {
		clamped := entities.ClampRating(*patch.Rating)
		patch.Rating = &clamped
	}

	updated, err := u.repo.Update(ctx, id, patch)
	if err != nil {
		return entities.Testimonial{}, err
	}
	if updated.ID == "" {
		return entities.Testimonial{}, ErrTestimonialNotFound
	}
	return updated, nil
}
