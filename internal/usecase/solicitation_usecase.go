package usecase

import (
	"context"
	"crypto/rand"
	"encoding/base64"
	"errors"
	"fmt"
	"strings"
	"time"

	"pulse_tracker/internal/domain/entities"
	"pulse_tracker/internal/usecase/interfaces"
)

var (
	ErrSolicitationNotFound        = errors.New("solicitation not found")
	ErrSolicitationExpired         = errors.New("solicitation expired")
	ErrSolicitationAlreadyResolved = errors.New("solicitation already resolved")
	ErrInvalidSolicitationToken    = errors.New("invalid solicitation token")
	ErrInvalidRecipientName        = errors.New("invalid recipient name")
)

const (
	defaultExpiryDays = 14

	// tokenBytes gives 256 bits of entropy; the token is the only
	// credential protecting the public submission endpoint.
	tokenBytes = 32
)

// CreateSolicitationInput carries the caller-supplied solicitation fields.
type CreateSolicitationInput struct {
	EngagementID   string
	RecipientName  string
	RecipientEmail string
	RecipientRole  string
	Message        string
	RequestedBy    string
	ExpiryDays     int
}

// ISolicitationUseCase manages feedback-request tokens.
//
// Expiry is evaluated lazily against the wall clock on every read; nothing
// sweeps stale records. Resolve is internal: it is driven by the testimonial
// submission flow, never exposed as a public mutation.

type ISolicitationUseCase interface {
	Create(ctx context.Context, in CreateSolicitationInput) (entities.Solicitation, string, error)
	GetByToken(ctx context.Context, token string) (entities.Solicitation, error)
	List(ctx context.Context, engagementID string) ([]entities.Solicitation, error)
	Resolve(ctx context.Context, token string) (entities.Solicitation, error)
}

type SolicitationUseCase struct {
	repo           interfaces.ISolicitationRepository
	engagementRepo interfaces.IEngagementRepository
	frontendURL    string
}

var _ ISolicitationUseCase = (*SolicitationUseCase)(nil)

func NewSolicitationUseCase(repo interfaces.ISolicitationRepository, engagementRepo interfaces.IEngagementRepository, frontendURL string) *SolicitationUseCase {
	return &SolicitationUseCase{
		repo:           repo,
		engagementRepo: engagementRepo,
		frontendURL:    strings.TrimRight(frontendURL, "/"),
	}
}

// Create mints a feedback-request token for one engagement and returns the
// stored record together with the public feedback URL.
func (u *SolicitationUseCase) Create(ctx context.Context, in CreateSolicitationInput) (entities.Solicitation, string, error) {
	engagementID := strings.TrimSpace(in.EngagementID)
	if engagementID == "" {
		return entities.Solicitation{}, "", ErrInvalidEngagementID
	}
	recipient := strings.TrimSpace(in.RecipientName)
	if recipient == "" {
		return entities.Solicitation{}, "", ErrInvalidRecipientName
	}

	engagement, err := u.engagementRepo.GetByID(ctx, engagementID)
	if err != nil {
		return entities.Solicitation{}, "", err
	}
	if engagement.ID == "" {
		return entities.Solicitation{}, "", ErrEngagementNotFound
	}

	token, err := generateToken()
	if err != nil {
		return entities.Solicitation{}, "", err
	}

	expiryDays := in.ExpiryDays
	if expiryDays <= 0 {
		expiryDays = defaultExpiryDays
	}

	now := time.Now().UTC()
	s := entities.Solicitation{
		Token:          token,
		EngagementID:   engagementID,
		EngagementName: engagement.Name,
		RecipientName:  recipient,
		RecipientEmail: strings.TrimSpace(in.RecipientEmail),
		RecipientRole:  strings.TrimSpace(in.RecipientRole),
		Message:        in.Message,
		RequestedBy:    strings.TrimSpace(in.RequestedBy),
		Status:         entities.SolicitationStatusPending,
		CreatedAt:      now,
		ExpiresAt:      now.Add(time.Duration(expiryDays) * 24 * time.Hour),
	}

	created, err := u.repo.Create(ctx, s)
	if err != nil {
		return entities.Solicitation{}, "", err
	}
	return created, u.FeedbackURL(created.Token), nil
}

// FeedbackURL derives the public form URL for a token.
func (u *SolicitationUseCase) FeedbackURL(token string) string {
	return fmt.Sprintf("%s/feedback.html?token=%s", u.frontendURL, token)
}

// GetByToken loads a solicitation for the public feedback form. A stale
// pending record is reported as expired without rewriting storage.
func (u *SolicitationUseCase) GetByToken(ctx context.Context, token string) (entities.Solicitation, error) {
	token = strings.TrimSpace(token)
	if token == "" {
		return entities.Solicitation{}, ErrInvalidSolicitationToken
	}

	s, err := u.repo.GetByToken(ctx, token)
	if err != nil {
		return entities.Solicitation{}, err
	}
	if s.Token == "" {
		return entities.Solicitation{}, ErrSolicitationNotFound
	}
	s.Status = s.EffectiveStatus(time.Now().UTC())
	return s, nil
}

func (u *SolicitationUseCase) List(ctx context.Context, engagementID string) ([]entities.Solicitation, error) {
	items, err := u.repo.List(ctx, strings.TrimSpace(engagementID))
	if err != nil {
		return nil, err
	}
	now := time.Now().UTC()
	for i := range items {
		items[i].Status = items[i].EffectiveStatus(now)
	}
	return items, nil
}

// Resolve consumes a token: pending -> completed, once. A token past its
// expiry is rejected regardless of its stored status.
func (u *SolicitationUseCase) Resolve(ctx context.Context, token string) (entities.Solicitation, error) {
	token = strings.TrimSpace(token)
	if token == "" {
		return entities.Solicitation{}, ErrInvalidSolicitationToken
	}

	s, err := u.repo.GetByToken(ctx, token)
	if err != nil {
		return entities.Solicitation{}, err
	}
	if s.Token == "" {
		return entities.Solicitation{}, ErrSolicitationNotFound
	}

	now := time.Now().UTC()
	if s.IsExpired(now) {
		return entities.Solicitation{}, ErrSolicitationExpired
	}
	if s.Status != entities.SolicitationStatusPending {
		return entities.Solicitation{}, ErrSolicitationAlreadyResolved
	}

	resolved, err := u.repo.Resolve(ctx, token, now)
	if err != nil {
		return entities.Solicitation{}, err
	}
	if resolved.Token == "" {
		// Another resolver won the conditional write.
		return entities.Solicitation{}, ErrSolicitationAlreadyResolved
	}
	return resolved, nil
}

func generateToken() (string, error) {
	buf := make([]byte, tokenBytes)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	return base64.RawURLEncoding.EncodeToString(buf), nil
}
