package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"pulse_tracker/internal/domain/entities"
	"pulse_tracker/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var (
	ErrEngagementNotFound      = errors.New("engagement not found")
	ErrInvalidEngagementID     = errors.New("invalid engagement id")
	ErrInvalidEngagementName   = errors.New("invalid engagement name")
	ErrInvalidEngagementStatus = errors.New("invalid engagement status")
)

const dateLayout = "2006-01-02"

// IEngagementUseCase exposes engagement lifecycle operations.
//
// The status field is deliberately unguarded: any known status may follow
// any other. The only automatic coupling is completedDate, which is stamped
// when an engagement enters a closed status and cleared when it leaves one.

type IEngagementUseCase interface {
	Create(ctx context.Context, e entities.Engagement) (entities.Engagement, error)
	Update(ctx context.Context, id string, patch entities.EngagementPatch) (entities.Engagement, error)
	GetByID(ctx context.Context, id string) (entities.Engagement, error)
	List(ctx context.Context, status entities.EngagementStatus) ([]entities.Engagement, error)
	Delete(ctx context.Context, id string) error
}

type EngagementUseCase struct {
	repo interfaces.IEngagementRepository
}

var _ IEngagementUseCase = (*EngagementUseCase)(nil)

func NewEngagementUseCase(repo interfaces.IEngagementRepository) *EngagementUseCase {
	return &EngagementUseCase{repo: repo}
}

func (u *EngagementUseCase) Create(ctx context.Context, e entities.Engagement) (entities.Engagement, error) {
	e.Name = strings.TrimSpace(e.Name)
	if e.Name == "" {
		return entities.Engagement{}, ErrInvalidEngagementName
	}
	if e.Status == "" {
		e.Status = entities.EngagementStatusDiscovery
	}
	if !e.Status.IsValid() {
		return entities.Engagement{}, ErrInvalidEngagementStatus
	}

	now := time.Now().UTC()
	e.ID = uuid.NewString()
	e.CreatedAt = now
	e.UpdatedAt = now
	if e.StartDate == "" {
		e.StartDate = now.Format(dateLayout)
	}
	// completedDate is only meaningful on a closed engagement.
	if e.Status.IsClosed() {
		if e.CompletedDate == "" {
			e.CompletedDate = now.Format(dateLayout)
		}
	} else {
		e.CompletedDate = ""
	}
	if e.Stakeholders == nil {
		e.Stakeholders = []string{}
	}
	if e.Tools == nil {
		e.Tools = []string{}
	}
	if e.Agents == nil {
		e.Agents = []string{}
	}

	return u.repo.Create(ctx, e)
}

func (u *EngagementUseCase) Update(ctx context.Context, id string, patch entities.EngagementPatch) (entities.Engagement, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Engagement{}, ErrInvalidEngagementID
	}
	if patch.Name != nil && strings.TrimSpace(*patch.Name) == "" {
		return entities.Engagement{}, ErrInvalidEngagementName
	}
	if patch.Status != nil && !patch.Status.IsValid() {
		return entities.Engagement{}, ErrInvalidEngagementStatus
	}

	existing, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Engagement{}, err
	}
	if existing.ID == "" {
		return entities.Engagement{}, ErrEngagementNotFound
	}

	if patch.Status != nil {
		wasClosed := existing.Status.IsClosed()
		willClose := patch.Status.IsClosed()
		switch {
		case willClose && !wasClosed:
			if patch.CompletedDate == nil && existing.CompletedDate == "" {
				today := time.Now().UTC().Format(dateLayout)
				patch.CompletedDate = &today
			}
		case !willClose && wasClosed:
			cleared := ""
			patch.CompletedDate = &cleared
		}
	}

	updated, err := u.repo.Update(ctx, id, patch)
	if err != nil {
		return entities.Engagement{}, err
	}
	if updated.ID == "" {
		return entities.Engagement{}, ErrEngagementNotFound
	}
	return updated, nil
}

func (u *EngagementUseCase) GetByID(ctx context.Context, id string) (entities.Engagement, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Engagement{}, ErrInvalidEngagementID
	}

	e, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Engagement{}, err
	}
	if e.ID == "" {
		return entities.Engagement{}, ErrEngagementNotFound
	}
	return e, nil
}

func (u *EngagementUseCase) List(ctx context.Context, status entities.EngagementStatus) ([]entities.Engagement, error) {
	if status != "" && !status.IsValid() {
		return nil, ErrInvalidEngagementStatus
	}
	return u.repo.List(ctx, status)
}

func (u *EngagementUseCase) Delete(ctx context.Context, id string) error {
	id = strings.TrimSpace(id)
	if id == "" {
		return ErrInvalidEngagementID
	}
	return u.repo.Delete(ctx, id)
}
