package interfaces

import (
	"context"
	"time"

	"pulse_tracker/internal/domain/entities"
)

// ISolicitationRepository abstracts DynamoDB persistence for Solicitation.
//
// Resolve is a conditional flip pending -> completed: when the stored status
// is no longer pending the write is rejected by the store and the zero value
// is returned, so a raced second resolver never silently wins.

type ISolicitationRepository interface {
	Create(ctx context.Context, s entities.Solicitation) (entities.Solicitation, error)
	GetByToken(ctx context.Context, token string) (entities.Solicitation, error)
	// List returns solicitations sorted by createdAt descending; an empty
	// engagementID means no filter.
	List(ctx context.Context, engagementID string) ([]entities.Solicitation, error)
	Resolve(ctx context.Context, token string, resolvedAt time.Time) (entities.Solicitation, error)
}
