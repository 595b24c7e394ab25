package interfaces

import (
	"context"
	"pulse_tracker/internal/domain/entities"
)

// IEngagementRepository abstracts DynamoDB persistence for Engagement.
//
// Conventions shared by all repositories here:
//   - lookups return the zero value (not an error) when the item is missing
//   - conditional update failures also surface as the zero value
//   - listings come back pre-sorted for display

type IEngagementRepository interface {
	Create(ctx context.Context, e entities.Engagement) (entities.Engagement, error)
	GetByID(ctx context.Context, id string) (entities.Engagement, error)
	// List returns engagements sorted by updatedAt descending; an empty
	// status means no filter.
	List(ctx context.Context, status entities.EngagementStatus) ([]entities.Engagement, error)
	// Update applies only the supplied patch fields and refreshes updatedAt.
	Update(ctx context.Context, id string, patch entities.EngagementPatch) (entities.Engagement, error)
	Delete(ctx context.Context, id string) error
}
