package interfaces

import (
	"context"
	"pulse_tracker/internal/domain/entities"
)

// ITaskRepository abstracts DynamoDB persistence for Task.

type ITaskRepository interface {
	Create(ctx context.Context, t entities.Task) (entities.Task, error)
	GetByID(ctx context.Context, id string) (entities.Task, error)
	// List returns tasks sorted by priority rank then createdAt; an empty
	// engagementID means no filter.
	List(ctx context.Context, engagementID string) ([]entities.Task, error)
	Update(ctx context.Context, id string, patch entities.TaskPatch) (entities.Task, error)
	Delete(ctx context.Context, id string) error
}
