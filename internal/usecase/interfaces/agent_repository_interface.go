package interfaces

import (
	"context"
	"pulse_tracker/internal/domain/entities"
)

// IAgentRepository abstracts DynamoDB persistence for Agent.

type IAgentRepository interface {
	Create(ctx context.Context, a entities.Agent) (entities.Agent, error)
	GetByID(ctx context.Context, id string) (entities.Agent, error)
	// GetByName resolves the duplicate-name check; the table has no name
	// index so this is a filtered scan.
	GetByName(ctx context.Context, name string) (entities.Agent, error)
	// List returns agents sorted by name, case-insensitive.
	List(ctx context.Context) ([]entities.Agent, error)
	Update(ctx context.Context, id string, patch entities.AgentPatch) (entities.Agent, error)
	Delete(ctx context.Context, id string) error
}
