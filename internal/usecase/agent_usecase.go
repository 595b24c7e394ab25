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
	ErrAgentNotFound     = errors.New("agent not found")
	ErrInvalidAgentID    = errors.New("invalid agent id")
	ErrInvalidAgentName  = errors.New("invalid agent name")
	ErrAgentNameConflict = errors.New("agent name already exists")
)

// CreateAgentInput carries the caller-supplied agent fields.
type CreateAgentInput struct {
	Name         string
	Description  string
	Type         string
	Platform     string
	Capabilities []string
	Status       entities.AgentStatus
}

// IAgentUseCase manages the agent registry. Engagements reference agents by
// name through their agents list, so names are unique.

type IAgentUseCase interface {
	Create(ctx context.Context, in CreateAgentInput) (entities.Agent, error)
	GetByID(ctx context.Context, id string) (entities.Agent, error)
	List(ctx context.Context, includeEngagements bool) ([]entities.Agent, error)
	Update(ctx context.Context, id string, patch entities.AgentPatch) (entities.Agent, error)
	Delete(ctx context.Context, id string) error
}

type AgentUseCase struct {
	repo           interfaces.IAgentRepository
	engagementRepo interfaces.IEngagementRepository
}

var _ IAgentUseCase = (*AgentUseCase)(nil)

func NewAgentUseCase(repo interfaces.IAgentRepository, engagementRepo interfaces.IEngagementRepository) *AgentUseCase {
	return &AgentUseCase{repo: repo, engagementRepo: engagementRepo}
}

func (u *AgentUseCase) Create(ctx context.Context, in CreateAgentInput) (entities.Agent, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return entities.Agent{}, ErrInvalidAgentName
	}

	existing, err := u.repo.GetByName(ctx, name)
	if err != nil {
		return entities.Agent{}, err
	}
	if existing.ID != "" {
		return entities.Agent{}, ErrAgentNameConflict
	}

	agentType := in.Type
	if agentType == "" {
		agentType = "assistant"
	}
	platform := in.Platform
	if platform == "" {
		platform = "braintrust"
	}
	status := in.Status
	if status == "" {
		status = entities.AgentStatusActive
	}
	capabilities := in.Capabilities
	if capabilities == nil {
		capabilities = []string{}
	}

	now := time.Now().UTC()
	a := entities.Agent{
		ID:           uuid.NewString(),
		Name:         name,
		Description:  in.Description,
		Type:         agentType,
		Platform:     platform,
		Capabilities: capabilities,
		Status:       status,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	return u.repo.Create(ctx, a)
}

// GetByID loads an agent with the engagements currently deploying it.
func (u *AgentUseCase) GetByID(ctx context.Context, id string) (entities.Agent, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Agent{}, ErrInvalidAgentID
	}

	a, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Agent{}, err
	}
	if a.ID == "" {
		return entities.Agent{}, ErrAgentNotFound
	}

	engagements, err := u.engagementRepo.List(ctx, "")
	if err != nil {
		return entities.Agent{}, err
	}
	a.Engagements = engagementRefsFor(a.Name, engagements, true)
	return a, nil
}

func (u *AgentUseCase) List(ctx context.Context, includeEngagements bool) ([]entities.Agent, error) {
	agents, err := u.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	if !includeEngagements {
		return agents, nil
	}

	engagements, err := u.engagementRepo.List(ctx, "")
	if err != nil {
		return nil, err
	}
	for i := range agents {
		agents[i].Engagements = engagementRefsFor(agents[i].Name, engagements, false)
	}
	return agents, nil
}

func (u *AgentUseCase) Update(ctx context.Context, id string, patch entities.AgentPatch) (entities.Agent, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Agent{}, ErrInvalidAgentID
	}
	if patch.Name != nil && strings.TrimSpace(*patch.Name) == "" {
		return entities.Agent{}, ErrInvalidAgentName
	}

	updated, err := u.repo.Update(ctx, id, patch)
	if err != nil {
		return entities.Agent{}, err
	}
	if updated.ID == "" {
		return entities.Agent{}, ErrAgentNotFound
	}
	return updated, nil
}

func (u *AgentUseCase) Delete(ctx context.Context, id string) error {
	id = strings.TrimSpace(id)
	if id == "" {
		return ErrInvalidAgentID
	}
	return u.repo.Delete(ctx, id)
}

func engagementRefsFor(agentName string, engagements []entities.Engagement, withDescription bool) []entities.AgentEngagementRef {
	refs := []entities.AgentEngagementRef{}
	for _, e := range engagements {
		for _, deployed := range e.Agents {
			if deployed != agentName {
				continue
			}
			ref := entities.AgentEngagementRef{
				ID:     e.ID,
				Name:   e.Name,
				Status: e.Status,
				Team:   e.Team,
			}
			if withDescription {
				ref.Description = e.Description
			}
			refs = append(refs, ref)
			break
		}
	}
	return refs
}
