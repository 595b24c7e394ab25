package request

import (
	"pulse_tracker/internal/domain/entities"
	"pulse_tracker/internal/usecase"
)

// CreateAgentRequest registers an automation agent in the registry.
type CreateAgentRequest struct {
	Name         string   `json:"name" binding:"required"`
	Description  string   `json:"description"`
	Type         string   `json:"type"`
	Platform     string   `json:"platform"`
	Capabilities []string `json:"capabilities"`
	Status       string   `json:"status"`
}

func (r CreateAgentRequest) ToInput() usecase.CreateAgentInput {
	return usecase.CreateAgentInput{
		Name:         r.Name,
		Description:  r.Description,
		Type:         r.Type,
		Platform:     r.Platform,
		Capabilities: r.Capabilities,
		Status:       entities.AgentStatus(r.Status),
	}
}

// UpdateAgentRequest is a partial update of a registry entry.
type UpdateAgentRequest struct {
	Name         *string   `json:"name"`
	Description  *string   `json:"description"`
	Type         *string   `json:"type"`
	Platform     *string   `json:"platform"`
	Capabilities *[]string `json:"capabilities"`
	Status       *string   `json:"status"`
}

func (r UpdateAgentRequest) ToPatch() entities.AgentPatch {
	patch := entities.AgentPatch{
		Name:         r.Name,
		Description:  r.Description,
		Type:         r.Type,
		Platform:     r.Platform,
		Capabilities: r.Capabilities,
	}
	if r.Status != nil {
		status := entities.AgentStatus(*r.Status)
		patch.Status = &status
	}
	return patch
}
