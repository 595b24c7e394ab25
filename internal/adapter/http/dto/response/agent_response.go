package response

import (
	"time"

	"pulse_tracker/internal/domain/entities"
)

type AgentEngagementRefResponse struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Status      string `json:"status"`
	Team        string `json:"team"`
	Description string `json:"description,omitempty"`
}

type AgentResponse struct {
	ID           string                       `json:"id"`
	Name         string                       `json:"name"`
	Description  string                       `json:"description"`
	Type         string                       `json:"type"`
	Platform     string                       `json:"platform"`
	Capabilities []string                     `json:"capabilities"`
	Status       string                       `json:"status"`
	CreatedAt    time.Time                    `json:"createdAt"`
	UpdatedAt    time.Time                    `json:"updatedAt"`
	Engagements  []AgentEngagementRefResponse `json:"engagements,omitempty"`
}

func FromAgent(a entities.Agent) AgentResponse {
	resp := AgentResponse{
		ID:           a.ID,
		Name:         a.Name,
		Description:  a.Description,
		Type:         a.Type,
		Platform:     a.Platform,
		Capabilities: a.Capabilities,
		Status:       string(a.Status),
		CreatedAt:    a.CreatedAt,
		UpdatedAt:    a.UpdatedAt,
	}
	for _, ref := range a.Engagements {
		resp.Engagements = append(resp.Engagements, AgentEngagementRefResponse{
			ID:          ref.ID,
			Name:        ref.Name,
			Status:      string(ref.Status),
			Team:        ref.Team,
			Description: ref.Description,
		})
	}
	return resp
}

func FromAgents(agents []entities.Agent) []AgentResponse {
	out := make([]AgentResponse, 0, len(agents))
	for _, a := range agents {
		out = append(out, FromAgent(a))
	}
	return out
}
