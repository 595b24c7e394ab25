package response

import (
	"time"

	"pulse_tracker/internal/domain/entities"
)

type EngagementResponse struct {
	ID             string    `json:"id"`
	Name           string    `json:"name"`
	Team           string    `json:"team"`
	Description    string    `json:"description"`
	Status         string    `json:"status"`
	Owner          string    `json:"owner"`
	Stakeholders   []string  `json:"stakeholders"`
	Tools          []string  `json:"tools"`
	Agents         []string  `json:"agents"`
	Objectives     string    `json:"objectives"`
	ChatSpace      string    `json:"chatSpace"`
	SuccessMetrics string    `json:"successMetrics"`
	Blockers       string    `json:"blockers"`
	NextSteps      string    `json:"nextSteps"`
	Notes          string    `json:"notes"`
	StartDate      string    `json:"startDate"`
	TargetDate     string    `json:"targetDate"`
	CompletedDate  string    `json:"completedDate"`
	CreatedAt      time.Time `json:"createdAt"`
	UpdatedAt      time.Time `json:"updatedAt"`
}

func FromEngagement(e entities.Engagement) EngagementResponse {
	return EngagementResponse{
		ID:             e.ID,
		Name:           e.Name,
		Team:           e.Team,
		Description:    e.Description,
		Status:         string(e.Status),
		Owner:          e.Owner,
		Stakeholders:   e.Stakeholders,
		Tools:          e.Tools,
		Agents:         e.Agents,
		Objectives:     e.Objectives,
		ChatSpace:      e.ChatSpace,
		SuccessMetrics: e.SuccessMetrics,
		Blockers:       e.Blockers,
		NextSteps:      e.NextSteps,
		Notes:          e.Notes,
		StartDate:      e.StartDate,
		TargetDate:     e.TargetDate,
		CompletedDate:  e.CompletedDate,
		CreatedAt:      e.CreatedAt,
		UpdatedAt:      e.UpdatedAt,
	}
}

func FromEngagements(engagements []entities.Engagement) []EngagementResponse {
	out := make([]EngagementResponse, 0, len(engagements))
	for _, e := range engagements {
		out = append(out, FromEngagement(e))
	}
	return out
}
