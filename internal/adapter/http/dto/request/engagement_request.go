package request

import (
	"pulse_tracker/internal/domain/entities"
)

// CreateEngagementRequest is the payload for registering a new engagement.
// Only the name is mandatory; everything else has a sensible default.
type CreateEngagementRequest struct {
	Name           string   `json:"name" binding:"required"`
	Team           string   `json:"team"`
	Description    string   `json:"description"`
	Status         string   `json:"status"`
	Owner          string   `json:"owner"`
	Stakeholders   []string `json:"stakeholders"`
	Tools          []string `json:"tools"`
	Agents         []string `json:"agents"`
	Objectives     string   `json:"objectives"`
	ChatSpace      string   `json:"chatSpace"`
	SuccessMetrics string   `json:"successMetrics"`
	Blockers       string   `json:"blockers"`
	NextSteps      string   `json:"nextSteps"`
	Notes          string   `json:"notes"`
	StartDate      string   `json:"startDate"`
	TargetDate     string   `json:"targetDate"`
}

func (r CreateEngagementRequest) ToEntity() entities.Engagement {
	return entities.Engagement{
		Name:           r.Name,
		Team:           r.Team,
		Description:    r.Description,
		Status:         entities.EngagementStatus(r.Status),
		Owner:          r.Owner,
		Stakeholders:   r.Stakeholders,
		Tools:          r.Tools,
		Agents:         r.Agents,
		Objectives:     r.Objectives,
		ChatSpace:      r.ChatSpace,
		SuccessMetrics: r.SuccessMetrics,
		Blockers:       r.Blockers,
		NextSteps:      r.NextSteps,
		Notes:          r.Notes,
		StartDate:      r.StartDate,
		TargetDate:     r.TargetDate,
	}
}

// UpdateEngagementRequest is a partial update: absent fields stay untouched,
// fields present with a zero value are cleared.
type UpdateEngagementRequest struct {
	Name           *string   `json:"name"`
	Team           *string   `json:"team"`
	Description    *string   `json:"description"`
	Status         *string   `json:"status"`
	Owner          *string   `json:"owner"`
	Stakeholders   *[]string `json:"stakeholders"`
	Tools          *[]string `json:"tools"`
	Agents         *[]string `json:"agents"`
	Objectives     *string   `json:"objectives"`
	ChatSpace      *string   `json:"chatSpace"`
	SuccessMetrics *string   `json:"successMetrics"`
	Blockers       *string   `json:"blockers"`
	NextSteps      *string   `json:"nextSteps"`
	Notes          *string   `json:"notes"`
	StartDate      *string   `json:"startDate"`
	TargetDate     *string   `json:"targetDate"`
	CompletedDate  *string   `json:"completedDate"`
}

func (r UpdateEngagementRequest) ToPatch() entities.EngagementPatch {
	patch := entities.EngagementPatch{
		Name:           r.Name,
		Team:           r.Team,
		Description:    r.Description,
		Owner:          r.Owner,
		Stakeholders:   r.Stakeholders,
		Tools:          r.Tools,
		Agents:         r.Agents,
		Objectives:     r.Objectives,
		ChatSpace:      r.ChatSpace,
		SuccessMetrics: r.SuccessMetrics,
		Blockers:       r.Blockers,
		NextSteps:      r.NextSteps,
		Notes:          r.Notes,
		StartDate:      r.StartDate,
		TargetDate:     r.TargetDate,
		CompletedDate:  r.CompletedDate,
	}
	if r.Status != nil {
		status := entities.EngagementStatus(*r.Status)
		patch.Status = &status
	}
	return patch
}
