package request

import (
	"pulse_tracker/internal/domain/entities"
	"pulse_tracker/internal/usecase"
)

// CreateTaskRequest registers a work item under an engagement.
type CreateTaskRequest struct {
	EngagementID string `json:"engagementId" binding:"required"`
	Title        string `json:"title" binding:"required"`
	Description  string `json:"description"`
	Status       string `json:"status"`
	Priority     string `json:"priority"`
	Assignee     string `json:"assignee"`
	DueDate      string `json:"dueDate"`
}

func (r CreateTaskRequest) ToInput() usecase.CreateTaskInput {
	return usecase.CreateTaskInput{
		EngagementID: r.EngagementID,
		Title:        r.Title,
		Description:  r.Description,
		Status:       entities.TaskStatus(r.Status),
		Priority:     entities.TaskPriority(r.Priority),
		Assignee:     r.Assignee,
		DueDate:      r.DueDate,
	}
}

// UpdateTaskRequest is a partial update. CompletedAt is managed by the
// status transition and is not caller-writable.
type UpdateTaskRequest struct {
	Title       *string `json:"title"`
	Description *string `json:"description"`
	Status      *string `json:"status"`
	Priority    *string `json:"priority"`
	Assignee    *string `json:"assignee"`
	DueDate     *string `json:"dueDate"`
}

func (r UpdateTaskRequest) ToPatch() entities.TaskPatch {
	patch := entities.TaskPatch{
		Title:       r.Title,
		Description: r.Description,
		Assignee:    r.Assignee,
		DueDate:     r.DueDate,
	}
	if r.Status != nil {
		status := entities.TaskStatus(*r.Status)
		patch.Status = &status
	}
	if r.Priority != nil {
		priority := entities.TaskPriority(*r.Priority)
		patch.Priority = &priority
	}
	return patch
}
