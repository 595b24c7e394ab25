package response

import (
	"time"

	"pulse_tracker/internal/domain/entities"
)

type TaskResponse struct {
	ID             string    `json:"id"`
	EngagementID   string    `json:"engagementId"`
	EngagementName string    `json:"engagementName"`
	Title          string    `json:"title"`
	Description    string    `json:"description"`
	Status         string    `json:"status"`
	Priority       string    `json:"priority"`
	Assignee       string    `json:"assignee"`
	DueDate        string    `json:"dueDate"`
	CompletedAt    string    `json:"completedAt"`
	CreatedAt      time.Time `json:"createdAt"`
	UpdatedAt      time.Time `json:"updatedAt"`
}

func FromTask(t entities.Task) TaskResponse {
	return TaskResponse{
		ID:             t.ID,
		EngagementID:   t.EngagementID,
		EngagementName: t.EngagementName,
		Title:          t.Title,
		Description:    t.Description,
		Status:         string(t.Status),
		Priority:       string(t.Priority),
		Assignee:       t.Assignee,
		DueDate:        t.DueDate,
		CompletedAt:    t.CompletedAt,
		CreatedAt:      t.CreatedAt,
		UpdatedAt:      t.UpdatedAt,
	}
}

// TaskListResponse pairs the ordered task list with its progress roll-up.
type TaskListResponse struct {
	Tasks   []TaskResponse       `json:"tasks"`
	Summary entities.TaskSummary `json:"summary"`
}

func FromTaskList(tasks []entities.Task, summary entities.TaskSummary) TaskListResponse {
	out := make([]TaskResponse, 0, len(tasks))
	for _, t := range tasks {
		out = append(out, FromTask(t))
	}
	return TaskListResponse{Tasks: out, Summary: summary}
}
