package entities

import "time"

// TaskStatus enumerates the lifecycle of an engagement task.

type TaskStatus string

const (
	TaskStatusPending    TaskStatus = "pending"
	TaskStatusInProgress TaskStatus = "in-progress"
	TaskStatusCompleted  TaskStatus = "completed"
	TaskStatusBlocked    TaskStatus = "blocked"
)

// TaskPriority orders tasks for display.

type TaskPriority string

const (
	TaskPriorityHigh   TaskPriority = "high"
	TaskPriorityMedium TaskPriority = "medium"
	TaskPriorityLow    TaskPriority = "low"
)

// Rank maps a priority to its sort position; unknown values sort as medium.
func (p TaskPriority) Rank() int {
	switch p {
	case TaskPriorityHigh:
		return 0
	case TaskPriorityLow:
		return 2
	default:
		return 1
	}
}

// Task is a work item attached to one engagement.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (engagement-index): engagementId
type Task struct {
	ID             string       `json:"id"`
	EngagementID   string       `json:"engagementId"`
	EngagementName string       `json:"engagementName"`
	Title          string       `json:"title"`
	Description    string       `json:"description"`
	Status         TaskStatus   `json:"status"`
	Priority       TaskPriority `json:"priority"`
	Assignee       string       `json:"assignee"`
	DueDate        string       `json:"dueDate"`
	CompletedAt    string       `json:"completedAt"`
	CreatedAt      time.Time    `json:"createdAt"`
	UpdatedAt      time.Time    `json:"updatedAt"`
}

// TaskSummary is the progress roll-up returned alongside task listings.
type TaskSummary struct {
	Total           int `json:"total"`
	Completed       int `json:"completed"`
	InProgress      int `json:"inProgress"`
	Pending         int `json:"pending"`
	PercentComplete int `json:"percentComplete"`
}
