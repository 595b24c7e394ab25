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
	ErrTaskNotFound        = errors.New("task not found")
	ErrInvalidTaskID       = errors.New("invalid task id")
	ErrInvalidTaskTitle    = errors.New("invalid task title")
	ErrInvalidTaskStatus   = errors.New("invalid task status")
	ErrInvalidTaskPriority = errors.New("invalid task priority")
)

// CreateTaskInput carries the caller-supplied task fields.
type CreateTaskInput struct {
	EngagementID string
	Title        string
	Description  string
	Status       entities.TaskStatus
	Priority     entities.TaskPriority
	Assignee     string
	DueDate      string
}

// ITaskUseCase manages per-engagement work items.

type ITaskUseCase interface {
	Create(ctx context.Context, in CreateTaskInput) (entities.Task, error)
	GetByID(ctx context.Context, id string) (entities.Task, error)
	List(ctx context.Context, engagementID string) ([]entities.Task, entities.TaskSummary, error)
	Update(ctx context.Context, id string, patch entities.TaskPatch) (entities.Task, error)
	Delete(ctx context.Context, id string) error
}

type TaskUseCase struct {
	repo           interfaces.ITaskRepository
	engagementRepo interfaces.IEngagementRepository
}

var _ ITaskUseCase = (*TaskUseCase)(nil)

func NewTaskUseCase(repo interfaces.ITaskRepository, engagementRepo interfaces.IEngagementRepository) *TaskUseCase {
	return &TaskUseCase{repo: repo, engagementRepo: engagementRepo}
}

func (u *TaskUseCase) Create(ctx context.Context, in CreateTaskInput) (entities.Task, error) {
	engagementID := strings.TrimSpace(in.EngagementID)
	if engagementID == "" {
		return entities.Task{}, ErrInvalidEngagementID
	}
	title := strings.TrimSpace(in.Title)
	if title == "" {
		return entities.Task{}, ErrInvalidTaskTitle
	}

	status := in.Status
	if status == "" {
		status = entities.TaskStatusPending
	}
	if !validTaskStatus(status) {
		return entities.Task{}, ErrInvalidTaskStatus
	}
	priority := in.Priority
	if priority == "" {
		priority = entities.TaskPriorityMedium
	}
	if !validTaskPriority(priority) {
		return entities.Task{}, ErrInvalidTaskPriority
	}

	engagement, err := u.engagementRepo.GetByID(ctx, engagementID)
	if err != nil {
		return entities.Task{}, err
	}
	if engagement.ID == "" {
		return entities.Task{}, ErrEngagementNotFound
	}

	now := time.Now().UTC()
	t := entities.Task{
		ID:             uuid.NewString(),
		EngagementID:   engagementID,
		EngagementName: engagement.Name,
		Title:          title,
		Description:    in.Description,
		Status:         status,
		Priority:       priority,
		Assignee:       strings.TrimSpace(in.Assignee),
		DueDate:        in.DueDate,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	if status == entities.TaskStatusCompleted {
		t.CompletedAt = now.Format(time.RFC3339Nano)
	}
	return u.repo.Create(ctx, t)
}

func (u *TaskUseCase) GetByID(ctx context.Context, id string) (entities.Task, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Task{}, ErrInvalidTaskID
	}

	t, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Task{}, err
	}
	if t.ID == "" {
		return entities.Task{}, ErrTaskNotFound
	}
	return t, nil
}

func (u *TaskUseCase) List(ctx context.Context, engagementID string) ([]entities.Task, entities.TaskSummary, error) {
	tasks, err := u.repo.List(ctx, strings.TrimSpace(engagementID))
	if err != nil {
		return nil, entities.TaskSummary{}, err
	}
	return tasks, SummarizeTasks(tasks), nil
}

func (u *TaskUseCase) Update(ctx context.Context, id string, patch entities.TaskPatch) (entities.Task, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Task{}, ErrInvalidTaskID
	}
	if patch.Title != nil && strings.TrimSpace(*patch.Title) == "" {
		return entities.Task{}, ErrInvalidTaskTitle
	}
	if patch.Status != nil && !validTaskStatus(*patch.Status) {
		return entities.Task{}, ErrInvalidTaskStatus
	}
	if patch.Priority != nil && !validTaskPriority(*patch.Priority) {
		return entities.Task{}, ErrInvalidTaskPriority
	}

	existing, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Task{}, err
	}
	if existing.ID == "" {
		return entities.Task{}, ErrTaskNotFound
	}

	// completedAt mirrors the status: stamped when a task becomes
	// completed, cleared when it moves anywhere else.
	if patch.Status != nil {
		switch {
		case *patch.Status == entities.TaskStatusCompleted && existing.Status != entities.TaskStatusCompleted:
			stamp := time.Now().UTC().Format(time.RFC3339Nano)
			patch.CompletedAt = &stamp
		case *patch.Status != entities.TaskStatusCompleted:
			cleared := ""
			patch.CompletedAt = &cleared
		}
	}

	updated, err := u.repo.Update(ctx, id, patch)
	if err != nil {
		return entities.Task{}, err
	}
	if updated.ID == "" {
		return entities.Task{}, ErrTaskNotFound
	}
	return updated, nil
}

func (u *TaskUseCase) Delete(ctx context.Context, id string) error {
	id = strings.TrimSpace(id)
	if id == "" {
		return ErrInvalidTaskID
	}
	return u.repo.Delete(ctx, id)
}

func validTaskStatus(s entities.TaskStatus) bool {
	switch s {
	case entities.TaskStatusPending, entities.TaskStatusInProgress, entities.TaskStatusCompleted, entities.TaskStatusBlocked:
		return true
	}
	return false
}

func validTaskPriority(p entities.TaskPriority) bool {
	switch p {
	case entities.TaskPriorityHigh, entities.TaskPriorityMedium, entities.TaskPriorityLow:
		return true
	}
	return false
}
