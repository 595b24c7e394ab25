package handlers

import (
	"errors"
	"net/http"

	request "pulse_tracker/internal/adapter/http/dto/request"
	response "pulse_tracker/internal/adapter/http/dto/response"
	"pulse_tracker/internal/usecase"
	"pulse_tracker/pkg"

	"github.com/gin-gonic/gin"
)

var (
	errInvalidTaskPayload = pkg.NewDomainErrorSimple("INVALID_TASK_INPUT", "Invalid task payload", http.StatusBadRequest)
)

// TaskHandler handles HTTP requests for engagement tasks.

type TaskHandler struct {
	usecase usecase.ITaskUseCase
}

func NewTaskHandler(uc usecase.ITaskUseCase) *TaskHandler {
	return &TaskHandler{usecase: uc}
}

// CreateTask godoc
//
//	@Summary		Create a task under an engagement
//	@Tags			tasks
//	@Accept			json
//	@Produce		json
//	@Param			task	body		request.CreateTaskRequest	true	"Task"
//	@Success		201		{object}	response.TaskResponse
//	@Failure		400		{object}	pkg.HTTPError
//	@Failure		404		{object}	pkg.HTTPError
//	@Router			/v1/tasks [post]
func (h *TaskHandler) CreateTask(c *gin.Context) {
	var payload request.CreateTaskRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidTaskPayload.HTTPStatus, errInvalidTaskPayload.ToHTTPError())
		return
	}

	created, err := h.usecase.Create(c.Request.Context(), payload.ToInput())
	if err != nil {
		appErr := mapTaskError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromTask(created))
}

// GetTask godoc
//
//	@Summary		Get one task by id
//	@Tags			tasks
//	@Produce		json
//	@Param			id	path		string	true	"Task id"
//	@Success		200	{object}	response.TaskResponse
//	@Failure		404	{object}	pkg.HTTPError
//	@Router			/v1/tasks/{id} [get]
func (h *TaskHandler) GetTask(c *gin.Context) {
	task, err := h.usecase.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapTaskError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromTask(task))
}

// ListTasks godoc
//
//	@Summary		List tasks ordered by priority, with a progress summary
//	@Tags			tasks
//	@Produce		json
//	@Param			engagementId	query		string	false	"Filter by engagement"
//	@Success		200				{object}	response.TaskListResponse
//	@Router			/v1/tasks [get]
func (h *TaskHandler) ListTasks(c *gin.Context) {
	tasks, summary, err := h.usecase.List(c.Request.Context(), c.Query("engagementId"))
	if err != nil {
		appErr := mapTaskError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromTaskList(tasks, summary))
}

// UpdateTask godoc
//
//	@Summary		Partially update a task
//	@Tags			tasks
//	@Accept			json
//	@Produce		json
//	@Param			id		path		string						true	"Task id"
//	@Param			task	body		request.UpdateTaskRequest	true	"Fields to change"
//	@Success		200		{object}	response.TaskResponse
//	@Failure		400		{object}	pkg.HTTPError
//	@Failure		404		{object}	pkg.HTTPError
//	@Router			/v1/tasks/{id} [patch]
func (h *TaskHandler) UpdateTask(c *gin.Context) {
	var payload request.UpdateTaskRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidTaskPayload.HTTPStatus, errInvalidTaskPayload.ToHTTPError())
		return
	}

	updated, err := h.usecase.Update(c.Request.Context(), c.Param("id"), payload.ToPatch())
	if err != nil {
		appErr := mapTaskError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromTask(updated))
}

// DeleteTask godoc
//
//	@Summary		Delete a task
//	@Tags			tasks
//	@Param			id	path	string	true	"Task id"
//	@Success		204
//	@Failure		404	{object}	pkg.HTTPError
//	@Router			/v1/tasks/{id} [delete]
func (h *TaskHandler) DeleteTask(c *gin.Context) {
	if err := h.usecase.Delete(c.Request.Context(), c.Param("id")); err != nil {
		appErr := mapTaskError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.Status(http.StatusNoContent)
}

func mapTaskError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidTaskID), errors.Is(err, usecase.ErrInvalidTaskTitle), errors.Is(err, usecase.ErrInvalidTaskStatus), errors.Is(err, usecase.ErrInvalidTaskPriority), errors.Is(err, usecase.ErrInvalidEngagementID):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrEngagementNotFound):
		return pkg.NewDomainErrorSimple("ENGAGEMENT_NOT_FOUND", "Engagement not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrTaskNotFound):
		return pkg.NewDomainErrorSimple("TASK_NOT_FOUND", "Task not found", http.StatusNotFound)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
