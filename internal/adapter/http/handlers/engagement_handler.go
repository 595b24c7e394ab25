package handlers

import (
	"errors"
	"net/http"

	request "pulse_tracker/internal/adapter/http/dto/request"
	response "pulse_tracker/internal/adapter/http/dto/response"
	"pulse_tracker/internal/domain/entities"
	"pulse_tracker/internal/usecase"
	"pulse_tracker/pkg"

	"github.com/gin-gonic/gin"
)

var (
	errInvalidEngagementPayload = pkg.NewDomainErrorSimple("INVALID_ENGAGEMENT_INPUT", "Invalid engagement payload", http.StatusBadRequest)
)

// EngagementHandler handles HTTP requests for engagements.

type EngagementHandler struct {
	usecase usecase.IEngagementUseCase
}

func NewEngagementHandler(uc usecase.IEngagementUseCase) *EngagementHandler {
	return &EngagementHandler{usecase: uc}
}

// CreateEngagement godoc
//
//	@Summary		Create an engagement
//	@Tags			engagements
//	@Accept			json
//	@Produce		json
//	@Param			engagement	body		request.CreateEngagementRequest	true	"Engagement"
//	@Success		201			{object}	response.EngagementResponse
//	@Failure		400			{object}	pkg.HTTPError
//	@Router			/v1/engagements [post]
func (h *EngagementHandler) CreateEngagement(c *gin.Context) {
	var payload request.CreateEngagementRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidEngagementPayload.HTTPStatus, errInvalidEngagementPayload.ToHTTPError())
		return
	}

	created, err := h.usecase.Create(c.Request.Context(), payload.ToEntity())
	if err != nil {
		appErr := mapEngagementError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromEngagement(created))
}

// GetEngagement godoc
//
//	@Summary		Get one engagement by id
//	@Tags			engagements
//	@Produce		json
//	@Param			id	path		string	true	"Engagement id"
//	@Success		200	{object}	response.EngagementResponse
//	@Failure		404	{object}	pkg.HTTPError
//	@Router			/v1/engagements/{id} [get]
func (h *EngagementHandler) GetEngagement(c *gin.Context) {
	engagement, err := h.usecase.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapEngagementError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromEngagement(engagement))
}

// ListEngagements godoc
//
//	@Summary		List engagements, most recently updated first
//	@Tags			engagements
//	@Produce		json
//	@Param			status	query		string	false	"Filter by status"
//	@Success		200		{array}		response.EngagementResponse
//	@Failure		400		{object}	pkg.HTTPError
//	@Router			/v1/engagements [get]
func (h *EngagementHandler) ListEngagements(c *gin.Context) {
	status := entities.EngagementStatus(c.Query("status"))

	engagements, err := h.usecase.List(c.Request.Context(), status)
	if err != nil {
		appErr := mapEngagementError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromEngagements(engagements))
}

// UpdateEngagement godoc
//
//	@Summary		Partially update an engagement
//	@Tags			engagements
//	@Accept			json
//	@Produce		json
//	@Param			id			path		string							true	"Engagement id"
//	@Param			engagement	body		request.UpdateEngagementRequest	true	"Fields to change"
//	@Success		200			{object}	response.EngagementResponse
//	@Failure		400			{object}	pkg.HTTPError
//	@Failure		404			{object}	pkg.HTTPError
//	@Router			/v1/engagements/{id} [patch]
func (h *EngagementHandler) UpdateEngagement(c *gin.Context) {
	var payload request.UpdateEngagementRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidEngagementPayload.HTTPStatus, errInvalidEngagementPayload.ToHTTPError())
		return
	}

	updated, err := h.usecase.Update(c.Request.Context(), c.Param("id"), payload.ToPatch())
	if err != nil {
		appErr := mapEngagementError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromEngagement(updated))
}

// DeleteEngagement godoc
//
//	@Summary		Delete an engagement
//	@Tags			engagements
//	@Param			id	path	string	true	"Engagement id"
//	@Success		204
//	@Failure		404	{object}	pkg.HTTPError
//	@Router			/v1/engagements/{id} [delete]
func (h *EngagementHandler) DeleteEngagement(c *gin.Context) {
	if err := h.usecase.Delete(c.Request.Context(), c.Param("id")); err != nil {
		appErr := mapEngagementError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.Status(http.StatusNoContent)
}

func mapEngagementError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidEngagementID), errors.Is(err, usecase.ErrInvalidEngagementName), errors.Is(err, usecase.ErrInvalidEngagementStatus):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrEngagementNotFound):
		return pkg.NewDomainErrorSimple("ENGAGEMENT_NOT_FOUND", "Engagement not found", http.StatusNotFound)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
