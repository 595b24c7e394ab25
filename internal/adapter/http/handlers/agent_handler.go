package handlers

import (
	"errors"
	"net/http"
	"strings"

	request "pulse_tracker/internal/adapter/http/dto/request"
	response "pulse_tracker/internal/adapter/http/dto/response"
	"pulse_tracker/internal/usecase"
	"pulse_tracker/pkg"

	"github.com/gin-gonic/gin"
)

var (
	errInvalidAgentPayload = pkg.NewDomainErrorSimple("INVALID_AGENT_INPUT", "Invalid agent payload", http.StatusBadRequest)
)

// AgentHandler handles HTTP requests for the agent registry.

type AgentHandler struct {
	usecase usecase.IAgentUseCase
}

func NewAgentHandler(uc usecase.IAgentUseCase) *AgentHandler {
	return &AgentHandler{usecase: uc}
}

// CreateAgent godoc
//
//	@Summary		Register an agent
//	@Tags			agents
//	@Accept			json
//	@Produce		json
//	@Param			agent	body		request.CreateAgentRequest	true	"Agent"
//	@Success		201		{object}	response.AgentResponse
//	@Failure		400		{object}	pkg.HTTPError
//	@Failure		409		{object}	pkg.HTTPError
//	@Router			/v1/agents [post]
func (h *AgentHandler) CreateAgent(c *gin.Context) {
	var payload request.CreateAgentRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidAgentPayload.HTTPStatus, errInvalidAgentPayload.ToHTTPError())
		return
	}

	created, err := h.usecase.Create(c.Request.Context(), payload.ToInput())
	if err != nil {
		appErr := mapAgentError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromAgent(created))
}

// GetAgent godoc
//
//	@Summary		Get one agent with its engagement references
//	@Tags			agents
//	@Produce		json
//	@Param			id	path		string	true	"Agent id"
//	@Success		200	{object}	response.AgentResponse
//	@Failure		404	{object}	pkg.HTTPError
//	@Router			/v1/agents/{id} [get]
func (h *AgentHandler) GetAgent(c *gin.Context) {
	agent, err := h.usecase.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapAgentError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromAgent(agent))
}

// ListAgents godoc
//
//	@Summary		List agents sorted by name
//	@Tags			agents
//	@Produce		json
//	@Param			includeEngagements	query		string	false	"Join engagement references (true/false)"
//	@Success		200					{array}		response.AgentResponse
//	@Router			/v1/agents [get]
func (h *AgentHandler) ListAgents(c *gin.Context) {
	includeEngagements := strings.EqualFold(c.Query("includeEngagements"), "true")

	agents, err := h.usecase.List(c.Request.Context(), includeEngagements)
	if err != nil {
		appErr := mapAgentError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromAgents(agents))
}

// UpdateAgent godoc
//
//	@Summary		Partially update an agent
//	@Tags			agents
//	@Accept			json
//	@Produce		json
//	@Param			id		path		string						true	"Agent id"
//	@Param			agent	body		request.UpdateAgentRequest	true	"Fields to change"
//	@Success		200		{object}	response.AgentResponse
//	@Failure		400		{object}	pkg.HTTPError
//	@Failure		404		{object}	pkg.HTTPError
//	@Router			/v1/agents/{id} [patch]
func (h *AgentHandler) UpdateAgent(c *gin.Context) {
	var payload request.UpdateAgentRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidAgentPayload.HTTPStatus, errInvalidAgentPayload.ToHTTPError())
		return
	}

	updated, err := h.usecase.Update(c.Request.Context(), c.Param("id"), payload.ToPatch())
	if err != nil {
		appErr := mapAgentError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromAgent(updated))
}

// DeleteAgent godoc
//
//	@Summary		Delete an agent
//	@Tags			agents
//	@Param			id	path	string	true	"Agent id"
//	@Success		204
//	@Failure		404	{object}	pkg.HTTPError
//	@Router			/v1/agents/{id} [delete]
func (h *AgentHandler) DeleteAgent(c *gin.Context) {
	if err := h.usecase.Delete(c.Request.Context(), c.Param("id")); err != nil {
		appErr := mapAgentError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.Status(http.StatusNoContent)
}

func mapAgentError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidAgentID), errors.Is(err, usecase.ErrInvalidAgentName):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrAgentNameConflict):
		return pkg.NewDomainErrorSimple("AGENT_NAME_CONFLICT", "An agent with this name already exists", http.StatusConflict)
	case errors.Is(err, usecase.ErrAgentNotFound):
		return pkg.NewDomainErrorSimple("AGENT_NOT_FOUND", "Agent not found", http.StatusNotFound)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
