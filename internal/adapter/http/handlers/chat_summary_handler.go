package handlers

import (
	"errors"
	"log"
	"net/http"
	"strings"

	"pulse_tracker/internal/usecase"
	"pulse_tracker/pkg"

	"github.com/gin-gonic/gin"
)

// ChatSummaryHandler serves the cached chat digest for an engagement.

type ChatSummaryHandler struct {
	usecase usecase.IChatSummaryUseCase
}

func NewChatSummaryHandler(uc usecase.IChatSummaryUseCase) *ChatSummaryHandler {
	return &ChatSummaryHandler{usecase: uc}
}

// GetChatSummary godoc
//
//	@Summary		Summarize an engagement's chat space
//	@Description	Serves the cached summary when fresh; refresh=true forces a new fetch.
//	@Tags			engagements
//	@Produce		json
//	@Param			id		path		string	true	"Engagement id"
//	@Param			refresh	query		string	false	"Bypass the cache (true/false)"
//	@Success		200		{object}	usecase.ChatSummaryResult
//	@Failure		404		{object}	pkg.HTTPError
//	@Router			/v1/engagements/{id}/chat-summary [get]
func (h *ChatSummaryHandler) GetChatSummary(c *gin.Context) {
	engagementID := c.Param("id")
	refresh := strings.EqualFold(c.Query("refresh"), "true")
	log.Printf("[chat][handler] summary start engagement_id=%s refresh=%t", engagementID, refresh)

	result, err := h.usecase.GetSummary(c.Request.Context(), engagementID, refresh)
	if err != nil {
		log.Printf("[chat][handler] summary failed engagement_id=%s err=%v", engagementID, err)
		appErr := mapChatSummaryError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	log.Printf("[chat][handler] summary success engagement_id=%s from_cache=%t", engagementID, result.FromCache)

	c.JSON(http.StatusOK, result)
}

func mapChatSummaryError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidEngagementID), errors.Is(err, usecase.ErrInvalidChatSpaceURL):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrEngagementNotFound):
		return pkg.NewDomainErrorSimple("ENGAGEMENT_NOT_FOUND", "Engagement not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrChatGatewayNotConfigured):
		return pkg.NewDomainErrorSimple("CHAT_GATEWAY_NOT_CONFIGURED", "Chat summarization is not configured", http.StatusServiceUnavailable)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
