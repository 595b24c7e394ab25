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
	errInvalidSolicitationPayload = pkg.NewDomainErrorSimple("INVALID_SOLICITATION_INPUT", "Invalid solicitation payload", http.StatusBadRequest)
)

// SolicitationHandler handles feedback invitations, including the public
// form lookup used by the token link.

type SolicitationHandler struct {
	usecase usecase.ISolicitationUseCase
}

func NewSolicitationHandler(uc usecase.ISolicitationUseCase) *SolicitationHandler {
	return &SolicitationHandler{usecase: uc}
}

// CreateSolicitation godoc
//
//	@Summary		Create a feedback invitation and its shareable link
//	@Tags			solicitations
//	@Accept			json
//	@Produce		json
//	@Param			solicitation	body		request.CreateSolicitationRequest	true	"Solicitation"
//	@Success		201				{object}	response.CreateSolicitationResponse
//	@Failure		400				{object}	pkg.HTTPError
//	@Failure		404				{object}	pkg.HTTPError
//	@Router			/v1/solicitations [post]
func (h *SolicitationHandler) CreateSolicitation(c *gin.Context) {
	var payload request.CreateSolicitationRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidSolicitationPayload.HTTPStatus, errInvalidSolicitationPayload.ToHTTPError())
		return
	}

	created, feedbackURL, err := h.usecase.Create(c.Request.Context(), payload.ToInput())
	if err != nil {
		appErr := mapSolicitationError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromCreatedSolicitation(created, feedbackURL))
}

// GetSolicitationForm godoc
//
//	@Summary		Resolve a token into the public feedback form data
//	@Tags			solicitations
//	@Produce		json
//	@Param			token	path		string	true	"Solicitation token"
//	@Success		200		{object}	response.SolicitationFormResponse
//	@Failure		404		{object}	pkg.HTTPError
//	@Failure		409		{object}	pkg.HTTPError
//	@Failure		410		{object}	pkg.HTTPError
//	@Router			/v1/feedback/{token} [get]
func (h *SolicitationHandler) GetSolicitationForm(c *gin.Context) {
	solicitation, err := h.usecase.GetByToken(c.Request.Context(), c.Param("token"))
	if err != nil {
		appErr := mapSolicitationError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	switch solicitation.Status {
	case entities.SolicitationStatusExpired:
		appErr := pkg.NewDomainErrorSimple("SOLICITATION_EXPIRED", "This feedback link has expired", http.StatusGone)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
	case entities.SolicitationStatusCompleted:
		appErr := pkg.NewDomainErrorSimple("SOLICITATION_ALREADY_RESOLVED", "Feedback was already submitted for this link", http.StatusConflict)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
	default:
		c.JSON(http.StatusOK, response.FromSolicitationForm(solicitation))
	}
}

// ListSolicitations godoc
//
//	@Summary		List invitations, newest first
//	@Tags			solicitations
//	@Produce		json
//	@Param			engagementId	query		string	false	"Filter by engagement"
//	@Success		200				{array}		response.SolicitationResponse
//	@Router			/v1/solicitations [get]
func (h *SolicitationHandler) ListSolicitations(c *gin.Context) {
	solicitations, err := h.usecase.List(c.Request.Context(), c.Query("engagementId"))
	if err != nil {
		appErr := mapSolicitationError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromSolicitations(solicitations))
}

func mapSolicitationError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidSolicitationToken), errors.Is(err, usecase.ErrInvalidRecipientName), errors.Is(err, usecase.ErrInvalidEngagementID):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrEngagementNotFound):
		return pkg.NewDomainErrorSimple("ENGAGEMENT_NOT_FOUND", "Engagement not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrSolicitationNotFound):
		return pkg.NewDomainErrorSimple("SOLICITATION_NOT_FOUND", "Solicitation not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrSolicitationExpired):
		return pkg.NewDomainErrorSimple("SOLICITATION_EXPIRED", "This feedback link has expired", http.StatusGone)
	case errors.Is(err, usecase.ErrSolicitationAlreadyResolved):
		return pkg.NewDomainErrorSimple("SOLICITATION_ALREADY_RESOLVED", "Feedback was already submitted for this link", http.StatusConflict)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
