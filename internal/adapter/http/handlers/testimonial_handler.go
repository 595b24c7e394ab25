package handlers

import (
	"errors"
	"log"
	"net/http"

	request "pulse_tracker/internal/adapter/http/dto/request"
	response "pulse_tracker/internal/adapter/http/dto/response"
	"pulse_tracker/internal/usecase"
	"pulse_tracker/pkg"

	"github.com/gin-gonic/gin"
)

var (
	errInvalidTestimonialPayload = pkg.NewDomainErrorSimple("INVALID_TESTIMONIAL_INPUT", "Invalid testimonial payload", http.StatusBadRequest)
)

// TestimonialHandler handles both the public submit endpoint and the
// internal testimonial management endpoints.

type TestimonialHandler struct {
	usecase usecase.ITestimonialUseCase
}

func NewTestimonialHandler(uc usecase.ITestimonialUseCase) *TestimonialHandler {
	return &TestimonialHandler{usecase: uc}
}

// SubmitFeedback godoc
//
//	@Summary		Submit feedback from the public form
//	@Description	With a token the submission consumes its invitation; without one it lands as ad-hoc feedback.
//	@Tags			feedback
//	@Accept			json
//	@Produce		json
//	@Param			feedback	body		request.SubmitTestimonialRequest	true	"Feedback"
//	@Success		201			{object}	response.TestimonialResponse
//	@Failure		400			{object}	pkg.HTTPError
//	@Failure		404			{object}	pkg.HTTPError
//	@Failure		409			{object}	pkg.HTTPError
//	@Failure		410			{object}	pkg.HTTPError
//	@Router			/v1/feedback [post]
func (h *TestimonialHandler) SubmitFeedback(c *gin.Context) {
	var payload request.SubmitTestimonialRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidTestimonialPayload.HTTPStatus, errInvalidTestimonialPayload.ToHTTPError())
		return
	}

	log.Printf("[testimonial][handler] submit start token_present=%t engagement_id=%s", payload.SolicitationToken != "", payload.EngagementID)
	created, err := h.usecase.SubmitPublic(c.Request.Context(), payload.ToInput())
	if err != nil {
		log.Printf("[testimonial][handler] submit failed err=%v", err)
		appErr := mapTestimonialError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	log.Printf("[testimonial][handler] submit success testimonial_id=%s source=%s", created.ID, created.Source)

	c.JSON(http.StatusCreated, response.FromTestimonial(created))
}

// CreateTestimonial godoc
//
//	@Summary		Record a testimonial internally
//	@Tags			testimonials
//	@Accept			json
//	@Produce		json
//	@Param			testimonial	body		request.SubmitTestimonialRequest	true	"Testimonial"
//	@Success		201			{object}	response.TestimonialResponse
//	@Failure		400			{object}	pkg.HTTPError
//	@Failure		404			{object}	pkg.HTTPError
//	@Router			/v1/testimonials [post]
func (h *TestimonialHandler) CreateTestimonial(c *gin.Context) {
	var payload request.SubmitTestimonialRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidTestimonialPayload.HTTPStatus, errInvalidTestimonialPayload.ToHTTPError())
		return
	}

	created, err := h.usecase.CreateInternal(c.Request.Context(), payload.ToInput())
	if err != nil {
		appErr := mapTestimonialError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromTestimonial(created))
}

// GetTestimonial godoc
//
//	@Summary		Get one testimonial by id
//	@Tags			testimonials
//	@Produce		json
//	@Param			id	path		string	true	"Testimonial id"
//	@Success		200	{object}	response.TestimonialResponse
//	@Failure		404	{object}	pkg.HTTPError
//	@Router			/v1/testimonials/{id} [get]
func (h *TestimonialHandler) GetTestimonial(c *gin.Context) {
	testimonial, err := h.usecase.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapTestimonialError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromTestimonial(testimonial))
}

// ListTestimonials godoc
//
//	@Summary		List testimonials, newest first
//	@Tags			testimonials
//	@Produce		json
//	@Param			engagementId	query		string	false	"Filter by engagement"
//	@Success		200				{array}		response.TestimonialResponse
//	@Router			/v1/testimonials [get]
func (h *TestimonialHandler) ListTestimonials(c *gin.Context) {
	testimonials, err := h.usecase.List(c.Request.Context(), c.Query("engagementId"))
	if err != nil {
		appErr := mapTestimonialError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromTestimonials(testimonials))
}

// UpdateTestimonial godoc
//
//	@Summary		Moderate a testimonial
//	@Tags			testimonials
//	@Accept			json
//	@Produce		json
//	@Param			id			path		string								true	"Testimonial id"
//	@Param			testimonial	body		request.UpdateTestimonialRequest	true	"Fields to change"
//	@Success		200			{object}	response.TestimonialResponse
//	@Failure		400			{object}	pkg.HTTPError
//	@Failure		404			{object}	pkg.HTTPError
//	@Router			/v1/testimonials/{id} [patch]
func (h *TestimonialHandler) UpdateTestimonial(c *gin.Context) {
	var payload request.UpdateTestimonialRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidTestimonialPayload.HTTPStatus, errInvalidTestimonialPayload.ToHTTPError())
		return
	}

	updated, err := h.usecase.Update(c.Request.Context(), c.Param("id"), payload.ToPatch())
	if err != nil {
		appErr := mapTestimonialError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromTestimonial(updated))
}

func mapTestimonialError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidTestimonialID), errors.Is(err, usecase.ErrInvalidSubmitterName), errors.Is(err, usecase.ErrInvalidTestimonialText), errors.Is(err, usecase.ErrInvalidSolicitationToken):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrEngagementNotFound):
		return pkg.NewDomainErrorSimple("ENGAGEMENT_NOT_FOUND", "Engagement not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrTestimonialNotFound):
		return pkg.NewDomainErrorSimple("TESTIMONIAL_NOT_FOUND", "Testimonial not found", http.StatusNotFound)
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
