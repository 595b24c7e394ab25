package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"pulse_tracker/internal/usecase"
	"pulse_tracker/pkg"

	"github.com/gin-gonic/gin"
)

const defaultRecentEngagements = 5

// ReportHandler serves the read-only roll-up endpoints. It composes the
// listing use cases with the pure summarize functions.

type ReportHandler struct {
	engagements  usecase.IEngagementUseCase
	testimonials usecase.ITestimonialUseCase
}

func NewReportHandler(engagements usecase.IEngagementUseCase, testimonials usecase.ITestimonialUseCase) *ReportHandler {
	return &ReportHandler{engagements: engagements, testimonials: testimonials}
}

// EngagementOverview godoc
//
//	@Summary		Status counts and recently updated engagements
//	@Tags			reports
//	@Produce		json
//	@Param			recentLimit	query		int	false	"How many recent engagements to include"
//	@Success		200			{object}	usecase.EngagementOverview
//	@Router			/v1/reports/engagements [get]
func (h *ReportHandler) EngagementOverview(c *gin.Context) {
	engagements, err := h.engagements.List(c.Request.Context(), "")
	if err != nil {
		appErr := mapEngagementError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	recentLimit := defaultRecentEngagements
	if raw := c.Query("recentLimit"); raw != "" {
		if n, err := strconv.Atoi(raw); err == nil && n > 0 {
			recentLimit = n
		}
	}

	c.JSON(http.StatusOK, usecase.SummarizeEngagements(engagements, recentLimit))
}

// TestimonialInsights godoc
//
//	@Summary		Ratings, recommendation rate and highlight quotes
//	@Tags			reports
//	@Produce		json
//	@Param			engagementId	query		string	false	"Limit to one engagement"
//	@Success		200				{object}	usecase.TestimonialInsights
//	@Failure		404				{object}	pkg.HTTPError
//	@Router			/v1/reports/testimonials [get]
func (h *ReportHandler) TestimonialInsights(c *gin.Context) {
	testimonials, err := h.testimonials.List(c.Request.Context(), c.Query("engagementId"))
	if err != nil {
		appErr := mapTestimonialError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	insights, err := usecase.SummarizeTestimonials(testimonials)
	if err != nil {
		if errors.Is(err, usecase.ErrNoTestimonials) {
			appErr := pkg.NewDomainErrorSimple("NO_TESTIMONIALS", "No testimonials to summarize", http.StatusNotFound)
			c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
			return
		}
		appErr := pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, insights)
}
