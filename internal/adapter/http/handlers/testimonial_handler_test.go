package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"pulse_tracker/internal/adapter/http/handlers/mocks"
	"pulse_tracker/internal/domain/entities"
	"pulse_tracker/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func TestTestimonialHandler_SubmitFeedback(t *testing.T) {
	gin.SetMode(gin.TestMode)

	newRouter := func(uc *mocks.MockITestimonialUseCase) *gin.Engine {
		h := NewTestimonialHandler(uc)
		r := gin.New()
		r.POST("/v1/feedback", h.SubmitFeedback)
		return r
	}

	t.Run("missing text fails binding", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockITestimonialUseCase(ctrl)
		r := newRouter(uc)

		req := httptest.NewRequest(http.MethodPost, "/v1/feedback", bytes.NewBufferString(`{"submitterName":"Dana"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("expired token", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockITestimonialUseCase(ctrl)
		r := newRouter(uc)

		uc.EXPECT().SubmitPublic(gomock.Any(), gomock.Any()).Return(entities.Testimonial{}, usecase.ErrSolicitationExpired)

		req := httptest.NewRequest(http.MethodPost, "/v1/feedback", bytes.NewBufferString(`{"submitterName":"Dana","testimonialText":"great","token":"tok-1"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusGone {
			t.Fatalf("expected 410, got %d", w.Code)
		}
	})

	t.Run("consumed token", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockITestimonialUseCase(ctrl)
		r := newRouter(uc)

		uc.EXPECT().SubmitPublic(gomock.Any(), gomock.Any()).Return(entities.Testimonial{}, usecase.ErrSolicitationAlreadyResolved)

		req := httptest.NewRequest(http.MethodPost, "/v1/feedback", bytes.NewBufferString(`{"submitterName":"Dana","testimonialText":"great","token":"tok-1"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
	})

	t.Run("solicited success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockITestimonialUseCase(ctrl)
		r := newRouter(uc)

		uc.EXPECT().SubmitPublic(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, in usecase.SubmitTestimonialInput) (entities.Testimonial, error) {
				if in.SolicitationToken != "tok-1" {
					t.Fatalf("expected token in input, got %+v", in)
				}
				return entities.Testimonial{
					ID:     "tm-1",
					Source: entities.TestimonialSourceSolicited,
				}, nil
			},
		)

		req := httptest.NewRequest(http.MethodPost, "/v1/feedback", bytes.NewBufferString(`{"submitterName":"Dana","testimonialText":"great","token":"tok-1","rating":5}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d", w.Code)
		}
		var body map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body["id"] != "tm-1" || body["source"] != "solicited" {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})
}

func TestTestimonialHandler_CreateTestimonial(t *testing.T) {
	gin.SetMode(gin.TestMode)

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc := mocks.NewMockITestimonialUseCase(ctrl)
	h := NewTestimonialHandler(uc)

	r := gin.New()
	r.POST("/v1/testimonials", h.CreateTestimonial)

	uc.EXPECT().CreateInternal(gomock.Any(), gomock.Any()).Return(entities.Testimonial{
		ID:     "tm-1",
		Source: entities.TestimonialSourceInternal,
	}, nil)

	req := httptest.NewRequest(http.MethodPost, "/v1/testimonials", bytes.NewBufferString(`{"submitterName":"Dana","testimonialText":"great"}`))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", w.Code)
	}
}

func TestTestimonialHandler_GetTestimonial(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockITestimonialUseCase(ctrl)
		h := NewTestimonialHandler(uc)

		r := gin.New()
		r.GET("/v1/testimonials/:id", h.GetTestimonial)

		uc.EXPECT().GetByID(gomock.Any(), "ghost").Return(entities.Testimonial{}, usecase.ErrTestimonialNotFound)

		req := httptest.NewRequest(http.MethodGet, "/v1/testimonials/ghost", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockITestimonialUseCase(ctrl)
		h := NewTestimonialHandler(uc)

		r := gin.New()
		r.GET("/v1/testimonials/:id", h.GetTestimonial)

		uc.EXPECT().GetByID(gomock.Any(), "tm-1").Return(entities.Testimonial{ID: "tm-1"}, nil)

		req := httptest.NewRequest(http.MethodGet, "/v1/testimonials/tm-1", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})
}

func TestTestimonialHandler_ListTestimonials(t *testing.T) {
	gin.SetMode(gin.TestMode)

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc := mocks.NewMockITestimonialUseCase(ctrl)
	h := NewTestimonialHandler(uc)

	r := gin.New()
	r.GET("/v1/testimonials", h.ListTestimonials)

	uc.EXPECT().List(gomock.Any(), "eng-1").Return([]entities.Testimonial{{ID: "tm-1"}}, nil)

	req := httptest.NewRequest(http.MethodGet, "/v1/testimonials?engagementId=eng-1", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
}

func TestTestimonialHandler_UpdateTestimonial(t *testing.T) {
	gin.SetMode(gin.TestMode)

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc := mocks.NewMockITestimonialUseCase(ctrl)
	h := NewTestimonialHandler(uc)

	r := gin.New()
	r.PATCH("/v1/testimonials/:id", h.UpdateTestimonial)

	uc.EXPECT().Update(gomock.Any(), "tm-1", gomock.Any()).DoAndReturn(
		func(_ context.Context, id string, patch entities.TestimonialPatch) (entities.Testimonial, error) {
			if patch.Approved == nil || !*patch.Approved {
				t.Fatalf("expected approved patch, got %+v", patch)
			}
			return entities.Testimonial{ID: id, Approved: true}, nil
		},
	)

	req := httptest.NewRequest(http.MethodPatch, "/v1/testimonials/tm-1", bytes.NewBufferString(`{"approved":true}`))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
}

func TestMapTestimonialError(t *testing.T) {
	cases := []struct {
		err  error
		code int
	}{
		{usecase.ErrInvalidTestimonialID, http.StatusBadRequest},
		{usecase.ErrInvalidSubmitterName, http.StatusBadRequest},
		{usecase.ErrInvalidTestimonialText, http.StatusBadRequest},
		{usecase.ErrInvalidSolicitationToken, http.StatusBadRequest},
		{usecase.ErrEngagementNotFound, http.StatusNotFound},
		{usecase.ErrTestimonialNotFound, http.StatusNotFound},
		{usecase.ErrSolicitationNotFound, http.StatusNotFound},
		{usecase.ErrSolicitationExpired, http.StatusGone},
		{usecase.ErrSolicitationAlreadyResolved, http.StatusConflict},
		{errors.New("other"), http.StatusInternalServerError},
	}

	for _, tc := range cases {
		got := mapTestimonialError(tc.err)
		if got.HTTPStatus != tc.code {
			t.Fatalf("for err %v expected %d got %d", tc.err, tc.code, got.HTTPStatus)
		}
	}
}
