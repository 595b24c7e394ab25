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

func TestEngagementHandler_CreateEngagement(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("invalid payload", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIEngagementUseCase(ctrl)
		h := NewEngagementHandler(uc)

		r := gin.New()
		r.POST("/v1/engagements", h.CreateEngagement)

		req := httptest.NewRequest(http.MethodPost, "/v1/engagements", bytes.NewBufferString("{"))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("missing name fails binding", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIEngagementUseCase(ctrl)
		h := NewEngagementHandler(uc)

		r := gin.New()
		r.POST("/v1/engagements", h.CreateEngagement)

		req := httptest.NewRequest(http.MethodPost, "/v1/engagements", bytes.NewBufferString(`{"team":"Core"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIEngagementUseCase(ctrl)
		h := NewEngagementHandler(uc)

		r := gin.New()
		r.POST("/v1/engagements", h.CreateEngagement)

		uc.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, e entities.Engagement) (entities.Engagement, error) {
				e.ID = "eng-1"
				return e, nil
			},
		)

		req := httptest.NewRequest(http.MethodPost, "/v1/engagements", bytes.NewBufferString(`{"name":"Rollout","team":"Core"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d", w.Code)
		}
		var body map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body["id"] != "eng-1" || body["name"] != "Rollout" {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})
}

func TestEngagementHandler_GetEngagement(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIEngagementUseCase(ctrl)
		h := NewEngagementHandler(uc)

		r := gin.New()
		r.GET("/v1/engagements/:id", h.GetEngagement)

		uc.EXPECT().GetByID(gomock.Any(), "ghost").Return(entities.Engagement{}, usecase.ErrEngagementNotFound)

		req := httptest.NewRequest(http.MethodGet, "/v1/engagements/ghost", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIEngagementUseCase(ctrl)
		h := NewEngagementHandler(uc)

		r := gin.New()
		r.GET("/v1/engagements/:id", h.GetEngagement)

		uc.EXPECT().GetByID(gomock.Any(), "eng-1").Return(entities.Engagement{ID: "eng-1", Name: "Rollout"}, nil)

		req := httptest.NewRequest(http.MethodGet, "/v1/engagements/eng-1", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})
}

func TestEngagementHandler_ListEngagements(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("status filter passthrough", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIEngagementUseCase(ctrl)
		h := NewEngagementHandler(uc)

		r := gin.New()
		r.GET("/v1/engagements", h.ListEngagements)

		uc.EXPECT().List(gomock.Any(), entities.EngagementStatusActive).Return([]entities.Engagement{{ID: "eng-1"}}, nil)

		req := httptest.NewRequest(http.MethodGet, "/v1/engagements?status=active", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("unknown status", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIEngagementUseCase(ctrl)
		h := NewEngagementHandler(uc)

		r := gin.New()
		r.GET("/v1/engagements", h.ListEngagements)

		uc.EXPECT().List(gomock.Any(), entities.EngagementStatus("stalled")).Return(nil, usecase.ErrInvalidEngagementStatus)

		req := httptest.NewRequest(http.MethodGet, "/v1/engagements?status=stalled", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})
}

func TestEngagementHandler_UpdateEngagement(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIEngagementUseCase(ctrl)
		h := NewEngagementHandler(uc)

		r := gin.New()
		r.PATCH("/v1/engagements/:id", h.UpdateEngagement)

		uc.EXPECT().Update(gomock.Any(), "eng-1", gomock.Any()).DoAndReturn(
			func(_ context.Context, id string, patch entities.EngagementPatch) (entities.Engagement, error) {
				if patch.Status == nil || *patch.Status != entities.EngagementStatusPaused {
					t.Fatalf("unexpected patch: %+v", patch)
				}
				return entities.Engagement{ID: id, Status: *patch.Status}, nil
			},
		)

		req := httptest.NewRequest(http.MethodPatch, "/v1/engagements/eng-1", bytes.NewBufferString(`{"status":"paused"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIEngagementUseCase(ctrl)
		h := NewEngagementHandler(uc)

		r := gin.New()
		r.PATCH("/v1/engagements/:id", h.UpdateEngagement)

		uc.EXPECT().Update(gomock.Any(), "ghost", gomock.Any()).Return(entities.Engagement{}, usecase.ErrEngagementNotFound)

		req := httptest.NewRequest(http.MethodPatch, "/v1/engagements/ghost", bytes.NewBufferString(`{}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})
}

func TestEngagementHandler_DeleteEngagement(t *testing.T) {
	gin.SetMode(gin.TestMode)

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc := mocks.NewMockIEngagementUseCase(ctrl)
	h := NewEngagementHandler(uc)

	r := gin.New()
	r.DELETE("/v1/engagements/:id", h.DeleteEngagement)

	uc.EXPECT().Delete(gomock.Any(), "eng-1").Return(nil)

	req := httptest.NewRequest(http.MethodDelete, "/v1/engagements/eng-1", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusNoContent {
		t.Fatalf("expected 204, got %d", w.Code)
	}
}

func TestMapEngagementError(t *testing.T) {
	cases := []struct {
		err  error
		code int
	}{
		{usecase.ErrInvalidEngagementID, http.StatusBadRequest},
		{usecase.ErrInvalidEngagementName, http.StatusBadRequest},
		{usecase.ErrInvalidEngagementStatus, http.StatusBadRequest},
		{usecase.ErrEngagementNotFound, http.StatusNotFound},
		{errors.New("other"), http.StatusInternalServerError},
	}

	for _, tc := range cases {
		got := mapEngagementError(tc.err)
		if got.HTTPStatus != tc.code {
			t.Fatalf("for err %v expected %d got %d", tc.err, tc.code, got.HTTPStatus)
		}
	}
}
