package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"pulse_tracker/internal/adapter/http/handlers/mocks"
	"pulse_tracker/internal/domain/entities"
	"pulse_tracker/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func TestSolicitationHandler_CreateSolicitation(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("missing required fields", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockISolicitationUseCase(ctrl)
		h := NewSolicitationHandler(uc)

		r := gin.New()
		r.POST("/v1/solicitations", h.CreateSolicitation)

		req := httptest.NewRequest(http.MethodPost, "/v1/solicitations", bytes.NewBufferString(`{"engagementId":"eng-1"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("engagement not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockISolicitationUseCase(ctrl)
		h := NewSolicitationHandler(uc)

		r := gin.New()
		r.POST("/v1/solicitations", h.CreateSolicitation)

		uc.EXPECT().Create(gomock.Any(), gomock.Any()).Return(entities.Solicitation{}, "", usecase.ErrEngagementNotFound)

		req := httptest.NewRequest(http.MethodPost, "/v1/solicitations", bytes.NewBufferString(`{"engagementId":"ghost","recipientName":"Dana"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})

	t.Run("success returns link", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockISolicitationUseCase(ctrl)
		h := NewSolicitationHandler(uc)

		r := gin.New()
		r.POST("/v1/solicitations", h.CreateSolicitation)

		created := entities.Solicitation{
			Token:         "tok-1",
			EngagementID:  "eng-1",
			RecipientName: "Dana",
			Status:        entities.SolicitationStatusPending,
		}
		uc.EXPECT().Create(gomock.Any(), gomock.Any()).Return(created, "http://localhost:3000/feedback.html?token=tok-1", nil)

		req := httptest.NewRequest(http.MethodPost, "/v1/solicitations", bytes.NewBufferString(`{"engagementId":"eng-1","recipientName":"Dana","expiryDays":7}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d", w.Code)
		}
		var body map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body["token"] != "tok-1" || body["feedbackUrl"] != "http://localhost:3000/feedback.html?token=tok-1" {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})
}

func TestSolicitationHandler_GetSolicitationForm(t *testing.T) {
	gin.SetMode(gin.TestMode)

	newRouter := func(uc *mocks.MockISolicitationUseCase) *gin.Engine {
		h := NewSolicitationHandler(uc)
		r := gin.New()
		r.GET("/v1/feedback/:token", h.GetSolicitationForm)
		return r
	}

	t.Run("unknown token", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockISolicitationUseCase(ctrl)
		r := newRouter(uc)

		uc.EXPECT().GetByToken(gomock.Any(), "ghost").Return(entities.Solicitation{}, usecase.ErrSolicitationNotFound)

		req := httptest.NewRequest(http.MethodGet, "/v1/feedback/ghost", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})

	t.Run("expired token", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockISolicitationUseCase(ctrl)
		r := newRouter(uc)

		uc.EXPECT().GetByToken(gomock.Any(), "tok-1").Return(entities.Solicitation{
			Token:  "tok-1",
			Status: entities.SolicitationStatusExpired,
		}, nil)

		req := httptest.NewRequest(http.MethodGet, "/v1/feedback/tok-1", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusGone {
			t.Fatalf("expected 410, got %d", w.Code)
		}
	})

	t.Run("already submitted token", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockISolicitationUseCase(ctrl)
		r := newRouter(uc)

		uc.EXPECT().GetByToken(gomock.Any(), "tok-1").Return(entities.Solicitation{
			Token:  "tok-1",
			Status: entities.SolicitationStatusCompleted,
		}, nil)

		req := httptest.NewRequest(http.MethodGet, "/v1/feedback/tok-1", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
	})

	t.Run("pending token returns public projection", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockISolicitationUseCase(ctrl)
		r := newRouter(uc)

		uc.EXPECT().GetByToken(gomock.Any(), "tok-1").Return(entities.Solicitation{
			Token:          "tok-1",
			EngagementID:   "eng-1",
			EngagementName: "Rollout",
			RecipientName:  "Dana",
			RecipientEmail: "dana@example.com",
			Status:         entities.SolicitationStatusPending,
			ExpiresAt:      time.Now().UTC().Add(time.Hour),
		}, nil)

		req := httptest.NewRequest(http.MethodGet, "/v1/feedback/tok-1", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body["engagementName"] != "Rollout" {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
		if _, leaked := body["recipientEmail"]; leaked {
			t.Fatalf("recipientEmail must not reach the public form: %s", w.Body.String())
		}
	})
}

func TestSolicitationHandler_ListSolicitations(t *testing.T) {
	gin.SetMode(gin.TestMode)

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc := mocks.NewMockISolicitationUseCase(ctrl)
	h := NewSolicitationHandler(uc)

	r := gin.New()
	r.GET("/v1/solicitations", h.ListSolicitations)

	uc.EXPECT().List(gomock.Any(), "eng-1").Return([]entities.Solicitation{{Token: "tok-1"}}, nil)

	req := httptest.NewRequest(http.MethodGet, "/v1/solicitations?engagementId=eng-1", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
}

func TestMapSolicitationError(t *testing.T) {
	cases := []struct {
		err  error
		code int
	}{
		{usecase.ErrInvalidSolicitationToken, http.StatusBadRequest},
		{usecase.ErrInvalidRecipientName, http.StatusBadRequest},
		{usecase.ErrInvalidEngagementID, http.StatusBadRequest},
		{usecase.ErrEngagementNotFound, http.StatusNotFound},
		{usecase.ErrSolicitationNotFound, http.StatusNotFound},
		{usecase.ErrSolicitationExpired, http.StatusGone},
		{usecase.ErrSolicitationAlreadyResolved, http.StatusConflict},
		{errors.New("other"), http.StatusInternalServerError},
	}

	for _, tc := range cases {
		got := mapSolicitationError(tc.err)
		if got.HTTPStatus != tc.code {
			t.Fatalf("for err %v expected %d got %d", tc.err, tc.code, got.HTTPStatus)
		}
	}
}
