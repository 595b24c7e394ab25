package routes

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"

	"pulse_tracker/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

func newTestRouter() *gin.Engine {
	r := gin.New()
	v1 := r.Group("/v1")
	addPingRoutes(v1)
	addTrackerRoutes(v1,
		handlers.NewEngagementHandler(nil),
		handlers.NewSolicitationHandler(nil),
		handlers.NewTestimonialHandler(nil),
		handlers.NewTaskHandler(nil),
		handlers.NewAgentHandler(nil),
		handlers.NewReportHandler(nil, nil),
		handlers.NewChatSummaryHandler(nil),
	)
	return r
}

func TestTrackerRoutes_SolicitationSurface(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := newTestRouter()

	t.Run("create route is registered", func(t *testing.T) {
		// A malformed body is rejected at binding, before any use case runs.
		req := httptest.NewRequest(http.MethodPost, "/v1/solicitations", bytes.NewBufferString("{"))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("no public resolve mutation", func(t *testing.T) {
		// Tokens are only consumed through the feedback submit flow.
		req := httptest.NewRequest(http.MethodPost, "/v1/solicitations/tok-1/resolve", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})
}

func TestPingRoute(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := newTestRouter()

	req := httptest.NewRequest(http.MethodGet, "/v1/ping", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
}
