package http

import (
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"hospital-backend/internal/delivery/http/middleware"

	"github.com/sirupsen/logrus"
)

func newTestRouter() http.Handler {
	log := logrus.New()
	log.SetOutput(io.Discard)

	// Handlers are never invoked by these requests.
	return NewRouter(
		Handlers{},
		middleware.NewAuthMiddleware(nil, nil),
		middleware.NewCORSMiddleware("https://admin.example.com"),
		middleware.NewLoggingMiddleware(log),
	).Setup()
}

func TestRouterStatusForUnmatchedRequests(t *testing.T) {
	h := newTestRouter()

	tests := []struct {
		name   string
		method string
		path   string
		want   int
	}{
		{"health", http.MethodGet, "/health", http.StatusOK},
		{"unknown path", http.MethodGet, "/no-such-route", http.StatusNotFound},
		{"unknown nested path", http.MethodPost, "/patients/1/notes", http.StatusNotFound},
		{"wrong method", http.MethodPatch, "/health", http.StatusMethodNotAllowed},
		{"preflight on known path", http.MethodOptions, "/operation-theater-booking", http.StatusNoContent},
		{"preflight on unknown path", http.MethodOptions, "/no-such-route", http.StatusNoContent},
		{"protected without token", http.MethodGet, "/patients", http.StatusUnauthorized},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			h.ServeHTTP(rec, httptest.NewRequest(tt.method, tt.path, nil))
			if rec.Code != tt.want {
				t.Fatalf("status = %d, want %d", rec.Code, tt.want)
			}
		})
	}
}

func TestRouterSetsCORSHeadersOnErrors(t *testing.T) {
	h := newTestRouter()

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/no-such-route", nil))

	if got := rec.Header().Get("Access-Control-Allow-Origin"); got != "https://admin.example.com" {
		t.Errorf("allow origin = %q", got)
	}
	if rec.Header().Get(middleware.RequestIDHeader) == "" {
		t.Error("request id header missing")
	}
}
