package httpx_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/ghuser/wardrobe/pkg/httpx"
)

type stubChecker struct{ err error }

func (s *stubChecker) Ping(_ context.Context) error { return s.err }

func serveHealth(t *testing.T, checks httpx.HealthChecks) (int, map[string]string) {
	t.Helper()
	rr := httptest.NewRecorder()
	httpx.HealthHandler(checks).ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/health", http.NoBody))
	var resp map[string]string
	if err := json.NewDecoder(rr.Body).Decode(&resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	return rr.Code, resp
}

func TestHealthHandler(t *testing.T) {
	down := &stubChecker{err: errors.New("conn refused")}

	tests := []struct {
		name       string
		checks     httpx.HealthChecks
		wantStatus int
		want       map[string]string
	}{
		{
			name:       "all healthy",
			checks:     httpx.HealthChecks{Storage: &stubChecker{}, EventBus: &stubChecker{}},
			wantStatus: http.StatusOK,
			want:       map[string]string{"status": "ok", "storage": "ok", "event_bus": "ok"},
		},
		{
			name:       "storage down",
			checks:     httpx.HealthChecks{Storage: down, EventBus: &stubChecker{}},
			wantStatus: http.StatusServiceUnavailable,
			want:       map[string]string{"status": "degraded", "storage": "unreachable", "event_bus": "ok"},
		},
		{
			name:       "event bus down",
			checks:     httpx.HealthChecks{Storage: &stubChecker{}, EventBus: down},
			wantStatus: http.StatusServiceUnavailable,
			want:       map[string]string{"status": "degraded", "storage": "ok", "event_bus": "unreachable"},
		},
		{
			name:       "all down",
			checks:     httpx.HealthChecks{Storage: down, EventBus: down},
			wantStatus: http.StatusServiceUnavailable,
			want:       map[string]string{"status": "degraded", "storage": "unreachable", "event_bus": "unreachable"},
		},
		{
			name:       "nil checker is disabled",
			checks:     httpx.HealthChecks{Storage: &stubChecker{}},
			wantStatus: http.StatusOK,
			want:       map[string]string{"status": "ok", "storage": "ok", "event_bus": "disabled"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			code, resp := serveHealth(t, tt.checks)
			if code != tt.wantStatus {
				t.Fatalf("expected %d, got %d", tt.wantStatus, code)
			}
			for k, v := range tt.want {
				if resp[k] != v {
					t.Errorf("%s: got %q, want %q", k, resp[k], v)
				}
			}
		})
	}
}

func TestHealthHandler_ContentType(t *testing.T) {
	h := httpx.HealthHandler(httpx.HealthChecks{Storage: &stubChecker{}, EventBus: &stubChecker{}})
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/health", http.NoBody))

	ct := rr.Header().Get("Content-Type")
	if ct != "application/json; charset=utf-8" {
		t.Errorf("Content-Type: got %q, want %q", ct, "application/json; charset=utf-8")
	}
}
