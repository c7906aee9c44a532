//nolint:revive // "api" package name is intentionally concise for this layer.
package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/communitylabs/doorman/internal/domain"
)

func TestJSON(t *testing.T) {
	w := httptest.NewRecorder()
	data := map[string]string{"foo": "bar"}

	JSON(w, http.StatusOK, data)

	resp := w.Result()
	if resp.StatusCode != http.StatusOK {
		t.Errorf("Expected status 200, got %d", resp.StatusCode)
	}

	var got map[string]string
	if err := json.NewDecoder(resp.Body).Decode(&got); err != nil {
		t.Fatalf("Failed to decode response: %v", err)
	}

	if got["foo"] != "bar" {
		t.Errorf("Expected foo=bar, got %v", got["foo"])
	}
}

type stubRecorder struct {
	pingErr error
}

func (s *stubRecorder) Append(context.Context, *domain.RegistrationRecord) error { return nil }

func (s *stubRecorder) Describe(context.Context) (string, error) { return "stub", s.pingErr }

func (s *stubRecorder) Ping(context.Context) error { return s.pingErr }

func TestHealthHandler(t *testing.T) {
	cases := []struct {
		name       string
		pingErr    error
		wantStatus int
		wantSheet  string
	}{
		{"healthy", nil, http.StatusOK, "ok"},
		{"degraded", errors.New("boom"), http.StatusServiceUnavailable, "unreachable"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			h := NewHealthHandler(&stubRecorder{pingErr: tc.pingErr}, nil)

			w := httptest.NewRecorder()
			r := httptest.NewRequest(http.MethodGet, "/health", nil)
			h.Health(w, r)

			resp := w.Result()
			if resp.StatusCode != tc.wantStatus {
				t.Errorf("Expected status %d, got %d", tc.wantStatus, resp.StatusCode)
			}

			var body struct {
				Status string            `json:"status"`
				Checks map[string]string `json:"checks"`
			}
			if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
				t.Fatalf("Failed to decode response: %v", err)
			}
			if body.Checks["sheet"] != tc.wantSheet {
				t.Errorf("Expected sheet check %q, got %q", tc.wantSheet, body.Checks["sheet"])
			}
		})
	}
}
