package status_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/dalemusser/socialevents/internal/app/features/status"
)

func TestServeRoot(t *testing.T) {
	h := status.NewHandler()

	rec := httptest.NewRecorder()
	h.ServeRoot(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	if rec.Code != http.StatusOK {
		t.Errorf("status code: got %d, want 200", rec.Code)
	}
	if rec.Body.String() != "Social Events Server is Running" {
		t.Errorf("body: got %q, want the status banner", rec.Body.String())
	}
}
