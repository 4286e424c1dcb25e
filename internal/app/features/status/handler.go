// internal/app/features/status/handler.go
package status

import "net/http"

// RootMessage is the plain-text banner served at GET /. Deployment
// smoke checks and the frontend's connectivity probe both look for this
// exact string.
const RootMessage = "Social Events Server is Running"

// Handler serves the root status banner.
type Handler struct{}

// NewHandler constructs a status Handler.
func NewHandler() *Handler {
	return &Handler{}
}

// ServeRoot handles GET /.
func (h *Handler) ServeRoot(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(RootMessage))
}
