// internal/app/features/joinedevents/list.go
package joinedevents

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/dalemusser/socialevents/internal/app/system/httpjson"
	"github.com/dalemusser/socialevents/internal/app/system/timeouts"
)

// ServeList handles GET /joined-events/:email, returning the join records
// for the given participant.
func (h *Handler) ServeList(w http.ResponseWriter, r *http.Request) {
	email := chi.URLParam(r, "email")

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	joins, err := h.Joins.ListByParticipant(ctx, email)
	if err != nil {
		h.Log.Error("joined-events list failed", zap.Error(err), zap.String("email", email))
		httpjson.Error(w, http.StatusInternalServerError, "Failed to load joined events")
		return
	}

	httpjson.OK(w, joins)
}
