// internal/app/features/events/get.go
package events

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"

	"github.com/dalemusser/socialevents/internal/app/system/httpjson"
	"github.com/dalemusser/socialevents/internal/app/system/timeouts"
)

// ServeGet handles GET /events/:id. A well-formed id with no matching
// event responds 200 with a JSON null body, which is what event detail
// pages expect for a stale link.
func (h *Handler) ServeGet(w http.ResponseWriter, r *http.Request) {
	id, err := primitive.ObjectIDFromHex(chi.URLParam(r, "id"))
	if err != nil {
		httpjson.Error(w, http.StatusBadRequest, "Invalid event id")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	ev, err := h.Events.GetByID(ctx, id)
	if err == mongo.ErrNoDocuments {
		httpjson.OK(w, nil)
		return
	}
	if err != nil {
		h.Log.Error("event lookup failed", zap.Error(err), zap.String("id", id.Hex()))
		httpjson.Error(w, http.StatusInternalServerError, "Failed to load event")
		return
	}

	httpjson.OK(w, ev)
}
