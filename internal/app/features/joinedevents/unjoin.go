// internal/app/features/joinedevents/unjoin.go
package joinedevents

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"

	"github.com/dalemusser/socialevents/internal/app/system/httpjson"
	"github.com/dalemusser/socialevents/internal/app/system/timeouts"
	"github.com/dalemusser/socialevents/internal/domain/models"
)

// ServeUnjoin handles DELETE /joined-events/:id.
func (h *Handler) ServeUnjoin(w http.ResponseWriter, r *http.Request) {
	id, err := primitive.ObjectIDFromHex(chi.URLParam(r, "id"))
	if err != nil {
		httpjson.Error(w, http.StatusBadRequest, "Invalid joined event id")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	count, err := h.Joins.Delete(ctx, id)
	if err != nil {
		h.Log.Error("unjoin failed", zap.Error(err), zap.String("id", id.Hex()))
		httpjson.Error(w, http.StatusInternalServerError, "Failed to leave event")
		return
	}

	httpjson.OK(w, models.DeleteAck{Acknowledged: true, DeletedCount: count})
}
