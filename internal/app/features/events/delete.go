// internal/app/features/events/delete.go
package events

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

// ServeDelete handles DELETE /events/:id. Deleting an id that no longer
// exists still acknowledges with a zero deletedCount.
func (h *Handler) ServeDelete(w http.ResponseWriter, r *http.Request) {
	id, err := primitive.ObjectIDFromHex(chi.URLParam(r, "id"))
	if err != nil {
		httpjson.Error(w, http.StatusBadRequest, "Invalid event id")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	count, err := h.Events.Delete(ctx, id)
	if err != nil {
		h.Log.Error("event delete failed", zap.Error(err), zap.String("id", id.Hex()))
		httpjson.Error(w, http.StatusInternalServerError, "Failed to delete event")
		return
	}

	httpjson.OK(w, models.DeleteAck{Acknowledged: true, DeletedCount: count})
}
