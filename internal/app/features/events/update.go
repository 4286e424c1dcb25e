// internal/app/features/events/update.go
package events

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"

	eventstore "github.com/dalemusser/socialevents/internal/app/store/events"
	"github.com/dalemusser/socialevents/internal/app/system/htmlsanitize"
	"github.com/dalemusser/socialevents/internal/app/system/httpjson"
	"github.com/dalemusser/socialevents/internal/app/system/timeouts"
	"github.com/dalemusser/socialevents/internal/domain/models"
)

// ServeUpdate handles PUT /events/:id. Fields present in the body replace
// the stored values; absent fields are left alone.
func (h *Handler) ServeUpdate(w http.ResponseWriter, r *http.Request) {
	id, err := primitive.ObjectIDFromHex(chi.URLParam(r, "id"))
	if err != nil {
		httpjson.Error(w, http.StatusBadRequest, "Invalid event id")
		return
	}

	var req updateRequest
	if !httpjson.Decode(w, r, &req) {
		return
	}
	if err := validate.Struct(req); err != nil {
		httpjson.Error(w, http.StatusBadRequest, "Invalid event payload")
		return
	}

	upd := eventstore.Update{
		Title:       sanitized(req.Title),
		Type:        req.Type,
		Description: sanitized(req.Description),
		Email:       req.Email,
		Date:        req.Date,
		Location:    sanitized(req.Location),
		Image:       req.Image,
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	matched, modified, err := h.Events.Apply(ctx, id, upd)
	if err != nil {
		h.Log.Error("event update failed", zap.Error(err), zap.String("id", id.Hex()))
		httpjson.Error(w, http.StatusInternalServerError, "Failed to update event")
		return
	}

	httpjson.OK(w, models.UpdateAck{
		Acknowledged:  true,
		MatchedCount:  matched,
		ModifiedCount: modified,
	})
}

func sanitized(s *string) *string {
	if s == nil {
		return nil
	}
	clean := htmlsanitize.Sanitize(*s)
	return &clean
}
