// internal/app/features/events/create.go
package events

import (
	"context"
	"net/http"

	"go.uber.org/zap"

	"github.com/dalemusser/socialevents/internal/app/system/htmlsanitize"
	"github.com/dalemusser/socialevents/internal/app/system/httpjson"
	"github.com/dalemusser/socialevents/internal/app/system/timeouts"
	"github.com/dalemusser/socialevents/internal/domain/models"
)

// ServeCreate handles POST /events. Responds with the insert
// acknowledgment carrying the new event's id.
func (h *Handler) ServeCreate(w http.ResponseWriter, r *http.Request) {
	var req createRequest
	if !httpjson.Decode(w, r, &req) {
		return
	}
	if err := validate.Struct(req); err != nil {
		httpjson.Error(w, http.StatusBadRequest, "Invalid event payload")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	// Event text is rendered on other users' browse pages; strip markup
	// that could smuggle script.
	ev := models.Event{
		Title:       htmlsanitize.Sanitize(req.Title),
		Type:        req.Type,
		Description: htmlsanitize.Sanitize(req.Description),
		Email:       req.Email,
		Date:        req.Date,
		Location:    htmlsanitize.Sanitize(req.Location),
		Image:       req.Image,
	}

	created, err := h.Events.Create(ctx, ev)
	if err != nil {
		h.Log.Error("event create failed", zap.Error(err))
		httpjson.Error(w, http.StatusInternalServerError, "Failed to create event")
		return
	}

	httpjson.OK(w, models.NewInsertAck(created.ID.Hex()))
}
