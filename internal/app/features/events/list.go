// internal/app/features/events/list.go
package events

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	eventstore "github.com/dalemusser/socialevents/internal/app/store/events"
	"github.com/dalemusser/socialevents/internal/app/system/httpjson"
	"github.com/dalemusser/socialevents/internal/app/system/normalize"
	"github.com/dalemusser/socialevents/internal/app/system/timeouts"
)

// ServeList handles GET /events. The optional `type` query parameter is an
// exact category match; `search` is a case-insensitive substring match
// against the title. No parameters returns every event.
func (h *Handler) ServeList(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	filter := eventstore.ListFilter{
		Type:   normalize.QueryParam(r.URL.Query().Get("type")),
		Search: normalize.QueryParam(r.URL.Query().Get("search")),
	}

	events, err := h.Events.List(ctx, filter)
	if err != nil {
		h.Log.Error("event list failed", zap.Error(err))
		httpjson.Error(w, http.StatusInternalServerError, "Failed to load events")
		return
	}

	httpjson.OK(w, events)
}

// ServeListMine handles GET /my-events/:email, returning the events the
// given organizer created.
func (h *Handler) ServeListMine(w http.ResponseWriter, r *http.Request) {
	email := chi.URLParam(r, "email")

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	events, err := h.Events.ListByOrganizer(ctx, email)
	if err != nil {
		h.Log.Error("organizer event list failed", zap.Error(err), zap.String("email", email))
		httpjson.Error(w, http.StatusInternalServerError, "Failed to load events")
		return
	}

	httpjson.OK(w, events)
}
