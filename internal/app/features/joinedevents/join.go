// internal/app/features/joinedevents/join.go
package joinedevents

import (
	"context"
	"net/http"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	joinstore "github.com/dalemusser/socialevents/internal/app/store/joins"
	"github.com/dalemusser/socialevents/internal/app/system/httpjson"
	"github.com/dalemusser/socialevents/internal/app/system/timeouts"
	"github.com/dalemusser/socialevents/internal/domain/models"
)

var validate = validator.New()

// joinRequest is the JSON body for POST /joined-events. EventTitle is
// denormalized into the join record so the "my joined events" list renders
// without a second lookup.
type joinRequest struct {
	EventID    string `json:"eventId" validate:"required"`
	UserEmail  string `json:"userEmail" validate:"required,email"`
	EventTitle string `json:"eventTitle"`
}

// ServeJoin handles POST /joined-events. A second join for the same
// (eventId, userEmail) pair responds 409 {"message":"Already joined"}.
func (h *Handler) ServeJoin(w http.ResponseWriter, r *http.Request) {
	var req joinRequest
	if !httpjson.Decode(w, r, &req) {
		return
	}
	if err := validate.Struct(req); err != nil {
		httpjson.Error(w, http.StatusBadRequest, "Invalid join payload")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	j, err := h.Joins.Join(ctx, models.JoinedEvent{
		EventID:    req.EventID,
		UserEmail:  req.UserEmail,
		EventTitle: req.EventTitle,
	})
	if err == joinstore.ErrAlreadyJoined {
		httpjson.Error(w, http.StatusConflict, "Already joined")
		return
	}
	if err != nil {
		h.Log.Error("join failed", zap.Error(err), zap.String("event_id", req.EventID))
		httpjson.Error(w, http.StatusInternalServerError, "Failed to join event")
		return
	}

	httpjson.OK(w, models.NewInsertAck(j.ID.Hex()))
}
