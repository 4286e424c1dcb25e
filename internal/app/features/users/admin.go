// internal/app/features/users/admin.go
package users

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

// adminResponse is the body for GET /users/admin/:email.
type adminResponse struct {
	Admin bool `json:"admin"`
}

// ServePromoteAdmin handles PATCH /users/admin/:id. Promoting a missing
// user acknowledges with zero counts rather than erroring.
func (h *Handler) ServePromoteAdmin(w http.ResponseWriter, r *http.Request) {
	id, err := primitive.ObjectIDFromHex(chi.URLParam(r, "id"))
	if err != nil {
		httpjson.Error(w, http.StatusBadRequest, "Invalid user id")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	matched, modified, err := h.Users.PromoteAdmin(ctx, id)
	if err != nil {
		h.Log.Error("admin promotion failed", zap.Error(err), zap.String("id", id.Hex()))
		httpjson.Error(w, http.StatusInternalServerError, "Failed to update user")
		return
	}

	httpjson.OK(w, models.UpdateAck{
		Acknowledged:  true,
		MatchedCount:  matched,
		ModifiedCount: modified,
	})
}

// ServeCheckAdmin handles GET /users/admin/:email. An unknown email is
// reported as non-admin, never as an error.
func (h *Handler) ServeCheckAdmin(w http.ResponseWriter, r *http.Request) {
	email := chi.URLParam(r, "email")

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	admin, err := h.Users.IsAdmin(ctx, email)
	if err != nil {
		h.Log.Error("admin check failed", zap.Error(err), zap.String("email", email))
		httpjson.Error(w, http.StatusInternalServerError, "Failed to check user")
		return
	}

	httpjson.OK(w, adminResponse{Admin: admin})
}
