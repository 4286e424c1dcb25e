// internal/app/features/users/create.go
package users

import (
	"context"
	"net/http"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	userstore "github.com/dalemusser/socialevents/internal/app/store/users"
	"github.com/dalemusser/socialevents/internal/app/system/httpjson"
	"github.com/dalemusser/socialevents/internal/app/system/timeouts"
	"github.com/dalemusser/socialevents/internal/domain/models"
)

var validate = validator.New()

// createRequest is the JSON body for POST /users. Clients post this on
// every sign-in, so re-posting an existing email must not fail.
type createRequest struct {
	Name  string `json:"name"`
	Email string `json:"email" validate:"required,email"`
	Photo string `json:"photo"`
}

// existsResponse is the soft-success body for a duplicate email. The
// insertedId key is present and null, matching what sign-in flows expect.
type existsResponse struct {
	Message    string  `json:"message"`
	InsertedID *string `json:"insertedId"`
}

// ServeCreate handles POST /users.
func (h *Handler) ServeCreate(w http.ResponseWriter, r *http.Request) {
	var req createRequest
	if !httpjson.Decode(w, r, &req) {
		return
	}
	if err := validate.Struct(req); err != nil {
		httpjson.Error(w, http.StatusBadRequest, "Invalid user payload")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	u, err := h.Users.Create(ctx, models.User{
		Name:  req.Name,
		Email: req.Email,
		Photo: req.Photo,
	})
	if err == userstore.ErrUserExists {
		httpjson.OK(w, existsResponse{Message: "User already exists", InsertedID: nil})
		return
	}
	if err != nil {
		h.Log.Error("user create failed", zap.Error(err))
		httpjson.Error(w, http.StatusInternalServerError, "Failed to create user")
		return
	}

	httpjson.OK(w, models.NewInsertAck(u.ID.Hex()))
}
