// internal/app/features/users/handler.go
package users

import (
	userstore "github.com/dalemusser/socialevents/internal/app/store/users"
	"go.uber.org/zap"
)

// Handler holds dependencies for the user endpoints.
type Handler struct {
	Users *userstore.Store
	Log   *zap.Logger
}

// NewHandler constructs a users Handler.
func NewHandler(store *userstore.Store, logger *zap.Logger) *Handler {
	return &Handler{
		Users: store,
		Log:   logger,
	}
}
