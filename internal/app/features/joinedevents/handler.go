// internal/app/features/joinedevents/handler.go
package joinedevents

import (
	joinstore "github.com/dalemusser/socialevents/internal/app/store/joins"
	"go.uber.org/zap"
)

// Handler holds dependencies for the joined-events endpoints.
type Handler struct {
	Joins *joinstore.Store
	Log   *zap.Logger
}

// NewHandler constructs a joined-events Handler.
func NewHandler(store *joinstore.Store, logger *zap.Logger) *Handler {
	return &Handler{
		Joins: store,
		Log:   logger,
	}
}
