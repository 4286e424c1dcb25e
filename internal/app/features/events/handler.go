// internal/app/features/events/handler.go
package events

import (
	eventstore "github.com/dalemusser/socialevents/internal/app/store/events"
	"go.uber.org/zap"
)

// Handler holds dependencies for the event endpoints.
type Handler struct {
	Events *eventstore.Store
	Log    *zap.Logger
}

// NewHandler constructs an events Handler.
func NewHandler(store *eventstore.Store, logger *zap.Logger) *Handler {
	return &Handler{
		Events: store,
		Log:    logger,
	}
}
