// internal/app/features/events/types.go
package events

import "github.com/go-playground/validator/v10"

var validate = validator.New()

// createRequest is the JSON body for POST /events. Everything past the
// required title and organizer email is free-form; clients send whatever
// attributes their event card displays.
type createRequest struct {
	Title       string `json:"title" validate:"required"`
	Type        string `json:"type"`
	Description string `json:"description"`
	Email       string `json:"email" validate:"required,email"`
	Date        string `json:"date"`
	Location    string `json:"location"`
	Image       string `json:"image"`
}

// updateRequest is the JSON body for PUT /events/:id. Absent fields stay
// untouched, so the handler can tell "not sent" from "sent empty".
type updateRequest struct {
	Title       *string `json:"title"`
	Type        *string `json:"type"`
	Description *string `json:"description"`
	Email       *string `json:"email" validate:"omitempty,email"`
	Date        *string `json:"date"`
	Location    *string `json:"location"`
	Image       *string `json:"image"`
}
