// internal/domain/models/event.go
package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Event is a single social event created by an organizer.
//
// The organizer is identified by the Email field; "my events" lookups
// filter on it. Date and Location are free-form strings supplied by the
// client — the server does not parse or localize them.
type Event struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	Title       string             `bson:"title" json:"title"`
	Type        string             `bson:"type,omitempty" json:"type,omitempty"`
	Description string             `bson:"description,omitempty" json:"description,omitempty"`
	Email       string             `bson:"email" json:"email"` // organizer email
	Date        string             `bson:"date,omitempty" json:"date,omitempty"`
	Location    string             `bson:"location,omitempty" json:"location,omitempty"`
	Image       string             `bson:"image,omitempty" json:"image,omitempty"`
}
