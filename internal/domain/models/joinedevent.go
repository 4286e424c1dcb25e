// internal/domain/models/joinedevent.go
package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// JoinedEvent records that a user joined an event.
//
// EventID is the hex form of the event's ObjectID as the client sees it.
// At most one JoinedEvent may exist per (event_id, user_email) pair; the
// joinedEvents collection carries a unique compound index to enforce it.
type JoinedEvent struct {
	ID         primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	EventID    string             `bson:"eventId" json:"eventId"`
	UserEmail  string             `bson:"userEmail" json:"userEmail"`
	EventTitle string             `bson:"eventTitle,omitempty" json:"eventTitle,omitempty"`
	JoinedAt   time.Time          `bson:"joinedAt,omitempty" json:"joinedAt,omitempty"`
}
