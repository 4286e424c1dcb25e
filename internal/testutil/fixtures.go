// internal/testutil/fixtures.go
package testutil

import (
	"context"
	"testing"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/dalemusser/socialevents/internal/domain/models"
)

// Fixtures provides helper methods for creating test data.
type Fixtures struct {
	db *mongo.Database
	t  *testing.T
}

// NewFixtures creates a new Fixtures instance for the given test database.
func NewFixtures(t *testing.T, db *mongo.Database) *Fixtures {
	t.Helper()
	return &Fixtures{db: db, t: t}
}

// DB returns the underlying database for direct access in tests.
func (f *Fixtures) DB() *mongo.Database {
	return f.db
}

// CreateEvent inserts a test event and returns it with its generated ID.
func (f *Fixtures) CreateEvent(ctx context.Context, title, eventType, organizerEmail string) models.Event {
	f.t.Helper()

	ev := models.Event{
		ID:          primitive.NewObjectID(),
		Title:       title,
		Type:        eventType,
		Description: "A test event.",
		Email:       organizerEmail,
		Date:        "2026-09-12",
		Location:    "Test Hall",
	}

	if _, err := f.db.Collection("events").InsertOne(ctx, ev); err != nil {
		f.t.Fatalf("failed to create test event: %v", err)
	}
	return ev
}

// CreateUser inserts a test user and returns it with its generated ID.
// role may be empty for an ordinary participant.
func (f *Fixtures) CreateUser(ctx context.Context, name, email, role string) models.User {
	f.t.Helper()

	u := models.User{
		ID:        primitive.NewObjectID(),
		Name:      name,
		Email:     email,
		Role:      role,
		CreatedAt: time.Now().UTC(),
	}

	if _, err := f.db.Collection("users").InsertOne(ctx, u); err != nil {
		f.t.Fatalf("failed to create test user: %v", err)
	}
	return u
}

// CreateJoin inserts a test joined-event record.
func (f *Fixtures) CreateJoin(ctx context.Context, eventID, userEmail string) models.JoinedEvent {
	f.t.Helper()

	j := models.JoinedEvent{
		ID:        primitive.NewObjectID(),
		EventID:   eventID,
		UserEmail: userEmail,
		JoinedAt:  time.Now().UTC(),
	}

	if _, err := f.db.Collection("joinedEvents").InsertOne(ctx, j); err != nil {
		f.t.Fatalf("failed to create test join: %v", err)
	}
	return j
}
