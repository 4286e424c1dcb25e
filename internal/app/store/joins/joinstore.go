package joinstore

import (
	"context"
	"errors"
	"time"

	wafflemongo "github.com/dalemusser/waffle/pantry/mongo"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/dalemusser/socialevents/internal/app/system/normalize"
	"github.com/dalemusser/socialevents/internal/domain/models"
)

// ErrAlreadyJoined is returned when the (eventId, userEmail) pair already
// has a join record.
var ErrAlreadyJoined = errors.New("user has already joined this event")

type Store struct {
	c *mongo.Collection
}

func New(db *mongo.Database) *Store {
	return &Store{c: db.Collection("joinedEvents")}
}

// Join records that a user joined an event. The pre-insert existence check
// gives the common case a clean answer; the unique index on
// (eventId, userEmail) catches the race where two requests pass the check
// together, and the duplicate-key error maps to the same ErrAlreadyJoined.
func (s *Store) Join(ctx context.Context, j models.JoinedEvent) (models.JoinedEvent, error) {
	j.ID = primitive.NewObjectID()
	j.UserEmail = normalize.Email(j.UserEmail)
	j.JoinedAt = time.Now().UTC()

	err := s.c.FindOne(ctx, bson.M{"eventId": j.EventID, "userEmail": j.UserEmail}).Err()
	if err == nil {
		return models.JoinedEvent{}, ErrAlreadyJoined
	}
	if err != mongo.ErrNoDocuments {
		return models.JoinedEvent{}, err
	}

	if _, err := s.c.InsertOne(ctx, j); err != nil {
		if wafflemongo.IsDup(err) {
			return models.JoinedEvent{}, ErrAlreadyJoined
		}
		return models.JoinedEvent{}, err
	}
	return j, nil
}

// ListByParticipant returns the join records for the given user email.
func (s *Store) ListByParticipant(ctx context.Context, email string) ([]models.JoinedEvent, error) {
	cur, err := s.c.Find(ctx, bson.M{"userEmail": normalize.Email(email)})
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	joins := []models.JoinedEvent{}
	if err := cur.All(ctx, &joins); err != nil {
		return nil, err
	}
	return joins, nil
}

// Delete removes a join record by id. Returns the number of documents
// deleted (0 or 1).
func (s *Store) Delete(ctx context.Context, id primitive.ObjectID) (int64, error) {
	res, err := s.c.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return 0, err
	}
	return res.DeletedCount, nil
}
