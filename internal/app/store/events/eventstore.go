package eventstore

import (
	"context"
	"regexp"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/dalemusser/socialevents/internal/app/system/normalize"
	"github.com/dalemusser/socialevents/internal/domain/models"
)

type Store struct {
	c *mongo.Collection
}

func New(db *mongo.Database) *Store {
	return &Store{c: db.Collection("events")}
}

// Create inserts a new event and returns it with its assigned ID.
// The organizer email is normalized so "my events" lookups match.
func (s *Store) Create(ctx context.Context, ev models.Event) (models.Event, error) {
	ev.ID = primitive.NewObjectID()
	ev.Email = normalize.Email(ev.Email)

	if _, err := s.c.InsertOne(ctx, ev); err != nil {
		return models.Event{}, err
	}
	return ev, nil
}

// ListFilter narrows a List call. Zero values mean "no constraint".
type ListFilter struct {
	Type   string // exact category match
	Search string // case-insensitive substring match against title
}

// List returns events matching the filter in the store's natural order.
func (s *Store) List(ctx context.Context, f ListFilter) ([]models.Event, error) {
	query := bson.M{}
	if f.Type != "" {
		query["type"] = f.Type
	}
	if f.Search != "" {
		// QuoteMeta keeps the match a literal substring; clients are not
		// offered regex syntax through the search box.
		query["title"] = bson.M{"$regex": regexp.QuoteMeta(f.Search), "$options": "i"}
	}

	cur, err := s.c.Find(ctx, query)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	events := []models.Event{}
	if err := cur.All(ctx, &events); err != nil {
		return nil, err
	}
	return events, nil
}

// GetByID loads an event by ObjectID. Returns mongo.ErrNoDocuments if no
// event exists with that id.
func (s *Store) GetByID(ctx context.Context, id primitive.ObjectID) (*models.Event, error) {
	var ev models.Event
	if err := s.c.FindOne(ctx, bson.M{"_id": id}).Decode(&ev); err != nil {
		return nil, err
	}
	return &ev, nil
}

// ListByOrganizer returns the events created by the given organizer email.
func (s *Store) ListByOrganizer(ctx context.Context, email string) ([]models.Event, error) {
	cur, err := s.c.Find(ctx, bson.M{"email": normalize.Email(email)})
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	events := []models.Event{}
	if err := cur.All(ctx, &events); err != nil {
		return nil, err
	}
	return events, nil
}

// Update holds the fields a PUT may replace. Nil pointers are left alone,
// so the operation is a field-level merge, not a document replacement.
type Update struct {
	Title       *string
	Type        *string
	Description *string
	Email       *string
	Date        *string
	Location    *string
	Image       *string
}

// Apply merges the update into the event identified by id and reports the
// matched and modified counts.
func (s *Store) Apply(ctx context.Context, id primitive.ObjectID, upd Update) (matched, modified int64, err error) {
	set := bson.M{}
	if upd.Title != nil {
		set["title"] = *upd.Title
	}
	if upd.Type != nil {
		set["type"] = *upd.Type
	}
	if upd.Description != nil {
		set["description"] = *upd.Description
	}
	if upd.Email != nil {
		set["email"] = normalize.Email(*upd.Email)
	}
	if upd.Date != nil {
		set["date"] = *upd.Date
	}
	if upd.Location != nil {
		set["location"] = *upd.Location
	}
	if upd.Image != nil {
		set["image"] = *upd.Image
	}

	if len(set) == 0 {
		// Nothing to change; report whether the document exists.
		n, err := s.c.CountDocuments(ctx, bson.M{"_id": id})
		return n, 0, err
	}

	res, err := s.c.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": set})
	if err != nil {
		return 0, 0, err
	}
	return res.MatchedCount, res.ModifiedCount, nil
}

// Delete removes an event by id. Returns the number of documents deleted
// (0 or 1); deleting a missing event is not an error.
func (s *Store) Delete(ctx context.Context, id primitive.ObjectID) (int64, error) {
	res, err := s.c.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return 0, err
	}
	return res.DeletedCount, nil
}
