// internal/app/system/indexes/indexes.go
package indexes

import (
	"context"
	"errors"
	"strings"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"
)

/*
EnsureAll is called at startup. Each ensure* function is idempotent.
We aggregate errors so any problem is visible and startup can fail fast.

The two unique indexes are the authoritative guards for the service's
invariants: one user per email, one join per (eventId, userEmail). The
handlers still run friendly pre-insert existence checks, but under
concurrent duplicates it is these indexes that hold the line.
*/
func EnsureAll(ctx context.Context, db *mongo.Database, logger *zap.Logger) error {
	var problems []string

	if err := ensureUsers(ctx, db, logger); err != nil {
		problems = append(problems, "users: "+err.Error())
	}
	if err := ensureEvents(ctx, db, logger); err != nil {
		problems = append(problems, "events: "+err.Error())
	}
	if err := ensureJoinedEvents(ctx, db, logger); err != nil {
		problems = append(problems, "joinedEvents: "+err.Error())
	}

	if len(problems) > 0 {
		return errors.New(strings.Join(problems, "; "))
	}
	return nil
}

func ensureIndexSet(ctx context.Context, coll *mongo.Collection, models []mongo.IndexModel, logger *zap.Logger) error {
	names, err := coll.Indexes().CreateMany(ctx, models)
	if err != nil {
		return err
	}
	logger.Info("indexes ensured",
		zap.String("collection", coll.Name()),
		zap.Strings("names", names))
	return nil
}

func ensureUsers(ctx context.Context, db *mongo.Database, logger *zap.Logger) error {
	c := db.Collection("users")
	return ensureIndexSet(ctx, c, []mongo.IndexModel{
		// At most one user record per email.
		{
			Keys:    bson.D{{Key: "email", Value: 1}},
			Options: options.Index().SetUnique(true).SetName("uniq_users_email"),
		},
	}, logger)
}

func ensureEvents(ctx context.Context, db *mongo.Database, logger *zap.Logger) error {
	c := db.Collection("events")
	return ensureIndexSet(ctx, c, []mongo.IndexModel{
		// Category filter on the browse page.
		{
			Keys:    bson.D{{Key: "type", Value: 1}},
			Options: options.Index().SetName("idx_events_type"),
		},
		// "My events" lookups by organizer email.
		{
			Keys:    bson.D{{Key: "email", Value: 1}},
			Options: options.Index().SetName("idx_events_email"),
		},
	}, logger)
}

func ensureJoinedEvents(ctx context.Context, db *mongo.Database, logger *zap.Logger) error {
	c := db.Collection("joinedEvents")
	return ensureIndexSet(ctx, c, []mongo.IndexModel{
		// A user joins a given event at most once.
		{
			Keys:    bson.D{{Key: "eventId", Value: 1}, {Key: "userEmail", Value: 1}},
			Options: options.Index().SetUnique(true).SetName("uniq_joins_event_user"),
		},
		// Participant's joined-events list.
		{
			Keys:    bson.D{{Key: "userEmail", Value: 1}},
			Options: options.Index().SetName("idx_joins_user_email"),
		},
	}, logger)
}
