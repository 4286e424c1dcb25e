package indexes_test

import (
	"testing"

	wafflemongo "github.com/dalemusser/waffle/pantry/mongo"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"

	"github.com/dalemusser/socialevents/internal/app/system/indexes"
	"github.com/dalemusser/socialevents/internal/testutil"
)

func TestEnsureAll_Idempotent(t *testing.T) {
	db := testutil.SetupTestDB(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	logger := zap.NewNop()

	if err := indexes.EnsureAll(ctx, db, logger); err != nil {
		t.Fatalf("first EnsureAll failed: %v", err)
	}
	// Running again against existing indexes must not error.
	if err := indexes.EnsureAll(ctx, db, logger); err != nil {
		t.Fatalf("second EnsureAll failed: %v", err)
	}
}

func TestEnsureAll_UniqueUserEmail(t *testing.T) {
	db := testutil.SetupTestDB(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	if err := indexes.EnsureAll(ctx, db, zap.NewNop()); err != nil {
		t.Fatalf("EnsureAll failed: %v", err)
	}

	users := db.Collection("users")
	if _, err := users.InsertOne(ctx, bson.M{"email": "dup@example.com", "name": "First"}); err != nil {
		t.Fatalf("first insert failed: %v", err)
	}

	_, err := users.InsertOne(ctx, bson.M{"email": "dup@example.com", "name": "Second"})
	if !wafflemongo.IsDup(err) {
		t.Errorf("expected duplicate-key error, got %v", err)
	}
}

func TestEnsureAll_UniqueJoinPair(t *testing.T) {
	db := testutil.SetupTestDB(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	if err := indexes.EnsureAll(ctx, db, zap.NewNop()); err != nil {
		t.Fatalf("EnsureAll failed: %v", err)
	}

	joins := db.Collection("joinedEvents")
	eventID := primitive.NewObjectID().Hex()

	if _, err := joins.InsertOne(ctx, bson.M{"eventId": eventID, "userEmail": "a@example.com"}); err != nil {
		t.Fatalf("first insert failed: %v", err)
	}

	// Same pair is rejected.
	_, err := joins.InsertOne(ctx, bson.M{"eventId": eventID, "userEmail": "a@example.com"})
	if !wafflemongo.IsDup(err) {
		t.Errorf("expected duplicate-key error, got %v", err)
	}

	// Same user on a different event is fine.
	if _, err := joins.InsertOne(ctx, bson.M{"eventId": primitive.NewObjectID().Hex(), "userEmail": "a@example.com"}); err != nil {
		t.Errorf("different event insert should succeed, got %v", err)
	}
}
