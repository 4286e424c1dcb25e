package joinedevents_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"

	"github.com/dalemusser/socialevents/internal/app/features/joinedevents"
	joinstore "github.com/dalemusser/socialevents/internal/app/store/joins"
	"github.com/dalemusser/socialevents/internal/domain/models"
	"github.com/dalemusser/socialevents/internal/testutil"
)

func newTestHandler(t *testing.T) (*joinedevents.Handler, *testutil.Fixtures) {
	t.Helper()
	db := testutil.SetupTestDB(t)
	return joinedevents.NewHandler(joinstore.New(db), zap.NewNop()), testutil.NewFixtures(t, db)
}

func TestServeJoin(t *testing.T) {
	h, _ := newTestHandler(t)

	req := testutil.NewJSONRequest(t, http.MethodPost, "/joined-events", map[string]string{
		"eventId":    primitive.NewObjectID().Hex(),
		"userEmail":  "member@example.com",
		"eventTitle": "Rooftop Concert",
	})
	rec := httptest.NewRecorder()
	h.ServeJoin(rec, req)

	testutil.AssertStatus(t, rec, http.StatusOK)

	var ack models.InsertAck
	testutil.DecodeJSON(t, rec, &ack)
	if !ack.Acknowledged || ack.InsertedID == nil {
		t.Errorf("join ack: got %+v, want acknowledged insert with id", ack)
	}
}

func TestServeJoin_Duplicate(t *testing.T) {
	h, _ := newTestHandler(t)

	body := map[string]string{
		"eventId":   primitive.NewObjectID().Hex(),
		"userEmail": "member@example.com",
	}

	rec := httptest.NewRecorder()
	h.ServeJoin(rec, testutil.NewJSONRequest(t, http.MethodPost, "/joined-events", body))
	testutil.AssertStatus(t, rec, http.StatusOK)

	rec = httptest.NewRecorder()
	h.ServeJoin(rec, testutil.NewJSONRequest(t, http.MethodPost, "/joined-events", body))
	testutil.AssertStatus(t, rec, http.StatusConflict)
	testutil.AssertMessage(t, rec, "Already joined")
}

func TestServeJoin_InvalidPayload(t *testing.T) {
	h, _ := newTestHandler(t)

	// Missing eventId.
	req := testutil.NewJSONRequest(t, http.MethodPost, "/joined-events", map[string]string{
		"userEmail": "member@example.com",
	})
	rec := httptest.NewRecorder()
	h.ServeJoin(rec, req)

	testutil.AssertStatus(t, rec, http.StatusBadRequest)
	testutil.AssertMessage(t, rec, "Invalid join payload")
}

func TestServeList(t *testing.T) {
	h, fixtures := newTestHandler(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	fixtures.CreateJoin(ctx, primitive.NewObjectID().Hex(), "mine@example.com")
	fixtures.CreateJoin(ctx, primitive.NewObjectID().Hex(), "other@example.com")

	req := httptest.NewRequest(http.MethodGet, "/joined-events/mine@example.com", nil)
	req = testutil.WithChiURLParam(req, "email", "mine@example.com")
	rec := httptest.NewRecorder()
	h.ServeList(rec, req)

	testutil.AssertStatus(t, rec, http.StatusOK)

	var got []models.JoinedEvent
	testutil.DecodeJSON(t, rec, &got)
	if len(got) != 1 || got[0].UserEmail != "mine@example.com" {
		t.Errorf("participant joins: got %+v, want one record for mine@example.com", got)
	}
}

func TestServeUnjoin(t *testing.T) {
	h, fixtures := newTestHandler(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	j := fixtures.CreateJoin(ctx, primitive.NewObjectID().Hex(), "member@example.com")
	idHex := j.ID.Hex()

	req := httptest.NewRequest(http.MethodDelete, "/joined-events/"+idHex, nil)
	req = testutil.WithChiURLParam(req, "id", idHex)
	rec := httptest.NewRecorder()
	h.ServeUnjoin(rec, req)

	testutil.AssertStatus(t, rec, http.StatusOK)

	var ack models.DeleteAck
	testutil.DecodeJSON(t, rec, &ack)
	if !ack.Acknowledged || ack.DeletedCount != 1 {
		t.Errorf("unjoin ack: got %+v, want deletedCount=1", ack)
	}
}

func TestServeUnjoin_BadID(t *testing.T) {
	h, _ := newTestHandler(t)

	req := httptest.NewRequest(http.MethodDelete, "/joined-events/nope", nil)
	req = testutil.WithChiURLParam(req, "id", "nope")
	rec := httptest.NewRecorder()
	h.ServeUnjoin(rec, req)

	testutil.AssertStatus(t, rec, http.StatusBadRequest)
	testutil.AssertMessage(t, rec, "Invalid joined event id")
}
