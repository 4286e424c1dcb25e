package users_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"go.uber.org/zap"

	"github.com/dalemusser/socialevents/internal/app/features/users"
	userstore "github.com/dalemusser/socialevents/internal/app/store/users"
	"github.com/dalemusser/socialevents/internal/domain/models"
	"github.com/dalemusser/socialevents/internal/testutil"
)

func newTestHandler(t *testing.T) (*users.Handler, *testutil.Fixtures) {
	t.Helper()
	db := testutil.SetupTestDB(t)
	return users.NewHandler(userstore.New(db), zap.NewNop()), testutil.NewFixtures(t, db)
}

func TestServeCreate(t *testing.T) {
	h, _ := newTestHandler(t)

	req := testutil.NewJSONRequest(t, http.MethodPost, "/users", map[string]string{
		"name":  "Alice Example",
		"email": "alice@example.com",
		"photo": "https://example.com/alice.png",
	})
	rec := httptest.NewRecorder()
	h.ServeCreate(rec, req)

	testutil.AssertStatus(t, rec, http.StatusOK)

	var ack models.InsertAck
	testutil.DecodeJSON(t, rec, &ack)
	if !ack.Acknowledged || ack.InsertedID == nil {
		t.Errorf("create ack: got %+v, want acknowledged insert with id", ack)
	}
}

func TestServeCreate_ExistingEmail(t *testing.T) {
	h, _ := newTestHandler(t)

	body := map[string]string{"name": "Alice", "email": "alice@example.com"}

	rec := httptest.NewRecorder()
	h.ServeCreate(rec, testutil.NewJSONRequest(t, http.MethodPost, "/users", body))
	testutil.AssertStatus(t, rec, http.StatusOK)

	// Re-posting the same email is a 200 soft success with a null id.
	rec = httptest.NewRecorder()
	h.ServeCreate(rec, testutil.NewJSONRequest(t, http.MethodPost, "/users", body))
	testutil.AssertStatus(t, rec, http.StatusOK)

	var resp struct {
		Message    string  `json:"message"`
		InsertedID *string `json:"insertedId"`
	}
	testutil.DecodeJSON(t, rec, &resp)
	if resp.Message != "User already exists" {
		t.Errorf("message: got %q, want %q", resp.Message, "User already exists")
	}
	if resp.InsertedID != nil {
		t.Errorf("insertedId: got %v, want null", *resp.InsertedID)
	}

	// Still only one record.
	listRec := httptest.NewRecorder()
	h.ServeList(listRec, httptest.NewRequest(http.MethodGet, "/users", nil))
	var all []models.User
	testutil.DecodeJSON(t, listRec, &all)
	if len(all) != 1 {
		t.Errorf("users after duplicate create: got %d, want 1", len(all))
	}
}

func TestServeCreate_InvalidEmail(t *testing.T) {
	h, _ := newTestHandler(t)

	req := testutil.NewJSONRequest(t, http.MethodPost, "/users", map[string]string{
		"name":  "No Email",
		"email": "not-an-email",
	})
	rec := httptest.NewRecorder()
	h.ServeCreate(rec, req)

	testutil.AssertStatus(t, rec, http.StatusBadRequest)
	testutil.AssertMessage(t, rec, "Invalid user payload")
}

func TestServeList(t *testing.T) {
	h, fixtures := newTestHandler(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	fixtures.CreateUser(ctx, "Alice", "alice@example.com", "")
	fixtures.CreateUser(ctx, "Bob", "bob@example.com", models.RoleAdmin)

	rec := httptest.NewRecorder()
	h.ServeList(rec, httptest.NewRequest(http.MethodGet, "/users", nil))

	testutil.AssertStatus(t, rec, http.StatusOK)

	var got []models.User
	testutil.DecodeJSON(t, rec, &got)
	if len(got) != 2 {
		t.Errorf("users: got %d, want 2", len(got))
	}
}

func checkAdmin(t *testing.T, h *users.Handler, email string) bool {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, "/users/admin/"+email, nil)
	req = testutil.WithChiURLParam(req, "email", email)
	rec := httptest.NewRecorder()
	h.ServeCheckAdmin(rec, req)

	testutil.AssertStatus(t, rec, http.StatusOK)

	var resp struct {
		Admin bool `json:"admin"`
	}
	testutil.DecodeJSON(t, rec, &resp)
	return resp.Admin
}

func TestServePromoteAdmin(t *testing.T) {
	h, fixtures := newTestHandler(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	u := fixtures.CreateUser(ctx, "Alice", "alice@example.com", "")

	if checkAdmin(t, h, u.Email) {
		t.Error("fresh user must not be admin")
	}

	req := httptest.NewRequest(http.MethodPatch, "/users/admin/"+u.ID.Hex(), nil)
	req = testutil.WithChiURLParam(req, "id", u.ID.Hex())
	rec := httptest.NewRecorder()
	h.ServePromoteAdmin(rec, req)

	testutil.AssertStatus(t, rec, http.StatusOK)

	var ack models.UpdateAck
	testutil.DecodeJSON(t, rec, &ack)
	if ack.MatchedCount != 1 || ack.ModifiedCount != 1 {
		t.Errorf("promote ack: got %+v, want matched=1 modified=1", ack)
	}

	if !checkAdmin(t, h, u.Email) {
		t.Error("promoted user must be admin")
	}
}

func TestServeCheckAdmin_UnknownEmail(t *testing.T) {
	h, _ := newTestHandler(t)

	if checkAdmin(t, h, "nobody@example.com") {
		t.Error("unknown email must be reported as non-admin")
	}
}

func TestServeDelete(t *testing.T) {
	h, fixtures := newTestHandler(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	u := fixtures.CreateUser(ctx, "Alice", "alice@example.com", "")
	idHex := u.ID.Hex()

	req := httptest.NewRequest(http.MethodDelete, "/users/"+idHex, nil)
	req = testutil.WithChiURLParam(req, "id", idHex)
	rec := httptest.NewRecorder()
	h.ServeDelete(rec, req)

	testutil.AssertStatus(t, rec, http.StatusOK)

	var ack models.DeleteAck
	testutil.DecodeJSON(t, rec, &ack)
	if !ack.Acknowledged || ack.DeletedCount != 1 {
		t.Errorf("delete ack: got %+v, want deletedCount=1", ack)
	}
}

func TestServePromoteAdmin_BadID(t *testing.T) {
	h, _ := newTestHandler(t)

	req := httptest.NewRequest(http.MethodPatch, "/users/admin/not-hex", nil)
	req = testutil.WithChiURLParam(req, "id", "not-hex")
	rec := httptest.NewRecorder()
	h.ServePromoteAdmin(rec, req)

	testutil.AssertStatus(t, rec, http.StatusBadRequest)
	testutil.AssertMessage(t, rec, "Invalid user id")
}
