package auth

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"go.uber.org/zap"
)

func TestTokenFromHeader(t *testing.T) {
	tests := []struct {
		name    string
		header  string
		want    string
		wantErr bool
	}{
		{"valid bearer", "Bearer abc.def.ghi", "abc.def.ghi", false},
		{"lowercase scheme", "bearer tok123", "tok123", false},
		{"mixed case scheme", "BeArEr tok123", "tok123", false},
		{"empty header", "", "", true},
		{"no token", "Bearer", "", true},
		{"wrong scheme", "Basic dXNlcjpwYXNz", "", true},
		{"token only", "abc.def.ghi", "", true},
		{"extra parts", "Bearer one two", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := TokenFromHeader(tt.header)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("TokenFromHeader(%q): expected error", tt.header)
				}
				return
			}
			if err != nil {
				t.Fatalf("TokenFromHeader(%q) failed: %v", tt.header, err)
			}
			if got != tt.want {
				t.Errorf("TokenFromHeader(%q) = %q, want %q", tt.header, got, tt.want)
			}
		})
	}
}

// fakeVerifier accepts exactly one token string.
type fakeVerifier struct {
	accept string
	id     *Identity
}

func (f *fakeVerifier) Verify(_ context.Context, token string) (*Identity, error) {
	if token == f.accept {
		return f.id, nil
	}
	return nil, errors.New("invalid token")
}

func requireTokenHandler(t *testing.T, v Verifier) (http.Handler, *bool, **Identity) {
	t.Helper()
	called := false
	var seen *Identity
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
		seen, _ = CurrentIdentity(r)
		w.WriteHeader(http.StatusOK)
	})
	return RequireToken(v, zap.NewNop())(next), &called, &seen
}

func assertUnauthorized(t *testing.T, rec *httptest.ResponseRecorder) {
	t.Helper()
	if rec.Code != http.StatusUnauthorized {
		t.Errorf("status: got %d, want %d", rec.Code, http.StatusUnauthorized)
	}
	var body struct {
		Message string `json:"message"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("failed to parse response: %v", err)
	}
	if body.Message != "Unauthorized access" {
		t.Errorf("message: got %q, want %q", body.Message, "Unauthorized access")
	}
}

func TestRequireToken_MissingHeader(t *testing.T) {
	h, called, _ := requireTokenHandler(t, &fakeVerifier{accept: "good"})

	req := httptest.NewRequest("POST", "/events", nil)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	assertUnauthorized(t, rec)
	if *called {
		t.Error("downstream handler should not run without a token")
	}
}

func TestRequireToken_MalformedHeader(t *testing.T) {
	h, called, _ := requireTokenHandler(t, &fakeVerifier{accept: "good"})

	req := httptest.NewRequest("POST", "/events", nil)
	req.Header.Set("Authorization", "Token good")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	assertUnauthorized(t, rec)
	if *called {
		t.Error("downstream handler should not run with a malformed header")
	}
}

func TestRequireToken_InvalidToken(t *testing.T) {
	h, called, _ := requireTokenHandler(t, &fakeVerifier{accept: "good"})

	req := httptest.NewRequest("POST", "/events", nil)
	req.Header.Set("Authorization", "Bearer bad")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	assertUnauthorized(t, rec)
	if *called {
		t.Error("downstream handler should not run with an invalid token")
	}
}

func TestRequireToken_ValidToken(t *testing.T) {
	want := &Identity{Email: "organizer@example.com"}
	h, called, seen := requireTokenHandler(t, &fakeVerifier{accept: "good", id: want})

	req := httptest.NewRequest("POST", "/events", nil)
	req.Header.Set("Authorization", "Bearer good")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Errorf("status: got %d, want %d", rec.Code, http.StatusOK)
	}
	if !*called {
		t.Fatal("downstream handler did not run")
	}
	if *seen == nil || (*seen).Email != want.Email {
		t.Errorf("identity in context: got %+v, want email %q", *seen, want.Email)
	}
}

func TestCurrentIdentity_Absent(t *testing.T) {
	req := httptest.NewRequest("GET", "/", nil)
	if _, ok := CurrentIdentity(req); ok {
		t.Error("expected no identity on a bare request")
	}
}
