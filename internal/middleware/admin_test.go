package middleware

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/thecanopi/The-Canopi-Website/internal/identity"
)

type fakeVerifier struct {
	user identity.User
	err  error
}

func (f fakeVerifier) Verify(_ context.Context, _ string) (identity.User, error) {
	return f.user, f.err
}

type fakeRoles struct {
	role string
	err  error
}

func (f fakeRoles) RoleFor(_ context.Context, _ string) (string, error) {
	return f.role, f.err
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func runAdminAuth(t *testing.T, verifier identity.Verifier, roles identity.RoleLookup, authHeader string) *httptest.ResponseRecorder {
	t.Helper()
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		user, ok := UserFromContext(r.Context())
		if !ok {
			t.Fatal("expected user in request context")
		}
		_ = json.NewEncoder(w).Encode(user)
	})

	handler := AdminAuth(verifier, roles, discardLogger())(next)
	req := httptest.NewRequest(http.MethodGet, "/api/admin/dashboard", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	return rec
}

func assertError(t *testing.T, rec *httptest.ResponseRecorder, status int, message string) {
	t.Helper()
	if rec.Code != status {
		t.Fatalf("expected status %d, got %d", status, rec.Code)
	}
	var body struct {
		Error string `json:"error"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	if body.Error != message {
		t.Fatalf("expected error %q, got %q", message, body.Error)
	}
}

func TestAdminAuthMissingHeader(t *testing.T) {
	rec := runAdminAuth(t, fakeVerifier{}, fakeRoles{}, "")
	assertError(t, rec, http.StatusUnauthorized, "Missing Authorization Bearer token")
}

func TestAdminAuthNonBearerHeader(t *testing.T) {
	rec := runAdminAuth(t, fakeVerifier{}, fakeRoles{}, "Basic dXNlcjpwYXNz")
	assertError(t, rec, http.StatusUnauthorized, "Missing Authorization Bearer token")
}

func TestAdminAuthEmptyToken(t *testing.T) {
	rec := runAdminAuth(t, fakeVerifier{}, fakeRoles{}, "Bearer ")
	assertError(t, rec, http.StatusUnauthorized, "Missing Authorization Bearer token")
}

func TestAdminAuthInvalidSession(t *testing.T) {
	rec := runAdminAuth(t, fakeVerifier{err: identity.ErrInvalidSession}, fakeRoles{}, "Bearer bad-token")
	assertError(t, rec, http.StatusUnauthorized, "Invalid session")
}

func TestAdminAuthNoRoleRow(t *testing.T) {
	verifier := fakeVerifier{user: identity.User{ID: "u1", Email: "a@b.c"}}
	rec := runAdminAuth(t, verifier, fakeRoles{err: identity.ErrNoRole}, "Bearer token")
	assertError(t, rec, http.StatusForbidden, "No admin role")
}

func TestAdminAuthNonAdminRole(t *testing.T) {
	verifier := fakeVerifier{user: identity.User{ID: "u1", Email: "a@b.c"}}
	rec := runAdminAuth(t, verifier, fakeRoles{role: "user"}, "Bearer token")
	assertError(t, rec, http.StatusForbidden, "Forbidden")
}

func TestAdminAuthAdminPassesWithIdentity(t *testing.T) {
	verifier := fakeVerifier{user: identity.User{ID: "u1", Email: "a@b.c"}}
	rec := runAdminAuth(t, verifier, fakeRoles{role: identity.RoleAdmin}, "Bearer token")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", rec.Code)
	}
	var user identity.User
	if err := json.Unmarshal(rec.Body.Bytes(), &user); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	if user.ID != "u1" || user.Role != identity.RoleAdmin {
		t.Fatalf("unexpected context user: %+v", user)
	}
}
