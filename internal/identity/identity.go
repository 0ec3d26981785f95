// Package identity resolves hosted-provider access tokens into users and
// looks up their role. Authentication itself (sign-in, sessions, refresh)
// lives entirely in the hosted provider; this package only verifies what it
// issued.
package identity

import (
	"context"
	"errors"
)

var (
	// ErrInvalidSession covers expired, malformed and unknown tokens alike.
	ErrInvalidSession = errors.New("invalid session")
	// ErrNoRole means the user authenticated but has no user_roles row.
	ErrNoRole = errors.New("no role assigned")
)

type User struct {
	ID    string `json:"id"`
	Email string `json:"email"`
	Role  string `json:"role,omitempty"`
}

// Verifier turns a bearer token into the user it belongs to.
type Verifier interface {
	Verify(ctx context.Context, token string) (User, error)
}

// RoleLookup resolves a user id to its role record.
type RoleLookup interface {
	RoleFor(ctx context.Context, userID string) (string, error)
}

const RoleAdmin = "admin"
