package identity

import (
	"context"
	"database/sql"
	"errors"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
)

// RoleStore reads the user_roles table. This layer never writes it.
type RoleStore struct {
	db *sqlx.DB
}

func NewRoleStore(db *sqlx.DB) *RoleStore {
	return &RoleStore{db: db}
}

func (s *RoleStore) RoleFor(ctx context.Context, userID string) (string, error) {
	// user_id is a uuid column; a malformed subject can never have a row.
	if _, err := uuid.Parse(userID); err != nil {
		return "", ErrNoRole
	}

	var role string
	err := s.db.GetContext(ctx, &role,
		`SELECT role FROM user_roles WHERE user_id = $1 LIMIT 1`, userID)
	if errors.Is(err, sql.ErrNoRows) {
		return "", ErrNoRole
	}
	if err != nil {
		return "", err
	}
	return role, nil
}
