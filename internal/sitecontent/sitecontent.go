// Package sitecontent stores keyed JSON blobs edited from the admin content
// screen (hero copy, FAQ lists, capability blurbs). Sections are upserted by
// key; the payload itself is opaque to the server.
package sitecontent

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
)

var ErrNotFound = errors.New("content section not found")

type Section struct {
	ID         string          `db:"id" json:"id"`
	SectionKey string          `db:"section_key" json:"section_key"`
	Content    json.RawMessage `db:"content" json:"content"`
	UpdatedBy  *string         `db:"updated_by" json:"updated_by"`
	UpdatedAt  time.Time       `db:"updated_at" json:"updated_at"`
}

type Store struct {
	db *sqlx.DB
}

func NewStore(db *sqlx.DB) *Store {
	return &Store{db: db}
}

const columns = `id, section_key, content, updated_by, updated_at`

func (s *Store) Get(ctx context.Context, key string) (Section, error) {
	var out Section
	err := s.db.GetContext(ctx, &out, `
		SELECT `+columns+` FROM site_content WHERE section_key = $1`, key)
	if errors.Is(err, sql.ErrNoRows) {
		return Section{}, ErrNotFound
	}
	return out, err
}

func (s *Store) List(ctx context.Context) ([]Section, error) {
	items := make([]Section, 0)
	err := s.db.SelectContext(ctx, &items, `
		SELECT `+columns+` FROM site_content ORDER BY section_key ASC`)
	return items, err
}

func (s *Store) Upsert(ctx context.Context, key string, content json.RawMessage, updatedBy string) (Section, error) {
	var out Section
	err := s.db.GetContext(ctx, &out, `
		INSERT INTO site_content (id, section_key, content, updated_by)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (section_key) DO UPDATE
		SET content = EXCLUDED.content, updated_by = EXCLUDED.updated_by, updated_at = now()
		RETURNING `+columns,
		uuid.NewString(), key, []byte(content), updatedBy)
	return out, err
}
