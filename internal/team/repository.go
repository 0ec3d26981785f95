package team

import (
	"context"
	"fmt"
	"strings"

	"github.com/jmoiron/sqlx"
)

type Repository interface {
	Create(ctx context.Context, member Member) (Member, error)
	Update(ctx context.Context, id string, req UpdateRequest) (Member, error)
	Delete(ctx context.Context, id string) (bool, error)
	ListPublished(ctx context.Context) ([]Member, error)
	ListAll(ctx context.Context) ([]Member, error)
}

const columns = `id, name, title, bio, image_url, is_published, display_order, created_at, updated_at`

type PostgresRepository struct {
	db *sqlx.DB
}

func NewRepository(db *sqlx.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) Create(ctx context.Context, member Member) (Member, error) {
	var out Member
	err := r.db.GetContext(ctx, &out, `
		INSERT INTO team_members (id, name, title, bio, image_url, is_published, display_order)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING `+columns,
		member.ID, member.Name, member.Title, member.Bio, member.ImageURL,
		member.IsPublished, member.DisplayOrder)
	return out, err
}

func (r *PostgresRepository) Update(ctx context.Context, id string, req UpdateRequest) (Member, error) {
	sets := []string{"updated_at = now()"}
	args := []interface{}{}
	set := func(col string, v interface{}) {
		args = append(args, v)
		sets = append(sets, fmt.Sprintf("%s = $%d", col, len(args)))
	}

	if req.Name != nil {
		set("name", *req.Name)
	}
	if req.Title != nil {
		set("title", *req.Title)
	}
	if req.Bio != nil {
		set("bio", *req.Bio)
	}
	if req.ImageURL != nil {
		set("image_url", *req.ImageURL)
	}
	if req.IsPublished != nil {
		set("is_published", *req.IsPublished)
	}
	if req.DisplayOrder != nil {
		set("display_order", *req.DisplayOrder)
	}

	args = append(args, id)
	query := fmt.Sprintf(`UPDATE team_members SET %s WHERE id = $%d RETURNING %s`,
		strings.Join(sets, ", "), len(args), columns)

	var out Member
	err := r.db.GetContext(ctx, &out, query, args...)
	return out, err
}

func (r *PostgresRepository) Delete(ctx context.Context, id string) (bool, error) {
	res, err := r.db.ExecContext(ctx, `DELETE FROM team_members WHERE id = $1`, id)
	if err != nil {
		return false, err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

func (r *PostgresRepository) ListPublished(ctx context.Context) ([]Member, error) {
	items := make([]Member, 0)
	err := r.db.SelectContext(ctx, &items, `
		SELECT `+columns+` FROM team_members
		WHERE is_published
		ORDER BY display_order ASC, created_at ASC`)
	return items, err
}

func (r *PostgresRepository) ListAll(ctx context.Context) ([]Member, error) {
	items := make([]Member, 0)
	err := r.db.SelectContext(ctx, &items, `
		SELECT `+columns+` FROM team_members
		ORDER BY display_order ASC, created_at ASC`)
	return items, err
}
