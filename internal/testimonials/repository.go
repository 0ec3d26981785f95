package testimonials

import (
	"context"
	"fmt"
	"strings"

	"github.com/jmoiron/sqlx"
)

type Repository interface {
	Create(ctx context.Context, item Testimonial) (Testimonial, error)
	Update(ctx context.Context, id string, req UpdateRequest) (Testimonial, error)
	Delete(ctx context.Context, id string) (bool, error)
	ListPublished(ctx context.Context) ([]Testimonial, error)
	ListAll(ctx context.Context) ([]Testimonial, error)
}

const columns = `id, quote, author_role, is_published, display_order, created_at, updated_at`

type PostgresRepository struct {
	db *sqlx.DB
}

func NewRepository(db *sqlx.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) Create(ctx context.Context, item Testimonial) (Testimonial, error) {
	var out Testimonial
	err := r.db.GetContext(ctx, &out, `
		INSERT INTO testimonials (id, quote, author_role, is_published, display_order)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING `+columns,
		item.ID, item.Quote, item.AuthorRole, item.IsPublished, item.DisplayOrder)
	return out, err
}

func (r *PostgresRepository) Update(ctx context.Context, id string, req UpdateRequest) (Testimonial, error) {
	sets := []string{"updated_at = now()"}
	args := []interface{}{}
	set := func(col string, v interface{}) {
		args = append(args, v)
		sets = append(sets, fmt.Sprintf("%s = $%d", col, len(args)))
	}

	if req.Quote != nil {
		set("quote", *req.Quote)
	}
	if req.AuthorRole != nil {
		set("author_role", *req.AuthorRole)
	}
	if req.IsPublished != nil {
		set("is_published", *req.IsPublished)
	}
	if req.DisplayOrder != nil {
		set("display_order", *req.DisplayOrder)
	}

	args = append(args, id)
	query := fmt.Sprintf(`UPDATE testimonials SET %s WHERE id = $%d RETURNING %s`,
		strings.Join(sets, ", "), len(args), columns)

	var out Testimonial
	err := r.db.GetContext(ctx, &out, query, args...)
	return out, err
}

func (r *PostgresRepository) Delete(ctx context.Context, id string) (bool, error) {
	res, err := r.db.ExecContext(ctx, `DELETE FROM testimonials WHERE id = $1`, id)
	if err != nil {
		return false, err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

func (r *PostgresRepository) ListPublished(ctx context.Context) ([]Testimonial, error) {
	items := make([]Testimonial, 0)
	err := r.db.SelectContext(ctx, &items, `
		SELECT `+columns+` FROM testimonials
		WHERE is_published
		ORDER BY display_order ASC, created_at DESC`)
	return items, err
}

func (r *PostgresRepository) ListAll(ctx context.Context) ([]Testimonial, error) {
	items := make([]Testimonial, 0)
	err := r.db.SelectContext(ctx, &items, `
		SELECT `+columns+` FROM testimonials
		ORDER BY display_order ASC, created_at DESC`)
	return items, err
}
