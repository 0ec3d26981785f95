package casestudies

import (
	"context"
	"fmt"
	"strings"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
)

type Repository interface {
	Create(ctx context.Context, item CaseStudy) (CaseStudy, error)
	Update(ctx context.Context, id string, req UpdateRequest) (CaseStudy, error)
	Delete(ctx context.Context, id string) (bool, error)
	ListPublished(ctx context.Context) ([]CaseStudy, error)
	ListAll(ctx context.Context) ([]CaseStudy, error)
}

const columns = `id, title, industry, challenge, solution, outcome, tags, is_published, display_order, created_at, updated_at`

type PostgresRepository struct {
	db *sqlx.DB
}

func NewRepository(db *sqlx.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) Create(ctx context.Context, item CaseStudy) (CaseStudy, error) {
	var out CaseStudy
	err := r.db.GetContext(ctx, &out, `
		INSERT INTO case_studies (id, title, industry, challenge, solution, outcome, tags, is_published, display_order)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING `+columns,
		item.ID, item.Title, item.Industry, item.Challenge, item.Solution,
		item.Outcome, item.Tags, item.IsPublished, item.DisplayOrder)
	return out, err
}

func (r *PostgresRepository) Update(ctx context.Context, id string, req UpdateRequest) (CaseStudy, error) {
	sets := []string{"updated_at = now()"}
	args := []interface{}{}
	set := func(col string, v interface{}) {
		args = append(args, v)
		sets = append(sets, fmt.Sprintf("%s = $%d", col, len(args)))
	}

	if req.Title != nil {
		set("title", *req.Title)
	}
	if req.Industry != nil {
		set("industry", *req.Industry)
	}
	if req.Challenge != nil {
		set("challenge", *req.Challenge)
	}
	if req.Solution != nil {
		set("solution", *req.Solution)
	}
	if req.Outcome != nil {
		set("outcome", *req.Outcome)
	}
	if req.Tags != nil {
		set("tags", pq.StringArray(*req.Tags))
	}
	if req.IsPublished != nil {
		set("is_published", *req.IsPublished)
	}
	if req.DisplayOrder != nil {
		set("display_order", *req.DisplayOrder)
	}

	args = append(args, id)
	query := fmt.Sprintf(`UPDATE case_studies SET %s WHERE id = $%d RETURNING %s`,
		strings.Join(sets, ", "), len(args), columns)

	var out CaseStudy
	err := r.db.GetContext(ctx, &out, query, args...)
	return out, err
}

func (r *PostgresRepository) Delete(ctx context.Context, id string) (bool, error) {
	res, err := r.db.ExecContext(ctx, `DELETE FROM case_studies WHERE id = $1`, id)
	if err != nil {
		return false, err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

func (r *PostgresRepository) ListPublished(ctx context.Context) ([]CaseStudy, error) {
	items := make([]CaseStudy, 0)
	err := r.db.SelectContext(ctx, &items, `
		SELECT `+columns+` FROM case_studies
		WHERE is_published
		ORDER BY display_order ASC, created_at DESC`)
	return items, err
}

func (r *PostgresRepository) ListAll(ctx context.Context) ([]CaseStudy, error) {
	items := make([]CaseStudy, 0)
	err := r.db.SelectContext(ctx, &items, `
		SELECT `+columns+` FROM case_studies
		ORDER BY display_order ASC, created_at DESC`)
	return items, err
}
