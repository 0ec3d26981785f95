package blog

import (
	"context"
	"fmt"
	"strings"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
)

type Repository interface {
	Create(ctx context.Context, item BlogPost) (BlogPost, error)
	Update(ctx context.Context, id string, req UpdateRequest, slug *string) (BlogPost, error)
	Delete(ctx context.Context, id string) (bool, error)
	ListPublished(ctx context.Context) ([]BlogPost, error)
	GetPublishedBySlug(ctx context.Context, slug string) (BlogPost, error)
	ListAll(ctx context.Context) ([]BlogPost, error)
}

const columns = `id, title, slug, category, content, excerpt, author, tags, featured_image_url, is_published, published_at, display_order, created_at, updated_at`

type PostgresRepository struct {
	db *sqlx.DB
}

func NewRepository(db *sqlx.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) Create(ctx context.Context, item BlogPost) (BlogPost, error) {
	var out BlogPost
	err := r.db.GetContext(ctx, &out, `
		INSERT INTO blog_posts (id, title, slug, category, content, excerpt, author, tags,
			featured_image_url, is_published, published_at, display_order)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10,
			CASE WHEN $10 THEN now() END, $11)
		RETURNING `+columns,
		item.ID, item.Title, item.Slug, item.Category, item.Content, item.Excerpt,
		item.Author, item.Tags, item.FeaturedImageURL, item.IsPublished, item.DisplayOrder)
	return out, err
}

// Update applies the provided fields; slug is passed separately because the
// service normalizes it. Publishing stamps published_at once and keeps the
// original timestamp on republish.
func (r *PostgresRepository) Update(ctx context.Context, id string, req UpdateRequest, slug *string) (BlogPost, error) {
	sets := []string{"updated_at = now()"}
	args := []interface{}{}
	set := func(col string, v interface{}) {
		args = append(args, v)
		sets = append(sets, fmt.Sprintf("%s = $%d", col, len(args)))
	}

	if req.Title != nil {
		set("title", *req.Title)
	}
	if slug != nil {
		set("slug", *slug)
	}
	if req.Category != nil {
		set("category", *req.Category)
	}
	if req.Content != nil {
		set("content", *req.Content)
	}
	if req.Excerpt != nil {
		set("excerpt", *req.Excerpt)
	}
	if req.Author != nil {
		set("author", *req.Author)
	}
	if req.Tags != nil {
		set("tags", pq.StringArray(*req.Tags))
	}
	if req.FeaturedImageURL != nil {
		set("featured_image_url", *req.FeaturedImageURL)
	}
	if req.IsPublished != nil {
		set("is_published", *req.IsPublished)
		if *req.IsPublished {
			sets = append(sets, "published_at = COALESCE(published_at, now())")
		}
	}
	if req.DisplayOrder != nil {
		set("display_order", *req.DisplayOrder)
	}

	args = append(args, id)
	query := fmt.Sprintf(`UPDATE blog_posts SET %s WHERE id = $%d RETURNING %s`,
		strings.Join(sets, ", "), len(args), columns)

	var out BlogPost
	err := r.db.GetContext(ctx, &out, query, args...)
	return out, err
}

func (r *PostgresRepository) Delete(ctx context.Context, id string) (bool, error) {
	res, err := r.db.ExecContext(ctx, `DELETE FROM blog_posts WHERE id = $1`, id)
	if err != nil {
		return false, err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

func (r *PostgresRepository) ListPublished(ctx context.Context) ([]BlogPost, error) {
	items := make([]BlogPost, 0)
	err := r.db.SelectContext(ctx, &items, `
		SELECT `+columns+` FROM blog_posts
		WHERE is_published
		ORDER BY published_at DESC NULLS LAST, created_at DESC`)
	return items, err
}

func (r *PostgresRepository) GetPublishedBySlug(ctx context.Context, slug string) (BlogPost, error) {
	var out BlogPost
	err := r.db.GetContext(ctx, &out, `
		SELECT `+columns+` FROM blog_posts
		WHERE slug = $1 AND is_published`, slug)
	return out, err
}

func (r *PostgresRepository) ListAll(ctx context.Context) ([]BlogPost, error) {
	items := make([]BlogPost, 0)
	err := r.db.SelectContext(ctx, &items, `
		SELECT `+columns+` FROM blog_posts
		ORDER BY created_at DESC`)
	return items, err
}
