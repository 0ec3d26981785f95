package blog

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/lib/pq"

	"github.com/thecanopi/The-Canopi-Website/internal/utils"
)

var (
	ErrNotFound    = errors.New("blog post not found")
	ErrSlugExists  = errors.New("slug already exists")
	ErrInvalidSlug = errors.New("invalid slug")
)

const uniqueViolation = "23505"

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) Create(ctx context.Context, req CreateRequest) (BlogPost, error) {
	slug := normalizeSlug(req.Slug, req.Title)
	if slug == "" {
		return BlogPost{}, ErrInvalidSlug
	}

	category := strings.TrimSpace(req.Category)
	if category == "" {
		category = CategoryBlog
	}
	isPublished := false
	if req.IsPublished != nil {
		isPublished = *req.IsPublished
	}
	displayOrder := 0
	if req.DisplayOrder != nil {
		displayOrder = *req.DisplayOrder
	}

	item := BlogPost{
		ID:               uuid.NewString(),
		Title:            strings.TrimSpace(req.Title),
		Slug:             slug,
		Category:         category,
		Content:          req.Content,
		Excerpt:          optional(req.Excerpt),
		Author:           optional(req.Author),
		Tags:             pq.StringArray(req.Tags),
		FeaturedImageURL: optional(req.FeaturedImageURL),
		IsPublished:      isPublished,
		DisplayOrder:     displayOrder,
	}

	out, err := s.repo.Create(ctx, item)
	if isUniqueViolation(err) {
		return BlogPost{}, ErrSlugExists
	}
	return out, err
}

func (s *Service) Update(ctx context.Context, id string, req UpdateRequest) (BlogPost, error) {
	id = strings.TrimSpace(id)
	if _, err := uuid.Parse(id); err != nil {
		return BlogPost{}, ErrNotFound
	}

	var slug *string
	if req.Slug != nil {
		normalized := utils.Slugify(*req.Slug)
		if normalized == "" {
			return BlogPost{}, ErrInvalidSlug
		}
		slug = &normalized
	}

	item, err := s.repo.Update(ctx, id, req, slug)
	if errors.Is(err, sql.ErrNoRows) {
		return BlogPost{}, ErrNotFound
	}
	if isUniqueViolation(err) {
		return BlogPost{}, ErrSlugExists
	}
	if err != nil {
		return BlogPost{}, err
	}
	return item, nil
}

func (s *Service) Delete(ctx context.Context, id string) error {
	id = strings.TrimSpace(id)
	if _, err := uuid.Parse(id); err != nil {
		return nil
	}
	_, err := s.repo.Delete(ctx, id)
	return err
}

func (s *Service) ListPublished(ctx context.Context) ([]BlogPost, error) {
	return s.repo.ListPublished(ctx)
}

func (s *Service) GetPublishedBySlug(ctx context.Context, slug string) (BlogPost, error) {
	item, err := s.repo.GetPublishedBySlug(ctx, strings.TrimSpace(slug))
	if errors.Is(err, sql.ErrNoRows) {
		return BlogPost{}, ErrNotFound
	}
	if err != nil {
		return BlogPost{}, err
	}
	return item, nil
}

func (s *Service) ListAll(ctx context.Context) ([]BlogPost, error) {
	return s.repo.ListAll(ctx)
}

func normalizeSlug(slug, title string) string {
	raw := strings.TrimSpace(slug)
	if raw == "" {
		raw = strings.TrimSpace(title)
	}
	return utils.Slugify(raw)
}

func optional(v string) *string {
	if v = strings.TrimSpace(v); v == "" {
		return nil
	}
	return &v
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == uniqueViolation
}
