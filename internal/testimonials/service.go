package testimonials

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"github.com/google/uuid"
)

var ErrNotFound = errors.New("testimonial not found")

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) Create(ctx context.Context, req CreateRequest) (Testimonial, error) {
	isPublished := false
	if req.IsPublished != nil {
		isPublished = *req.IsPublished
	}
	displayOrder := 0
	if req.DisplayOrder != nil {
		displayOrder = *req.DisplayOrder
	}

	item := Testimonial{
		ID:           uuid.NewString(),
		Quote:        strings.TrimSpace(req.Quote),
		AuthorRole:   strings.TrimSpace(req.AuthorRole),
		IsPublished:  isPublished,
		DisplayOrder: displayOrder,
	}

	return s.repo.Create(ctx, item)
}

func (s *Service) Update(ctx context.Context, id string, req UpdateRequest) (Testimonial, error) {
	id = strings.TrimSpace(id)
	if _, err := uuid.Parse(id); err != nil {
		return Testimonial{}, ErrNotFound
	}

	item, err := s.repo.Update(ctx, id, req)
	if errors.Is(err, sql.ErrNoRows) {
		return Testimonial{}, ErrNotFound
	}
	if err != nil {
		return Testimonial{}, err
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

func (s *Service) ListPublished(ctx context.Context) ([]Testimonial, error) {
	return s.repo.ListPublished(ctx)
}

func (s *Service) ListAll(ctx context.Context) ([]Testimonial, error) {
	return s.repo.ListAll(ctx)
}
