package casestudies

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

var ErrNotFound = errors.New("case study not found")

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) Create(ctx context.Context, req CreateRequest) (CaseStudy, error) {
	isPublished := false
	if req.IsPublished != nil {
		isPublished = *req.IsPublished
	}
	displayOrder := 0
	if req.DisplayOrder != nil {
		displayOrder = *req.DisplayOrder
	}

	var industry *string
	if v := strings.TrimSpace(req.Industry); v != "" {
		industry = &v
	}

	item := CaseStudy{
		ID:           uuid.NewString(),
		Title:        strings.TrimSpace(req.Title),
		Industry:     industry,
		Challenge:    strings.TrimSpace(req.Challenge),
		Solution:     strings.TrimSpace(req.Solution),
		Outcome:      strings.TrimSpace(req.Outcome),
		Tags:         pq.StringArray(req.Tags),
		IsPublished:  isPublished,
		DisplayOrder: displayOrder,
	}

	return s.repo.Create(ctx, item)
}

func (s *Service) Update(ctx context.Context, id string, req UpdateRequest) (CaseStudy, error) {
	id = strings.TrimSpace(id)
	if _, err := uuid.Parse(id); err != nil {
		return CaseStudy{}, ErrNotFound
	}

	item, err := s.repo.Update(ctx, id, req)
	if errors.Is(err, sql.ErrNoRows) {
		return CaseStudy{}, ErrNotFound
	}
	if err != nil {
		return CaseStudy{}, err
	}
	return item, nil
}

// Delete is idempotent: removing a row that is already gone is a success.
func (s *Service) Delete(ctx context.Context, id string) error {
	id = strings.TrimSpace(id)
	if _, err := uuid.Parse(id); err != nil {
		return nil
	}
	_, err := s.repo.Delete(ctx, id)
	return err
}

func (s *Service) ListPublished(ctx context.Context) ([]CaseStudy, error) {
	return s.repo.ListPublished(ctx)
}

func (s *Service) ListAll(ctx context.Context) ([]CaseStudy, error) {
	return s.repo.ListAll(ctx)
}
