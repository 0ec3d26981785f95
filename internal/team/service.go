package team

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"github.com/google/uuid"
)

var ErrNotFound = errors.New("team member not found")

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) Create(ctx context.Context, req CreateRequest) (Member, error) {
	isPublished := false
	if req.IsPublished != nil {
		isPublished = *req.IsPublished
	}
	displayOrder := 0
	if req.DisplayOrder != nil {
		displayOrder = *req.DisplayOrder
	}

	var imageURL *string
	if v := strings.TrimSpace(req.ImageURL); v != "" {
		imageURL = &v
	}

	member := Member{
		ID:           uuid.NewString(),
		Name:         strings.TrimSpace(req.Name),
		Title:        strings.TrimSpace(req.Title),
		Bio:          strings.TrimSpace(req.Bio),
		ImageURL:     imageURL,
		IsPublished:  isPublished,
		DisplayOrder: displayOrder,
	}
	return s.repo.Create(ctx, member)
}

func (s *Service) Update(ctx context.Context, id string, req UpdateRequest) (Member, error) {
	id = strings.TrimSpace(id)
	if _, err := uuid.Parse(id); err != nil {
		return Member{}, ErrNotFound
	}

	member, err := s.repo.Update(ctx, id, req)
	if errors.Is(err, sql.ErrNoRows) {
		return Member{}, ErrNotFound
	}
	if err != nil {
		return Member{}, err
	}
	return member, nil
}

func (s *Service) Delete(ctx context.Context, id string) error {
	id = strings.TrimSpace(id)
	if _, err := uuid.Parse(id); err != nil {
		return nil
	}
	_, err := s.repo.Delete(ctx, id)
	return err
}

func (s *Service) ListPublished(ctx context.Context) ([]Member, error) {
	return s.repo.ListPublished(ctx)
}

func (s *Service) ListAll(ctx context.Context) ([]Member, error) {
	return s.repo.ListAll(ctx)
}
