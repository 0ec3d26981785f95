package contact

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"github.com/google/uuid"
)

var ErrNotFound = errors.New("inquiry not found")

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) Create(ctx context.Context, req CreateRequest) (Inquiry, error) {
	var company, roleTitle *string
	if v := strings.TrimSpace(req.Company); v != "" {
		company = &v
	}
	if v := strings.TrimSpace(req.RoleTitle); v != "" {
		roleTitle = &v
	}

	inquiry := Inquiry{
		ID:        uuid.NewString(),
		Name:      strings.TrimSpace(req.Name),
		Email:     strings.TrimSpace(req.Email),
		Company:   company,
		RoleTitle: roleTitle,
		Message:   strings.TrimSpace(req.Message),
	}
	return s.repo.Create(ctx, inquiry)
}

func (s *Service) List(ctx context.Context) ([]Inquiry, error) {
	return s.repo.List(ctx)
}

func (s *Service) SetRead(ctx context.Context, id string, isRead bool) (Inquiry, error) {
	id = strings.TrimSpace(id)
	if _, err := uuid.Parse(id); err != nil {
		return Inquiry{}, ErrNotFound
	}

	item, err := s.repo.SetRead(ctx, id, isRead)
	if errors.Is(err, sql.ErrNoRows) {
		return Inquiry{}, ErrNotFound
	}
	if err != nil {
		return Inquiry{}, err
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
