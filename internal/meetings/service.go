package meetings

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"github.com/google/uuid"
)

var (
	ErrSlotNotFound    = errors.New("meeting slot not found")
	ErrSlotTaken       = errors.New("meeting slot already booked")
	ErrRequestNotFound = errors.New("meeting request not found")
	ErrInvalidRange    = errors.New("end time must be after start time")
)

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) CreateSlot(ctx context.Context, req CreateSlotRequest) (MeetingSlot, error) {
	if req.EndTime <= req.StartTime {
		return MeetingSlot{}, ErrInvalidRange
	}

	var notes *string
	if v := strings.TrimSpace(req.Notes); v != "" {
		notes = &v
	}

	slot := MeetingSlot{
		ID:        uuid.NewString(),
		Date:      req.Date,
		StartTime: req.StartTime,
		EndTime:   req.EndTime,
		Notes:     notes,
	}
	return s.repo.CreateSlot(ctx, slot)
}

func (s *Service) DeleteSlot(ctx context.Context, id string) error {
	id = strings.TrimSpace(id)
	if _, err := uuid.Parse(id); err != nil {
		return nil
	}
	_, err := s.repo.DeleteSlot(ctx, id)
	return err
}

func (s *Service) ListAvailableSlots(ctx context.Context) ([]MeetingSlot, error) {
	return s.repo.ListAvailableSlots(ctx)
}

func (s *Service) ListAllSlots(ctx context.Context) ([]MeetingSlot, error) {
	return s.repo.ListAllSlots(ctx)
}

// Book stores a public meeting request. When a slot is referenced it is
// claimed atomically; a lost race surfaces as ErrSlotTaken.
func (s *Service) Book(ctx context.Context, req BookingRequest) (MeetingRequest, error) {
	var slotID *string
	if v := strings.TrimSpace(req.SlotID); v != "" {
		if _, err := uuid.Parse(v); err != nil {
			return MeetingRequest{}, ErrSlotNotFound
		}
		slotID = &v
	}

	var company, topic *string
	if v := strings.TrimSpace(req.Company); v != "" {
		company = &v
	}
	if v := strings.TrimSpace(req.Topic); v != "" {
		topic = &v
	}

	request := MeetingRequest{
		ID:      uuid.NewString(),
		Name:    strings.TrimSpace(req.Name),
		Email:   strings.TrimSpace(req.Email),
		Company: company,
		Topic:   topic,
		Status:  StatusPending,
		SlotID:  slotID,
	}
	return s.repo.CreateRequest(ctx, request)
}

func (s *Service) ListRequests(ctx context.Context) ([]MeetingRequest, error) {
	return s.repo.ListRequests(ctx)
}

func (s *Service) UpdateRequest(ctx context.Context, id string, input UpdateRequestInput) (MeetingRequest, error) {
	id = strings.TrimSpace(id)
	if _, err := uuid.Parse(id); err != nil {
		return MeetingRequest{}, ErrRequestNotFound
	}

	item, err := s.repo.UpdateRequest(ctx, id, input)
	if errors.Is(err, sql.ErrNoRows) {
		return MeetingRequest{}, ErrRequestNotFound
	}
	if err != nil {
		return MeetingRequest{}, err
	}
	return item, nil
}

func (s *Service) DeleteRequest(ctx context.Context, id string) error {
	id = strings.TrimSpace(id)
	if _, err := uuid.Parse(id); err != nil {
		return nil
	}
	_, err := s.repo.DeleteRequest(ctx, id)
	return err
}
