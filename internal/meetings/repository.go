package meetings

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/jmoiron/sqlx"
)

type Repository interface {
	CreateSlot(ctx context.Context, slot MeetingSlot) (MeetingSlot, error)
	DeleteSlot(ctx context.Context, id string) (bool, error)
	ListAvailableSlots(ctx context.Context) ([]MeetingSlot, error)
	ListAllSlots(ctx context.Context) ([]MeetingSlot, error)

	CreateRequest(ctx context.Context, req MeetingRequest) (MeetingRequest, error)
	ListRequests(ctx context.Context) ([]MeetingRequest, error)
	UpdateRequest(ctx context.Context, id string, input UpdateRequestInput) (MeetingRequest, error)
	DeleteRequest(ctx context.Context, id string) (bool, error)
}

const slotColumns = `id, date::text AS date, start_time::text AS start_time, end_time::text AS end_time, is_booked, notes, created_at`
const requestColumns = `id, name, email, company, topic, status, meeting_link, slot_id, created_at`

type PostgresRepository struct {
	db *sqlx.DB
}

func NewRepository(db *sqlx.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) CreateSlot(ctx context.Context, slot MeetingSlot) (MeetingSlot, error) {
	var out MeetingSlot
	err := r.db.GetContext(ctx, &out, `
		INSERT INTO meeting_slots (id, date, start_time, end_time, notes)
		VALUES ($1, $2::date, $3::time, $4::time, $5)
		RETURNING `+slotColumns,
		slot.ID, slot.Date, slot.StartTime, slot.EndTime, slot.Notes)
	return out, err
}

func (r *PostgresRepository) DeleteSlot(ctx context.Context, id string) (bool, error) {
	res, err := r.db.ExecContext(ctx, `DELETE FROM meeting_slots WHERE id = $1`, id)
	if err != nil {
		return false, err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

func (r *PostgresRepository) ListAvailableSlots(ctx context.Context) ([]MeetingSlot, error) {
	slots := make([]MeetingSlot, 0)
	err := r.db.SelectContext(ctx, &slots, `
		SELECT `+slotColumns+` FROM meeting_slots
		WHERE NOT is_booked AND date >= CURRENT_DATE
		ORDER BY date ASC, start_time ASC`)
	return slots, err
}

func (r *PostgresRepository) ListAllSlots(ctx context.Context) ([]MeetingSlot, error) {
	slots := make([]MeetingSlot, 0)
	err := r.db.SelectContext(ctx, &slots, `
		SELECT `+slotColumns+` FROM meeting_slots
		ORDER BY date ASC, start_time ASC`)
	return slots, err
}

// CreateRequest inserts a meeting request, claiming the referenced slot in
// the same transaction. The row lock makes concurrent bookings of one slot
// lose cleanly with ErrSlotTaken instead of double-booking.
func (r *PostgresRepository) CreateRequest(ctx context.Context, req MeetingRequest) (MeetingRequest, error) {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return MeetingRequest{}, err
	}
	defer tx.Rollback()

	var claimed *MeetingSlot
	if req.SlotID != nil {
		var slot MeetingSlot
		err := tx.GetContext(ctx, &slot, `
			SELECT `+slotColumns+` FROM meeting_slots
			WHERE id = $1 FOR UPDATE`, *req.SlotID)
		if errors.Is(err, sql.ErrNoRows) {
			return MeetingRequest{}, ErrSlotNotFound
		}
		if err != nil {
			return MeetingRequest{}, err
		}
		if slot.IsBooked {
			return MeetingRequest{}, ErrSlotTaken
		}
		if _, err := tx.ExecContext(ctx,
			`UPDATE meeting_slots SET is_booked = true WHERE id = $1`, *req.SlotID); err != nil {
			return MeetingRequest{}, err
		}
		slot.IsBooked = true
		claimed = &slot
	}

	var out MeetingRequest
	err = tx.GetContext(ctx, &out, `
		INSERT INTO meeting_requests (id, name, email, company, topic, status, slot_id)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING `+requestColumns,
		req.ID, req.Name, req.Email, req.Company, req.Topic, req.Status, req.SlotID)
	if err != nil {
		return MeetingRequest{}, err
	}

	if err := tx.Commit(); err != nil {
		return MeetingRequest{}, err
	}
	out.Slot = claimed
	return out, nil
}

type requestRow struct {
	MeetingRequest
	SlotDate     *string `db:"slot_date"`
	SlotStart    *string `db:"slot_start_time"`
	SlotEnd      *string `db:"slot_end_time"`
	SlotIsBooked *bool   `db:"slot_is_booked"`
	SlotNotes    *string `db:"slot_notes"`
}

func (row requestRow) assemble() MeetingRequest {
	req := row.MeetingRequest
	if req.SlotID != nil && row.SlotDate != nil {
		req.Slot = &MeetingSlot{
			ID:        *req.SlotID,
			Date:      *row.SlotDate,
			StartTime: derefOr(row.SlotStart, ""),
			EndTime:   derefOr(row.SlotEnd, ""),
			IsBooked:  derefOr(row.SlotIsBooked, false),
			Notes:     row.SlotNotes,
		}
	}
	return req
}

func derefOr[T any](p *T, fallback T) T {
	if p == nil {
		return fallback
	}
	return *p
}

func (r *PostgresRepository) ListRequests(ctx context.Context) ([]MeetingRequest, error) {
	rows := make([]requestRow, 0)
	err := r.db.SelectContext(ctx, &rows, `
		SELECT mr.id, mr.name, mr.email, mr.company, mr.topic, mr.status, mr.meeting_link,
		       mr.slot_id, mr.created_at,
		       ms.date::text AS slot_date,
		       ms.start_time::text AS slot_start_time,
		       ms.end_time::text AS slot_end_time,
		       ms.is_booked AS slot_is_booked,
		       ms.notes AS slot_notes
		FROM meeting_requests mr
		LEFT JOIN meeting_slots ms ON ms.id = mr.slot_id
		ORDER BY mr.created_at DESC`)
	if err != nil {
		return nil, err
	}

	out := make([]MeetingRequest, 0, len(rows))
	for _, row := range rows {
		out = append(out, row.assemble())
	}
	return out, nil
}

func (r *PostgresRepository) UpdateRequest(ctx context.Context, id string, input UpdateRequestInput) (MeetingRequest, error) {
	sets := []string{}
	args := []interface{}{}
	set := func(col string, v interface{}) {
		args = append(args, v)
		sets = append(sets, fmt.Sprintf("%s = $%d", col, len(args)))
	}

	if input.Status != nil {
		set("status", *input.Status)
	}
	if input.MeetingLink != nil {
		set("meeting_link", *input.MeetingLink)
	}
	if len(sets) == 0 {
		sets = append(sets, "status = status")
	}

	args = append(args, id)
	query := fmt.Sprintf(`UPDATE meeting_requests SET %s WHERE id = $%d RETURNING %s`,
		strings.Join(sets, ", "), len(args), requestColumns)

	var out MeetingRequest
	err := r.db.GetContext(ctx, &out, query, args...)
	return out, err
}

func (r *PostgresRepository) DeleteRequest(ctx context.Context, id string) (bool, error) {
	res, err := r.db.ExecContext(ctx, `DELETE FROM meeting_requests WHERE id = $1`, id)
	if err != nil {
		return false, err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}
