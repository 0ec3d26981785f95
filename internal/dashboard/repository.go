package dashboard

import (
	"context"

	"github.com/jmoiron/sqlx"

	"github.com/thecanopi/The-Canopi-Website/internal/contact"
	"github.com/thecanopi/The-Canopi-Website/internal/meetings"
)

type Repository interface {
	PublishedCaseStudies(ctx context.Context) (int, error)
	PublishedTestimonials(ctx context.Context) (int, error)
	PublishedTeamMembers(ctx context.Context) (int, error)
	PendingMeetings(ctx context.Context) (int, error)
	UnreadInquiries(ctx context.Context) (int, error)
	RecentInquiries(ctx context.Context, limit int) ([]contact.Inquiry, error)
	UpcomingMeetings(ctx context.Context, limit int) ([]meetings.MeetingRequest, error)
}

type PostgresRepository struct {
	db *sqlx.DB
}

func NewRepository(db *sqlx.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) count(ctx context.Context, query string) (int, error) {
	var n int
	err := r.db.GetContext(ctx, &n, query)
	return n, err
}

func (r *PostgresRepository) PublishedCaseStudies(ctx context.Context) (int, error) {
	return r.count(ctx, `SELECT COUNT(*) FROM case_studies WHERE is_published`)
}

func (r *PostgresRepository) PublishedTestimonials(ctx context.Context) (int, error) {
	return r.count(ctx, `SELECT COUNT(*) FROM testimonials WHERE is_published`)
}

func (r *PostgresRepository) PublishedTeamMembers(ctx context.Context) (int, error) {
	return r.count(ctx, `SELECT COUNT(*) FROM team_members WHERE is_published`)
}

func (r *PostgresRepository) PendingMeetings(ctx context.Context) (int, error) {
	return r.count(ctx, `SELECT COUNT(*) FROM meeting_requests WHERE status = 'pending'`)
}

func (r *PostgresRepository) UnreadInquiries(ctx context.Context) (int, error) {
	return r.count(ctx, `SELECT COUNT(*) FROM contact_inquiries WHERE NOT is_read`)
}

func (r *PostgresRepository) RecentInquiries(ctx context.Context, limit int) ([]contact.Inquiry, error) {
	items := make([]contact.Inquiry, 0, limit)
	err := r.db.SelectContext(ctx, &items, `
		SELECT id, name, email, company, role_title, message, is_read, created_at
		FROM contact_inquiries
		ORDER BY created_at DESC
		LIMIT $1`, limit)
	return items, err
}

type upcomingRow struct {
	meetings.MeetingRequest
	SlotDate  *string `db:"slot_date"`
	SlotStart *string `db:"slot_start_time"`
	SlotEnd   *string `db:"slot_end_time"`
}

func (r *PostgresRepository) UpcomingMeetings(ctx context.Context, limit int) ([]meetings.MeetingRequest, error) {
	rows := make([]upcomingRow, 0, limit)
	err := r.db.SelectContext(ctx, &rows, `
		SELECT mr.id, mr.name, mr.email, mr.company, mr.topic, mr.status, mr.meeting_link,
		       mr.slot_id, mr.created_at,
		       ms.date::text AS slot_date,
		       ms.start_time::text AS slot_start_time,
		       ms.end_time::text AS slot_end_time
		FROM meeting_requests mr
		LEFT JOIN meeting_slots ms ON ms.id = mr.slot_id
		WHERE mr.status = 'pending'
		ORDER BY ms.date ASC NULLS LAST, ms.start_time ASC NULLS LAST, mr.created_at ASC
		LIMIT $1`, limit)
	if err != nil {
		return nil, err
	}

	out := make([]meetings.MeetingRequest, 0, len(rows))
	for _, row := range rows {
		req := row.MeetingRequest
		if req.SlotID != nil && row.SlotDate != nil {
			slot := &meetings.MeetingSlot{ID: *req.SlotID, Date: *row.SlotDate, IsBooked: true}
			if row.SlotStart != nil {
				slot.StartTime = *row.SlotStart
			}
			if row.SlotEnd != nil {
				slot.EndTime = *row.SlotEnd
			}
			req.Slot = slot
		}
		out = append(out, req)
	}
	return out, nil
}
