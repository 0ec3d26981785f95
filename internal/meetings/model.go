package meetings

import "time"

const (
	StatusPending   = "pending"
	StatusDone      = "done"
	StatusPostponed = "postponed"
	StatusCancelled = "cancelled"
)

type MeetingSlot struct {
	ID        string    `db:"id" json:"id"`
	Date      string    `db:"date" json:"date"`
	StartTime string    `db:"start_time" json:"start_time"`
	EndTime   string    `db:"end_time" json:"end_time"`
	IsBooked  bool      `db:"is_booked" json:"is_booked"`
	Notes     *string   `db:"notes" json:"notes"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
}

type MeetingRequest struct {
	ID          string    `db:"id" json:"id"`
	Name        string    `db:"name" json:"name"`
	Email       string    `db:"email" json:"email"`
	Company     *string   `db:"company" json:"company"`
	Topic       *string   `db:"topic" json:"topic"`
	Status      string    `db:"status" json:"status"`
	MeetingLink *string   `db:"meeting_link" json:"meeting_link"`
	SlotID      *string   `db:"slot_id" json:"slot_id"`
	CreatedAt   time.Time `db:"created_at" json:"created_at"`

	// Slot is the joined meeting_slots row; the admin dashboard reads it
	// under this key.
	Slot *MeetingSlot `db:"-" json:"meeting_slots,omitempty"`
}

type CreateSlotRequest struct {
	Date      string `json:"date" validate:"required,date"`
	StartTime string `json:"start_time" validate:"required,clock"`
	EndTime   string `json:"end_time" validate:"required,clock"`
	Notes     string `json:"notes"`
}

type BookingRequest struct {
	Name    string `json:"name" validate:"required"`
	Email   string `json:"email" validate:"required,email"`
	Company string `json:"company"`
	Topic   string `json:"topic"`
	SlotID  string `json:"slot_id"`
}

// UpdateRequestInput is the admin PATCH body for a meeting request. Status
// is a free-form label: the store does not constrain it and the admin UI
// uses values beyond the pending/done set above.
type UpdateRequestInput struct {
	Status      *string `json:"status" validate:"omitempty,min=1"`
	MeetingLink *string `json:"meeting_link"`
}
