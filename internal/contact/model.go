package contact

import "time"

type Inquiry struct {
	ID        string    `db:"id" json:"id"`
	Name      string    `db:"name" json:"name"`
	Email     string    `db:"email" json:"email"`
	Company   *string   `db:"company" json:"company"`
	RoleTitle *string   `db:"role_title" json:"role_title"`
	Message   string    `db:"message" json:"message"`
	IsRead    bool      `db:"is_read" json:"is_read"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
}

type CreateRequest struct {
	Name      string `json:"name" validate:"required"`
	Email     string `json:"email" validate:"required,email"`
	Company   string `json:"company"`
	RoleTitle string `json:"role_title"`
	Message   string `json:"message" validate:"required"`
}

type UpdateRequest struct {
	IsRead *bool `json:"is_read"`
}
