package testimonials

import "time"

type Testimonial struct {
	ID           string    `db:"id" json:"id"`
	Quote        string    `db:"quote" json:"quote"`
	AuthorRole   string    `db:"author_role" json:"author_role"`
	IsPublished  bool      `db:"is_published" json:"is_published"`
	DisplayOrder int       `db:"display_order" json:"display_order"`
	CreatedAt    time.Time `db:"created_at" json:"created_at"`
	UpdatedAt    time.Time `db:"updated_at" json:"updated_at"`
}

type CreateRequest struct {
	Quote        string `json:"quote" validate:"required"`
	AuthorRole   string `json:"author_role" validate:"required"`
	IsPublished  *bool  `json:"is_published"`
	DisplayOrder *int   `json:"display_order" validate:"omitempty,gte=0"`
}

type UpdateRequest struct {
	Quote        *string `json:"quote" validate:"omitempty,min=1"`
	AuthorRole   *string `json:"author_role" validate:"omitempty,min=1"`
	IsPublished  *bool   `json:"is_published"`
	DisplayOrder *int    `json:"display_order" validate:"omitempty,gte=0"`
}
