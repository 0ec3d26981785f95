package team

import "time"

type Member struct {
	ID           string    `db:"id" json:"id"`
	Name         string    `db:"name" json:"name"`
	Title        string    `db:"title" json:"title"`
	Bio          string    `db:"bio" json:"bio"`
	ImageURL     *string   `db:"image_url" json:"image_url"`
	IsPublished  bool      `db:"is_published" json:"is_published"`
	DisplayOrder int       `db:"display_order" json:"display_order"`
	CreatedAt    time.Time `db:"created_at" json:"created_at"`
	UpdatedAt    time.Time `db:"updated_at" json:"updated_at"`
}

type CreateRequest struct {
	Name         string `json:"name" validate:"required"`
	Title        string `json:"title" validate:"required"`
	Bio          string `json:"bio" validate:"required"`
	ImageURL     string `json:"image_url"`
	IsPublished  *bool  `json:"is_published"`
	DisplayOrder *int   `json:"display_order" validate:"omitempty,gte=0"`
}

type UpdateRequest struct {
	Name         *string `json:"name" validate:"omitempty,min=1"`
	Title        *string `json:"title" validate:"omitempty,min=1"`
	Bio          *string `json:"bio" validate:"omitempty,min=1"`
	ImageURL     *string `json:"image_url"`
	IsPublished  *bool   `json:"is_published"`
	DisplayOrder *int    `json:"display_order" validate:"omitempty,gte=0"`
}
