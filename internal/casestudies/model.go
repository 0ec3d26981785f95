package casestudies

import (
	"time"

	"github.com/lib/pq"
)

type CaseStudy struct {
	ID           string         `db:"id" json:"id"`
	Title        string         `db:"title" json:"title"`
	Industry     *string        `db:"industry" json:"industry"`
	Challenge    string         `db:"challenge" json:"challenge"`
	Solution     string         `db:"solution" json:"solution"`
	Outcome      string         `db:"outcome" json:"outcome"`
	Tags         pq.StringArray `db:"tags" json:"tags"`
	IsPublished  bool           `db:"is_published" json:"is_published"`
	DisplayOrder int            `db:"display_order" json:"display_order"`
	CreatedAt    time.Time      `db:"created_at" json:"created_at"`
	UpdatedAt    time.Time      `db:"updated_at" json:"updated_at"`
}

type CreateRequest struct {
	Title        string   `json:"title" validate:"required"`
	Industry     string   `json:"industry"`
	Challenge    string   `json:"challenge" validate:"required"`
	Solution     string   `json:"solution" validate:"required"`
	Outcome      string   `json:"outcome" validate:"required"`
	Tags         []string `json:"tags"`
	IsPublished  *bool    `json:"is_published"`
	DisplayOrder *int     `json:"display_order" validate:"omitempty,gte=0"`
}

type UpdateRequest struct {
	Title        *string   `json:"title" validate:"omitempty,min=1"`
	Industry     *string   `json:"industry"`
	Challenge    *string   `json:"challenge" validate:"omitempty,min=1"`
	Solution     *string   `json:"solution" validate:"omitempty,min=1"`
	Outcome      *string   `json:"outcome" validate:"omitempty,min=1"`
	Tags         *[]string `json:"tags"`
	IsPublished  *bool     `json:"is_published"`
	DisplayOrder *int      `json:"display_order" validate:"omitempty,gte=0"`
}
