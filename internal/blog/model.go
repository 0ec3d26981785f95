package blog

import (
	"time"

	"github.com/lib/pq"
)

const (
	CategoryBlog    = "blog"
	CategoryArticle = "article"
)

type BlogPost struct {
	ID               string         `db:"id" json:"id"`
	Title            string         `db:"title" json:"title"`
	Slug             string         `db:"slug" json:"slug"`
	Category         string         `db:"category" json:"category"`
	Content          string         `db:"content" json:"content"`
	Excerpt          *string        `db:"excerpt" json:"excerpt"`
	Author           *string        `db:"author" json:"author"`
	Tags             pq.StringArray `db:"tags" json:"tags"`
	FeaturedImageURL *string        `db:"featured_image_url" json:"featured_image_url"`
	IsPublished      bool           `db:"is_published" json:"is_published"`
	PublishedAt      *time.Time     `db:"published_at" json:"published_at"`
	DisplayOrder     int            `db:"display_order" json:"display_order"`
	CreatedAt        time.Time      `db:"created_at" json:"created_at"`
	UpdatedAt        time.Time      `db:"updated_at" json:"updated_at"`
}

type CreateRequest struct {
	Title            string   `json:"title" validate:"required"`
	Slug             string   `json:"slug"`
	Category         string   `json:"category" validate:"omitempty,oneof=blog article"`
	Content          string   `json:"content" validate:"required"`
	Excerpt          string   `json:"excerpt"`
	Author           string   `json:"author"`
	Tags             []string `json:"tags"`
	FeaturedImageURL string   `json:"featured_image_url"`
	IsPublished      *bool    `json:"is_published"`
	DisplayOrder     *int     `json:"display_order" validate:"omitempty,gte=0"`
}

type UpdateRequest struct {
	Title            *string   `json:"title" validate:"omitempty,min=1"`
	Slug             *string   `json:"slug" validate:"omitempty,min=1"`
	Category         *string   `json:"category" validate:"omitempty,oneof=blog article"`
	Content          *string   `json:"content" validate:"omitempty,min=1"`
	Excerpt          *string   `json:"excerpt"`
	Author           *string   `json:"author"`
	Tags             *[]string `json:"tags"`
	FeaturedImageURL *string   `json:"featured_image_url"`
	IsPublished      *bool     `json:"is_published"`
	DisplayOrder     *int      `json:"display_order" validate:"omitempty,gte=0"`
}
