package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

type Blog struct {
	ID          uuid.UUID      `db:"id" json:"id"`
	Title       string         `db:"title" json:"title"`
	Slug        string         `db:"slug" json:"slug"`
	Cover       string         `db:"cover" json:"cover"`
	Images      pq.StringArray `db:"images" json:"images"`
	Video       *string        `db:"video" json:"video,omitempty"`
	Description *string        `db:"description" json:"description,omitempty"`
	CreatedAt   time.Time      `db:"created_at" json:"createdAt"`
	UpdatedAt   time.Time      `db:"updated_at" json:"updatedAt"`
}
