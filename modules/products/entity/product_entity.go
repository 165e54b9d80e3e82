package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

type Product struct {
	ID          uuid.UUID      `db:"id" json:"id"`
	Name        string         `db:"name" json:"name"`
	Slug        string         `db:"slug" json:"slug"`
	Description *string        `db:"description" json:"description,omitempty"`
	Price       float64        `db:"price" json:"price"`
	CategoryID  uuid.UUID      `db:"category_id" json:"categoryId"`
	Images      pq.StringArray `db:"images" json:"images"`
	Video       *string        `db:"video" json:"video,omitempty"`
	CreatedAt   time.Time      `db:"created_at" json:"createdAt"`
	UpdatedAt   time.Time      `db:"updated_at" json:"updatedAt"`
}
