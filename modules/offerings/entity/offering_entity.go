package entity

import (
	"time"

	"github.com/google/uuid"
)

// Offering is a service the organization sells; the table keeps the
// original "services" name.
type Offering struct {
	ID          uuid.UUID `db:"id" json:"id"`
	Name        string    `db:"name" json:"name"`
	Description *string   `db:"description" json:"description,omitempty"`
	Category    *string   `db:"category" json:"category,omitempty"`
	Price       *float64  `db:"price" json:"price,omitempty"`
	Duration    *string   `db:"duration" json:"duration,omitempty"`
	Provider    *string   `db:"provider" json:"provider,omitempty"`
	IsActive    bool      `db:"is_active" json:"isActive"`
	CreatedAt   time.Time `db:"created_at" json:"createdAt"`
	UpdatedAt   time.Time `db:"updated_at" json:"updatedAt"`
}
