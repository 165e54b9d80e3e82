package entity

import (
	"time"

	"github.com/google/uuid"
)

// Participant belongs to at most one parent context: an event OR a
// workshop, never both. The table carries the matching CHECK constraint.
type Participant struct {
	ID          uuid.UUID  `db:"id" json:"id"`
	FirstName   string     `db:"first_name" json:"firstName"`
	LastName    string     `db:"last_name" json:"lastName"`
	Email       string     `db:"email" json:"email"`
	Phone       *string    `db:"phone" json:"phone,omitempty"`
	DateOfBirth *time.Time `db:"date_of_birth" json:"dateOfBirth,omitempty"`
	Address     *string    `db:"address" json:"address,omitempty"`
	City        *string    `db:"city" json:"city,omitempty"`
	Country     *string    `db:"country" json:"country,omitempty"`
	EventID     *uuid.UUID `db:"event_id" json:"eventId,omitempty"`
	WorkshopID  *uuid.UUID `db:"workshop_id" json:"workshopId,omitempty"`
	CreatedAt   time.Time  `db:"created_at" json:"createdAt"`
	UpdatedAt   time.Time  `db:"updated_at" json:"updatedAt"`
}
