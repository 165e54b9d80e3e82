package entity

import (
	"time"

	"github.com/google/uuid"
)

type Workshop struct {
	ID              uuid.UUID `db:"id" json:"id"`
	Name            string    `db:"name" json:"name"`
	Description     *string   `db:"description" json:"description,omitempty"`
	StartDate       time.Time `db:"start_date" json:"startDate"`
	EndDate         time.Time `db:"end_date" json:"endDate"`
	Location        string    `db:"location" json:"location"`
	Instructor      *string   `db:"instructor" json:"instructor,omitempty"`
	MaxParticipants *int      `db:"max_participants" json:"maxParticipants,omitempty"`
	Price           *float64  `db:"price" json:"price,omitempty"`
	CoverImage      *string   `db:"cover_image" json:"coverImage,omitempty"`
	CreatedAt       time.Time `db:"created_at" json:"createdAt"`
	UpdatedAt       time.Time `db:"updated_at" json:"updatedAt"`
}
