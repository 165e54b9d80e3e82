package entity

import (
	"time"

	"github.com/google/uuid"
)

type Partner struct {
	ID         uuid.UUID `db:"id" json:"id"`
	Name       string    `db:"name" json:"name"`
	Specialite string    `db:"specialite" json:"specialite"`
	Logo       *string   `db:"logo" json:"logo,omitempty"`
	Website    *string   `db:"website" json:"website,omitempty"`
	CreatedAt  time.Time `db:"created_at" json:"createdAt"`
	UpdatedAt  time.Time `db:"updated_at" json:"updatedAt"`
}
