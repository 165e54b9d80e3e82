package entity

import (
	"time"

	"github.com/google/uuid"
)

type Review struct {
	ID            uuid.UUID `db:"id" json:"id"`
	FullName      string    `db:"full_name" json:"fullName"`
	Image         *string   `db:"image" json:"image,omitempty"`
	PosteActuelle *string   `db:"poste_actuelle" json:"posteActuelle,omitempty"`
	Stars         int       `db:"stars" json:"stars"`
	Message       string    `db:"message" json:"message"`
	CreatedAt     time.Time `db:"created_at" json:"createdAt"`
	UpdatedAt     time.Time `db:"updated_at" json:"updatedAt"`
}
