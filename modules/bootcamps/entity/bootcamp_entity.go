package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

type Bootcamp struct {
	ID          uuid.UUID      `db:"id" json:"id"`
	Name        string         `db:"name" json:"name"`
	CategoryID  uuid.UUID      `db:"category_id" json:"categoryId"`
	Types       pq.StringArray `db:"types" json:"types"`
	Description *string        `db:"description" json:"description,omitempty"`
	Images      pq.StringArray `db:"images" json:"images"`
	DateDebut   time.Time      `db:"date_debut" json:"dateDebut"`
	DateFin     time.Time      `db:"date_fin" json:"dateFin"`
	Periode     *string        `db:"periode" json:"periode,omitempty"`
	Location    string         `db:"location" json:"location"`
	Price       string         `db:"price" json:"price"`
	Animator    string         `db:"animator" json:"animator"`
	CreatedAt   time.Time      `db:"created_at" json:"createdAt"`
	UpdatedAt   time.Time      `db:"updated_at" json:"updatedAt"`
}
