package entity

import (
	"time"

	"github.com/google/uuid"
)

type CategoryType string

const (
	CategoryTypeProduct CategoryType = "product"
	CategoryTypeEvent   CategoryType = "event"
)

type Category struct {
	ID          uuid.UUID     `db:"id" json:"id"`
	Name        string        `db:"name" json:"name"`
	Description *string       `db:"description" json:"description,omitempty"`
	Type        *CategoryType `db:"type" json:"type,omitempty"`
	CreatedAt   time.Time     `db:"created_at" json:"createdAt"`
	UpdatedAt   time.Time     `db:"updated_at" json:"updatedAt"`
}

func (t CategoryType) Valid() bool {
	return t == CategoryTypeProduct || t == CategoryTypeEvent
}
