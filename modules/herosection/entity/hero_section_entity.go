package entity

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

// HeroButton is a call-to-action rendered on the landing hero.
type HeroButton struct {
	Name   string `json:"name"`
	Action string `json:"action"`
}

// HeroButtons is stored as a JSONB column.
type HeroButtons []HeroButton

func (b HeroButtons) Value() (driver.Value, error) {
	if b == nil {
		return json.Marshal([]HeroButton{})
	}
	return json.Marshal(b)
}

func (b *HeroButtons) Scan(src interface{}) error {
	if src == nil {
		*b = HeroButtons{}
		return nil
	}
	data, ok := src.([]byte)
	if !ok {
		return fmt.Errorf("unsupported scan type %T for HeroButtons", src)
	}
	return json.Unmarshal(data, b)
}

type HeroSection struct {
	ID          uuid.UUID      `db:"id" json:"id"`
	Title       string         `db:"title" json:"title"`
	Description string         `db:"description" json:"description"`
	Images      pq.StringArray `db:"images" json:"images"`
	Buttons     HeroButtons    `db:"buttons" json:"buttons"`
	CreatedAt   time.Time      `db:"created_at" json:"createdAt"`
	UpdatedAt   time.Time      `db:"updated_at" json:"updatedAt"`
}
