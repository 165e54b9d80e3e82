package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

// EventType mirrors the kinds of happenings the catalog sells.
type EventType string

const (
	EventTypeWorkshop EventType = "workshop"
	EventTypeBootcamp EventType = "bootcamp"
	EventTypeEvent    EventType = "event"
	EventTypeCourse   EventType = "course"
)

type EventLocation string

const (
	EventLocationOnline   EventLocation = "online"
	EventLocationInPerson EventLocation = "in_person"
	EventLocationHybrid   EventLocation = "hybrid"
)

type Event struct {
	ID              uuid.UUID      `db:"id" json:"id"`
	Name            string         `db:"name" json:"name"`
	Type            EventType      `db:"type" json:"type"`
	Description     *string        `db:"description" json:"description,omitempty"`
	Price           *float64       `db:"price" json:"price,omitempty"`
	Reduction       *float64       `db:"reduction" json:"reduction,omitempty"`
	Duration        *string        `db:"duration" json:"duration,omitempty"`
	StartDate       *time.Time     `db:"start_date" json:"startDate,omitempty"`
	Periode         *string        `db:"periode" json:"periode,omitempty"`
	Animator        *string        `db:"animator" json:"animator,omitempty"`
	Location        EventLocation  `db:"location" json:"location"`
	Address         *string        `db:"address" json:"address,omitempty"`
	Certification   bool           `db:"certification" json:"certification"`
	CoverImage      string         `db:"cover_image" json:"coverImage"`
	Objectives      pq.StringArray `db:"objectives" json:"objectives"`
	Required        pq.StringArray `db:"required" json:"required"`
	Included        pq.StringArray `db:"included" json:"includedInEvent"`
	MaxParticipants *int           `db:"max_participants" json:"maxParticipants,omitempty"`
	CategoryID      *uuid.UUID     `db:"category_id" json:"categoryId,omitempty"`
	CreatedAt       time.Time      `db:"created_at" json:"createdAt"`
	UpdatedAt       time.Time      `db:"updated_at" json:"updatedAt"`
}

func (t EventType) Valid() bool {
	switch t {
	case EventTypeWorkshop, EventTypeBootcamp, EventTypeEvent, EventTypeCourse:
		return true
	}
	return false
}

func (l EventLocation) Valid() bool {
	switch l {
	case EventLocationOnline, EventLocationInPerson, EventLocationHybrid:
		return true
	}
	return false
}
