package dto

import (
	"time"

	"makerskills-api/modules/participants/entity"

	"github.com/google/uuid"
)

// RegisterParticipantRequest carries the public registration form. The
// parent is an event OR a workshop id; providing both is rejected.
type RegisterParticipantRequest struct {
	FirstName   string     `json:"firstName" form:"firstName"`
	LastName    string     `json:"lastName" form:"lastName"`
	Email       string     `json:"email" form:"email"`
	Phone       string     `json:"phone" form:"phone"`
	DateOfBirth *time.Time `json:"dateOfBirth" form:"dateOfBirth"`
	Address     string     `json:"address" form:"address"`
	City        string     `json:"city" form:"city"`
	Country     string     `json:"country" form:"country"`
	EventID     string     `json:"eventId" form:"eventId"`
	WorkshopID  string     `json:"workshopId" form:"workshopId"`
}

type UpdateParticipantRequest struct {
	FirstName   *string    `json:"firstName" form:"firstName"`
	LastName    *string    `json:"lastName" form:"lastName"`
	Email       *string    `json:"email" form:"email"`
	Phone       *string    `json:"phone" form:"phone"`
	DateOfBirth *time.Time `json:"dateOfBirth" form:"dateOfBirth"`
	Address     *string    `json:"address" form:"address"`
	City        *string    `json:"city" form:"city"`
	Country     *string    `json:"country" form:"country"`
}

// ParentSummary names the context a registration was made against.
type ParentSummary struct {
	ID   uuid.UUID `json:"id"`
	Name string    `json:"name"`
}

// RegistrationResponse is the created participant plus a summary of the
// parent it was registered against.
type RegistrationResponse struct {
	Participant *entity.Participant `json:"participant"`
	Event       *ParentSummary      `json:"event,omitempty"`
	Workshop    *ParentSummary      `json:"workshop,omitempty"`
}

// EventGroup is one bucket of the grouped listing: the event summary and
// everyone registered to it.
type EventGroup struct {
	EventID      uuid.UUID            `json:"eventId"`
	EventName    string               `json:"eventName"`
	Price        *float64             `json:"price,omitempty"`
	Participants []entity.Participant `json:"participants"`
}

// RegisteredEvent is the populated view of an event a participant email
// is signed up for.
type RegisteredEvent struct {
	ID          uuid.UUID  `db:"id" json:"id"`
	Name        string     `db:"name" json:"name"`
	Description *string    `db:"description" json:"description,omitempty"`
	Price       *float64   `db:"price" json:"price,omitempty"`
	StartDate   *time.Time `db:"start_date" json:"startDate,omitempty"`
}

// ParticipantEventsResponse lists every event an email is registered to.
type ParticipantEventsResponse struct {
	Email       string            `json:"email"`
	Events      []RegisteredEvent `json:"events"`
	TotalEvents int               `json:"totalEvents"`
}
