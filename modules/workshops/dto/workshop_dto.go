package dto

import (
	"time"

	"github.com/google/uuid"
)

type CreateWorkshopRequest struct {
	Name              string     `json:"name" form:"name"`
	Description       string     `json:"description" form:"description"`
	StartDate         *time.Time `json:"startDate" form:"startDate"`
	EndDate           *time.Time `json:"endDate" form:"endDate"`
	Location          string     `json:"location" form:"location"`
	Instructor        string     `json:"instructor" form:"instructor"`
	MaxParticipants   *int       `json:"maxParticipants" form:"maxParticipants"`
	Price             *float64   `json:"price" form:"price"`
	CoverImage        string     `json:"coverImage" form:"coverImage"`
	SuggestedProducts []string   `json:"suggestedProducts" form:"suggestedProducts"`
}

type UpdateWorkshopRequest struct {
	Name              *string    `json:"name" form:"name"`
	Description       *string    `json:"description" form:"description"`
	StartDate         *time.Time `json:"startDate" form:"startDate"`
	EndDate           *time.Time `json:"endDate" form:"endDate"`
	Location          *string    `json:"location" form:"location"`
	Instructor        *string    `json:"instructor" form:"instructor"`
	MaxParticipants   *int       `json:"maxParticipants" form:"maxParticipants"`
	Price             *float64   `json:"price" form:"price"`
	CoverImage        *string    `json:"coverImage" form:"coverImage"`
	SuggestedProducts []string   `json:"suggestedProducts" form:"suggestedProducts"`
}

type ParticipantSummary struct {
	ID        uuid.UUID `json:"id"`
	FirstName string    `json:"firstName"`
	LastName  string    `json:"lastName"`
	Email     string    `json:"email"`
}

type WorkshopResponse struct {
	ID                uuid.UUID            `json:"id"`
	Name              string               `json:"name"`
	Description       string               `json:"description,omitempty"`
	StartDate         time.Time            `json:"startDate"`
	EndDate           time.Time            `json:"endDate"`
	Location          string               `json:"location"`
	Instructor        string               `json:"instructor,omitempty"`
	MaxParticipants   *int                 `json:"maxParticipants,omitempty"`
	Price             *float64             `json:"price,omitempty"`
	CoverImage        string               `json:"coverImage,omitempty"`
	SuggestedProducts []uuid.UUID          `json:"suggestedProducts"`
	Participants      []ParticipantSummary `json:"participants"`
	CreatedAt         time.Time            `json:"createdAt"`
	UpdatedAt         time.Time            `json:"updatedAt"`
}
