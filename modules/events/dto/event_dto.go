package dto

import (
	"time"

	"github.com/google/uuid"
)

// ===================== Request DTOs =====================

// CreateEventRequest binds from JSON or from multipart form fields;
// the cover image file itself is handled by the controller before the
// service ever runs.
type CreateEventRequest struct {
	Name            string     `json:"name" form:"name"`
	Type            string     `json:"type" form:"type"`
	Description     string     `json:"description" form:"description"`
	Price           *float64   `json:"price" form:"price"`
	Reduction       *float64   `json:"reduction" form:"reduction"`
	Duration        string     `json:"duration" form:"duration"`
	StartDate       *time.Time `json:"startDate" form:"startDate"`
	Periode         string     `json:"periode" form:"periode"`
	Animator        string     `json:"animator" form:"animator"`
	Location        string     `json:"location" form:"location"`
	Address         string     `json:"address" form:"address"`
	Certification   bool       `json:"certification" form:"certification"`
	CoverImage      string     `json:"coverImage" form:"coverImage"`
	Objectives      []string   `json:"objectives" form:"objectives"`
	Required        []string   `json:"required" form:"required"`
	Included        []string   `json:"includedInEvent" form:"includedInEvent"`
	MaxParticipants *int       `json:"maxParticipants" form:"maxParticipants"`
	CategoryID      string     `json:"categoryId" form:"categoryId"`
	Products        []string   `json:"products" form:"products"`
}

type UpdateEventRequest struct {
	Name            *string    `json:"name" form:"name"`
	Type            *string    `json:"type" form:"type"`
	Description     *string    `json:"description" form:"description"`
	Price           *float64   `json:"price" form:"price"`
	Reduction       *float64   `json:"reduction" form:"reduction"`
	Duration        *string    `json:"duration" form:"duration"`
	StartDate       *time.Time `json:"startDate" form:"startDate"`
	Periode         *string    `json:"periode" form:"periode"`
	Animator        *string    `json:"animator" form:"animator"`
	Location        *string    `json:"location" form:"location"`
	Address         *string    `json:"address" form:"address"`
	Certification   *bool      `json:"certification" form:"certification"`
	CoverImage      *string    `json:"coverImage" form:"coverImage"`
	Objectives      []string   `json:"objectives" form:"objectives"`
	Required        []string   `json:"required" form:"required"`
	Included        []string   `json:"includedInEvent" form:"includedInEvent"`
	MaxParticipants *int       `json:"maxParticipants" form:"maxParticipants"`
	CategoryID      *string    `json:"categoryId" form:"categoryId"`
	Products        []string   `json:"products" form:"products"`
}

// ===================== Response DTOs =====================

// ParticipantSummary is the populated view of a roster entry.
type ParticipantSummary struct {
	ID        uuid.UUID `json:"id"`
	FirstName string    `json:"firstName"`
	LastName  string    `json:"lastName"`
	Email     string    `json:"email"`
}

type EventResponse struct {
	ID              uuid.UUID            `json:"id"`
	Name            string               `json:"name"`
	Type            string               `json:"type"`
	Description     string               `json:"description,omitempty"`
	Price           *float64             `json:"price,omitempty"`
	Reduction       *float64             `json:"reduction,omitempty"`
	Duration        string               `json:"duration,omitempty"`
	StartDate       *time.Time           `json:"startDate,omitempty"`
	Periode         string               `json:"periode,omitempty"`
	Animator        string               `json:"animator,omitempty"`
	Location        string               `json:"location"`
	Address         string               `json:"address,omitempty"`
	Certification   bool                 `json:"certification"`
	CoverImage      string               `json:"coverImage"`
	Objectives      []string             `json:"objectives"`
	Required        []string             `json:"required"`
	Included        []string             `json:"includedInEvent"`
	MaxParticipants *int                 `json:"maxParticipants,omitempty"`
	CategoryID      *uuid.UUID           `json:"categoryId,omitempty"`
	Products        []uuid.UUID          `json:"products"`
	Participants    []ParticipantSummary `json:"participants"`
	CreatedAt       time.Time            `json:"createdAt"`
	UpdatedAt       time.Time            `json:"updatedAt"`
}
