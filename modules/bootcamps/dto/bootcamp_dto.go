package dto

import (
	"time"

	"makerskills-api/modules/bootcamps/entity"

	"github.com/google/uuid"
)

type CreateBootcampRequest struct {
	Name        string     `json:"name" form:"name"`
	CategoryID  string     `json:"categoryId" form:"categoryId"`
	Types       []string   `json:"types" form:"types"`
	Description string     `json:"description" form:"description"`
	Images      []string   `json:"images" form:"images"`
	DateDebut   *time.Time `json:"dateDebut" form:"dateDebut"`
	DateFin     *time.Time `json:"dateFin" form:"dateFin"`
	Periode     string     `json:"periode" form:"periode"`
	Location    string     `json:"location" form:"location"`
	Price       string     `json:"price" form:"price"`
	Animator    string     `json:"animator" form:"animator"`
	Products    []string   `json:"products" form:"products"`
}

type UpdateBootcampRequest struct {
	Name        *string    `json:"name" form:"name"`
	CategoryID  *string    `json:"categoryId" form:"categoryId"`
	Types       []string   `json:"types" form:"types"`
	Description *string    `json:"description" form:"description"`
	Images      []string   `json:"images" form:"images"`
	DateDebut   *time.Time `json:"dateDebut" form:"dateDebut"`
	DateFin     *time.Time `json:"dateFin" form:"dateFin"`
	Periode     *string    `json:"periode" form:"periode"`
	Location    *string    `json:"location" form:"location"`
	Price       *string    `json:"price" form:"price"`
	Animator    *string    `json:"animator" form:"animator"`
	Products    []string   `json:"products" form:"products"`
}

type BootcampResponse struct {
	entity.Bootcamp
	Products []uuid.UUID `json:"products"`
}
