package dto

import "time"

type CreateProjectRequest struct {
	Name        string     `json:"name" form:"name"`
	Description string     `json:"description" form:"description"`
	Status      string     `json:"status" form:"status"`
	StartDate   *time.Time `json:"startDate" form:"startDate"`
	EndDate     *time.Time `json:"endDate" form:"endDate"`
	Budget      *float64   `json:"budget" form:"budget"`
	Client      string     `json:"client" form:"client"`
}

type UpdateProjectRequest struct {
	Name        *string    `json:"name" form:"name"`
	Description *string    `json:"description" form:"description"`
	Status      *string    `json:"status" form:"status"`
	StartDate   *time.Time `json:"startDate" form:"startDate"`
	EndDate     *time.Time `json:"endDate" form:"endDate"`
	Budget      *float64   `json:"budget" form:"budget"`
	Client      *string    `json:"client" form:"client"`
}
