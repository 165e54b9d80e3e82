package dto

import (
	"time"

	"makerskills-api/modules/categories/entity"

	"github.com/google/uuid"
)

type CreateProductRequest struct {
	Name        string   `json:"name" form:"name"`
	Description string   `json:"description" form:"description"`
	Price       *float64 `json:"price" form:"price"`
	CategoryID  string   `json:"categoryId" form:"categoryId"`
	Images      []string `json:"images" form:"images"`
	Video       string   `json:"video" form:"video"`
}

type UpdateProductRequest struct {
	Name        *string  `json:"name" form:"name"`
	Description *string  `json:"description" form:"description"`
	Price       *float64 `json:"price" form:"price"`
	CategoryID  *string  `json:"categoryId" form:"categoryId"`
	Images      []string `json:"images" form:"images"`
	Video       *string  `json:"video" form:"video"`
}

// ProductListResponse is a page of the catalog.
type ProductListResponse struct {
	Items    []ProductResponse `json:"items"`
	Total    int               `json:"total"`
	Page     int               `json:"page"`
	PageSize int               `json:"pageSize"`
}

// ProductResponse embeds the category summary expanded at read time.
type ProductResponse struct {
	ID          uuid.UUID        `json:"id"`
	Name        string           `json:"name"`
	Slug        string           `json:"slug"`
	Description string           `json:"description,omitempty"`
	Price       float64          `json:"price"`
	Category    *entity.Category `json:"category,omitempty"`
	Images      []string         `json:"images"`
	Video       string           `json:"video,omitempty"`
	CreatedAt   time.Time        `json:"createdAt"`
	UpdatedAt   time.Time        `json:"updatedAt"`
}
