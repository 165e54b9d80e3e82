package dto

type CreateOfferingRequest struct {
	Name        string   `json:"name" form:"name"`
	Description string   `json:"description" form:"description"`
	Category    string   `json:"category" form:"category"`
	Price       *float64 `json:"price" form:"price"`
	Duration    string   `json:"duration" form:"duration"`
	Provider    string   `json:"provider" form:"provider"`
	IsActive    *bool    `json:"isActive" form:"isActive"`
}

type UpdateOfferingRequest struct {
	Name        *string  `json:"name" form:"name"`
	Description *string  `json:"description" form:"description"`
	Category    *string  `json:"category" form:"category"`
	Price       *float64 `json:"price" form:"price"`
	Duration    *string  `json:"duration" form:"duration"`
	Provider    *string  `json:"provider" form:"provider"`
	IsActive    *bool    `json:"isActive" form:"isActive"`
}
