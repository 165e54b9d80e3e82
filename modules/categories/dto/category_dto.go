package dto

type CreateCategoryRequest struct {
	Name        string `json:"name" form:"name"`
	Description string `json:"description" form:"description"`
	Type        string `json:"type" form:"type"`
}

type UpdateCategoryRequest struct {
	Name        *string `json:"name" form:"name"`
	Description *string `json:"description" form:"description"`
	Type        *string `json:"type" form:"type"`
}
