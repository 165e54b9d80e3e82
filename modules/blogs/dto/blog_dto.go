package dto

type CreateBlogRequest struct {
	Title       string   `json:"title" form:"title"`
	Cover       string   `json:"cover" form:"cover"`
	Images      []string `json:"images" form:"images"`
	Video       string   `json:"video" form:"video"`
	Description string   `json:"description" form:"description"`
}

type UpdateBlogRequest struct {
	Title       *string  `json:"title" form:"title"`
	Cover       *string  `json:"cover" form:"cover"`
	Images      []string `json:"images" form:"images"`
	Video       *string  `json:"video" form:"video"`
	Description *string  `json:"description" form:"description"`
}
