package dto

// Buttons arrives as a JSON-encoded string when the request is
// multipart; the service decodes it.
type CreateHeroSectionRequest struct {
	Title       string   `json:"title" form:"title"`
	Description string   `json:"description" form:"description"`
	Buttons     string   `json:"buttons" form:"buttons"`
	Images      []string `json:"-" form:"-"`
}

type UpdateHeroSectionRequest struct {
	Title       *string  `json:"title" form:"title"`
	Description *string  `json:"description" form:"description"`
	Buttons     *string  `json:"buttons" form:"buttons"`
	Images      []string `json:"-" form:"-"`
}
