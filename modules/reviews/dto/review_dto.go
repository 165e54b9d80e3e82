package dto

type CreateReviewRequest struct {
	FullName      string `json:"fullName" form:"fullName"`
	Image         string `json:"image" form:"image"`
	PosteActuelle string `json:"posteActuelle" form:"posteActuelle"`
	Stars         int    `json:"stars" form:"stars"`
	Message       string `json:"message" form:"message"`
}

type UpdateReviewRequest struct {
	FullName      *string `json:"fullName" form:"fullName"`
	Image         *string `json:"image" form:"image"`
	PosteActuelle *string `json:"posteActuelle" form:"posteActuelle"`
	Stars         *int    `json:"stars" form:"stars"`
	Message       *string `json:"message" form:"message"`
}
