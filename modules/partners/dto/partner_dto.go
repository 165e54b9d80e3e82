package dto

type CreatePartnerRequest struct {
	Name       string `json:"name" form:"name"`
	Specialite string `json:"specialite" form:"specialite"`
	Logo       string `json:"-" form:"-"`
	Website    string `json:"website" form:"website"`
}

type UpdatePartnerRequest struct {
	Name       *string `json:"name" form:"name"`
	Specialite *string `json:"specialite" form:"specialite"`
	Logo       *string `json:"-" form:"-"`
	Website    *string `json:"website" form:"website"`
}
