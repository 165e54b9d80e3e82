package mapper

import (
	"makerskills-api/modules/auth/dto"
	"makerskills-api/modules/auth/entity"
)

// ToUserDTO strips the password hash from a credential record.
func ToUserDTO(user *entity.User) *dto.UserResponse {
	if user == nil {
		return nil
	}
	resp := &dto.UserResponse{
		ID:        user.ID.String(),
		Email:     user.Email,
		CreatedAt: user.CreatedAt,
		UpdatedAt: user.UpdatedAt,
	}
	if user.Name != nil {
		resp.Name = *user.Name
	}
	return resp
}
