package validator

import (
	"makerskills-api/core/controller"
	"makerskills-api/core/utils"
	"makerskills-api/modules/auth/dto"
)

type ValidationResult struct {
	Errors []controller.ValidationError `json:"errors,omitempty"`
}

func (r ValidationResult) HasError() bool {
	return len(r.Errors) > 0
}

func (r *ValidationResult) add(field, message string) {
	r.Errors = append(r.Errors, controller.NewValidationError(field, message))
}

func ValidateLoginRequest(req *dto.LoginRequest) ValidationResult {
	var result ValidationResult
	if req.Email == "" {
		result.add("email", "email is required")
	} else if !utils.IsValidEmail(req.Email) {
		result.add("email", "email is not valid")
	}
	if req.Password == "" {
		result.add("password", "password is required")
	}
	return result
}

func ValidateCreateUserRequest(req *dto.CreateUserRequest) ValidationResult {
	var result ValidationResult
	if req.Email == "" {
		result.add("email", "email is required")
	} else if !utils.IsValidEmail(req.Email) {
		result.add("email", "email is not valid")
	}
	if len(req.Password) < 6 {
		result.add("password", "password must be at least 6 characters")
	}
	return result
}
