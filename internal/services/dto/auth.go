package dto

import "jobboard_backend/internal/utils"

type SignupRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=1"`
}

// Normalize trims and lowercases the email so padded but otherwise valid
// addresses pass validation and land canonical in the database.
func (r *SignupRequest) Normalize() {
	r.Email = utils.NormalizeEmail(r.Email)
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

func (r *LoginRequest) Normalize() {
	r.Email = utils.NormalizeEmail(r.Email)
}

type TokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}

type UserDTO struct {
	ID    uint   `json:"id"`
	Email string `json:"email"`
	Role  string `json:"role"`
}

// RoleChangeRequest is the admin-only role update payload.
type RoleChangeRequest struct {
	Role string `json:"role" validate:"required,is-user-role"`
}
