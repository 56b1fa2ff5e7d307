package handler

import "github.com/velkart/commerce-api/internal/core/domain"

// statusResponse is the envelope returned by operations with no payload.
type statusResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// --- Request types ---

type registerRequest struct {
	Name     string `json:"name"     validate:"required"`
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required"`
	Phone    string `json:"phone"    validate:"required"`
	Address  string `json:"address"  validate:"required"`
	Answer   string `json:"answer"   validate:"required"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type forgotPasswordRequest struct {
	Email       string `json:"email"       validate:"required"`
	Answer      string `json:"answer"      validate:"required"`
	NewPassword string `json:"newPassword" validate:"required"`
}

type updateProfileRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Phone    string `json:"phone"`
	Address  string `json:"address"`
}

// --- Response types ---

// profileView is the sanitized projection returned on login: no identifier,
// no secrets.
type profileView struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	Address string `json:"address"`
	Role    string `json:"role"`
}

type registerResponse struct {
	Success bool         `json:"success"`
	Message string       `json:"message"`
	User    *domain.User `json:"user"`
}

type loginResponse struct {
	Success bool        `json:"success"`
	Message string      `json:"message"`
	User    profileView `json:"user"`
	Token   string      `json:"token"`
}

type updateProfileResponse struct {
	Success     bool         `json:"success"`
	Message     string       `json:"message"`
	UpdatedUser *domain.User `json:"updatedUser"`
}
