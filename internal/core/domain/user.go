package domain

import (
	"errors"
	"time"
)

const (
	RoleAdmin   = "admin"
	RoleRegular = "regular"
)

var ErrUserNotFound = errors.New("user not found")
var ErrUserExists = errors.New("user already exists")
var ErrInvalidCredentials = errors.New("invalid email or password")
var ErrWrongPassword = errors.New("invalid password")
var ErrWrongRecovery = errors.New("wrong email or answer")
var ErrPasswordTooShort = errors.New("password must be at least 6 characters")
var ErrTooManyResetAttempts = errors.New("too many password reset attempts")

// User is the identity record for a shop account. PasswordHash and
// RecoveryKey are secrets and are never serialised into API responses.
type User struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	Phone        string    `json:"phone"`
	Address      string    `json:"address"`
	RecoveryKey  string    `json:"-"`
	Role         string    `json:"role"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// IsAdmin reports whether the user may access admin-only operations.
func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}
