package ports

import (
	"context"

	"github.com/velkart/commerce-api/internal/core/domain"
)

// RegisterInput carries all data needed to create an account. Every field is
// required; presence is enforced at the transport layer.
type RegisterInput struct {
	Name        string
	Email       string
	Password    string
	Phone       string
	Address     string
	RecoveryKey string
}

// LoginResult is returned on a successful login. User is the sanitized
// projection; the secrets never leave the service layer.
type LoginResult struct {
	Token string
	User  *domain.User
}

// ForgotPasswordInput carries the recovery credentials and the replacement
// password.
type ForgotPasswordInput struct {
	Email       string
	RecoveryKey string
	NewPassword string
}

// UpdateProfileInput carries the optional profile mutations for UserID.
// Empty fields keep their stored values.
type UpdateProfileInput struct {
	UserID   string
	Name     string
	Email    string
	Password string
	Phone    string
	Address  string
}

// AuthService implements the account flows: registration, login, password
// recovery, and profile updates.
type AuthService interface {
	Register(ctx context.Context, input RegisterInput) (*domain.User, error)
	Login(ctx context.Context, email, password string) (*LoginResult, error)
	ForgotPassword(ctx context.Context, input ForgotPasswordInput) error
	UpdateProfile(ctx context.Context, input UpdateProfileInput) (*domain.User, error)
}
