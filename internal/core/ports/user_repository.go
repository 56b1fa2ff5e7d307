package ports

import (
	"context"

	"github.com/velkart/commerce-api/internal/core/domain"
)

// UserRepository defines persistence operations for user accounts.
type UserRepository interface {
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	FindByID(ctx context.Context, id string) (*domain.User, error)
	// FindByRecovery retrieves the user matching both email and recovery key.
	FindByRecovery(ctx context.Context, email, recoveryKey string) (*domain.User, error)
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	// Update replaces the mutable fields of the user identified by id and
	// returns the stored record after the write.
	Update(ctx context.Context, id string, user *domain.User) (*domain.User, error)
	// UpdatePassword sets only the password hash of the user identified by id.
	UpdatePassword(ctx context.Context, id string, passwordHash string) error
}
