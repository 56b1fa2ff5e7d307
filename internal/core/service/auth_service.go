package service

import (
	"context"
	"errors"
	"time"

	"github.com/rs/zerolog"

	"github.com/velkart/commerce-api/internal/core/domain"
	"github.com/velkart/commerce-api/internal/core/ports"
)

const minPasswordLen = 6

// ResetLimiter abstracts the recovery-attempt throttle (Redis). A nil limiter
// disables throttling.
type ResetLimiter interface {
	TooManyAttempts(ctx context.Context, email string) (bool, error)
	RecordAttempt(ctx context.Context, email string) error
}

// AuthService implements registration, login, password recovery, and profile
// updates on top of the user store.
type AuthService struct {
	users   ports.UserRepository
	hasher  ports.PasswordHasher
	tokens  ports.TokenIssuer
	limiter ResetLimiter
	log     zerolog.Logger
}

func NewAuthService(
	users ports.UserRepository,
	hasher ports.PasswordHasher,
	tokens ports.TokenIssuer,
	limiter ResetLimiter,
	log zerolog.Logger,
) *AuthService {
	return &AuthService{users: users, hasher: hasher, tokens: tokens, limiter: limiter, log: log}
}

// Register creates a new account with the regular role. The email must not
// already be registered.
func (s *AuthService) Register(ctx context.Context, input ports.RegisterInput) (*domain.User, error) {
	if _, err := s.users.FindByEmail(ctx, input.Email); err == nil {
		return nil, domain.ErrUserExists
	} else if !errors.Is(err, domain.ErrUserNotFound) {
		return nil, err
	}

	hash, err := s.hasher.Hash(input.Password)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	user := &domain.User{
		Name:         input.Name,
		Email:        input.Email,
		PasswordHash: hash,
		Phone:        input.Phone,
		Address:      input.Address,
		RecoveryKey:  input.RecoveryKey,
		Role:         domain.RoleRegular,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	created, err := s.users.Create(ctx, user)
	if err != nil {
		return nil, err
	}

	s.log.Info().Str("user_id", created.ID).Str("email", created.Email).Msg("user registered")
	return created, nil
}

// Login verifies the credentials and issues a session token bound to the
// user's identifier. A wrong password yields ErrWrongPassword, which the
// transport layer renders as success=false rather than an HTTP error.
func (s *AuthService) Login(ctx context.Context, email, password string) (*ports.LoginResult, error) {
	if email == "" || password == "" {
		return nil, domain.ErrInvalidCredentials
	}

	user, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		return nil, err
	}

	if !s.hasher.Compare(user.PasswordHash, password) {
		return nil, domain.ErrWrongPassword
	}

	token, err := s.tokens.Issue(user.ID)
	if err != nil {
		return nil, err
	}

	s.log.Info().Str("user_id", user.ID).Msg("login successful")
	return &ports.LoginResult{Token: token, User: user}, nil
}

// ForgotPassword resets the password for the account matching both email and
// recovery key. Attempts are throttled per email to slow recovery-key
// guessing.
func (s *AuthService) ForgotPassword(ctx context.Context, input ports.ForgotPasswordInput) error {
	if s.limiter != nil {
		blocked, err := s.limiter.TooManyAttempts(ctx, input.Email)
		if err != nil {
			s.log.Warn().Err(err).Str("email", input.Email).Msg("reset limiter check failed, proceeding")
		} else if blocked {
			return domain.ErrTooManyResetAttempts
		}
		if err := s.limiter.RecordAttempt(ctx, input.Email); err != nil {
			s.log.Warn().Err(err).Str("email", input.Email).Msg("failed to record reset attempt")
		}
	}

	user, err := s.users.FindByRecovery(ctx, input.Email, input.RecoveryKey)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return domain.ErrWrongRecovery
		}
		return err
	}

	hash, err := s.hasher.Hash(input.NewPassword)
	if err != nil {
		return err
	}

	if err := s.users.UpdatePassword(ctx, user.ID, hash); err != nil {
		return err
	}

	s.log.Info().Str("user_id", user.ID).Msg("password reset")
	return nil
}

// UpdateProfile merges the supplied fields over the stored record. Empty
// fields keep their stored values. The password hash is only recomputed when
// a new password was actually supplied.
func (s *AuthService) UpdateProfile(ctx context.Context, input ports.UpdateProfileInput) (*domain.User, error) {
	if input.Password != "" && len(input.Password) < minPasswordLen {
		return nil, domain.ErrPasswordTooShort
	}

	user, err := s.users.FindByID(ctx, input.UserID)
	if err != nil {
		return nil, err
	}

	if input.Name != "" {
		user.Name = input.Name
	}
	if input.Email != "" {
		user.Email = input.Email
	}
	if input.Phone != "" {
		user.Phone = input.Phone
	}
	if input.Address != "" {
		user.Address = input.Address
	}
	if input.Password != "" {
		hash, err := s.hasher.Hash(input.Password)
		if err != nil {
			return nil, err
		}
		user.PasswordHash = hash
	}
	user.UpdatedAt = time.Now().UTC()

	updated, err := s.users.Update(ctx, input.UserID, user)
	if err != nil {
		return nil, err
	}

	s.log.Info().Str("user_id", updated.ID).Msg("profile updated")
	return updated, nil
}
