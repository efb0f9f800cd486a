package service

import (
	"context"
	"errors"
	"strings"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/webshop/webshop-api/internal/core/domain"
	"github.com/webshop/webshop-api/internal/core/ports"
)

const defaultMaxFailures = 10

// LoginThrottle abstracts the failed-login counter (Redis).
type LoginThrottle interface {
	Failures(ctx context.Context, email string) (int64, error)
	RecordFailure(ctx context.Context, email string) error
	Reset(ctx context.Context, email string) error
}

// AuthService resolves Basic credentials to user records. Bad credentials are
// absence, not errors: the caller challenges for authentication and the
// request carries no hint of whether the email exists.
type AuthService struct {
	repo        ports.UserRepository
	throttle    LoginThrottle // nil disables throttling
	maxFailures int64
	log         zerolog.Logger
}

func NewAuthService(repo ports.UserRepository, throttle LoginThrottle, maxFailures int64, log zerolog.Logger) *AuthService {
	if maxFailures <= 0 {
		maxFailures = defaultMaxFailures
	}
	return &AuthService{repo: repo, throttle: throttle, maxFailures: maxFailures, log: log}
}

// Authenticate verifies the password against the stored hash. Throttle
// failures never block a login attempt; the throttle fails open.
func (s *AuthService) Authenticate(ctx context.Context, email, password string) (*domain.User, error) {
	if email == "" || password == "" {
		return nil, nil
	}
	email = strings.ToLower(strings.TrimSpace(email))

	if s.throttle != nil {
		n, err := s.throttle.Failures(ctx, email)
		switch {
		case err != nil:
			s.log.Warn().Err(err).Msg("login throttle check failed, continuing")
		case n >= s.maxFailures:
			s.log.Warn().Str("email", email).Int64("failures", n).Msg("login throttled")
			return nil, nil
		}
	}

	user, err := s.repo.FindByEmail(ctx, email)
	if errors.Is(err, domain.ErrUserNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		if s.throttle != nil {
			if err := s.throttle.RecordFailure(ctx, email); err != nil {
				s.log.Warn().Err(err).Msg("failed to record login failure")
			}
		}
		return nil, nil
	}

	if s.throttle != nil {
		if err := s.throttle.Reset(ctx, email); err != nil {
			s.log.Warn().Err(err).Msg("failed to reset login failures")
		}
	}
	return user, nil
}
