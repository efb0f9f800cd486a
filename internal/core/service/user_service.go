package service

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/webshop/webshop-api/internal/core/domain"
	"github.com/webshop/webshop-api/internal/core/ports"
)

// emailPattern is a pragmatic RFC-ish check; emails are lowercased before
// matching.
var emailPattern = regexp.MustCompile(
	"^[a-z0-9!#$%&'*+/=?^_`{|}~-]+(?:\\.[a-z0-9!#$%&'*+/=?^_`{|}~-]+)*" +
		"@(?:[a-z0-9](?:[a-z0-9-]*[a-z0-9])?\\.)+[a-z0-9](?:[a-z0-9-]*[a-z0-9])?$")

// UserService implements registration and the admin-only user operations.
type UserService struct {
	repo ports.UserRepository
	log  zerolog.Logger
}

func NewUserService(repo ports.UserRepository, log zerolog.Logger) *UserService {
	return &UserService{repo: repo, log: log}
}

// Register validates the payload, reporting every violation at once, and
// creates the account. The posted role is ignored: new accounts are always
// customers. The FindByEmail pre-check is advisory only; a race that slips
// past it is caught by the unique index and surfaces as the same conflict.
func (s *UserService) Register(ctx context.Context, in ports.RegisterInput) (*domain.User, error) {
	name := strings.TrimSpace(in.Name)
	email := strings.ToLower(strings.TrimSpace(in.Email))

	var reasons []string
	switch {
	case name == "":
		reasons = append(reasons, "name is required")
	case utf8.RuneCountInString(name) > domain.MaxNameLength:
		reasons = append(reasons, fmt.Sprintf("name must be at most %d characters", domain.MaxNameLength))
	}
	switch {
	case email == "":
		reasons = append(reasons, "email is required")
	case !emailPattern.MatchString(email):
		reasons = append(reasons, "email must be a valid email")
	}
	switch {
	case in.Password == "":
		reasons = append(reasons, "password is required")
	case len(in.Password) < domain.MinPasswordLength:
		reasons = append(reasons, fmt.Sprintf("password must be at least %d characters", domain.MinPasswordLength))
	}
	if len(reasons) > 0 {
		return nil, &domain.ValidationError{Reasons: reasons}
	}

	if _, err := s.repo.FindByEmail(ctx, email); err == nil {
		return nil, domain.ErrEmailInUse
	} else if !errors.Is(err, domain.ErrUserNotFound) {
		return nil, fmt.Errorf("register: email pre-check: %w", err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("register: hash password: %w", err)
	}

	now := time.Now().UTC()
	created, err := s.repo.Insert(ctx, &domain.User{
		Name:         name,
		Email:        email,
		PasswordHash: string(hash),
		Role:         domain.RoleCustomer,
		CreatedAt:    now,
		UpdatedAt:    now,
	})
	if err != nil {
		return nil, err
	}

	s.log.Info().Str("user_id", created.ID).Msg("user registered")
	return created, nil
}

func (s *UserService) List(ctx context.Context) ([]*domain.User, error) {
	return s.repo.FindAll(ctx)
}

func (s *UserService) Get(ctx context.Context, id string) (*domain.User, error) {
	return s.repo.FindByID(ctx, id)
}

// UpdateRole changes the role of the target record. The self-target check
// runs before anything touches the store, so the response for a self id is
// the same whether or not that id exists. The target is then looked up
// before the role value is inspected: an absent target reads as not found
// even when the requested role is bad.
func (s *UserService) UpdateRole(ctx context.Context, in ports.UpdateRoleInput) (*domain.User, error) {
	if in.ActorID == in.TargetID {
		return nil, domain.ErrSelfTarget
	}
	if _, err := s.repo.FindByID(ctx, in.TargetID); err != nil {
		return nil, err
	}
	if !in.Role.Valid() {
		return nil, domain.ErrInvalidRole
	}

	updated, err := s.repo.UpdateRole(ctx, in.TargetID, in.Role)
	if err != nil {
		return nil, err
	}

	s.log.Info().
		Str("actor_id", in.ActorID).
		Str("user_id", updated.ID).
		Str("role", string(updated.Role)).
		Msg("role updated")
	return updated, nil
}

// Delete removes the target record and returns it. Self-deletion is rejected
// before any store access, same as UpdateRole.
func (s *UserService) Delete(ctx context.Context, in ports.DeleteInput) (*domain.User, error) {
	if in.ActorID == in.TargetID {
		return nil, domain.ErrSelfTarget
	}

	removed, err := s.repo.Delete(ctx, in.TargetID)
	if err != nil {
		return nil, err
	}

	s.log.Info().
		Str("actor_id", in.ActorID).
		Str("user_id", removed.ID).
		Msg("user deleted")
	return removed, nil
}
