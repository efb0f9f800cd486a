package domain

import (
	"errors"
	"strings"
	"time"
)

// Role is the access tier of a user. The set is closed: anything outside
// RoleAdmin and RoleCustomer is rejected at the boundary and never stored.
type Role string

const (
	RoleAdmin    Role = "admin"
	RoleCustomer Role = "customer"
)

// Valid reports whether r is one of the known roles.
func (r Role) Valid() bool {
	return r == RoleAdmin || r == RoleCustomer
}

// User models an account in the shop. PasswordHash holds the bcrypt hash of
// the password and is never serialized.
type User struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	Role         Role      `json:"role"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

var ErrUserNotFound = errors.New("user not found")
var ErrEmailInUse = errors.New("email already in use")
var ErrInvalidRole = errors.New("role must be admin or customer")
var ErrSelfTarget = errors.New("modifying own account is not allowed")
var ErrForbidden = errors.New("access forbidden")

// ValidationError carries every reason a payload was rejected, so clients see
// the full list instead of only the first violation.
type ValidationError struct {
	Reasons []string
}

func (e *ValidationError) Error() string {
	return strings.Join(e.Reasons, "; ")
}

const (
	// MinPasswordLength is checked against the plaintext before hashing.
	MinPasswordLength = 10
	// MaxNameLength bounds the user name after trimming.
	MaxNameLength = 50
)
