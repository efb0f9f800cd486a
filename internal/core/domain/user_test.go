package domain

import (
	"strings"
	"testing"
)

func TestRole_Valid(t *testing.T) {
	tests := []struct {
		role Role
		want bool
	}{
		{RoleAdmin, true},
		{RoleCustomer, true},
		{Role(""), false},
		{Role("superuser"), false},
		{Role("Admin"), false},
	}

	for _, tt := range tests {
		if got := tt.role.Valid(); got != tt.want {
			t.Errorf("Role(%q).Valid() = %v, want %v", tt.role, got, tt.want)
		}
	}
}

func TestValidationError_JoinsAllReasons(t *testing.T) {
	err := &ValidationError{Reasons: []string{
		"name is required",
		"password must be at least 10 characters",
	}}

	got := err.Error()
	if got != "name is required; password must be at least 10 characters" {
		t.Fatalf("unexpected message: %q", got)
	}
	if !strings.Contains(got, "; ") {
		t.Fatalf("reasons must be semicolon separated: %q", got)
	}
}
