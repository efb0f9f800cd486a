package handler

import "github.com/webshop/webshop-api/internal/core/domain"

// errorResponse documents the error envelope rendered by the API error
// handler on all 4xx/5xx responses.
type errorResponse struct {
	Error string `json:"error"`
}

// --- Request types ---

// registerRequest carries the signup payload. The name length bound lives in
// the service, which measures the trimmed value; a tag here would count the
// surrounding whitespace the service is about to strip.
type registerRequest struct {
	Name     string `json:"name"     validate:"required"`
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required,min=10"`
}

// updateRoleRequest carries the only mutable user field. Role validity is
// checked by the service against the closed role set rather than a tag, so a
// bad value maps to the same error no matter which caller produced it.
type updateRoleRequest struct {
	Role string `json:"role"`
}

// --- Response types ---

// userResponse is the public view of a user record. The password hash has no
// field here and can never leak into a response body.
type userResponse struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Role  string `json:"role"`
}

func toUserResponse(u *domain.User) userResponse {
	return userResponse{
		ID:    u.ID,
		Name:  u.Name,
		Email: u.Email,
		Role:  string(u.Role),
	}
}

func toUserResponses(users []*domain.User) []userResponse {
	out := make([]userResponse, 0, len(users))
	for _, u := range users {
		out = append(out, toUserResponse(u))
	}
	return out
}
