package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/webshop/webshop-api/internal/core/domain"
)

func render(t *testing.T, err error) *httptest.ResponseRecorder {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/api/users", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	NewHTTPErrorHandler(zerolog.Nop(), "webshop")(err, c)
	return rec
}

func TestErrorHandler_DomainErrorMapping(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		wantCode int
		wantMsg  string
	}{
		{"not found", domain.ErrUserNotFound, http.StatusNotFound, "user not found"},
		{"email conflict is a 400", domain.ErrEmailInUse, http.StatusBadRequest, "email already in use"},
		{"invalid role", domain.ErrInvalidRole, http.StatusBadRequest, "role must be admin or customer"},
		{"self target", domain.ErrSelfTarget, http.StatusBadRequest, "modifying own account is not allowed"},
		{"forbidden", domain.ErrForbidden, http.StatusForbidden, "access forbidden"},
		{"unexpected", errors.New("mongo: socket closed"), http.StatusInternalServerError, "internal server error"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := render(t, tt.err)
			if rec.Code != tt.wantCode {
				t.Fatalf("code = %d, want %d", rec.Code, tt.wantCode)
			}

			var resp map[string]string
			if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
				t.Fatalf("invalid json: %v", err)
			}
			if resp["error"] != tt.wantMsg {
				t.Fatalf("message = %q, want %q", resp["error"], tt.wantMsg)
			}
		})
	}
}

func TestErrorHandler_InternalDetailNotLeaked(t *testing.T) {
	rec := render(t, errors.New("dial tcp 10.0.0.5:27017: i/o timeout"))
	if strings.Contains(rec.Body.String(), "10.0.0.5") {
		t.Fatalf("internal detail leaked: %s", rec.Body.String())
	}
}

func TestErrorHandler_ValidationErrorListsEveryReason(t *testing.T) {
	err := &domain.ValidationError{Reasons: []string{
		"name is required",
		"email must be a valid email",
		"password must be at least 10 characters",
	}}

	rec := render(t, err)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("code = %d, want 400", rec.Code)
	}
	for _, reason := range err.Reasons {
		if !strings.Contains(rec.Body.String(), reason) {
			t.Fatalf("missing reason %q in %s", reason, rec.Body.String())
		}
	}
}

func TestErrorHandler_UnauthorizedCarriesChallenge(t *testing.T) {
	rec := render(t, echo.NewHTTPError(http.StatusUnauthorized, "authentication required"))
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("code = %d, want 401", rec.Code)
	}
	if got := rec.Header().Get(echo.HeaderWWWAuthenticate); got != `Basic realm="webshop"` {
		t.Fatalf("WWW-Authenticate = %q", got)
	}
}

func TestErrorHandler_HTTPErrorPassthrough(t *testing.T) {
	rec := render(t, echo.NewHTTPError(http.StatusMethodNotAllowed, "Method Not Allowed"))
	if rec.Code != http.StatusMethodNotAllowed {
		t.Fatalf("code = %d, want 405", rec.Code)
	}
	if rec.Header().Get(echo.HeaderWWWAuthenticate) != "" {
		t.Fatalf("challenge must only accompany a 401")
	}
}
