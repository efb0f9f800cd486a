package api

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
)

func TestMountStatic_UnknownPathIsNotFoundForEveryMethod(t *testing.T) {
	e := echo.New()
	mountStatic(e, t.TempDir())

	methods := []string{
		http.MethodGet,
		http.MethodPost,
		http.MethodPut,
		http.MethodPatch,
		http.MethodDelete,
		http.MethodOptions,
	}
	for _, method := range methods {
		req := httptest.NewRequest(method, "/no/such/path", nil)
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, req)
		if rec.Code != http.StatusNotFound {
			t.Errorf("%s /no/such/path = %d, want 404", method, rec.Code)
		}
	}
}

func TestValidUserID(t *testing.T) {
	tests := []struct {
		name string
		id   string
		ok   bool
	}{
		{"object id hex", "507f1f77bcf86cd799439011", true},
		{"minimum length", "abcd1234", true},
		{"digits only", "0123456789", true},
		{"too short", "abc123", false},
		{"too long", "a123456789012345678901234", false},
		{"uppercase", "ABCD1234EFGH", false},
		{"punctuation", "abcd-1234-ef", false},
		{"empty", "", false},
	}

	e := echo.New()
	next := func(c echo.Context) error { return c.NoContent(http.StatusOK) }

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			rec := httptest.NewRecorder()
			c := e.NewContext(req, rec)
			c.SetParamNames("id")
			c.SetParamValues(tt.id)

			err := validUserID(next)(c)
			if tt.ok {
				if err != nil {
					t.Fatalf("expected pass, got %v", err)
				}
				return
			}
			if !errors.Is(err, echo.ErrNotFound) {
				t.Fatalf("expected ErrNotFound, got %v", err)
			}
		})
	}
}
