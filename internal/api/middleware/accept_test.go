package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
)

func runMiddleware(t *testing.T, mw echo.MiddlewareFunc, setup func(*http.Request)) error {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	setup(req)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	handler := mw(func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	})
	return handler(c)
}

func TestAcceptJSON(t *testing.T) {
	cases := []struct {
		name     string
		accept   string
		wantCode int // 0 = pass through
	}{
		{name: "json", accept: "application/json", wantCode: 0},
		{name: "wildcard", accept: "*/*", wantCode: 0},
		{name: "browser list", accept: "text/html,application/xhtml+xml,application/json;q=0.9,*/*;q=0.8", wantCode: 0},
		{name: "missing", accept: "", wantCode: http.StatusNotAcceptable},
		{name: "html only", accept: "text/html", wantCode: http.StatusNotAcceptable},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := runMiddleware(t, AcceptJSON(), func(req *http.Request) {
				if tc.accept != "" {
					req.Header.Set(echo.HeaderAccept, tc.accept)
				}
			})
			if tc.wantCode == 0 {
				if err != nil {
					t.Fatalf("expected pass, got %v", err)
				}
				return
			}
			he, ok := err.(*echo.HTTPError)
			if !ok || he.Code != tc.wantCode {
				t.Fatalf("expected %d, got %v", tc.wantCode, err)
			}
		})
	}
}

func TestRequireJSONBody(t *testing.T) {
	err := runMiddleware(t, RequireJSONBody(), func(req *http.Request) {
		req.Header.Set(echo.HeaderContentType, echo.MIMETextPlain)
	})
	he, ok := err.(*echo.HTTPError)
	if !ok || he.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for non-JSON content type, got %v", err)
	}

	if err := runMiddleware(t, RequireJSONBody(), func(req *http.Request) {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}); err != nil {
		t.Fatalf("expected pass for JSON content type, got %v", err)
	}

	if err := runMiddleware(t, RequireJSONBody(), func(req *http.Request) {
		req.Header.Set(echo.HeaderContentType, "application/json; charset=utf-8")
	}); err != nil {
		t.Fatalf("expected pass for JSON with charset, got %v", err)
	}
}
