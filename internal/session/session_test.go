package session

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
)

func TestMiddlewareAcceptsSignedToken(t *testing.T) {
	t.Parallel()
	secret := []byte("test-secret")
	tok, err := Sign("user-9", secret, time.Hour)
	if err != nil {
		t.Fatalf("Sign: %v", err)
	}

	e := echo.New()
	handler := Middleware(secret)(func(c echo.Context) error {
		if got := c.Get("user_id"); got != "user-9" {
			t.Fatalf("user_id = %v, want user-9", got)
		}
		sub, ok := SubjectFromContext(c.Request().Context())
		if !ok || sub != "user-9" {
			t.Fatalf("SubjectFromContext = %q, %v", sub, ok)
		}
		return c.NoContent(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodGet, "/api/me", nil)
	req.Header.Set("Authorization", "Bearer "+tok)
	rec := httptest.NewRecorder()
	if err := handler(e.NewContext(req, rec)); err != nil {
		t.Fatalf("handler: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
}

func TestMiddlewareRejectsMissingAndBadTokens(t *testing.T) {
	t.Parallel()
	secret := []byte("test-secret")
	e := echo.New()
	handler := Middleware(secret)(func(c echo.Context) error { return c.NoContent(http.StatusOK) })

	cases := []struct {
		name  string
		token string
	}{
		{name: "missing"},
		{name: "garbage", token: "not-a-token"},
	}
	for _, tt := range cases {
		req := httptest.NewRequest(http.MethodGet, "/api/me", nil)
		if tt.token != "" {
			req.Header.Set("Authorization", "Bearer "+tt.token)
		}
		rec := httptest.NewRecorder()
		err := handler(e.NewContext(req, rec))
		he, ok := err.(*echo.HTTPError)
		if !ok || he.Code != http.StatusUnauthorized {
			t.Fatalf("%s: err = %v, want 401", tt.name, err)
		}
	}
}

func TestMiddlewareReadsCookie(t *testing.T) {
	t.Parallel()
	secret := []byte("test-secret")
	tok, err := Sign("user-3", secret, time.Hour)
	if err != nil {
		t.Fatalf("Sign: %v", err)
	}
	e := echo.New()
	handler := Middleware(secret)(func(c echo.Context) error { return c.NoContent(http.StatusOK) })

	req := httptest.NewRequest(http.MethodGet, "/api/me", nil)
	req.AddCookie(&http.Cookie{Name: "auth", Value: tok})
	rec := httptest.NewRecorder()
	if err := handler(e.NewContext(req, rec)); err != nil {
		t.Fatalf("handler: %v", err)
	}
}
