package middleware

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
)

func setupPrincipalEcho(handler echo.HandlerFunc) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Use(Principal())
	e.POST("/loans", handler)
	return e
}

func Test_Principal_StashesCaller(t *testing.T) {
	var got string
	e := setupPrincipalEcho(func(c echo.Context) error {
		got, _ = c.Get("principal").(string)
		return c.NoContent(http.StatusOK)
	})

	principal := strings.Repeat("b", 32)
	req := httptest.NewRequest(http.MethodPost, "/loans", nil)
	req.Header.Set(HeaderPrincipal, " "+principal+" ") // whitespace is trimmed
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	if got != principal {
		t.Fatalf("principal = %q, want %q", got, principal)
	}
}

func Test_Principal_Rejections(t *testing.T) {
	e := setupPrincipalEcho(func(c echo.Context) error {
		t.Fatal("handler must not run")
		return nil
	})

	cases := []struct {
		name  string
		value string
	}{
		{"missing", ""},
		{"uppercase", strings.Repeat("B", 32)},
		{"too short", "deadbeef"},
		{"non-hex", strings.Repeat("g", 32)},
	}
	for _, tc := range cases {
		req := httptest.NewRequest(http.MethodPost, "/loans", nil)
		if tc.value != "" {
			req.Header.Set(HeaderPrincipal, tc.value)
		}
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, req)
		if rec.Code != http.StatusBadRequest {
			t.Fatalf("%s => status %d, want 400", tc.name, rec.Code)
		}
	}
}
