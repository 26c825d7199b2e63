package middleware

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
)

// HeaderPrincipal carries the caller identity. The upstream gateway owns
// authentication; by the time a request lands here the header is trusted.
const HeaderPrincipal = "Ax-Principal-Id"

// Principal validates the caller header and stashes it in the echo context
// under "principal" for the handlers.
func Principal() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			p := strings.TrimSpace(c.Request().Header.Get(HeaderPrincipal))
			if p == "" {
				return c.JSON(http.StatusBadRequest, map[string]string{"error": "missing " + HeaderPrincipal})
			}
			if !reHex32.MatchString(p) {
				return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid " + HeaderPrincipal})
			}
			c.Set("principal", p)
			return next(c)
		}
	}
}
