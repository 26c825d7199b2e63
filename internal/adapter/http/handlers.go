package http

import (
	"net/http"
	"time"

	"villagefi-lending-pool/pkg/chainclock"

	"github.com/labstack/echo/v4"
)

type Handler struct{ clock chainclock.Clock }

func NewHandler(clock chainclock.Clock) *Handler { return &Handler{clock: clock} }

func (h *Handler) Health(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]any{
		"status": "ok",
		"height": h.clock.Height(),
		"time":   time.Now().UTC().Format(time.RFC3339Nano),
	})
}
