package http

import (
	"net/http"

	pooluc "villagefi-lending-pool/internal/usecase/pool"

	"github.com/labstack/echo/v4"
)

type PoolHandler struct{ uc *pooluc.Usecase }

func NewPoolHandler(uc *pooluc.Usecase) *PoolHandler { return &PoolHandler{uc: uc} }

type contributeReq struct {
	Amount uint64 `json:"amount"`
}

func (h *PoolHandler) Contribute(c echo.Context) error {
	principal, ok := callerPrincipal(c)
	if !ok {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "missing principal"})
	}
	var req contributeReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	amount, err := h.uc.Contribute(c.Request().Context(), principal, req.Amount)
	if err != nil {
		return writeErr(c, err)
	}
	return c.JSON(http.StatusCreated, map[string]uint64{"amount": amount})
}

func (h *PoolHandler) Balance(c echo.Context) error {
	balance, err := h.uc.Balance(c.Request().Context())
	if err != nil {
		return writeErr(c, err)
	}
	return c.JSON(http.StatusOK, map[string]uint64{"balance": balance})
}

func (h *PoolHandler) ContributorInfo(c echo.Context) error {
	dto, err := h.uc.ContributorInfo(c.Request().Context(), c.Param("principal"))
	if err != nil {
		return writeErr(c, err)
	}
	if dto == nil {
		return c.JSON(http.StatusNotFound, ErrorResponse{Error: "not found"})
	}
	return c.JSON(http.StatusOK, dto)
}
