package http

import (
	"net/http"

	adminuc "villagefi-lending-pool/internal/usecase/admin"

	"github.com/labstack/echo/v4"
)

type AdminHandler struct{ uc *adminuc.Usecase }

func NewAdminHandler(uc *adminuc.Usecase) *AdminHandler { return &AdminHandler{uc: uc} }

type setMinReputationReq struct {
	Value int64 `json:"value" validate:"gte=0"`
}

type setMaxLoanAmountReq struct {
	Value uint64 `json:"value"`
}

type withdrawReq struct {
	Amount uint64 `json:"amount"`
}

func (h *AdminHandler) SetMinReputation(c echo.Context) error {
	caller, ok := callerPrincipal(c)
	if !ok {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "missing principal"})
	}
	var req setMinReputationReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{
			Error:   "validation failed",
			Details: ToFieldErrors(err),
		})
	}
	if err := h.uc.SetMinReputation(c.Request().Context(), caller, req.Value); err != nil {
		return writeErr(c, err)
	}
	return c.JSON(http.StatusOK, map[string]bool{"ok": true})
}

func (h *AdminHandler) SetMaxLoanAmount(c echo.Context) error {
	caller, ok := callerPrincipal(c)
	if !ok {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "missing principal"})
	}
	var req setMaxLoanAmountReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if err := h.uc.SetMaxLoanAmount(c.Request().Context(), caller, req.Value); err != nil {
		return writeErr(c, err)
	}
	return c.JSON(http.StatusOK, map[string]bool{"ok": true})
}

func (h *AdminHandler) EmergencyWithdraw(c echo.Context) error {
	caller, ok := callerPrincipal(c)
	if !ok {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "missing principal"})
	}
	var req withdrawReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	amount, err := h.uc.EmergencyWithdraw(c.Request().Context(), caller, req.Amount)
	if err != nil {
		return writeErr(c, err)
	}
	return c.JSON(http.StatusOK, map[string]uint64{"amount": amount})
}
