package http

import (
	"net/http"

	loanuc "villagefi-lending-pool/internal/usecase/loan"

	"github.com/labstack/echo/v4"
)

type LoanHandler struct{ uc *loanuc.Usecase }

func NewLoanHandler(uc *loanuc.Usecase) *LoanHandler { return &LoanHandler{uc: uc} }

type requestLoanReq struct {
	Amount uint64 `json:"amount"`
}

func (h *LoanHandler) RequestLoan(c echo.Context) error {
	borrower, ok := callerPrincipal(c)
	if !ok {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "missing principal"})
	}
	var req requestLoanReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	id, err := h.uc.Request(c.Request().Context(), borrower, req.Amount)
	if err != nil {
		return writeErr(c, err)
	}
	return c.JSON(http.StatusCreated, map[string]uint64{"loan_id": id})
}

func (h *LoanHandler) GetLoan(c echo.Context) error {
	id, ok := parseLoanID(c)
	if !ok {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid loan id"})
	}
	dto, err := h.uc.Get(c.Request().Context(), id)
	if err != nil {
		return writeErr(c, err)
	}
	return c.JSON(http.StatusOK, dto)
}

func (h *LoanHandler) RepayLoan(c echo.Context) error {
	caller, ok := callerPrincipal(c)
	if !ok {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "missing principal"})
	}
	id, okID := parseLoanID(c)
	if !okID {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid loan id"})
	}
	total, err := h.uc.Repay(c.Request().Context(), caller, id)
	if err != nil {
		return writeErr(c, err)
	}
	return c.JSON(http.StatusOK, map[string]uint64{"total_repaid": total})
}

// MarkDefault is deliberately open to any caller; marking an overdue loan is
// a permissionless trigger.
func (h *LoanHandler) MarkDefault(c echo.Context) error {
	caller, ok := callerPrincipal(c)
	if !ok {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "missing principal"})
	}
	id, okID := parseLoanID(c)
	if !okID {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid loan id"})
	}
	if err := h.uc.MarkDefault(c.Request().Context(), caller, id); err != nil {
		return writeErr(c, err)
	}
	return c.JSON(http.StatusOK, map[string]bool{"ok": true})
}

func (h *LoanHandler) IsOverdue(c echo.Context) error {
	id, ok := parseLoanID(c)
	if !ok {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid loan id"})
	}
	overdue, err := h.uc.Overdue(c.Request().Context(), id)
	if err != nil {
		return writeErr(c, err)
	}
	return c.JSON(http.StatusOK, map[string]bool{"overdue": overdue})
}
