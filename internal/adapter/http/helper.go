package http

import (
	"net/http"
	"strconv"
	"strings"

	"villagefi-lending-pool/internal/domain/fault"

	"github.com/labstack/echo/v4"
)

// PrincipalKey is where the principal middleware stores the caller id.
const PrincipalKey = "principal"

func callerPrincipal(c echo.Context) (string, bool) {
	p, ok := c.Get(PrincipalKey).(string)
	return p, ok && p != ""
}

func statusFor(code fault.Code) int {
	switch code {
	case fault.CodeUnauthorized:
		return http.StatusForbidden
	case fault.CodeLoanNotFound:
		return http.StatusNotFound
	case fault.CodeLoanAlreadyExists, fault.CodeAlreadyVoted, fault.CodeLoanAlreadyRepaid:
		return http.StatusConflict
	case fault.CodeInvalidAmount, fault.CodeCannotVoteSelf:
		return http.StatusBadRequest
	default:
		// precondition failures: insufficient funds/reputation, not overdue,
		// over the cap
		return http.StatusUnprocessableEntity
	}
}

// writeErr renders a domain fault with its stable code, or a plain 500 for
// anything unexpected.
func writeErr(c echo.Context, err error) error {
	if code, ok := fault.CodeOf(err); ok {
		return c.JSON(statusFor(code), ErrorResponse{Error: err.Error(), Code: int(code)})
	}
	return c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "internal error"})
}

func parseLoanID(c echo.Context) (uint64, bool) {
	id, err := strconv.ParseUint(c.Param("loan_id"), 10, 64)
	return id, err == nil && id > 0
}

// ---- test helpers ----

func containsFieldMsg(list []FieldError, field, substr string) bool {
	for _, e := range list {
		if e.Field == field && strings.Contains(e.Message, substr) {
			return true
		}
	}
	return false
}
