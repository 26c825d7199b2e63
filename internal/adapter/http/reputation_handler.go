package http

import (
	"net/http"
	"strconv"

	repDomain "villagefi-lending-pool/internal/domain/reputation"
	repuc "villagefi-lending-pool/internal/usecase/reputation"

	"github.com/labstack/echo/v4"
)

type ReputationHandler struct{ uc *repuc.Usecase }

func NewReputationHandler(uc *repuc.Usecase) *ReputationHandler {
	return &ReputationHandler{uc: uc}
}

type voteReq struct {
	Target    string `json:"target" validate:"required,hex32"`
	Direction string `json:"direction" validate:"required,oneof=positive negative"`
}

func (h *ReputationHandler) Vote(c echo.Context) error {
	voter, ok := callerPrincipal(c)
	if !ok {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "missing principal"})
	}
	var req voteReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{
			Error:   "validation failed",
			Details: ToFieldErrors(err),
		})
	}
	err := h.uc.Vote(c.Request().Context(), voter, req.Target, repDomain.Direction(req.Direction))
	if err != nil {
		return writeErr(c, err)
	}
	return c.JSON(http.StatusCreated, map[string]bool{"ok": true})
}

func (h *ReputationHandler) Get(c echo.Context) error {
	dto, err := h.uc.Get(c.Request().Context(), c.Param("principal"))
	if err != nil {
		return writeErr(c, err)
	}
	return c.JSON(http.StatusOK, dto)
}

// InterestRate quotes the tier for an arbitrary score without touching state.
func (h *ReputationHandler) InterestRate(c echo.Context) error {
	score, err := strconv.ParseInt(c.QueryParam("score"), 10, 64)
	if err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid score"})
	}
	return c.JSON(http.StatusOK, map[string]uint64{"interest_rate": h.uc.InterestRate(score)})
}
