package fault

import "fmt"

// Code is the stable numeric identifier callers match on. Values are part of
// the public API and must never be renumbered.
type Code int

const (
	CodeUnauthorized           Code = 100
	CodeInsufficientFunds      Code = 101
	CodeLoanNotFound           Code = 102
	CodeLoanAlreadyExists      Code = 103
	CodeInvalidAmount          Code = 104
	CodeLoanExceedsMaximum     Code = 105
	CodeInsufficientReputation Code = 106
	CodeAlreadyVoted           Code = 107
	CodeCannotVoteSelf         Code = 108
	CodeLoanNotOverdue         Code = 109
	CodeLoanAlreadyRepaid      Code = 110
)

// Error is a domain failure with a stable code. Two errors with the same code
// are the same failure kind for errors.Is purposes, so wrapped errors still
// match the package sentinels below.
type Error struct {
	Code Code
	Msg  string
}

func (e *Error) Error() string { return fmt.Sprintf("%s (code %d)", e.Msg, e.Code) }

func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	return ok && t.Code == e.Code
}

var (
	ErrUnauthorized           = &Error{Code: CodeUnauthorized, Msg: "unauthorized"}
	ErrInsufficientFunds      = &Error{Code: CodeInsufficientFunds, Msg: "insufficient pool funds"}
	ErrLoanNotFound           = &Error{Code: CodeLoanNotFound, Msg: "loan not found"}
	ErrLoanAlreadyExists      = &Error{Code: CodeLoanAlreadyExists, Msg: "borrower already has an active loan"}
	ErrInvalidAmount          = &Error{Code: CodeInvalidAmount, Msg: "invalid amount"}
	ErrLoanExceedsMaximum     = &Error{Code: CodeLoanExceedsMaximum, Msg: "loan exceeds maximum amount"}
	ErrInsufficientReputation = &Error{Code: CodeInsufficientReputation, Msg: "insufficient reputation"}
	ErrAlreadyVoted           = &Error{Code: CodeAlreadyVoted, Msg: "already voted for this principal"}
	ErrCannotVoteSelf         = &Error{Code: CodeCannotVoteSelf, Msg: "cannot vote on own reputation"}
	ErrLoanNotOverdue         = &Error{Code: CodeLoanNotOverdue, Msg: "loan is not overdue"}
	ErrLoanAlreadyRepaid      = &Error{Code: CodeLoanAlreadyRepaid, Msg: "loan already repaid"}
)

// CodeOf extracts the stable code from err, unwrapping as needed.
// ok is false for errors that are not domain failures.
func CodeOf(err error) (Code, bool) {
	for err != nil {
		if fe, isFault := err.(*Error); isFault {
			return fe.Code, true
		}
		u, canUnwrap := err.(interface{ Unwrap() error })
		if !canUnwrap {
			return 0, false
		}
		err = u.Unwrap()
	}
	return 0, false
}
