package loanmock

import (
	"context"
	"errors"

	domain "villagefi-lending-pool/internal/domain/loan"
)

var _ domain.Repository = (*Repo)(nil)

var errUnimplemented = errors.New("loanmock: method not implemented")

// Repo is a function-backed mock that satisfies loan.Repository.
// Only fill in the function fields a test needs.
type Repo struct {
	CreateFn              func(ctx context.Context, l *domain.Loan) error
	GetByIDFn             func(ctx context.Context, id uint64) (*domain.Loan, error)
	GetActiveByBorrowerFn func(ctx context.Context, borrower string) (*domain.Loan, error)
	SaveFn                func(ctx context.Context, l *domain.Loan) error
}

func (m *Repo) Create(ctx context.Context, l *domain.Loan) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, l)
	}
	return nil
}

func (m *Repo) GetByID(ctx context.Context, id uint64) (*domain.Loan, error) {
	if m.GetByIDFn != nil {
		return m.GetByIDFn(ctx, id)
	}
	return nil, errUnimplemented
}

func (m *Repo) GetActiveByBorrower(ctx context.Context, borrower string) (*domain.Loan, error) {
	if m.GetActiveByBorrowerFn != nil {
		return m.GetActiveByBorrowerFn(ctx, borrower)
	}
	return nil, errUnimplemented
}

func (m *Repo) Save(ctx context.Context, l *domain.Loan) error {
	if m.SaveFn != nil {
		return m.SaveFn(ctx, l)
	}
	return nil
}
