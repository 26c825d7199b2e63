package loan

import "context"

type Repository interface {
	Create(ctx context.Context, l *Loan) error
	// GetByID returns gorm.ErrRecordNotFound for unknown ids.
	GetByID(ctx context.Context, id uint64) (*Loan, error)
	// GetActiveByBorrower returns the borrower's unrepaid loan, overdue or
	// not, or gorm.ErrRecordNotFound when there is none.
	GetActiveByBorrower(ctx context.Context, borrower string) (*Loan, error)
	Save(ctx context.Context, l *Loan) error
}
