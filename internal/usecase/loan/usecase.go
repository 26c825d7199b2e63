package loan

import (
	"context"
	"errors"

	"villagefi-lending-pool/internal/domain/fault"
	loanDomain "villagefi-lending-pool/internal/domain/loan"
	poolDomain "villagefi-lending-pool/internal/domain/pool"
	repDomain "villagefi-lending-pool/internal/domain/reputation"
	"villagefi-lending-pool/internal/domain/uow"
	"villagefi-lending-pool/pkg/chainclock"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

type Usecase struct {
	uow   uow.UnitOfWork
	clock chainclock.Clock
	log   *zap.Logger
}

func NewUsecase(u uow.UnitOfWork, clk chainclock.Clock, log *zap.Logger) *Usecase {
	if log == nil {
		log = zap.NewNop()
	}
	return &Usecase{uow: u, clock: clk, log: log}
}

type LoanDTO struct {
	LoanID       uint64 `json:"loan_id"`
	Borrower     string `json:"borrower"`
	Amount       uint64 `json:"amount"`
	InterestRate uint64 `json:"interest_rate"`
	DueDate      uint64 `json:"due_date"`
	Repaid       bool   `json:"repaid"`
	IssuedAt     uint64 `json:"issued_at"`
}

func toDTO(l *loanDomain.Loan) *LoanDTO {
	return &LoanDTO{
		LoanID:       l.ID,
		Borrower:     l.Borrower,
		Amount:       l.Amount,
		InterestRate: l.InterestRate,
		DueDate:      l.DueDate,
		Repaid:       l.Repaid,
		IssuedAt:     l.IssuedAt,
	}
}

// Request issues a loan to the borrower. The precondition ladder runs in
// order inside one transaction; any failure rolls the whole step back.
func (u *Usecase) Request(ctx context.Context, borrower string, amount uint64) (uint64, error) {
	if amount == 0 {
		return 0, fault.ErrInvalidAmount
	}
	var id uint64
	err := u.uow.WithinPoolTx(ctx, func(r uow.Repos, st *poolDomain.State) error {
		// at most one active loan per borrower, overdue or not
		_, err := r.Loans.GetActiveByBorrower(ctx, borrower)
		switch {
		case err == nil:
			return fault.ErrLoanAlreadyExists
		case !errors.Is(err, gorm.ErrRecordNotFound):
			return err
		}

		cfg, err := r.Pool.Config(ctx)
		if err != nil {
			return err
		}
		rep, err := repDomain.GetOrDefault(ctx, r.Reputations, borrower)
		if err != nil {
			return err
		}
		if rep.Score < cfg.MinReputation {
			return fault.ErrInsufficientReputation
		}
		if cfg.MaxLoanAmount > 0 && amount > cfg.MaxLoanAmount {
			return fault.ErrLoanExceedsMaximum
		}
		if !st.Debit(amount) {
			return fault.ErrInsufficientFunds
		}

		now := u.clock.Height()
		l := &loanDomain.Loan{
			Borrower:     borrower,
			Amount:       amount,
			InterestRate: repDomain.RateForScore(rep.Score),
			DueDate:      now + cfg.LoanDurationBlocks,
			IssuedAt:     now,
		}
		if err := r.Loans.Create(ctx, l); err != nil {
			return err
		}
		rep.ApplyIssued(now)
		if err := r.Reputations.Save(ctx, rep); err != nil {
			return err
		}
		if err := r.Pool.SaveState(ctx, st); err != nil {
			return err
		}
		id = l.ID
		return nil
	})
	if err != nil {
		return 0, err
	}
	u.log.Info("loan issued",
		zap.Uint64("loan_id", id),
		zap.String("borrower", borrower),
		zap.Uint64("amount", amount))
	return id, nil
}

// Repay settles the caller's loan: principal plus flat interest back into
// the pool, one-way repaid flip, reputation reward.
func (u *Usecase) Repay(ctx context.Context, caller string, loanID uint64) (uint64, error) {
	var total uint64
	err := u.uow.WithinPoolTx(ctx, func(r uow.Repos, st *poolDomain.State) error {
		l, err := r.Loans.GetByID(ctx, loanID)
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fault.ErrLoanNotFound
		}
		if err != nil {
			return err
		}
		if caller != l.Borrower {
			return fault.ErrUnauthorized
		}
		if l.Repaid {
			return fault.ErrLoanAlreadyRepaid
		}

		total = l.TotalDue()
		st.Credit(total)
		l.Repaid = true
		if err := r.Loans.Save(ctx, l); err != nil {
			return err
		}
		rep, err := repDomain.GetOrDefault(ctx, r.Reputations, l.Borrower)
		if err != nil {
			return err
		}
		rep.ApplyRepaid(u.clock.Height())
		if err := r.Reputations.Save(ctx, rep); err != nil {
			return err
		}
		return r.Pool.SaveState(ctx, st)
	})
	if err != nil {
		return 0, err
	}
	u.log.Info("loan repaid",
		zap.Uint64("loan_id", loanID),
		zap.Uint64("total_repaid", total))
	return total, nil
}

// MarkDefault is callable by anyone once a loan is overdue. No funds move;
// the pool already absorbed the loss at issuance.
func (u *Usecase) MarkDefault(ctx context.Context, caller string, loanID uint64) error {
	err := u.uow.WithinPoolTx(ctx, func(r uow.Repos, _ *poolDomain.State) error {
		l, err := r.Loans.GetByID(ctx, loanID)
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fault.ErrLoanNotFound
		}
		if err != nil {
			return err
		}
		if !l.Overdue(u.clock.Height()) {
			return fault.ErrLoanNotOverdue
		}
		rep, err := repDomain.GetOrDefault(ctx, r.Reputations, l.Borrower)
		if err != nil {
			return err
		}
		rep.ApplyDefault(u.clock.Height())
		return r.Reputations.Save(ctx, rep)
	})
	if err != nil {
		return err
	}
	u.log.Info("loan defaulted",
		zap.Uint64("loan_id", loanID),
		zap.String("marked_by", caller))
	return nil
}

func (u *Usecase) Get(ctx context.Context, loanID uint64) (*LoanDTO, error) {
	var dto *LoanDTO
	err := u.uow.WithinTx(ctx, func(r uow.Repos) error {
		l, err := r.Loans.GetByID(ctx, loanID)
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fault.ErrLoanNotFound
		}
		if err != nil {
			return err
		}
		dto = toDTO(l)
		return nil
	})
	return dto, err
}

// Overdue evaluates the due-date check on demand at the current height.
func (u *Usecase) Overdue(ctx context.Context, loanID uint64) (bool, error) {
	var overdue bool
	err := u.uow.WithinTx(ctx, func(r uow.Repos) error {
		l, err := r.Loans.GetByID(ctx, loanID)
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fault.ErrLoanNotFound
		}
		if err != nil {
			return err
		}
		overdue = l.Overdue(u.clock.Height())
		return nil
	})
	return overdue, err
}
