package pool

import (
	"context"
	"errors"

	contribDomain "villagefi-lending-pool/internal/domain/contributor"
	"villagefi-lending-pool/internal/domain/fault"
	poolDomain "villagefi-lending-pool/internal/domain/pool"
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

type ContributorDTO struct {
	Principal         string `json:"principal"`
	AmountContributed uint64 `json:"amount_contributed"`
	RewardsEarned     uint64 `json:"rewards_earned"`
	JoinDate          uint64 `json:"join_date"`
}

// Contribute adds funds to the pool and accumulates the caller's
// contribution record; JoinDate is fixed on first contact.
func (u *Usecase) Contribute(ctx context.Context, principal string, amount uint64) (uint64, error) {
	if amount == 0 {
		return 0, fault.ErrInvalidAmount
	}
	err := u.uow.WithinPoolTx(ctx, func(r uow.Repos, st *poolDomain.State) error {
		c, err := r.Contributors.GetByPrincipal(ctx, principal)
		switch {
		case errors.Is(err, gorm.ErrRecordNotFound):
			c = &contribDomain.Contributor{
				Principal:         principal,
				AmountContributed: amount,
				JoinDate:          u.clock.Height(),
			}
			if err := r.Contributors.Create(ctx, c); err != nil {
				return err
			}
		case err != nil:
			return err
		default:
			c.AmountContributed += amount
			if err := r.Contributors.Save(ctx, c); err != nil {
				return err
			}
		}
		st.Credit(amount)
		return r.Pool.SaveState(ctx, st)
	})
	if err != nil {
		return 0, err
	}
	u.log.Info("pool contribution",
		zap.String("principal", principal),
		zap.Uint64("amount", amount))
	return amount, nil
}

func (u *Usecase) Balance(ctx context.Context) (uint64, error) {
	var balance uint64
	err := u.uow.WithinTx(ctx, func(r uow.Repos) error {
		st, err := r.Pool.State(ctx)
		if err != nil {
			return err
		}
		balance = st.Balance
		return nil
	})
	return balance, err
}

// ContributorInfo returns (nil, nil) for principals that never contributed.
func (u *Usecase) ContributorInfo(ctx context.Context, principal string) (*ContributorDTO, error) {
	var dto *ContributorDTO
	err := u.uow.WithinTx(ctx, func(r uow.Repos) error {
		c, err := r.Contributors.GetByPrincipal(ctx, principal)
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil
		}
		if err != nil {
			return err
		}
		dto = &ContributorDTO{
			Principal:         c.Principal,
			AmountContributed: c.AmountContributed,
			RewardsEarned:     c.RewardsEarned,
			JoinDate:          c.JoinDate,
		}
		return nil
	})
	return dto, err
}

// Withdraw moves funds out of the pool. Authorization is the caller's
// concern (the admin usecase gates it to the owner).
func (u *Usecase) Withdraw(ctx context.Context, amount uint64) (uint64, error) {
	err := u.uow.WithinPoolTx(ctx, func(r uow.Repos, st *poolDomain.State) error {
		if !st.Debit(amount) {
			return fault.ErrInsufficientFunds
		}
		return r.Pool.SaveState(ctx, st)
	})
	if err != nil {
		return 0, err
	}
	u.log.Info("pool withdrawal", zap.Uint64("amount", amount))
	return amount, nil
}
