package admin

import (
	"context"

	"villagefi-lending-pool/internal/domain/fault"
	poolDomain "villagefi-lending-pool/internal/domain/pool"
	"villagefi-lending-pool/internal/domain/uow"
	pooluc "villagefi-lending-pool/internal/usecase/pool"

	"go.uber.org/zap"
)

// Usecase gates the owner-only operations. The owner principal is fixed at
// startup (the deployer identity) and never changes at runtime.
type Usecase struct {
	uow   uow.UnitOfWork
	pool  *pooluc.Usecase
	owner string
	log   *zap.Logger
}

func NewUsecase(u uow.UnitOfWork, pool *pooluc.Usecase, owner string, log *zap.Logger) *Usecase {
	if log == nil {
		log = zap.NewNop()
	}
	return &Usecase{uow: u, pool: pool, owner: owner, log: log}
}

func (u *Usecase) authorize(caller string) error {
	if caller != u.owner {
		return fault.ErrUnauthorized
	}
	return nil
}

func (u *Usecase) SetMinReputation(ctx context.Context, caller string, value int64) error {
	if err := u.authorize(caller); err != nil {
		return err
	}
	err := u.uow.WithinPoolTx(ctx, func(r uow.Repos, _ *poolDomain.State) error {
		cfg, err := r.Pool.Config(ctx)
		if err != nil {
			return err
		}
		cfg.MinReputation = value
		return r.Pool.SaveConfig(ctx, cfg)
	})
	if err == nil {
		u.log.Info("min reputation updated", zap.Int64("value", value))
	}
	return err
}

func (u *Usecase) SetMaxLoanAmount(ctx context.Context, caller string, value uint64) error {
	if err := u.authorize(caller); err != nil {
		return err
	}
	err := u.uow.WithinPoolTx(ctx, func(r uow.Repos, _ *poolDomain.State) error {
		cfg, err := r.Pool.Config(ctx)
		if err != nil {
			return err
		}
		cfg.MaxLoanAmount = value
		return r.Pool.SaveConfig(ctx, cfg)
	})
	if err == nil {
		u.log.Info("max loan amount updated", zap.Uint64("value", value))
	}
	return err
}

// EmergencyWithdraw drains funds to the owner's payment rail, which is out
// of scope here; only the ledger side is recorded.
func (u *Usecase) EmergencyWithdraw(ctx context.Context, caller string, amount uint64) (uint64, error) {
	if err := u.authorize(caller); err != nil {
		return 0, err
	}
	return u.pool.Withdraw(ctx, amount)
}
