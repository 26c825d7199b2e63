package uow

import (
	"context"

	"villagefi-lending-pool/internal/domain/contributor"
	"villagefi-lending-pool/internal/domain/loan"
	"villagefi-lending-pool/internal/domain/pool"
	"villagefi-lending-pool/internal/domain/reputation"
)

type Repos struct {
	Contributors contributor.Repository
	Reputations  reputation.Repository
	Loans        loan.Repository
	Pool         pool.Repository
}

type UnitOfWork interface {
	// plain tx
	WithinTx(ctx context.Context, fn func(r Repos) error) error
	// convenience for mutating operations: lock the pool state row first,
	// then pass it in. One pool row = one serialization domain.
	WithinPoolTx(ctx context.Context, fn func(r Repos, st *pool.State) error) error
}
