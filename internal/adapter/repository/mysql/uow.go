package mysql

import (
	"context"

	"villagefi-lending-pool/internal/domain/pool"
	"villagefi-lending-pool/internal/domain/uow"

	"gorm.io/gorm"
)

type GormUoW struct{ db *gorm.DB }

func NewGormUoW(db *gorm.DB) *GormUoW { return &GormUoW{db: db} }

func reposFor(tx *gorm.DB) uow.Repos {
	return uow.Repos{
		Contributors: &ContributorRepository{db: tx},
		Reputations:  &ReputationRepository{db: tx},
		Loans:        &LoanRepository{db: tx},
		Pool:         &PoolRepository{db: tx},
	}
}

func (u *GormUoW) WithinTx(ctx context.Context, fn func(r uow.Repos) error) error {
	return u.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(reposFor(tx))
	})
}

func (u *GormUoW) WithinPoolTx(ctx context.Context, fn func(r uow.Repos, st *pool.State) error) error {
	return u.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		r := reposFor(tx)
		// lock the pool row up-front so operations never interleave
		st, err := r.Pool.StateForUpdate(ctx)
		if err != nil {
			return err
		}
		return fn(r, st)
	})
}
