package uowmock

import (
	"context"
	"errors"

	"villagefi-lending-pool/internal/domain/pool"
	"villagefi-lending-pool/internal/domain/uow"
)

// Ensure compile-time compliance
var _ uow.UnitOfWork = (*UoW)(nil)

var errUnimplemented = errors.New("uowmock: method not implemented")

// UoW satisfies uow.UnitOfWork without a database. By default both methods
// run fn against the fixed Repos (no rollback semantics; use the sqlite
// testdb when a test asserts state is untouched after failure); set the
// function fields to override.
type UoW struct {
	R  uow.Repos
	St *pool.State

	WithinTxFn     func(ctx context.Context, fn func(r uow.Repos) error) error
	WithinPoolTxFn func(ctx context.Context, fn func(r uow.Repos, st *pool.State) error) error
}

func (m *UoW) WithinTx(ctx context.Context, fn func(r uow.Repos) error) error {
	if m.WithinTxFn != nil {
		return m.WithinTxFn(ctx, fn)
	}
	return fn(m.R)
}

func (m *UoW) WithinPoolTx(ctx context.Context, fn func(r uow.Repos, st *pool.State) error) error {
	if m.WithinPoolTxFn != nil {
		return m.WithinPoolTxFn(ctx, fn)
	}
	if m.St == nil {
		return errUnimplemented
	}
	return fn(m.R, m.St)
}
