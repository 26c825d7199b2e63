package reputation

import (
	"context"
	"errors"

	"gorm.io/gorm"
)

type Repository interface {
	// GetByPrincipal returns gorm.ErrRecordNotFound when the principal has no
	// stored record yet; callers substitute NewDefault.
	GetByPrincipal(ctx context.Context, principal string) (*Reputation, error)
	Save(ctx context.Context, r *Reputation) error

	HasVoted(ctx context.Context, voter, target string) (bool, error)
	CreateVote(ctx context.Context, v *Vote) error
}

// GetOrDefault loads a principal's record, falling back to the lazy default
// for principals the engine has never seen.
func GetOrDefault(ctx context.Context, r Repository, principal string) (*Reputation, error) {
	rep, err := r.GetByPrincipal(ctx, principal)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return NewDefault(principal), nil
	}
	return rep, err
}
