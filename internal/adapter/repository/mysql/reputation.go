package mysql

import (
	"context"
	"errors"

	repDomain "villagefi-lending-pool/internal/domain/reputation"

	"gorm.io/gorm"
)

type ReputationRepository struct{ db *gorm.DB }

func NewReputationRepository(db *gorm.DB) *ReputationRepository {
	return &ReputationRepository{db: db}
}

func (r *ReputationRepository) GetByPrincipal(ctx context.Context, principal string) (*repDomain.Reputation, error) {
	var out repDomain.Reputation
	res := r.db.WithContext(ctx).Where("principal = ?", principal).First(&out)
	return &out, res.Error
}

// Save upserts by primary key, so lazily-created default records land here too.
func (r *ReputationRepository) Save(ctx context.Context, rep *repDomain.Reputation) error {
	return r.db.WithContext(ctx).Save(rep).Error
}

func (r *ReputationRepository) HasVoted(ctx context.Context, voter, target string) (bool, error) {
	var v repDomain.Vote
	res := r.db.WithContext(ctx).Where("voter = ? AND target = ?", voter, target).First(&v)
	if res.Error == nil {
		return true, nil
	}
	if errors.Is(res.Error, gorm.ErrRecordNotFound) {
		return false, nil
	}
	return false, res.Error
}

func (r *ReputationRepository) CreateVote(ctx context.Context, v *repDomain.Vote) error {
	return r.db.WithContext(ctx).Create(v).Error
}
