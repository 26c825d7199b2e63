package mysql

import (
	"context"

	contribDomain "villagefi-lending-pool/internal/domain/contributor"

	"gorm.io/gorm"
)

type ContributorRepository struct{ db *gorm.DB }

func NewContributorRepository(db *gorm.DB) *ContributorRepository {
	return &ContributorRepository{db: db}
}

func (r *ContributorRepository) Create(ctx context.Context, c *contribDomain.Contributor) error {
	return r.db.WithContext(ctx).Create(c).Error
}

func (r *ContributorRepository) Save(ctx context.Context, c *contribDomain.Contributor) error {
	return r.db.WithContext(ctx).Save(c).Error
}

func (r *ContributorRepository) GetByPrincipal(ctx context.Context, principal string) (*contribDomain.Contributor, error) {
	var out contribDomain.Contributor
	res := r.db.WithContext(ctx).Where("principal = ?", principal).First(&out)
	return &out, res.Error
}
