package mysql

import (
	"context"
	"errors"

	poolDomain "villagefi-lending-pool/internal/domain/pool"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type PoolRepository struct{ db *gorm.DB }

func NewPoolRepository(db *gorm.DB) *PoolRepository { return &PoolRepository{db: db} }

// StateForUpdate locks the singleton state row for the rest of the
// transaction. SQLite ignores FOR UPDATE, which is fine in tests where the
// whole database is a single writer anyway.
func (r *PoolRepository) StateForUpdate(ctx context.Context) (*poolDomain.State, error) {
	var out poolDomain.State
	res := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("id = ?", poolDomain.StateID).
		First(&out)
	return &out, res.Error
}

func (r *PoolRepository) State(ctx context.Context) (*poolDomain.State, error) {
	var out poolDomain.State
	res := r.db.WithContext(ctx).Where("id = ?", poolDomain.StateID).First(&out)
	return &out, res.Error
}

func (r *PoolRepository) SaveState(ctx context.Context, s *poolDomain.State) error {
	return r.db.WithContext(ctx).Save(s).Error
}

func (r *PoolRepository) Config(ctx context.Context) (*poolDomain.Config, error) {
	var out poolDomain.Config
	res := r.db.WithContext(ctx).Where("id = ?", poolDomain.ConfigID).First(&out)
	return &out, res.Error
}

func (r *PoolRepository) SaveConfig(ctx context.Context, c *poolDomain.Config) error {
	return r.db.WithContext(ctx).Save(c).Error
}

// EnsureDefaults seeds the singleton rows on first boot.
func (r *PoolRepository) EnsureDefaults(ctx context.Context, cfg poolDomain.Config) error {
	db := r.db.WithContext(ctx)

	var st poolDomain.State
	err := db.Where("id = ?", poolDomain.StateID).First(&st).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		err = db.Create(&poolDomain.State{ID: poolDomain.StateID}).Error
	}
	if err != nil {
		return err
	}

	var c poolDomain.Config
	err = db.Where("id = ?", poolDomain.ConfigID).First(&c).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		cfg.ID = poolDomain.ConfigID
		return db.Create(&cfg).Error
	}
	return err
}
