package testdb

import (
	"context"
	"testing"

	"villagefi-lending-pool/internal/adapter/repository/mysql"
	"villagefi-lending-pool/internal/domain/contributor"
	"villagefi-lending-pool/internal/domain/loan"
	poolDomain "villagefi-lending-pool/internal/domain/pool"
	"villagefi-lending-pool/internal/domain/reputation"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// DefaultConfig mirrors the production first-boot seed.
func DefaultConfig() poolDomain.Config {
	return poolDomain.Config{
		MinReputation:      50,
		MaxLoanAmount:      0,
		LoanDurationBlocks: 2628000,
	}
}

// Open creates an in-memory sqlite database with the full pool schema and
// seeded singleton rows. The domain models carry no MySQL-only column types,
// so the production schema migrates cleanly on sqlite.
func Open(t *testing.T) *gorm.DB {
	t.Helper()
	return OpenWithConfig(t, DefaultConfig())
}

func OpenWithConfig(t *testing.T, cfg poolDomain.Config) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	err = db.AutoMigrate(
		&poolDomain.State{},
		&poolDomain.Config{},
		&contributor.Contributor{},
		&reputation.Reputation{},
		&reputation.Vote{},
		&loan.Loan{},
	)
	if err != nil {
		t.Fatalf("auto-migrate: %v", err)
	}
	if err := mysql.NewPoolRepository(db).EnsureDefaults(context.Background(), cfg); err != nil {
		t.Fatalf("seed defaults: %v", err)
	}
	return db
}

// UoW is a sqlite-backed unit of work with real transaction semantics.
func UoW(t *testing.T) *mysql.GormUoW {
	t.Helper()
	return mysql.NewGormUoW(Open(t))
}
