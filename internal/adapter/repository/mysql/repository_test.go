package mysql

import (
	"testing"

	"villagefi-lending-pool/internal/domain/contributor"
	loanDomain "villagefi-lending-pool/internal/domain/loan"
	poolDomain "villagefi-lending-pool/internal/domain/pool"
	repDomain "villagefi-lending-pool/internal/domain/reputation"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// openTestDB creates an in-memory sqlite DB with the pool schema. The domain
// models use portable column types, so the production schema migrates as-is.
func openTestDB(t *testing.T) *gorm.DB {
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
		&repDomain.Reputation{},
		&repDomain.Vote{},
		&loanDomain.Loan{},
	)
	if err != nil {
		t.Fatalf("auto-migrate: %v", err)
	}
	return db
}
