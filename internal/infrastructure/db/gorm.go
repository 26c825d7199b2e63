package db

import (
	"log"
	"time"

	"villagefi-lending-pool/internal/domain/contributor"
	"villagefi-lending-pool/internal/domain/loan"
	"villagefi-lending-pool/internal/domain/pool"
	"villagefi-lending-pool/internal/domain/reputation"

	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func OpenGorm(dsn string) (*gorm.DB, error) {
	return OpenGormWithDialector(mysql.Open(dsn))
}

func OpenGormWithDialector(dial gorm.Dialector) (*gorm.DB, error) {
	cfg := &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	}
	db, err := gorm.Open(dial, cfg)
	if err != nil {
		return nil, err
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	sqlDB.SetMaxOpenConns(30)
	sqlDB.SetMaxIdleConns(10)
	sqlDB.SetConnMaxLifetime(30 * time.Minute)
	sqlDB.SetConnMaxIdleTime(10 * time.Minute)

	if err := sqlDB.Ping(); err != nil {
		return nil, err
	}
	log.Println("gorm: connected")
	return db, nil
}

// Migrate creates the pool schema. Safe to run on every boot.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&pool.State{},
		&pool.Config{},
		&contributor.Contributor{},
		&reputation.Reputation{},
		&reputation.Vote{},
		&loan.Loan{},
	)
}
