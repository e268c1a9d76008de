package database

import (
	"fmt"
	"log"

	"github.com/mkulima/shamba-api/internal/config"
	"github.com/mkulima/shamba-api/internal/domain/entity"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// NewPostgresDB creates a new PostgreSQL database connection
func NewPostgresDB(cfg *config.DatabaseConfig) (*gorm.DB, error) {
	logLevel := logger.Warn

	db, err := gorm.Open(postgres.New(postgres.Config{
		DSN:                  cfg.DSN(),
		PreferSimpleProtocol: true, // disables implicit prepared statement usage
	}), &gorm.Config{
		Logger: logger.Default.LogMode(logLevel),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get underlying sql.DB: %w", err)
	}

	sqlDB.SetMaxIdleConns(10)
	sqlDB.SetMaxOpenConns(100)

	log.Println("Successfully connected to PostgreSQL database")
	return db, nil
}

// AutoMigrate runs GORM auto-migration for all entities
func AutoMigrate(db *gorm.DB) error {
	log.Println("Running database migrations...")

	err := db.AutoMigrate(
		// Accounts and rewards
		&entity.User{},
		&entity.UserBadge{},
		&entity.UserSettings{},

		// Bookkeeping
		&entity.Sale{},
		&entity.Expense{},
		&entity.Debt{},
		&entity.DebtPayment{},
		&entity.ArchivedDebt{},
		&entity.Worker{},
		&entity.WorkerTransaction{},
		&entity.WorkerPaidMonth{},

		// Community and planning
		&entity.Topic{},
		&entity.TopicComment{},
		&entity.Task{},
		&entity.ArchivedTask{},

		// Infrastructure
		&entity.IdempotencyKey{},
	)
	if err != nil {
		return fmt.Errorf("migration failed: %w", err)
	}

	log.Println("Database migrations completed")
	return nil
}
