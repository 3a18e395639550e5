package db

import (
	"fmt" // Error wrapping

	"budget_ledger/internal/domain" // Importing domain models

	"gorm.io/gorm" // GORM ORM library
)

// Migrate creates the users and transactions tables with their constraints
func Migrate(db *gorm.DB) error {
	// AutoMigrate will create tables, missing foreign keys, constraints, columns and indexes
	if err := db.AutoMigrate(&domain.User{}, &domain.Transaction{}); err != nil {
		return fmt.Errorf("auto migrate: %w", err)
	}
	// MySQL collations compare case-insensitively; usernames must be unique case-sensitively
	if db.Dialector.Name() == "mysql" {
		err := db.Exec("ALTER TABLE users MODIFY username VARCHAR(191) CHARACTER SET utf8mb4 COLLATE utf8mb4_bin NOT NULL").Error
		if err != nil {
			return fmt.Errorf("set username collation: %w", err)
		}
	}
	return nil
}
