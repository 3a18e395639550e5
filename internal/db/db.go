package db

import (
	"fmt" // Error wrapping

	"budget_ledger/internal/config" // Custom package for configuration

	"gorm.io/driver/mysql"  // MySQL driver for GORM
	"gorm.io/driver/sqlite" // SQLite driver for GORM
	"gorm.io/gorm"          // GORM ORM library
	"gorm.io/gorm/logger"   // GORM logger
)

// Open connects to the database selected by cfg.DBDriver
func Open(cfg *config.Config) (*gorm.DB, error) {
	switch cfg.DBDriver {
	case "mysql":
		return OpenMySQL(cfg.MySQLDSN(), logger.Default.LogMode(logger.Warn))
	case "sqlite":
		return OpenSQLite(cfg.SQLitePath, logger.Default.LogMode(logger.Warn))
	default:
		return nil, fmt.Errorf("unsupported database driver %q", cfg.DBDriver)
	}
}

// OpenMySQL opens a MySQL connection pool
func OpenMySQL(dsn string, lg logger.Interface) (*gorm.DB, error) {
	db, err := gorm.Open(mysql.Open(dsn), &gorm.Config{
		TranslateError: true, // Map duplicate key and FK errors to gorm sentinels
		Logger:         lg,   // Query logger
	})
	if err != nil {
		return nil, fmt.Errorf("open mysql: %w", err)
	}
	return db, nil
}

// OpenSQLite opens an SQLite file with foreign keys enforced
func OpenSQLite(path string, lg logger.Interface) (*gorm.DB, error) {
	dsn := path + "?_foreign_keys=on&_busy_timeout=5000" // FK enforcement is off by default in SQLite
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		TranslateError: true, // Map constraint errors to gorm sentinels
		Logger:         lg,   // Query logger
	})
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}
	sqlDB, err := db.DB() // Underlying pool
	if err != nil {
		return nil, fmt.Errorf("sqlite pool: %w", err)
	}
	sqlDB.SetMaxOpenConns(1) // SQLite allows a single writer; serialize all access on one connection
	return db, nil
}
