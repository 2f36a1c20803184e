package database

import (
	"fmt"

	"property-service/pkg/config"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var (
	db *gorm.DB
)

// InitDB opens the database connection for the configured store backend.
// The postgres backend is the "remote database" hook; sqlite serves as the
// embedded single-file alternative.
func InitDB(cfg *config.Config) error {
	// Set up GORM logger configuration
	var logLevel logger.LogLevel
	if cfg.Server.Env == "development" {
		logLevel = logger.Info
	} else {
		logLevel = logger.Error
	}

	// Override log level if explicitly set in config
	switch cfg.Database.LogLevel {
	case "silent":
		logLevel = logger.Silent
	case "error":
		logLevel = logger.Error
	case "warn":
		logLevel = logger.Warn
	case "info":
		logLevel = logger.Info
	}

	gormConfig := &gorm.Config{
		Logger: logger.Default.LogMode(logLevel),
	}

	var err error
	switch cfg.Store.Backend {
	case "sqlite":
		db, err = gorm.Open(sqlite.Open(cfg.Store.SQLitePath), gormConfig)
		if err != nil {
			return fmt.Errorf("failed to open sqlite database: %w", err)
		}
	case "postgres":
		// Build DSN from config
		dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
			cfg.Database.Host,
			cfg.Database.Port,
			cfg.Database.User,
			cfg.Database.Password,
			cfg.Database.Name,
			cfg.Database.SSLMode,
		)

		// Configure Postgres options
		pgConfig := postgres.Config{
			DSN:                  dsn,
			PreferSimpleProtocol: true, // Disables implicit prepared statement usage
		}

		db, err = gorm.Open(postgres.New(pgConfig), gormConfig)
		if err != nil {
			return fmt.Errorf("failed to connect to database: %w", err)
		}

		// Configure connection pool settings
		sqlDB, err := db.DB()
		if err != nil {
			return fmt.Errorf("failed to get database instance: %w", err)
		}

		// Set connection pool parameters
		sqlDB.SetMaxIdleConns(cfg.Database.MaxIdleConns)
		sqlDB.SetMaxOpenConns(cfg.Database.MaxOpenConns)
		sqlDB.SetConnMaxLifetime(cfg.Database.ConnMaxLifetime)
	default:
		return fmt.Errorf("store backend %q does not use a database", cfg.Store.Backend)
	}

	return nil
}

// GetDB returns a reference to the database instance
func GetDB() *gorm.DB {
	return db
}
