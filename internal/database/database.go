package database

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"time"

	"storefront-console/internal/config"
	"storefront-console/internal/models"

	_ "github.com/lib/pq"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

type DB struct {
	*gorm.DB
	config *config.DatabaseConfig
}

func New(cfg *config.DatabaseConfig) (*DB, error) {
	gormConfig := &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
		NowFunc: func() time.Time {
			return time.Now().UTC()
		},
	}

	db, err := gorm.Open(postgres.Open(cfg.DSN()), gormConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get sql.DB: %w", err)
	}

	sqlDB.SetMaxOpenConns(cfg.MaxConnections)
	sqlDB.SetMaxIdleConns(cfg.MaxIdleConns)
	sqlDB.SetConnMaxLifetime(cfg.ConnMaxLifetime)

	if err := sqlDB.Ping(); err != nil {
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return &DB{
		DB:     db,
		config: cfg,
	}, nil
}

// OpenSQL opens a plain lib/pq connection for the migration runner
func OpenSQL(cfg *config.DatabaseConfig) (*sql.DB, error) {
	db, err := sql.Open("postgres", cfg.DSN())
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	db.SetMaxOpenConns(1)
	return db, nil
}

func (db *DB) AutoMigrate() error {
	return db.DB.AutoMigrate(&models.AuditLog{})
}

func (db *DB) Close() error {
	sqlDB, err := db.DB.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

func (db *DB) HealthCheck(ctx context.Context) error {
	sqlDB, err := db.DB.DB()
	if err != nil {
		return err
	}
	return sqlDB.PingContext(ctx)
}

// Initialize connects, applies migrations and returns the ready connection.
// SQL migrations are preferred; AutoMigrate is the fallback when they cannot run.
func Initialize(cfg *config.Config, log *slog.Logger) (*DB, error) {
	if cfg.Audit.AutoMigrate {
		sqlDB, err := OpenSQL(&cfg.Database)
		if err != nil {
			return nil, err
		}

		runner := NewMigrationRunner(sqlDB, cfg.Audit.MigrationsPath, log)
		migrateErr := runner.Run()
		_ = sqlDB.Close()

		if migrateErr != nil {
			log.Warn("migration runner failed, falling back to AutoMigrate", "error", migrateErr)
		}

		db, err := New(&cfg.Database)
		if err != nil {
			return nil, err
		}

		if migrateErr != nil {
			if err := db.AutoMigrate(); err != nil {
				_ = db.Close()
				return nil, fmt.Errorf("failed to run migrations: %w", err)
			}
		}

		log.Info("database initialized")
		return db, nil
	}

	db, err := New(&cfg.Database)
	if err != nil {
		return nil, err
	}

	log.Info("database initialized", "auto_migrate", false)
	return db, nil
}
