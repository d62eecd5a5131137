package database

import (
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
)

const defaultMigrationsPath = "db/migrations"

var (
	maxRetries    = 30
	retryInterval = 2 * time.Second
)

// ErrMigrationsNotFound is returned when the migrations directory does not exist
var ErrMigrationsNotFound = errors.New("migrations directory not found")

// MigrationRunner applies the SQL migrations under migrationsPath
type MigrationRunner struct {
	db             *sql.DB
	migrationsPath string
	log            *slog.Logger
}

func NewMigrationRunner(db *sql.DB, migrationsPath string, log *slog.Logger) *MigrationRunner {
	if migrationsPath == "" {
		migrationsPath = defaultMigrationsPath
	}
	if log == nil {
		log = slog.Default()
	}
	return &MigrationRunner{
		db:             db,
		migrationsPath: migrationsPath,
		log:            log,
	}
}

// WaitForDatabase pings until the database answers or maxRetries is reached
func (mr *MigrationRunner) WaitForDatabase() error {
	mr.log.Info("waiting for database to be ready")

	for i := 0; i < maxRetries; i++ {
		err := mr.db.Ping()
		if err == nil {
			mr.log.Info("database is ready")
			return nil
		}

		mr.log.Warn("database not ready", "attempt", i+1, "max_attempts", maxRetries, "error", err)
		time.Sleep(retryInterval)
	}

	return fmt.Errorf("database not ready after %d attempts", maxRetries)
}

func (mr *MigrationRunner) newMigrate() (*migrate.Migrate, error) {
	if _, err := os.Stat(mr.migrationsPath); os.IsNotExist(err) {
		return nil, fmt.Errorf("%w: %s", ErrMigrationsNotFound, mr.migrationsPath)
	}

	absPath, err := filepath.Abs(mr.migrationsPath)
	if err != nil {
		return nil, fmt.Errorf("failed to get absolute path for migrations: %w", err)
	}

	driver, err := postgres.WithInstance(mr.db, &postgres.Config{})
	if err != nil {
		return nil, fmt.Errorf("failed to create postgres driver: %w", err)
	}

	m, err := migrate.NewWithDatabaseInstance("file://"+absPath, "postgres", driver)
	if err != nil {
		return nil, fmt.Errorf("failed to create migration instance: %w", err)
	}

	return m, nil
}

// RunMigrations executes all pending migrations. A missing migrations
// directory is reported, not skipped, so the caller can fall back.
func (mr *MigrationRunner) RunMigrations() error {
	m, err := mr.newMigrate()
	if err != nil {
		return err
	}

	version, dirty, err := m.Version()
	if err != nil && !errors.Is(err, migrate.ErrNilVersion) {
		return fmt.Errorf("failed to get migration version: %w", err)
	}

	if dirty {
		mr.log.Warn("database is in dirty state, forcing version", "version", version)
		if err := m.Force(int(version)); err != nil {
			return fmt.Errorf("failed to force version: %w", err)
		}
	}

	err = m.Up()
	if errors.Is(err, migrate.ErrNoChange) {
		mr.log.Info("no new migrations to apply", "version", version)
		return nil
	}
	if err != nil {
		return fmt.Errorf("migration failed: %w", err)
	}

	newVersion, _, err := m.Version()
	if err != nil {
		return fmt.Errorf("failed to get new migration version: %w", err)
	}
	mr.log.Info("applied migrations", "version", newVersion)

	return nil
}

// GetMigrationStatus returns the current migration version
func (mr *MigrationRunner) GetMigrationStatus() (version uint, dirty bool, err error) {
	m, err := mr.newMigrate()
	if err != nil {
		return 0, false, err
	}
	return m.Version()
}

// Run waits for the database and applies pending migrations
func (mr *MigrationRunner) Run() error {
	if err := mr.WaitForDatabase(); err != nil {
		return fmt.Errorf("database readiness check failed: %w", err)
	}

	if err := mr.RunMigrations(); err != nil {
		return fmt.Errorf("migration execution failed: %w", err)
	}

	return nil
}
