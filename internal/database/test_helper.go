package database

import (
	"testing"

	"storefront-console/internal/config"
	"storefront-console/internal/models"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// SetupTestDB returns an in-memory SQLite database with the console schema
func SetupTestDB(t *testing.T) *DB {
	t.Helper()

	gormConfig := &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	}

	db, err := gorm.Open(sqlite.Open(":memory:"), gormConfig)
	if err != nil {
		t.Fatalf("failed to connect to test database: %v", err)
	}

	testDB := &DB{
		DB: db,
		config: &config.DatabaseConfig{
			MaxConnections: 1,
			MaxIdleConns:   1,
		},
	}

	if err := testDB.AutoMigrate(); err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}

	return testDB
}

func CleanupTestDB(t *testing.T, db *DB) {
	t.Helper()

	if err := db.Where("1 = 1").Delete(&models.AuditLog{}).Error; err != nil {
		t.Logf("failed to cleanup console_audit_logs: %v", err)
	}
	if err := db.Close(); err != nil {
		t.Logf("failed to close test database: %v", err)
	}
}
