package services

import (
	"fmt"
	"strings"
	"testing"

	"gorm.io/gorm"

	"github.com/rahulkure2004/rahul-portfolio/internal/config"
	"github.com/rahulkure2004/rahul-portfolio/internal/database"
)

func init() {
	config.Set(&config.Config{
		Auth: config.AuthConfig{
			SecretKey:        "test-secret-key-0123456789abcdef",
			TokenExpiryHours: 24,
		},
	})
}

// newTestDB opens a fresh in-memory SQLite store for one test. A unique
// shared-cache name keeps tests isolated from each other.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := database.Open(&config.DatabaseConfig{URL: dsn})
	if err != nil {
		t.Fatalf("open test database: %v", err)
	}

	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			sqlDB.Close()
		}
	})

	return db
}
