// Package testdb opens throwaway sqlite databases for tests.
package testdb

import (
	"path/filepath"
	"testing"

	"gorm.io/gorm"

	"restaurant-foh/config"
)

// Open returns a migrated database in a temporary directory owned by t.
func Open(t testing.TB) *gorm.DB {
	t.Helper()
	db, err := config.OpenDB(filepath.Join(t.TempDir(), "test.db"))
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
