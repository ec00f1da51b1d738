package testutil

import (
	"testing"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/ormlab/orgstore/internal/model"
)

// SetupTestDB opens an in-memory sqlite database and migrates the schema.
// The store is private to the test and discarded with it.
func SetupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	gdb, err := gorm.Open(sqlite.Open("file::memory:?_foreign_keys=on"), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		t.Fatalf("Failed to open test database: %v", err)
	}

	// A second pooled connection would see a different empty in-memory
	// database, so pin the pool to one.
	sqlDB, err := gdb.DB()
	if err != nil {
		t.Fatalf("Failed to access test database handle: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { sqlDB.Close() })

	if err := gdb.AutoMigrate(&model.Organization{}, &model.User{}); err != nil {
		t.Fatalf("Failed to migrate test schema: %v", err)
	}

	return gdb
}
