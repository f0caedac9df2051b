package store

import (
	"errors"
	"testing"

	"newsdesk/internal/apperr"
	"newsdesk/internal/seed"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// testDB opens an isolated in-memory database seeded with the dev fixture set.
// A single connection keeps the :memory: database alive for the whole test, and
// the pragma turns on foreign key enforcement, which sqlite leaves off by default.
func testDB(t *testing.T) *gorm.DB {
	t.Helper()

	gdb, err := gorm.Open(sqlite.Open(":memory:?_pragma=foreign_keys(1)"), &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open test db: %v", err)
	}
	sqlDB, err := gdb.DB()
	if err != nil {
		t.Fatalf("unwrap test db: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)

	if err := seed.Run(gdb, seed.DevData()); err != nil {
		t.Fatalf("seed test db: %v", err)
	}
	return gdb
}

func wantAppErr(t *testing.T, err error, status int) *apperr.Error {
	t.Helper()
	if err == nil {
		t.Fatalf("expected error with status %d, got nil", status)
	}
	var e *apperr.Error
	if !errors.As(err, &e) {
		t.Fatalf("expected *apperr.Error, got %T: %v", err, err)
	}
	if e.Status != status {
		t.Fatalf("expected status %d, got %d (%q)", status, e.Status, e.Msg)
	}
	return e
}
