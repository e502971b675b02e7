// Package dbtest opens an in-memory SQLite database with the catalog schema for tests.
package dbtest

import (
	"testing"

	"github.com/Natoons/cynova/internal/config"
	"github.com/Natoons/cynova/internal/infra/db"

	"github.com/glebarez/sqlite"
	"github.com/rs/zerolog"
	"gorm.io/gorm"
)

// LIKEはPostgreSQLと同じく大文字小文字を区別させる
const dsn = ":memory:?_pragma=case_sensitive_like(1)"

// 接続1本に固定する（:memory: は接続ごとに別DBになるため）
func Open(t *testing.T) *gorm.DB {
	t.Helper()

	gormDB, err := db.Open(sqlite.Open(dsn), config.Config{DBMaxOpenConns: 1}, zerolog.Nop())
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	if err := db.Migrate(gormDB); err != nil {
		t.Fatalf("migrate: %v", err)
	}

	t.Cleanup(func() { _ = db.Close(gormDB) })
	return gormDB
}
