// Package dbtest opens an isolated, migrated in-memory database per test.
package dbtest

import (
	"fmt"
	"strings"
	"sync/atomic"
	"testing"

	"postboard/internal/adapters/database"
	"postboard/internal/config"

	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

var seq atomic.Int64

// Open returns a fresh database that is closed when t finishes.
func Open(t testing.TB) *gorm.DB {
	t.Helper()

	name := strings.NewReplacer("/", "_", " ", "_").Replace(t.Name())
	dsn := fmt.Sprintf("file:%s_%d?mode=memory&cache=shared&_pragma=foreign_keys(1)", name, seq.Add(1))

	db, err := config.OpenDB(config.DriverSQLite, dsn, true)
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db))

	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			_ = sqlDB.Close()
		}
	})
	return db
}
