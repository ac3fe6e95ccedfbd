package testutil

import (
	"fmt"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/studio-booking/internal/config"
	dbpkg "github.com/BruksfildServices01/studio-booking/internal/db"
)

var dbSeq atomic.Int64

// Config returns a configuration pointing at a private in-memory SQLite
// database.
func Config(t *testing.T) *config.Config {
	t.Helper()

	name := strings.NewReplacer("/", "_", " ", "_").Replace(t.Name())
	return &config.Config{
		AppEnv:          "test",
		DBDriver:        config.DriverSQLite,
		DBUrl:           fmt.Sprintf("file:%s_%d?mode=memory&cache=shared", name, dbSeq.Add(1)),
		JWTSecret:       "test-secret",
		AdminUsername:   "admin",
		AdminEmail:      "admin@business.com",
		AdminPassword:   "admin123",
		SeedDefaults:    true,
		RateLimitMax:    1000,
		RateLimitWindow: time.Minute,
		CORSOrigins:     "*",
		PublicDir:       t.TempDir(),
		LogLevel:        "error",
	}
}

// NewDB opens and migrates a fresh database for cfg and closes it when the
// test ends.
func NewDB(t *testing.T, cfg *config.Config) *gorm.DB {
	t.Helper()

	db, err := dbpkg.NewDB(cfg)
	require.NoError(t, err)

	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			_ = sqlDB.Close()
		}
	})
	return db
}
