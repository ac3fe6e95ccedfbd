package db_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	dbpkg "github.com/BruksfildServices01/studio-booking/internal/db"
	"github.com/BruksfildServices01/studio-booking/internal/models"
	"github.com/BruksfildServices01/studio-booking/internal/testutil"
)

func TestSeedIsIdempotent(t *testing.T) {
	cfg := testutil.Config(t)
	db := testutil.NewDB(t, cfg)
	ctx := context.Background()

	require.NoError(t, dbpkg.Seed(ctx, db, cfg))

	// An admin edit must survive a restart.
	require.NoError(t, db.Model(&models.Setting{}).
		Where("key = ?", "business_name").
		Update("value", "My Studio").Error)

	require.NoError(t, dbpkg.Seed(ctx, db, cfg))

	var users []models.User
	require.NoError(t, db.Find(&users).Error)
	require.Len(t, users, 1)
	assert.Equal(t, "admin", users[0].Username)
	assert.Equal(t, models.RoleAdmin, users[0].Role)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(users[0].Password), []byte("admin123")))

	var settings int64
	require.NoError(t, db.Model(&models.Setting{}).Count(&settings).Error)
	assert.EqualValues(t, 9, settings)

	var name models.Setting
	require.NoError(t, db.Where("key = ?", "business_name").First(&name).Error)
	assert.Equal(t, "My Studio", name.Value)

	var services []models.Service
	require.NoError(t, db.Order("id").Find(&services).Error)
	require.Len(t, services, 4)
	assert.Equal(t, "Personal Training", services[0].Name)
	assert.Equal(t, 0, services[2].Duration)
}

func TestSeedWithoutDefaults(t *testing.T) {
	cfg := testutil.Config(t)
	cfg.SeedDefaults = false
	db := testutil.NewDB(t, cfg)

	require.NoError(t, dbpkg.Seed(context.Background(), db, cfg))

	var settings, services int64
	require.NoError(t, db.Model(&models.Setting{}).Count(&settings).Error)
	require.NoError(t, db.Model(&models.Service{}).Count(&services).Error)
	assert.Zero(t, settings)
	assert.Zero(t, services)
}
