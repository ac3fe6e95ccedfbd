package repository

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	domain "github.com/BruksfildServices01/studio-booking/internal/domain/appointment"
	"github.com/BruksfildServices01/studio-booking/internal/httperr"
	"github.com/BruksfildServices01/studio-booking/internal/models"
	"github.com/BruksfildServices01/studio-booking/internal/testutil"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	return testutil.NewDB(t, testutil.Config(t))
}

func appointmentAt(date, slot, status string) *models.Appointment {
	return &models.Appointment{
		Name:            "Dana",
		Email:           "dana@example.com",
		Phone:           "555",
		Service:         "Personal Training",
		AppointmentDate: date,
		AppointmentTime: slot,
		Status:          status,
	}
}

// ======================================================
// Appointments
// ======================================================

func TestActiveSlotIndexRejectsDirectInsert(t *testing.T) {
	db := newTestDB(t)

	require.NoError(t, db.Create(appointmentAt("2025-06-01", "10:00", "pending")).Error)

	err := db.Create(appointmentAt("2025-06-01", "10:00", "confirmed")).Error
	require.Error(t, err)
	assert.True(t, isUniqueViolation(err))

	// Any number of cancelled rows may share the slot.
	require.NoError(t, db.Create(appointmentAt("2025-06-01", "10:00", "cancelled")).Error)
	require.NoError(t, db.Create(appointmentAt("2025-06-01", "10:00", "cancelled")).Error)
}

func TestCreateIfSlotFree(t *testing.T) {
	repo := NewAppointmentGormRepository(newTestDB(t))
	ctx := context.Background()

	require.NoError(t, repo.CreateIfSlotFree(ctx, appointmentAt("2025-06-01", "10:00", "pending")))

	err := repo.CreateIfSlotFree(ctx, appointmentAt("2025-06-01", "10:00", "pending"))
	assert.True(t, httperr.IsBusiness(err, "slot_already_booked"))
	assert.True(t, httperr.IsKind(err, httperr.KindConflict))

	require.NoError(t, repo.CreateIfSlotFree(ctx, appointmentAt("2025-06-01", "11:00", "pending")))
	require.NoError(t, repo.CreateIfSlotFree(ctx, appointmentAt("2025-06-02", "10:00", "pending")))
}

func TestListBookedTimesSkipsCancelled(t *testing.T) {
	db := newTestDB(t)
	repo := NewAppointmentGormRepository(db)

	require.NoError(t, db.Create(appointmentAt("2025-06-01", "14:00", "confirmed")).Error)
	require.NoError(t, db.Create(appointmentAt("2025-06-01", "10:00", "pending")).Error)
	require.NoError(t, db.Create(appointmentAt("2025-06-01", "11:00", "cancelled")).Error)
	require.NoError(t, db.Create(appointmentAt("2025-06-02", "12:00", "pending")).Error)

	times, err := repo.ListBookedTimes(context.Background(), "2025-06-01")
	require.NoError(t, err)
	assert.Equal(t, []string{"10:00", "14:00"}, times)
}

func TestUpdateStatusReturnsPrevious(t *testing.T) {
	db := newTestDB(t)
	repo := NewAppointmentGormRepository(db)

	ap := appointmentAt("2025-06-01", "10:00", "pending")
	require.NoError(t, db.Create(ap).Error)

	got, from, err := repo.UpdateStatus(context.Background(), ap.ID, domain.StatusCancelled)
	require.NoError(t, err)
	assert.Equal(t, domain.StatusPending, from)
	assert.Equal(t, "cancelled", got.Status)

	var stored models.Appointment
	require.NoError(t, db.First(&stored, ap.ID).Error)
	assert.Equal(t, "cancelled", stored.Status)

	_, _, err = repo.UpdateStatus(context.Background(), 12345, domain.StatusConfirmed)
	assert.True(t, httperr.IsKind(err, httperr.KindNotFound))
}

// ======================================================
// Settings
// ======================================================

func TestSettingUpsert(t *testing.T) {
	repo := NewSettingGormRepository(newTestDB(t))
	ctx := context.Background()

	require.NoError(t, repo.Upsert(ctx, "business_name", "Studio A"))
	require.NoError(t, repo.Upsert(ctx, "business_name", "Studio B"))

	rows, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "Studio B", rows[0].Value)
}

func TestSettingUpsertMany(t *testing.T) {
	repo := NewSettingGormRepository(newTestDB(t))
	repo.now = func() time.Time { return time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC) }
	ctx := context.Background()

	require.NoError(t, repo.Upsert(ctx, "phone", "old"))
	require.NoError(t, repo.UpsertMany(ctx, map[string]string{
		"phone":   "555-0000",
		"address": "Main St 1",
	}))
	require.NoError(t, repo.UpsertMany(ctx, nil))

	rows, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, rows, 2)

	assert.Equal(t, "address", rows[0].Key)
	assert.Equal(t, "Main St 1", rows[0].Value)
	assert.Equal(t, "phone", rows[1].Key)
	assert.Equal(t, "555-0000", rows[1].Value)
}

// ======================================================
// Users / services
// ======================================================

func TestFindByUsername(t *testing.T) {
	db := newTestDB(t)
	repo := NewUserGormRepository(db)

	require.NoError(t, db.Create(&models.User{
		Username: "admin",
		Email:    "admin@business.com",
		Password: "hash",
		Role:     models.RoleAdmin,
	}).Error)

	u, err := repo.FindByUsername(context.Background(), "admin")
	require.NoError(t, err)
	assert.Equal(t, models.RoleAdmin, u.Role)

	_, err = repo.FindByUsername(context.Background(), "nobody")
	assert.True(t, httperr.IsKind(err, httperr.KindNotFound))
}

func TestListActiveServices(t *testing.T) {
	db := newTestDB(t)
	repo := NewServiceGormRepository(db)

	active := models.Service{Name: "Personal Training", Duration: 60, Price: 200}
	retired := models.Service{Name: "Old Class", Duration: 30, Price: 50}
	require.NoError(t, db.Create(&active).Error)
	require.NoError(t, db.Create(&retired).Error)
	// default:true swallows a false on create.
	require.NoError(t, db.Model(&retired).Update("active", false).Error)

	services, err := repo.ListActive(context.Background())
	require.NoError(t, err)
	require.Len(t, services, 1)
	assert.Equal(t, "Personal Training", services[0].Name)
}
