package appointment

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domain "github.com/BruksfildServices01/studio-booking/internal/domain/appointment"
	"github.com/BruksfildServices01/studio-booking/internal/httperr"
	infraRepo "github.com/BruksfildServices01/studio-booking/internal/infra/repository"
	"github.com/BruksfildServices01/studio-booking/internal/testutil"
)

func newRepo(t *testing.T) domain.Repository {
	t.Helper()
	db := testutil.NewDB(t, testutil.Config(t))
	return infraRepo.NewAppointmentGormRepository(db)
}

func danaInput() BookAppointmentInput {
	return BookAppointmentInput{
		Name:    "Dana",
		Email:   "dana@example.com",
		Phone:   "555-0101",
		Service: "Personal Training",
		Date:    "2025-06-01",
		Time:    "10:00",
	}
}

func TestBookAppointmentCreatesPending(t *testing.T) {
	repo := newRepo(t)
	uc := NewBookAppointment(repo, nil)

	ap, err := uc.Execute(context.Background(), danaInput())
	require.NoError(t, err)

	assert.NotZero(t, ap.ID)
	assert.Equal(t, "pending", ap.Status)
	assert.Equal(t, "2025-06-01", ap.AppointmentDate)
	assert.Equal(t, "10:00", ap.AppointmentTime)

	slots, err := NewGetAvailability(repo).Execute(context.Background(), "2025-06-01")
	require.NoError(t, err)
	assert.Len(t, slots, 9)
	assert.NotContains(t, slots, "10:00")
}

func TestBookAppointmentRejectsTakenSlot(t *testing.T) {
	repo := newRepo(t)
	uc := NewBookAppointment(repo, nil)
	ctx := context.Background()

	_, err := uc.Execute(ctx, danaInput())
	require.NoError(t, err)

	other := danaInput()
	other.Name = "Eli"
	other.Email = "eli@example.com"
	other.Time = "10:00"

	_, err = uc.Execute(ctx, other)
	require.Error(t, err)
	assert.True(t, httperr.IsBusiness(err, "slot_already_booked"))
	assert.Equal(t, 400, httperr.Status(err))

	// Unpadded input names the same slot.
	other.Time = "9:00"
	_, err = uc.Execute(ctx, other)
	require.NoError(t, err)
	other.Time = "09:00"
	_, err = uc.Execute(ctx, other)
	assert.True(t, httperr.IsBusiness(err, "slot_already_booked"))
}

func TestBookAppointmentAfterCancelFreesSlot(t *testing.T) {
	repo := newRepo(t)
	ctx := context.Background()
	book := NewBookAppointment(repo, nil)
	update := NewUpdateStatus(repo, nil)

	first, err := book.Execute(ctx, danaInput())
	require.NoError(t, err)

	_, err = update.Execute(ctx, 1, first.ID, "cancelled")
	require.NoError(t, err)

	slots, err := NewGetAvailability(repo).Execute(ctx, "2025-06-01")
	require.NoError(t, err)
	assert.Contains(t, slots, "10:00")

	second, err := book.Execute(ctx, danaInput())
	require.NoError(t, err)
	assert.NotEqual(t, first.ID, second.ID)

	// The cancelled one can no longer be re-opened.
	_, err = update.Execute(ctx, 1, first.ID, "confirmed")
	assert.True(t, httperr.IsBusiness(err, "slot_already_booked"))
}

func TestBookAppointmentValidation(t *testing.T) {
	uc := NewBookAppointment(newRepo(t), nil)
	ctx := context.Background()

	missing := danaInput()
	missing.Phone = "   "
	_, err := uc.Execute(ctx, missing)
	assert.True(t, httperr.IsBusiness(err, "missing_required_fields"))

	badDate := danaInput()
	badDate.Date = "2025-13-40"
	_, err = uc.Execute(ctx, badDate)
	assert.True(t, httperr.IsBusiness(err, "invalid_date_or_time"))

	badTime := danaInput()
	badTime.Time = "noon"
	_, err = uc.Execute(ctx, badTime)
	assert.True(t, httperr.IsBusiness(err, "invalid_date_or_time"))
}

func TestBookAppointmentConcurrentSameSlot(t *testing.T) {
	uc := NewBookAppointment(newRepo(t), nil)

	const n = 8
	var (
		wg        sync.WaitGroup
		mu        sync.Mutex
		succeeded int
		conflicts int
	)

	for i := 0; i < n; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := uc.Execute(context.Background(), danaInput())

			mu.Lock()
			defer mu.Unlock()
			switch {
			case err == nil:
				succeeded++
			case httperr.IsBusiness(err, "slot_already_booked"):
				conflicts++
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, 1, succeeded)
	assert.Equal(t, n-1, conflicts)
}
