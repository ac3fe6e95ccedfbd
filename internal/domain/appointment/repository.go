package appointment

import (
	"context"

	"github.com/BruksfildServices01/studio-booking/internal/models"
)

// Filter narrows the admin appointment list. Empty fields match everything.
type Filter struct {
	Status string
	Date   string
}

type Repository interface {
	// -------- Booking --------

	// CreateIfSlotFree inserts ap unless another appointment holding the
	// same date and time exists, in which case it returns a conflict.
	CreateIfSlotFree(
		ctx context.Context,
		ap *models.Appointment,
	) error

	// -------- Availability --------
	ListBookedTimes(
		ctx context.Context,
		date string,
	) ([]string, error)

	// -------- Admin --------
	List(
		ctx context.Context,
		filter Filter,
	) ([]models.Appointment, error)

	// UpdateStatus applies the status and returns the stored appointment
	// together with its previous status.
	UpdateStatus(
		ctx context.Context,
		id uint,
		status Status,
	) (*models.Appointment, Status, error)
}
