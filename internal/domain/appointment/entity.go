package appointment

import (
	"github.com/BruksfildServices01/studio-booking/internal/models"
)

// ===============================
// Domain Actions
// ===============================

// SetStatus overwrites the status and returns the previous one.
func SetStatus(ap *models.Appointment, to Status) (Status, error) {
	from := Status(ap.Status)
	if err := CanTransition(from, to); err != nil {
		return from, err
	}

	ap.Status = string(to)
	return from, nil
}
