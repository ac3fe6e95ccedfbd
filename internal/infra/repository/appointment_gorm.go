package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	domain "github.com/BruksfildServices01/studio-booking/internal/domain/appointment"
	"github.com/BruksfildServices01/studio-booking/internal/httperr"
	"github.com/BruksfildServices01/studio-booking/internal/models"
)

type AppointmentGormRepository struct {
	db *gorm.DB
}

func NewAppointmentGormRepository(db *gorm.DB) *AppointmentGormRepository {
	return &AppointmentGormRepository{db: db}
}

// --------------------------------------------------
// Booking
// --------------------------------------------------

func (r *AppointmentGormRepository) CreateIfSlotFree(
	ctx context.Context,
	ap *models.Appointment,
) error {

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		q := tx.Model(&models.Appointment{}).
			Where(
				"appointment_date = ? AND appointment_time = ? AND status <> ?",
				ap.AppointmentDate,
				ap.AppointmentTime,
				string(domain.StatusCancelled),
			).
			Limit(1)

		// SQLite serialises writers on its own; postgres needs the row lock.
		if tx.Dialector.Name() == "postgres" {
			q = q.Clauses(clause.Locking{Strength: "UPDATE"})
		}

		var taken []uint
		if err := q.Pluck("id", &taken).Error; err != nil {
			return fmt.Errorf("check slot: %w", err)
		}
		if len(taken) > 0 {
			return httperr.ErrConflict("slot_already_booked")
		}

		return tx.Create(ap).Error
	})

	// Two requests that both passed the check meet at the unique index.
	if isUniqueViolation(err) {
		return httperr.ErrConflict("slot_already_booked")
	}
	return err
}

// --------------------------------------------------
// Availability
// --------------------------------------------------

func (r *AppointmentGormRepository) ListBookedTimes(
	ctx context.Context,
	date string,
) ([]string, error) {

	var times []string
	if err := r.db.WithContext(ctx).
		Model(&models.Appointment{}).
		Where(
			"appointment_date = ? AND status <> ?",
			date,
			string(domain.StatusCancelled),
		).
		Order("appointment_time ASC").
		Pluck("appointment_time", &times).Error; err != nil {
		return nil, err
	}

	return times, nil
}

// --------------------------------------------------
// Admin
// --------------------------------------------------

func (r *AppointmentGormRepository) List(
	ctx context.Context,
	filter domain.Filter,
) ([]models.Appointment, error) {

	q := r.db.WithContext(ctx).Model(&models.Appointment{})

	if filter.Status != "" {
		q = q.Where("status = ?", filter.Status)
	}
	if filter.Date != "" {
		q = q.Where("appointment_date = ?", filter.Date)
	}

	var apps []models.Appointment
	if err := q.
		Order("appointment_date DESC").
		Order("appointment_time DESC").
		Order("id DESC").
		Find(&apps).Error; err != nil {
		return nil, err
	}

	return apps, nil
}

func (r *AppointmentGormRepository) UpdateStatus(
	ctx context.Context,
	id uint,
	status domain.Status,
) (*models.Appointment, domain.Status, error) {

	var (
		ap   models.Appointment
		from domain.Status
	)

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&ap, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return httperr.ErrNotFound("appointment_not_found")
			}
			return err
		}

		var err error
		from, err = domain.SetStatus(&ap, status)
		if err != nil {
			return err
		}

		return tx.Model(&ap).Update("status", ap.Status).Error
	})

	// Re-opening a cancelled appointment whose slot was taken since.
	if isUniqueViolation(err) {
		return nil, from, httperr.ErrConflict("slot_already_booked")
	}
	if err != nil {
		return nil, from, err
	}

	return &ap, from, nil
}

// Compile-time check
var _ domain.Repository = (*AppointmentGormRepository)(nil)
