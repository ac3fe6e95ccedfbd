package appointment

import (
	"context"
	"strings"

	"github.com/BruksfildServices01/studio-booking/internal/audit"
	domain "github.com/BruksfildServices01/studio-booking/internal/domain/appointment"
	"github.com/BruksfildServices01/studio-booking/internal/httperr"
	"github.com/BruksfildServices01/studio-booking/internal/models"
)

// ======================================================
// INPUT
// ======================================================

type BookAppointmentInput struct {
	Name    string
	Email   string
	Phone   string
	Service string

	Date    string
	Time    string
	Message string
}

// ======================================================
// USE CASE
// ======================================================

type BookAppointment struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewBookAppointment(
	repo domain.Repository,
	audit *audit.Dispatcher,
) *BookAppointment {
	return &BookAppointment{
		repo:  repo,
		audit: audit,
	}
}

// ======================================================
// EXECUTE
// ======================================================

func (uc *BookAppointment) Execute(
	ctx context.Context,
	in BookAppointmentInput,
) (*models.Appointment, error) {

	// --------------------------------------------------
	// 1. Required fields
	// --------------------------------------------------
	name := strings.TrimSpace(in.Name)
	email := strings.TrimSpace(in.Email)
	phone := strings.TrimSpace(in.Phone)
	service := strings.TrimSpace(in.Service)
	dateStr := strings.TrimSpace(in.Date)
	timeStr := strings.TrimSpace(in.Time)

	if name == "" || email == "" || phone == "" || service == "" || dateStr == "" || timeStr == "" {
		return nil, httperr.ErrBusiness("missing_required_fields")
	}

	// --------------------------------------------------
	// 2. Canonical date / time so the slot check compares like with like
	// --------------------------------------------------
	date, err := domain.NormalizeDate(dateStr)
	if err != nil {
		return nil, httperr.ErrBusiness("invalid_date_or_time")
	}
	slot, err := domain.NormalizeTime(timeStr)
	if err != nil {
		return nil, httperr.ErrBusiness("invalid_date_or_time")
	}

	// --------------------------------------------------
	// 3. Atomic check-and-insert
	// --------------------------------------------------
	ap := &models.Appointment{
		Name:            name,
		Email:           email,
		Phone:           phone,
		Service:         service,
		AppointmentDate: date,
		AppointmentTime: slot,
		Message:         strings.TrimSpace(in.Message),
		Status:          string(domain.InitialStatus()),
	}

	if err := uc.repo.CreateIfSlotFree(ctx, ap); err != nil {
		return nil, err
	}

	// --------------------------------------------------
	// 4. Audit
	// --------------------------------------------------
	uc.audit.Dispatch(audit.Event{
		Action:   audit.ActionAppointmentBooked,
		Entity:   "appointment",
		EntityID: &ap.ID,
		Metadata: map[string]string{
			"date":    ap.AppointmentDate,
			"time":    ap.AppointmentTime,
			"service": ap.Service,
		},
	})

	return ap, nil
}
