package appointment

import (
	"context"

	domain "github.com/BruksfildServices01/studio-booking/internal/domain/appointment"
	"github.com/BruksfildServices01/studio-booking/internal/dto"
	"github.com/BruksfildServices01/studio-booking/internal/models"
)

type ListCustomers struct {
	repo domain.Repository
}

func NewListCustomers(repo domain.Repository) *ListCustomers {
	return &ListCustomers{repo: repo}
}

func (uc *ListCustomers) Execute(ctx context.Context) ([]dto.CustomerDTO, error) {
	apps, err := uc.repo.List(ctx, domain.Filter{})
	if err != nil {
		return nil, err
	}
	return GroupCustomers(apps), nil
}

// GroupCustomers folds appointments into one entry per email. apps must be
// ordered newest first; contact details come from each customer's most
// recent appointment and the result keeps that order.
func GroupCustomers(apps []models.Appointment) []dto.CustomerDTO {
	index := make(map[string]int, len(apps))
	out := make([]dto.CustomerDTO, 0)

	for _, ap := range apps {
		if i, ok := index[ap.Email]; ok {
			out[i].AppointmentCount++
			if ap.AppointmentDate > out[i].LastAppointment {
				out[i].LastAppointment = ap.AppointmentDate
			}
			continue
		}

		index[ap.Email] = len(out)
		out = append(out, dto.CustomerDTO{
			Name:             ap.Name,
			Email:            ap.Email,
			Phone:            ap.Phone,
			AppointmentCount: 1,
			LastAppointment:  ap.AppointmentDate,
		})
	}

	return out
}
