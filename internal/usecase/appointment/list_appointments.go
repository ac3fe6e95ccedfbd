package appointment

import (
	"context"
	"strings"

	domain "github.com/BruksfildServices01/studio-booking/internal/domain/appointment"
	"github.com/BruksfildServices01/studio-booking/internal/models"
)

type ListAppointments struct {
	repo domain.Repository
}

func NewListAppointments(
	repo domain.Repository,
) *ListAppointments {
	return &ListAppointments{
		repo: repo,
	}
}

// Execute lists appointments newest slot first. Filters are plain equality
// matches; an unknown status simply matches nothing.
func (uc *ListAppointments) Execute(
	ctx context.Context,
	filter domain.Filter,
) ([]models.Appointment, error) {

	filter.Status = strings.ToLower(strings.TrimSpace(filter.Status))
	filter.Date = strings.TrimSpace(filter.Date)

	return uc.repo.List(ctx, filter)
}
