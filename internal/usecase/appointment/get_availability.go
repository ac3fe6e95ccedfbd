package appointment

import (
	"context"
	"strings"

	domain "github.com/BruksfildServices01/studio-booking/internal/domain/appointment"
	"github.com/BruksfildServices01/studio-booking/internal/httperr"
)

type GetAvailability struct {
	repo domain.Repository
}

func NewGetAvailability(repo domain.Repository) *GetAvailability {
	return &GetAvailability{repo: repo}
}

// Execute returns the free hourly slots of date in ascending order. Only a
// missing date is rejected; a date that does not parse is matched as given.
func (uc *GetAvailability) Execute(
	ctx context.Context,
	dateStr string,
) ([]string, error) {

	dateStr = strings.TrimSpace(dateStr)
	if dateStr == "" {
		return nil, httperr.ErrBusiness("missing_date")
	}

	date := dateStr
	if normalized, err := domain.NormalizeDate(dateStr); err == nil {
		date = normalized
	}

	booked, err := uc.repo.ListBookedTimes(ctx, date)
	if err != nil {
		return nil, err
	}

	return domain.AvailableSlots(booked), nil
}
