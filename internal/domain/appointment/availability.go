package appointment

import (
	"fmt"
	"slices"
	"time"
)

const (
	DateLayout = "2006-01-02"
	TimeLayout = "15:04"

	FirstSlotHour = 9
	LastSlotHour  = 18
)

// SlotGrid returns every bookable slot of a day, one per hour from
// FirstSlotHour to LastSlotHour inclusive, in ascending order.
func SlotGrid() []string {
	slots := make([]string, 0, LastSlotHour-FirstSlotHour+1)
	for hour := FirstSlotHour; hour <= LastSlotHour; hour++ {
		slots = append(slots, fmt.Sprintf("%02d:00", hour))
	}
	return slots
}

// AvailableSlots removes the booked times from the day's grid.
func AvailableSlots(booked []string) []string {
	out := make([]string, 0, LastSlotHour-FirstSlotHour+1)
	for _, slot := range SlotGrid() {
		if !slices.Contains(booked, slot) {
			out = append(out, slot)
		}
	}
	return out
}

// NormalizeDate parses a YYYY-MM-DD date and returns it in canonical form.
func NormalizeDate(raw string) (string, error) {
	d, err := time.Parse(DateLayout, raw)
	if err != nil {
		return "", err
	}
	return d.Format(DateLayout), nil
}

// NormalizeTime parses an HH:MM time of day ("9:00" is accepted) and
// returns it zero-padded.
func NormalizeTime(raw string) (string, error) {
	t, err := time.Parse(TimeLayout, raw)
	if err != nil {
		return "", err
	}
	return t.Format(TimeLayout), nil
}
