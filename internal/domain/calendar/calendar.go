package calendar

import (
	"errors"
	"time"

	"loft-booking/internal/domain/availability"
	"loft-booking/internal/domain/pricing"
	"loft-booking/internal/domain/stay"
)

const MaxWindowDays = 90

var ErrWindowTooLarge = errors.New("calendar window cannot exceed 90 days")

type Day struct {
	Date      time.Time
	Available bool
	Price     pricing.Money
	Seasonal  bool
	RateLabel string
}

func ValidateWindow(window stay.DateRange) error {
	if window.Nights() > MaxWindowDays {
		return ErrWindowTooLarge
	}
	return nil
}

// Build lists every night of window with its availability and effective nightly price.
func Build(window stay.DateRange, base pricing.Money, rates []*pricing.SeasonalRate, occupied []availability.Occupancy) []Day {
	blocking := make([]stay.DateRange, 0, len(occupied))
	for _, o := range occupied {
		if o.Status.Blocks() && o.Stay.Overlaps(window) {
			blocking = append(blocking, o.Stay)
		}
	}

	days := make([]Day, 0, window.Nights())
	for _, night := range window.EachNight() {
		day := Day{Date: night, Available: true, Price: base}
		for _, b := range blocking {
			if b.Covers(night) {
				day.Available = false
				break
			}
		}
		if rate := pricing.RateFor(night, rates); rate != nil {
			day.Price = rate.NightlyPrice()
			day.Seasonal = true
			day.RateLabel = rate.Label()
		}
		days = append(days, day)
	}
	return days
}
