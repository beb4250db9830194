package shared

import (
	"time"

	"loft-booking/internal/domain/stay"
	"loft-booking/internal/pkg/errs"
)

// ParseStay parses a YYYY-MM-DD pair into a half-open stay of at most stay.MaxStayNights
// that does not start before today.
// Every failure satisfies errors.Is(err, errs.ErrInvalidDateRange).
func ParseStay(checkIn, checkOut string, today time.Time) (stay.DateRange, error) {
	period, err := ParseWindow(checkIn, checkOut)
	if err != nil {
		return stay.DateRange{}, err
	}
	if err := period.ValidateNotPastAt(today); err != nil {
		return stay.DateRange{}, InvalidDateRange(err)
	}
	if err := period.ValidateLength(); err != nil {
		return stay.DateRange{}, InvalidDateRange(err)
	}
	return period, nil
}

// ParseWindow is ParseStay without the past-date check.
func ParseWindow(from, to string) (stay.DateRange, error) {
	period, err := stay.ParseDateRange(from, to)
	if err != nil {
		return stay.DateRange{}, InvalidDateRange(err)
	}
	return period, nil
}

// InvalidDateRange marks err as ErrInvalidDateRange and exposes its message as a detail.
func InvalidDateRange(err error) error {
	return errs.WithDetail(errs.Mark(err, errs.ErrInvalidDateRange), err.Error())
}
