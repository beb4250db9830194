package commands

import (
	"fmt"
	"strings"

	"loft-booking/internal/domain/availability"
	"loft-booking/internal/domain/booking"
	"loft-booking/internal/pkg/errs"
)

var (
	ErrLoftNotFound            = errs.ErrLoftNotFound
	ErrForbidden               = errs.ErrForbidden
	ErrBookingUnavailable      = errs.New("loft is not available for the requested stay")
	ErrBookingConflict         = errs.New("booking conflicts with another booking")
	ErrBookingNotFound         = errs.New("booking not found")
	ErrInvalidStatusTransition = booking.ErrInvalidStatusTransition
	ErrSeasonalRateOverlap     = errs.New("seasonal rate overlaps an existing rate")
	ErrSeasonalRateNotFound    = errs.New("seasonal rate not found")
)

// UnavailableError carries the restrictions that blocked a booking.
type UnavailableError struct {
	Restrictions []availability.Restriction
}

func (e *UnavailableError) Error() string {
	kinds := make([]string, 0, len(e.Restrictions))
	for _, r := range e.Restrictions {
		kinds = append(kinds, string(r.Kind))
	}
	return fmt.Sprintf("%s: %s", ErrBookingUnavailable.Error(), strings.Join(kinds, ", "))
}

func (e *UnavailableError) Is(target error) bool {
	return target == ErrBookingUnavailable
}
