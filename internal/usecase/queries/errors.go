package queries

import "loft-booking/internal/pkg/errs"

var (
	ErrLoftNotFound            = errs.ErrLoftNotFound
	ErrInvalidDateRange        = errs.ErrInvalidDateRange
	ErrAvailabilityFetchFailed = errs.New("failed to fetch availability data")
	ErrPricingFetchFailed      = errs.New("failed to fetch pricing data")
	ErrBookingNotFound         = errs.New("booking not found")
	ErrBookingAccess           = errs.ErrForbidden
)
