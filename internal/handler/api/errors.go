package api

import (
	"errors"
	"net/http"

	"loft-booking/internal/domain/booking"
	"loft-booking/internal/domain/pricing"
	resdto "loft-booking/internal/handler/dto/response"
	"loft-booking/internal/handler/httperr"
	"loft-booking/internal/pkg/errs"
	"loft-booking/internal/usecase/commands"
	"loft-booking/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

var errUnauthenticated = errs.New("actor missing from request context")

type errorMapping struct {
	target  error
	status  int
	message string
}

// Checked in order; the first match wins.
var errorMappings = []errorMapping{
	{errs.ErrInvalidDateRange, http.StatusBadRequest, "Invalid date range"},
	{pricing.ErrInvalidSeasonalPrice, http.StatusBadRequest, "Invalid request"},
	{pricing.ErrSeasonalLabelTooLong, http.StatusBadRequest, "Invalid request"},
	{booking.ErrInvalidStatus, http.StatusBadRequest, "Invalid booking status"},
	{errs.ErrForbidden, http.StatusForbidden, "Forbidden"},
	{errs.ErrLoftNotFound, http.StatusNotFound, "Loft not found"},
	{queries.ErrBookingNotFound, http.StatusNotFound, "Booking not found"},
	{commands.ErrBookingNotFound, http.StatusNotFound, "Booking not found"},
	{commands.ErrSeasonalRateNotFound, http.StatusNotFound, "Seasonal rate not found"},
	{commands.ErrBookingUnavailable, http.StatusConflict, "Loft is not available"},
	{commands.ErrBookingConflict, http.StatusConflict, "Booking conflict"},
	{commands.ErrSeasonalRateOverlap, http.StatusConflict, "Seasonal rate overlaps an existing rate"},
	{commands.ErrInvalidStatusTransition, http.StatusConflict, "Status transition not allowed"},
	{queries.ErrAvailabilityFetchFailed, http.StatusServiceUnavailable, "Availability temporarily unavailable"},
	{queries.ErrPricingFetchFailed, http.StatusServiceUnavailable, "Pricing temporarily unavailable"},
}

func abortWithUsecaseError(c *gin.Context, err error) {
	for _, m := range errorMappings {
		if errors.Is(err, m.target) {
			httperr.AbortWithError(c, m.status, err, m.message, errorDetail(err))
			return
		}
	}
	httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal error", nil)
}

func errorDetail(err error) any {
	var unavailable *commands.UnavailableError
	if errors.As(err, &unavailable) {
		return resdto.UnavailableDetail{Restrictions: queries.ToRestrictionViews(unavailable.Restrictions)}
	}
	if details := errs.Details(err); len(details) > 0 {
		return details
	}
	return nil
}

func abortUnauthenticated(c *gin.Context) {
	httperr.AbortWithError(c, http.StatusUnauthorized, errUnauthenticated, "Unauthorized", nil)
}

func abortBadRequest(c *gin.Context, err error, msg string) {
	httperr.AbortWithError(c, http.StatusBadRequest, err, msg, nil)
}
