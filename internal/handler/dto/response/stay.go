package response

import (
	"loft-booking/internal/usecase/queries"
)

// The computed views are already shaped for the wire.
type (
	AvailabilityResponse queries.AvailabilityView
	PricingResponse      queries.PricingView
	CalendarResponse     queries.CalendarView
)

func FromAvailabilityView(v *queries.AvailabilityView) *AvailabilityResponse {
	if v.Restrictions == nil {
		v.Restrictions = []queries.RestrictionView{}
	}
	return (*AvailabilityResponse)(v)
}

func FromPricingView(v *queries.PricingView) *PricingResponse {
	if v.Overrides == nil {
		v.Overrides = []queries.SeasonalOverrideView{}
	}
	return (*PricingResponse)(v)
}

func FromCalendarView(v *queries.CalendarView) *CalendarResponse {
	return (*CalendarResponse)(v)
}
