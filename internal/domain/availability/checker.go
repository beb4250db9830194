package availability

import (
	"fmt"

	"loft-booking/internal/domain/booking"
	"loft-booking/internal/domain/stay"

	"github.com/google/uuid"
)

type RestrictionKind string

const (
	KindBookingConflict RestrictionKind = "booking_conflict"
	KindMinimumStay     RestrictionKind = "minimum_stay"
	KindMaximumStay     RestrictionKind = "maximum_stay"
)

type Restriction struct {
	Kind    RestrictionKind
	Message string
	// Conflict is set for booking_conflict only.
	Conflict *stay.DateRange
}

type Result struct {
	IsAvailable  bool
	Restrictions []Restriction
}

type StayRules struct {
	MinimumStay int
	MaximumStay *int
}

// Occupancy is an existing booking as seen by the checker.
type Occupancy struct {
	BookingID uuid.UUID
	Stay      stay.DateRange
	Status    booking.Status
}

// Check evaluates a candidate stay. Every violated rule is reported, so a short stay that also
// collides with a booking yields both restrictions. Non-blocking or non-overlapping occupancies
// are ignored even if the caller passes them in.
func Check(rules StayRules, candidate stay.DateRange, existing []Occupancy) Result {
	var restrictions []Restriction

	for _, occ := range existing {
		if !occ.Status.Blocks() || !occ.Stay.Overlaps(candidate) {
			continue
		}
		conflict := occ.Stay
		restrictions = append(restrictions, Restriction{
			Kind:     KindBookingConflict,
			Message:  fmt.Sprintf("dates overlap an existing %s booking %s", occ.Status, occ.Stay),
			Conflict: &conflict,
		})
	}

	nights := candidate.Nights()
	if nights < rules.MinimumStay {
		restrictions = append(restrictions, Restriction{
			Kind:    KindMinimumStay,
			Message: fmt.Sprintf("minimum stay is %d nights, requested %d", rules.MinimumStay, nights),
		})
	}
	if rules.MaximumStay != nil && nights > *rules.MaximumStay {
		restrictions = append(restrictions, Restriction{
			Kind:    KindMaximumStay,
			Message: fmt.Sprintf("maximum stay is %d nights, requested %d", *rules.MaximumStay, nights),
		})
	}

	return Result{
		IsAvailable:  len(restrictions) == 0,
		Restrictions: restrictions,
	}
}

func (r Result) HasKind(kind RestrictionKind) bool {
	for _, res := range r.Restrictions {
		if res.Kind == kind {
			return true
		}
	}
	return false
}
