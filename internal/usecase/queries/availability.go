package queries

import (
	"context"
	"errors"

	"loft-booking/internal/domain/availability"
	"loft-booking/internal/domain/stay"
	"loft-booking/internal/pkg/clock"
	"loft-booking/internal/pkg/errs"
	"loft-booking/internal/pkg/metrics"
	"loft-booking/internal/usecase/shared"

	"github.com/google/uuid"
)

type AvailabilityQueries interface {
	Check(ctx context.Context, loftID uuid.UUID, checkIn, checkOut string) (*AvailabilityView, error)
}

type availabilityQueriesImpl struct {
	catalog   Catalog
	occupancy OccupancyReader
	clock     clock.Clock
	metrics   *metrics.Collector
}

func NewAvailabilityQueries(catalog Catalog, occupancy OccupancyReader, clk clock.Clock, m *metrics.Collector) AvailabilityQueries {
	return &availabilityQueriesImpl{catalog: catalog, occupancy: occupancy, clock: clk, metrics: m}
}

// Check validates the range before touching storage, then reports every restriction that applies.
// An unavailable stay is a successful result.
func (q *availabilityQueriesImpl) Check(ctx context.Context, loftID uuid.UUID, checkIn, checkOut string) (*AvailabilityView, error) {
	period, err := shared.ParseStay(checkIn, checkOut, clock.Today(q.clock))
	if err != nil {
		return nil, err
	}

	l, err := q.catalog.Loft(ctx, loftID)
	if err != nil {
		if errors.Is(err, ErrLoftNotFound) {
			return nil, err
		}
		return nil, errs.Mark(err, ErrAvailabilityFetchFailed)
	}

	snaps, err := q.occupancy.FindBlocking(ctx, loftID, period)
	if err != nil {
		return nil, errs.Mark(err, ErrAvailabilityFetchFailed)
	}
	occupied, err := shared.OccupanciesToDomain(snaps)
	if err != nil {
		return nil, errs.Mark(err, ErrAvailabilityFetchFailed)
	}

	result := availability.Check(l.ToDomain().StayRules(), period, occupied)

	kinds := make([]string, 0, len(result.Restrictions))
	for _, r := range result.Restrictions {
		kinds = append(kinds, string(r.Kind))
	}
	q.metrics.ObserveAvailability(result.IsAvailable, kinds)

	return toAvailabilityView(loftID, period, result), nil
}

func toAvailabilityView(loftID uuid.UUID, period stay.DateRange, result availability.Result) *AvailabilityView {
	return &AvailabilityView{
		LoftID:       loftID,
		CheckIn:      period.CheckIn().Format(stay.DateLayout),
		CheckOut:     period.CheckOut().Format(stay.DateLayout),
		Nights:       period.Nights(),
		IsAvailable:  result.IsAvailable,
		Restrictions: ToRestrictionViews(result.Restrictions),
	}
}

func ToRestrictionViews(restrictions []availability.Restriction) []RestrictionView {
	views := make([]RestrictionView, 0, len(restrictions))
	for _, r := range restrictions {
		v := RestrictionView{Kind: string(r.Kind), Message: r.Message}
		if r.Conflict != nil {
			in := r.Conflict.CheckIn().Format(stay.DateLayout)
			out := r.Conflict.CheckOut().Format(stay.DateLayout)
			v.ConflictCheckIn, v.ConflictCheckOut = &in, &out
		}
		views = append(views, v)
	}
	return views
}
