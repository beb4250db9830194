package queries

import (
	"context"
	"errors"

	"loft-booking/internal/domain/calendar"
	"loft-booking/internal/domain/stay"
	"loft-booking/internal/pkg/errs"
	"loft-booking/internal/usecase/shared"

	"github.com/google/uuid"
)

type CalendarQueries interface {
	Get(ctx context.Context, loftID uuid.UUID, from, to string) (*CalendarView, error)
}

type calendarQueriesImpl struct {
	catalog   Catalog
	occupancy OccupancyReader
}

func NewCalendarQueries(catalog Catalog, occupancy OccupancyReader) CalendarQueries {
	return &calendarQueriesImpl{catalog: catalog, occupancy: occupancy}
}

// Get allows windows in the past; only the length is bounded.
func (q *calendarQueriesImpl) Get(ctx context.Context, loftID uuid.UUID, from, to string) (*CalendarView, error) {
	window, err := shared.ParseWindow(from, to)
	if err != nil {
		return nil, err
	}
	if err := calendar.ValidateWindow(window); err != nil {
		return nil, shared.InvalidDateRange(err)
	}

	l, err := q.catalog.Loft(ctx, loftID)
	if err != nil {
		if errors.Is(err, ErrLoftNotFound) {
			return nil, err
		}
		return nil, errs.Mark(err, ErrAvailabilityFetchFailed)
	}
	rateSnaps, err := q.catalog.SeasonalRates(ctx, loftID)
	if err != nil {
		return nil, errs.Mark(err, ErrAvailabilityFetchFailed)
	}
	rates, err := shared.SeasonalRatesToDomain(rateSnaps)
	if err != nil {
		return nil, errs.Mark(err, ErrAvailabilityFetchFailed)
	}
	occSnaps, err := q.occupancy.FindBlocking(ctx, loftID, window)
	if err != nil {
		return nil, errs.Mark(err, ErrAvailabilityFetchFailed)
	}
	occupied, err := shared.OccupanciesToDomain(occSnaps)
	if err != nil {
		return nil, errs.Mark(err, ErrAvailabilityFetchFailed)
	}

	loft := l.ToDomain()
	days := calendar.Build(window, loft.NightlyPrice(), rates, occupied)

	view := &CalendarView{
		LoftID:   loftID,
		From:     window.CheckIn().Format(stay.DateLayout),
		To:       window.CheckOut().Format(stay.DateLayout),
		Currency: string(loft.Currency()),
		Days:     make([]CalendarDayView, 0, len(days)),
	}
	for _, d := range days {
		view.Days = append(view.Days, CalendarDayView{
			Date:       d.Date.Format(stay.DateLayout),
			Available:  d.Available,
			PriceCents: d.Price.Cents(),
			Seasonal:   d.Seasonal,
			RateLabel:  d.RateLabel,
		})
	}
	return view, nil
}
