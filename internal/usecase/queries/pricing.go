package queries

import (
	"context"
	"errors"

	"loft-booking/internal/domain/pricing"
	"loft-booking/internal/domain/stay"
	"loft-booking/internal/pkg/clock"
	"loft-booking/internal/pkg/errs"
	"loft-booking/internal/pkg/metrics"
	"loft-booking/internal/usecase/shared"

	"github.com/google/uuid"
)

type PricingQueries interface {
	Calculate(ctx context.Context, loftID uuid.UUID, checkIn, checkOut string) (*PricingView, error)
}

type pricingQueriesImpl struct {
	catalog    Catalog
	calculator pricing.Calculator
	clock      clock.Clock
	metrics    *metrics.Collector
}

func NewPricingQueries(catalog Catalog, calculator pricing.Calculator, clk clock.Clock, m *metrics.Collector) PricingQueries {
	return &pricingQueriesImpl{catalog: catalog, calculator: calculator, clock: clk, metrics: m}
}

func (q *pricingQueriesImpl) Calculate(ctx context.Context, loftID uuid.UUID, checkIn, checkOut string) (*PricingView, error) {
	period, err := shared.ParseStay(checkIn, checkOut, clock.Today(q.clock))
	if err != nil {
		return nil, err
	}

	l, err := q.catalog.Loft(ctx, loftID)
	if err != nil {
		if errors.Is(err, ErrLoftNotFound) {
			return nil, err
		}
		return nil, errs.Mark(err, ErrPricingFetchFailed)
	}
	snaps, err := q.catalog.SeasonalRates(ctx, loftID)
	if err != nil {
		return nil, errs.Mark(err, ErrPricingFetchFailed)
	}
	rates, err := shared.SeasonalRatesToDomain(snaps)
	if err != nil {
		return nil, errs.Mark(err, ErrPricingFetchFailed)
	}

	breakdown := q.calculator.Calculate(l.ToDomain().Rates(), period, rates)
	q.metrics.ObservePricing()

	return ToPricingView(loftID, period, breakdown), nil
}

func ToPricingView(loftID uuid.UUID, period stay.DateRange, b pricing.Breakdown) *PricingView {
	lines := make([]NightLineView, 0, len(b.Lines))
	for _, l := range b.Lines {
		lines = append(lines, NightLineView{
			Date:       l.Date.Format(stay.DateLayout),
			PriceCents: l.Price.Cents(),
			Seasonal:   l.Seasonal,
		})
	}
	overrides := make([]SeasonalOverrideView, 0, len(b.Overrides))
	for _, o := range b.Overrides {
		overrides = append(overrides, SeasonalOverrideView{
			RateID:            o.RateID,
			Label:             o.Label,
			NightlyPriceCents: o.NightlyPrice.Cents(),
			Nights:            o.Nights,
		})
	}
	return &PricingView{
		LoftID:           loftID,
		CheckIn:          period.CheckIn().Format(stay.DateLayout),
		CheckOut:         period.CheckOut().Format(stay.DateLayout),
		Nights:           b.Nights,
		Lines:            lines,
		SubtotalCents:    b.Subtotal.Cents(),
		CleaningFeeCents: b.CleaningFee.Cents(),
		ServiceFeeCents:  b.ServiceFee.Cents(),
		TaxesCents:       b.Taxes.Cents(),
		TotalCents:       b.Total.Cents(),
		Currency:         string(b.Currency),
		Overrides:        overrides,
	}
}
