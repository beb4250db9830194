package pricing

import (
	"errors"
	"time"

	"loft-booking/internal/domain/stay"

	"github.com/google/uuid"
)

const DefaultServiceFeePercent = 10.0

var ErrInvalidServiceFeePercent = errors.New("service fee percent must be between 0 and 100")

// Rates is the pricing view of a loft.
type Rates struct {
	NightlyPrice Money
	CleaningFee  Money
	TaxRate      float64
	Currency     Currency
}

type NightLine struct {
	Date     time.Time
	Price    Money
	Seasonal bool
}

type AppliedOverride struct {
	RateID       uuid.UUID
	Label        string
	NightlyPrice Money
	Nights       int
}

type Breakdown struct {
	Nights      int
	Lines       []NightLine
	Subtotal    Money
	CleaningFee Money
	ServiceFee  Money
	Taxes       Money
	Total       Money
	Currency    Currency
	Overrides   []AppliedOverride
}

type Calculator interface {
	Calculate(rates Rates, period stay.DateRange, seasonal []*SeasonalRate) Breakdown
}

type DefaultCalculator struct {
	serviceFeePercent float64
}

func NewDefaultCalculator(serviceFeePercent float64) (*DefaultCalculator, error) {
	if serviceFeePercent < 0 || serviceFeePercent > 100 {
		return nil, ErrInvalidServiceFeePercent
	}
	return &DefaultCalculator{serviceFeePercent: serviceFeePercent}, nil
}

// Calculate prices every night individually. Without seasonal rates this equals nights x base.
// Taxes apply to subtotal plus cleaning plus service fee.
func (c *DefaultCalculator) Calculate(rates Rates, period stay.DateRange, seasonal []*SeasonalRate) Breakdown {
	nights := period.EachNight()
	lines := make([]NightLine, 0, len(nights))
	var overrides []AppliedOverride
	overrideIdx := map[uuid.UUID]int{}

	subtotal := NewMoney(0)
	for _, night := range nights {
		price := rates.NightlyPrice
		rate := RateFor(night, seasonal)
		if rate != nil {
			price = rate.NightlyPrice()
			if i, ok := overrideIdx[rate.ID()]; ok {
				overrides[i].Nights++
			} else {
				overrideIdx[rate.ID()] = len(overrides)
				overrides = append(overrides, AppliedOverride{
					RateID:       rate.ID(),
					Label:        rate.Label(),
					NightlyPrice: rate.NightlyPrice(),
					Nights:       1,
				})
			}
		}
		lines = append(lines, NightLine{Date: night, Price: price, Seasonal: rate != nil})
		subtotal = subtotal.Add(price)
	}

	serviceFee := subtotal.Percent(c.serviceFeePercent)
	taxable := subtotal.Add(rates.CleaningFee).Add(serviceFee)
	taxes := taxable.MulRate(rates.TaxRate)

	return Breakdown{
		Nights:      len(nights),
		Lines:       lines,
		Subtotal:    subtotal,
		CleaningFee: rates.CleaningFee,
		ServiceFee:  serviceFee,
		Taxes:       taxes,
		Total:       taxable.Add(taxes),
		Currency:    rates.Currency,
		Overrides:   overrides,
	}
}
