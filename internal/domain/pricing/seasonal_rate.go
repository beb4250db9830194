package pricing

import (
	"errors"
	"strings"
	"time"

	"loft-booking/internal/domain/stay"

	"github.com/google/uuid"
)

var (
	ErrInvalidSeasonalPrice = errors.New("seasonal nightly price must be positive")
	ErrSeasonalLabelTooLong = errors.New("seasonal rate label must be at most 100 characters")
)

const maxLabelLength = 100

// SeasonalRate overrides the base nightly price for every night inside its period.
type SeasonalRate struct {
	id           uuid.UUID
	loftID       uuid.UUID
	period       stay.DateRange
	nightlyPrice Money
	label        string
	createdAt    time.Time
}

func NewSeasonalRate(loftID uuid.UUID, period stay.DateRange, nightlyPrice Money, label string) (*SeasonalRate, error) {
	if !nightlyPrice.IsPositive() {
		return nil, ErrInvalidSeasonalPrice
	}
	label = strings.TrimSpace(label)
	if len([]rune(label)) > maxLabelLength {
		return nil, ErrSeasonalLabelTooLong
	}
	return &SeasonalRate{
		id:           uuid.New(),
		loftID:       loftID,
		period:       period,
		nightlyPrice: nightlyPrice,
		label:        label,
	}, nil
}

func ReconstructSeasonalRate(
	id, loftID uuid.UUID,
	period stay.DateRange,
	nightlyPrice Money,
	label string,
	createdAt time.Time,
) *SeasonalRate {
	return &SeasonalRate{
		id:           id,
		loftID:       loftID,
		period:       period,
		nightlyPrice: nightlyPrice,
		label:        label,
		createdAt:    createdAt,
	}
}

func (s *SeasonalRate) ID() uuid.UUID          { return s.id }
func (s *SeasonalRate) LoftID() uuid.UUID      { return s.loftID }
func (s *SeasonalRate) Period() stay.DateRange { return s.period }
func (s *SeasonalRate) NightlyPrice() Money    { return s.nightlyPrice }
func (s *SeasonalRate) Label() string          { return s.label }
func (s *SeasonalRate) CreatedAt() time.Time   { return s.createdAt }

func (s *SeasonalRate) AppliesTo(day time.Time) bool {
	return s.period.Covers(day)
}

// RateFor picks the rate covering day. Rates of one loft never overlap, so the first hit wins.
func RateFor(day time.Time, rates []*SeasonalRate) *SeasonalRate {
	for _, r := range rates {
		if r.AppliesTo(day) {
			return r
		}
	}
	return nil
}
