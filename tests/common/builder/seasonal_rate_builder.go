//go:build unit || e2e

package builder

import (
	"time"

	"loft-booking/internal/domain/pricing"
	"loft-booking/internal/domain/stay"
	reqdto "loft-booking/internal/handler/dto/request"
	"loft-booking/internal/usecase/shared"

	"github.com/google/uuid"
)

type SeasonalRateBuilder struct {
	ID                uuid.UUID
	LoftID            uuid.UUID
	CheckIn           string
	CheckOut          string
	NightlyPriceCents int64
	Label             string
	CreatedAt         time.Time
}

func NewSeasonalRateBuilder() *SeasonalRateBuilder {
	return &SeasonalRateBuilder{
		ID:                uuid.New(),
		LoftID:            uuid.New(),
		CheckIn:           "2030-07-01",
		CheckOut:          "2030-09-01",
		NightlyPriceCents: 15000,
		Label:             "Summer",
		CreatedAt:         time.Date(2030, 1, 20, 8, 0, 0, 0, time.UTC),
	}
}

func (b *SeasonalRateBuilder) With(mutate func(*SeasonalRateBuilder)) *SeasonalRateBuilder {
	mutate(b)
	return b
}

func (b *SeasonalRateBuilder) Period() stay.DateRange {
	period, err := stay.ParseDateRange(b.CheckIn, b.CheckOut)
	if err != nil {
		panic(err)
	}
	return period
}

// Build methods
func (b *SeasonalRateBuilder) BuildDomain() *pricing.SeasonalRate {
	return pricing.ReconstructSeasonalRate(b.ID, b.LoftID, b.Period(), pricing.NewMoney(b.NightlyPriceCents), b.Label, b.CreatedAt)
}

func (b *SeasonalRateBuilder) BuildSnapshot() *shared.SeasonalRateSnapshot {
	period := b.Period()
	return &shared.SeasonalRateSnapshot{
		ID:                b.ID,
		LoftID:            b.LoftID,
		CheckIn:           period.CheckIn(),
		CheckOut:          period.CheckOut(),
		NightlyPriceCents: b.NightlyPriceCents,
		Label:             b.Label,
		CreatedAt:         b.CreatedAt,
	}
}

func (b *SeasonalRateBuilder) BuildCreateRequestDTO() reqdto.CreateSeasonalRateRequest {
	return reqdto.CreateSeasonalRateRequest{
		CheckIn:           b.CheckIn,
		CheckOut:          b.CheckOut,
		NightlyPriceCents: b.NightlyPriceCents,
		Label:             b.Label,
	}
}
