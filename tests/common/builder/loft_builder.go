//go:build unit || e2e

package builder

import (
	"time"

	"loft-booking/internal/domain/loft"
	"loft-booking/internal/domain/pricing"
	sqlc "loft-booking/internal/infra/sqlc/generated"
	"loft-booking/internal/pkg/pgconv"
	"loft-booking/internal/usecase/queries"
	"loft-booking/internal/usecase/shared"

	"github.com/google/uuid"
)

type LoftBuilder struct {
	ID                uuid.UUID
	PartnerID         uuid.UUID
	Name              string
	Address           string
	NightlyPriceCents int64
	CleaningFeeCents  int64
	MinimumStay       int
	MaximumStay       *int
	TaxRate           float64
	Currency          string
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

// NewLoftBuilder defaults to 100.00/night, 20.00 cleaning, 10% tax, two night minimum.
func NewLoftBuilder() *LoftBuilder {
	created := time.Date(2030, 1, 15, 9, 0, 0, 0, time.UTC)
	return &LoftBuilder{
		ID:                uuid.New(),
		PartnerID:         uuid.New(),
		Name:              "Canal Loft",
		Address:           "1 Harbour Street",
		NightlyPriceCents: 10000,
		CleaningFeeCents:  2000,
		MinimumStay:       2,
		TaxRate:           0.1,
		Currency:          "USD",
		CreatedAt:         created,
		UpdatedAt:         created,
	}
}

func (b *LoftBuilder) With(mutate func(*LoftBuilder)) *LoftBuilder {
	mutate(b)
	return b
}

func (b *LoftBuilder) params() loft.Params {
	return loft.Params{
		PartnerID:    b.PartnerID,
		Name:         b.Name,
		Address:      b.Address,
		NightlyPrice: pricing.NewMoney(b.NightlyPriceCents),
		CleaningFee:  pricing.NewMoney(b.CleaningFeeCents),
		MinimumStay:  b.MinimumStay,
		MaximumStay:  b.MaximumStay,
		TaxRate:      b.TaxRate,
		Currency:     pricing.Currency(b.Currency),
	}
}

// Build methods
func (b *LoftBuilder) BuildDomain() (*loft.Loft, error) {
	return loft.NewLoft(b.params())
}

func (b *LoftBuilder) BuildInfra() sqlc.Lofts {
	return sqlc.Lofts{
		ID:                b.ID,
		PartnerID:         b.PartnerID,
		Name:              b.Name,
		Address:           b.Address,
		NightlyPriceCents: b.NightlyPriceCents,
		CleaningFeeCents:  b.CleaningFeeCents,
		MinimumStay:       int32(b.MinimumStay),
		MaximumStay:       pgconv.IntPtrToPgtype(b.MaximumStay),
		TaxRate:           pgconv.NumericFromFloat64(b.TaxRate),
		Currency:          b.Currency,
		CreatedAt:         pgconv.TimeToPgtype(b.CreatedAt),
		UpdatedAt:         pgconv.TimeToPgtype(b.UpdatedAt),
	}
}

func (b *LoftBuilder) BuildCreateParams() sqlc.CreateLoftParams {
	return sqlc.CreateLoftParams{
		PartnerID:         b.PartnerID,
		Name:              b.Name,
		Address:           b.Address,
		NightlyPriceCents: b.NightlyPriceCents,
		CleaningFeeCents:  b.CleaningFeeCents,
		MinimumStay:       int32(b.MinimumStay),
		MaximumStay:       pgconv.IntPtrToPgtype(b.MaximumStay),
		TaxRate:           pgconv.NumericFromFloat64(b.TaxRate),
		Currency:          b.Currency,
	}
}

func (b *LoftBuilder) BuildSnapshot() *shared.LoftSnapshot {
	return &shared.LoftSnapshot{
		ID:                b.ID,
		PartnerID:         b.PartnerID,
		Name:              b.Name,
		Address:           b.Address,
		NightlyPriceCents: b.NightlyPriceCents,
		CleaningFeeCents:  b.CleaningFeeCents,
		MinimumStay:       b.MinimumStay,
		MaximumStay:       b.MaximumStay,
		TaxRate:           b.TaxRate,
		Currency:          b.Currency,
		CreatedAt:         b.CreatedAt,
		UpdatedAt:         b.UpdatedAt,
	}
}

func (b *LoftBuilder) BuildViewQuery() *queries.LoftView {
	return &queries.LoftView{
		ID:                b.ID,
		PartnerID:         b.PartnerID,
		Name:              b.Name,
		Address:           b.Address,
		NightlyPriceCents: b.NightlyPriceCents,
		CleaningFeeCents:  b.CleaningFeeCents,
		MinimumStay:       b.MinimumStay,
		MaximumStay:       b.MaximumStay,
		TaxRate:           b.TaxRate,
		Currency:          b.Currency,
		CreatedAt:         b.CreatedAt,
		UpdatedAt:         b.UpdatedAt,
	}
}
