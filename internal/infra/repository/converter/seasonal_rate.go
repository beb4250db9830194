package converter

import (
	"loft-booking/internal/domain/pricing"
	sqlc "loft-booking/internal/infra/sqlc/generated"
	"loft-booking/internal/pkg/pgconv"
)

func SeasonalRateToInfra(r *pricing.SeasonalRate) sqlc.CreateSeasonalRateParams {
	return sqlc.CreateSeasonalRateParams{
		ID:                r.ID(),
		LoftID:            r.LoftID(),
		CheckIn:           pgconv.DateToPgtype(r.Period().CheckIn()),
		CheckOut:          pgconv.DateToPgtype(r.Period().CheckOut()),
		NightlyPriceCents: r.NightlyPrice().Cents(),
		Label:             r.Label(),
	}
}
