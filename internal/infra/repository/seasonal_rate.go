package repository

import (
	"context"

	"loft-booking/internal/domain/pricing"
	"loft-booking/internal/infra"
	"loft-booking/internal/infra/repository/converter"
	sqlc "loft-booking/internal/infra/sqlc/generated"

	"github.com/google/uuid"
)

type SeasonalRateWriteQueries interface {
	CreateSeasonalRate(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateSeasonalRateParams) (uuid.UUID, error)
	DeleteSeasonalRate(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (int64, error)
}

type SeasonalRateRepository struct {
	queries SeasonalRateWriteQueries
}

func NewSeasonalRateRepository(queries SeasonalRateWriteQueries) *SeasonalRateRepository {
	return &SeasonalRateRepository{queries: queries}
}

func (r *SeasonalRateRepository) Create(ctx context.Context, tx sqlc.DBTX, rate *pricing.SeasonalRate) (uuid.UUID, error) {
	id, err := r.queries.CreateSeasonalRate(ctx, tx, converter.SeasonalRateToInfra(rate))
	if err != nil {
		return uuid.Nil, infra.WrapRepoErr("failed to create seasonal rate", err)
	}
	return id, nil
}

func (r *SeasonalRateRepository) Delete(ctx context.Context, tx sqlc.DBTX, id uuid.UUID) error {
	affected, err := r.queries.DeleteSeasonalRate(ctx, tx, id)
	if err != nil {
		return infra.WrapRepoErr("failed to delete seasonal rate", err)
	}
	if affected == 0 {
		return infra.WrapRepoErr("seasonal rate not found", nil, infra.KindNotFound)
	}
	return nil
}
