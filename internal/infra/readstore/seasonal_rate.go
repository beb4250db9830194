package readstore

import (
	"context"

	"loft-booking/internal/infra"
	sqlc "loft-booking/internal/infra/sqlc/generated"
	"loft-booking/internal/pkg/pgconv"
	"loft-booking/internal/usecase/shared"

	"github.com/google/uuid"
)

type SeasonalRateReadQueries interface {
	GetSeasonalRatesByLoft(ctx context.Context, db sqlc.DBTX, loftID uuid.UUID) ([]sqlc.SeasonalRates, error)
	GetSeasonalRateByID(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.SeasonalRates, error)
}

type SeasonalRateReadStore struct {
	queries SeasonalRateReadQueries
	db      sqlc.DBTX
}

func NewSeasonalRateReadStore(queries SeasonalRateReadQueries, db sqlc.DBTX) *SeasonalRateReadStore {
	return &SeasonalRateReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *SeasonalRateReadStore) FindByLoft(ctx context.Context, loftID uuid.UUID) ([]*shared.SeasonalRateSnapshot, error) {
	rows, err := r.queries.GetSeasonalRatesByLoft(ctx, r.db, loftID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find seasonal rates", err)
	}

	result := make([]*shared.SeasonalRateSnapshot, 0, len(rows))
	for _, row := range rows {
		snap, err := toSeasonalRateSnapshot(row)
		if err != nil {
			return nil, err
		}
		result = append(result, snap)
	}
	return result, nil
}

func (r *SeasonalRateReadStore) FindByID(ctx context.Context, id uuid.UUID) (*shared.SeasonalRateSnapshot, error) {
	row, err := r.queries.GetSeasonalRateByID(ctx, r.db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("seasonal rate not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find seasonal rate by ID", err)
	}
	return toSeasonalRateSnapshot(row)
}

func toSeasonalRateSnapshot(row sqlc.SeasonalRates) (*shared.SeasonalRateSnapshot, error) {
	checkIn, err := pgconv.DateFromPgtype(row.CheckIn)
	if err != nil {
		return nil, infra.WrapRepoErr("invalid seasonal rate start", err, infra.KindDBFailure)
	}
	checkOut, err := pgconv.DateFromPgtype(row.CheckOut)
	if err != nil {
		return nil, infra.WrapRepoErr("invalid seasonal rate end", err, infra.KindDBFailure)
	}
	return &shared.SeasonalRateSnapshot{
		ID:                row.ID,
		LoftID:            row.LoftID,
		CheckIn:           checkIn,
		CheckOut:          checkOut,
		NightlyPriceCents: row.NightlyPriceCents,
		Label:             row.Label,
		CreatedAt:         pgconv.TimeFromPgtype(row.CreatedAt),
	}, nil
}
