package readstore

import (
	"context"

	"loft-booking/internal/infra"
	sqlc "loft-booking/internal/infra/sqlc/generated"
	"loft-booking/internal/pkg/pgconv"
	"loft-booking/internal/usecase/shared"

	"github.com/google/uuid"
)

type LoftReadQueries interface {
	GetLoftByID(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.Lofts, error)
}

type LoftReadStore struct {
	queries LoftReadQueries
	db      sqlc.DBTX
}

func NewLoftReadStore(queries LoftReadQueries, db sqlc.DBTX) *LoftReadStore {
	return &LoftReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *LoftReadStore) FindByID(ctx context.Context, id uuid.UUID) (*shared.LoftSnapshot, error) {
	row, err := r.queries.GetLoftByID(ctx, r.db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("loft not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find loft by ID", err)
	}

	return toLoftSnapshot(row)
}

func toLoftSnapshot(row sqlc.Lofts) (*shared.LoftSnapshot, error) {
	taxRate, err := pgconv.Float64FromNumeric(row.TaxRate)
	if err != nil {
		return nil, infra.WrapRepoErr("invalid loft tax rate", err, infra.KindDBFailure)
	}
	return &shared.LoftSnapshot{
		ID:                row.ID,
		PartnerID:         row.PartnerID,
		Name:              row.Name,
		Address:           row.Address,
		NightlyPriceCents: row.NightlyPriceCents,
		CleaningFeeCents:  row.CleaningFeeCents,
		MinimumStay:       int(row.MinimumStay),
		MaximumStay:       pgconv.Int4PtrFromPgtype(row.MaximumStay),
		TaxRate:           taxRate,
		Currency:          row.Currency,
		CreatedAt:         pgconv.TimeFromPgtype(row.CreatedAt),
		UpdatedAt:         pgconv.TimeFromPgtype(row.UpdatedAt),
	}, nil
}
