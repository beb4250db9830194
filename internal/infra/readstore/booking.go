package readstore

import (
	"context"

	"loft-booking/internal/domain/stay"
	"loft-booking/internal/infra"
	sqlc "loft-booking/internal/infra/sqlc/generated"
	"loft-booking/internal/pkg/pgconv"
	"loft-booking/internal/usecase/shared"

	"github.com/google/uuid"
)

type BookingReadQueries interface {
	GetBlockingBookingsInRange(ctx context.Context, db sqlc.DBTX, arg sqlc.GetBlockingBookingsInRangeParams) ([]sqlc.GetBlockingBookingsInRangeRow, error)
	GetBookingByID(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.GetBookingByIDRow, error)
}

type BookingReadStore struct {
	queries BookingReadQueries
	db      sqlc.DBTX
}

func NewBookingReadStore(queries BookingReadQueries, db sqlc.DBTX) *BookingReadStore {
	return &BookingReadStore{
		queries: queries,
		db:      db,
	}
}

// FindBlocking returns pending and confirmed bookings whose nights intersect period.
func (r *BookingReadStore) FindBlocking(ctx context.Context, loftID uuid.UUID, period stay.DateRange) ([]*shared.OccupancySnapshot, error) {
	rows, err := r.queries.GetBlockingBookingsInRange(ctx, r.db, sqlc.GetBlockingBookingsInRangeParams{
		LoftID:     loftID,
		RangeStart: pgconv.DateToPgtype(period.CheckIn()),
		RangeEnd:   pgconv.DateToPgtype(period.CheckOut()),
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find blocking bookings", err)
	}

	result := make([]*shared.OccupancySnapshot, 0, len(rows))
	for _, row := range rows {
		checkIn, err := pgconv.DateFromPgtype(row.CheckIn)
		if err != nil {
			return nil, infra.WrapRepoErr("invalid booking check-in", err, infra.KindDBFailure)
		}
		checkOut, err := pgconv.DateFromPgtype(row.CheckOut)
		if err != nil {
			return nil, infra.WrapRepoErr("invalid booking check-out", err, infra.KindDBFailure)
		}
		result = append(result, &shared.OccupancySnapshot{
			BookingID: row.ID,
			CheckIn:   checkIn,
			CheckOut:  checkOut,
			Status:    row.Status,
		})
	}
	return result, nil
}

func (r *BookingReadStore) FindByID(ctx context.Context, id uuid.UUID) (*shared.BookingSnapshot, error) {
	row, err := r.queries.GetBookingByID(ctx, r.db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("booking not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find booking by ID", err)
	}

	checkIn, err := pgconv.DateFromPgtype(row.CheckIn)
	if err != nil {
		return nil, infra.WrapRepoErr("invalid booking check-in", err, infra.KindDBFailure)
	}
	checkOut, err := pgconv.DateFromPgtype(row.CheckOut)
	if err != nil {
		return nil, infra.WrapRepoErr("invalid booking check-out", err, infra.KindDBFailure)
	}

	return &shared.BookingSnapshot{
		ID:         row.ID,
		LoftID:     row.LoftID,
		PartnerID:  row.PartnerID,
		GuestID:    row.GuestID,
		CheckIn:    checkIn,
		CheckOut:   checkOut,
		Status:     row.Status,
		TotalCents: row.TotalCents,
		Currency:   row.Currency,
		CreatedAt:  pgconv.TimeFromPgtype(row.CreatedAt),
		UpdatedAt:  pgconv.TimeFromPgtype(row.UpdatedAt),
	}, nil
}
