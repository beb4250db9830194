package shared

import (
	"context"

	"loft-booking/internal/domain/booking"
	"loft-booking/internal/domain/pricing"
	"loft-booking/internal/domain/stay"
	sqlc "loft-booking/internal/infra/sqlc/generated"
	"loft-booking/internal/pkg/errs"

	"github.com/google/uuid"
)

// ErrTxRetriesExhausted marks a transaction that kept losing serialization races.
var ErrTxRetriesExhausted = errs.New("transaction failed after max retries")

type UnitOfWork interface {
	// Within: serializable transaction for writes, retried on serialization failure and deadlock
	Within(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
}

type Tx interface {
	Bookings() BookingRepository
	SeasonalRates() SeasonalRateRepository
	Reads() CommandReads
	DB() sqlc.DBTX
}

type CommandReads interface {
	LoftByID(ctx context.Context, id uuid.UUID) (*LoftSnapshot, error)
	BlockingOccupancies(ctx context.Context, loftID uuid.UUID, period stay.DateRange) ([]*OccupancySnapshot, error)
	SeasonalRatesByLoft(ctx context.Context, loftID uuid.UUID) ([]*SeasonalRateSnapshot, error)
	SeasonalRateByID(ctx context.Context, id uuid.UUID) (*SeasonalRateSnapshot, error)
	BookingByID(ctx context.Context, id uuid.UUID) (*BookingSnapshot, error)
}

type BookingRepository interface {
	Create(ctx context.Context, tx sqlc.DBTX, b *booking.Booking) (uuid.UUID, error)
	UpdateStatus(ctx context.Context, tx sqlc.DBTX, b *booking.Booking) error
}

type SeasonalRateRepository interface {
	Create(ctx context.Context, tx sqlc.DBTX, r *pricing.SeasonalRate) (uuid.UUID, error)
	Delete(ctx context.Context, tx sqlc.DBTX, id uuid.UUID) error
}
