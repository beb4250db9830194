package queries

import (
	"context"

	"loft-booking/internal/domain/stay"
	"loft-booking/internal/usecase/shared"

	"github.com/google/uuid"
)

// Read ports, implemented by infra/readstore over the connection pool.

type LoftReader interface {
	FindByID(ctx context.Context, id uuid.UUID) (*shared.LoftSnapshot, error)
}

type SeasonalRateReader interface {
	FindByLoft(ctx context.Context, loftID uuid.UUID) ([]*shared.SeasonalRateSnapshot, error)
}

type OccupancyReader interface {
	FindBlocking(ctx context.Context, loftID uuid.UUID, period stay.DateRange) ([]*shared.OccupancySnapshot, error)
}

type BookingReader interface {
	FindByID(ctx context.Context, id uuid.UUID) (*shared.BookingSnapshot, error)
}
