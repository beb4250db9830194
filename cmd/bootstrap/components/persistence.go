package components

import (
	"loft-booking/internal/infra/readstore"
	sqlc "loft-booking/internal/infra/sqlc/generated"
	"loft-booking/internal/infra/uow"
	"loft-booking/internal/usecase/queries"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/fx"
)

var PersistenceModule = fx.Module("persistence",
	baseOption,
	readstoreModule,
	uowModule,
)

var baseOption = fx.Provide(
	NewSQLQueries,
	NewDBTX,
)

// Query-side read stores run straight on the pool; command-side reads go through the UnitOfWork.
var readstoreModule = fx.Module("persistence/readstore",
	fx.Provide(
		// Loft
		fx.Annotate(
			NewSQLQueries,
			fx.As(new(readstore.LoftReadQueries)),
		),
		fx.Annotate(
			readstore.NewLoftReadStore,
			fx.As(new(queries.LoftReader)),
		),
		// Booking
		fx.Annotate(
			NewSQLQueries,
			fx.As(new(readstore.BookingReadQueries)),
		),
		fx.Annotate(
			readstore.NewBookingReadStore,
			fx.As(new(queries.OccupancyReader)),
			fx.As(new(queries.BookingReader)),
		),
		// SeasonalRate
		fx.Annotate(
			NewSQLQueries,
			fx.As(new(readstore.SeasonalRateReadQueries)),
		),
		fx.Annotate(
			readstore.NewSeasonalRateReadStore,
			fx.As(new(queries.SeasonalRateReader)),
		),
	),
)

var uowModule = fx.Module("persistence/uow",
	fx.Provide(
		uow.NewPostgresUoW,
	),
)

func NewSQLQueries() *sqlc.Queries {
	return sqlc.New()
}

func NewDBTX(pool *pgxpool.Pool) sqlc.DBTX {
	return pool
}
