package components

import (
	"loft-booking/internal/domain/pricing"
	"loft-booking/internal/pkg/cache"
	"loft-booking/internal/pkg/clock"
	"loft-booking/internal/pkg/config"
	"loft-booking/internal/pkg/metrics"
	"loft-booking/internal/usecase"
	"loft-booking/internal/usecase/commands"
	"loft-booking/internal/usecase/queries"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	usecaseBaseOption,
	usecaseQueriesModule,
	usecaseValidatorsModule,
	usecaseCommandsModule,
)

var usecaseBaseOption = fx.Provide(
	clock.NewRealClock,
	NewPriceCalculator,
	NewCatalog,
	// seasonal rate writes evict the catalog entries they change
	func(c queries.Catalog) commands.RateCacheInvalidator { return c },
)

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		commands.NewBookingUseCase,
		commands.NewSeasonalRateUseCase,
	),
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		queries.NewAvailabilityQueries,
		queries.NewPricingQueries,
		queries.NewCalendarQueries,
		queries.NewLoftQueries,
		queries.NewBookingQueries,
	),
)

var usecaseValidatorsModule = fx.Module("usecase/validators",
	fx.Provide(
		usecase.NewTokenValidator,
	),
)

func NewPriceCalculator(cfg config.Config) (pricing.Calculator, error) {
	return pricing.NewDefaultCalculator(cfg.Pricing.ServiceFeePercent)
}

func NewCatalog(lofts queries.LoftReader, rates queries.SeasonalRateReader, c cache.Cache, cfg config.Config, m *metrics.Collector) queries.Catalog {
	return queries.NewCatalog(lofts, rates, c, cfg.Cache.TTL, m)
}
