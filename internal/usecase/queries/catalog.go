package queries

import (
	"context"
	"log/slog"
	"time"

	"loft-booking/internal/infra"
	"loft-booking/internal/pkg/cache"
	"loft-booking/internal/pkg/errs"
	"loft-booking/internal/pkg/metrics"
	"loft-booking/internal/usecase/shared"

	"github.com/google/uuid"
)

const (
	cacheEntityLoft          = "loft"
	cacheEntitySeasonalRates = "seasonal_rates"
)

// Catalog serves loft settings and seasonal rates through the query cache.
// Bookings are never cached: availability must reflect the store at call time.
type Catalog interface {
	Loft(ctx context.Context, id uuid.UUID) (*shared.LoftSnapshot, error)
	SeasonalRates(ctx context.Context, loftID uuid.UUID) ([]*shared.SeasonalRateSnapshot, error)
	InvalidateSeasonalRates(ctx context.Context, loftID uuid.UUID) error
}

type cachedCatalog struct {
	lofts   LoftReader
	rates   SeasonalRateReader
	cache   cache.Cache
	ttl     time.Duration
	metrics *metrics.Collector
}

func NewCatalog(lofts LoftReader, rates SeasonalRateReader, c cache.Cache, ttl time.Duration, m *metrics.Collector) Catalog {
	if c == nil {
		c = cache.NewNoop()
	}
	return &cachedCatalog{lofts: lofts, rates: rates, cache: c, ttl: ttl, metrics: m}
}

func loftKey(id uuid.UUID) string {
	return cache.Key(cacheEntityLoft, id.String())
}

func seasonalRatesKey(loftID uuid.UUID) string {
	return cache.Key(cacheEntitySeasonalRates, loftID.String())
}

// Loft returns ErrLoftNotFound for unknown ids.
func (c *cachedCatalog) Loft(ctx context.Context, id uuid.UUID) (*shared.LoftSnapshot, error) {
	key := loftKey(id)
	var cached shared.LoftSnapshot
	if c.lookup(ctx, cacheEntityLoft, key, &cached) {
		return &cached, nil
	}

	snap, err := c.lofts.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Mark(err, ErrLoftNotFound)
		}
		return nil, err
	}
	c.store(ctx, key, snap)
	return snap, nil
}

func (c *cachedCatalog) SeasonalRates(ctx context.Context, loftID uuid.UUID) ([]*shared.SeasonalRateSnapshot, error) {
	key := seasonalRatesKey(loftID)
	var cached []*shared.SeasonalRateSnapshot
	if c.lookup(ctx, cacheEntitySeasonalRates, key, &cached) {
		return cached, nil
	}

	rates, err := c.rates.FindByLoft(ctx, loftID)
	if err != nil {
		return nil, err
	}
	c.store(ctx, key, rates)
	return rates, nil
}

func (c *cachedCatalog) InvalidateSeasonalRates(ctx context.Context, loftID uuid.UUID) error {
	return c.cache.Delete(ctx, seasonalRatesKey(loftID))
}

// A failing cache degrades to a miss.
func (c *cachedCatalog) lookup(ctx context.Context, entity, key string, dest any) bool {
	hit, err := c.cache.Get(ctx, key, dest)
	if err != nil {
		slog.WarnContext(ctx, "cache get failed", "key", key, "error", err.Error())
		hit = false
	}
	c.metrics.ObserveCache(entity, hit)
	return hit
}

func (c *cachedCatalog) store(ctx context.Context, key string, value any) {
	if err := c.cache.Set(ctx, key, value, c.ttl); err != nil {
		slog.WarnContext(ctx, "cache set failed", "key", key, "error", err.Error())
	}
}
