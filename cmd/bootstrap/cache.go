package bootstrap

import (
	"context"
	"fmt"
	"log/slog"

	"loft-booking/internal/pkg/cache"
	"loft-booking/internal/pkg/config"

	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"
)

var CacheModule = fx.Module("cache",
	fx.Provide(
		NewCache,
	),
)

func NewCache(lc fx.Lifecycle, cfg config.Config) (cache.Cache, error) {
	c := cfg.Cache
	switch c.Driver {
	case "memory":
		slog.Info("query cache enabled", "driver", c.Driver, "ttl", c.TTL)
		return cache.NewMemory(c.TTL, c.CleanupInterval), nil
	case "redis":
		client := redis.NewClient(&redis.Options{
			Addr:     c.RedisAddr,
			Password: c.RedisPassword,
			DB:       c.RedisDB,
		})
		rc := cache.NewRedis(client, c.KeyPrefix, c.TTL)
		lc.Append(fx.Hook{
			OnStart: func(ctx context.Context) error {
				if err := rc.Ping(ctx); err != nil {
					return fmt.Errorf("failed to ping redis at %s: %w", c.RedisAddr, err)
				}
				slog.Info("query cache enabled", "driver", c.Driver, "addr", c.RedisAddr, "ttl", c.TTL)
				return nil
			},
			OnStop: func(_ context.Context) error {
				return client.Close()
			},
		})
		return rc, nil
	case "none", "":
		slog.Info("query cache disabled")
		return cache.NewNoop(), nil
	default:
		return nil, fmt.Errorf("unknown CACHE_DRIVER %q", c.Driver)
	}
}
