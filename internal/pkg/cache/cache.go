package cache

import (
	"context"
	"strings"
	"time"

	"loft-booking/internal/pkg/errs"
)

var ErrEncode = errs.New("cache: value could not be encoded")

// Cache stores JSON-encoded values under string keys. A miss is (false, nil); errors are
// transport or decoding failures and callers fall through to the source of truth.
type Cache interface {
	Get(ctx context.Context, key string, dest any) (bool, error)
	Set(ctx context.Context, key string, value any, ttl time.Duration) error
	Delete(ctx context.Context, keys ...string) error
}

// Key joins parts with ':' so keys read like loft:<id>:rates.
func Key(parts ...string) string {
	return strings.Join(parts, ":")
}

type noop struct{}

// NewNoop returns a cache that never hits. Used when CACHE_DRIVER=none.
func NewNoop() Cache {
	return noop{}
}

func (noop) Get(context.Context, string, any) (bool, error)        { return false, nil }
func (noop) Set(context.Context, string, any, time.Duration) error { return nil }
func (noop) Delete(context.Context, ...string) error               { return nil }
