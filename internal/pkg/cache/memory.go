package cache

import (
	"context"
	"time"

	"loft-booking/internal/pkg/errs"

	"github.com/goccy/go-json"
	gocache "github.com/patrickmn/go-cache"
)

// Memory keeps encoded bytes so callers never share mutable values with the cache.
type Memory struct {
	store      *gocache.Cache
	defaultTTL time.Duration
}

func NewMemory(defaultTTL, cleanupInterval time.Duration) *Memory {
	return &Memory{
		store:      gocache.New(defaultTTL, cleanupInterval),
		defaultTTL: defaultTTL,
	}
}

func (m *Memory) Get(_ context.Context, key string, dest any) (bool, error) {
	raw, ok := m.store.Get(key)
	if !ok {
		return false, nil
	}
	b, ok := raw.([]byte)
	if !ok {
		m.store.Delete(key)
		return false, nil
	}
	if err := json.Unmarshal(b, dest); err != nil {
		return false, err
	}
	return true, nil
}

func (m *Memory) Set(_ context.Context, key string, value any, ttl time.Duration) error {
	b, err := json.Marshal(value)
	if err != nil {
		return errs.Mark(err, ErrEncode)
	}
	if ttl <= 0 {
		ttl = m.defaultTTL
	}
	m.store.Set(key, b, ttl)
	return nil
}

func (m *Memory) Delete(_ context.Context, keys ...string) error {
	for _, k := range keys {
		m.store.Delete(k)
	}
	return nil
}

func (m *Memory) Len() int {
	return m.store.ItemCount()
}
