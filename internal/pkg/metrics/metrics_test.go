//go:build unit

package metrics_test

import (
	"strings"
	"testing"
	"time"

	"loft-booking/internal/pkg/metrics"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCollector(t *testing.T) {
	c := metrics.NewCollector()

	c.ObserveAvailability(false, []string{"booking_conflict", "minimum_stay"})
	c.ObserveAvailability(true, nil)
	c.ObserveCache("loft", true)
	c.ObserveCache("loft", false)
	c.ObserveCache("loft", false)
	c.ObserveBooking("created")
	c.ObservePricing()
	c.ObserveHTTP("/api/lofts/:id", "GET", 200, 15*time.Millisecond)

	expected := `
# HELP loft_booking_cache_lookups_total Cache lookups by entity and result.
# TYPE loft_booking_cache_lookups_total counter
loft_booking_cache_lookups_total{entity="loft",result="hit"} 1
loft_booking_cache_lookups_total{entity="loft",result="miss"} 2
`
	require.NoError(t, testutil.GatherAndCompare(c.Registry(), strings.NewReader(expected), "loft_booking_cache_lookups_total"))

	n, err := testutil.GatherAndCount(c.Registry(), "loft_booking_availability_restrictions_total")
	require.NoError(t, err)
	assert.Equal(t, 2, n)
}

func TestCollector_Nil(t *testing.T) {
	var c *metrics.Collector
	assert.NotPanics(t, func() {
		c.ObserveAvailability(true, nil)
		c.ObserveHTTP("/", "GET", 200, time.Second)
		c.ObserveBooking("error")
		c.ObserveCache("loft", true)
		c.ObservePricing()
	})
	assert.Nil(t, c.Registry())
}
