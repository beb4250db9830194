package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
)

const namespace = "loft_booking"

// Collector owns every series the service exports. A nil *Collector is valid and records nothing.
type Collector struct {
	registry *prometheus.Registry

	httpRequests        *prometheus.CounterVec
	httpDuration        *prometheus.HistogramVec
	availabilityChecks  *prometheus.CounterVec
	restrictions        *prometheus.CounterVec
	pricingCalculations prometheus.Counter
	bookingsCreated     *prometheus.CounterVec
	cacheLookups        *prometheus.CounterVec
}

func NewCollector() *Collector {
	reg := prometheus.NewRegistry()
	c := &Collector{
		registry: reg,
		httpRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "http_requests_total",
			Help:      "HTTP requests by route, method and status.",
		}, []string{"route", "method", "status"}),
		httpDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request latency by route.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"route", "method"}),
		availabilityChecks: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "availability_checks_total",
			Help:      "Availability checks by outcome.",
		}, []string{"available"}),
		restrictions: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "availability_restrictions_total",
			Help:      "Restrictions reported by kind.",
		}, []string{"kind"}),
		pricingCalculations: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "pricing_calculations_total",
			Help:      "Pricing breakdowns computed.",
		}),
		bookingsCreated: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "bookings_total",
			Help:      "Booking attempts by result.",
		}, []string{"result"}),
		cacheLookups: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "cache_lookups_total",
			Help:      "Cache lookups by entity and result.",
		}, []string{"entity", "result"}),
	}

	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		c.httpRequests,
		c.httpDuration,
		c.availabilityChecks,
		c.restrictions,
		c.pricingCalculations,
		c.bookingsCreated,
		c.cacheLookups,
	)
	return c
}

func (c *Collector) Registry() *prometheus.Registry {
	if c == nil {
		return nil
	}
	return c.registry
}

func (c *Collector) ObserveHTTP(route, method string, status int, elapsed time.Duration) {
	if c == nil {
		return
	}
	c.httpRequests.WithLabelValues(route, method, strconv.Itoa(status)).Inc()
	c.httpDuration.WithLabelValues(route, method).Observe(elapsed.Seconds())
}

func (c *Collector) ObserveAvailability(available bool, restrictionKinds []string) {
	if c == nil {
		return
	}
	c.availabilityChecks.WithLabelValues(strconv.FormatBool(available)).Inc()
	for _, k := range restrictionKinds {
		c.restrictions.WithLabelValues(k).Inc()
	}
}

func (c *Collector) ObservePricing() {
	if c == nil {
		return
	}
	c.pricingCalculations.Inc()
}

// ObserveBooking result is one of created, unavailable, conflict, error.
func (c *Collector) ObserveBooking(result string) {
	if c == nil {
		return
	}
	c.bookingsCreated.WithLabelValues(result).Inc()
}

func (c *Collector) ObserveCache(entity string, hit bool) {
	if c == nil {
		return
	}
	result := "miss"
	if hit {
		result = "hit"
	}
	c.cacheLookups.WithLabelValues(entity, result).Inc()
}
