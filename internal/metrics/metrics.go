// Package metrics registers the Prometheus instruments for the quote
// pipeline and exposes the scrape handler mounted at /metrics.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	QuotesTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "farecast_quotes_total",
		Help: "Total number of fee quotes computed, by order class",
	}, []string{"class"})
	QuoteDurationMs = prometheus.NewHistogram(prometheus.HistogramOpts{
		Name:    "farecast_quote_duration_ms",
		Help:    "Quote computation duration in milliseconds",
		Buckets: []float64{1, 5, 10, 20, 50, 100, 200, 500, 1000},
	})
	RouteResolutionsTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "farecast_route_resolutions_total",
		Help: "Route distance resolutions, by method (external or fallback)",
	}, []string{"method"})
	RoutingFailuresTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "farecast_routing_failures_total",
		Help: "External routing calls that failed and fell back to great-circle",
	})
	RoutingDurationMs = prometheus.NewHistogram(prometheus.HistogramOpts{
		Name:    "farecast_routing_duration_ms",
		Help:    "External routing call duration in milliseconds",
		Buckets: []float64{1, 5, 10, 20, 50, 100, 200, 500, 1000},
	})
	WeatherRequestsTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "farecast_weather_requests_total",
		Help: "Weather provider lookups issued",
	})
	WeatherFailuresTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "farecast_weather_failures_total",
		Help: "Weather provider lookups that failed and were skipped",
	})
	WeatherCacheHitsTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "farecast_weather_cache_hits_total",
		Help: "Weather samples served from cache",
	})
	WeatherCacheMissesTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "farecast_weather_cache_misses_total",
		Help: "Weather samples that required a provider lookup",
	})
)

func init() {
	prometheus.MustRegister(QuotesTotal)
	prometheus.MustRegister(QuoteDurationMs)
	prometheus.MustRegister(RouteResolutionsTotal)
	prometheus.MustRegister(RoutingFailuresTotal)
	prometheus.MustRegister(RoutingDurationMs)
	prometheus.MustRegister(WeatherRequestsTotal)
	prometheus.MustRegister(WeatherFailuresTotal)
	prometheus.MustRegister(WeatherCacheHitsTotal)
	prometheus.MustRegister(WeatherCacheMissesTotal)
}

// Handler returns the scrape endpoint for the registered instruments.
func Handler() http.Handler { return promhttp.Handler() }
