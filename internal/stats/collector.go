// Package stats provides a unified interface for collecting cache metrics.
package stats

// Metric names used throughout the library.
const (
	// Cache operation metrics.
	MetricPuts      = "cachekit_puts_total"
	MetricGets      = "cachekit_gets_total"
	MetricHits      = "cachekit_hits_total"
	MetricMisses    = "cachekit_misses_total"
	MetricEvictions = "cachekit_evictions_total"
	MetricSize      = "cachekit_size"

	// Simulation metrics.
	MetricWindowHitRate = "cachekit_simulation_window_hit_rate"
)

// Collector defines the interface for collecting metrics.
type Collector interface {
	// IncCounter increments a counter metric by delta.
	IncCounter(name string, delta int64)

	// SetGauge sets a gauge metric to value.
	SetGauge(name string, value int64)

	// ObserveHistogram records a value in a histogram metric.
	ObserveHistogram(name string, value float64)
}
