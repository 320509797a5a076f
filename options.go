package cachekit

import (
	"go.uber.org/zap"

	"github.com/discochess/cachekit/internal/stats"
)

// MaxItems is the default cache capacity.
const MaxItems = 4

// Option configures a Cache.
type Option interface {
	apply(*options)
}

// options holds the cache configuration.
type options struct {
	kind     Kind
	capacity int
	stats    stats.Collector
	logger   *zap.Logger
}

// defaultOptions returns the default configuration.
func defaultOptions() options {
	return options{
		kind:     LRU,
		capacity: MaxItems,
		stats:    stats.NewNoop(),
		logger:   zap.NewNop(),
	}
}

// optionFunc wraps a function to implement Option.
type optionFunc func(*options)

// Compile-time check that optionFunc implements Option.
var _ Option = optionFunc(nil)

func (f optionFunc) apply(o *options) { f(o) }

// WithPolicy sets the eviction policy.
// Default is LRU.
func WithPolicy(k Kind) Option {
	return optionFunc(func(o *options) {
		o.kind = k
	})
}

// WithCapacity sets the maximum number of resident keys.
// Default is MaxItems. Ignored by the Unbounded policy.
func WithCapacity(n int) Option {
	return optionFunc(func(o *options) {
		o.capacity = n
	})
}

// WithStats sets the stats collector.
// If not set, a no-op collector is used.
func WithStats(c stats.Collector) Option {
	return optionFunc(func(o *options) {
		if c != nil {
			o.stats = c
		}
	})
}

// WithLogger sets the logger.
// If not set, a no-op logger is used.
func WithLogger(l *zap.Logger) Option {
	return optionFunc(func(o *options) {
		if l != nil {
			o.logger = l
		}
	})
}
