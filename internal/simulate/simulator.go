// Package simulate replays key access sequences against eviction policies.
package simulate

import (
	"errors"
	"fmt"

	"go.uber.org/zap"
	"gonum.org/v1/gonum/stat"

	"github.com/discochess/cachekit"
	"github.com/discochess/cachekit/internal/stats"
)

// DefaultWindow is the number of accesses per hit-rate window.
const DefaultWindow = 100

// Simulator replays read-through traffic (get, then put on miss) against
// one fresh cache per policy.
type Simulator struct {
	kinds     []cachekit.Kind
	capacity  int
	window    int
	collector stats.Collector
	logger    *zap.Logger
}

// Option configures a Simulator.
type Option func(*Simulator)

// WithWindow sets the number of accesses per hit-rate window.
func WithWindow(n int) Option {
	return func(s *Simulator) {
		s.window = n
	}
}

// WithStats reports each window's hit rate to c.
// If not set, a no-op collector is used.
func WithStats(c stats.Collector) Option {
	return func(s *Simulator) {
		if c != nil {
			s.collector = c
		}
	}
}

// WithLogger sets the logger.
func WithLogger(l *zap.Logger) Option {
	return func(s *Simulator) {
		s.logger = l
	}
}

// New creates a Simulator comparing kinds at the given capacity.
func New(capacity int, kinds []cachekit.Kind, opts ...Option) (*Simulator, error) {
	if len(kinds) == 0 {
		return nil, errors.New("simulate: no policies given")
	}
	s := &Simulator{
		kinds:     kinds,
		capacity:  capacity,
		window:    DefaultWindow,
		collector: stats.NewNoop(),
		logger:    zap.NewNop(),
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.window < 1 {
		return nil, fmt.Errorf("simulate: window must be positive, got %d", s.window)
	}
	return s, nil
}

// Run replays keys against every policy and returns one result per policy,
// in the order the policies were given.
func (s *Simulator) Run(keys []string) ([]*Result, error) {
	results := make([]*Result, 0, len(s.kinds))
	for _, kind := range s.kinds {
		r, err := s.runOne(kind, keys)
		if err != nil {
			return nil, err
		}
		results = append(results, r)
	}
	return results, nil
}

func (s *Simulator) runOne(kind cachekit.Kind, keys []string) (*Result, error) {
	cache, err := cachekit.New[string, struct{}](
		cachekit.WithPolicy(kind),
		cachekit.WithCapacity(s.capacity),
		cachekit.WithLogger(s.logger.Named(kind.String())),
	)
	if err != nil {
		return nil, fmt.Errorf("creating %s cache: %w", kind, err)
	}

	var (
		windows    []float64
		windowHits int
	)
	for i, key := range keys {
		if _, ok := cache.Get(key); ok {
			windowHits++
		} else {
			cache.Put(key, struct{}{})
		}

		if (i+1)%s.window == 0 {
			rate := float64(windowHits) / float64(s.window)
			windows = append(windows, rate)
			s.collector.ObserveHistogram(stats.MetricWindowHitRate, rate)
			windowHits = 0
		}
	}

	cs := cache.Stats()
	r := &Result{
		Policy:    kind,
		Accesses:  len(keys),
		Hits:      cs.Hits,
		Misses:    cs.Misses,
		Evictions: cs.Evictions,
		HitRate:   cs.HitRate(),
		Windows:   windows,
	}
	switch len(windows) {
	case 0:
	case 1:
		r.WindowMean = windows[0]
	default:
		r.WindowMean, r.WindowStdDev = stat.MeanStdDev(windows, nil)
	}

	s.logger.Debug("simulation finished",
		zap.String("policy", kind.String()),
		zap.Int64("hits", r.Hits),
		zap.Int64("evictions", r.Evictions),
	)
	return r, nil
}

// Result summarizes one policy's replay.
type Result struct {
	Policy    cachekit.Kind
	Accesses  int
	Hits      int64
	Misses    int64
	Evictions int64
	HitRate   float64 // Percentage.

	Windows      []float64 // Hit ratio per complete window.
	WindowMean   float64
	WindowStdDev float64 // Zero with fewer than two windows.
}
