// Package cachekitfx provides an fx module for a string-keyed byte cache.
package cachekitfx

import (
	"context"

	"go.uber.org/fx"
	"go.uber.org/zap"

	"github.com/discochess/cachekit"
	"github.com/discochess/cachekit/internal/stats"
	"github.com/discochess/cachekit/internal/stats/logger"
)

// Config holds configuration for the cache.
type Config struct {
	// Policy names the eviction policy. Default is lru.
	Policy string

	// Capacity is the maximum number of cached keys.
	// Default is cachekit.MaxItems. Ignored for the unbounded policy.
	Capacity int
}

// Module provides a *cachekit.Cache[string, []byte].
// Requires a *zap.Logger and a Config to be provided.
var Module = fx.Module("cachekit",
	fx.Provide(
		newStatsCollector,
		newCache,
	),
)

func newStatsCollector(log *zap.Logger) stats.Collector {
	return logger.New(log.Named("cachekit.stats"))
}

// Params holds dependencies for creating the cache.
type Params struct {
	fx.In

	Config    Config
	Logger    *zap.Logger
	Collector stats.Collector
	Lifecycle fx.Lifecycle
}

// Result holds the provided cache.
type Result struct {
	fx.Out

	Cache *cachekit.Cache[string, []byte]
}

func newCache(p Params) (Result, error) {
	kind := cachekit.LRU
	if p.Config.Policy != "" {
		var err error
		if kind, err = cachekit.ParseKind(p.Config.Policy); err != nil {
			return Result{}, err
		}
	}
	capacity := p.Config.Capacity
	if capacity <= 0 {
		capacity = cachekit.MaxItems
	}

	log := p.Logger.Named("cachekit")
	cache, err := cachekit.New[string, []byte](
		cachekit.WithPolicy(kind),
		cachekit.WithCapacity(capacity),
		cachekit.WithStats(p.Collector),
		cachekit.WithLogger(log),
	)
	if err != nil {
		return Result{}, err
	}

	cache.OnDiscard(func(d cachekit.Discard[string]) {
		log.Info("DISCARD", zap.Stringer("policy", d.Policy), zap.String("key", d.Key))
	})

	p.Lifecycle.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			log.Info("cache ready", zap.Stringer("policy", kind), zap.Int("capacity", cache.Capacity()))
			return nil
		},
		OnStop: func(ctx context.Context) error {
			s := cache.Stats()
			log.Info("cache stopped",
				zap.Int64("hits", s.Hits),
				zap.Int64("misses", s.Misses),
				zap.Int64("evictions", s.Evictions),
				zap.Int("size", s.Size),
			)
			return nil
		},
	})

	return Result{Cache: cache}, nil
}
