// Package cachekit provides a bounded in-memory key/value cache with
// pluggable eviction policies: Unbounded, FIFO, LIFO, LRU, MRU and LFU
// (least frequently used, ties broken by least recent use).
//
// Example usage:
//
//	cache, err := cachekit.New[string, string](
//	    cachekit.WithPolicy(cachekit.LFU),
//	    cachekit.WithCapacity(4),
//	)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	cache.OnDiscard(func(d cachekit.Discard[string]) {
//	    fmt.Printf("DISCARD: %s\n", d.Key)
//	})
//
//	cache.Put("A", "Hello")
//	if v, ok := cache.Get("A"); ok {
//	    fmt.Println(v)
//	}
package cachekit

import (
	"errors"
	"fmt"
	"sync"
	"sync/atomic"

	"go.uber.org/zap"

	"github.com/discochess/cachekit/internal/policy"
	"github.com/discochess/cachekit/internal/stats"
	"github.com/discochess/cachekit/internal/table"
)

// Sentinel errors for well-defined error conditions.
var (
	// ErrInvalidCapacity indicates a bounded policy was configured with a
	// capacity below one.
	ErrInvalidCapacity = errors.New("cachekit: capacity must be at least 1")

	// ErrUnknownPolicy indicates an unsupported policy name.
	ErrUnknownPolicy = errors.New("cachekit: unknown policy")
)

// Discard describes a key evicted to make room for a new one.
type Discard[K comparable] struct {
	Policy Kind
	Key    K
}

// Cache is a fixed-capacity key/value cache.
//
// Keys and values that are nil (nil interfaces, pointers, maps, slices,
// channels or funcs) are treated as absent: Put ignores them and Get
// reports a miss. Put and Get never fail.
//
// A Cache is safe for concurrent use by multiple goroutines. The table and
// the policy's bookkeeping are updated together under one lock.
type Cache[K comparable, V any] struct {
	kind     Kind
	capacity int
	stats    stats.Collector
	logger   *zap.Logger

	mu     sync.Mutex
	table  *table.Table[K, V]
	policy policy.Policy[K]

	listenersMu sync.RWMutex
	listeners   []func(Discard[K])

	hits      atomic.Int64
	misses    atomic.Int64
	evictions atomic.Int64
}

// New creates a new Cache with the given options.
// Without options the cache uses LRU eviction and holds MaxItems keys.
func New[K comparable, V any](opts ...Option) (*Cache[K, V], error) {
	cfg := defaultOptions()
	for _, opt := range opts {
		opt.apply(&cfg)
	}

	if cfg.kind.Bounded() && cfg.capacity < 1 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidCapacity, cfg.capacity)
	}
	if !cfg.kind.Bounded() {
		cfg.capacity = 0
	}

	p, err := newPolicy[K](cfg.kind, cfg.capacity)
	if err != nil {
		return nil, fmt.Errorf("creating %s policy: %w", cfg.kind, err)
	}

	c := &Cache[K, V]{
		kind:     cfg.kind,
		capacity: cfg.capacity,
		stats:    cfg.stats,
		logger:   cfg.logger,
		table:    table.New[K, V](cfg.capacity),
		policy:   p,
	}

	c.logger.Debug("cache initialized",
		zap.String("policy", p.Name()),
		zap.Int("capacity", c.capacity),
	)

	return c, nil
}

// Put stores value under key.
//
// Overwriting a resident key never evicts. Adding a new key to a full cache
// first evicts exactly one victim chosen by the policy and notifies every
// OnDiscard subscriber before Put returns.
func (c *Cache[K, V]) Put(key K, value V) {
	if isAbsent(key) || isAbsent(value) {
		return
	}

	c.mu.Lock()
	victim, evicted := c.put(key, value)
	size := c.table.Len()
	c.mu.Unlock()

	c.stats.IncCounter(stats.MetricPuts, 1)
	c.stats.SetGauge(stats.MetricSize, int64(size))

	if evicted {
		c.discard(victim)
	}
}

// put applies a write with c.mu held and reports the evicted key, if any.
func (c *Cache[K, V]) put(key K, value V) (victim K, evicted bool) {
	if c.table.Contains(key) {
		c.table.Insert(key, value)
		c.policy.Written(key)
		return victim, false
	}

	if c.kind.Bounded() && c.table.Len() >= c.capacity {
		v, ok := c.policy.Victim()
		if !ok || !c.table.Contains(v) {
			panic(fmt.Sprintf("cachekit: %s policy chose no resident victim at capacity %d", c.kind, c.capacity))
		}
		c.table.Remove(v)
		c.policy.Remove(v)
		victim, evicted = v, true
	}

	c.table.Insert(key, value)
	c.policy.Inserted(key)

	if c.kind.Bounded() && c.table.Len() > c.capacity {
		panic(fmt.Sprintf("cachekit: %s cache holds %d keys, capacity %d", c.kind, c.table.Len(), c.capacity))
	}
	return victim, evicted
}

// Get returns the value stored under key.
// The second result is false if key is absent or not resident.
func (c *Cache[K, V]) Get(key K) (V, bool) {
	if isAbsent(key) {
		var zero V
		return zero, false
	}

	c.mu.Lock()
	value, ok := c.table.Get(key)
	if ok {
		c.policy.Read(key)
	}
	c.mu.Unlock()

	c.stats.IncCounter(stats.MetricGets, 1)
	if ok {
		c.hits.Add(1)
		c.stats.IncCounter(stats.MetricHits, 1)
	} else {
		c.misses.Add(1)
		c.stats.IncCounter(stats.MetricMisses, 1)
	}
	return value, ok
}

// Peek returns the value stored under key without running the policy's
// read hook or counting a hit or miss.
func (c *Cache[K, V]) Peek(key K) (V, bool) {
	if isAbsent(key) {
		var zero V
		return zero, false
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.table.Get(key)
}

// OnDiscard subscribes fn to eviction events. Subscribers run synchronously
// on the goroutine that called Put, outside the cache lock, in the order
// they subscribed.
func (c *Cache[K, V]) OnDiscard(fn func(Discard[K])) {
	if fn == nil {
		return
	}
	c.listenersMu.Lock()
	c.listeners = append(c.listeners, fn)
	c.listenersMu.Unlock()
}

// Len returns the number of resident keys.
func (c *Cache[K, V]) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.table.Len()
}

// Keys returns a snapshot of the resident keys in no particular order.
func (c *Cache[K, V]) Keys() []K {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.table.Keys()
}

// Capacity returns the maximum number of resident keys, or 0 when the
// policy is Unbounded.
func (c *Cache[K, V]) Capacity() int {
	return c.capacity
}

// Policy returns the eviction policy in use.
func (c *Cache[K, V]) Policy() Kind {
	return c.kind
}

// Stats returns cache statistics.
func (c *Cache[K, V]) Stats() Stats {
	return Stats{
		Hits:      c.hits.Load(),
		Misses:    c.misses.Load(),
		Evictions: c.evictions.Load(),
		Size:      c.Len(),
	}
}

// discard records an eviction and notifies subscribers.
func (c *Cache[K, V]) discard(key K) {
	c.evictions.Add(1)
	c.stats.IncCounter(stats.MetricEvictions, 1)
	c.logger.Debug("discard",
		zap.String("policy", c.kind.String()),
		zap.Any("key", key),
	)

	c.listenersMu.RLock()
	listeners := c.listeners
	c.listenersMu.RUnlock()

	event := Discard[K]{Policy: c.kind, Key: key}
	for _, fn := range listeners {
		fn(event)
	}
}
