// Package lfu implements least-frequently-used eviction with a
// least-recently-used tie-break.
package lfu

import (
	"errors"

	"github.com/discochess/cachekit/internal/policy"
)

// Compile-time check that Policy implements policy.Policy.
var _ policy.Policy[string] = (*Policy[string])(nil)

// Policy counts uses per key and evicts the key with the lowest count.
// Keys with equal counts are ordered by the tick of their last use, which
// comes from a clock advanced on every insert, read and write, so the
// victim is always unique.
//
// The clock is a uint64; at one tick per nanosecond it would take
// centuries to wrap, so overflow is not handled.
type Policy[K comparable] struct {
	freq     map[K]uint64
	lastUsed map[K]uint64
	clock    uint64
}

// New creates an LFU policy for a cache holding at most capacity keys.
func New[K comparable](capacity int) (*Policy[K], error) {
	if capacity <= 0 {
		return nil, errors.New("lfu: must provide a positive size")
	}
	return &Policy[K]{
		freq:     make(map[K]uint64, capacity),
		lastUsed: make(map[K]uint64, capacity),
	}, nil
}

// Name returns "lfu".
func (p *Policy[K]) Name() string { return "lfu" }

// Inserted starts key at frequency 1.
func (p *Policy[K]) Inserted(key K) {
	p.freq[key] = 1
	p.touch(key)
}

// Read bumps key's frequency and recency.
func (p *Policy[K]) Read(key K) { p.use(key) }

// Written bumps key's frequency and recency.
func (p *Policy[K]) Written(key K) { p.use(key) }

// Victim returns the key with minimum (frequency, last-used tick).
func (p *Policy[K]) Victim() (K, bool) {
	var (
		victim K
		found  bool
		minF   uint64
		minT   uint64
	)
	for k, f := range p.freq {
		t := p.lastUsed[k]
		if !found || f < minF || (f == minF && t < minT) {
			victim, minF, minT, found = k, f, t, true
		}
	}
	return victim, found
}

// Remove drops key's frequency and recency together.
func (p *Policy[K]) Remove(key K) {
	delete(p.freq, key)
	delete(p.lastUsed, key)
}

// Frequency returns key's use count, or 0 if untracked.
func (p *Policy[K]) Frequency(key K) uint64 {
	return p.freq[key]
}

// Clock returns the current value of the usage clock.
func (p *Policy[K]) Clock() uint64 {
	return p.clock
}

func (p *Policy[K]) use(key K) {
	if _, ok := p.freq[key]; !ok {
		return
	}
	p.freq[key]++
	p.touch(key)
}

func (p *Policy[K]) touch(key K) {
	p.clock++
	p.lastUsed[key] = p.clock
}
