// Package fifo implements first-in-first-out eviction.
package fifo

import (
	"fmt"

	"github.com/hashicorp/golang-lru/v2/simplelru"

	"github.com/discochess/cachekit/internal/policy"
)

// Compile-time check that Policy implements policy.Policy.
var _ policy.Policy[string] = (*Policy[string])(nil)

// Policy evicts the oldest admitted key. Reads and overwrites never
// change the admission order.
type Policy[K comparable] struct {
	queue *simplelru.LRU[K, struct{}]
}

// New creates a FIFO policy for a cache holding at most capacity keys.
func New[K comparable](capacity int) (*Policy[K], error) {
	q, err := simplelru.NewLRU[K, struct{}](capacity, nil)
	if err != nil {
		return nil, fmt.Errorf("fifo: %w", err)
	}
	return &Policy[K]{queue: q}, nil
}

// Name returns "fifo".
func (p *Policy[K]) Name() string { return "fifo" }

// Inserted appends key to the back of the queue.
func (p *Policy[K]) Inserted(key K) {
	// Contains does not promote, so a re-admitted key keeps its slot.
	if p.queue.Contains(key) {
		return
	}
	p.queue.Add(key, struct{}{})
}

// Read is a no-op.
func (p *Policy[K]) Read(key K) {}

// Written is a no-op; overwriting a key keeps its admission slot.
func (p *Policy[K]) Written(key K) {}

// Victim returns the front of the queue.
func (p *Policy[K]) Victim() (K, bool) {
	key, _, ok := p.queue.GetOldest()
	return key, ok
}

// Remove drops key from the queue.
func (p *Policy[K]) Remove(key K) {
	p.queue.Remove(key)
}

// Order returns the admission order, oldest first.
func (p *Policy[K]) Order() []K {
	return p.queue.Keys()
}
