// Package mru implements most-recently-used eviction.
package mru

import (
	"fmt"

	"github.com/hashicorp/golang-lru/v2/simplelru"

	"github.com/discochess/cachekit/internal/policy"
)

// Compile-time check that Policy implements policy.Policy.
var _ policy.Policy[string] = (*Policy[string])(nil)

// Policy evicts the key that was read or written most recently.
type Policy[K comparable] struct {
	order *simplelru.LRU[K, struct{}]
}

// New creates an MRU policy for a cache holding at most capacity keys.
func New[K comparable](capacity int) (*Policy[K], error) {
	order, err := simplelru.NewLRU[K, struct{}](capacity, nil)
	if err != nil {
		return nil, fmt.Errorf("mru: %w", err)
	}
	return &Policy[K]{order: order}, nil
}

// Name returns "mru".
func (p *Policy[K]) Name() string { return "mru" }

// Inserted places key at the most-recent end.
func (p *Policy[K]) Inserted(key K) {
	p.order.Add(key, struct{}{})
}

// Read moves key to the most-recent end.
func (p *Policy[K]) Read(key K) {
	p.order.Get(key)
}

// Written moves key to the most-recent end.
func (p *Policy[K]) Written(key K) {
	p.order.Get(key)
}

// Victim returns the most recently used key.
func (p *Policy[K]) Victim() (K, bool) {
	// simplelru only exposes the oldest end directly; Keys is oldest first
	// and bounded by capacity.
	keys := p.order.Keys()
	if len(keys) == 0 {
		var zero K
		return zero, false
	}
	return keys[len(keys)-1], true
}

// Remove drops key from the access order.
func (p *Policy[K]) Remove(key K) {
	p.order.Remove(key)
}

// Order returns the access order, least recent first.
func (p *Policy[K]) Order() []K {
	return p.order.Keys()
}
