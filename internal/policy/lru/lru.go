// Package lru implements least-recently-used eviction.
package lru

import (
	"fmt"

	"github.com/hashicorp/golang-lru/v2/simplelru"

	"github.com/discochess/cachekit/internal/policy"
)

// Compile-time check that Policy implements policy.Policy.
var _ policy.Policy[string] = (*Policy[string])(nil)

// Policy evicts the key that was read or written least recently.
type Policy[K comparable] struct {
	order *simplelru.LRU[K, struct{}]
}

// New creates an LRU policy for a cache holding at most capacity keys.
func New[K comparable](capacity int) (*Policy[K], error) {
	order, err := simplelru.NewLRU[K, struct{}](capacity, nil)
	if err != nil {
		return nil, fmt.Errorf("lru: %w", err)
	}
	return &Policy[K]{order: order}, nil
}

// Name returns "lru".
func (p *Policy[K]) Name() string { return "lru" }

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

// Victim returns the least recently used key.
func (p *Policy[K]) Victim() (K, bool) {
	key, _, ok := p.order.GetOldest()
	return key, ok
}

// Remove drops key from the access order.
func (p *Policy[K]) Remove(key K) {
	p.order.Remove(key)
}

// Order returns the access order, least recent first.
func (p *Policy[K]) Order() []K {
	return p.order.Keys()
}
