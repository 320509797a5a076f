// Package lifo implements last-in-first-out eviction.
//
// Only the single most recent insertion is remembered, not a full stack:
// after the remembered key is evicted the pointer moves to whichever key is
// inserted next, so repeated overflows always evict the previous newcomer.
package lifo

import "github.com/discochess/cachekit/internal/policy"

// Compile-time check that Policy implements policy.Policy.
var _ policy.Policy[string] = (*Policy[string])(nil)

// Policy evicts the most recently inserted or overwritten key.
type Policy[K comparable] struct {
	last    K
	hasLast bool
}

// New creates a LIFO policy.
func New[K comparable]() *Policy[K] {
	return &Policy[K]{}
}

// Name returns "lifo".
func (p *Policy[K]) Name() string { return "lifo" }

// Inserted points the last-in marker at key.
func (p *Policy[K]) Inserted(key K) { p.mark(key) }

// Read is a no-op.
func (p *Policy[K]) Read(key K) {}

// Written points the last-in marker at key.
func (p *Policy[K]) Written(key K) { p.mark(key) }

// Victim returns the last-in key, if any.
func (p *Policy[K]) Victim() (K, bool) {
	return p.last, p.hasLast
}

// Remove clears the marker when it points at key.
func (p *Policy[K]) Remove(key K) {
	if p.hasLast && p.last == key {
		var zero K
		p.last, p.hasLast = zero, false
	}
}

func (p *Policy[K]) mark(key K) {
	p.last, p.hasLast = key, true
}
