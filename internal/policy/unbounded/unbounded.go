// Package unbounded implements a policy that never evicts.
package unbounded

import "github.com/discochess/cachekit/internal/policy"

// Compile-time check that Policy implements policy.Policy.
var _ policy.Policy[string] = (*Policy[string])(nil)

// Policy keeps every key forever.
type Policy[K comparable] struct{}

// New returns an unbounded policy.
func New[K comparable]() *Policy[K] {
	return &Policy[K]{}
}

func (p *Policy[K]) Name() string   { return "unbounded" }
func (p *Policy[K]) Inserted(key K) {}
func (p *Policy[K]) Read(key K)     {}
func (p *Policy[K]) Written(key K)  {}
func (p *Policy[K]) Remove(key K)   {}

// Victim always reports false.
func (p *Policy[K]) Victim() (K, bool) {
	var zero K
	return zero, false
}
