// Package policy defines the eviction policy interface shared by all cache variants.
//
// A Policy owns the per-key bookkeeping (admission order, access order,
// frequencies) for the keys resident in a cache's table. The cache calls the
// hooks as it mutates the table and asks for a Victim when a new key arrives
// at capacity. Policies never touch the table themselves.
package policy

// Policy tracks key order and chooses eviction victims.
type Policy[K comparable] interface {
	// Name returns the policy's short name (e.g. "lru").
	Name() string

	// Inserted records that key was admitted to the table.
	Inserted(key K)

	// Read records a successful lookup of a resident key.
	Read(key K)

	// Written records an overwrite of a resident key.
	Written(key K)

	// Victim returns the key to evict next, or false if the policy
	// never evicts or tracks no keys. It does not mutate state.
	Victim() (K, bool)

	// Remove forgets key. Unknown keys are ignored.
	Remove(key K)
}
