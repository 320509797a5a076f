package cachekit

import (
	"fmt"
	"strings"

	"github.com/discochess/cachekit/internal/policy"
	"github.com/discochess/cachekit/internal/policy/fifo"
	"github.com/discochess/cachekit/internal/policy/lfu"
	"github.com/discochess/cachekit/internal/policy/lifo"
	"github.com/discochess/cachekit/internal/policy/lru"
	"github.com/discochess/cachekit/internal/policy/mru"
	"github.com/discochess/cachekit/internal/policy/unbounded"
)

// Kind names an eviction policy.
type Kind string

// Supported eviction policies.
const (
	// Unbounded never evicts and ignores the configured capacity.
	Unbounded Kind = "unbounded"
	// FIFO evicts the oldest inserted key.
	FIFO Kind = "fifo"
	// LIFO evicts the most recently inserted or overwritten key.
	LIFO Kind = "lifo"
	// LRU evicts the least recently read or written key.
	LRU Kind = "lru"
	// MRU evicts the most recently read or written key.
	MRU Kind = "mru"
	// LFU evicts the least frequently used key, least recently used first on ties.
	LFU Kind = "lfu"
)

// Kinds returns every supported policy in a stable order.
func Kinds() []Kind {
	return []Kind{Unbounded, FIFO, LIFO, LRU, MRU, LFU}
}

// ParseKind parses a policy name, ignoring case and surrounding space.
func ParseKind(s string) (Kind, error) {
	k := Kind(strings.ToLower(strings.TrimSpace(s)))
	for _, known := range Kinds() {
		if k == known {
			return k, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownPolicy, s)
}

// String implements fmt.Stringer.
func (k Kind) String() string {
	return string(k)
}

// Bounded reports whether the policy enforces a capacity.
func (k Kind) Bounded() bool {
	return k != Unbounded
}

// newPolicy builds the tracker for kind.
func newPolicy[K comparable](kind Kind, capacity int) (policy.Policy[K], error) {
	switch kind {
	case Unbounded:
		return unbounded.New[K](), nil
	case FIFO:
		return fifo.New[K](capacity)
	case LIFO:
		return lifo.New[K](), nil
	case LRU:
		return lru.New[K](capacity)
	case MRU:
		return mru.New[K](capacity)
	case LFU:
		return lfu.New[K](capacity)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownPolicy, string(kind))
	}
}
