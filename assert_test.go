package cachekit

import (
	"fmt"
	"strings"
	"testing"

	"go.uber.org/zap"

	"github.com/discochess/cachekit/internal/policy"
	"github.com/discochess/cachekit/internal/stats"
	"github.com/discochess/cachekit/internal/table"
)

// stubPolicy always proposes the same victim.
type stubPolicy struct {
	victim string
	ok     bool
}

var _ policy.Policy[string] = (*stubPolicy)(nil)

func (p *stubPolicy) Name() string           { return "stub" }
func (p *stubPolicy) Inserted(string)        {}
func (p *stubPolicy) Read(string)            {}
func (p *stubPolicy) Written(string)         {}
func (p *stubPolicy) Remove(string)          {}
func (p *stubPolicy) Victim() (string, bool) { return p.victim, p.ok }

func newStubCache(capacity int, p *stubPolicy, resident ...string) *Cache[string, int] {
	c := &Cache[string, int]{
		kind:     LRU,
		capacity: capacity,
		stats:    stats.NewNoop(),
		logger:   zap.NewNop(),
		table:    table.New[string, int](capacity),
		policy:   p,
	}
	for i, k := range resident {
		c.table.Insert(k, i)
	}
	return c
}

// putPanic runs Put and returns the recovered panic message, if any.
func putPanic(c *Cache[string, int], key string) (msg string) {
	defer func() {
		if r := recover(); r != nil {
			msg = fmt.Sprint(r)
		}
	}()
	c.Put(key, 1)
	return ""
}

func TestPut_BrokenPolicyPanics(t *testing.T) {
	tests := []struct {
		name     string
		capacity int
		policy   *stubPolicy
		resident []string
		want     string
	}{
		{
			name:     "no victim at capacity",
			capacity: 2,
			policy:   &stubPolicy{ok: false},
			resident: []string{"a", "b"},
			want:     "chose no resident victim",
		},
		{
			name:     "victim not resident",
			capacity: 2,
			policy:   &stubPolicy{victim: "z", ok: true},
			resident: []string{"a", "b"},
			want:     "chose no resident victim",
		},
		{
			name:     "table over capacity after put",
			capacity: 2,
			policy:   &stubPolicy{victim: "a", ok: true},
			resident: []string{"a", "b", "c"},
			want:     "cache holds 3 keys, capacity 2",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := newStubCache(tt.capacity, tt.policy, tt.resident...)
			got := putPanic(c, "new")
			if got == "" {
				t.Fatal("Put() did not panic")
			}
			if !strings.Contains(got, tt.want) {
				t.Errorf("Put() panic = %q, want it to contain %q", got, tt.want)
			}
		})
	}
}

func TestPut_WorkingStubDoesNotPanic(t *testing.T) {
	c := newStubCache(2, &stubPolicy{victim: "a", ok: true}, "a", "b")
	if msg := putPanic(c, "new"); msg != "" {
		t.Fatalf("Put() panicked: %s", msg)
	}
	if _, ok := c.Get("a"); ok {
		t.Error("Get(\"a\") ok = true, want evicted")
	}
	if got := c.Len(); got != 2 {
		t.Errorf("Len() = %d, want 2", got)
	}
}
