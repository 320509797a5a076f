package main

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/discochess/cachekit"
	"github.com/discochess/cachekit/internal/trace"
)

const lfuTrace = `
# two reads of A, one of B, then overflow
put A Apple
put B Bear
put C Car
put D Dog
get A
get A
get B
put E Egg
get C
get None
put F None
`

func newReplayCache(t *testing.T, kind cachekit.Kind) *cachekit.Cache[string, *string] {
	t.Helper()
	c, err := cachekit.New[string, *string](cachekit.WithPolicy(kind), cachekit.WithCapacity(4))
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	return c
}

func TestReplay_Text(t *testing.T) {
	ops, err := trace.Parse(strings.NewReader(lfuTrace))
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}

	cache := newReplayCache(t, cachekit.LFU)
	var buf bytes.Buffer
	if err := replay(&buf, cache, ops, false); err != nil {
		t.Fatalf("replay() error = %v", err)
	}

	want := strings.Join([]string{
		"Apple",
		"Apple",
		"Bear",
		"DISCARD: C",
		"None",
		"None",
		"Current cache:",
		"A: Apple",
		"B: Bear",
		"D: Dog",
		"E: Egg",
		"",
	}, "\n")
	if got := buf.String(); got != want {
		t.Errorf("replay() output:\n%s\nwant:\n%s", got, want)
	}

	// Printing the final contents must not count as reads.
	if got, want := cache.Stats(), (cachekit.Stats{Hits: 3, Misses: 1, Evictions: 1, Size: 4}); got != want {
		t.Errorf("Stats() = %+v, want %+v", got, want)
	}
}

func TestReplay_JSON(t *testing.T) {
	ops := []trace.Op{
		trace.PutOp("A", "1"),
		trace.PutOp("B", "2"),
		trace.PutOp("C", "3"),
		trace.GetOp("A"),
	}
	c, err := cachekit.New[string, *string](cachekit.WithPolicy(cachekit.FIFO), cachekit.WithCapacity(2))
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	var buf bytes.Buffer
	if err := replay(&buf, c, ops, true); err != nil {
		t.Fatalf("replay() error = %v", err)
	}

	var events []replayEvent
	dec := json.NewDecoder(&buf)
	for dec.More() {
		var ev replayEvent
		if err := dec.Decode(&ev); err != nil {
			t.Fatalf("Decode() error = %v", err)
		}
		events = append(events, ev)
	}

	wantEvents := []string{"discard", "get", "resident", "resident"}
	if len(events) != len(wantEvents) {
		t.Fatalf("got %d events, want %d", len(events), len(wantEvents))
	}
	for i, want := range wantEvents {
		if events[i].Event != want {
			t.Errorf("events[%d].Event = %q, want %q", i, events[i].Event, want)
		}
	}
	if events[0].Policy != "fifo" || *events[0].Key != "A" {
		t.Errorf("discard = %+v, want policy fifo key A", events[0])
	}
	if *events[1].Hit || events[1].Value != nil {
		t.Errorf("get A after eviction = %+v, want miss", events[1])
	}
	if *events[2].Key != "B" || *events[2].Value != "2" {
		t.Errorf("first resident = %+v, want B=2", events[2])
	}
}
