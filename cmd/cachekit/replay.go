package main

import (
	"encoding/json"
	"fmt"
	"io"
	"slices"

	"github.com/spf13/cobra"

	"github.com/discochess/cachekit"
	"github.com/discochess/cachekit/internal/trace"
)

var replayCmd = &cobra.Command{
	Use:   "replay TRACE",
	Short: "Run a trace against one cache and print what happens",
	Long: `Run every operation of a trace against a single cache.

Each get prints the value found (or None), each eviction prints
"DISCARD: KEY", and the final contents are printed sorted by key.
A key or value spelled None is absent: puts with an absent key or
value change nothing and gets of an absent key print None.

Examples:
  cachekit replay --policy fifo ops.txt
  cachekit replay --policy lfu --capacity 8 --json s3://traces/ops.txt.zst`,
	Args: cobra.ExactArgs(1),
	RunE: runReplay,
}

var (
	replayPolicy   string
	replayCapacity int
	replayJSON     bool
)

func init() {
	replayCmd.Flags().StringVarP(&replayPolicy, "policy", "p", "lru", "eviction policy: unbounded, fifo, lifo, lru, mru, lfu")
	replayCmd.Flags().IntVarP(&replayCapacity, "capacity", "c", cachekit.MaxItems, "maximum number of cached keys")
	replayCmd.Flags().BoolVar(&replayJSON, "json", false, "print events as JSON lines")
	rootCmd.AddCommand(replayCmd)
}

func runReplay(cmd *cobra.Command, args []string) error {
	kind, err := cachekit.ParseKind(replayPolicy)
	if err != nil {
		return err
	}

	logger, err := newLogger()
	if err != nil {
		return fmt.Errorf("creating logger: %w", err)
	}
	defer logger.Sync()

	ops, err := trace.Load(cmd.Context(), args[0])
	if err != nil {
		return fmt.Errorf("loading trace: %w", err)
	}

	cache, err := cachekit.New[string, *string](
		cachekit.WithPolicy(kind),
		cachekit.WithCapacity(replayCapacity),
		cachekit.WithLogger(logger.Named("cache")),
	)
	if err != nil {
		return err
	}

	return replay(cmd.OutOrStdout(), cache, ops, replayJSON)
}

// replayEvent is one JSON line of replay output.
type replayEvent struct {
	Event  string  `json:"event"`
	Line   int     `json:"line,omitempty"`
	Policy string  `json:"policy,omitempty"`
	Key    *string `json:"key"`
	Value  *string `json:"value,omitempty"`
	Hit    *bool   `json:"hit,omitempty"`
}

// replay applies ops to cache, writing one line per get and discard and
// then the final cache contents.
func replay(w io.Writer, cache *cachekit.Cache[string, *string], ops []trace.Op, asJSON bool) error {
	enc := json.NewEncoder(w)
	var werr error
	emit := func(text string, ev replayEvent) {
		if werr != nil {
			return
		}
		if asJSON {
			werr = enc.Encode(ev)
			return
		}
		_, werr = fmt.Fprintln(w, text)
	}

	cache.OnDiscard(func(d cachekit.Discard[string]) {
		key := d.Key
		emit("DISCARD: "+key, replayEvent{Event: "discard", Policy: d.Policy.String(), Key: &key})
	})

	for _, op := range ops {
		switch op.Kind {
		case trace.Put:
			// String keys cannot be nil, so an absent key is dropped here;
			// the cache would ignore it anyway.
			if op.KeyAbsent {
				continue
			}
			var value *string
			if !op.ValueAbsent {
				v := op.Value
				value = &v
			}
			cache.Put(op.Key, value)
		case trace.Get:
			ev := replayEvent{Event: "get", Line: op.Line}
			hit := false
			var value *string
			if !op.KeyAbsent {
				key := op.Key
				ev.Key = &key
				value, hit = cache.Get(op.Key)
			}
			ev.Hit = &hit
			ev.Value = value
			emit(display(value), ev)
		}
		if werr != nil {
			return werr
		}
	}

	keys := cache.Keys()
	slices.Sort(keys)
	if asJSON {
		for _, k := range keys {
			key := k
			v, _ := cache.Peek(k)
			emit("", replayEvent{Event: "resident", Key: &key, Value: v})
		}
		return werr
	}

	emit("Current cache:", replayEvent{})
	for _, k := range keys {
		v, _ := cache.Peek(k)
		emit(fmt.Sprintf("%s: %s", k, display(v)), replayEvent{})
	}
	return werr
}

func display(v *string) string {
	if v == nil {
		return trace.None
	}
	return *v
}
