package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/discochess/cachekit"
	"github.com/discochess/cachekit/internal/simulate"
	"github.com/discochess/cachekit/internal/stats"
	"github.com/discochess/cachekit/internal/stats/logger"
	"github.com/discochess/cachekit/internal/trace"
)

var simulateCmd = &cobra.Command{
	Use:   "simulate TRACE",
	Short: "Compare eviction policies on the keys of a trace",
	Long: `Replay the keys of a trace as read-through traffic (get, then put on
miss) against one cache per policy and report hits, misses, evictions and
the spread of the windowed hit rate.

Examples:
  cachekit simulate --capacity 64 workload.txt.zst
  cachekit simulate --policies lru,lfu --format markdown -o report.md gs://traces/web.txt.gz`,
	Args: cobra.ExactArgs(1),
	RunE: runSimulate,
}

var (
	simPolicies []string
	simCapacity int
	simWindow   int
	simFormat   string
	simOutput   string
)

func init() {
	names := make([]string, 0, len(cachekit.Kinds()))
	for _, k := range cachekit.Kinds() {
		names = append(names, k.String())
	}
	simulateCmd.Flags().StringSliceVarP(&simPolicies, "policies", "s", names, "policies to compare")
	simulateCmd.Flags().IntVarP(&simCapacity, "capacity", "c", cachekit.MaxItems, "maximum number of cached keys")
	simulateCmd.Flags().IntVarP(&simWindow, "window", "w", simulate.DefaultWindow, "accesses per hit-rate window")
	simulateCmd.Flags().StringVarP(&simFormat, "format", "f", string(simulate.FormatText), "output format: text, markdown")
	simulateCmd.Flags().StringVarP(&simOutput, "output", "o", "", "output file (default: stdout)")
	rootCmd.AddCommand(simulateCmd)
}

func runSimulate(cmd *cobra.Command, args []string) error {
	kinds := make([]cachekit.Kind, 0, len(simPolicies))
	for _, name := range simPolicies {
		kind, err := cachekit.ParseKind(name)
		if err != nil {
			return err
		}
		kinds = append(kinds, kind)
	}

	log, err := newLogger()
	if err != nil {
		return fmt.Errorf("creating logger: %w", err)
	}
	defer log.Sync()

	var collector stats.Collector = stats.Noop{}
	if verbose {
		collector = logger.New(log.Named("stats"))
	}

	ops, err := trace.Load(cmd.Context(), args[0])
	if err != nil {
		return fmt.Errorf("loading trace: %w", err)
	}
	keys := trace.Keys(ops)
	if len(keys) == 0 {
		return fmt.Errorf("no keys found in %s", args[0])
	}
	log.Debug("trace loaded", zap.String("uri", args[0]), zap.Int("ops", len(ops)), zap.Int("keys", len(keys)))

	sim, err := simulate.New(simCapacity, kinds,
		simulate.WithWindow(simWindow),
		simulate.WithStats(collector),
		simulate.WithLogger(log.Named("simulate")),
	)
	if err != nil {
		return err
	}
	results, err := sim.Run(keys)
	if err != nil {
		return fmt.Errorf("running simulation: %w", err)
	}

	var out io.Writer = cmd.OutOrStdout()
	if simOutput != "" {
		f, err := os.Create(simOutput)
		if err != nil {
			return fmt.Errorf("creating output file: %w", err)
		}
		defer f.Close()
		out = f
	}
	return simulate.WriteReport(out, simulate.Format(simFormat), simCapacity, results)
}
