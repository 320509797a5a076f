package main

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	// Global flags.
	verbose bool
)

var rootCmd = &cobra.Command{
	Use:   "cachekit",
	Short: "Replay and compare cache eviction policies",
	Long: `cachekit drives a bounded key/value cache with one of six eviction
policies: unbounded, fifo, lifo, lru, mru and lfu.

Traces are text files with one operation per line ("put KEY VALUE" or
"get KEY") and may be zstd or gzip compressed. They can be read from local
paths, s3://bucket/key or gs://bucket/key.

Examples:
  # Replay a trace against an LFU cache of 4 items
  cachekit replay --policy lfu ops.txt

  # Generate a skewed workload and compare every policy on it
  cachekit gen --ops 100000 --keys 1000 -o workload.txt.zst
  cachekit simulate --capacity 64 workload.txt.zst

  # Serve a cache over HTTP with Prometheus metrics
  cachekit serve --addr :8080 --policy lru --capacity 1024`,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging to stderr")
}

// newLogger returns a development logger when --verbose is set and a
// no-op logger otherwise.
func newLogger() (*zap.Logger, error) {
	if !verbose {
		return zap.NewNop(), nil
	}
	return zap.NewDevelopment()
}
