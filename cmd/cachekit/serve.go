package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/discochess/cachekit"
	"github.com/discochess/cachekit/internal/httpapi"
	promstats "github.com/discochess/cachekit/internal/stats/prometheus"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve a cache over HTTP",
	Long: `Serve a single cache of byte values over HTTP.

  GET /cache/{key}   value of key, 404 if not cached
  PUT /cache/{key}   store the request body under key
  GET /metrics       Prometheus metrics

Examples:
  cachekit serve --addr :8080 --policy lfu --capacity 1024`,
	Args: cobra.NoArgs,
	RunE: runServe,
}

var (
	serveAddr     string
	servePolicy   string
	serveCapacity int
)

const shutdownTimeout = 10 * time.Second

func init() {
	serveCmd.Flags().StringVar(&serveAddr, "addr", ":8080", "listen address")
	serveCmd.Flags().StringVarP(&servePolicy, "policy", "p", "lru", "eviction policy: unbounded, fifo, lifo, lru, mru, lfu")
	serveCmd.Flags().IntVarP(&serveCapacity, "capacity", "c", 1024, "maximum number of cached keys")
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, args []string) error {
	kind, err := cachekit.ParseKind(servePolicy)
	if err != nil {
		return err
	}

	log, err := newLogger()
	if err != nil {
		return fmt.Errorf("creating logger: %w", err)
	}
	defer log.Sync()

	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	collector := promstats.New(registry, promstats.WithConstLabels(prometheus.Labels{"policy": kind.String()}))

	cache, err := cachekit.New[string, []byte](
		cachekit.WithPolicy(kind),
		cachekit.WithCapacity(serveCapacity),
		cachekit.WithStats(collector),
		cachekit.WithLogger(log.Named("cache")),
	)
	if err != nil {
		return err
	}

	srv := &http.Server{
		Addr:              serveAddr,
		Handler:           httpapi.New(cache, registry, log.Named("http")),
		ReadHeaderTimeout: 5 * time.Second,
	}

	errc := make(chan error, 1)
	go func() {
		log.Info("listening", zap.String("addr", serveAddr), zap.Stringer("policy", kind), zap.Int("capacity", cache.Capacity()))
		errc <- srv.ListenAndServe()
	}()

	select {
	case err := <-errc:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("serving http: %w", err)
	case <-cmd.Context().Done():
	}

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	log.Info("shutting down")
	if err := srv.Shutdown(ctx); err != nil {
		return fmt.Errorf("shutting down http: %w", err)
	}
	return nil
}
