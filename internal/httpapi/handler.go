// Package httpapi exposes a string-keyed cache over HTTP.
package httpapi

import (
	"io"
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
)

// DefaultMaxValueBytes caps the size of a PUT body.
const DefaultMaxValueBytes = 1 << 20

// Cache is the subset of *cachekit.Cache[string, []byte] the handler uses.
type Cache interface {
	Put(key string, value []byte)
	Get(key string) ([]byte, bool)
}

// Handler routes cache requests:
//
//	GET /cache/{key}   200 with the stored bytes, 404 if not resident
//	PUT /cache/{key}   204; an empty body is ignored like any absent value
//	GET /metrics       Prometheus metrics from the given gatherer
type Handler struct {
	cache    Cache
	maxBytes int64
	logger   *zap.Logger
	mux      *http.ServeMux
}

// Compile-time check that Handler implements http.Handler.
var _ http.Handler = (*Handler)(nil)

// New creates a Handler. A nil gatherer disables /metrics.
func New(cache Cache, gatherer prometheus.Gatherer, logger *zap.Logger) *Handler {
	if logger == nil {
		logger = zap.NewNop()
	}
	h := &Handler{
		cache:    cache,
		maxBytes: DefaultMaxValueBytes,
		logger:   logger,
		mux:      http.NewServeMux(),
	}
	h.mux.HandleFunc("GET /cache/{key}", h.get)
	h.mux.HandleFunc("PUT /cache/{key}", h.put)
	if gatherer != nil {
		h.mux.Handle("GET /metrics", promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{}))
	}
	return h
}

// ServeHTTP implements http.Handler.
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	h.mux.ServeHTTP(w, r)
}

func (h *Handler) get(w http.ResponseWriter, r *http.Request) {
	key := r.PathValue("key")
	value, ok := h.cache.Get(key)
	if !ok {
		http.Error(w, "not found", http.StatusNotFound)
		return
	}
	w.Header().Set("Content-Type", "application/octet-stream")
	w.Write(value)
}

func (h *Handler) put(w http.ResponseWriter, r *http.Request) {
	key := r.PathValue("key")
	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, h.maxBytes))
	if err != nil {
		h.logger.Warn("reading request body", zap.String("key", key), zap.Error(err))
		http.Error(w, "value too large", http.StatusRequestEntityTooLarge)
		return
	}
	if len(body) > 0 {
		h.cache.Put(key, body)
	}
	w.WriteHeader(http.StatusNoContent)
}
