package httpapi

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/discochess/cachekit"
	"github.com/discochess/cachekit/internal/stats"
	promstats "github.com/discochess/cachekit/internal/stats/prometheus"
)

func newServer(t *testing.T) (*httptest.Server, *cachekit.Cache[string, []byte]) {
	t.Helper()
	reg := prometheus.NewRegistry()
	cache, err := cachekit.New[string, []byte](
		cachekit.WithPolicy(cachekit.FIFO),
		cachekit.WithCapacity(2),
		cachekit.WithStats(promstats.New(reg)),
	)
	if err != nil {
		t.Fatalf("cachekit.New() error = %v", err)
	}
	srv := httptest.NewServer(New(cache, reg, nil))
	t.Cleanup(srv.Close)
	return srv, cache
}

func do(t *testing.T, method, url, body string) (int, string) {
	t.Helper()
	req, err := http.NewRequest(method, url, strings.NewReader(body))
	if err != nil {
		t.Fatalf("NewRequest() error = %v", err)
	}
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("%s %s error = %v", method, url, err)
	}
	defer resp.Body.Close()
	data, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatalf("reading body: %v", err)
	}
	return resp.StatusCode, string(data)
}

func TestHandler_PutGet(t *testing.T) {
	srv, _ := newServer(t)

	if code, _ := do(t, http.MethodPut, srv.URL+"/cache/A", "Hello"); code != http.StatusNoContent {
		t.Errorf("PUT status = %d, want %d", code, http.StatusNoContent)
	}

	code, body := do(t, http.MethodGet, srv.URL+"/cache/A", "")
	if code != http.StatusOK || body != "Hello" {
		t.Errorf("GET = %d %q, want 200 %q", code, body, "Hello")
	}

	if code, _ := do(t, http.MethodGet, srv.URL+"/cache/missing", ""); code != http.StatusNotFound {
		t.Errorf("GET missing status = %d, want %d", code, http.StatusNotFound)
	}
}

func TestHandler_EmptyPutIgnored(t *testing.T) {
	srv, cache := newServer(t)

	if code, _ := do(t, http.MethodPut, srv.URL+"/cache/A", ""); code != http.StatusNoContent {
		t.Errorf("PUT status = %d, want %d", code, http.StatusNoContent)
	}
	if cache.Len() != 0 {
		t.Errorf("Len() = %d, want 0", cache.Len())
	}
}

func TestHandler_Eviction(t *testing.T) {
	srv, _ := newServer(t)

	for _, k := range []string{"A", "B", "C"} {
		do(t, http.MethodPut, srv.URL+"/cache/"+k, "v"+k)
	}

	if code, _ := do(t, http.MethodGet, srv.URL+"/cache/A", ""); code != http.StatusNotFound {
		t.Errorf("GET evicted key status = %d, want %d", code, http.StatusNotFound)
	}

	_, metrics := do(t, http.MethodGet, srv.URL+"/metrics", "")
	if !strings.Contains(metrics, stats.MetricEvictions+" 1") {
		t.Errorf("metrics missing %s 1:\n%s", stats.MetricEvictions, metrics)
	}
}

func TestHandler_ValueTooLarge(t *testing.T) {
	srv, cache := newServer(t)

	big := strings.Repeat("x", DefaultMaxValueBytes+1)
	if code, _ := do(t, http.MethodPut, srv.URL+"/cache/A", big); code != http.StatusRequestEntityTooLarge {
		t.Errorf("PUT status = %d, want %d", code, http.StatusRequestEntityTooLarge)
	}
	if cache.Len() != 0 {
		t.Errorf("Len() = %d, want 0", cache.Len())
	}
}

func TestHandler_NoMetrics(t *testing.T) {
	cache, err := cachekit.New[string, []byte]()
	if err != nil {
		t.Fatalf("cachekit.New() error = %v", err)
	}
	srv := httptest.NewServer(New(cache, nil, nil))
	defer srv.Close()

	if code, _ := do(t, http.MethodGet, srv.URL+"/metrics", ""); code != http.StatusNotFound {
		t.Errorf("GET /metrics status = %d, want %d", code, http.StatusNotFound)
	}
}
