package logger

import (
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/discochess/cachekit/internal/stats"
)

func TestCollector_LogsMetrics(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	c := New(zap.New(core))

	c.IncCounter(stats.MetricEvictions, 2)
	c.SetGauge(stats.MetricSize, 4)
	c.ObserveHistogram(stats.MetricWindowHitRate, 0.5)

	entries := logs.All()
	if len(entries) != 3 {
		t.Fatalf("logged %d entries, want 3", len(entries))
	}

	tests := []struct {
		msg    string
		metric string
	}{
		{"counter", stats.MetricEvictions},
		{"gauge", stats.MetricSize},
		{"histogram", stats.MetricWindowHitRate},
	}
	for i, tt := range tests {
		e := entries[i]
		if e.Message != tt.msg {
			t.Errorf("entry %d message = %q, want %q", i, e.Message, tt.msg)
		}
		if got := e.ContextMap()["metric"]; got != tt.metric {
			t.Errorf("entry %d metric = %v, want %q", i, got, tt.metric)
		}
	}
}

func TestCollector_Level(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)

	New(zap.New(core)).IncCounter(stats.MetricPuts, 1)
	if logs.Len() != 0 {
		t.Errorf("debug collector logged %d entries at info level, want 0", logs.Len())
	}

	NewAtLevel(zap.New(core), zapcore.InfoLevel).IncCounter(stats.MetricPuts, 1)
	if logs.Len() != 1 {
		t.Errorf("info collector logged %d entries, want 1", logs.Len())
	}
}

func TestNew_NilLogger(t *testing.T) {
	c := New(nil)
	c.IncCounter(stats.MetricPuts, 1) // Must not panic.
}
