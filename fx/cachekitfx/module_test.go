package cachekitfx

import (
	"testing"

	"go.uber.org/fx"
	"go.uber.org/fx/fxtest"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"github.com/discochess/cachekit"
)

func TestModule(t *testing.T) {
	core, logs := observer.New(zap.InfoLevel)

	var cache *cachekit.Cache[string, []byte]
	app := fxtest.New(t,
		fx.Supply(zap.New(core)),
		fx.Supply(Config{Policy: "fifo", Capacity: 2}),
		Module,
		fx.Populate(&cache),
	)
	app.RequireStart()

	if got := cache.Policy(); got != cachekit.FIFO {
		t.Errorf("Policy() = %v, want %v", got, cachekit.FIFO)
	}
	if got := cache.Capacity(); got != 2 {
		t.Errorf("Capacity() = %d, want 2", got)
	}

	cache.Put("a", []byte("1"))
	cache.Put("b", []byte("2"))
	cache.Put("c", []byte("3"))

	app.RequireStop()

	discards := logs.FilterMessage("DISCARD").All()
	if len(discards) != 1 {
		t.Fatalf("got %d discard logs, want 1", len(discards))
	}
	if key := discards[0].ContextMap()["key"]; key != "a" {
		t.Errorf("discarded key = %v, want a", key)
	}
	if n := logs.FilterMessage("cache stopped").Len(); n != 1 {
		t.Errorf("got %d stop logs, want 1", n)
	}
}

func TestModule_Defaults(t *testing.T) {
	var cache *cachekit.Cache[string, []byte]
	app := fxtest.New(t,
		fx.Supply(zap.NewNop()),
		fx.Supply(Config{}),
		Module,
		fx.Populate(&cache),
	)
	app.RequireStart()
	defer app.RequireStop()

	if got := cache.Policy(); got != cachekit.LRU {
		t.Errorf("Policy() = %v, want %v", got, cachekit.LRU)
	}
	if got := cache.Capacity(); got != cachekit.MaxItems {
		t.Errorf("Capacity() = %d, want %d", got, cachekit.MaxItems)
	}
}

func TestModule_UnknownPolicy(t *testing.T) {
	app := fx.New(
		fx.NopLogger,
		fx.Supply(zap.NewNop()),
		fx.Supply(Config{Policy: "random"}),
		Module,
		fx.Invoke(func(*cachekit.Cache[string, []byte]) {}),
	)
	if err := app.Err(); err == nil {
		t.Error("fx.New() error = nil, want unknown policy error")
	}
}
