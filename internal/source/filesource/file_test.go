package filesource

import (
	"context"
	"errors"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/discochess/cachekit/internal/source"
)

func TestSource_Open(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "trace.txt"), []byte("get A\n"), 0o644); err != nil {
		t.Fatalf("WriteFile() error = %v", err)
	}

	s := New(dir)
	defer s.Close()

	rc, err := s.Open(context.Background(), "trace.txt")
	if err != nil {
		t.Fatalf("Open() error = %v", err)
	}
	defer rc.Close()

	data, err := io.ReadAll(rc)
	if err != nil {
		t.Fatalf("ReadAll() error = %v", err)
	}
	if string(data) != "get A\n" {
		t.Errorf("Open() data = %q, want %q", data, "get A\n")
	}
}

func TestSource_NotFound(t *testing.T) {
	s := New(t.TempDir())

	_, err := s.Open(context.Background(), "missing.txt")
	if !errors.Is(err, source.ErrNotFound) {
		t.Errorf("Open() error = %v, want ErrNotFound", err)
	}
}

func TestSource_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := New("").Open(ctx, "anything")
	if !errors.Is(err, context.Canceled) {
		t.Errorf("Open() error = %v, want context.Canceled", err)
	}
}
