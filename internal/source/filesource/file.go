// Package filesource reads traces from the local filesystem.
package filesource

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/discochess/cachekit/internal/source"
)

// Compile-time check that Source implements source.Source.
var _ source.Source = (*Source)(nil)

// Source opens files relative to a root directory. Absolute names are
// opened as given.
type Source struct {
	root string
}

// New creates a file source rooted at root. An empty root means the
// current working directory.
func New(root string) *Source {
	return &Source{root: root}
}

// Open opens the named file.
func (s *Source) Open(ctx context.Context, name string) (io.ReadCloser, error) {
	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	default:
	}

	path := name
	if !filepath.IsAbs(path) && s.root != "" {
		path = filepath.Join(s.root, name)
	}

	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", source.ErrNotFound, path)
		}
		return nil, fmt.Errorf("opening trace: %w", err)
	}
	return f, nil
}

// Close is a no-op for the file source.
func (s *Source) Close() error {
	return nil
}
