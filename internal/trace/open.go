package trace

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/discochess/cachekit/internal/codec"
	"github.com/discochess/cachekit/internal/source"
	"github.com/discochess/cachekit/internal/source/filesource"
	"github.com/discochess/cachekit/internal/source/gcssource"
	"github.com/discochess/cachekit/internal/source/s3source"
)

// Load reads and parses the trace at uri. See Open for accepted URIs.
func Load(ctx context.Context, uri string) ([]Op, error) {
	rc, err := Open(ctx, uri)
	if err != nil {
		return nil, err
	}
	defer rc.Close()

	ops, err := Parse(rc)
	if err != nil {
		return nil, fmt.Errorf("parsing %s: %w", uri, err)
	}
	return ops, nil
}

// Open returns a decompressed reader for the trace at uri, which may be a
// local path, file://path, s3://bucket/key or gs://bucket/key. The codec is
// chosen from the name's extension.
func Open(ctx context.Context, uri string) (io.ReadCloser, error) {
	loc, err := source.Parse(uri)
	if err != nil {
		return nil, err
	}

	src, err := openSource(ctx, loc)
	if err != nil {
		return nil, err
	}

	raw, err := src.Open(ctx, loc.Name)
	if err != nil {
		src.Close()
		return nil, err
	}

	dec, err := codec.ForName(loc.Name).Reader(raw)
	if err != nil {
		raw.Close()
		src.Close()
		return nil, fmt.Errorf("creating decompressor: %w", err)
	}

	return &traceReader{ReadCloser: dec, closers: []io.Closer{raw, src}}, nil
}

func openSource(ctx context.Context, loc source.Location) (source.Source, error) {
	switch loc.Scheme {
	case source.SchemeFile:
		return filesource.New(""), nil
	case source.SchemeS3:
		return s3source.New(ctx, loc.Bucket)
	case source.SchemeGCS:
		return gcssource.New(ctx, loc.Bucket)
	default:
		return nil, fmt.Errorf("trace: unsupported scheme %q", loc.Scheme)
	}
}

// traceReader closes the decompressor, the raw object and its source together.
type traceReader struct {
	io.ReadCloser
	closers []io.Closer
}

func (r *traceReader) Close() error {
	err := r.ReadCloser.Close()
	for _, c := range r.closers {
		if cerr := c.Close(); err == nil {
			err = cerr
		}
	}
	return err
}

// Create writes ops to a local file, compressing according to its extension.
func Create(path string, ops []Op) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating trace: %w", err)
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()

	w, err := codec.ForName(path).Writer(f)
	if err != nil {
		return fmt.Errorf("creating compressor: %w", err)
	}
	if err := Write(w, ops); err != nil {
		w.Close()
		return fmt.Errorf("writing trace: %w", err)
	}
	return w.Close()
}
