// Package gcssource reads traces from Google Cloud Storage.
package gcssource

import (
	"context"
	"errors"
	"fmt"
	"io"

	"cloud.google.com/go/storage"

	"github.com/discochess/cachekit/internal/source"
)

// Compile-time check that Source implements source.Source.
var _ source.Source = (*Source)(nil)

// bucket opens objects by name.
type bucket interface {
	NewReader(ctx context.Context, object string) (io.ReadCloser, error)
}

// gcsBucket adapts a storage.BucketHandle to bucket.
type gcsBucket struct {
	handle *storage.BucketHandle
}

func (b gcsBucket) NewReader(ctx context.Context, object string) (io.ReadCloser, error) {
	r, err := b.handle.Object(object).NewReader(ctx)
	if err != nil {
		return nil, err
	}
	return r, nil
}

// Source reads objects from one GCS bucket.
type Source struct {
	client *storage.Client
	bucket bucket
	name   string
}

// New creates a source for bucket using application default credentials.
func New(ctx context.Context, name string) (*Source, error) {
	client, err := storage.NewClient(ctx)
	if err != nil {
		return nil, fmt.Errorf("creating GCS client: %w", err)
	}
	return &Source{
		client: client,
		bucket: gcsBucket{handle: client.Bucket(name)},
		name:   name,
	}, nil
}

// Open returns a reader for the named object.
func (s *Source) Open(ctx context.Context, object string) (io.ReadCloser, error) {
	reader, err := s.bucket.NewReader(ctx, object)
	if err != nil {
		if errors.Is(err, storage.ErrObjectNotExist) {
			return nil, fmt.Errorf("%w: gs://%s/%s", source.ErrNotFound, s.name, object)
		}
		return nil, fmt.Errorf("reading gs://%s/%s: %w", s.name, object, err)
	}
	return reader, nil
}

// Close releases the underlying client.
func (s *Source) Close() error {
	if s.client == nil {
		return nil
	}
	return s.client.Close()
}
