// Package source defines where trace files are read from.
package source

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
)

// ErrNotFound is returned when a trace object does not exist.
var ErrNotFound = errors.New("source: object not found")

// Source opens named objects for reading.
type Source interface {
	// Open returns a reader for the raw (possibly compressed) object bytes.
	Open(ctx context.Context, name string) (io.ReadCloser, error)

	// Close releases any resources held by the source.
	Close() error
}

// Scheme identifies a storage backend in a trace URI.
type Scheme string

// Supported URI schemes.
const (
	SchemeFile Scheme = "file"
	SchemeS3   Scheme = "s3"
	SchemeGCS  Scheme = "gs"
)

// Location is a parsed trace URI.
type Location struct {
	Scheme Scheme
	Bucket string // Empty for local files.
	Name   string // Object key or filesystem path.
}

// Parse splits uri into a Location. Plain paths and file:// URIs are local;
// s3://bucket/key and gs://bucket/key name objects in a bucket.
func Parse(uri string) (Location, error) {
	scheme, rest, ok := strings.Cut(uri, "://")
	if !ok {
		if uri == "" {
			return Location{}, errors.New("source: empty location")
		}
		return Location{Scheme: SchemeFile, Name: uri}, nil
	}

	switch Scheme(scheme) {
	case SchemeFile:
		if rest == "" {
			return Location{}, fmt.Errorf("source: missing path in %q", uri)
		}
		return Location{Scheme: SchemeFile, Name: rest}, nil
	case SchemeS3, SchemeGCS:
		bucket, key, _ := strings.Cut(rest, "/")
		if bucket == "" || key == "" {
			return Location{}, fmt.Errorf("source: %q must be %s://bucket/key", uri, scheme)
		}
		return Location{Scheme: Scheme(scheme), Bucket: bucket, Name: key}, nil
	default:
		return Location{}, fmt.Errorf("source: unsupported scheme %q", scheme)
	}
}
