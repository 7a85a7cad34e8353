// Package content reads learning points from a static content store.
//
// A store is a file tree with data/manifest.json listing the points and one
// data/<id>.json file per point. It can be served by any static web host or
// read straight from a local directory.
package content

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"path"
	"strings"
	"time"
)

const (
	// DataDir is the directory of the store that holds all JSON files.
	DataDir = "data"
	// ManifestFile is the manifest path relative to the store root.
	ManifestFile = DataDir + "/manifest.json"
)

// PointFile returns the path of a point's JSON file relative to the store root.
func PointFile(id string) string {
	return path.Join(DataDir, id+".json")
}

// Store is a read-only content store. Implementations perform a single
// attempt per call and never cache.
type Store interface {
	// Manifest fetches data/manifest.json. Failures are *ManifestLoadError.
	Manifest(ctx context.Context) (Manifest, error)
	// Point fetches data/<id>.json. Failures are *ContentLoadError.
	Point(ctx context.Context, id string) (Point, error)
	// Source describes where the store reads from.
	Source() string
}

// Options tune store construction.
type Options struct {
	// Timeout bounds each HTTP request. Zero leaves the transport default.
	Timeout time.Duration
	// Client overrides the HTTP client.
	Client *http.Client
}

// NewStore picks an HTTPStore for http(s) sources and a DirStore otherwise.
func NewStore(source string, opts Options) (Store, error) {
	if strings.HasPrefix(source, "http://") || strings.HasPrefix(source, "https://") {
		client := opts.Client
		if client == nil {
			client = &http.Client{Timeout: opts.Timeout}
		}
		return NewHTTPStore(source, client), nil
	}

	info, err := os.Stat(source)
	if err != nil {
		return nil, fmt.Errorf("opening content directory %s: %w", source, err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("content source %s is not a directory", source)
	}
	return NewDirStore(source), nil
}

func decodeManifest(r io.Reader) (Manifest, error) {
	var m Manifest
	if err := decodeJSON(r, &m); err != nil {
		return nil, fmt.Errorf("decoding manifest: %w", err)
	}
	if m == nil {
		// A literal null is not a manifest.
		return nil, fmt.Errorf("decoding manifest: expected a JSON array")
	}
	return m, nil
}

func decodePoint(r io.Reader) (Point, error) {
	var p Point
	if err := decodeJSON(r, &p); err != nil {
		return Point{}, fmt.Errorf("decoding point: %w", err)
	}
	// Both lists are iterated when the point is shown.
	if p.ImprovedSentences == nil {
		return Point{}, fmt.Errorf("decoding point: improvedSentences must be an array")
	}
	if p.FurtherExamples == nil {
		return Point{}, fmt.Errorf("decoding point: furtherExamples must be an array")
	}
	return p, nil
}

// decodeJSON decodes exactly one JSON value from r.
func decodeJSON(r io.Reader, v any) error {
	dec := json.NewDecoder(r)
	if err := dec.Decode(v); err != nil {
		return err
	}
	if err := dec.Decode(&struct{}{}); err != io.EOF {
		return errors.New("unexpected data after the JSON document")
	}
	return nil
}
