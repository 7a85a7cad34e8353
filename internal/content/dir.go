package content

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"strings"
)

// DirStore reads a content store from a file system, usually a local
// directory checked out next to the binary.
type DirStore struct {
	fsys   fs.FS
	source string
}

// NewDirStore returns a store rooted at dir.
func NewDirStore(dir string) *DirStore {
	return &DirStore{fsys: os.DirFS(dir), source: dir}
}

// NewFSStore returns a store backed by fsys. source is only used in messages.
func NewFSStore(fsys fs.FS, source string) *DirStore {
	return &DirStore{fsys: fsys, source: source}
}

// Source returns the directory the store reads from.
func (s *DirStore) Source() string { return s.source }

// Manifest reads data/manifest.json.
func (s *DirStore) Manifest(ctx context.Context) (Manifest, error) {
	if err := ctx.Err(); err != nil {
		return nil, &ManifestLoadError{Source: s.source, Err: err}
	}
	f, err := s.fsys.Open(ManifestFile)
	if err != nil {
		return nil, &ManifestLoadError{Source: s.source, Err: err}
	}
	defer f.Close()

	m, err := decodeManifest(f)
	if err != nil {
		return nil, &ManifestLoadError{Source: s.source, Err: err}
	}
	return m, nil
}

// Point reads data/<id>.json.
func (s *DirStore) Point(ctx context.Context, id string) (Point, error) {
	if err := ctx.Err(); err != nil {
		return Point{}, &ContentLoadError{ID: id, Err: err}
	}
	// Ids are single path elements; anything else could escape data/.
	if id == "" || strings.ContainsAny(id, `/\`) || id == "." || id == ".." {
		return Point{}, &ContentLoadError{ID: id, Err: fmt.Errorf("invalid id")}
	}
	f, err := s.fsys.Open(PointFile(id))
	if err != nil {
		return Point{}, &ContentLoadError{ID: id, Err: err}
	}
	defer f.Close()

	p, err := decodePoint(f)
	if err != nil {
		return Point{}, &ContentLoadError{ID: id, Err: err}
	}
	return p, nil
}
