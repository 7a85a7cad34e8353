package content

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const p1JSON = `{
  "title": "X",
  "title_en": "Xe",
  "type": "improvement",
  "originalSentence": "He go.",
  "improvedSentences": ["He goes."],
  "furtherExamples": [],
  "reasonEn": "grammar",
  "reasonZh": "語法"
}`

func testFS() fstest.MapFS {
	return fstest.MapFS{
		"data/manifest.json": {Data: []byte(`[{"id":"p1","title":"A","extra":true},{"id":"p2","title":"B"}]`)},
		"data/p1.json":       {Data: []byte(p1JSON)},
		"data/bad.json":      {Data: []byte(`{"title":`)},
	}
}

func TestDirStoreManifest(t *testing.T) {
	s := NewFSStore(testFS(), "mem")

	m, err := s.Manifest(context.Background())
	require.NoError(t, err)
	require.Len(t, m, 2)
	assert.Equal(t, ManifestEntry{ID: "p1", Title: "A"}, m[0])
	assert.Equal(t, ManifestEntry{ID: "p2", Title: "B"}, m[1])
	assert.True(t, m.Contains("p2"))
	assert.False(t, m.Contains("p3"))
}

func TestDirStorePoint(t *testing.T) {
	s := NewFSStore(testFS(), "mem")

	p, err := s.Point(context.Background(), "p1")
	require.NoError(t, err)
	assert.Equal(t, "X", p.Title)
	assert.Equal(t, "Xe", p.TitleEn)
	assert.Equal(t, TypeImprovement, p.Type)
	assert.Equal(t, []string{"He goes."}, p.ImprovedSentences)
	assert.Equal(t, "語法", p.ReasonZh)
}

func TestDirStorePointErrors(t *testing.T) {
	s := NewFSStore(testFS(), "mem")

	for _, id := range []string{"p2", "bad", "../data/p1", ""} {
		_, err := s.Point(context.Background(), id)
		var cle *ContentLoadError
		require.ErrorAs(t, err, &cle, "id %q", id)
		assert.Equal(t, id, cle.ID)
	}
}

func TestDirStoreManifestErrors(t *testing.T) {
	tests := []struct {
		name string
		fsys fstest.MapFS
	}{
		{"missing", fstest.MapFS{}},
		{"malformed", fstest.MapFS{"data/manifest.json": {Data: []byte(`[{"id":`)}}},
		{"object", fstest.MapFS{"data/manifest.json": {Data: []byte(`{"id":"p1"}`)}}},
		{"null", fstest.MapFS{"data/manifest.json": {Data: []byte(`null`)}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewFSStore(tt.fsys, "mem").Manifest(context.Background())
			var mle *ManifestLoadError
			require.ErrorAs(t, err, &mle)
		})
	}
}

func TestEmptyManifestIsNotAnError(t *testing.T) {
	s := NewFSStore(fstest.MapFS{"data/manifest.json": {Data: []byte(`[]`)}}, "mem")
	m, err := s.Manifest(context.Background())
	require.NoError(t, err)
	assert.Empty(t, m)
}

func TestHTTPStore(t *testing.T) {
	srv := httptest.NewServer(http.FileServer(http.FS(testFS())))
	defer srv.Close()

	s := NewHTTPStore(srv.URL, srv.Client())

	m, err := s.Manifest(context.Background())
	require.NoError(t, err)
	require.Len(t, m, 2)

	p, err := s.Point(context.Background(), "p1")
	require.NoError(t, err)
	assert.Equal(t, "He go.", p.OriginalSentence)

	_, err = s.Point(context.Background(), "p2")
	var cle *ContentLoadError
	require.ErrorAs(t, err, &cle)
	assert.Equal(t, "p2", cle.ID)
	var se *StatusError
	require.ErrorAs(t, err, &se)
	assert.Equal(t, http.StatusNotFound, se.StatusCode)
}

func TestHTTPStoreManifestStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	}))
	defer srv.Close()

	_, err := NewHTTPStore(srv.URL+"/", nil).Manifest(context.Background())
	var mle *ManifestLoadError
	require.ErrorAs(t, err, &mle)
	var se *StatusError
	require.True(t, errors.As(err, &se))
	assert.Equal(t, http.StatusInternalServerError, se.StatusCode)
}

func TestNewStore(t *testing.T) {
	s, err := NewStore("https://example.com/guide", Options{})
	require.NoError(t, err)
	assert.IsType(t, &HTTPStore{}, s)
	assert.Equal(t, "https://example.com/guide/", s.Source())

	dir := t.TempDir()
	s, err = NewStore(dir, Options{})
	require.NoError(t, err)
	assert.IsType(t, &DirStore{}, s)

	_, err = NewStore(filepath.Join(dir, "missing"), Options{})
	assert.Error(t, err)

	file := filepath.Join(dir, "file.txt")
	require.NoError(t, os.WriteFile(file, []byte("x"), 0o644))
	_, err = NewStore(file, Options{})
	assert.Error(t, err)
}

func TestPointExamples(t *testing.T) {
	p := Point{FurtherExamples: []string{"", "  ", "Valid example"}}
	assert.Equal(t, []string{"Valid example"}, p.Examples())

	p = Point{FurtherExamples: []string{"", "\t"}}
	assert.Empty(t, p.Examples())
}

func TestPointTypeKnown(t *testing.T) {
	assert.True(t, TypeImprovement.Known())
	assert.True(t, TypeTranslation.Known())
	assert.False(t, PointType("idiom").Known())
}

func malformedFS() fstest.MapFS {
	return fstest.MapFS{
		"data/manifest.json":  {Data: []byte(`[{"id":"p1","title":"A"}] garbage{`)},
		"data/trailing.json":  {Data: []byte(p1JSON + ` {"title":"again"}`)},
		"data/no-lists.json":  {Data: []byte(`{"title":"X","type":"improvement","originalSentence":"o"}`)},
		"data/no-extra.json":  {Data: []byte(`{"title":"X","type":"improvement","originalSentence":"o","improvedSentences":["i"]}`)},
		"data/null-list.json": {Data: []byte(`{"title":"X","originalSentence":"o","improvedSentences":null,"furtherExamples":[]}`)},
		"data/spaced.json":    {Data: []byte(p1JSON + "\n\n")},
	}
}

func TestMalformedDocumentsRejected(t *testing.T) {
	srv := httptest.NewServer(http.FileServer(http.FS(malformedFS())))
	defer srv.Close()

	stores := map[string]Store{
		"dir":  NewFSStore(malformedFS(), "mem"),
		"http": NewHTTPStore(srv.URL, srv.Client()),
	}
	for name, s := range stores {
		t.Run(name, func(t *testing.T) {
			_, err := s.Manifest(context.Background())
			var mle *ManifestLoadError
			assert.ErrorAs(t, err, &mle, "trailing data after the manifest")

			for _, id := range []string{"trailing", "no-lists", "no-extra", "null-list"} {
				_, err := s.Point(context.Background(), id)
				var cle *ContentLoadError
				assert.ErrorAs(t, err, &cle, "id %q", id)
			}

			p, err := s.Point(context.Background(), "spaced")
			require.NoError(t, err, "trailing whitespace is allowed")
			assert.Equal(t, "X", p.Title)
		})
	}
}
