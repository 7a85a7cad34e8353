package server

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/ziadkadry99/writeguide/internal/content"
)

func writeStore(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	data := filepath.Join(dir, "data")
	if err := os.MkdirAll(data, 0o755); err != nil {
		t.Fatal(err)
	}
	files := map[string]string{
		"manifest.json": `[{"id":"p1","title":"A"}]`,
		"p1.json":       `{"title":"X","type":"improvement","originalSentence":"He go.","improvedSentences":["He goes."],"furtherExamples":[]}`,
	}
	for name, body := range files {
		if err := os.WriteFile(filepath.Join(data, name), []byte(body), 0o644); err != nil {
			t.Fatal(err)
		}
	}
	if err := os.WriteFile(filepath.Join(dir, "secret.txt"), []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}
	return dir
}

func TestHealthCheck(t *testing.T) {
	srv := New(Config{Port: 0, Dir: t.TempDir()}, nil)

	req := httptest.NewRequest("GET", "/healthz", nil)
	w := httptest.NewRecorder()
	srv.Router().ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}

	var body map[string]string
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if body["status"] != "ok" {
		t.Errorf("expected status 'ok', got %q", body["status"])
	}
}

func TestCORSHeaders(t *testing.T) {
	srv := New(Config{Port: 0, Dir: t.TempDir(), AllowAll: true}, nil)

	req := httptest.NewRequest("OPTIONS", "/healthz", nil)
	req.Header.Set("Origin", "http://example.com")
	req.Header.Set("Access-Control-Request-Method", "GET")
	w := httptest.NewRecorder()
	srv.Router().ServeHTTP(w, req)

	if w.Header().Get("Access-Control-Allow-Origin") == "" {
		t.Error("expected CORS Allow-Origin header")
	}
}

func TestServesOnlyDataFiles(t *testing.T) {
	srv := New(Config{Dir: writeStore(t)}, nil)

	tests := []struct {
		path string
		want int
	}{
		{"/data/manifest.json", http.StatusOK},
		{"/data/p1.json", http.StatusOK},
		{"/data/missing.json", http.StatusNotFound},
		{"/data/", http.StatusNotFound},
		{"/secret.txt", http.StatusNotFound},
	}
	for _, tt := range tests {
		w := httptest.NewRecorder()
		srv.Router().ServeHTTP(w, httptest.NewRequest("GET", tt.path, nil))
		if w.Code != tt.want {
			t.Errorf("GET %s = %d, want %d", tt.path, w.Code, tt.want)
		}
		if tt.want == http.StatusOK && w.Header().Get("Cache-Control") != "no-store" {
			t.Errorf("GET %s should disable caching", tt.path)
		}
	}
}

func TestReadOnlyMethods(t *testing.T) {
	srv := New(Config{Dir: writeStore(t)}, nil)

	tests := []struct {
		method string
		want   int
	}{
		{"GET", http.StatusOK},
		{"HEAD", http.StatusOK},
		{"POST", http.StatusMethodNotAllowed},
		{"PUT", http.StatusMethodNotAllowed},
		{"DELETE", http.StatusMethodNotAllowed},
	}
	for _, tt := range tests {
		w := httptest.NewRecorder()
		srv.Router().ServeHTTP(w, httptest.NewRequest(tt.method, "/data/manifest.json", nil))
		if w.Code != tt.want {
			t.Errorf("%s /data/manifest.json = %d, want %d", tt.method, w.Code, tt.want)
		}
	}
}

func TestHTTPStoreAgainstServer(t *testing.T) {
	srv := New(Config{Dir: writeStore(t)}, nil)
	ts := httptest.NewServer(srv.Router())
	defer ts.Close()

	store := content.NewHTTPStore(ts.URL, ts.Client())
	m, err := store.Manifest(context.Background())
	if err != nil {
		t.Fatalf("Manifest: %v", err)
	}
	if len(m) != 1 || m[0].ID != "p1" {
		t.Fatalf("manifest = %+v", m)
	}
	p, err := store.Point(context.Background(), "p1")
	if err != nil {
		t.Fatalf("Point: %v", err)
	}
	if p.OriginalSentence != "He go." {
		t.Errorf("originalSentence = %q", p.OriginalSentence)
	}
	if _, err := store.Point(context.Background(), "p2"); err == nil {
		t.Error("expected error for missing point")
	}
}
