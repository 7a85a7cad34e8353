package content

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"
)

// HTTPStore reads a content store published on a static web host.
type HTTPStore struct {
	base   string
	client *http.Client
}

// NewHTTPStore returns a store rooted at baseURL. A nil client uses
// http.DefaultClient.
func NewHTTPStore(baseURL string, client *http.Client) *HTTPStore {
	if client == nil {
		client = http.DefaultClient
	}
	return &HTTPStore{
		base:   strings.TrimSuffix(baseURL, "/") + "/",
		client: client,
	}
}

// Source returns the base URL.
func (s *HTTPStore) Source() string { return s.base }

// Manifest fetches data/manifest.json.
func (s *HTTPStore) Manifest(ctx context.Context) (Manifest, error) {
	target := s.base + ManifestFile
	resp, err := s.get(ctx, target)
	if err != nil {
		return nil, &ManifestLoadError{Source: target, Err: err}
	}
	defer resp.Body.Close()

	m, err := decodeManifest(resp.Body)
	if err != nil {
		return nil, &ManifestLoadError{Source: target, Err: err}
	}
	return m, nil
}

// Point fetches data/<id>.json.
func (s *HTTPStore) Point(ctx context.Context, id string) (Point, error) {
	target := s.base + DataDir + "/" + url.PathEscape(id) + ".json"
	resp, err := s.get(ctx, target)
	if err != nil {
		return Point{}, &ContentLoadError{ID: id, Err: err}
	}
	defer resp.Body.Close()

	p, err := decodePoint(resp.Body)
	if err != nil {
		return Point{}, &ContentLoadError{ID: id, Err: err}
	}
	return p, nil
}

func (s *HTTPStore) get(ctx context.Context, target string) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, nil)
	if err != nil {
		return nil, fmt.Errorf("building request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		resp.Body.Close()
		return nil, &StatusError{URL: target, StatusCode: resp.StatusCode}
	}
	return resp, nil
}
