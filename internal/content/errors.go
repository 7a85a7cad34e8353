package content

import "fmt"

// ManifestLoadError reports that the manifest could not be fetched or parsed.
// The browser cannot navigate without it.
type ManifestLoadError struct {
	Source string
	Err    error
}

func (e *ManifestLoadError) Error() string {
	return fmt.Sprintf("loading manifest from %s: %v", e.Source, e.Err)
}

func (e *ManifestLoadError) Unwrap() error { return e.Err }

// ContentLoadError reports that a single point could not be fetched or parsed.
type ContentLoadError struct {
	ID  string
	Err error
}

func (e *ContentLoadError) Error() string {
	return fmt.Sprintf("loading content %q: %v", e.ID, e.Err)
}

func (e *ContentLoadError) Unwrap() error { return e.Err }

// StatusError is returned for non-2xx responses from an HTTP store.
type StatusError struct {
	URL        string
	StatusCode int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("HTTP error! status: %d, File: %s", e.StatusCode, e.URL)
}
