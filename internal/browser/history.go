package browser

import (
	"errors"
	"strings"
	"sync"
)

// ErrHistoryUnsupported is returned by histories that cannot record entries.
var ErrHistoryUnsupported = errors.New("history manipulation is not supported")

// History is the location and session history the browser routes on.
// Fragments are stored without the leading '#'.
type History interface {
	// Fragment returns the fragment of the current entry.
	Fragment() string
	// Push appends a new entry with the given fragment and makes it current.
	Push(fragment string) error
	// Replace overwrites the current entry's fragment.
	Replace(fragment string) error
}

// ParseFragment extracts the routing key from a location or fragment string:
// "page#p1", "#p1" and "p1" all yield "p1". Without '#' the whole string is
// taken as the fragment.
func ParseFragment(s string) string {
	if i := strings.IndexByte(s, '#'); i >= 0 {
		return s[i+1:]
	}
	return s
}

// MemoryHistory is an in-process session history with back/forward
// navigation. It is safe for concurrent use.
type MemoryHistory struct {
	mu      sync.Mutex
	entries []string
	index   int
}

// NewMemoryHistory starts a history whose only entry has the given fragment.
func NewMemoryHistory(initial string) *MemoryHistory {
	return &MemoryHistory{entries: []string{ParseFragment(initial)}}
}

func (h *MemoryHistory) Fragment() string {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.entries[h.index]
}

// Push drops any forward entries, like a browser does.
func (h *MemoryHistory) Push(fragment string) error {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.entries = append(h.entries[:h.index+1], fragment)
	h.index++
	return nil
}

func (h *MemoryHistory) Replace(fragment string) error {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.entries[h.index] = fragment
	return nil
}

// Back moves to the previous entry. It reports false at the oldest entry.
func (h *MemoryHistory) Back() bool {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.index == 0 {
		return false
	}
	h.index--
	return true
}

// Forward moves to the next entry. It reports false at the newest entry.
func (h *MemoryHistory) Forward() bool {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.index >= len(h.entries)-1 {
		return false
	}
	h.index++
	return true
}

// Len returns the number of entries.
func (h *MemoryHistory) Len() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.entries)
}

// StaticHistory is a fixed location that cannot be rewritten, used for
// one-shot rendering. Push and Replace fail with ErrHistoryUnsupported.
type StaticHistory string

func (h StaticHistory) Fragment() string { return ParseFragment(string(h)) }

func (h StaticHistory) Push(string) error { return ErrHistoryUnsupported }

func (h StaticHistory) Replace(string) error { return ErrHistoryUnsupported }

// Viewport reports the current width of the display, in the same unit as
// the controller's narrow threshold.
type Viewport interface {
	Width() int
}

// FixedViewport is a Viewport of constant width.
type FixedViewport int

func (v FixedViewport) Width() int { return int(v) }
