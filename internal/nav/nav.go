// Package nav builds the sidebar navigation from a manifest and tracks which
// entry is active.
package nav

import (
	"fmt"
	"html"
	"strings"

	"github.com/ziadkadry99/writeguide/internal/content"
)

// Item is one navigation entry.
type Item struct {
	ID     string
	Title  string
	Active bool
}

// Href is the fragment link of the item.
func (i Item) Href() string { return "#" + i.ID }

// Navigation is the ordered list of entries with at most one active.
// It is not safe for concurrent use; the browser controller owns it.
type Navigation struct {
	items  []Item
	active int
}

// Build creates one item per manifest entry, preserving order. Nothing is
// active afterwards.
func Build(m content.Manifest) *Navigation {
	n := &Navigation{active: -1}
	n.Rebuild(m)
	return n
}

// Rebuild replaces all entries and clears the active one.
func (n *Navigation) Rebuild(m content.Manifest) {
	n.items = make([]Item, 0, len(m))
	for _, e := range m {
		n.items = append(n.items, Item{ID: e.ID, Title: e.Title})
	}
	n.active = -1
}

// Items returns a copy of the entries with the Active flag set.
func (n *Navigation) Items() []Item {
	out := make([]Item, len(n.items))
	copy(out, n.items)
	if n.active >= 0 {
		out[n.active].Active = true
	}
	return out
}

// Activate marks the entry for id active and deactivates the previous one.
// It reports false and leaves the state unchanged if id is not listed.
func (n *Navigation) Activate(id string) bool {
	for i, it := range n.items {
		if it.ID == id {
			n.active = i
			return true
		}
	}
	return false
}

// Deactivate clears the active entry.
func (n *Navigation) Deactivate() { n.active = -1 }

// ToHTML renders items as a <ul> list of fragment links for a sidebar.
func ToHTML(items []Item) string {
	var b strings.Builder
	b.WriteString("<ul>\n")
	for _, it := range items {
		activeClass := ""
		if it.Active {
			activeClass = ` class="active"`
		}
		fmt.Fprintf(&b, `<li class="file"><a href="%s"%s>%s</a></li>`+"\n",
			html.EscapeString(it.Href()), activeClass, html.EscapeString(it.Title))
	}
	b.WriteString("</ul>\n")
	return b.String()
}
