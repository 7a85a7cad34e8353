package nav

import (
	"strings"
	"testing"

	"github.com/ziadkadry99/writeguide/internal/content"
)

func testManifest() content.Manifest {
	return content.Manifest{
		{ID: "p1", Title: "A"},
		{ID: "p2", Title: "B"},
		{ID: "p3", Title: "C"},
	}
}

func countActive(items []Item) int {
	n := 0
	for _, it := range items {
		if it.Active {
			n++
		}
	}
	return n
}

func TestBuildPreservesOrder(t *testing.T) {
	n := Build(testManifest())
	items := n.Items()
	if len(items) != 3 {
		t.Fatalf("items = %d, want 3", len(items))
	}
	for i, want := range []string{"p1", "p2", "p3"} {
		if items[i].ID != want {
			t.Errorf("items[%d].ID = %q, want %q", i, items[i].ID, want)
		}
	}
	if items[1].Title != "B" || items[1].Href() != "#p2" {
		t.Errorf("items[1] = %+v, want title B href #p2", items[1])
	}
	if countActive(items) != 0 {
		t.Error("no item should be active after Build")
	}
}

func activeID(items []Item) string {
	for _, it := range items {
		if it.Active {
			return it.ID
		}
	}
	return ""
}

func TestActivateSingle(t *testing.T) {
	n := Build(testManifest())

	for _, id := range []string{"p1", "p3", "p2", "p2"} {
		if !n.Activate(id) {
			t.Fatalf("Activate(%q) = false", id)
		}
		items := n.Items()
		if got := countActive(items); got != 1 {
			t.Fatalf("after Activate(%q) active count = %d, want 1", id, got)
		}
		if active := activeID(items); active != id {
			t.Errorf("active entry = %q, want %q", active, id)
		}
	}

	if n.Activate("missing") {
		t.Error("Activate(missing) should report false")
	}
	if active := activeID(n.Items()); active != "p2" {
		t.Errorf("unknown id changed active entry to %q", active)
	}

	n.Deactivate()
	if countActive(n.Items()) != 0 {
		t.Error("Deactivate should clear the active entry")
	}
}

func TestRebuildReplaces(t *testing.T) {
	n := Build(testManifest())
	n.Activate("p1")
	n.Rebuild(content.Manifest{{ID: "q", Title: "Q"}})

	items := n.Items()
	if len(items) != 1 || items[0].ID != "q" {
		t.Fatalf("items = %+v, want only q", items)
	}
	if countActive(items) != 0 {
		t.Error("Rebuild should clear the active entry")
	}
}

func TestItemsIsACopy(t *testing.T) {
	n := Build(testManifest())
	items := n.Items()
	items[0].Active = true
	items[0].Title = "changed"
	if got := n.Items()[0]; got.Active || got.Title != "A" {
		t.Errorf("mutating Items() leaked into Navigation: %+v", got)
	}
}

func TestToHTML(t *testing.T) {
	n := Build(content.Manifest{{ID: "p1", Title: "A & B"}, {ID: "p2", Title: "C"}})
	n.Activate("p2")
	out := ToHTML(n.Items())

	if !strings.Contains(out, `<a href="#p1">A &amp; B</a>`) {
		t.Errorf("missing escaped p1 link in %s", out)
	}
	if !strings.Contains(out, `<a href="#p2" class="active">C</a>`) {
		t.Errorf("missing active p2 link in %s", out)
	}
	if strings.Count(out, "<li") != 2 {
		t.Errorf("expected 2 list items in %s", out)
	}
}
