// Package render turns a learning point into a presentation-neutral View.
//
// Views are plain values: presenters in package present (and the terminal
// client) decide how a View looks. Rendering is a pure function of its
// input.
package render

import "github.com/ziadkadry99/writeguide/internal/content"

// ViewKind tells presenters what a View represents.
type ViewKind int

const (
	// KindPoint is a rendered learning point.
	KindPoint ViewKind = iota
	// KindIntro is the placeholder shown when nothing is selected.
	KindIntro
	// KindError is a failure message.
	KindError
)

func (k ViewKind) String() string {
	switch k {
	case KindPoint:
		return "point"
	case KindIntro:
		return "intro"
	case KindError:
		return "error"
	default:
		return "unknown"
	}
}

// SectionKind identifies a section of a point view.
type SectionKind int

const (
	// SectionOriginal holds the original sentence or Chinese expression in Body.
	SectionOriginal SectionKind = iota
	// SectionImproved holds the improved sentences or translations in Items.
	SectionImproved
	// SectionReason holds a bilingual explanation in En and Zh.
	SectionReason
	// SectionNote holds a single-language note in Body.
	SectionNote
	// SectionExamples holds further examples in Items.
	SectionExamples
)

// Section is one labelled block of a point view.
type Section struct {
	Kind  SectionKind
	Label string
	Body  string
	Items []string
	En    string
	Zh    string
}

// View is everything a presenter needs to draw the content area.
type View struct {
	Kind     ViewKind
	Type     content.PointType
	Title    string
	Subtitle string
	Sections []Section
	// Message is set for intro and error views.
	Message string
}

// Section returns the first section of the given kind.
func (v View) Section(kind SectionKind) (Section, bool) {
	for _, s := range v.Sections {
		if s.Kind == kind {
			return s, true
		}
	}
	return Section{}, false
}
