package content

import "strings"

// PointType discriminates how a learning point is presented.
type PointType string

const (
	TypeImprovement PointType = "improvement"
	TypeTranslation PointType = "translation"
)

// Known reports whether t is one of the recognized point types.
func (t PointType) Known() bool {
	return t == TypeImprovement || t == TypeTranslation
}

// ManifestEntry is one item of data/manifest.json.
// Other fields present in the manifest are ignored.
type ManifestEntry struct {
	ID    string `json:"id"`
	Title string `json:"title"`
}

// Manifest is the ordered index of all learning points.
type Manifest []ManifestEntry

// Contains reports whether id is listed in the manifest.
func (m Manifest) Contains(id string) bool {
	for _, e := range m {
		if e.ID == id {
			return true
		}
	}
	return false
}

// Point is the detail record stored at data/<id>.json.
type Point struct {
	Title             string    `json:"title"`
	TitleEn           string    `json:"title_en"`
	Type              PointType `json:"type"`
	OriginalSentence  string    `json:"originalSentence"`
	ImprovedSentences []string  `json:"improvedSentences"`
	FurtherExamples   []string  `json:"furtherExamples"`
	ReasonEn          string    `json:"reasonEn,omitempty"`
	ReasonZh          string    `json:"reasonZh,omitempty"`
}

// Examples returns FurtherExamples without empty or whitespace-only entries.
func (p Point) Examples() []string {
	var out []string
	for _, ex := range p.FurtherExamples {
		if strings.TrimSpace(ex) == "" {
			continue
		}
		out = append(out, ex)
	}
	return out
}
