package content

import (
	"context"
	"fmt"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
)

// Severity ranks a problem found by Check.
type Severity string

const (
	SeverityError   Severity = "error"
	SeverityWarning Severity = "warning"
)

// Problem is one finding of Check.
type Problem struct {
	ID       string
	Severity Severity
	Message  string
}

func (p Problem) String() string {
	return fmt.Sprintf("%s %s: %s", p.Severity, p.ID, p.Message)
}

// CheckReport summarizes a store check.
type CheckReport struct {
	Entries  int
	Checked  int
	Problems []Problem
}

// Errors counts problems of error severity.
func (r CheckReport) Errors() int {
	n := 0
	for _, p := range r.Problems {
		if p.Severity == SeverityError {
			n++
		}
	}
	return n
}

// CheckOptions narrow and observe a check.
type CheckOptions struct {
	// Match is a doublestar pattern; only ids matching it are fetched.
	Match string
	// Progress is called after each fetched point.
	Progress func(done, total int, id string)
}

// Check validates the manifest and fetches every listed point in order,
// one at a time. A manifest failure is returned as an error; everything
// else is reported as a Problem.
func Check(ctx context.Context, s Store, opts CheckOptions) (CheckReport, error) {
	if opts.Match != "" && !doublestar.ValidatePattern(opts.Match) {
		return CheckReport{}, fmt.Errorf("invalid match pattern %q", opts.Match)
	}

	m, err := s.Manifest(ctx)
	if err != nil {
		return CheckReport{}, err
	}

	report := CheckReport{Entries: len(m)}
	add := func(id string, sev Severity, format string, args ...any) {
		report.Problems = append(report.Problems, Problem{ID: id, Severity: sev, Message: fmt.Sprintf(format, args...)})
	}

	seen := make(map[string]int, len(m))
	var targets []string
	for i, e := range m {
		switch {
		case e.ID == "":
			add(fmt.Sprintf("#%d", i), SeverityError, "manifest entry has no id")
			continue
		case strings.ContainsAny(e.ID, "/\\#"):
			add(e.ID, SeverityError, "id must be a single path element without '#'")
			continue
		}
		if prev, dup := seen[e.ID]; dup {
			add(e.ID, SeverityError, "duplicate id (entries %d and %d)", prev, i)
			continue
		}
		seen[e.ID] = i
		if strings.TrimSpace(e.Title) == "" {
			add(e.ID, SeverityWarning, "manifest entry has no title")
		}
		if opts.Match != "" {
			if ok, _ := doublestar.Match(opts.Match, e.ID); !ok {
				continue
			}
		}
		targets = append(targets, e.ID)
	}

	for i, id := range targets {
		if err := ctx.Err(); err != nil {
			return report, err
		}
		p, err := s.Point(ctx, id)
		report.Checked++
		if opts.Progress != nil {
			opts.Progress(i+1, len(targets), id)
		}
		if err != nil {
			add(id, SeverityError, "%v", err)
			continue
		}
		checkPoint(id, p, add)
	}

	return report, nil
}

func checkPoint(id string, p Point, add func(string, Severity, string, ...any)) {
	if strings.TrimSpace(p.Title) == "" {
		add(id, SeverityWarning, "title is empty")
	}
	if strings.TrimSpace(p.OriginalSentence) == "" {
		add(id, SeverityError, "originalSentence is empty")
	}
	if len(p.ImprovedSentences) == 0 {
		add(id, SeverityError, "improvedSentences is empty")
	}
	if !p.Type.Known() {
		add(id, SeverityWarning, "unknown type %q renders as an improvement without reasons", p.Type)
	}
	if p.Type == TypeImprovement && (p.ReasonEn == "") != (p.ReasonZh == "") {
		add(id, SeverityWarning, "improvement reasons need both reasonEn and reasonZh to be shown")
	}
}
