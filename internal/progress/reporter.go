package progress

import (
	"fmt"
	"io"
	"os"

	"github.com/schollz/progressbar/v3"
)

// Reporter provides progress feedback while the content store is checked.
type Reporter interface {
	Start(total int, description string)
	Update(current int, message string)
	Finish()
}

// NewReporter returns a CIReporter if the CI environment variable is set,
// or a TerminalReporter otherwise. Output goes to w.
func NewReporter(w io.Writer) Reporter {
	if os.Getenv("CI") != "" || os.Getenv("GITHUB_ACTIONS") != "" {
		return &CIReporter{w: w}
	}
	return &TerminalReporter{w: w}
}

// TerminalReporter displays a progress bar in the terminal.
type TerminalReporter struct {
	w   io.Writer
	bar *progressbar.ProgressBar
}

func (r *TerminalReporter) Start(total int, description string) {
	r.bar = progressbar.NewOptions(total,
		progressbar.OptionSetWriter(r.w),
		progressbar.OptionSetDescription(description),
		progressbar.OptionSetWidth(40),
		progressbar.OptionShowCount(),
		progressbar.OptionClearOnFinish(),
	)
}

func (r *TerminalReporter) Update(current int, message string) {
	if r.bar != nil {
		r.bar.Describe(message)
		_ = r.bar.Set(current)
	}
}

func (r *TerminalReporter) Finish() {
	if r.bar != nil {
		_ = r.bar.Finish()
	}
}

// CIReporter prints line-by-line progress suitable for CI logs.
type CIReporter struct {
	w     io.Writer
	total int
}

func (r *CIReporter) Start(total int, description string) {
	r.total = total
	fmt.Fprintf(r.w, "%s: %d points\n", description, total)
}

func (r *CIReporter) Update(current int, message string) {
	fmt.Fprintf(r.w, "[%d/%d] %s\n", current, r.total, message)
}

func (r *CIReporter) Finish() {
	fmt.Fprintln(r.w, "Check complete")
}
