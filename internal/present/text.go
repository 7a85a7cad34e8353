package present

import (
	"strings"

	"github.com/ziadkadry99/writeguide/internal/render"
)

// Text renders v as plain text for pipes and logs.
func Text(v render.View) string {
	if v.Kind != render.KindPoint {
		return v.Message + "\n"
	}

	var b strings.Builder
	b.WriteString(v.Title)
	b.WriteString("\n")
	if v.Subtitle != "" {
		b.WriteString(v.Subtitle)
		b.WriteString("\n")
	}

	for _, s := range v.Sections {
		b.WriteString("\n")
		b.WriteString(s.Label)
		b.WriteString(":\n")
		switch s.Kind {
		case render.SectionOriginal, render.SectionNote:
			b.WriteString("  ")
			b.WriteString(s.Body)
			b.WriteString("\n")
		case render.SectionImproved, render.SectionExamples:
			for _, item := range s.Items {
				b.WriteString("  • ")
				b.WriteString(item)
				b.WriteString("\n")
			}
		case render.SectionReason:
			b.WriteString("  " + render.LangEn + "  " + s.En + "\n")
			b.WriteString("  " + render.LangZh + "  " + s.Zh + "\n")
		}
	}
	return b.String()
}
