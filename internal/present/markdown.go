// Package present turns render views into concrete output formats.
package present

import (
	"strings"

	"github.com/ziadkadry99/writeguide/internal/render"
)

// Markdown renders v as CommonMark. Content strings are escaped so that
// learning material containing '*' or '_' is shown literally; inline HTML is
// left alone and sanitized by the HTML presenter.
func Markdown(v render.View) string {
	var b strings.Builder

	if v.Kind != render.KindPoint {
		for i, line := range strings.Split(v.Message, "\n") {
			if i > 0 {
				b.WriteString("\n\n")
			}
			b.WriteString(escapeMarkdown(line))
		}
		b.WriteString("\n")
		return b.String()
	}

	b.WriteString("## ")
	b.WriteString(escapeMarkdown(v.Title))
	b.WriteString("\n\n")
	if v.Subtitle != "" {
		b.WriteString("*")
		b.WriteString(escapeMarkdown(v.Subtitle))
		b.WriteString("*\n\n")
	}

	for _, s := range v.Sections {
		b.WriteString("### ")
		b.WriteString(s.Label)
		b.WriteString(":\n\n")

		switch s.Kind {
		case render.SectionOriginal:
			b.WriteString("> ")
			b.WriteString(escapeMarkdown(s.Body))
			b.WriteString("\n\n")
		case render.SectionImproved, render.SectionExamples:
			for _, item := range s.Items {
				b.WriteString("- ")
				b.WriteString(escapeMarkdown(item))
				b.WriteString("\n")
			}
			b.WriteString("\n")
		case render.SectionReason:
			b.WriteString("**" + render.LangEn + "** ")
			b.WriteString(escapeMarkdown(s.En))
			b.WriteString("\n\n")
			b.WriteString("**" + render.LangZh + "** ")
			b.WriteString(escapeMarkdown(s.Zh))
			b.WriteString("\n\n")
		case render.SectionNote:
			b.WriteString(escapeMarkdown(s.Body))
			b.WriteString("\n\n")
		}
	}

	return strings.TrimRight(b.String(), "\n") + "\n"
}

var inlineEscaper = strings.NewReplacer(
	`\`, `\\`,
	"*", `\*`,
	"_", `\_`,
	"`", "\\`",
	"[", `\[`,
	"]", `\]`,
	"~", `\~`,
)

// escapeMarkdown escapes inline emphasis, strikethrough and link syntax,
// a trailing '#' run that would close a heading, and anything at the start
// of s that would open a block.
func escapeMarkdown(s string) string {
	s = strings.ReplaceAll(s, "\n", " ")
	s = inlineEscaper.Replace(s)

	body := strings.TrimRight(s, " ")
	j := len(body)
	for j > 0 && body[j-1] == '#' {
		j--
	}
	if j < len(body) {
		s = body[:j] + `\` + s[j:]
	}

	trimmed := strings.TrimLeft(s, " ")
	lead := s[:len(s)-len(trimmed)]
	if trimmed == "" {
		return s
	}
	switch trimmed[0] {
	case '#', '>', '-', '+', '=', '|':
		return lead + `\` + trimmed
	}
	// Ordered list markers: "1." or "1)".
	i := 0
	for i < len(trimmed) && trimmed[i] >= '0' && trimmed[i] <= '9' {
		i++
	}
	if i > 0 && i < len(trimmed) && (trimmed[i] == '.' || trimmed[i] == ')') {
		return lead + trimmed[:i] + `\` + trimmed[i:]
	}
	return s
}
