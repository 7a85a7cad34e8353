package present

import (
	"bytes"
	"fmt"
	"html/template"
	"io"

	"github.com/microcosm-cc/bluemonday"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/renderer/html"

	"github.com/ziadkadry99/writeguide/internal/browser"
	"github.com/ziadkadry99/writeguide/internal/content"
	"github.com/ziadkadry99/writeguide/internal/nav"
	"github.com/ziadkadry99/writeguide/internal/render"
)

// HTMLRenderer converts views to sanitized HTML.
type HTMLRenderer struct {
	md     goldmark.Markdown
	policy *bluemonday.Policy
	page   *template.Template
}

// NewHTMLRenderer builds the markdown pipeline and the page template.
func NewHTMLRenderer() (*HTMLRenderer, error) {
	md := goldmark.New(
		goldmark.WithExtensions(extension.Strikethrough),
		goldmark.WithRendererOptions(
			// Content strings may carry inline markup; the policy below
			// strips anything unsafe.
			html.WithUnsafe(),
		),
	)
	page, err := template.New("page").Parse(pageTemplate)
	if err != nil {
		return nil, fmt.Errorf("parsing page template: %w", err)
	}
	return &HTMLRenderer{md: md, policy: contentPolicy(), page: page}, nil
}

func contentPolicy() *bluemonday.Policy {
	policy := bluemonday.UGCPolicy()
	policy.AllowAttrs("class").OnElements("section", "div", "p", "span", "ul")
	policy.RequireNoFollowOnLinks(true)
	return policy
}

// Fragment renders the content area of v.
func (r *HTMLRenderer) Fragment(v render.View) (template.HTML, error) {
	var buf bytes.Buffer
	if err := r.md.Convert([]byte(Markdown(v)), &buf); err != nil {
		return "", fmt.Errorf("converting markdown: %w", err)
	}
	return template.HTML(r.policy.SanitizeBytes(buf.Bytes())), nil
}

// pageData holds what the page template needs.
type pageData struct {
	Title        string
	Content      template.HTML
	NavHTML      template.HTML
	NavError     string
	IntroVisible bool
	SidebarOpen  bool
	Tone         string
}

// Page writes a standalone HTML document for s, sidebar included.
func (r *HTMLRenderer) Page(w io.Writer, s browser.Screen) error {
	body, err := r.Fragment(s.View)
	if err != nil {
		return err
	}
	title := s.View.Title
	if title == "" {
		title = "Writing Guide"
	}
	tone := string(content.TypeImprovement)
	if s.View.Type == content.TypeTranslation {
		tone = string(content.TypeTranslation)
	}
	data := pageData{
		Title:        title,
		Content:      body,
		NavHTML:      template.HTML(nav.ToHTML(s.Nav)),
		NavError:     s.NavError,
		IntroVisible: s.IntroVisible,
		SidebarOpen:  s.SidebarOpen,
		Tone:         tone,
	}
	return r.page.Execute(w, data)
}

const pageTemplate = `<!DOCTYPE html>
<html lang="zh-Hant">
<head>
  <meta charset="UTF-8">
  <meta name="viewport" content="width=device-width, initial-scale=1.0">
  <title>{{.Title}}</title>
  <style>
    body { margin: 0; font-family: system-ui, sans-serif; display: flex; }
    #sidebar { width: 280px; padding: 1rem; background: #f5f5f4; }
    #sidebar:not(.open) { display: none; }
    #sidebar a { display: block; padding: .5rem 1rem; color: #44403c; text-decoration: none; border-radius: .375rem; }
    #sidebar a.active { background: #e0f2fe; color: #0369a1; font-weight: 600; }
    main { flex: 1; padding: 2rem; max-width: 900px; }
    blockquote { font-style: italic; background: #fafaf9; padding: .75rem; margin: 0; }
    .tone-improvement ul { color: #15803d; }
    .tone-translation ul { color: #1d4ed8; }
  </style>
</head>
<body>
  <nav id="sidebar"{{if .SidebarOpen}} class="open"{{end}}>
    {{if .NavError}}<p class="nav-error">{{.NavError}}</p>{{else}}{{.NavHTML}}{{end}}
  </nav>
  <main{{if .IntroVisible}} class="show-intro"{{end}}>
    <article id="content-display" class="tone-{{.Tone}}">
      {{.Content}}
    </article>
  </main>
</body>
</html>
`
