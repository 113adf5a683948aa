package reports

import (
	"bytes"
	"fmt"
	"html/template"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/renderer/html"

	"github.com/dominikjosefbell/space-ai-alert-mvp/internal/models"
)

// HTMLRenderer converts bulletin Markdown into a standalone HTML page.
type HTMLRenderer struct {
	md   goldmark.Markdown
	page *template.Template
}

// NewHTMLRenderer configures goldmark with GFM tables for the summary
// block and wires the page template.
func NewHTMLRenderer() *HTMLRenderer {
	md := goldmark.New(
		goldmark.WithExtensions(extension.GFM),
		goldmark.WithParserOptions(
			parser.WithAutoHeadingID(),
		),
		goldmark.WithRendererOptions(
			html.WithHardWraps(),
		),
	)
	return &HTMLRenderer{
		md:   md,
		page: template.Must(template.New("bulletin").Parse(pageTemplate)),
	}
}

type pageData struct {
	Title    string
	Severity string
	Content  template.HTML
}

// Render converts the alert's bulletin Markdown into the full HTML page.
func (r *HTMLRenderer) Render(alert *models.Alert) ([]byte, error) {
	var body bytes.Buffer
	if err := r.md.Convert([]byte(RenderMarkdown(alert)), &body); err != nil {
		return nil, fmt.Errorf("failed to convert bulletin markdown: %w", err)
	}

	var page bytes.Buffer
	err := r.page.Execute(&page, pageData{
		Title:    "Environmental Bulletin " + alert.Timestamp.Format("2006-01-02 15:04"),
		Severity: alert.Risk.Severity.String(),
		Content:  template.HTML(body.String()),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to execute bulletin template: %w", err)
	}
	return page.Bytes(), nil
}

const pageTemplate = `<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<meta name="viewport" content="width=device-width, initial-scale=1">
<title>{{.Title}}</title>
<style>
body { font-family: -apple-system, "Segoe UI", Roboto, sans-serif; max-width: 760px; margin: 2rem auto; padding: 0 1rem; color: #1c1e21; line-height: 1.55; }
h1 { border-bottom: 2px solid #e4e6eb; padding-bottom: .4rem; }
h2 { margin-top: 2rem; }
table { border-collapse: collapse; width: 100%; }
th, td { border: 1px solid #d0d3d8; padding: .4rem .7rem; text-align: left; }
th { background: #f0f2f5; }
.severity { display: inline-block; padding: .2rem .7rem; border-radius: 4px; font-weight: 600; background: #f0f2f5; }
blockquote { border-left: 3px solid #d0d3d8; margin-left: 0; padding-left: 1rem; color: #555; }
</style>
</head>
<body>
<p class="severity">Severity: {{.Severity}}</p>
{{.Content}}
</body>
</html>
`
