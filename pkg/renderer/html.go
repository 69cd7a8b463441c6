package renderer

import (
	"bytes"
	"fmt"
	"html/template"
	"sort"
	"strings"

	"github.com/microcosm-cc/bluemonday"
	"github.com/nikogura/resume-builder/pkg/layout"
	"github.com/pkg/errors"
)

const blockTemplate = `{{define "block"}}
{{- if eq .Kind "columns"}}<div class="columns">{{range .Children}}<div class="column">{{template "block" .}}</div>{{end}}</div>
{{- else if eq .Kind "stack"}}<div class="stack">{{range .Children}}<div>{{template "block" .}}</div>{{end}}</div>
{{- else if eq .Kind "section"}}<section><h2 class="{{.Style}}">{{.Text}}</h2>{{range .Children}}{{template "block" .}}{{end}}</section>
{{- else if eq .Kind "list"}}<ul>{{range .Children}}{{template "block" .}}{{end}}</ul>
{{- else if eq .Kind "item"}}<li><span class="item">{{.Text}}</span>{{range .Children}}<p class="continuation">{{.Text}}</p>{{end}}</li>
{{- else if eq .Kind "pair"}}<p class="pair"><strong>{{.Label}}:</strong> {{.Text}}</p>
{{- else if .Link}}<a class="{{.Style}}" href="{{.Link}}">{{.Text}}</a>
{{- else}}<span class="{{.Style}}">{{if .Bold}}<strong>{{.Text}}</strong>{{else}}{{.Text}}{{end}}</span>
{{- end}}
{{- end}}
{{- range .}}{{template "block" .}}{{end}}`

const pageTemplate = `<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<title>{{.Title}}</title>
<style>{{.CSS}}</style>
</head>
<body>
{{.Body}}
</body>
</html>
`

const baseCSS = `@page { size: A4; margin: 1.5cm; }
body { font-family: Helvetica, Arial, sans-serif; font-size: 11pt; color: #222; }
.columns { display: flex; justify-content: space-between; align-items: flex-start; }
.stack { text-align: right; }
ul { margin: 0; padding-left: 1.2em; }
li { margin-bottom: 4pt; }
.continuation { margin: 2pt 0 0 0; }
.pair { margin: 0 0 2pt 0; }
a { color: #1a5fb4; text-decoration: none; }
`

//nolint:gochecknoglobals // parsed once
var (
	bodyTmpl = template.Must(template.New("body").Parse(blockTemplate))
	pageTmpl = template.Must(template.New("page").Parse(pageTemplate))
)

type htmlPage struct {
	Title string
	CSS   template.CSS
	Body  template.HTML
}

// newBodyPolicy allows only the markup the block template emits.
func newBodyPolicy() (p *bluemonday.Policy) {
	p = bluemonday.NewPolicy()
	p.AllowElements("div", "section", "h2", "ul", "li", "p", "span", "strong", "em", "a")
	p.AllowAttrs("class").Matching(bluemonday.SpaceSeparatedTokens).Globally()
	p.AllowAttrs("href").OnElements("a")
	p.AllowURLSchemes("http", "https", "mailto")
	p.RequireParseableURLs(true)
	return p
}

// HTML converts a document description to a standalone HTML page. User text
// is escaped by the template and the body is filtered through an allow-list
// before it is placed in the page.
func HTML(doc layout.Document) (page string, err error) {
	var body bytes.Buffer
	err = bodyTmpl.Execute(&body, doc.Blocks)
	if err != nil {
		err = errors.Wrap(err, "failed to render html body")
		return page, err
	}

	sanitized := newBodyPolicy().SanitizeBytes(body.Bytes())

	var out bytes.Buffer
	err = pageTmpl.Execute(&out, htmlPage{
		Title: doc.Title,
		//nolint:gosec // generated from numeric style values
		CSS: template.CSS(baseCSS + styleCSS(doc.Styles)),
		//nolint:gosec // sanitized above
		Body: template.HTML(sanitized),
	})
	if err != nil {
		err = errors.Wrap(err, "failed to render html page")
		return page, err
	}

	page = out.String()
	return page, err
}

// styleCSS emits one class rule per named style, in name order.
func styleCSS(styles map[string]layout.Style) (css string) {
	names := make([]string, 0, len(styles))
	for name := range styles {
		names = append(names, name)
	}
	sort.Strings(names)

	var sb strings.Builder
	for _, name := range names {
		s := styles[name]
		fmt.Fprintf(&sb, ".%s {", name)
		if s.FontSize > 0 {
			fmt.Fprintf(&sb, " font-size: %gpt;", s.FontSize)
		}
		if s.Bold {
			sb.WriteString(" font-weight: bold;")
		}
		if s.Italics {
			sb.WriteString(" font-style: italic;")
		}
		if s.Margin != [4]float64{} {
			// Margin is stored left, top, right, bottom.
			fmt.Fprintf(&sb, " margin: %gpt %gpt %gpt %gpt;", s.Margin[1], s.Margin[2], s.Margin[3], s.Margin[0])
		}
		sb.WriteString(" }\n")
	}
	css = sb.String()
	return css
}
