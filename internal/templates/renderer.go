package templates

import (
	"bytes"
	"fmt"
	"sync"
	"text/template"

	"github.com/magic-expo/cli/internal/options"
)

// Generated sources are full of JSX braces, so actions use <% %>.
const (
	leftDelim  = "<%"
	rightDelim = "%>"
)

var (
	parseOnce sync.Once
	parsed    *template.Template
	parseErr  error
)

func sources() (*template.Template, error) {
	parseOnce.Do(func() {
		parsed, parseErr = template.New("sources").
			Delims(leftDelim, rightDelim).
			Option("missingkey=error").
			ParseFS(sourceFS, sourceDir+"/*.tmpl")
		if parseErr != nil {
			parseErr = fmt.Errorf("parsing embedded templates: %w", parseErr)
		}
	})
	return parsed, parseErr
}

// Renderer handles template rendering with data substitution.
type Renderer struct {
	data TemplateData
}

// NewRenderer creates a new renderer with the given template data.
func NewRenderer(data TemplateData) *Renderer {
	return &Renderer{data: data}
}

// RenderFile renders a single embedded source by name (e.g. "home.tsx.tmpl").
func (r *Renderer) RenderFile(name string) (string, error) {
	tmpl, err := sources()
	if err != nil {
		return "", err
	}

	var buf bytes.Buffer
	if err := tmpl.ExecuteTemplate(&buf, name, r.data); err != nil {
		return "", fmt.Errorf("executing template %s: %w", name, err)
	}
	return buf.String(), nil
}

// renderSource returns a Generator backed by an embedded source.
func renderSource(name string) Generator {
	return func(cfg options.Config) (string, error) {
		return NewRenderer(newTemplateData(cfg)).RenderFile(name)
	}
}
