package engine

import (
	"bytes"
	"html/template"
	"strconv"
)

// HTMLDialect renders templates with html/template. The model is the dot value.
type HTMLDialect struct{}

var htmlSyntax = Syntax{
	Include:    func(path string) string { return "{{include " + strconv.Quote(path) + "}}" },
	RenderBody: "{{renderBody}}",
}

// Name implements Dialect.
func (HTMLDialect) Name() string { return "html" }

// Parse implements Dialect.
func (HTMLDialect) Parse(name, source string) (Compiled, error) {
	tpl, err := template.New(name).Funcs(htmlFuncs(Hooks{})).Parse(translate(source, htmlSyntax))
	if err != nil {
		return nil, err
	}
	return &htmlTemplate{tpl: tpl}, nil
}

type htmlTemplate struct {
	// tpl is never executed directly; every run works on a clone so hooks can be rebound.
	tpl *template.Template
}

func (t *htmlTemplate) Execute(model any, hooks Hooks) (string, error) {
	clone, err := t.tpl.Clone()
	if err != nil {
		return "", err
	}
	clone.Funcs(htmlFuncs(hooks))

	var buf bytes.Buffer
	if err := clone.Execute(&buf, model); err != nil {
		return "", err
	}
	return buf.String(), nil
}

func htmlFuncs(hooks Hooks) template.FuncMap {
	return template.FuncMap{
		"include": func(path string) (template.HTML, error) {
			if hooks.Include == nil {
				return "", nil
			}
			out, err := hooks.Include(path)
			return template.HTML(out), err //nolint:gosec // Include output was escaped by its own template
		},
		"renderBody": func() template.HTML {
			return template.HTML(hooks.Body) //nolint:gosec // Body output was escaped by its own template
		},
		"raw": func(s string) template.HTML {
			return template.HTML(s) //nolint:gosec // Explicit opt-out used by template authors
		},
	}
}
