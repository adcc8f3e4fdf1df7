package engine

import (
	"io"
	"strconv"

	"github.com/flosch/pongo2/v6"
	"go.trai.ch/zerr"
)

// Pongo2Dialect renders Django-style templates with pongo2. The model is bound to "model".
type Pongo2Dialect struct {
	set *pongo2.TemplateSet
}

var pongoSyntax = Syntax{
	Include:    func(path string) string { return "{{ view_include(" + strconv.Quote(path) + ") }}" },
	RenderBody: "{{ render_body() }}",
}

// NewPongo2Dialect creates a dialect with its own template set.
// The set cannot load files; includes are served from the engine cache.
func NewPongo2Dialect() *Pongo2Dialect {
	return &Pongo2Dialect{set: pongo2.NewSet("views", cacheOnlyLoader{})}
}

// Name implements Dialect.
func (d *Pongo2Dialect) Name() string { return "pongo2" }

// Parse implements Dialect.
func (d *Pongo2Dialect) Parse(_, source string) (Compiled, error) {
	tpl, err := d.set.FromString(translate(source, pongoSyntax))
	if err != nil {
		return nil, err
	}
	return &pongoTemplate{tpl: tpl}, nil
}

type pongoTemplate struct {
	tpl *pongo2.Template
}

func (t *pongoTemplate) Execute(model any, hooks Hooks) (string, error) {
	return t.tpl.Execute(pongo2.Context{
		"model": model,
		"view_include": func(path string) (*pongo2.Value, error) {
			if hooks.Include == nil {
				return pongo2.AsSafeValue(""), nil
			}
			out, err := hooks.Include(path)
			if err != nil {
				return nil, err
			}
			return pongo2.AsSafeValue(out), nil
		},
		"render_body": func() *pongo2.Value {
			return pongo2.AsSafeValue(hooks.Body)
		},
	})
}

// cacheOnlyLoader rejects every file lookup made through pongo2 tags.
type cacheOnlyLoader struct{}

func (cacheOnlyLoader) Abs(_, name string) string { return name }

func (cacheOnlyLoader) Get(path string) (io.Reader, error) {
	return nil, zerr.With(zerr.New("templates are loaded through include directives"), "path", path)
}
