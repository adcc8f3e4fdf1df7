package engine

import (
	"regexp"
	"strings"
)

var (
	includeDirective    = regexp.MustCompile(`@Include\(@?"(.*?)"\)`)
	layoutDirective     = regexp.MustCompile(`this\.Layout = @"(.*?)";`)
	emptyCodeBlock      = regexp.MustCompile(`@\{\s*\}`)
	renderBodyDirective = "@RenderBody()"
)

// Dialect turns prepared template text into an executable form.
type Dialect interface {
	// Name returns the configuration name of the dialect.
	Name() string
	// Parse compiles source. name is used in error messages only.
	Parse(name, source string) (Compiled, error)
}

// Compiled is a parsed template ready to render.
type Compiled interface {
	Execute(model any, hooks Hooks) (string, error)
}

// Hooks connect a running template to the rest of the cache.
type Hooks struct {
	// Include renders the include artifact stored under path.
	Include func(path string) (string, error)
	// Body is the rendered child view when the template runs as a layout.
	Body string
}

// Syntax tells translate how a dialect spells the two runtime directives.
type Syntax struct {
	Include    func(path string) string
	RenderBody string
}

// translate strips the layout directive and rewrites include and body directives into dialect syntax.
func translate(source string, syntax Syntax) string {
	out := layoutDirective.ReplaceAllString(source, "")
	out = emptyCodeBlock.ReplaceAllString(out, "")
	out = includeDirective.ReplaceAllStringFunc(out, func(m string) string {
		sub := includeDirective.FindStringSubmatch(m)
		return syntax.Include(sub[1])
	})
	return strings.ReplaceAll(out, renderBodyDirective, syntax.RenderBody)
}
