package plugins

import (
	"context"
	"path/filepath"

	"go.trai.ch/views/internal/core/domain"
	"go.trai.ch/views/internal/core/ports"
)

var _ ports.Plugin = (*Include)(nil)

// Include compiles every template named by an include directive and rewrites the directive
// argument to the absolute path the artifact is cached under.
type Include struct {
	deps Deps
}

// NewInclude creates the include plugin.
func NewInclude(deps Deps) *Include {
	return &Include{deps: deps}
}

// Name implements ports.Plugin.
func (p *Include) Name() string { return domain.PluginInclude }

// Execute implements ports.Plugin. Nested includes are compiled depth-first before their parent.
func (p *Include) Execute(ctx context.Context, req *domain.Request, params domain.Params, source string) (string, error) {
	names := domain.FindIncludes(source)
	if len(names) == 0 {
		return source, nil
	}

	folder := params.Get(domain.ParamTemplateFolder)
	tokens := domain.NewTokenList()
	for _, name := range names {
		includePath := filepath.Join(folder, domain.FixPathSeparators(name))
		key := domain.NewTemplateKey(includePath, domain.ResolveInclude)

		err := compileDependency(ctx, p.deps, key, includePath, func(ctx context.Context, body string) (string, error) {
			return p.Execute(ctx, req, params, body)
		})
		if err != nil {
			return "", err
		}
		tokens.Add(name, includePath)
	}
	return tokens.Replace(source), nil
}
