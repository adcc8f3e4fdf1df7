package plugins

import (
	"context"
	"path/filepath"

	"go.trai.ch/views/internal/core/domain"
	"go.trai.ch/views/internal/core/ports"
)

var _ ports.Plugin = (*Layout)(nil)

// Layout compiles the template named by the first layout directive in a source.
// The source itself is returned unchanged; the engine strips the directive when it compiles.
type Layout struct {
	deps    Deps
	plugins Pipeline
}

// NewLayout creates the layout plugin. plugins run over the layout source before it is compiled.
func NewLayout(deps Deps, plugins Pipeline) *Layout {
	return &Layout{deps: deps, plugins: plugins}
}

// Name implements ports.Plugin.
func (p *Layout) Name() string { return domain.PluginLayout }

// Plugins returns the pipeline run over layout sources.
func (p *Layout) Plugins() Pipeline { return p.plugins }

// Execute implements ports.Plugin.
func (p *Layout) Execute(ctx context.Context, req *domain.Request, params domain.Params, source string) (string, error) {
	name, ok := domain.FindLayout(source)
	if !ok {
		return source, nil
	}

	safeName := domain.FixPathSeparators(name)
	layoutPath := filepath.Join(params.Get(domain.ParamTemplateFolder), safeName)
	// The key keeps the name as written so the engine can find it from the directive.
	key := domain.NewTemplateKey(name, domain.ResolveLayout)

	layoutParams := params.With(
		domain.ParamTemplateName, safeName,
		domain.ParamTemplatePath, layoutPath,
	)
	err := compileDependency(ctx, p.deps, key, layoutPath, func(ctx context.Context, body string) (string, error) {
		return p.plugins.Execute(ctx, req, layoutParams, body)
	})
	if err != nil {
		return "", err
	}
	return source, nil
}
