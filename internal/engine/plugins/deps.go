package plugins

import (
	"context"

	"go.trai.ch/views/internal/core/domain"
	"go.trai.ch/views/internal/core/ports"
	"go.trai.ch/zerr"
)

// Deps are the collaborators shared by the built-in plugins.
type Deps struct {
	Engine    ports.Engine
	FS        ports.FileSystem
	Freshness ports.FreshnessTracker
	Logger    ports.Logger
	ModelType domain.ModelType
}

// Build assembles the pipeline named by names. Layout plugins run layoutNames over layout sources.
func Build(names, layoutNames []string, deps Deps) (Pipeline, error) {
	pipeline := make(Pipeline, 0, len(names))
	for _, name := range names {
		switch name {
		case domain.PluginInclude:
			pipeline = append(pipeline, NewInclude(deps))
		case domain.PluginLayout:
			layout := NewLayout(deps, nil)
			nested := make(Pipeline, 0, len(layoutNames))
			for _, n := range layoutNames {
				if n == domain.PluginLayout {
					// A layout naming another layout is handled by the same plugin.
					nested = append(nested, layout)
					continue
				}
				built, err := Build([]string{n}, nil, deps)
				if err != nil {
					return nil, err
				}
				nested = append(nested, built...)
			}
			layout.plugins = nested
			pipeline = append(pipeline, layout)
		default:
			return nil, zerr.With(zerr.Wrap(domain.ErrUnknownPlugin, "build pipeline"), "plugin", name)
		}
	}
	return pipeline, nil
}

// compileDependency is the shared path for include and layout targets: it (re)compiles the
// file at path under key when the engine has no artifact or the file changed on disk.
// A missing file is not an error; the caller decides what that means.
func compileDependency(
	ctx context.Context,
	deps Deps,
	key domain.TemplateKey,
	path string,
	preprocess func(ctx context.Context, source string) (string, error),
) error {
	fresh := deps.Freshness.IsFresh(path)

	// A cached target can still close a cycle when its parent changed.
	ctx, err := domain.EnterExpansion(ctx, key)
	if err != nil {
		return err
	}

	if deps.Engine.IsCached(key, deps.ModelType) && !fresh {
		return nil
	}
	if !deps.FS.Exists(path) {
		deps.Logger.Debug("template dependency not found", "template", key.String(), "path", path)
		return nil
	}

	source, err := deps.FS.ReadFile(path)
	if err != nil {
		return err
	}
	source, err = preprocess(ctx, source)
	if err != nil {
		return err
	}
	return deps.Engine.Compile(ctx, source, key, deps.ModelType)
}
