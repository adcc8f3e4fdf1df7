// Package resolver finds, compiles and renders the view for a request.
package resolver

import (
	"context"
	"path/filepath"

	"go.trai.ch/views/internal/core/domain"
	"go.trai.ch/views/internal/core/ports"
	"go.trai.ch/zerr"
)

// Options are the settings the resolver needs.
type Options struct {
	// Folder is the absolute template root.
	Folder      string
	ContentType string
	Extension   string
	ModelType   domain.ModelType
}

// OptionsFromSettings derives resolver options from loaded settings.
func OptionsFromSettings(s *domain.Settings) Options {
	return Options{
		Folder:      s.Folder(),
		ContentType: s.ContentType,
		Extension:   s.Extension,
		ModelType:   s.ModelType,
	}
}

// Resolver walks the candidate list for a request and renders the first view that produces output.
type Resolver struct {
	engine    ports.Engine
	fs        ports.FileSystem
	plugins   ports.Plugin
	logger    ports.Logger
	telemetry ports.Telemetry
	opts      Options
}

// New creates a Resolver. plugins may be an empty Pipeline.
func New(
	engine ports.Engine,
	fs ports.FileSystem,
	plugins ports.Plugin,
	logger ports.Logger,
	telemetry ports.Telemetry,
	opts Options,
) *Resolver {
	return &Resolver{
		engine:    engine,
		fs:        fs,
		plugins:   plugins,
		logger:    logger,
		telemetry: telemetry,
		opts:      opts,
	}
}

// Options returns the options the resolver was built with.
func (r *Resolver) Options() Options {
	return r.opts
}

// Candidates returns the candidate names tried for params, most specific first.
func (r *Resolver) Candidates(params domain.Params) []string {
	return domain.Candidates(params, r.opts.Extension)
}

// TemplateParams returns the plugin parameters for a candidate name.
func (r *Resolver) TemplateParams(name string) domain.Params {
	return domain.TemplateParams(name, r.opts.Folder, filepath.Join(r.opts.Folder, name))
}

// Render appends a rendered step to req when a candidate produces output.
//
// Nothing happens unless the last step carries a model. Missing files, preprocessing failures
// and compile failures move on to the next candidate. A failure while running a compiled view
// stops the search; it is logged and returned.
func (r *Resolver) Render(ctx context.Context, req *domain.Request) error {
	last, ok := req.Steps.Last()
	if !ok || !last.HasModel {
		return nil
	}

	for _, name := range r.Candidates(req.Params) {
		params := r.TemplateParams(name)
		key := domain.NewTemplateKey(params.Get(domain.ParamTemplatePath), domain.ResolveGlobal)

		cached := r.engine.IsCached(key, r.opts.ModelType)
		var path string
		if !cached {
			var found bool
			path, found = r.fs.ResolveCaseInsensitive(params.Get(domain.ParamTemplatePath))
			if !found {
				continue
			}
		}

		vctx, vertex := r.telemetry.Record(ctx, name)
		if cached {
			vertex.Cached()
		} else if err := r.load(vctx, req, params, key, path); err != nil {
			r.logger.Debug("skipping view candidate", "template", name, "error", err)
			vertex.Complete(err)
			continue
		}

		content, err := r.engine.Run(vctx, key, r.opts.ModelType, last.Model)
		if err != nil {
			err = zerr.With(zerr.Wrap(err, "render view"), "template", name)
			vertex.Complete(err)
			r.logger.Error(err)
			return err
		}
		vertex.Complete(nil)

		if content == "" {
			continue
		}
		req.Steps.CreateStep(name, r.opts.ContentType, content)
		return nil
	}
	return nil
}

// load reads the file at path, runs the plugin pipeline and compiles the result under key.
func (r *Resolver) load(ctx context.Context, req *domain.Request, params domain.Params, key domain.TemplateKey, path string) error {
	ctx, err := domain.EnterExpansion(ctx, key)
	if err != nil {
		return err
	}

	source, err := r.fs.ReadFile(path)
	if err != nil {
		return err
	}
	source, err = r.plugins.Execute(ctx, req, params, source)
	if err != nil {
		return err
	}
	return r.engine.Compile(ctx, source, key, r.opts.ModelType)
}
