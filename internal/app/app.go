// Package app implements the application layer for views.
package app

import (
	"context"
	"iter"
	"path/filepath"
	"runtime"
	"slices"
	"strings"

	"go.trai.ch/views/internal/core/domain"
	"go.trai.ch/views/internal/core/ports"
	"go.trai.ch/views/internal/engine/resolver"
	"go.trai.ch/zerr"
	"golang.org/x/sync/errgroup"
)

// TemplateWalker enumerates template files below a folder.
type TemplateWalker interface {
	WalkTemplates(root, extension string, ignores []string) iter.Seq[string]
}

// FileHasher fingerprints a file.
type FileHasher interface {
	ComputeFileHash(path string) (uint64, error)
}

// RenderRequest is one entry of a batch render.
type RenderRequest struct {
	Params domain.Params
	Model  any
}

// RenderResult is the outcome of one batch entry.
type RenderResult struct {
	Params domain.Params
	Step   *domain.ViewStep
	Err    error
}

// CheckResult is the outcome of compiling one template file.
type CheckResult struct {
	Name   string
	Digest uint64
	Err    error
}

// App represents the main application logic.
type App struct {
	resolver *resolver.Resolver
	engine   ports.Engine
	fs       ports.FileSystem
	plugins  ports.Plugin
	walker   TemplateWalker
	hasher   FileHasher
	logger   ports.Logger

	concurrency int
}

// New creates a new App instance.
func New(
	res *resolver.Resolver,
	engine ports.Engine,
	fs ports.FileSystem,
	plugins ports.Plugin,
	walker TemplateWalker,
	hasher FileHasher,
	logger ports.Logger,
) *App {
	return &App{
		resolver:    res,
		engine:      engine,
		fs:          fs,
		plugins:     plugins,
		walker:      walker,
		hasher:      hasher,
		logger:      logger,
		concurrency: runtime.GOMAXPROCS(0),
	}
}

// SetConcurrency limits how many views batch operations render at once.
// Values below one keep the current limit.
func (a *App) SetConcurrency(n int) {
	if n > 0 {
		a.concurrency = n
	}
}

// Candidates returns the template names tried for params, most specific first.
func (a *App) Candidates(params domain.Params) []string {
	return a.resolver.Candidates(params)
}

// Folder returns the absolute template folder.
func (a *App) Folder() string {
	return a.resolver.Options().Folder
}

// Render resolves and renders the view for params with model.
// It fails with domain.ErrTemplateNotFound when no candidate produced output.
func (a *App) Render(ctx context.Context, params domain.Params, model any) (*domain.ViewStep, error) {
	req := domain.NewRequest(params)
	req.Steps.CreateModelStep("model", model)

	if err := a.resolver.Render(ctx, req); err != nil {
		return nil, err
	}

	last, _ := req.Steps.Last()
	if last.HasModel {
		err := zerr.With(zerr.Wrap(domain.ErrTemplateNotFound, "no view rendered"),
			"candidates", strings.Join(a.Candidates(params), ", "))
		return nil, err
	}
	return &last, nil
}

// RenderBatch renders every request concurrently. Results keep the order of reqs;
// a failing entry does not stop the others.
func (a *App) RenderBatch(ctx context.Context, reqs []RenderRequest) []RenderResult {
	results := make([]RenderResult, len(reqs))

	var g errgroup.Group
	g.SetLimit(a.concurrency)
	for i, r := range reqs {
		g.Go(func() error {
			step, err := a.Render(ctx, r.Params, r.Model)
			results[i] = RenderResult{Params: r.Params, Step: step, Err: err}
			return nil
		})
	}
	_ = g.Wait()

	return results
}

// Check compiles every template under the folder as a top-level view, including the
// includes and layouts it references. Results are sorted by name.
func (a *App) Check(ctx context.Context) []CheckResult {
	opts := a.resolver.Options()
	names := slices.Collect(a.walker.WalkTemplates(opts.Folder, opts.Extension, nil))
	slices.Sort(names)

	results := make([]CheckResult, len(names))

	var g errgroup.Group
	g.SetLimit(a.concurrency)
	for i, name := range names {
		g.Go(func() error {
			results[i] = a.checkOne(ctx, name)
			return nil
		})
	}
	_ = g.Wait()

	failed := 0
	for _, r := range results {
		if r.Err != nil {
			failed++
			a.logger.Debug("template failed to compile", "template", r.Name, "error", r.Err)
		}
	}
	a.logger.Debug("checked templates", "total", len(results), "failed", failed)
	return results
}

func (a *App) checkOne(ctx context.Context, name string) CheckResult {
	opts := a.resolver.Options()
	params := a.resolver.TemplateParams(name)
	path := filepath.Join(opts.Folder, name)
	key := domain.NewTemplateKey(params.Get(domain.ParamTemplatePath), domain.ResolveGlobal)
	result := CheckResult{Name: name}

	digest, err := a.hasher.ComputeFileHash(path)
	if err != nil {
		result.Err = err
		return result
	}
	result.Digest = digest

	ctx, err = domain.EnterExpansion(ctx, key)
	if err != nil {
		result.Err = err
		return result
	}
	source, err := a.fs.ReadFile(path)
	if err != nil {
		result.Err = err
		return result
	}
	source, err = a.plugins.Execute(ctx, domain.NewRequest(nil), params, source)
	if err != nil {
		result.Err = err
		return result
	}
	result.Err = a.engine.Compile(ctx, source, key, opts.ModelType)
	return result
}
