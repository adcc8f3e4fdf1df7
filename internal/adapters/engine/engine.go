// Package engine implements ports.Engine with an in-memory artifact cache over a template dialect.
package engine

import (
	"context"
	"strconv"
	"sync"

	"github.com/cespare/xxhash/v2"
	"go.trai.ch/views/internal/core/domain"
	"go.trai.ch/views/internal/core/ports"
	"go.trai.ch/zerr"
	"golang.org/x/sync/singleflight"
)

var _ ports.Engine = (*Engine)(nil)

type artifactKey struct {
	key       domain.TemplateKey
	modelType domain.ModelType
}

type artifact struct {
	digest   uint64
	layout   string
	compiled Compiled
}

// Engine caches one compiled artifact per (TemplateKey, ModelType).
// Compiling the same source twice is a no-op; the source digest decides.
type Engine struct {
	dialect Dialect

	mu        sync.RWMutex
	artifacts map[artifactKey]*artifact

	group singleflight.Group
}

// New creates an engine rendering through dialect.
func New(dialect Dialect) *Engine {
	return &Engine{
		dialect:   dialect,
		artifacts: make(map[artifactKey]*artifact),
	}
}

// NewForDialect creates an engine for a configured dialect name.
func NewForDialect(name string) (*Engine, error) {
	switch name {
	case domain.EngineHTML, "":
		return New(HTMLDialect{}), nil
	case domain.EnginePongo2:
		return New(NewPongo2Dialect()), nil
	default:
		return nil, zerr.With(zerr.Wrap(domain.ErrConfigInvalid, "unknown engine dialect"), "dialect", name)
	}
}

// Dialect returns the name of the dialect in use.
func (e *Engine) Dialect() string {
	return e.dialect.Name()
}

// IsCached implements ports.Engine.
func (e *Engine) IsCached(key domain.TemplateKey, modelType domain.ModelType) bool {
	_, ok := e.lookup(key, modelType)
	return ok
}

// Len returns the number of cached artifacts.
func (e *Engine) Len() int {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return len(e.artifacts)
}

func (e *Engine) lookup(key domain.TemplateKey, modelType domain.ModelType) (*artifact, bool) {
	e.mu.RLock()
	defer e.mu.RUnlock()
	a, ok := e.artifacts[artifactKey{key: key, modelType: modelType}]
	return a, ok
}

// Compile implements ports.Engine.
func (e *Engine) Compile(_ context.Context, source string, key domain.TemplateKey, modelType domain.ModelType) error {
	digest := xxhash.Sum64String(source)
	if a, ok := e.lookup(key, modelType); ok && a.digest == digest {
		return nil
	}

	flightKey := key.String() + "\x00" + string(modelType) + "\x00" + strconv.FormatUint(digest, 16)
	_, err, _ := e.group.Do(flightKey, func() (any, error) {
		compiled, err := e.dialect.Parse(key.Name.String(), source)
		if err != nil {
			return nil, zerr.With(zerr.Wrap(domain.ErrCompileFailed, err.Error()), "template", key.String())
		}

		layout, _ := domain.FindLayout(source)

		e.mu.Lock()
		defer e.mu.Unlock()
		e.artifacts[artifactKey{key: key, modelType: modelType}] = &artifact{
			digest:   digest,
			layout:   layout,
			compiled: compiled,
		}
		return nil, nil
	})
	return err
}

// Run implements ports.Engine. Includes are rendered from their own artifacts, and a template
// that names a layout is rendered inside the layout artifact stored under that name.
func (e *Engine) Run(ctx context.Context, key domain.TemplateKey, modelType domain.ModelType, model any) (string, error) {
	return e.run(ctx, key, modelType, model, "")
}

func (e *Engine) run(ctx context.Context, key domain.TemplateKey, modelType domain.ModelType, model any, body string) (string, error) {
	a, ok := e.lookup(key, modelType)
	if !ok {
		return "", zerr.With(zerr.Wrap(domain.ErrTemplateNotCached, "render"), "template", key.String())
	}

	ctx, err := domain.EnterExpansion(ctx, key)
	if err != nil {
		return "", err
	}

	out, err := a.compiled.Execute(model, Hooks{
		Include: func(path string) (string, error) {
			return e.run(ctx, domain.NewTemplateKey(path, domain.ResolveInclude), modelType, model, "")
		},
		Body: body,
	})
	if err != nil {
		return "", zerr.With(zerr.Wrap(domain.ErrRunFailed, err.Error()), "template", key.String())
	}

	if a.layout == "" {
		return out, nil
	}

	layoutKey := domain.NewTemplateKey(a.layout, domain.ResolveLayout)
	if !e.IsCached(layoutKey, modelType) {
		return "", zerr.With(zerr.Wrap(domain.ErrRunFailed, "layout not compiled"), "layout", a.layout)
	}
	return e.run(ctx, layoutKey, modelType, model, out)
}
