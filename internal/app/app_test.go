package app_test

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/views/internal/adapters/engine"
	"go.trai.ch/views/internal/adapters/freshness"
	"go.trai.ch/views/internal/adapters/fs"
	"go.trai.ch/views/internal/adapters/telemetry"
	"go.trai.ch/views/internal/app"
	"go.trai.ch/views/internal/core/domain"
	"go.trai.ch/views/internal/core/ports/mocks"
	"go.trai.ch/views/internal/engine/plugins"
	"go.trai.ch/views/internal/engine/resolver"
	"go.uber.org/mock/gomock"
)

func writeViews(t *testing.T, files map[string]string) string {
	t.Helper()
	dir := t.TempDir()
	for name, content := range files {
		path := filepath.Join(dir, filepath.FromSlash(name))
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o750))
		require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	}
	return dir
}

func newApp(t *testing.T, dir string) *app.App {
	t.Helper()
	ctrl := gomock.NewController(t)
	log := mocks.NewMockLogger(ctrl)
	log.EXPECT().Debug(gomock.Any(), gomock.Any()).AnyTimes()
	log.EXPECT().Error(gomock.Any()).AnyTimes()

	settings := domain.DefaultSettings()
	settings.TemplateFolder = dir

	fileSystem := fs.NewFileSystem()
	eng := engine.New(engine.HTMLDialect{})
	pipeline, err := plugins.Build(settings.Plugins, settings.LayoutPlugins, plugins.Deps{
		Engine:    eng,
		FS:        fileSystem,
		Freshness: freshness.NewTracker(fileSystem),
		Logger:    log,
		ModelType: settings.ModelType,
	})
	require.NoError(t, err)

	res := resolver.New(eng, fileSystem, pipeline, log, telemetry.NewNoOp(), resolver.OptionsFromSettings(settings))
	a := app.New(res, eng, fileSystem, pipeline, fs.NewWalker(), fs.NewHasher(), log)
	a.SetConcurrency(4)
	return a
}

func TestApp_Render(t *testing.T) {
	dir := writeViews(t, map[string]string{
		"layout.cshtml":    "<main>@RenderBody()</main>",
		"Blog/Post.cshtml": `@{ this.Layout = @"layout.cshtml"; }<h1>{{.title}}</h1>`,
	})
	a := newApp(t, dir)

	step, err := a.Render(context.Background(), domain.Params{
		domain.ParamArea:   "Blog",
		domain.ParamAction: "post",
	}, map[string]any{"title": "Hello"})
	require.NoError(t, err)

	assert.Equal(t, filepath.Join("Blog", "post.cshtml"), step.Name)
	assert.Equal(t, "text/html", step.ContentType)
	assert.Equal(t, "<main><h1>Hello</h1></main>", step.Content)
	assert.Equal(t, dir, a.Folder())
}

func TestApp_RenderNotFound(t *testing.T) {
	a := newApp(t, writeViews(t, nil))

	_, err := a.Render(context.Background(), domain.Params{domain.ParamAction: "missing"}, map[string]any{})
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrTemplateNotFound))
}

func TestApp_RenderRunFailure(t *testing.T) {
	dir := writeViews(t, map[string]string{
		"broken.cshtml": "{{index .items 3}}",
	})
	a := newApp(t, dir)

	_, err := a.Render(context.Background(), domain.Params{domain.ParamAction: "broken"}, map[string]any{"items": []any{}})
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrRunFailed))
}

func TestApp_RenderBatch(t *testing.T) {
	dir := writeViews(t, map[string]string{
		"header.cshtml":  "<h>{{.n}}</h>",
		"one.cshtml":     `@Include("header.cshtml")one`,
		"two.cshtml":     `@Include("header.cshtml")two`,
		"default.cshtml": "fallback {{.n}}",
	})
	a := newApp(t, dir)

	reqs := []app.RenderRequest{
		{Params: domain.Params{domain.ParamAction: "one"}, Model: map[string]any{"n": 1}},
		{Params: domain.Params{domain.ParamAction: "two"}, Model: map[string]any{"n": 2}},
		{Params: domain.Params{domain.ParamAction: "three"}, Model: map[string]any{"n": 3}},
	}
	results := a.RenderBatch(context.Background(), reqs)

	require.Len(t, results, 3)
	for _, r := range results {
		require.NoError(t, r.Err)
	}
	assert.Equal(t, "<h>1</h>one", results[0].Step.Content)
	assert.Equal(t, "<h>2</h>two", results[1].Step.Content)
	assert.Equal(t, "fallback 3", results[2].Step.Content)
	assert.Equal(t, "default.cshtml", results[2].Step.Name)
}

func TestApp_Candidates(t *testing.T) {
	a := newApp(t, writeViews(t, nil))

	got := a.Candidates(domain.Params{domain.ParamArea: "A", domain.ParamConcern: "C", domain.ParamAction: "X"})
	assert.Equal(t, filepath.Join("A", "C", "X.cshtml"), got[0])
	assert.Equal(t, "default.cshtml", got[len(got)-1])
}

func TestApp_Check(t *testing.T) {
	dir := writeViews(t, map[string]string{
		"good.cshtml":         `@Include("part.cshtml")<p>{{.x}}</p>`,
		"part.cshtml":         "<i/>",
		"bad.cshtml":          "{{.x",
		"loop/a.cshtml":       `@Include("loop/b.cshtml")`,
		"loop/b.cshtml":       `@Include("loop/a.cshtml")`,
		"notes.txt":           "ignored",
		".hidden/skip.cshtml": "{{",
	})
	a := newApp(t, dir)

	results := a.Check(context.Background())

	byName := map[string]app.CheckResult{}
	for _, r := range results {
		byName[r.Name] = r
	}
	require.Len(t, byName, 5)

	assert.NoError(t, byName["good.cshtml"].Err)
	assert.NotZero(t, byName["good.cshtml"].Digest)
	assert.NoError(t, byName["part.cshtml"].Err)
	assert.True(t, errors.Is(byName["bad.cshtml"].Err, domain.ErrCompileFailed))
	assert.True(t, errors.Is(byName[filepath.Join("loop", "a.cshtml")].Err, domain.ErrCycleDetected))
	assert.Equal(t, "bad.cshtml", results[0].Name, "results are sorted")
}
