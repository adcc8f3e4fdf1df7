package engine_test

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/views/internal/adapters/engine"
	"go.trai.ch/views/internal/core/domain"
)

const model = domain.DataDictionaryModel

func global(name string) domain.TemplateKey {
	return domain.NewTemplateKey(name, domain.ResolveGlobal)
}

func compile(t *testing.T, e *engine.Engine, key domain.TemplateKey, source string) {
	t.Helper()
	require.NoError(t, e.Compile(context.Background(), source, key, model))
}

func TestEngine_CompileAndRun(t *testing.T) {
	e := engine.New(engine.HTMLDialect{})
	key := global("/v/index.cshtml")

	assert.False(t, e.IsCached(key, model))
	compile(t, e, key, "<h1>{{.title}}</h1>")
	assert.True(t, e.IsCached(key, model))
	assert.False(t, e.IsCached(key, "other-model"))
	assert.False(t, e.IsCached(domain.NewTemplateKey("/v/index.cshtml", domain.ResolveInclude), model))

	out, err := e.Run(context.Background(), key, model, map[string]any{"title": "<Hi>"})
	require.NoError(t, err)
	assert.Equal(t, "<h1>&lt;Hi&gt;</h1>", out)
}

func TestEngine_CompileFailure(t *testing.T) {
	e := engine.New(engine.HTMLDialect{})
	key := global("/v/broken.cshtml")

	err := e.Compile(context.Background(), "{{.title", key, model)
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrCompileFailed))
	assert.False(t, e.IsCached(key, model))
}

func TestEngine_RunNotCached(t *testing.T) {
	e := engine.New(engine.HTMLDialect{})

	_, err := e.Run(context.Background(), global("/v/none.cshtml"), model, nil)
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrTemplateNotCached))
}

func TestEngine_RunFailure(t *testing.T) {
	e := engine.New(engine.HTMLDialect{})
	key := global("/v/index.cshtml")
	compile(t, e, key, "{{index .items 5}}")

	_, err := e.Run(context.Background(), key, model, map[string]any{"items": []any{1}})
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrRunFailed))
}

func TestEngine_Include(t *testing.T) {
	e := engine.New(engine.HTMLDialect{})
	compile(t, e, domain.NewTemplateKey("/v/header.cshtml", domain.ResolveInclude), "<header>{{.title}}</header>")
	key := global("/v/index.cshtml")
	compile(t, e, key, `@Include("/v/header.cshtml")<main>body</main>`)

	out, err := e.Run(context.Background(), key, model, map[string]any{"title": "Hi"})
	require.NoError(t, err)
	assert.Equal(t, "<header>Hi</header><main>body</main>", out)
}

func TestEngine_IncludeMissingAtRun(t *testing.T) {
	e := engine.New(engine.HTMLDialect{})
	key := global("/v/index.cshtml")
	compile(t, e, key, `@Include("/v/absent.cshtml")`)

	_, err := e.Run(context.Background(), key, model, map[string]any{})
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrRunFailed))
	assert.Contains(t, err.Error(), "template not cached")
}

func TestEngine_Layout(t *testing.T) {
	e := engine.New(engine.HTMLDialect{})
	compile(t, e, domain.NewTemplateKey(`shared\main.cshtml`, domain.ResolveLayout), "<html>@RenderBody()</html>")
	key := global("/v/index.cshtml")
	compile(t, e, key, `@{ this.Layout = @"shared\main.cshtml"; }<p>{{.title}}</p>`)

	out, err := e.Run(context.Background(), key, model, map[string]any{"title": "Hi"})
	require.NoError(t, err)
	assert.Equal(t, "<html><p>Hi</p></html>", out)
}

func TestEngine_LayoutMissing(t *testing.T) {
	e := engine.New(engine.HTMLDialect{})
	key := global("/v/index.cshtml")
	compile(t, e, key, `@{ this.Layout = @"nowhere.cshtml"; }<p>x</p>`)

	_, err := e.Run(context.Background(), key, model, map[string]any{})
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrRunFailed))
}

func TestEngine_RecompileReplacesArtifact(t *testing.T) {
	e := engine.New(engine.HTMLDialect{})
	key := global("/v/index.cshtml")

	compile(t, e, key, "one")
	compile(t, e, key, "one")
	assert.Equal(t, 1, e.Len())

	compile(t, e, key, "two")
	out, err := e.Run(context.Background(), key, model, nil)
	require.NoError(t, err)
	assert.Equal(t, "two", out)
	assert.Equal(t, 1, e.Len())
}

func TestEngine_ConcurrentCompileAndRun(t *testing.T) {
	e := engine.New(engine.HTMLDialect{})
	key := global("/v/index.cshtml")

	var wg sync.WaitGroup
	for range 16 {
		wg.Go(func() {
			assert.NoError(t, e.Compile(context.Background(), "<p>{{.n}}</p>", key, model))
			out, err := e.Run(context.Background(), key, model, map[string]any{"n": 1})
			assert.NoError(t, err)
			assert.Equal(t, "<p>1</p>", out)
		})
	}
	wg.Wait()
}

func TestEngine_Pongo2Dialect(t *testing.T) {
	e, err := engine.NewForDialect(domain.EnginePongo2)
	require.NoError(t, err)
	assert.Equal(t, "pongo2", e.Dialect())

	compile(t, e, domain.NewTemplateKey("/v/nav.cshtml", domain.ResolveInclude), "<nav>{{ model.title }}</nav>")
	compile(t, e, domain.NewTemplateKey("main.cshtml", domain.ResolveLayout), "<html>@RenderBody()</html>")
	key := global("/v/index.cshtml")
	compile(t, e, key, `@{ this.Layout = @"main.cshtml"; }@Include("/v/nav.cshtml")<p>{{ model.body }}</p>`)

	out, err := e.Run(context.Background(), key, model, map[string]any{"title": "Hi", "body": "<b>"})
	require.NoError(t, err)
	assert.Equal(t, "<html><nav>Hi</nav><p>&lt;b&gt;</p></html>", out)
}

func TestEngine_Pongo2CompileFailure(t *testing.T) {
	e, err := engine.NewForDialect(domain.EnginePongo2)
	require.NoError(t, err)

	err = e.Compile(context.Background(), "{% if %}", global("/v/broken.cshtml"), model)
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrCompileFailed))
}

func TestNewForDialect(t *testing.T) {
	e, err := engine.NewForDialect("")
	require.NoError(t, err)
	assert.Equal(t, "html", e.Dialect())

	_, err = engine.NewForDialect("razor")
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrConfigInvalid))
}
