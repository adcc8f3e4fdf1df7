package domain_test

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.trai.ch/views/internal/core/domain"
)

func TestFindIncludes(t *testing.T) {
	tests := []struct {
		name   string
		source string
		want   []string
	}{
		{"none", "<p>plain</p>", nil},
		{"single", `@Include("header.cshtml")`, []string{"header.cshtml"}},
		{"verbatim", `@Include(@"partials\nav.cshtml")`, []string{`partials\nav.cshtml`}},
		{
			"ordered",
			`@Include("a.cshtml") body @Include("b.cshtml") @Include("a.cshtml")`,
			[]string{"a.cshtml", "b.cshtml", "a.cshtml"},
		},
		{"lazy match", `@Include("a") "b"`, []string{"a"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, domain.FindIncludes(tt.source))
		})
	}
}

func TestFindLayout(t *testing.T) {
	name, ok := domain.FindLayout(`@{ this.Layout = @"shared\main.cshtml"; } this.Layout = @"other.cshtml";`)
	assert.True(t, ok)
	assert.Equal(t, `shared\main.cshtml`, name)

	_, ok = domain.FindLayout(`this.Layout = "missing-verbatim.cshtml";`)
	assert.False(t, ok)
}

func TestFixPathSeparators(t *testing.T) {
	assert.Equal(t, filepath.Join("shared", "main.cshtml"), domain.FixPathSeparators(`shared\main.cshtml`))
	assert.Equal(t, "plain.cshtml", domain.FixPathSeparators("plain.cshtml"))
}

func TestTokenList_Replace(t *testing.T) {
	tokens := domain.NewTokenList()
	tokens.Add("header.cshtml", "/views/header.cshtml")
	tokens.Add("header.cshtml", "/ignored")
	tokens.Add(`nav\menu.cshtml`, "/views/nav/menu.cshtml")

	source := `<!-- header.cshtml --> @Include("header.cshtml") @Include(@"nav\menu.cshtml") @Include("other.cshtml")`
	got := tokens.Replace(source)

	assert.Equal(t,
		`<!-- /views/header.cshtml --> @Include("/views/header.cshtml") @Include(@"/views/nav/menu.cshtml") @Include("other.cshtml")`,
		got)
}

func TestTokenList_ReplaceSinglePass(t *testing.T) {
	tokens := domain.NewTokenList()
	tokens.Add("a.cshtml", "/v/a.cshtml")
	tokens.Add("sub/a.cshtml", "/v/sub/a.cshtml")

	got := tokens.Replace(`@Include("a.cshtml") @Include("sub/a.cshtml")`)

	assert.Equal(t, `@Include("/v/a.cshtml") @Include("/v/sub/a.cshtml")`, got,
		"longer names win and replaced text is not rewritten again")
}

func TestTokenList_Empty(t *testing.T) {
	tokens := domain.NewTokenList()
	assert.Equal(t, "unchanged", tokens.Replace("unchanged"))
}
