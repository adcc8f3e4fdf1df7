package config_test

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/views/internal/adapters/config"
	"go.trai.ch/views/internal/core/domain"
	"go.trai.ch/views/internal/core/ports/mocks"
	"go.trai.ch/zerr"
	"go.uber.org/mock/gomock"
)

func writeConfig(t *testing.T, dir, content string) string {
	t.Helper()
	path := filepath.Join(dir, config.DefaultFilename)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoadFile_Success(t *testing.T) {
	content := `
version: "1"
base_dir: site
views:
  folder: Templates/Pages
  extension: html
  content_type: text/plain
engine:
  dialect: Pongo2
  model_type: page
plugins: [layout, include]
layout:
  plugins: []
logging:
  level: debug
  format: json
`
	dir := t.TempDir()
	path := writeConfig(t, dir, content)

	s, err := config.LoadFile(path)
	require.NoError(t, err)

	assert.Equal(t, filepath.Join(dir, "site"), s.BaseDir)
	assert.Equal(t, filepath.Join("Templates", "Pages"), s.TemplateFolder)
	assert.Equal(t, filepath.Join(dir, "site", "Templates", "Pages"), s.Folder())
	assert.Equal(t, ".html", s.Extension)
	assert.Equal(t, "text/plain", s.ContentType)
	assert.Equal(t, domain.EnginePongo2, s.Engine)
	assert.Equal(t, domain.ModelType("page"), s.ModelType)
	assert.Equal(t, []string{"layout", "include"}, s.Plugins)
	assert.Empty(t, s.LayoutPlugins)
	assert.Equal(t, domain.LogLevelDebug, s.LogLevel)
	assert.Equal(t, domain.LogFormatJSON, s.LogFormat)
}

func TestLoadFile_Defaults(t *testing.T) {
	dir := t.TempDir()
	path := writeConfig(t, dir, "version: \"1\"\n")

	s, err := config.LoadFile(path)
	require.NoError(t, err)

	want := domain.DefaultSettings()
	want.BaseDir = dir
	assert.Equal(t, want, s)
}

func TestLoadFile_Invalid(t *testing.T) {
	tests := []struct {
		name    string
		content string
		key     string
	}{
		{"malformed", "views: [unclosed", ""},
		{"unknown plugin", "plugins: [include, minify]", "plugin"},
		{"unknown layout plugin", "layout:\n  plugins: [bogus]", "plugin"},
		{"unknown dialect", "engine:\n  dialect: razor", "dialect"},
		{"unknown level", "logging:\n  level: loud", "level"},
		{"unknown format", "logging:\n  format: xml", "format"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeConfig(t, t.TempDir(), tt.content)

			_, err := config.LoadFile(path)
			require.Error(t, err)
			assert.True(t, errors.Is(err, domain.ErrConfigInvalid))

			var zErr *zerr.Error
			require.ErrorAs(t, err, &zErr)
			assert.Equal(t, path, zErr.Metadata()["path"])
			if tt.key != "" {
				assert.Contains(t, err.Error(), "unknown")
			}
		})
	}
}

func TestLoader_MissingFileUsesDefaults(t *testing.T) {
	ctrl := gomock.NewController(t)
	log := mocks.NewMockLogger(ctrl)
	log.EXPECT().Debug(gomock.Any(), gomock.Any()).Times(1)

	dir := t.TempDir()
	s, err := config.NewLoader(log).Load(dir)
	require.NoError(t, err)

	assert.Equal(t, dir, s.BaseDir)
	assert.Equal(t, domain.DefaultTemplateFolder, s.TemplateFolder)
	assert.Equal(t, []string{domain.PluginInclude, domain.PluginLayout}, s.Plugins)
	assert.Equal(t, []string{domain.PluginInclude}, s.LayoutPlugins)
}

func TestLoader_ReadsFileInCwd(t *testing.T) {
	ctrl := gomock.NewController(t)
	log := mocks.NewMockLogger(ctrl)

	dir := t.TempDir()
	writeConfig(t, dir, "views:\n  folder: /srv/views\n")

	s, err := config.NewLoader(log).Load(dir)
	require.NoError(t, err)
	assert.Equal(t, "/srv/views", s.Folder())
}
