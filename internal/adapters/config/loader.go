// Package config provides the settings loader for the view resolver.
package config

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"go.trai.ch/views/internal/core/domain"
	"go.trai.ch/views/internal/core/ports"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

// DefaultFilename is the settings file looked up in the working directory.
const DefaultFilename = "views.yaml"

var (
	knownPlugins = []string{domain.PluginInclude, domain.PluginLayout}
	knownEngines = []string{domain.EngineHTML, domain.EnginePongo2}
	knownFormats = []string{domain.LogFormatText, domain.LogFormatJSON}
)

// Loader implements ports.ConfigLoader using a YAML file.
type Loader struct {
	Filename string
	logger   ports.Logger
}

// NewLoader creates a loader for DefaultFilename.
func NewLoader(logger ports.Logger) *Loader {
	return &Loader{Filename: DefaultFilename, logger: logger}
}

// Load reads the settings from the given working directory.
// A missing file yields domain.DefaultSettings anchored at cwd.
func (l *Loader) Load(cwd string) (*domain.Settings, error) {
	path := filepath.Join(cwd, l.Filename)
	settings, err := LoadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		l.logger.Debug("no settings file, using defaults", "path", path)
		settings = domain.DefaultSettings()
		settings.BaseDir = cwd
		return settings, nil
	}
	return settings, err
}

// LoadFile reads and validates a settings file.
// A relative base_dir is resolved against the directory holding the file.
func LoadFile(path string) (*domain.Settings, error) {
	data, err := os.ReadFile(path) //nolint:gosec // path is provided by user
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, "failed to read config file"), "path", path)
	}

	var file Viewsfile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, zerr.With(zerr.Wrap(domain.ErrConfigInvalid, "failed to parse config file: "+err.Error()), "path", path)
	}

	settings, err := file.toDomain(filepath.Dir(path))
	if err != nil {
		return nil, zerr.With(err, "path", path)
	}
	return settings, nil
}

func (f *Viewsfile) toDomain(dir string) (*domain.Settings, error) {
	s := domain.DefaultSettings()

	s.BaseDir = dir
	if f.BaseDir != "" {
		s.BaseDir = f.BaseDir
		if !filepath.IsAbs(s.BaseDir) {
			s.BaseDir = filepath.Join(dir, s.BaseDir)
		}
	}

	if f.Views.Folder != "" {
		s.TemplateFolder = filepath.FromSlash(f.Views.Folder)
	}
	if f.Views.ContentType != "" {
		s.ContentType = f.Views.ContentType
	}
	if ext := f.Views.Extension; ext != "" {
		if !strings.HasPrefix(ext, ".") {
			ext = "." + ext
		}
		s.Extension = ext
	}
	if f.Engine.ModelType != "" {
		s.ModelType = domain.ModelType(f.Engine.ModelType)
	}

	if f.Engine.Dialect != "" {
		dialect := strings.ToLower(f.Engine.Dialect)
		if !slices.Contains(knownEngines, dialect) {
			return nil, zerr.With(zerr.Wrap(domain.ErrConfigInvalid, "unknown engine dialect"), "dialect", f.Engine.Dialect)
		}
		s.Engine = dialect
	}

	if f.Plugins != nil {
		plugins, err := canonicalizePlugins(*f.Plugins)
		if err != nil {
			return nil, err
		}
		s.Plugins = plugins
	}
	if f.Layout.Plugins != nil {
		plugins, err := canonicalizePlugins(*f.Layout.Plugins)
		if err != nil {
			return nil, err
		}
		s.LayoutPlugins = plugins
	}

	level, ok := domain.ParseLogLevel(f.Logging.Level)
	if !ok {
		return nil, zerr.With(zerr.Wrap(domain.ErrConfigInvalid, "unknown log level"), "level", f.Logging.Level)
	}
	s.LogLevel = level

	if f.Logging.Format != "" {
		format := strings.ToLower(f.Logging.Format)
		if !slices.Contains(knownFormats, format) {
			return nil, zerr.With(zerr.Wrap(domain.ErrConfigInvalid, "unknown log format"), "format", f.Logging.Format)
		}
		s.LogFormat = format
	}

	return s, nil
}

// canonicalizePlugins lowercases names and rejects unknown ones. Order is preserved.
func canonicalizePlugins(names []string) ([]string, error) {
	res := make([]string, 0, len(names))
	for _, name := range names {
		n := strings.ToLower(strings.TrimSpace(name))
		if !slices.Contains(knownPlugins, n) {
			return nil, zerr.With(zerr.Wrap(domain.ErrConfigInvalid, "unknown plugin"), "plugin", name)
		}
		res = append(res, n)
	}
	return res, nil
}
