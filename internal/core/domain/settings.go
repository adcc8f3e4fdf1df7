package domain

import "path/filepath"

// Plugin names understood by the plugin factory.
const (
	PluginInclude = "include"
	PluginLayout  = "layout"
)

// Engine dialect names.
const (
	EngineHTML   = "html"
	EnginePongo2 = "pongo2"
)

// Log output formats.
const (
	LogFormatText = "text"
	LogFormatJSON = "json"
)

// DefaultTemplateFolder is the views root relative to the base directory.
const DefaultTemplateFolder = "Resources/Views/Razor"

// Settings holds the resolved configuration of the view resolver.
type Settings struct {
	// BaseDir anchors a relative TemplateFolder.
	BaseDir        string
	TemplateFolder string
	ContentType    string
	Extension      string
	ModelType      ModelType
	Engine         string
	Plugins        []string
	LayoutPlugins  []string
	LogLevel       LogLevel
	LogFormat      string
}

// DefaultSettings returns the settings used when no configuration file exists.
func DefaultSettings() *Settings {
	return &Settings{
		BaseDir:        ".",
		TemplateFolder: DefaultTemplateFolder,
		ContentType:    "text/html",
		Extension:      ".cshtml",
		ModelType:      DataDictionaryModel,
		Engine:         EngineHTML,
		Plugins:        []string{PluginInclude, PluginLayout},
		LayoutPlugins:  []string{PluginInclude},
		LogLevel:       LogLevelInfo,
		LogFormat:      LogFormatText,
	}
}

// Folder returns the template folder as an absolute path when BaseDir allows it.
func (s *Settings) Folder() string {
	if filepath.IsAbs(s.TemplateFolder) {
		return filepath.Clean(s.TemplateFolder)
	}
	folder := filepath.Join(s.BaseDir, s.TemplateFolder)
	if abs, err := filepath.Abs(folder); err == nil {
		return abs
	}
	return folder
}
