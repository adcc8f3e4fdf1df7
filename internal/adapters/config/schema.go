package config

// Viewsfile represents the structure of the views.yaml configuration file.
type Viewsfile struct {
	Version string     `yaml:"version"`
	BaseDir string     `yaml:"base_dir"`
	Views   ViewsDTO   `yaml:"views"`
	Engine  EngineDTO  `yaml:"engine"`
	Plugins *[]string  `yaml:"plugins"`
	Layout  LayoutDTO  `yaml:"layout"`
	Logging LoggingDTO `yaml:"logging"`
}

// ViewsDTO describes where templates live and what they produce.
type ViewsDTO struct {
	Folder      string `yaml:"folder"`
	Extension   string `yaml:"extension"`
	ContentType string `yaml:"content_type"`
}

// EngineDTO selects the template dialect and model type.
type EngineDTO struct {
	Dialect   string `yaml:"dialect"`
	ModelType string `yaml:"model_type"`
}

// LayoutDTO configures the plugins run over layout sources.
type LayoutDTO struct {
	Plugins *[]string `yaml:"plugins"`
}

// LoggingDTO configures the logger.
type LoggingDTO struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}
