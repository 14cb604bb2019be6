package domain

// CatalogLoader reads the crop catalog from external storage.
type CatalogLoader interface {
	// Load reads and validates the catalog at path.
	Load(path string) ([]Crop, error)
}

// RankingExporter writes a ranking to a file.
type RankingExporter interface {
	// Export writes the evaluations to path, most profitable first.
	Export(path string, ranking []Evaluation) error
}

// ConfigLoader loads configuration.
type ConfigLoader interface {
	// Load returns the effective configuration (defaults, files, environment).
	Load() (*Config, error)
}

// ConfigInfo holds information about a config file.
type ConfigInfo struct {
	Path    string // File path
	Content string // File content (empty if not exists)
	Exists  bool   // Whether the file exists
}

// ConfigManager manages configuration files.
type ConfigManager interface {
	// GetLocalConfigInfo returns information about the working-directory config file.
	GetLocalConfigInfo() ConfigInfo

	// GetGlobalConfigInfo returns information about the global config file.
	GetGlobalConfigInfo() ConfigInfo

	// InitLocalConfig creates a working-directory config file with the default template.
	InitLocalConfig(cfg *Config) error

	// InitGlobalConfig creates a global config file with the default template.
	InitGlobalConfig(cfg *Config) error
}

// Logger provides category-tagged logging.
type Logger interface {
	Debug(category, msg string)
	Info(category, msg string)
	Warn(category, msg string)
	Error(category, msg string)
}
