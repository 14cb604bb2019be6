package domain

import (
	"bytes"
	_ "embed"
	"fmt"
	"path/filepath"
	"text/template"
)

//go:embed config_template.toml
var configTemplateContent string

// Config represents the application configuration.
// Fields are ordered to minimize memory padding.
type Config struct {
	Warnings  []string        `toml:"-"`
	Catalog   CatalogConfig   `toml:"catalog"`
	Output    OutputConfig    `toml:"output"`
	Log       LogConfig       `toml:"log"`
	Evaluator EvaluatorConfig `toml:"evaluator"`
}

// CatalogConfig holds settings from the [catalog] section.
type CatalogConfig struct {
	Path string `toml:"path,omitempty" env:"FTCALC_CATALOG"` // Crop catalog file (.json, .yaml, .toml, .xlsx)
}

// OutputConfig holds settings from the [output] section.
type OutputConfig struct {
	Format string `toml:"format,omitempty" env:"FTCALC_OUTPUT_FORMAT"` // text, json, yaml or table
	Top    int    `toml:"top,omitempty" env:"FTCALC_OUTPUT_TOP"`       // Show only the first N entries (0 = all)
}

// LogConfig holds logging settings from the [log] section.
type LogConfig struct {
	Level string `toml:"level,omitempty" env:"FTCALC_LOG_LEVEL"` // Log level: debug, info, warn, error
	File  string `toml:"file,omitempty" env:"FTCALC_LOG_FILE"`   // Log file path (empty disables file logging)
}

// Output formats.
const (
	FormatText  = "text"
	FormatJSON  = "json"
	FormatYAML  = "yaml"
	FormatTable = "table"
)

// ValidOutputFormat reports whether f is a supported output format.
func ValidOutputFormat(f string) bool {
	switch f {
	case FormatText, FormatJSON, FormatYAML, FormatTable:
		return true
	}
	return false
}

// Config file names and directories.
const (
	AppDirName         = "ftcalc"      // Global config directory name
	ConfigFileName     = "config.toml" // Global config file name
	LocalConfigName    = "ftcalc.toml" // Config file in the working directory
	DefaultCatalogPath = "crops.json"  // Catalog read when none is configured
	DotEnvFileName     = ".env"        // Optional dotenv file in the working directory
	DefaultLogLevel    = "info"
)

// GlobalConfigDir returns the global config directory path.
// configHome is typically XDG_CONFIG_HOME or ~/.config (resolved by caller).
func GlobalConfigDir(configHome string) string {
	return filepath.Join(configHome, AppDirName)
}

// GlobalConfigPath returns the global config path.
func GlobalConfigPath(configHome string) string {
	return filepath.Join(GlobalConfigDir(configHome), ConfigFileName)
}

// LocalConfigPath returns the local config path for a working directory.
func LocalConfigPath(workDir string) string {
	return filepath.Join(workDir, LocalConfigName)
}

// NewDefaultConfig returns a Config with default values.
func NewDefaultConfig() *Config {
	return &Config{
		Evaluator: EvaluatorConfig{
			PlowCost: DefaultPlowCost,
			MaxUnits: DefaultMaxUnits,
		},
		Catalog: CatalogConfig{
			Path: DefaultCatalogPath,
		},
		Output: OutputConfig{
			Format: FormatText,
		},
		Log: LogConfig{
			Level: DefaultLogLevel,
		},
	}
}

// Validate checks values that cannot be expressed by the TOML types alone.
func (c *Config) Validate() error {
	if c.Evaluator.MaxUnits == 0 {
		return fmt.Errorf("%w: max_units must be positive", ErrInvalidConfig)
	}
	if !ValidOutputFormat(c.Output.Format) {
		return fmt.Errorf("%w: %q", ErrInvalidOutputFmt, c.Output.Format)
	}
	if c.Output.Top < 0 {
		return fmt.Errorf("%w: output.top must not be negative", ErrInvalidConfig)
	}
	return nil
}

// RenderConfigTemplate renders the commented config template with the values of cfg.
func RenderConfigTemplate(cfg *Config) string {
	tmpl, err := template.New("config").Delims("<<", ">>").Parse(configTemplateContent)
	if err != nil {
		// Should never happen with embedded template
		panic(fmt.Sprintf("failed to parse config template: %v", err))
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, cfg); err != nil {
		// Should never happen with valid data
		panic(fmt.Sprintf("failed to execute config template: %v", err))
	}
	return buf.String()
}
