// Package config provides configuration loading functionality.
package config

import (
	"errors"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
	"github.com/pelletier/go-toml/v2"
	"github.com/runoshun/ft-calc/internal/domain"
)

// Ensure Loader implements domain.ConfigLoader.
var _ domain.ConfigLoader = (*Loader)(nil)

// Loader loads configuration from TOML files and the environment.
type Loader struct {
	environ       func() []string // Process environment source
	workDir       string          // Directory holding ftcalc.toml and .env
	globalConfDir string          // Path to global config directory (e.g., ~/.config/ftcalc)
	configPath    string          // Explicit config file (--config); replaces ftcalc.toml
}

// NewLoader creates a new Loader.
func NewLoader(workDir string) *Loader {
	return &Loader{
		environ:       os.Environ,
		workDir:       workDir,
		globalConfDir: defaultGlobalConfigDir(),
	}
}

// NewLoaderWithGlobalDir creates a new Loader with a custom global config directory.
// This is useful for testing.
func NewLoaderWithGlobalDir(workDir, globalConfDir string) *Loader {
	return &Loader{
		environ:       os.Environ,
		workDir:       workDir,
		globalConfDir: globalConfDir,
	}
}

// WithConfigPath makes the loader read path instead of the working-directory config.
// Unlike ftcalc.toml, an explicit config file must exist.
func (l *Loader) WithConfigPath(path string) *Loader {
	l.configPath = path
	return l
}

// WithEnviron replaces the process environment source.
func (l *Loader) WithEnviron(environ func() []string) *Loader {
	l.environ = environ
	return l
}

// defaultGlobalConfigDir returns the default global config directory.
func defaultGlobalConfigDir() string {
	configHome := os.Getenv("XDG_CONFIG_HOME")
	if configHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return ""
		}
		configHome = filepath.Join(home, ".config")
	}
	return domain.GlobalConfigDir(configHome)
}

// Load returns the effective configuration.
// Precedence (later wins): defaults <- global file <- local file <- .env <- process environment.
func (l *Loader) Load() (*domain.Config, error) {
	base := domain.NewDefaultConfig()

	global, err := l.loadGlobal()
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, err
	}
	if global != nil {
		mergeConfigs(base, global)
	}

	local, err := l.loadLocal()
	if err != nil && (l.configPath != "" || !errors.Is(err, os.ErrNotExist)) {
		return nil, err
	}
	if local != nil {
		mergeConfigs(base, local)
	}

	if err := l.applyEnv(base); err != nil {
		return nil, err
	}

	if err := base.Validate(); err != nil {
		return nil, err
	}
	return base, nil
}

// loadGlobal returns only the global configuration file.
func (l *Loader) loadGlobal() (*fileConfig, error) {
	if l.globalConfDir == "" {
		return nil, os.ErrNotExist
	}
	return loadFile(filepath.Join(l.globalConfDir, domain.ConfigFileName))
}

// loadLocal returns only the working-directory (or explicit) configuration file.
func (l *Loader) loadLocal() (*fileConfig, error) {
	path := l.configPath
	if path == "" {
		path = domain.LocalConfigPath(l.workDir)
	}
	return loadFile(path)
}

// applyEnv overrides cfg with FTCALC_* variables from .env and the process environment.
// Process variables take precedence over .env entries.
func (l *Loader) applyEnv(cfg *domain.Config) error {
	vars := make(map[string]string)

	dotenv, err := godotenv.Read(filepath.Join(l.workDir, domain.DotEnvFileName))
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("read %s: %w", domain.DotEnvFileName, err)
	}
	for k, v := range dotenv {
		vars[k] = v
	}

	for _, kv := range l.environ() {
		if k, v, ok := strings.Cut(kv, "="); ok {
			vars[k] = v
		}
	}

	if err := env.ParseWithOptions(cfg, env.Options{Environment: vars}); err != nil {
		return fmt.Errorf("%w: %w", domain.ErrInvalidConfig, err)
	}
	return nil
}

// fileConfig is a parsed config file. Nil fields were not set in the file.
type fileConfig struct {
	PlowCost    *uint32
	MaxUnits    *uint32
	CatalogPath *string
	Format      *string
	Top         *int
	LogLevel    *string
	LogFile     *string
	Path        string
	Warnings    []string
}

// loadFile loads a configuration from a file.
func loadFile(path string) (*fileConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var raw map[string]any
	if err := toml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}

	fc := convertRawToFileConfig(raw)
	fc.Path = path
	resolveRelative(filepath.Dir(path), fc.CatalogPath)
	resolveRelative(filepath.Dir(path), fc.LogFile)
	return fc, nil
}

// resolveRelative makes a path from a config file relative to that file's directory.
func resolveRelative(dir string, p *string) {
	if p == nil || *p == "" || filepath.IsAbs(*p) {
		return
	}
	*p = filepath.Join(dir, *p)
}

// convertRawToFileConfig converts the raw map and collects warnings.
func convertRawToFileConfig(raw map[string]any) *fileConfig {
	res := &fileConfig{}
	var warnings []string

	for section, value := range raw {
		m, ok := value.(map[string]any)
		if !ok {
			warnings = append(warnings, fmt.Sprintf("unknown section: %s", section))
			continue
		}
		switch section {
		case "evaluator":
			for k, v := range m {
				switch k {
				case "plow_cost":
					res.PlowCost = uint32Value(v, section, k, &warnings)
				case "max_units":
					res.MaxUnits = uint32Value(v, section, k, &warnings)
				default:
					warnings = append(warnings, fmt.Sprintf("unknown key in [evaluator]: %s", k))
				}
			}
		case "catalog":
			for k, v := range m {
				switch k {
				case "path":
					res.CatalogPath = stringValue(v, section, k, &warnings)
				default:
					warnings = append(warnings, fmt.Sprintf("unknown key in [catalog]: %s", k))
				}
			}
		case "output":
			for k, v := range m {
				switch k {
				case "format":
					res.Format = stringValue(v, section, k, &warnings)
				case "top":
					if n, ok := v.(int64); ok && n >= 0 && n <= math.MaxInt32 {
						top := int(n)
						res.Top = &top
					} else {
						warnings = append(warnings, fmt.Sprintf("invalid value for [output].top: %v", v))
					}
				default:
					warnings = append(warnings, fmt.Sprintf("unknown key in [output]: %s", k))
				}
			}
		case "log":
			for k, v := range m {
				switch k {
				case "level":
					res.LogLevel = stringValue(v, section, k, &warnings)
				case "file":
					res.LogFile = stringValue(v, section, k, &warnings)
				default:
					warnings = append(warnings, fmt.Sprintf("unknown key in [log]: %s", k))
				}
			}
		default:
			warnings = append(warnings, fmt.Sprintf("unknown section: %s", section))
		}
	}

	sort.Strings(warnings)
	res.Warnings = warnings
	return res
}

func uint32Value(v any, section, key string, warnings *[]string) *uint32 {
	n, ok := v.(int64)
	if !ok || n < 0 || n > math.MaxUint32 {
		*warnings = append(*warnings, fmt.Sprintf("invalid value for [%s].%s: %v", section, key, v))
		return nil
	}
	u := uint32(n)
	return &u
}

func stringValue(v any, section, key string, warnings *[]string) *string {
	s, ok := v.(string)
	if !ok {
		*warnings = append(*warnings, fmt.Sprintf("invalid value for [%s].%s: %v", section, key, v))
		return nil
	}
	return &s
}

// mergeConfigs applies the fields set in override on top of base.
func mergeConfigs(base *domain.Config, override *fileConfig) {
	base.Warnings = append(base.Warnings, override.Warnings...)

	if override.PlowCost != nil {
		base.Evaluator.PlowCost = *override.PlowCost
	}
	if override.MaxUnits != nil {
		base.Evaluator.MaxUnits = *override.MaxUnits
	}
	if override.CatalogPath != nil {
		base.Catalog.Path = *override.CatalogPath
	}
	if override.Format != nil {
		base.Output.Format = *override.Format
	}
	if override.Top != nil {
		base.Output.Top = *override.Top
	}
	if override.LogLevel != nil {
		base.Log.Level = *override.LogLevel
	}
	if override.LogFile != nil {
		base.Log.File = *override.LogFile
	}
}
