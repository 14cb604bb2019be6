package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/runoshun/ft-calc/internal/domain"
)

// Ensure Manager implements domain.ConfigManager.
var _ domain.ConfigManager = (*Manager)(nil)

// Manager inspects and creates the two ftcalc config files: ftcalc.toml in
// the working directory and config.toml in the global config directory.
type Manager struct {
	workDir       string // Directory holding ftcalc.toml
	globalConfDir string // ~/.config/ftcalc unless overridden; empty when no home is known
}

// NewManager creates a Manager using the XDG global config directory.
func NewManager(workDir string) *Manager {
	return NewManagerWithGlobalDir(workDir, defaultGlobalConfigDir())
}

// NewManagerWithGlobalDir creates a Manager with an explicit global config directory.
func NewManagerWithGlobalDir(workDir, globalConfDir string) *Manager {
	return &Manager{
		workDir:       workDir,
		globalConfDir: globalConfDir,
	}
}

// globalPath returns the global config.toml path, or "" without a global directory.
func (m *Manager) globalPath() string {
	if m.globalConfDir == "" {
		return ""
	}
	return filepath.Join(m.globalConfDir, domain.ConfigFileName)
}

// GetLocalConfigInfo describes ftcalc.toml in the working directory.
func (m *Manager) GetLocalConfigInfo() domain.ConfigInfo {
	return readConfigInfo(domain.LocalConfigPath(m.workDir))
}

// GetGlobalConfigInfo describes the global config.toml.
// Path is empty when no global directory is available.
func (m *Manager) GetGlobalConfigInfo() domain.ConfigInfo {
	path := m.globalPath()
	if path == "" {
		return domain.ConfigInfo{}
	}
	return readConfigInfo(path)
}

// readConfigInfo reports whether path is readable and returns its content.
func readConfigInfo(path string) domain.ConfigInfo {
	content, err := os.ReadFile(path)
	if err != nil {
		return domain.ConfigInfo{Path: path}
	}
	return domain.ConfigInfo{
		Path:    path,
		Content: string(content),
		Exists:  true,
	}
}

// InitLocalConfig writes ftcalc.toml into the working directory.
func (m *Manager) InitLocalConfig(cfg *domain.Config) error {
	return writeNewConfig(domain.LocalConfigPath(m.workDir), cfg)
}

// InitGlobalConfig writes the global config.toml, creating its directory.
func (m *Manager) InitGlobalConfig(cfg *domain.Config) error {
	path := m.globalPath()
	if path == "" {
		return errors.New("global config directory not available")
	}
	if err := os.MkdirAll(m.globalConfDir, 0o700); err != nil {
		return fmt.Errorf("create %s: %w", m.globalConfDir, err)
	}
	return writeNewConfig(path, cfg)
}

// writeNewConfig renders cfg into the commented template at path.
// An existing file is never overwritten.
func writeNewConfig(path string, cfg *domain.Config) error {
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o600)
	if err != nil {
		if errors.Is(err, os.ErrExist) {
			return fmt.Errorf("%w: %s", domain.ErrConfigExists, path)
		}
		return fmt.Errorf("create %s: %w", path, err)
	}

	if _, err := f.WriteString(domain.RenderConfigTemplate(cfg)); err != nil {
		_ = f.Close()
		return fmt.Errorf("write %s: %w", path, err)
	}
	return f.Close()
}
