// Package app provides the dependency injection container for the application.
package app

import (
	"github.com/runoshun/ft-calc/internal/domain"
	"github.com/runoshun/ft-calc/internal/infra/catalog"
	"github.com/runoshun/ft-calc/internal/infra/config"
	"github.com/runoshun/ft-calc/internal/infra/logging"
	"github.com/runoshun/ft-calc/internal/infra/xlsx"
	"github.com/runoshun/ft-calc/internal/usecase"
)

// Config holds the application paths.
type Config struct {
	WorkDir       string // Directory holding ftcalc.toml and .env
	GlobalConfDir string // Global config directory (empty = ~/.config/ftcalc)
	ConfigPath    string // Explicit config file (--config)
}

// Container provides dependency injection for the application.
// It holds all port implementations and provides factory methods for use cases.
type Container struct {
	// Ports (interfaces bound to implementations)
	CatalogLoader domain.CatalogLoader
	Exporter      domain.RankingExporter
	ConfigLoader  domain.ConfigLoader
	ConfigManager domain.ConfigManager
	Logger        domain.Logger

	// Settings is the effective configuration, set by LoadSettings.
	Settings *domain.Config

	// Configuration
	Config Config

	logFile *logging.Logger
}

// New creates a new Container for the given paths.
func New(cfg Config) *Container {
	var loader *config.Loader
	var manager *config.Manager
	if cfg.GlobalConfDir != "" {
		loader = config.NewLoaderWithGlobalDir(cfg.WorkDir, cfg.GlobalConfDir)
		manager = config.NewManagerWithGlobalDir(cfg.WorkDir, cfg.GlobalConfDir)
	} else {
		loader = config.NewLoader(cfg.WorkDir)
		manager = config.NewManager(cfg.WorkDir)
	}
	if cfg.ConfigPath != "" {
		loader.WithConfigPath(cfg.ConfigPath)
	}

	return &Container{
		CatalogLoader: catalog.NewLoader(),
		Exporter:      xlsx.NewExporter(),
		ConfigLoader:  loader,
		ConfigManager: manager,
		Config:        cfg,
	}
}

// NewWithDeps creates a new Container with custom dependencies for testing.
func NewWithDeps(cfg Config, catalogLoader domain.CatalogLoader, exporter domain.RankingExporter, configLoader domain.ConfigLoader, logger domain.Logger) *Container {
	return &Container{
		CatalogLoader: catalogLoader,
		Exporter:      exporter,
		ConfigLoader:  configLoader,
		ConfigManager: config.NewManager(cfg.WorkDir),
		Logger:        logger,
		Config:        cfg,
	}
}

// SetConfigPath makes the config loader read path instead of ftcalc.toml.
func (c *Container) SetConfigPath(path string) {
	c.Config.ConfigPath = path
	if l, ok := c.ConfigLoader.(*config.Loader); ok {
		l.WithConfigPath(path)
	}
}

// LoadSettings loads the effective configuration, applies the overrides in
// order and opens the log file the result names.
// A logger injected through NewWithDeps is kept.
func (c *Container) LoadSettings(overrides ...func(*domain.Config)) (*domain.Config, error) {
	cfg, err := c.ConfigLoader.Load()
	if err != nil {
		return nil, err
	}
	for _, apply := range overrides {
		apply(cfg)
	}
	if len(overrides) > 0 {
		if err := cfg.Validate(); err != nil {
			return nil, err
		}
	}
	c.Settings = cfg

	if c.Logger == nil {
		c.logFile = logging.New(cfg.Log.File, logging.ParseLevel(cfg.Log.Level))
		c.Logger = c.logFile
	}
	return cfg, nil
}

// Close releases the log file, if one was opened.
func (c *Container) Close() error {
	if c.logFile == nil {
		return nil
	}
	return c.logFile.Close()
}

// logger returns the configured logger, or a disabled one before LoadSettings.
func (c *Container) logger() domain.Logger {
	if c.Logger == nil {
		return logging.NewWriter(nil, logging.ParseLevel(domain.DefaultLogLevel))
	}
	return c.Logger
}

// UseCase factory methods

// RankCropsUseCase returns a new RankCrops use case.
func (c *Container) RankCropsUseCase() *usecase.RankCrops {
	return usecase.NewRankCrops(c.CatalogLoader, c.logger())
}

// BestCropUseCase returns a new BestCrop use case.
func (c *Container) BestCropUseCase() *usecase.BestCrop {
	return usecase.NewBestCrop(c.CatalogLoader, c.logger())
}

// ListCropsUseCase returns a new ListCrops use case.
func (c *Container) ListCropsUseCase() *usecase.ListCrops {
	return usecase.NewListCrops(c.CatalogLoader)
}

// CheckCatalogUseCase returns a new CheckCatalog use case.
func (c *Container) CheckCatalogUseCase() *usecase.CheckCatalog {
	return usecase.NewCheckCatalog(c.CatalogLoader, c.logger())
}

// ExportRankingUseCase returns a new ExportRanking use case.
func (c *Container) ExportRankingUseCase() *usecase.ExportRanking {
	return usecase.NewExportRanking(c.RankCropsUseCase(), c.Exporter, c.logger())
}

// ShowConfigUseCase returns a new ShowConfig use case.
func (c *Container) ShowConfigUseCase() *usecase.ShowConfig {
	return usecase.NewShowConfig(c.ConfigManager, c.ConfigLoader)
}

// InitConfigUseCase returns a new InitConfig use case.
func (c *Container) InitConfigUseCase() *usecase.InitConfig {
	return usecase.NewInitConfig(c.ConfigManager)
}
