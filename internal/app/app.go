package app

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/yourusername/kubedash/internal/cache"
	"github.com/yourusername/kubedash/internal/datasource"
	"github.com/yourusername/kubedash/internal/model"
	"github.com/yourusername/kubedash/internal/ui"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
)

// App represents the main application
type App struct {
	ctx        context.Context
	logger     *zap.Logger
	config     *Config
	version    string
	dataSource *datasource.AggregatedDataSource
	cache      *cache.TTLCache
	refresher  *cache.Refresher
}

// New creates a new App instance
func New(config *Config, version string) (*App, error) {
	logger, err := initLogger(config.LogLevel, config.LogFile)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}

	return &App{
		ctx:     context.Background(),
		logger:  logger,
		config:  config,
		version: version,
	}, nil
}

// Run starts the application
func (a *App) Run() error {
	a.logger.Info("Starting kubedash",
		zap.String("version", a.version),
		zap.String("kubeconfig", a.config.Kubeconfig),
		zap.String("context", a.config.Context),
		zap.Duration("refresh_interval", a.config.RefreshInterval),
	)

	a.logger.Debug("Application configuration loaded",
		zap.Duration("cache_ttl", a.config.CacheTTL),
		zap.Int("max_concurrent", a.config.MaxConcurrent),
		zap.Strings("cli_tools", a.config.CLITools),
		zap.String("log_level", a.config.LogLevel),
		zap.String("log_file", a.config.LogFile),
	)

	if err := a.initDataSources(); err != nil {
		return fmt.Errorf("failed to initialize data sources: %w", err)
	}

	// Start background refresh
	if err := a.refresher.Start(); err != nil {
		return fmt.Errorf("failed to start refresher: %w", err)
	}

	if err := a.startUI(); err != nil {
		return fmt.Errorf("failed to start UI: %w", err)
	}

	return nil
}

// startUI starts the Bubble Tea UI
func (a *App) startUI() error {
	a.logger.Info("Starting UI", zap.String("locale", a.config.Locale))

	uiModel := ui.NewModel(a, a.logger, ui.Options{
		RefreshInterval:  a.config.RefreshInterval,
		Locale:           a.config.Locale,
		Version:          a.version,
		LightTheme:       a.config.LightTheme,
		EnhancedGraphics: a.config.EnhancedGraphics,
	})
	p := tea.NewProgram(uiModel, tea.WithAltScreen())

	if _, err := p.Run(); err != nil {
		return fmt.Errorf("UI error: %w", err)
	}

	return nil
}

// initDataSources initializes all data sources
func (a *App) initDataSources() error {
	a.logger.Info("Initializing data sources")

	restConfig, activeContext, err := datasource.LoadKubeConfig(a.config.Kubeconfig, a.config.Context, a.logger)
	if err != nil {
		return fmt.Errorf("failed to load kubeconfig: %w", err)
	}

	apiServer, err := datasource.NewAPIServerClient(restConfig, a.logger)
	if err != nil {
		return fmt.Errorf("failed to create API server client: %w", err)
	}

	// Kubelet metrics are optional; the gauges render empty without them
	var kubeletClient *datasource.KubeletClient
	if a.config.KubeletMetrics {
		kubeletClient, err = datasource.NewKubeletClient(apiServer.GetConfig(), a.logger)
		if err != nil {
			a.logger.Warn("Failed to create kubelet client, continuing without node metrics",
				zap.Error(err),
			)
			kubeletClient = nil
		}
	}

	cliProber := datasource.NewCLIProber(a.config.CLITools, a.logger)

	a.dataSource = datasource.NewAggregatedDataSource(
		apiServer,
		kubeletClient,
		cliProber,
		activeContext,
		a.logger,
		a.config.MaxConcurrent,
	)

	a.cache = cache.NewTTLCache(a.config.CacheTTL, a.logger)
	a.refresher = cache.NewRefresher(a.dataSource, a.cache, a.config.RefreshInterval, a.logger)

	a.logger.Info("Data sources initialized successfully")
	return nil
}

// GetOverviewData retrieves the overview snapshot (from cache or fresh)
func (a *App) GetOverviewData() (*model.OverviewData, error) {
	if data, ok := a.cache.Get(a.ctx); ok {
		return data, nil
	}

	a.logger.Debug("Cache miss, fetching fresh data")
	return a.dataSource.GetOverviewData(a.ctx)
}

// ForceRefresh triggers an immediate data refresh
func (a *App) ForceRefresh() error {
	if a.refresher == nil {
		return fmt.Errorf("refresher not initialized")
	}
	return a.refresher.RefreshNow()
}

// Shutdown gracefully stops the application
func (a *App) Shutdown() error {
	a.logger.Info("Shutting down application...")

	if a.refresher != nil {
		if err := a.refresher.Stop(); err != nil {
			a.logger.Error("Failed to stop refresher", zap.Error(err))
		}
	}

	if a.dataSource != nil {
		if err := a.dataSource.Close(); err != nil {
			a.logger.Error("Failed to close data source", zap.Error(err))
		}
	}

	// Sync only flushes buffered log entries, ignore stderr sync errors
	_ = a.logger.Sync()
	return nil
}

// initLogger initializes the zap logger with file rotation support
func initLogger(levelStr, logFile string) (*zap.Logger, error) {
	level := zapcore.InfoLevel
	switch levelStr {
	case "debug":
		level = zapcore.DebugLevel
	case "info":
		level = zapcore.InfoLevel
	case "warn":
		level = zapcore.WarnLevel
	case "error":
		level = zapcore.ErrorLevel
	}

	encoderConfig := zap.NewProductionEncoderConfig()
	encoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	encoderConfig.EncodeLevel = zapcore.CapitalLevelEncoder

	if logFile == "" {
		logFile = "/tmp/kubedash.log"
	}

	// File output only. Bubble Tea requires full control of the terminal,
	// so nothing may write to stdout/stderr while the UI runs.
	fileEncoder := zapcore.NewJSONEncoder(encoderConfig)
	fileWriter := zapcore.AddSync(&lumberjack.Logger{
		Filename:   logFile,
		MaxSize:    100, // MB
		MaxBackups: 3,
		MaxAge:     7, // days
		Compress:   true,
	})
	core := zapcore.NewCore(fileEncoder, fileWriter, level)

	logger := zap.New(core, zap.AddCaller(), zap.AddStacktrace(zapcore.ErrorLevel))
	zap.ReplaceGlobals(logger)

	return logger, nil
}
