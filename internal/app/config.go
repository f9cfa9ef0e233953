package app

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/viper"
)

// Config holds the application configuration
type Config struct {
	// Cluster configuration
	Kubeconfig string `mapstructure:"kubeconfig"`
	Context    string `mapstructure:"context"`

	// Refresh configuration
	RefreshInterval time.Duration `mapstructure:"refresh_interval"`
	MaxConcurrent   int           `mapstructure:"max_concurrent"`

	// Cache configuration
	CacheTTL time.Duration `mapstructure:"cache_ttl"`

	// UI configuration
	Locale           string `mapstructure:"locale"`
	LightTheme       bool   `mapstructure:"light_theme"`
	EnhancedGraphics bool   `mapstructure:"enhanced_graphics"`

	// Kubelet configuration
	KubeletMetrics bool `mapstructure:"kubelet_metrics"`

	// CLI probe configuration
	CLITools []string `mapstructure:"cli_tools"`

	// Logging configuration
	LogLevel string `mapstructure:"log_level"`
	LogFile  string `mapstructure:"log_file"`
}

// LoadConfig loads configuration from file and environment
func LoadConfig(configFile string) (*Config, error) {
	// Defaults – nested keys align with config/default.yaml
	viper.SetDefault("cluster.kubeconfig", "")
	viper.SetDefault("cluster.context", "")

	viper.SetDefault("refresh.interval", "30s")
	viper.SetDefault("refresh.max_concurrent", 10)

	viper.SetDefault("cache.ttl", "60s")

	viper.SetDefault("ui.locale", "en")
	viper.SetDefault("ui.light_theme", false)
	viper.SetDefault("ui.enhanced_graphics", true)

	viper.SetDefault("kubelet.metrics", true)

	viper.SetDefault("cli.tools", []string{"kubectl", "docker", "helm"})

	viper.SetDefault("logging.level", "info")
	viper.SetDefault("logging.file", "/tmp/kubedash.log")

	// Home kubeconfig default
	if home, err := os.UserHomeDir(); err == nil {
		viper.SetDefault("cluster.kubeconfig", filepath.Join(home, ".kube", "config"))
	}

	if configFile != "" {
		viper.SetConfigFile(configFile)
	} else {
		viper.SetConfigName("config")
		viper.SetConfigType("yaml")
		viper.AddConfigPath("./config")
		viper.AddConfigPath("$HOME/.kubedash")
		viper.AddConfigPath("/etc/kubedash")
	}

	viper.SetEnvPrefix("KUBEDASH")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
	}

	cfg := &Config{
		Kubeconfig:       viper.GetString("cluster.kubeconfig"),
		Context:          viper.GetString("cluster.context"),
		RefreshInterval:  viper.GetDuration("refresh.interval"),
		MaxConcurrent:    viper.GetInt("refresh.max_concurrent"),
		CacheTTL:         viper.GetDuration("cache.ttl"),
		Locale:           viper.GetString("ui.locale"),
		LightTheme:       viper.GetBool("ui.light_theme"),
		EnhancedGraphics: viper.GetBool("ui.enhanced_graphics"),
		KubeletMetrics:   viper.GetBool("kubelet.metrics"),
		CLITools:         viper.GetStringSlice("cli.tools"),
		LogLevel:         viper.GetString("logging.level"),
		LogFile:          viper.GetString("logging.file"),
	}

	// Normalise zero values in case configuration omitted units or left blank
	if cfg.RefreshInterval <= 0 {
		cfg.RefreshInterval = 30 * time.Second
	}
	if cfg.MaxConcurrent <= 0 {
		cfg.MaxConcurrent = 10
	}
	if cfg.CacheTTL <= 0 {
		cfg.CacheTTL = 60 * time.Second
	}
	if cfg.Locale == "" {
		cfg.Locale = "en"
	}
	if len(cfg.CLITools) == 0 {
		cfg.CLITools = []string{"kubectl", "docker", "helm"}
	}
	if cfg.LogLevel == "" {
		cfg.LogLevel = "info"
	}
	if cfg.LogFile == "" {
		cfg.LogFile = "/tmp/kubedash.log"
	}

	return cfg, nil
}
