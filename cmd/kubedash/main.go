package main

import (
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/yourusername/kubedash/internal/app"
	"go.uber.org/zap"
	"k8s.io/klog/v2"
)

var (
	// Version will be set by build flags, default to timestamp
	Version = "dev-" + time.Now().Format("20060102-150405")
	// BuildTime will be set by build flags
	BuildTime = "unknown"

	// Global flags
	configFile string
	kubeconfig string
	context    string
	verbose    bool
	locale     string
)

var rootCmd = &cobra.Command{
	Use:   "kubedash",
	Short: "A terminal dashboard for Kubernetes clusters",
	Long: `kubedash is a lightweight, read-only terminal dashboard for
Kubernetes clusters. The overview screen shows the active context,
namespaces, node CPU/memory gauges, installed CLI tool versions,
and a filterable pods/nodes resource table.

Built with Bubble Tea and client-go.`,
	Version: Version,
	Run: func(cmd *cobra.Command, args []string) {
		cmd.Help()
	},
}

var overviewCmd = &cobra.Command{
	Use:   "overview",
	Short: "Start the interactive overview dashboard",
	Long:  `Launch the interactive TUI dashboard showing cluster state at a glance`,
	RunE:  runOverview,
}

func init() {
	// Configure klog to suppress client-go logs in TUI mode
	// klog writes to stderr by default, which pollutes the TUI
	klog.InitFlags(nil)
	flag.Set("logtostderr", "false")
	flag.Set("alsologtostderr", "false")
	flag.Set("stderrthreshold", "FATAL")
	flag.Set("v", "0")

	// Add Go flags to pflag so Cobra can parse them
	// This avoids conflicts when global flags are placed before subcommands
	pflag.CommandLine.AddGoFlagSet(flag.CommandLine)

	rootCmd.AddCommand(overviewCmd)

	// Global persistent flags
	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "config file path (default: ./config/config.yaml)")
	rootCmd.PersistentFlags().StringVarP(&kubeconfig, "kubeconfig", "k", "", "path to kubeconfig file (default: $HOME/.kube/config)")
	rootCmd.PersistentFlags().StringVarP(&context, "context", "c", "", "kubernetes context to use")
	rootCmd.PersistentFlags().BoolVar(&verbose, "verbose", false, "enable verbose logging")
	rootCmd.PersistentFlags().StringVarP(&locale, "locale", "l", "en", "interface language (en, zh)")

	// Overview command flags
	overviewCmd.Flags().IntP("refresh", "r", 30, "refresh interval in seconds")
	overviewCmd.Flags().Bool("light-theme", false, "use colors suited to light terminal backgrounds")
	overviewCmd.Flags().Bool("no-enhanced-graphics", false, "use plain line characters in gauges")
	overviewCmd.Flags().IntP("max-concurrent", "m", 10, "maximum concurrent kubelet queries (default: 10)")
}

func runOverview(cmd *cobra.Command, args []string) error {
	config, err := app.LoadConfig(configFile)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	// Override config with command-line flags
	if kubeconfig != "" {
		config.Kubeconfig = kubeconfig
	}
	if context != "" {
		config.Context = context
	}
	// Only override locale if user explicitly specified it
	if cmd.Flags().Changed("locale") {
		config.Locale = locale
	}
	if verbose {
		config.LogLevel = "debug"
	}

	if cmd.Flags().Changed("refresh") {
		if refresh, _ := cmd.Flags().GetInt("refresh"); refresh > 0 {
			config.RefreshInterval = time.Duration(refresh) * time.Second
		}
	}

	if lightTheme, _ := cmd.Flags().GetBool("light-theme"); lightTheme {
		config.LightTheme = true
	}

	if noEnhanced, _ := cmd.Flags().GetBool("no-enhanced-graphics"); noEnhanced {
		config.EnhancedGraphics = false
	}

	if cmd.Flags().Changed("max-concurrent") {
		if maxConcurrent, _ := cmd.Flags().GetInt("max-concurrent"); maxConcurrent > 0 {
			config.MaxConcurrent = maxConcurrent
		}
	}

	application, err := app.New(config, Version)
	if err != nil {
		return fmt.Errorf("failed to create application: %w", err)
	}
	defer func() {
		if err := application.Shutdown(); err != nil {
			fmt.Fprintf(os.Stderr, "Error during shutdown: %v\n", err)
		}
	}()

	// Setup signal handling for graceful shutdown
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	errChan := make(chan error, 1)
	go func() {
		errChan <- application.Run()
	}()

	select {
	case err := <-errChan:
		if err != nil {
			return fmt.Errorf("application error: %w", err)
		}
	case sig := <-sigChan:
		zap.L().Info("Received signal, shutting down...", zap.String("signal", sig.String()))
	}

	return nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
