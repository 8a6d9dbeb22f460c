// Wordfinder is a terminal client for a word-search puzzle generation service.
//
// It sends a word list and grid dimensions to the service, renders the
// returned grid, and lets the player mark cells with the keyboard or mouse
// while counting correct and incorrect picks.
//
// Usage:
//
//	wordfinder [command] [flags]
//
// Running without arguments launches the interactive client.
// See 'wordfinder --help' for available commands.
package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/muurk/wordfinder/internal/config"
	"github.com/muurk/wordfinder/internal/discovery"
	"github.com/muurk/wordfinder/internal/generator"
	"github.com/muurk/wordfinder/internal/logging"
	"github.com/muurk/wordfinder/internal/version"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// Global flags
var (
	configPath string
	endpoint   string
	timeout    time.Duration
	logLevel   string
	logFile    string
	discover   bool
)

// settings is resolved once per invocation by loadSettings.
var settings *config.Settings

var rootCmd = &cobra.Command{
	Use:   "wordfinder",
	Short: "Word Finder puzzle client",
	Long: `A terminal client for a word-search puzzle generation service.

Enter a word list and grid size, then find the hidden words by selecting
cells with the arrow keys or the mouse.

If no command is specified, the interactive client will launch automatically.`,
	Version:           version.Version,
	PersistentPreRunE: loadSettings,
	RunE: func(cmd *cobra.Command, args []string) error {
		// Default behavior: play when no subcommand provided
		return runPlay(cmd, args)
	},
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	// Disable automatic completion command generation
	rootCmd.CompletionOptions.DisableDefaultCmd = true

	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Config file (default is the user config directory)")
	rootCmd.PersistentFlags().StringVar(&endpoint, "endpoint", "", "Generation service URL (default "+generator.DefaultEndpoint+")")
	rootCmd.PersistentFlags().DurationVar(&timeout, "timeout", 0, "Request timeout (default 30s)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "Log level (debug, info, warn, error); silent if unset")
	rootCmd.PersistentFlags().StringVar(&logFile, "log-file", "", "Write logs to this file instead of stderr")
	rootCmd.PersistentFlags().BoolVar(&discover, "discover", false, "Use the first generation service found over mDNS")

	rootCmd.AddCommand(versionCmd)
}

// loadSettings resolves settings and logging before any command runs.
func loadSettings(cmd *cobra.Command, args []string) error {
	if err := initLogging(); err != nil {
		return err
	}

	s, err := config.Resolve(configPath, config.Overrides{
		Endpoint: endpoint,
		Timeout:  timeout,
		Rows:     rows,
		Columns:  columns,
	})
	if err != nil {
		return fmt.Errorf("failed to load settings: %w", err)
	}
	settings = s

	if discover && endpoint == "" {
		found, err := discovery.FindEndpoint(cmd.Context(), time.Duration(settings.DiscoverTimeout)*time.Second)
		if err != nil {
			return fmt.Errorf("discovery failed: %w", err)
		}
		settings.Endpoint = found
	}

	logging.Debug("Settings resolved",
		zap.String("endpoint", settings.Endpoint),
		zap.Duration("timeout", settings.Timeout()),
		zap.String("rows", settings.DefaultRows),
		zap.String("columns", settings.DefaultColumns),
	)
	return nil
}

// initLogging loads .env before the logger so WORDFINDER_LOG_LEVEL and
// WORDFINDER_LOG_FILE set there take effect.
func initLogging() error {
	if err := config.LoadDotEnv(); err != nil {
		return err
	}
	return logging.Initialize(logging.Options{Level: logLevel, File: logFile})
}

// newClient builds a generation client from the resolved settings.
func newClient() *generator.Client {
	client := generator.NewClient(settings.Endpoint)
	client.SetTimeout(settings.Timeout())
	return client
}

// commandContext returns a context bounded by the request timeout.
func commandContext(cmd *cobra.Command) (context.Context, context.CancelFunc) {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	return context.WithTimeout(ctx, settings.Timeout())
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("wordfinder %s\n", version.Full())
	},
}
