// Wordfinder-stub is a stand-in for the word finder generation service.
//
// It answers every generation request with the same canned puzzle, either
// a built-in sample or one loaded from a YAML fixture file, so the client
// can be exercised without the real service. It can optionally advertise
// itself over mDNS for 'wordfinder --discover'.
//
// Usage:
//
//	wordfinder-stub serve [flags]
//
// See 'wordfinder-stub serve --help' for available options.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/muurk/wordfinder/internal/config"
	"github.com/muurk/wordfinder/internal/discovery"
	"github.com/muurk/wordfinder/internal/logging"
	"github.com/muurk/wordfinder/internal/stub"
	"github.com/muurk/wordfinder/internal/ui"
	"github.com/muurk/wordfinder/internal/version"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "wordfinder-stub",
	Short: "Word Finder stub generation service",
	Long: `A stub of the word finder generation service for local testing.

Every POST to the generation path returns the same puzzle regardless of
the words requested. Use it to develop and test the client offline.

Note: the stub never builds grids itself. Point the client at the real
service for actual puzzles.`,
	Version:       version.Version,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.CompletionOptions.DisableDefaultCmd = true
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(sampleCmd)
	rootCmd.AddCommand(versionCmd)
}

// Serve command flags
var (
	host        string
	port        int
	path        string
	fixturePath string
	advertise   bool
	instance    string
	delay       time.Duration
	logLevel    string
	logFile     string
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the stub service",
	Long: `Start the stub generation service.

Requests are logged at info level. Without --fixture the built-in 5x5
sample puzzle is served. Settings in a .env file in the working directory
are loaded first.`,
	Example: `  # Serve the built-in sample on :8080/wordfinder
  wordfinder-stub serve

  # Serve a fixture and advertise it over mDNS
  wordfinder-stub serve --fixture animals.yaml --advertise

  # Simulate a slow service to exercise the client's loading state
  wordfinder-stub serve --delay 3s --log-level debug`,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().StringVar(&host, "host", "", "Listen address (empty = all interfaces)")
	serveCmd.Flags().IntVar(&port, "port", discovery.DefaultPort, "Listen port")
	serveCmd.Flags().StringVar(&path, "path", discovery.DefaultPath, "Generation request path")
	serveCmd.Flags().StringVar(&fixturePath, "fixture", "", "YAML fixture to serve (default built-in sample)")
	serveCmd.Flags().BoolVar(&advertise, "advertise", false, "Advertise the service over mDNS")
	serveCmd.Flags().StringVar(&instance, "name", "wordfinder-stub", "mDNS instance name")
	serveCmd.Flags().DurationVar(&delay, "delay", 0, "Delay before each response")
	serveCmd.Flags().StringVar(&logLevel, "log-level", "info", "Log level (debug, info, warn, error)")
	serveCmd.Flags().StringVar(&logFile, "log-file", "", "Write logs to this file instead of stderr")
}

func runServe(cmd *cobra.Command, args []string) error {
	if err := config.LoadDotEnv(); err != nil {
		return err
	}
	if err := logging.Initialize(logging.Options{Level: logLevel, File: logFile}); err != nil {
		return err
	}
	defer logging.Sync()

	fixture := stub.SampleResult()
	if fixturePath != "" {
		var err error
		fixture, err = stub.LoadFixture(fixturePath)
		if err != nil {
			return err
		}
	}

	srv := stub.New(&stub.Config{
		Host:      host,
		Port:      port,
		Path:      path,
		Fixture:   fixture,
		Advertise: advertise,
		Instance:  instance,
		Delay:     delay,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	return srv.Start(ctx)
}

var sampleCmd = &cobra.Command{
	Use:   "sample",
	Short: "Print the puzzle the stub serves",
	RunE: func(cmd *cobra.Command, args []string) error {
		fixture := stub.SampleResult()
		if fixturePath != "" {
			var err error
			fixture, err = stub.LoadFixture(fixturePath)
			if err != nil {
				return err
			}
		}
		ui.NewPrinter(cmd.OutOrStdout()).PrintPuzzle(fixture, true)
		return nil
	},
}

func init() {
	sampleCmd.Flags().StringVar(&fixturePath, "fixture", "", "YAML fixture to print (default built-in sample)")
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("wordfinder-stub %s\n", version.Full())
	},
}
