package main

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/muurk/wordfinder/internal/config"
	"github.com/muurk/wordfinder/internal/discovery"
	"github.com/muurk/wordfinder/internal/generator"
	"github.com/muurk/wordfinder/internal/puzzle"
	"github.com/muurk/wordfinder/internal/tui"
	"github.com/muurk/wordfinder/internal/ui"
)

// Puzzle command flags
var (
	startScreen  string
	rows         string
	columns      string
	words        []string
	wordsFile    string
	wordList     string
	outputFormat string
	reveal       bool
	scanTimeout  int
	forceInit    bool
)

func init() {
	for _, c := range []*cobra.Command{rootCmd, playCmd} {
		c.Flags().StringVar(&startScreen, "start", "landing", "Screen to start on (landing, configuration)")
		addPuzzleFlags(c)
	}
	addPuzzleFlags(generateCmd)
	generateCmd.Flags().StringArrayVarP(&words, "words", "w", nil, "Word to place (repeatable)")
	generateCmd.Flags().StringVar(&outputFormat, "format", "text", "Output format (text, json)")
	generateCmd.Flags().BoolVar(&reveal, "reveal", false, "Highlight the cells of placed words")

	discoverCmd.Flags().IntVar(&scanTimeout, "timeout", 0, "Scan timeout in seconds (default from config, 5)")

	configInitCmd.Flags().BoolVar(&forceInit, "force", false, "Overwrite an existing config file")
	configCmd.AddCommand(configPathCmd)
	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configInitCmd)

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(generateCmd)
	rootCmd.AddCommand(discoverCmd)
	rootCmd.AddCommand(checkCmd)
	rootCmd.AddCommand(configCmd)
}

func addPuzzleFlags(c *cobra.Command) {
	c.Flags().StringVar(&rows, "rows", "", "Grid rows (default from config, 15)")
	c.Flags().StringVar(&columns, "columns", "", "Grid columns (default from config, 15)")
	c.Flags().StringVar(&wordsFile, "words-file", "", "Read words from a file, one per line ('-' for stdin)")
	c.Flags().StringVar(&wordList, "list", "", "Use a named word list from the config file")
}

// playCmd launches the interactive client
var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Launch the interactive puzzle client",
	Long: `Launch the interactive terminal client.

The client walks through three screens:
- Landing: press enter to begin
- Configuration: type words (one per line) and the grid size
- Puzzle: find the words by selecting cells

Words given with --words-file or --list are filled into the form.`,
	Example: `  # Launch the client (play is the default)
  wordfinder
  wordfinder play

  # Skip the landing screen with a word list prefilled
  wordfinder play --start configuration --words-file animals.txt

  # Use a list from the config file on a small grid
  wordfinder --list animals --rows 8 --columns 8`,
	RunE: runPlay,
}

func runPlay(cmd *cobra.Command, args []string) error {
	start, ok := tui.ParseScreen(startScreen)
	if !ok {
		return fmt.Errorf("unknown start screen %q (use landing or configuration)", startScreen)
	}

	list, err := collectWords(nil, wordsFile, wordList, cmd.InOrStdin())
	if err != nil {
		return err
	}

	cfg := settings.InitialConfiguration()
	cfg.WordText = strings.Join(list, "\n")

	client := newClient()
	model := tui.NewAppModel(tui.Options{
		Start:    start,
		Config:   cfg,
		Generate: client.Generate,
		Endpoint: settings.Endpoint,
		Timeout:  settings.Timeout(),
	})

	p := tea.NewProgram(model, tea.WithAltScreen(), tea.WithMouseCellMotion())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("client error: %w", err)
	}
	return nil
}

// generateCmd requests one puzzle and prints it
var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate a puzzle and print it",
	Long: `Request a single puzzle from the generation service and print it.

Words come from --words, --words-file, --list, or standard input when none
of those are given and stdin is not a terminal. Text output is styled only
when stdout is a terminal.`,
	Example: `  # Place three words on a 10x10 grid
  wordfinder generate -w cat -w dog -w owl --rows 10 --columns 10

  # Read words from a file and show where they are
  wordfinder generate --words-file animals.txt --reveal

  # Pipe words in and get the raw response as JSON
  printf 'cat\ndog\n' | wordfinder generate --format json`,
	RunE: runGenerate,
}

func runGenerate(cmd *cobra.Command, args []string) error {
	if outputFormat != "text" && outputFormat != "json" {
		return fmt.Errorf("unknown format %q (use text or json)", outputFormat)
	}

	file := wordsFile
	if len(words) == 0 && file == "" && wordList == "" && !ui.IsTerminal(cmd.InOrStdin()) {
		file = "-"
	}
	list, err := collectWords(words, file, wordList, cmd.InOrStdin())
	if err != nil {
		return err
	}

	cfg := settings.InitialConfiguration()
	cfg.WordText = strings.Join(list, "\n")
	req := cfg.Request()

	ctx, cancel := commandContext(cmd)
	defer cancel()

	result, err := newClient().Generate(ctx, req)
	if err != nil {
		if outputFormat == "text" {
			printer := ui.NewPrinter(cmd.ErrOrStderr())
			printer.PrintError("Generation failed", err, hintLines(err))
		}
		return fmt.Errorf("failed to generate puzzle: %w", err)
	}

	if outputFormat == "json" {
		data, err := puzzle.EncodeResponse(result)
		if err != nil {
			return fmt.Errorf("failed to marshal JSON: %w", err)
		}
		fmt.Fprintln(cmd.OutOrStdout(), string(data))
		return nil
	}

	printer := ui.NewPrinter(cmd.OutOrStdout())
	printer.PrintPuzzle(result, reveal)
	for _, m := range result.Mismatches(req) {
		printer.PrintWarning("Response differs from request", []ui.Detail{ui.D("Note", m)})
	}
	return nil
}

// discoverCmd browses for generation services
var discoverCmd = &cobra.Command{
	Use:   "discover",
	Short: "Find generation services on the network",
	Long: `Browse for generation services advertised over mDNS/DNS-SD as
` + discovery.ServiceType + ` and print their endpoints.

Start a local service with 'wordfinder-stub serve --advertise' to test.`,
	Example: `  # Browse for 5 seconds (default)
  wordfinder discover

  # Longer browse for busy networks
  wordfinder discover --timeout 15`,
	RunE: runDiscover,
}

func runDiscover(cmd *cobra.Command, args []string) error {
	secs := scanTimeout
	if secs <= 0 {
		secs = settings.DiscoverTimeout
	}
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Scanning for generation services (timeout: %ds)...\n\n", secs)

	services, err := discovery.ScanForServices(cmd.Context(), time.Duration(secs)*time.Second)
	if err != nil {
		return fmt.Errorf("scan failed: %w", err)
	}

	if len(services) == 0 {
		fmt.Fprintln(out, "No services found.")
		fmt.Fprintln(out, "\nTroubleshooting:")
		fmt.Fprintln(out, "  - Ensure the service is running and advertising "+discovery.ServiceType)
		fmt.Fprintln(out, "  - Check that multicast traffic is allowed on this network")
		fmt.Fprintln(out, "  - Try increasing --timeout")
		fmt.Fprintln(out, "  - Use --endpoint to set the URL manually")
		return nil
	}

	fmt.Fprintf(out, "Found %d service(s):\n\n", len(services))
	for i, svc := range services {
		fmt.Fprintf(out, "%d. %s\n", i+1, svc.Instance)
		fmt.Fprintf(out, "   Host:     %s\n", svc.Hostname)
		fmt.Fprintf(out, "   Endpoint: %s\n", svc.Endpoint())
		if len(svc.Metadata) > 0 {
			fmt.Fprintf(out, "   Metadata: %v\n", svc.Metadata)
		}
		fmt.Fprintln(out)
	}

	fmt.Fprintln(out, "Use 'wordfinder --endpoint <url>' or 'wordfinder --discover' to connect")
	return nil
}

// checkCmd verifies the generation service answers
var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Check that the generation service is reachable",
	Long: `Check the configured generation service.

Runs two steps: a GET to the endpoint to confirm something is listening,
then a small generation request to confirm it speaks the puzzle format.`,
	Example: `  # Check the default endpoint
  wordfinder check

  # Check a specific endpoint
  wordfinder check --endpoint http://puzzlebox.local:8080/wordfinder`,
	RunE: runCheck,
}

func runCheck(cmd *cobra.Command, args []string) error {
	client := newClient()
	printer := ui.NewPrinter(cmd.OutOrStdout())

	runner := ui.NewRunner(printer, "Service check", "wordfinder check", []ui.Detail{
		ui.D("Endpoint", settings.Endpoint),
		ui.D("Timeout", settings.Timeout().String()),
	}, 2)
	runner.Troubleshooting = hintLines

	return runner.Run(func(onStep ui.StepCallback) ([]ui.Detail, error) {
		ctx, cancel := commandContext(cmd)
		defer cancel()

		status, err := client.Ping(ctx)
		if err != nil {
			onStep("Reach endpoint", ui.StepFailed, generator.ShortMessage(err))
			onStep("Generate sample", ui.StepSkipped, "")
			return nil, err
		}
		onStep("Reach endpoint", ui.StepComplete, fmt.Sprintf("HTTP %d", status))

		sample := puzzle.Configuration{Rows: "5", Columns: "5", WordText: "CAT\nDOG"}
		result, err := client.Generate(ctx, sample.Request())
		if err != nil {
			onStep("Generate sample", ui.StepFailed, generator.ShortMessage(err))
			return nil, err
		}
		onStep("Generate sample", ui.StepComplete,
			fmt.Sprintf("%dx%d, %d placed", result.Grid.Rows(), result.Grid.Columns(), len(result.PlacedWords)))

		return []ui.Detail{
			ui.D("Status", fmt.Sprintf("HTTP %d", status)),
			ui.D("Placed", strings.Join(result.PlacedWords.Words(), ", ")),
		}, nil
	})
}

// configCmd groups config file management
var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage the configuration file",
	// A broken config file must not stop 'config init --force' from replacing it.
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return initLogging()
	},
}

var configPathCmd = &cobra.Command{
	Use:   "path",
	Short: "Print the configuration file path",
	RunE: func(cmd *cobra.Command, args []string) error {
		path, err := resolveConfigPath()
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), path)
		return nil
	},
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the effective configuration",
	Long: `Print the configuration after applying the config file, the environment
(including .env) and command-line flags.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := config.Resolve(configPath, config.Overrides{Endpoint: endpoint, Timeout: timeout})
		if err != nil {
			return fmt.Errorf("failed to load settings: %w", err)
		}
		data, err := s.Marshal()
		if err != nil {
			return err
		}
		fmt.Fprint(cmd.OutOrStdout(), string(data))
		return nil
	},
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Write a default configuration file",
	Example: `  # Create the default config file
  wordfinder config init

  # Replace an existing file (asks first)
  wordfinder config init --force`,
	RunE: func(cmd *cobra.Command, args []string) error {
		path, err := resolveConfigPath()
		if err != nil {
			return err
		}
		printer := ui.NewPrinter(cmd.OutOrStdout())

		if _, err := os.Stat(path); err == nil {
			if !forceInit {
				return fmt.Errorf("config file already exists: %s (use --force to overwrite)", path)
			}
			if !ui.Confirm(printer, cmd.InOrStdin(), "Overwrite "+path+"?") {
				return nil
			}
		}

		if err := config.CreateDefaultConfig(path, true); err != nil {
			return fmt.Errorf("failed to write config: %w", err)
		}
		printer.PrintSuccess("Config file written", []ui.Detail{ui.D("Path", path)})
		return nil
	},
}

func resolveConfigPath() (string, error) {
	if configPath != "" {
		return configPath, nil
	}
	path, err := config.GetConfigPath()
	if err != nil {
		return "", fmt.Errorf("failed to get config path: %w", err)
	}
	return path, nil
}

// collectWords merges words from a named list, a file ('-' is stdin) and
// explicit arguments, in that order.
func collectWords(explicit []string, file, list string, stdin io.Reader) ([]string, error) {
	out := make([]string, 0)

	if list != "" {
		named, ok := settings.WordList(list)
		if !ok {
			names := settings.WordListNames()
			if len(names) == 0 {
				return nil, fmt.Errorf("word list %q not found (no lists configured, see 'wordfinder config init')", list)
			}
			return nil, fmt.Errorf("word list %q not found (available: %s)", list, strings.Join(names, ", "))
		}
		out = append(out, named...)
	}

	if file != "" {
		var data []byte
		var err error
		if file == "-" {
			data, err = io.ReadAll(stdin)
		} else {
			data, err = os.ReadFile(file)
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read words: %w", err)
		}
		out = append(out, puzzle.SplitWords(string(data))...)
	}

	for _, w := range explicit {
		out = append(out, puzzle.SplitWords(w)...)
	}
	return out, nil
}

// hintLines splits a troubleshooting hint into box lines.
func hintLines(err error) []string {
	return strings.Split(generator.TroubleshootingHint(err), "\n")
}
