package tui

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"github.com/muurk/wordfinder/internal/generator"
	"github.com/muurk/wordfinder/internal/logging"
	"github.com/muurk/wordfinder/internal/puzzle"
)

// PuzzleStatus is the lifecycle of the current generation request.
type PuzzleStatus int

const (
	StatusLoading PuzzleStatus = iota
	StatusReady
	StatusFailed
)

var errNoGenerator = errors.New("no generation service configured")

// puzzleKeyMap defines key bindings for the puzzle screen
type puzzleKeyMap struct {
	Up     key.Binding
	Down   key.Binding
	Left   key.Binding
	Right  key.Binding
	Select key.Binding
	Retry  key.Binding
	Back   key.Binding
	Quit   key.Binding
}

// ShortHelp returns keybindings to be shown in the mini help view
func (k puzzleKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Left, k.Right, k.Select, k.Retry, k.Back, k.Quit}
}

// FullHelp returns keybindings for the expanded help view
func (k puzzleKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Left, k.Right},
		{k.Select, k.Retry, k.Back, k.Quit},
	}
}

// PuzzleModel shows a generated grid and tracks the player's selections.
// A new model is built every time the screen is entered.
type PuzzleModel struct {
	Status  PuzzleStatus
	Err     error
	Session *puzzle.Session

	config   puzzle.Configuration
	latest   uint64 // sequence number of the request in flight, 0 before the first
	sequence *Sequence
	generate GenerateFunc
	endpoint string
	timeout  time.Duration

	CursorRow    int
	CursorColumn int

	// UI state
	Width    int
	Height   int
	Spinner  spinner.Model
	Progress progress.Model
	Help     help.Model
	Keys     puzzleKeyMap
}

// NewPuzzleModel creates a puzzle screen that draws request numbers from seq.
func NewPuzzleModel(seq *Sequence, generate GenerateFunc, endpoint string, timeout time.Duration) PuzzleModel {
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = SpinnerStyle

	bar := progress.New(progress.WithDefaultGradient(), progress.WithoutPercentage())
	bar.Width = 30

	if seq == nil {
		seq = &Sequence{}
	}

	return PuzzleModel{
		Status:   StatusLoading,
		Session:  puzzle.NewSession(),
		sequence: seq,
		generate: generate,
		endpoint: endpoint,
		timeout:  timeout,
		Spinner:  s,
		Progress: bar,
		Help:     help.New(),
		Keys: puzzleKeyMap{
			Up: key.NewBinding(
				key.WithKeys("up", "k"),
				key.WithHelp("↑/k", "up"),
			),
			Down: key.NewBinding(
				key.WithKeys("down", "j"),
				key.WithHelp("↓/j", "down"),
			),
			Left: key.NewBinding(
				key.WithKeys("left", "h"),
				key.WithHelp("←/h", "left"),
			),
			Right: key.NewBinding(
				key.WithKeys("right", "l"),
				key.WithHelp("→/l", "right"),
			),
			Select: key.NewBinding(
				key.WithKeys(" ", "enter"),
				key.WithHelp("space", "select"),
			),
			Retry: key.NewBinding(
				key.WithKeys("r"),
				key.WithHelp("r", "retry"),
			),
			Back: key.NewBinding(
				key.WithKeys("esc", "b"),
				key.WithHelp("esc/b", "back"),
			),
			Quit: key.NewBinding(
				key.WithKeys("q"),
				key.WithHelp("q", "quit"),
			),
		},
	}
}

// Init initializes the puzzle model
func (m PuzzleModel) Init() tea.Cmd {
	return nil
}

// Configure sets the configuration the puzzle is generated from. The first
// call, and any call with a different configuration, issues a new request.
func (m PuzzleModel) Configure(cfg puzzle.Configuration) (PuzzleModel, tea.Cmd) {
	if m.latest != 0 && cfg == m.config {
		return m, nil
	}
	m.config = cfg
	return m.request()
}

// Config returns the configuration the puzzle was generated from.
func (m PuzzleModel) Config() puzzle.Configuration {
	return m.config
}

// Latest returns the sequence number of the most recent request.
func (m PuzzleModel) Latest() uint64 {
	return m.latest
}

// request issues one asynchronous generation request tagged with a fresh
// sequence number.
func (m PuzzleModel) request() (PuzzleModel, tea.Cmd) {
	seq := m.sequence.Next()
	m.latest = seq
	m.Status = StatusLoading
	m.Err = nil

	req := m.config.Request()
	logging.LogGenerationRequest(m.endpoint, seq, m.config.Rows, m.config.Columns, len(req.Words))

	generate, timeout := m.generate, m.timeout
	fetch := func() tea.Msg {
		if generate == nil {
			return generatedMsg{seq: seq, err: errNoGenerator}
		}
		ctx := context.Background()
		if timeout > 0 {
			var cancel context.CancelFunc
			ctx, cancel = context.WithTimeout(ctx, timeout)
			defer cancel()
		}
		result, err := generate(ctx, req)
		return generatedMsg{seq: seq, result: result, err: err}
	}

	return m, tea.Batch(m.Spinner.Tick, fetch)
}

// Update handles messages and updates the model
func (m PuzzleModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case generatedMsg:
		return m.handleGenerated(msg), nil

	case spinner.TickMsg:
		if m.Status != StatusLoading {
			return m, nil
		}
		var cmd tea.Cmd
		m.Spinner, cmd = m.Spinner.Update(msg)
		return m, cmd

	case tea.MouseMsg:
		if m.Status == StatusReady && msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft {
			if row, column, ok := m.geometry().CellAt(m.Session.Result.Grid, msg.X, msg.Y); ok {
				m.CursorRow, m.CursorColumn = row, column
				m.click(row, column)
			}
		}
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	return m, nil
}

func (m PuzzleModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.Keys.Back):
		return m, navigate(ScreenConfiguration)

	case key.Matches(msg, m.Keys.Retry):
		if m.Status == StatusFailed {
			return m.request()
		}
		return m, nil
	}

	grid := m.Session.Result.Grid
	if m.Status != StatusReady || grid.Rows() == 0 {
		return m, nil
	}

	switch {
	case key.Matches(msg, m.Keys.Up):
		if m.CursorRow > 0 {
			m.CursorRow--
		}
	case key.Matches(msg, m.Keys.Down):
		if m.CursorRow < grid.Rows()-1 {
			m.CursorRow++
		}
	case key.Matches(msg, m.Keys.Left):
		if m.CursorColumn > 0 {
			m.CursorColumn--
		}
	case key.Matches(msg, m.Keys.Right):
		if m.CursorColumn < len(grid[m.CursorRow])-1 {
			m.CursorColumn++
		}
	case key.Matches(msg, m.Keys.Select):
		// a row with no cells leaves the cursor on nothing
		if m.CursorColumn < len(grid[m.CursorRow]) {
			m.click(m.CursorRow, m.CursorColumn)
		}
	}
	m.clampCursor()

	return m, nil
}

// handleGenerated applies the response to the latest request and drops any
// other.
func (m PuzzleModel) handleGenerated(msg generatedMsg) PuzzleModel {
	if msg.seq != m.latest {
		logging.LogStaleResponse(msg.seq, m.latest)
		return m
	}

	var rows, columns, placed int
	if msg.result != nil {
		rows, columns, placed = msg.result.Grid.Rows(), msg.result.Grid.Columns(), len(msg.result.PlacedWords)
	}
	logging.LogGenerationResponse(msg.seq, rows, columns, placed, msg.err)

	if msg.err != nil {
		m.Status = StatusFailed
		m.Err = msg.err
		return m
	}

	m.Session.SetResult(msg.result)
	m.Status = StatusReady
	m.Err = nil
	m.clampCursor()

	if problems := m.Session.Result.Mismatches(m.config.Request()); len(problems) > 0 {
		logging.Warn("Generated puzzle differs from request", zap.Strings("problems", problems))
	}
	return m
}

func (m *PuzzleModel) click(row, column int) {
	correct := m.Session.Click(row, column)
	logging.Debug("Cell clicked",
		zap.Int("row", row),
		zap.Int("column", column),
		zap.Bool("part_of_word", correct),
		zap.Int("correct", m.Session.Attempts.Correct),
		zap.Int("incorrect", m.Session.Attempts.Incorrect),
	)
}

func (m *PuzzleModel) clampCursor() {
	grid := m.Session.Result.Grid
	if len(grid) == 0 {
		m.CursorRow, m.CursorColumn = 0, 0
		return
	}
	if m.CursorRow >= len(grid) {
		m.CursorRow = len(grid) - 1
	}
	if m.CursorRow < 0 {
		m.CursorRow = 0
	}
	if width := len(grid[m.CursorRow]); m.CursorColumn >= width {
		m.CursorColumn = width - 1
	}
	if m.CursorColumn < 0 {
		m.CursorColumn = 0
	}
}

// PlacedWordsLine lists the placed words in the order the service sent them.
func PlacedWordsLine(placed puzzle.PlacedWords) string {
	return "Words to Find: " + strings.Join(placed.Words(), ", ")
}

// AttemptsLine renders the click counters.
func AttemptsLine(a puzzle.Attempts) string {
	return fmt.Sprintf("Correct: %d   Incorrect: %d", a.Correct, a.Incorrect)
}

// gridHeader is the content drawn above the grid.
func (m PuzzleModel) gridHeader() string {
	return RenderTitle("Find the words") + "\n" +
		indent.Render(PlacedWordsLine(m.Session.Result.PlacedWords)) + "\n\n"
}

// geometry locates the grid as drawn by View.
func (m PuzzleModel) geometry() gridGeometry {
	x, y := ContentOrigin(m.Width)
	return gridGeometry{
		Left: x + gridMarginLeft,
		Top:  y + ContentOffset(m.gridHeader(), m.Width),
	}
}

// View renders the puzzle screen
func (m PuzzleModel) View() string {
	var content string
	switch m.Status {
	case StatusLoading:
		content = m.loadingContent()
	case StatusFailed:
		content = m.failureContent()
	default:
		content = m.readyContent()
	}
	return RenderApplicationContainer(content, m.Help.View(m.Keys), m.Width, m.Height)
}

func (m PuzzleModel) loadingContent() string {
	var b strings.Builder
	b.WriteString(RenderTitle("Find the words"))
	b.WriteString("\n")
	b.WriteString(indent.Render(fmt.Sprintf("%s Generating a %s × %s puzzle...",
		m.Spinner.View(), m.config.Rows, m.config.Columns)))
	b.WriteString("\n")
	return b.String()
}

func (m PuzzleModel) failureContent() string {
	var b strings.Builder
	b.WriteString(RenderTitle("✗ Puzzle generation failed"))
	b.WriteString("\n")
	b.WriteString(indent.Render(ErrorBoxStyle.Render(generator.ShortMessage(m.Err))))
	b.WriteString("\n\n")
	if hint := generator.TroubleshootingHint(m.Err); hint != "" {
		b.WriteString(indent.Render(HintStyle.Render(hint)))
		b.WriteString("\n\n")
	}
	b.WriteString(indent.Render("Press r to retry or esc to change the configuration."))
	b.WriteString("\n")
	return b.String()
}

func (m PuzzleModel) readyContent() string {
	var b strings.Builder
	b.WriteString(m.gridHeader())

	grid := RenderGrid(m.Session.Result.Grid, m.Session.CellState, m.CursorRow, m.CursorColumn)
	b.WriteString(indent.Render(grid))
	b.WriteString("\n\n")

	b.WriteString(indent.Render(AttemptsLine(m.Session.Attempts)))
	b.WriteString("\n")

	found := m.Session.FoundWords()
	total := len(m.Session.Result.PlacedWords)
	percent := 0.0
	if total > 0 {
		percent = float64(len(found)) / float64(total)
	}
	b.WriteString(indent.Render(fmt.Sprintf("%s  %d/%d found", m.Progress.ViewAs(percent), len(found), total)))
	b.WriteString("\n")

	for _, problem := range m.Session.Result.Mismatches(m.config.Request()) {
		b.WriteString(indent.Render(WarningStyle.Render("! " + problem)))
		b.WriteString("\n")
	}
	return b.String()
}
