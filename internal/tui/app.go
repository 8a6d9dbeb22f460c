package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"github.com/muurk/wordfinder/internal/logging"
	"github.com/muurk/wordfinder/internal/puzzle"
)

// Screen represents the current active screen in the application
type Screen string

const (
	ScreenLanding       Screen = "landing"
	ScreenConfiguration Screen = "configuration"
	ScreenGenerate      Screen = "generate"
)

// ParseScreen maps a screen name to a Screen.
func ParseScreen(name string) (Screen, bool) {
	switch Screen(name) {
	case ScreenLanding, ScreenConfiguration, ScreenGenerate:
		return Screen(name), true
	}
	return "", false
}

// Messages for screen transitions and shared state
type navigateMsg struct {
	screen Screen
}

type configChangedMsg struct {
	field Field
	value string
}

// generatedMsg carries the outcome of one generation request.
type generatedMsg struct {
	seq    uint64
	result *puzzle.Result
	err    error
}

// navigate switches screens. It performs no validation.
func navigate(screen Screen) tea.Cmd {
	return func() tea.Msg {
		return navigateMsg{screen: screen}
	}
}

func configChanged(field Field, value string) tea.Cmd {
	return func() tea.Msg {
		return configChangedMsg{field: field, value: value}
	}
}

// Options configure the application model.
type Options struct {
	Start    Screen
	Config   puzzle.Configuration
	Generate GenerateFunc
	Endpoint string
	Timeout  time.Duration
}

// AppModel is the top-level coordinator model that manages screen transitions
type AppModel struct {
	CurrentScreen  Screen
	PreviousScreen Screen

	// Screen models
	Landing       LandingModel
	Configuration ConfigurationModel
	Puzzle        PuzzleModel

	// Shared application state
	Store    *Store
	Sequence *Sequence

	generate GenerateFunc
	endpoint string
	timeout  time.Duration
	initCmd  tea.Cmd

	// UI state
	Width  int
	Height int
}

// NewAppModel creates a new application model starting at opts.Start, or at
// the landing screen when unset.
func NewAppModel(opts Options) AppModel {
	start := opts.Start
	if start == "" {
		start = ScreenLanding
	}
	timeout := opts.Timeout
	if timeout <= 0 {
		timeout = 30 * time.Second
	}

	m := AppModel{
		Store:    NewStore(opts.Config),
		Sequence: &Sequence{},
		generate: opts.Generate,
		endpoint: opts.Endpoint,
		timeout:  timeout,
	}
	m, m.initCmd = m.mount(start)
	return m
}

// Init starts whatever the starting screen needs
func (m AppModel) Init() tea.Cmd {
	return m.initCmd
}

// Update handles all messages and routes them to the appropriate screen
func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.Width = msg.Width
		m.Height = msg.Height
		m.Landing.Width, m.Landing.Height = msg.Width, msg.Height
		m.Configuration.Width, m.Configuration.Height = msg.Width, msg.Height
		m.Puzzle.Width, m.Puzzle.Height = msg.Width, msg.Height
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			return m, tea.Quit
		case "q":
			if !m.capturingText() {
				return m, tea.Quit
			}
		}

	case navigateMsg:
		return m.transitionTo(msg.screen)

	case configChangedMsg:
		m.Store.Set(msg.field, msg.value)
		logging.Debug("Configuration changed",
			zap.Stringer("field", msg.field),
			zap.String("value", msg.value),
		)
		return m, nil

	case generatedMsg:
		if m.CurrentScreen != ScreenGenerate {
			logging.Debug("Dropping response for unmounted puzzle screen",
				zap.Uint64("seq", msg.seq),
				zap.String("screen", string(m.CurrentScreen)),
			)
			return m, nil
		}
	}

	return m.updateCurrentScreen(msg)
}

// capturingText reports whether keystrokes are going into a text input.
func (m AppModel) capturingText() bool {
	return m.CurrentScreen == ScreenConfiguration && m.Configuration.Editing()
}

// updateCurrentScreen routes updates to the currently active screen
func (m AppModel) updateCurrentScreen(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch m.CurrentScreen {
	case ScreenLanding:
		updated, c := m.Landing.Update(msg)
		m.Landing = updated.(LandingModel)
		cmd = c

	case ScreenConfiguration:
		updated, c := m.Configuration.Update(msg)
		m.Configuration = updated.(ConfigurationModel)
		cmd = c

	case ScreenGenerate:
		updated, c := m.Puzzle.Update(msg)
		m.Puzzle = updated.(PuzzleModel)
		cmd = c
	}

	return m, cmd
}

// transitionTo moves to screen
func (m AppModel) transitionTo(screen Screen) (tea.Model, tea.Cmd) {
	logging.Debug("Navigating",
		zap.String("from", string(m.CurrentScreen)),
		zap.String("to", string(screen)),
	)
	return m.mount(screen)
}

// mount makes screen current. Screens are rebuilt from the store every time,
// so leaving the puzzle screen discards its state.
func (m AppModel) mount(screen Screen) (AppModel, tea.Cmd) {
	m.PreviousScreen = m.CurrentScreen
	m.CurrentScreen = screen

	var cmd tea.Cmd

	switch screen {
	case ScreenLanding:
		m.Landing = NewLandingModel()
		m.Landing.Width, m.Landing.Height = m.Width, m.Height

	case ScreenConfiguration:
		m.Configuration = NewConfigurationModel(m.Store.Config)
		m.Configuration.Width, m.Configuration.Height = m.Width, m.Height
		cmd = m.Configuration.Init()

	case ScreenGenerate:
		m.Puzzle = NewPuzzleModel(m.Sequence, m.generate, m.endpoint, m.timeout)
		m.Puzzle.Width, m.Puzzle.Height = m.Width, m.Height
		m.Puzzle, cmd = m.Puzzle.Configure(m.Store.Config)
	}

	return m, cmd
}

// View renders the current screen
func (m AppModel) View() string {
	switch m.CurrentScreen {
	case ScreenLanding:
		return m.Landing.View()
	case ScreenConfiguration:
		return m.Configuration.View()
	case ScreenGenerate:
		return m.Puzzle.View()
	default:
		return "Unknown screen"
	}
}
