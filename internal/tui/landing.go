package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// landingKeyMap defines key bindings for the landing screen
type landingKeyMap struct {
	Start key.Binding
	Quit  key.Binding
}

// ShortHelp returns keybindings to be shown in the mini help view
func (k landingKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Start, k.Quit}
}

// FullHelp returns keybindings for the expanded help view
func (k landingKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Start, k.Quit},
	}
}

// LandingModel is the title screen
type LandingModel struct {
	Width  int
	Height int
	Help   help.Model
	Keys   landingKeyMap
}

// NewLandingModel creates the landing screen model
func NewLandingModel() LandingModel {
	return LandingModel{
		Help: help.New(),
		Keys: landingKeyMap{
			Start: key.NewBinding(
				key.WithKeys("enter", "s"),
				key.WithHelp("enter/s", "start"),
			),
			Quit: key.NewBinding(
				key.WithKeys("q"),
				key.WithHelp("q", "quit"),
			),
		},
	}
}

// Init initializes the landing model
func (m LandingModel) Init() tea.Cmd {
	return nil
}

// Update handles messages and updates the model
func (m LandingModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		if key.Matches(keyMsg, m.Keys.Start) {
			return m, navigate(ScreenConfiguration)
		}
	}
	return m, nil
}

// View renders the landing screen
func (m LandingModel) View() string {
	var b strings.Builder

	b.WriteString(RenderTitle("Word Finder"))
	b.WriteString("\n")
	b.WriteString(SubtitleStyle.Render("  Build a word search from your own list of words."))
	b.WriteString("\n\n")
	b.WriteString(indent.Render(RenderButton("Start", true)))
	b.WriteString("\n")

	return RenderApplicationContainer(b.String(), m.Help.View(m.Keys), m.Width, m.Height)
}
