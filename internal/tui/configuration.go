package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/muurk/wordfinder/internal/puzzle"
)

// configFocus is the focused control on the configuration screen, in tab order.
type configFocus int

const (
	focusWords configFocus = iota
	focusRows
	focusColumns
	focusGenerate
	focusCount
)

// configurationKeyMap defines key bindings for the configuration screen
type configurationKeyMap struct {
	Next     key.Binding
	Prev     key.Binding
	Submit   key.Binding
	Generate key.Binding
	Back     key.Binding
	Quit     key.Binding
}

// ShortHelp returns keybindings to be shown in the mini help view
func (k configurationKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Next, k.Generate, k.Back, k.Quit}
}

// FullHelp returns keybindings for the expanded help view
func (k configurationKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Next, k.Prev, k.Submit},
		{k.Generate, k.Back, k.Quit},
	}
}

// ConfigurationModel edits the word list and grid dimensions.
// Values are kept exactly as typed; nothing is clamped or rejected here.
type ConfigurationModel struct {
	Words   textarea.Model
	Rows    textinput.Model
	Columns textinput.Model

	focus configFocus

	Width  int
	Height int
	Help   help.Model
	Keys   configurationKeyMap
}

// NewConfigurationModel creates the configuration screen with inputs
// populated from cfg
func NewConfigurationModel(cfg puzzle.Configuration) ConfigurationModel {
	words := textarea.New()
	words.Placeholder = "One word per line"
	words.ShowLineNumbers = false
	words.CharLimit = 0
	words.SetWidth(40)
	words.SetHeight(8)
	words.SetValue(cfg.WordText)

	rows := newDimensionInput(cfg.Rows)
	columns := newDimensionInput(cfg.Columns)

	m := ConfigurationModel{
		Words:   words,
		Rows:    rows,
		Columns: columns,
		Help:    help.New(),
		Keys: configurationKeyMap{
			Next: key.NewBinding(
				key.WithKeys("tab"),
				key.WithHelp("tab", "next field"),
			),
			Prev: key.NewBinding(
				key.WithKeys("shift+tab"),
				key.WithHelp("shift+tab", "previous field"),
			),
			Submit: key.NewBinding(
				key.WithKeys("enter"),
				key.WithHelp("enter", "press button"),
			),
			Generate: key.NewBinding(
				key.WithKeys("ctrl+g"),
				key.WithHelp("ctrl+g", "generate"),
			),
			Back: key.NewBinding(
				key.WithKeys("esc"),
				key.WithHelp("esc", "back"),
			),
			Quit: key.NewBinding(
				key.WithKeys("ctrl+c"),
				key.WithHelp("ctrl+c", "quit"),
			),
		},
	}
	m.Words.Focus()
	return m
}

func newDimensionInput(value string) textinput.Model {
	input := textinput.New()
	input.Prompt = ""
	input.Placeholder = puzzle.DefaultRows
	input.Width = 6
	input.SetValue(value)
	return input
}

// Init starts the cursor blinking in the focused input
func (m ConfigurationModel) Init() tea.Cmd {
	return textarea.Blink
}

// Editing reports whether a text input has focus.
func (m ConfigurationModel) Editing() bool {
	return m.focus != focusGenerate
}

// Configuration returns the values currently in the inputs.
func (m ConfigurationModel) Configuration() puzzle.Configuration {
	return puzzle.Configuration{
		Rows:     m.Rows.Value(),
		Columns:  m.Columns.Value(),
		WordText: m.Words.Value(),
	}
}

// Update handles messages and updates the model
func (m ConfigurationModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(keyMsg, m.Keys.Next):
			return m.setFocus((m.focus + 1) % focusCount)

		case key.Matches(keyMsg, m.Keys.Prev):
			return m.setFocus((m.focus + focusCount - 1) % focusCount)

		case key.Matches(keyMsg, m.Keys.Generate):
			return m, navigate(ScreenGenerate)

		case key.Matches(keyMsg, m.Keys.Back):
			return m, navigate(ScreenLanding)

		case m.focus == focusGenerate:
			if key.Matches(keyMsg, m.Keys.Submit) {
				return m, navigate(ScreenGenerate)
			}
			return m, nil
		}
	}

	return m.updateFocusedInput(msg)
}

// updateFocusedInput forwards msg to the focused input and reports the raw
// value when it changes.
func (m ConfigurationModel) updateFocusedInput(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch m.focus {
	case focusWords:
		before := m.Words.Value()
		m.Words, cmd = m.Words.Update(msg)
		if after := m.Words.Value(); after != before {
			cmd = tea.Batch(cmd, configChanged(FieldWords, after))
		}

	case focusRows:
		before := m.Rows.Value()
		m.Rows, cmd = m.Rows.Update(msg)
		if after := m.Rows.Value(); after != before {
			cmd = tea.Batch(cmd, configChanged(FieldRows, after))
		}

	case focusColumns:
		before := m.Columns.Value()
		m.Columns, cmd = m.Columns.Update(msg)
		if after := m.Columns.Value(); after != before {
			cmd = tea.Batch(cmd, configChanged(FieldColumns, after))
		}
	}

	return m, cmd
}

func (m ConfigurationModel) setFocus(focus configFocus) (tea.Model, tea.Cmd) {
	m.focus = focus
	m.Words.Blur()
	m.Rows.Blur()
	m.Columns.Blur()

	var cmd tea.Cmd
	switch focus {
	case focusWords:
		cmd = m.Words.Focus()
	case focusRows:
		cmd = m.Rows.Focus()
	case focusColumns:
		cmd = m.Columns.Focus()
	}
	return m, cmd
}

// View renders the configuration screen
func (m ConfigurationModel) View() string {
	var b strings.Builder

	b.WriteString(RenderTitle("Configure your puzzle"))
	b.WriteString("\n")

	b.WriteString(indent.Render(m.label("Words", focusWords)))
	b.WriteString("\n")
	b.WriteString(indent.Render(m.Words.View()))
	b.WriteString("\n")
	b.WriteString(indent.Render(HintStyle.Render(wordCount(len(puzzle.SplitWords(m.Words.Value()))))))
	b.WriteString("\n\n")

	dims := lipgloss.JoinHorizontal(lipgloss.Top,
		m.dimensionField("Rows", m.Rows, focusRows),
		"    ",
		m.dimensionField("Columns", m.Columns, focusColumns),
	)
	b.WriteString(indent.Render(dims))
	b.WriteString("\n")
	b.WriteString(indent.Render(HintStyle.Render(fmt.Sprintf("Grids work best between %d and %d.", puzzle.MinDimension, puzzle.MaxDimension))))
	b.WriteString("\n\n")

	b.WriteString(indent.Render(RenderButton("Generate", m.focus == focusGenerate)))
	b.WriteString("\n")

	return RenderApplicationContainer(b.String(), m.Help.View(m.Keys), m.Width, m.Height)
}

func (m ConfigurationModel) label(text string, focus configFocus) string {
	if m.focus == focus {
		return FocusedInputStyle.Render("> " + text)
	}
	return LabelStyle.Render("  " + text)
}

func (m ConfigurationModel) dimensionField(name string, input textinput.Model, focus configFocus) string {
	line := m.label(name, focus) + "  " + input.View()
	if d := puzzle.ParseDimension(input.Value()); !d.InAdvisoryRange() {
		line += "  " + WarningStyle.Render("(unusual)")
	}
	return line
}

func wordCount(n int) string {
	if n == 1 {
		return "1 word"
	}
	return fmt.Sprintf("%d words", n)
}
