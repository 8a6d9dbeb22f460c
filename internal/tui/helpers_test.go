package tui

import (
	"context"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/muurk/wordfinder/internal/puzzle"
)

func catResult() *puzzle.Result {
	return puzzle.NewResult(
		puzzle.Grid{{"C", "A", "T"}, {"X", "Y", "Z"}, {"Q", "R", "S"}},
		puzzle.PlacedWords{{Word: "CAT", Cells: []puzzle.Coordinate{{Row: 0, Column: 0}, {Row: 0, Column: 1}, {Row: 0, Column: 2}}}},
	)
}

// fakeGenerator records requests and answers with catResult.
type fakeGenerator struct {
	requests []puzzle.GenerationRequest
	err      error
}

func (f *fakeGenerator) Generate(_ context.Context, req puzzle.GenerationRequest) (*puzzle.Result, error) {
	f.requests = append(f.requests, req)
	if f.err != nil {
		return nil, f.err
	}
	return catResult(), nil
}

// runCmd executes cmd and flattens batches. Commands that block (cursor
// blinks, spinner ticks) are abandoned after a short wait.
func runCmd(cmd tea.Cmd) []tea.Msg {
	if cmd == nil {
		return nil
	}
	ch := make(chan tea.Msg, 1)
	go func() { ch <- cmd() }()

	select {
	case msg := <-ch:
		if batch, ok := msg.(tea.BatchMsg); ok {
			var out []tea.Msg
			for _, c := range batch {
				out = append(out, runCmd(c)...)
			}
			return out
		}
		if msg == nil {
			return nil
		}
		return []tea.Msg{msg}
	case <-time.After(100 * time.Millisecond):
		return nil
	}
}

func isAppMsg(msg tea.Msg) bool {
	switch msg.(type) {
	case navigateMsg, configChangedMsg, generatedMsg:
		return true
	}
	return false
}

// pump feeds the app messages produced by cmd back into m until none remain.
func pump(t *testing.T, m AppModel, cmd tea.Cmd) AppModel {
	t.Helper()
	for _, msg := range runCmd(cmd) {
		if !isAppMsg(msg) {
			continue
		}
		updated, next := m.Update(msg)
		m = updated.(AppModel)
		m = pump(t, m, next)
	}
	return m
}

// send delivers msg to m and pumps the resulting commands.
func send(t *testing.T, m AppModel, msg tea.Msg) AppModel {
	t.Helper()
	updated, cmd := m.Update(msg)
	return pump(t, updated.(AppModel), cmd)
}

func typeText(t *testing.T, m AppModel, text string) AppModel {
	t.Helper()
	for _, r := range text {
		if r == '\n' {
			m = send(t, m, tea.KeyMsg{Type: tea.KeyEnter})
			continue
		}
		m = send(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	}
	return m
}

func quits(cmd tea.Cmd) bool {
	for _, msg := range runCmd(cmd) {
		if _, ok := msg.(tea.QuitMsg); ok {
			return true
		}
	}
	return false
}

var (
	keyEnter = tea.KeyMsg{Type: tea.KeyEnter}
	keyTab   = tea.KeyMsg{Type: tea.KeyTab}
	keyEsc   = tea.KeyMsg{Type: tea.KeyEsc}
	keyCtrlG = tea.KeyMsg{Type: tea.KeyCtrlG}
	keySpace = tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}
	keyRight = tea.KeyMsg{Type: tea.KeyRight}
)

func runeKey(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}
