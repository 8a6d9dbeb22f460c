package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/muurk/wordfinder/internal/puzzle"
)

func newTestApp(gen *fakeGenerator) AppModel {
	return NewAppModel(Options{
		Config:   puzzle.NewConfiguration(),
		Generate: gen.Generate,
		Endpoint: "http://test.invalid/wordfinder",
	})
}

func TestAppStartsOnLanding(t *testing.T) {
	m := newTestApp(&fakeGenerator{})
	if m.CurrentScreen != ScreenLanding {
		t.Errorf("CurrentScreen = %q, want %q", m.CurrentScreen, ScreenLanding)
	}
	if m.View() == "" {
		t.Error("View() is empty")
	}
}

func TestAppStartScreenOption(t *testing.T) {
	m := NewAppModel(Options{Start: ScreenConfiguration, Config: puzzle.NewConfiguration()})
	if m.CurrentScreen != ScreenConfiguration {
		t.Errorf("CurrentScreen = %q, want %q", m.CurrentScreen, ScreenConfiguration)
	}
	if got := m.Configuration.Rows.Value(); got != "15" {
		t.Errorf("Rows input = %q, want 15", got)
	}
}

func TestParseScreen(t *testing.T) {
	for _, name := range []string{"landing", "configuration", "generate"} {
		if _, ok := ParseScreen(name); !ok {
			t.Errorf("ParseScreen(%q) not ok", name)
		}
	}
	if _, ok := ParseScreen("settings"); ok {
		t.Error("ParseScreen(settings) ok, want false")
	}
}

func TestAppFullFlowResetsPuzzleState(t *testing.T) {
	gen := &fakeGenerator{}
	m := newTestApp(gen)

	m = send(t, m, keyEnter)
	if m.CurrentScreen != ScreenConfiguration {
		t.Fatalf("after enter: CurrentScreen = %q, want configuration", m.CurrentScreen)
	}

	m = typeText(t, m, "cat\n \nDOG\n")
	if got := m.Store.Config.WordText; got != "cat\n \nDOG\n" {
		t.Fatalf("store WordText = %q", got)
	}

	m = send(t, m, keyCtrlG)
	if m.CurrentScreen != ScreenGenerate {
		t.Fatalf("after ctrl+g: CurrentScreen = %q, want generate", m.CurrentScreen)
	}
	if m.Puzzle.Status != StatusReady {
		t.Fatalf("Puzzle.Status = %v, want ready", m.Puzzle.Status)
	}
	if len(gen.requests) != 1 {
		t.Fatalf("requests = %d, want 1", len(gen.requests))
	}
	req := gen.requests[0]
	if len(req.Words) != 2 || req.Words[0] != "cat" || req.Words[1] != "DOG" {
		t.Errorf("request words = %q, want [cat DOG]", req.Words)
	}
	if req.Rows != puzzle.Dim(15) || req.Columns != puzzle.Dim(15) {
		t.Errorf("request dims = %v x %v, want 15 x 15", req.Rows, req.Columns)
	}

	m = send(t, m, keySpace)
	if m.Puzzle.Session.Attempts.Correct != 1 || !m.Puzzle.Session.Selection.IsSelected(0, 0) {
		t.Fatalf("click not recorded: %+v", m.Puzzle.Session.Attempts)
	}

	m = send(t, m, keyEsc)
	if m.CurrentScreen != ScreenConfiguration {
		t.Fatalf("after esc: CurrentScreen = %q, want configuration", m.CurrentScreen)
	}
	if got := m.Configuration.Words.Value(); got != "cat\n \nDOG\n" {
		t.Errorf("words input = %q, want store value", got)
	}

	m = send(t, m, keyCtrlG)
	if m.CurrentScreen != ScreenGenerate {
		t.Fatalf("CurrentScreen = %q, want generate", m.CurrentScreen)
	}
	s := m.Puzzle.Session
	if s.Attempts.Total() != 0 || s.Selection.Count() != 0 {
		t.Errorf("state carried over: attempts %+v, selected %d", s.Attempts, s.Selection.Count())
	}
	if m.Puzzle.Latest() != 2 {
		t.Errorf("Latest() = %d, want 2", m.Puzzle.Latest())
	}
}

func TestAppQuitKeys(t *testing.T) {
	m := newTestApp(&fakeGenerator{})

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyCtrlC})
	if !quits(cmd) {
		t.Error("ctrl+c did not quit")
	}

	_, cmd = m.Update(runeKey('q'))
	if !quits(cmd) {
		t.Error("q on landing did not quit")
	}
}

func TestAppQDoesNotQuitWhileTyping(t *testing.T) {
	m := newTestApp(&fakeGenerator{})
	m = send(t, m, keyEnter)

	updated, cmd := m.Update(runeKey('q'))
	if quits(cmd) {
		t.Fatal("q quit while the words input had focus")
	}
	m = pump(t, updated.(AppModel), cmd)
	if got := m.Store.Config.WordText; got != "q" {
		t.Errorf("WordText = %q, want %q", got, "q")
	}
}

func TestAppDropsResponseForUnmountedScreen(t *testing.T) {
	m := newTestApp(&fakeGenerator{})
	m = send(t, m, keyEnter)

	updated, _ := m.Update(generatedMsg{seq: 1, result: catResult()})
	m = updated.(AppModel)
	if m.CurrentScreen != ScreenConfiguration {
		t.Errorf("CurrentScreen = %q, want configuration", m.CurrentScreen)
	}
	if m.Puzzle.Session != nil {
		t.Error("puzzle model was touched while unmounted")
	}
}

func TestAppWindowSizePropagates(t *testing.T) {
	m := newTestApp(&fakeGenerator{})
	updated, _ := m.Update(tea.WindowSizeMsg{Width: 100, Height: 40})
	m = updated.(AppModel)
	if m.Landing.Width != 100 || m.Configuration.Height != 40 || m.Puzzle.Width != 100 {
		t.Errorf("sizes not propagated: %+v", m)
	}
}

func TestStoreAndSequence(t *testing.T) {
	s := NewStore(puzzle.NewConfiguration())
	s.Set(FieldRows, "abc")
	s.Set(FieldColumns, "-3")
	s.Set(FieldWords, "one")
	want := puzzle.Configuration{Rows: "abc", Columns: "-3", WordText: "one"}
	if s.Config != want {
		t.Errorf("Config = %+v, want %+v", s.Config, want)
	}

	var seq Sequence
	if seq.Last() != 0 {
		t.Errorf("Last() = %d, want 0", seq.Last())
	}
	if a, b := seq.Next(), seq.Next(); a != 1 || b != 2 || seq.Last() != 2 {
		t.Errorf("Next() = %d, %d; Last() = %d", a, b, seq.Last())
	}
}
