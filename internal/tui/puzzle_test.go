package tui

import (
	"errors"
	"fmt"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/muurk/wordfinder/internal/generator"
	"github.com/muurk/wordfinder/internal/puzzle"
)

func readyPuzzle(t *testing.T) PuzzleModel {
	t.Helper()
	gen := &fakeGenerator{}
	p := NewPuzzleModel(&Sequence{}, gen.Generate, "", time.Second)
	p.Width, p.Height = 80, 30
	p, _ = p.Configure(puzzle.Configuration{Rows: "3", Columns: "3", WordText: "CAT"})
	updated, _ := p.Update(generatedMsg{seq: p.Latest(), result: catResult()})
	p = updated.(PuzzleModel)
	if p.Status != StatusReady {
		t.Fatalf("Status = %v, want ready", p.Status)
	}
	return p
}

func update(t *testing.T, p PuzzleModel, msg tea.Msg) PuzzleModel {
	t.Helper()
	updated, _ := p.Update(msg)
	return updated.(PuzzleModel)
}

func TestPuzzleClickPlacedCell(t *testing.T) {
	p := readyPuzzle(t)

	p = update(t, p, keySpace)
	if p.Session.Attempts.Correct != 1 || p.Session.Attempts.Incorrect != 0 {
		t.Errorf("Attempts = %+v, want 1 correct", p.Session.Attempts)
	}
	if !p.Session.Selection.IsSelected(0, 0) {
		t.Error("cell 0.0 not selected")
	}
}

func TestPuzzleClickEmptyCell(t *testing.T) {
	p := readyPuzzle(t)

	p = update(t, p, tea.KeyMsg{Type: tea.KeyDown})
	p = update(t, p, tea.KeyMsg{Type: tea.KeyDown})
	p = update(t, p, keyRight)
	p = update(t, p, keyEnter)

	if p.CursorRow != 2 || p.CursorColumn != 1 {
		t.Fatalf("cursor = %d,%d, want 2,1", p.CursorRow, p.CursorColumn)
	}
	if p.Session.Attempts.Incorrect != 1 || p.Session.Attempts.Correct != 0 {
		t.Errorf("Attempts = %+v, want 1 incorrect", p.Session.Attempts)
	}
	if got := p.Session.CellState(2, 1); got != puzzle.CellSelectedIncorrect {
		t.Errorf("CellState(2, 1) = %v, want incorrect", got)
	}
}

func TestPuzzleToggleTwice(t *testing.T) {
	p := readyPuzzle(t)

	p = update(t, p, keySpace)
	p = update(t, p, keySpace)
	if p.Session.Selection.IsSelected(0, 0) {
		t.Error("cell still selected after two clicks")
	}
	if p.Session.Attempts.Correct != 2 {
		t.Errorf("Correct = %d, want 2", p.Session.Attempts.Correct)
	}
}

func TestPuzzleCursorStaysInGrid(t *testing.T) {
	p := readyPuzzle(t)

	for i := 0; i < 5; i++ {
		p = update(t, p, keyRight)
		p = update(t, p, tea.KeyMsg{Type: tea.KeyDown})
	}
	if p.CursorRow != 2 || p.CursorColumn != 2 {
		t.Errorf("cursor = %d,%d, want 2,2", p.CursorRow, p.CursorColumn)
	}
	for i := 0; i < 5; i++ {
		p = update(t, p, tea.KeyMsg{Type: tea.KeyUp})
		p = update(t, p, tea.KeyMsg{Type: tea.KeyLeft})
	}
	if p.CursorRow != 0 || p.CursorColumn != 0 {
		t.Errorf("cursor = %d,%d, want 0,0", p.CursorRow, p.CursorColumn)
	}
}

func TestPuzzleMouseClick(t *testing.T) {
	p := readyPuzzle(t)
	g := p.geometry()

	p = update(t, p, tea.MouseMsg{
		X:      g.Left + 2*cellWidth + 1,
		Y:      g.Top,
		Action: tea.MouseActionPress,
		Button: tea.MouseButtonLeft,
	})
	if !p.Session.Selection.IsSelected(0, 2) {
		t.Error("cell 0.2 not selected by mouse click")
	}
	if p.CursorRow != 0 || p.CursorColumn != 2 {
		t.Errorf("cursor = %d,%d, want 0,2", p.CursorRow, p.CursorColumn)
	}

	p = update(t, p, tea.MouseMsg{X: 0, Y: 0, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})
	if p.Session.Attempts.Total() != 1 {
		t.Errorf("click outside grid counted: %+v", p.Session.Attempts)
	}
}

func TestPuzzleMouseClickLandsOnRenderedCell(t *testing.T) {
	p := readyPuzzle(t)
	g := p.geometry()

	lines := strings.Split(p.View(), "\n")
	if g.Top >= len(lines) {
		t.Fatalf("grid top %d beyond view height %d", g.Top, len(lines))
	}
	if !strings.Contains(lines[g.Top], "C") || !strings.Contains(lines[g.Top], "T") {
		t.Errorf("line %d = %q, want first grid row", g.Top, lines[g.Top])
	}
}

func TestPuzzleDiscardsStaleResponse(t *testing.T) {
	gen := &fakeGenerator{}
	p := NewPuzzleModel(&Sequence{}, gen.Generate, "", time.Second)

	p, _ = p.Configure(puzzle.Configuration{Rows: "5", Columns: "5", WordText: "ONE"})
	first := p.Latest()
	p, _ = p.Configure(puzzle.Configuration{Rows: "6", Columns: "6", WordText: "TWO"})
	second := p.Latest()
	if second <= first {
		t.Fatalf("sequence did not advance: %d then %d", first, second)
	}

	stale := puzzle.NewResult(puzzle.Grid{{"Z"}}, puzzle.PlacedWords{{Word: "Z", Cells: []puzzle.Coordinate{{Row: 0, Column: 0}}}})
	p = update(t, p, generatedMsg{seq: first, result: stale})
	if p.Status != StatusLoading {
		t.Fatalf("stale response applied: Status = %v", p.Status)
	}

	p = update(t, p, generatedMsg{seq: second, result: catResult()})
	if p.Status != StatusReady {
		t.Fatalf("Status = %v, want ready", p.Status)
	}

	p = update(t, p, generatedMsg{seq: first, result: stale})
	if got := p.Session.Result.Grid.Rows(); got != 3 {
		t.Errorf("late stale response replaced grid: %d rows", got)
	}
}

func TestPuzzleConfigureSameConfigIsNoop(t *testing.T) {
	p := NewPuzzleModel(&Sequence{}, (&fakeGenerator{}).Generate, "", time.Second)
	cfg := puzzle.Configuration{Rows: "5", Columns: "5", WordText: "ONE"}

	p, cmd := p.Configure(cfg)
	if cmd == nil || p.Latest() != 1 {
		t.Fatalf("first Configure: cmd=%v latest=%d", cmd != nil, p.Latest())
	}
	p, cmd = p.Configure(cfg)
	if cmd != nil || p.Latest() != 1 {
		t.Errorf("repeat Configure issued a request: latest=%d", p.Latest())
	}
}

func TestPuzzleFailureAndRetry(t *testing.T) {
	gen := &fakeGenerator{err: generator.NewHTTPError(503, "overloaded", "http://test.invalid")}
	p := NewPuzzleModel(&Sequence{}, gen.Generate, "", time.Second)
	p.Width, p.Height = 80, 30

	p, cmd := p.Configure(puzzle.Configuration{Rows: "5", Columns: "5", WordText: "ONE"})
	for _, msg := range runCmd(cmd) {
		p = update(t, p, msg)
	}
	if p.Status != StatusFailed {
		t.Fatalf("Status = %v, want failed", p.Status)
	}
	if !generator.IsHTTPError(p.Err) {
		t.Errorf("Err = %v, want HTTP error", p.Err)
	}
	if view := p.View(); !strings.Contains(view, "retry") {
		t.Error("failed view does not mention retry")
	}

	gen.err = nil
	updated, cmd := p.Update(runeKey('r'))
	p = updated.(PuzzleModel)
	if p.Status != StatusLoading || p.Latest() != 2 {
		t.Fatalf("after r: Status = %v, Latest = %d", p.Status, p.Latest())
	}
	for _, msg := range runCmd(cmd) {
		p = update(t, p, msg)
	}
	if p.Status != StatusReady {
		t.Errorf("Status = %v, want ready after retry", p.Status)
	}
	if len(gen.requests) != 2 {
		t.Errorf("requests = %d, want 2", len(gen.requests))
	}
}

func TestPuzzleWithoutGenerator(t *testing.T) {
	p := NewPuzzleModel(nil, nil, "", 0)
	p, cmd := p.Configure(puzzle.NewConfiguration())
	for _, msg := range runCmd(cmd) {
		p = update(t, p, msg)
	}
	if p.Status != StatusFailed || !errors.Is(p.Err, errNoGenerator) {
		t.Errorf("Status = %v, Err = %v", p.Status, p.Err)
	}
}

func TestPuzzleIgnoresClicksWhileLoading(t *testing.T) {
	p := NewPuzzleModel(&Sequence{}, (&fakeGenerator{}).Generate, "", time.Second)
	p, _ = p.Configure(puzzle.NewConfiguration())

	p = update(t, p, keySpace)
	if p.Session.Attempts.Total() != 0 {
		t.Errorf("click counted while loading: %+v", p.Session.Attempts)
	}
}

func TestPuzzleBackNavigates(t *testing.T) {
	p := readyPuzzle(t)
	for _, k := range []tea.KeyMsg{keyEsc, runeKey('b')} {
		_, cmd := p.Update(k)
		msgs := runCmd(cmd)
		if len(msgs) != 1 || msgs[0] != (navigateMsg{screen: ScreenConfiguration}) {
			t.Errorf("%q produced %v, want navigate to configuration", k.String(), msgs)
		}
	}
}

func TestPlacedWordsLine(t *testing.T) {
	placed := puzzle.PlacedWords{
		{Word: "CAT", Cells: []puzzle.Coordinate{{Row: 0, Column: 0}}},
		{Word: "DOG", Cells: []puzzle.Coordinate{{Row: 1, Column: 0}}},
	}
	if got := PlacedWordsLine(placed); got != "Words to Find: CAT, DOG" {
		t.Errorf("PlacedWordsLine() = %q", got)
	}
	if got := PlacedWordsLine(nil); got != "Words to Find: " {
		t.Errorf("PlacedWordsLine(nil) = %q", got)
	}
}

func TestAttemptsLine(t *testing.T) {
	if got := AttemptsLine(puzzle.Attempts{Correct: 3, Incorrect: 1}); got != "Correct: 3   Incorrect: 1" {
		t.Errorf("AttemptsLine() = %q", got)
	}
}

func longWordsResult() *puzzle.Result {
	placed := make(puzzle.PlacedWords, 0, 13)
	for i := 1; i <= 13; i++ {
		placed = append(placed, puzzle.PlacedWord{
			Word:  fmt.Sprintf("LONGWORD%02d", i),
			Cells: []puzzle.Coordinate{{Row: 0, Column: 0}},
		})
	}
	return puzzle.NewResult(puzzle.Grid{{"Q", "Z", "J"}, {"Q", "Z", "J"}, {"Q", "Z", "J"}}, placed)
}

func TestPuzzleMouseClickBelowWrappedWordsLine(t *testing.T) {
	gen := &fakeGenerator{}
	p := NewPuzzleModel(&Sequence{}, gen.Generate, "", time.Second)
	p.Width, p.Height = 80, 40
	p, _ = p.Configure(puzzle.Configuration{Rows: "3", Columns: "3", WordText: "LONGWORD01"})
	p = update(t, p, generatedMsg{seq: p.Latest(), result: longWordsResult()})

	g := p.geometry()
	lines := strings.Split(p.View(), "\n")
	if g.Top >= len(lines) {
		t.Fatalf("grid top %d beyond view height %d", g.Top, len(lines))
	}
	if !strings.Contains(lines[g.Top], "Q") || strings.Contains(lines[g.Top], "LONGWORD") {
		t.Fatalf("line %d = %q, want first grid row", g.Top, lines[g.Top])
	}

	// the last wrapped words line sits just above the grid and is not a cell
	p = update(t, p, tea.MouseMsg{X: g.Left + 1, Y: g.Top - 1, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})
	if p.Session.Attempts.Total() != 0 {
		t.Errorf("click on words line counted: %+v", p.Session.Attempts)
	}

	p = update(t, p, tea.MouseMsg{X: g.Left + 1, Y: g.Top, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})
	if !p.Session.Selection.IsSelected(0, 0) || p.Session.Attempts.Correct != 1 {
		t.Errorf("click on row 0 = %+v, want cell 0.0 correct", p.Session.Attempts)
	}
}

func TestPuzzleSelectOnEmptyRow(t *testing.T) {
	gen := &fakeGenerator{}
	p := NewPuzzleModel(&Sequence{}, gen.Generate, "", time.Second)
	p.Width, p.Height = 80, 30
	p, _ = p.Configure(puzzle.Configuration{Rows: "2", Columns: "3", WordText: "CAT"})
	ragged := puzzle.NewResult(puzzle.Grid{{"C", "A", "T"}, {}}, nil)
	p = update(t, p, generatedMsg{seq: p.Latest(), result: ragged})

	p = update(t, p, tea.KeyMsg{Type: tea.KeyDown})
	p = update(t, p, keySpace)

	if p.CursorRow != 1 {
		t.Fatalf("CursorRow = %d, want 1", p.CursorRow)
	}
	if p.Session.Attempts.Total() != 0 {
		t.Errorf("Attempts = %+v, want none", p.Session.Attempts)
	}
	if p.Session.Selection.Count() != 0 {
		t.Errorf("Selection has %d cells, want 0", p.Session.Selection.Count())
	}
}
