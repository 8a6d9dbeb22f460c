package puzzle

import "testing"

func threeByThree() *Result {
	return NewResult(
		Grid{{"C", "A", "T"}, {"X", "Y", "Z"}, {"Q", "R", "S"}},
		PlacedWords{{Word: "CAT", Cells: []Coordinate{{0, 0}, {0, 1}, {0, 2}}}},
	)
}

func TestSession_ClickPlacedCell(t *testing.T) {
	s := NewSession()
	s.SetResult(threeByThree())

	if !s.Click(0, 0) {
		t.Error("Click(0, 0) = false, want true")
	}
	if s.Attempts.Correct != 1 || s.Attempts.Incorrect != 0 {
		t.Errorf("Attempts = %+v, want 1 correct", s.Attempts)
	}
	if !s.Selection.IsSelected(0, 0) {
		t.Error("cell 0.0 not selected")
	}
	if got := s.CellState(0, 0); got != CellSelectedCorrect {
		t.Errorf("CellState(0, 0) = %v, want %v", got, CellSelectedCorrect)
	}
}

func TestSession_ClickEmptyCell(t *testing.T) {
	s := NewSession()
	s.SetResult(threeByThree())

	if s.Click(2, 1) {
		t.Error("Click(2, 1) = true, want false")
	}
	if s.Attempts.Correct != 0 || s.Attempts.Incorrect != 1 {
		t.Errorf("Attempts = %+v, want 1 incorrect", s.Attempts)
	}
	if got := s.CellState(2, 1); got != CellSelectedIncorrect {
		t.Errorf("CellState(2, 1) = %v, want %v", got, CellSelectedIncorrect)
	}
	if got := s.CellState(1, 1); got != CellUnselected {
		t.Errorf("CellState(1, 1) = %v, want %v", got, CellUnselected)
	}
}

func TestSession_ToggleTwice(t *testing.T) {
	s := NewSession()
	s.SetResult(threeByThree())

	s.Click(0, 2)
	s.Click(0, 2)

	if s.Selection.IsSelected(0, 2) {
		t.Error("cell 0.2 still selected after two clicks")
	}
	if s.Attempts.Correct != 2 {
		t.Errorf("Correct = %d, want 2", s.Attempts.Correct)
	}
	if got := s.CellState(0, 2); got != CellUnselected {
		t.Errorf("CellState(0, 2) = %v, want %v", got, CellUnselected)
	}
}

func TestSession_HandleClickIgnoresMembershipForToggle(t *testing.T) {
	s := NewSession()

	s.HandleClick(4, 4, true)
	s.HandleClick(4, 5, false)

	if !s.Selection.IsSelected(4, 4) || !s.Selection.IsSelected(4, 5) {
		t.Error("HandleClick did not select both cells")
	}
	if s.Attempts != (Attempts{Correct: 1, Incorrect: 1}) {
		t.Errorf("Attempts = %+v, want 1/1", s.Attempts)
	}
	if s.Selection.Count() != 2 {
		t.Errorf("Count() = %d, want 2", s.Selection.Count())
	}
}

func TestSession_SetResultKeepsSelection(t *testing.T) {
	s := NewSession()
	s.Click(1, 1)

	s.SetResult(threeByThree())

	if !s.Selection.IsSelected(1, 1) {
		t.Error("selection lost on SetResult")
	}
	if s.Attempts.Total() != 1 {
		t.Errorf("Total() = %d, want 1", s.Attempts.Total())
	}

	s.SetResult(nil)
	if !s.Result.IsEmpty() {
		t.Error("SetResult(nil) should leave an empty result")
	}
}

func TestSession_FoundWords(t *testing.T) {
	s := NewSession()
	s.SetResult(threeByThree())

	s.Click(0, 0)
	s.Click(0, 1)
	if got := s.FoundWords(); len(got) != 0 {
		t.Errorf("FoundWords() = %v, want none", got)
	}

	s.Click(0, 2)
	if got := s.FoundWords(); len(got) != 1 || got[0] != "CAT" {
		t.Errorf("FoundWords() = %v, want [CAT]", got)
	}

	s.Click(0, 1)
	if got := s.FoundWords(); len(got) != 0 {
		t.Errorf("FoundWords() after deselect = %v, want none", got)
	}
}
