package puzzle

// CellState classifies a cell for display.
type CellState int

const (
	CellUnselected CellState = iota
	CellSelectedCorrect
	CellSelectedIncorrect
)

// String returns a short name for the state.
func (s CellState) String() string {
	switch s {
	case CellUnselected:
		return "unselected"
	case CellSelectedCorrect:
		return "correct"
	case CellSelectedIncorrect:
		return "incorrect"
	default:
		return "unknown"
	}
}

// Attempts counts cell clicks by whether the cell was part of a placed word.
type Attempts struct {
	Correct   int
	Incorrect int
}

// Record counts one attempt.
func (a *Attempts) Record(isPartOfWord bool) {
	if isPartOfWord {
		a.Correct++
	} else {
		a.Incorrect++
	}
}

// Total returns the number of attempts recorded.
func (a Attempts) Total() int {
	return a.Correct + a.Incorrect
}

// Selection holds per-cell selection flags keyed by "row.column".
type Selection map[string]bool

// Toggle flips the flag for a cell and returns its new value.
func (s Selection) Toggle(row, column int) bool {
	key := CellKey(row, column)
	s[key] = !s[key]
	return s[key]
}

// IsSelected reports the flag for a cell.
func (s Selection) IsSelected(row, column int) bool {
	return s[CellKey(row, column)]
}

// Count returns the number of selected cells.
func (s Selection) Count() int {
	n := 0
	for _, selected := range s {
		if selected {
			n++
		}
	}
	return n
}

// Session is the state owned by one activation of the puzzle screen.
type Session struct {
	Result    *Result
	Selection Selection
	Attempts  Attempts
}

// NewSession returns a session with an empty result and no selections.
func NewSession() *Session {
	return &Session{
		Result:    EmptyResult(),
		Selection: make(Selection),
	}
}

// SetResult replaces the current result. Selections and attempts are left
// alone; they are not derived from the result.
func (s *Session) SetResult(r *Result) {
	if r == nil {
		r = EmptyResult()
	}
	s.Result = r
}

// HandleClick flips the cell's selection and counts the attempt as correct
// or incorrect according to isPartOfWord. The flip does not depend on
// isPartOfWord, and toggling a cell off still counts as an attempt.
func (s *Session) HandleClick(row, column int, isPartOfWord bool) {
	s.Selection.Toggle(row, column)
	s.Attempts.Record(isPartOfWord)
}

// Click resolves membership against the current result and calls
// HandleClick. It returns whether the cell was part of a word.
func (s *Session) Click(row, column int) bool {
	isPartOfWord := s.Result.IsPartOfWord(row, column)
	s.HandleClick(row, column, isPartOfWord)
	return isPartOfWord
}

// CellState returns the display classification of a cell.
func (s *Session) CellState(row, column int) CellState {
	if !s.Selection.IsSelected(row, column) {
		return CellUnselected
	}
	if s.Result.IsPartOfWord(row, column) {
		return CellSelectedCorrect
	}
	return CellSelectedIncorrect
}

// FoundWords returns the placed words whose cells are all selected, in
// placement order.
func (s *Session) FoundWords() []string {
	found := []string{}
	for _, pw := range s.Result.PlacedWords {
		if len(pw.Cells) == 0 {
			continue
		}
		complete := true
		for _, c := range pw.Cells {
			if !s.Selection.IsSelected(c.Row, c.Column) {
				complete = false
				break
			}
		}
		if complete {
			found = append(found, pw.Word)
		}
	}
	return found
}
