package puzzle

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
)

// Coordinate addresses one grid cell.
type Coordinate struct {
	Row    int `json:"row"`
	Column int `json:"column"`
}

// Key returns the "row.column" form used to index selections.
func (c Coordinate) Key() string {
	return CellKey(c.Row, c.Column)
}

// CellKey formats a cell address as "row.column".
func CellKey(row, column int) string {
	return strconv.Itoa(row) + "." + strconv.Itoa(column)
}

// Grid is the rectangular letter matrix returned by the generation service.
type Grid [][]string

// Rows returns the number of rows.
func (g Grid) Rows() int {
	return len(g)
}

// Columns returns the length of the first row, or 0 for an empty grid.
func (g Grid) Columns() int {
	if len(g) == 0 {
		return 0
	}
	return len(g[0])
}

// At returns the cell at row, column, or "" when out of range.
func (g Grid) At(row, column int) string {
	if row < 0 || row >= len(g) || column < 0 || column >= len(g[row]) {
		return ""
	}
	return g[row][column]
}

// PlacedWord is a word the service embedded in the grid and the cells it
// occupies, in order.
type PlacedWord struct {
	Word  string
	Cells []Coordinate
}

// PlacedWords maps words to their cells while keeping the key order of the
// JSON object it was decoded from.
type PlacedWords []PlacedWord

// Words returns the placed words in order.
func (p PlacedWords) Words() []string {
	words := make([]string, len(p))
	for i, pw := range p {
		words[i] = pw.Word
	}
	return words
}

// Cells returns the cells of word and whether it was placed.
func (p PlacedWords) Cells(word string) ([]Coordinate, bool) {
	for _, pw := range p {
		if pw.Word == word {
			return pw.Cells, true
		}
	}
	return nil, false
}

// MarshalJSON writes the words as a JSON object in slice order.
func (p PlacedWords) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, pw := range p {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(pw.Word)
		if err != nil {
			return nil, err
		}
		cells := pw.Cells
		if cells == nil {
			cells = []Coordinate{}
		}
		value, err := json.Marshal(cells)
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		buf.Write(value)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// UnmarshalJSON reads a JSON object of word to cell list. A repeated key
// keeps the position of its first occurrence and the value of its last.
func (p *PlacedWords) UnmarshalJSON(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))

	tok, err := dec.Token()
	if err != nil {
		return err
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return fmt.Errorf("placedWords: expected object, got %v", tok)
	}

	words := make(PlacedWords, 0)
	index := make(map[string]int)
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return err
		}
		word, ok := tok.(string)
		if !ok {
			return fmt.Errorf("placedWords: expected key, got %v", tok)
		}

		var cells []Coordinate
		if err := dec.Decode(&cells); err != nil {
			return fmt.Errorf("placedWords[%q]: %w", word, err)
		}

		if i, seen := index[word]; seen {
			words[i].Cells = cells
			continue
		}
		index[word] = len(words)
		words = append(words, PlacedWord{Word: word, Cells: cells})
	}

	if _, err := dec.Token(); err != nil {
		return err
	}

	*p = words
	return nil
}

// CellSet is a set of "row.column" keys.
type CellSet map[string]struct{}

// NewCellSet flattens every coordinate list in placed into one set.
func NewCellSet(placed PlacedWords) CellSet {
	set := make(CellSet)
	for _, pw := range placed {
		for _, c := range pw.Cells {
			set[c.Key()] = struct{}{}
		}
	}
	return set
}

// Has reports whether the cell belongs to any placed word.
func (s CellSet) Has(row, column int) bool {
	_, ok := s[CellKey(row, column)]
	return ok
}

// Result is a decoded generation response.
type Result struct {
	Grid        Grid
	PlacedWords PlacedWords

	occupied CellSet
}

// NewResult builds a Result and precomputes its occupied cells.
func NewResult(grid Grid, placed PlacedWords) *Result {
	return &Result{
		Grid:        grid,
		PlacedWords: placed,
		occupied:    NewCellSet(placed),
	}
}

// EmptyResult is what the puzzle screen shows before a response arrives.
func EmptyResult() *Result {
	return NewResult(Grid{}, PlacedWords{})
}

// IsPartOfWord reports whether the cell belongs to any placed word.
func (r *Result) IsPartOfWord(row, column int) bool {
	if r == nil {
		return false
	}
	if r.occupied == nil {
		r.occupied = NewCellSet(r.PlacedWords)
	}
	return r.occupied.Has(row, column)
}

// Occupied returns the number of distinct cells covered by placed words.
func (r *Result) Occupied() int {
	if r == nil {
		return 0
	}
	if r.occupied == nil {
		r.occupied = NewCellSet(r.PlacedWords)
	}
	return len(r.occupied)
}

// IsEmpty reports whether the result has no grid rows.
func (r *Result) IsEmpty() bool {
	return r == nil || len(r.Grid) == 0
}

// Mismatches lists the ways the result disagrees with req: grid dimensions
// that differ from the request, ragged rows, and placed-word coordinates
// outside the grid. The client only reports these; it never rejects a
// result because of them.
func (r *Result) Mismatches(req GenerationRequest) []string {
	var problems []string
	if r == nil {
		return problems
	}

	if req.Rows.Valid && r.Grid.Rows() != req.Rows.Value {
		problems = append(problems, fmt.Sprintf("grid has %d rows, requested %d", r.Grid.Rows(), req.Rows.Value))
	}
	if req.Columns.Valid && r.Grid.Rows() > 0 && r.Grid.Columns() != req.Columns.Value {
		problems = append(problems, fmt.Sprintf("grid has %d columns, requested %d", r.Grid.Columns(), req.Columns.Value))
	}
	for i, row := range r.Grid {
		if len(row) != r.Grid.Columns() {
			problems = append(problems, fmt.Sprintf("row %d has %d cells, expected %d", i, len(row), r.Grid.Columns()))
		}
	}
	for _, pw := range r.PlacedWords {
		for _, c := range pw.Cells {
			if c.Row < 0 || c.Row >= r.Grid.Rows() || c.Column < 0 || c.Column >= len(r.Grid[c.Row]) {
				problems = append(problems, fmt.Sprintf("%s: cell %s outside grid", pw.Word, c.Key()))
			}
		}
	}
	return problems
}
