package stub

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/muurk/wordfinder/internal/puzzle"
)

// Fixture is the on-disk form of a canned puzzle.
//
//	grid:
//	  - "C A T"
//	  - "X D O"
//	words:
//	  - word: CAT
//	    cells: [[0, 0], [0, 1], [0, 2]]
//
// Grid rows list one letter per cell separated by whitespace. Words keep
// file order, which is the order the server emits placedWords in.
type Fixture struct {
	Grid  []string      `yaml:"grid"`
	Words []FixtureWord `yaml:"words"`
}

// FixtureWord is one placed word and its [row, column] cells.
type FixtureWord struct {
	Word  string   `yaml:"word"`
	Cells [][2]int `yaml:"cells"`
}

// LoadFixture reads a fixture file.
func LoadFixture(path string) (*puzzle.Result, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read fixture: %w", err)
	}
	return ParseFixture(data)
}

// ParseFixture decodes fixture YAML into a Result.
func ParseFixture(data []byte) (*puzzle.Result, error) {
	var f Fixture
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("failed to parse fixture: %w", err)
	}
	return f.Result()
}

// Result validates the fixture and converts it. Every row must have the same
// width and every cell must fall inside the grid.
func (f *Fixture) Result() (*puzzle.Result, error) {
	grid := make(puzzle.Grid, 0, len(f.Grid))
	for i, line := range f.Grid {
		row := strings.Fields(line)
		if i > 0 && len(row) != len(grid[0]) {
			return nil, fmt.Errorf("fixture row %d has %d cells, want %d", i, len(row), len(grid[0]))
		}
		grid = append(grid, row)
	}

	placed := make(puzzle.PlacedWords, 0, len(f.Words))
	for _, w := range f.Words {
		if w.Word == "" {
			return nil, fmt.Errorf("fixture word with no name")
		}
		cells := make([]puzzle.Coordinate, 0, len(w.Cells))
		for _, c := range w.Cells {
			if c[0] < 0 || c[0] >= grid.Rows() || c[1] < 0 || c[1] >= grid.Columns() {
				return nil, fmt.Errorf("fixture word %q: cell [%d, %d] outside %dx%d grid",
					w.Word, c[0], c[1], grid.Rows(), grid.Columns())
			}
			cells = append(cells, puzzle.Coordinate{Row: c[0], Column: c[1]})
		}
		placed = append(placed, puzzle.PlacedWord{Word: w.Word, Cells: cells})
	}

	return puzzle.NewResult(grid, placed), nil
}

// sampleFixture is served when no fixture file is given.
const sampleFixture = `
grid:
  - "C A T Q W"
  - "R D O G E"
  - "O X W L M"
  - "W B I R D"
  - "F I S H K"
words:
  - word: CAT
    cells: [[0, 0], [0, 1], [0, 2]]
  - word: DOG
    cells: [[1, 1], [1, 2], [1, 3]]
  - word: BIRD
    cells: [[3, 1], [3, 2], [3, 3], [3, 4]]
  - word: FISH
    cells: [[4, 0], [4, 1], [4, 2], [4, 3]]
  - word: CROW
    cells: [[0, 0], [1, 0], [2, 0], [3, 0]]
`

// SampleResult returns the built-in puzzle.
func SampleResult() *puzzle.Result {
	r, err := ParseFixture([]byte(sampleFixture))
	if err != nil {
		panic(fmt.Sprintf("stub: invalid built-in fixture: %v", err))
	}
	return r
}
