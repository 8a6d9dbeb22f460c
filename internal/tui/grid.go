package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/muurk/wordfinder/internal/puzzle"
)

const (
	cellWidth      = 3 // terminal columns per grid cell
	gridMarginLeft = 2
)

// cellStyle picks the style for a cell classification.
func cellStyle(state puzzle.CellState) lipgloss.Style {
	switch state {
	case puzzle.CellSelectedCorrect:
		return CellCorrectStyle
	case puzzle.CellSelectedIncorrect:
		return CellIncorrectStyle
	default:
		return CellStyle
	}
}

// RenderGrid draws one line per grid row and one cell per letter, in order.
// state classifies each cell; the cell at cursorRow, cursorColumn gets the
// cursor overlay (pass -1 for none). Rendering reads state only.
func RenderGrid(grid puzzle.Grid, state func(row, column int) puzzle.CellState, cursorRow, cursorColumn int) string {
	lines := make([]string, 0, len(grid))
	for r, row := range grid {
		var line strings.Builder
		for c, letter := range row {
			style := cellStyle(state(r, c))
			if r == cursorRow && c == cursorColumn {
				style = style.Inherit(CursorStyle)
			}
			line.WriteString(style.Render(letter))
		}
		lines = append(lines, line.String())
	}
	return strings.Join(lines, "\n")
}

// gridGeometry locates a rendered grid on the terminal.
type gridGeometry struct {
	Left int // terminal column of the first cell
	Top  int // terminal row of the first grid row
}

// CellAt maps a terminal position to a grid cell.
func (g gridGeometry) CellAt(grid puzzle.Grid, x, y int) (row, column int, ok bool) {
	if x < g.Left || y < g.Top {
		return 0, 0, false
	}
	row = y - g.Top
	column = (x - g.Left) / cellWidth
	if row >= len(grid) || column >= len(grid[row]) {
		return 0, 0, false
	}
	return row, column, true
}
