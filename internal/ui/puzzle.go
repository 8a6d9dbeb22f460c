package ui

import (
	"strings"

	"github.com/muurk/wordfinder/internal/puzzle"
)

// PuzzleText renders a result as plain text: one line per grid row with
// letters separated by spaces, a blank line, then the words to find.
func PuzzleText(result *puzzle.Result) string {
	var b strings.Builder
	for _, row := range result.Grid {
		b.WriteString(strings.Join(row, " "))
		b.WriteString("\n")
	}
	b.WriteString("\n")
	b.WriteString("Words to Find: ")
	b.WriteString(strings.Join(result.PlacedWords.Words(), ", "))
	b.WriteString("\n")
	return b.String()
}

// RenderPuzzleBox renders a result inside a bordered box. When reveal is
// set, letters belonging to placed words are highlighted.
func RenderPuzzleBox(result *puzzle.Result, reveal bool, width int) string {
	lines := make([]string, 0, len(result.Grid)+2)
	for r, row := range result.Grid {
		var line strings.Builder
		for c, letter := range row {
			style := GridLetterStyle
			if reveal && result.IsPartOfWord(r, c) {
				style = GridPlacedStyle
			}
			line.WriteString(style.Render(letter))
		}
		lines = append(lines, line.String())
	}
	lines = append(lines, "", HeaderParamKeyStyle.Render("Words to Find: ")+
		HeaderParamValueStyle.Render(strings.Join(result.PlacedWords.Words(), ", ")))

	return boxStyle(PrimaryColor, width).Render(strings.Join(lines, "\n"))
}
