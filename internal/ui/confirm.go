package ui

import (
	"bufio"
	"io"
	"strings"
)

// Confirm prints prompt and reads a yes/no answer from in. Anything other
// than "y" or "yes" (case-insensitive) is a no, as is EOF.
func Confirm(p *Printer, in io.Reader, prompt string) bool {
	if p.Styled() {
		p.Print(WarningTitleStyle.Render(WarningMarker+"  "+prompt) + " [y/N]: ")
	} else {
		p.Print(prompt + " [y/N]: ")
	}

	reader := bufio.NewReader(in)
	input, err := reader.ReadString('\n')
	if err != nil && input == "" {
		p.Newline()
		return false
	}

	switch strings.ToLower(strings.TrimSpace(input)) {
	case "y", "yes":
		return true
	default:
		p.Println(StepPendingStyle.Render("  Operation cancelled."))
		return false
	}
}
