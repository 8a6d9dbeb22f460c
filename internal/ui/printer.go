package ui

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/muurk/wordfinder/internal/puzzle"
)

// Printer writes command output. On a terminal it draws styled boxes;
// otherwise it writes plain text that is easy to pipe and grep.
type Printer struct {
	out    io.Writer
	width  int
	styled bool
}

// NewPrinter creates a new Printer that writes to the given writer.
// If w is nil, os.Stdout is used.
func NewPrinter(w io.Writer) *Printer {
	if w == nil {
		w = os.Stdout
	}
	return &Printer{
		out:    w,
		width:  TerminalWidth(w),
		styled: IsTerminal(w),
	}
}

// SetStyled forces styled or plain output
func (p *Printer) SetStyled(styled bool) *Printer {
	p.styled = styled
	return p
}

// Styled reports whether the printer draws styled output
func (p *Printer) Styled() bool {
	return p.styled
}

// Width returns the width used for boxes
func (p *Printer) Width() int {
	return p.width
}

// Writer returns the underlying writer
func (p *Printer) Writer() io.Writer {
	return p.out
}

// Print writes content to the output
func (p *Printer) Print(content string) {
	_, _ = fmt.Fprint(p.out, content)
}

// Println writes content with a newline
func (p *Printer) Println(content string) {
	_, _ = fmt.Fprintln(p.out, content)
}

// Printf writes formatted content
func (p *Printer) Printf(format string, args ...any) {
	_, _ = fmt.Fprintf(p.out, format, args...)
}

// Newline prints an empty line
func (p *Printer) Newline() {
	_, _ = fmt.Fprintln(p.out)
}

// PrintHeader prints a command header
func (p *Printer) PrintHeader(title, command string, params []Detail) {
	if !p.styled {
		p.Println(strings.ToUpper(title))
		for _, d := range params {
			p.Printf("  %s: %s\n", d.Key, d.Value)
		}
		p.Newline()
		return
	}
	p.Println(RenderHeader(title, command, params, p.width))
	p.Newline()
}

// PrintSuccess prints a success result
func (p *Printer) PrintSuccess(title string, details []Detail) {
	if !p.styled {
		p.Println(SuccessMarker + " " + title)
		p.printPlainDetails(details)
		return
	}
	p.Println(RenderSuccessBox(title, details, p.width))
}

// PrintWarning prints a warning result
func (p *Printer) PrintWarning(title string, details []Detail) {
	if !p.styled {
		p.Println(WarningMarker + " " + title)
		p.printPlainDetails(details)
		return
	}
	p.Println(RenderWarningBox(title, details, p.width))
}

// PrintError prints an error result with troubleshooting tips
func (p *Printer) PrintError(title string, err error, troubleshooting []string) {
	if !p.styled {
		p.Println(FailureMarker + " " + title)
		if err != nil {
			p.Println("  Error: " + err.Error())
		}
		for _, tip := range troubleshooting {
			p.Println("  - " + tip)
		}
		return
	}
	p.Println(RenderErrorBox(title, err, troubleshooting, p.width))
}

// PrintPuzzle prints a generated puzzle
func (p *Printer) PrintPuzzle(result *puzzle.Result, reveal bool) {
	if !p.styled {
		p.Print(PuzzleText(result))
		return
	}
	p.Println(RenderPuzzleBox(result, reveal, p.width))
}

func (p *Printer) printPlainDetails(details []Detail) {
	for _, d := range details {
		p.Printf("  %s: %s\n", d.Key, d.Value)
	}
}
