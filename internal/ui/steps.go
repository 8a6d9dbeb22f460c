package ui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
)

// StepStatus represents the outcome of a step
type StepStatus int

const (
	StepComplete StepStatus = iota // Successfully completed
	StepFailed                     // Failed
	StepSkipped                    // Skipped
)

// StepCallback reports a finished step. Commands call it once per step.
type StepCallback func(name string, status StepStatus, message string)

// Operation is a multi-step command body. It returns details for the
// success box.
type Operation func(onStep StepCallback) ([]Detail, error)

// Runner prints header → steps → result for a multi-step command.
type Runner struct {
	Title           string
	Command         string
	Params          []Detail
	TotalSteps      int
	Troubleshooting func(err error) []string

	printer *Printer
	step    int
}

// NewRunner creates a runner that prints through p.
func NewRunner(p *Printer, title, command string, params []Detail, totalSteps int) *Runner {
	return &Runner{
		Title:      title,
		Command:    command,
		Params:     params,
		TotalSteps: totalSteps,
		printer:    p,
	}
}

// Run executes op and prints its progress and result.
func (r *Runner) Run(op Operation) error {
	start := time.Now()
	r.printer.PrintHeader(r.Title, r.Command, r.Params)

	details, err := op(r.onStep)
	duration := time.Since(start).Round(time.Millisecond).String()

	r.printer.Newline()
	if err != nil {
		var tips []string
		if r.Troubleshooting != nil {
			tips = r.Troubleshooting(err)
		}
		r.printer.PrintError(r.Title+" failed", err, tips)
		return err
	}

	details = append(details, D("Duration", duration))
	r.printer.PrintSuccess(r.Title+" complete", details)
	return nil
}

func (r *Runner) onStep(name string, status StepStatus, message string) {
	r.step++
	r.printer.Println(r.renderStepLine(r.step, name, status, message))
}

// renderStepLine renders a single step line
func (r *Runner) renderStepLine(number int, name string, status StepStatus, message string) string {
	var marker string
	var style lipgloss.Style

	switch status {
	case StepComplete:
		marker, style = SuccessMarker, StepCompleteStyle
	case StepFailed:
		marker, style = FailureMarker, ErrorTitleStyle
	default:
		marker, style = PendingMarker, StepPendingStyle
	}

	var b strings.Builder
	b.WriteString(fmt.Sprintf("  [%d/%d] ", number, r.TotalSteps))
	if r.printer.Styled() {
		b.WriteString(style.Render(name))
	} else {
		b.WriteString(name)
	}

	// Align markers in one column
	padding := 40 - lipgloss.Width(name)
	if padding < 1 {
		padding = 1
	}
	b.WriteString(strings.Repeat(" ", padding))

	if r.printer.Styled() {
		b.WriteString(style.Render(marker))
	} else {
		b.WriteString(marker)
	}

	if message != "" {
		b.WriteString("  ")
		if r.printer.Styled() {
			b.WriteString(StepNoteStyle.Render("(" + message + ")"))
		} else {
			b.WriteString("(" + message + ")")
		}
	}
	return b.String()
}
