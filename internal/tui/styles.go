package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/muurk/wordfinder/internal/version"
)

// Application branding constants
const (
	AppName   = "WORD FINDER"
	GitHubURL = "github.com/muurk/wordfinder"
)

// AppVersion returns the application version from the centralized version package
func AppVersion() string {
	return version.Version
}

// Layout constants for responsive terminal width
const (
	MinTerminalWidth  = 72 // Minimum supported terminal width
	MinTerminalHeight = 24
)

// Color palette
var (
	PrimaryColor   = lipgloss.Color("#7D56F4") // Purple
	SecondaryColor = lipgloss.Color("#43BF6D") // Green
	WarningColor   = lipgloss.Color("#FFA500") // Orange
	ErrorColor     = lipgloss.Color("#FF0000") // Red

	TextColor      = lipgloss.Color("#FFFFFF")
	SubtleColor    = lipgloss.Color("#626262")
	BorderColor    = lipgloss.Color("#7D56F4")
	HighlightColor = lipgloss.Color("#43BF6D")
	SelectedColor  = lipgloss.Color("#0000FF") // Blue
)

// Common styles
var (
	TitleStyle = lipgloss.NewStyle().
			Foreground(PrimaryColor).
			Bold(true).
			Padding(1, 0).
			MarginBottom(1)

	SubtitleStyle = lipgloss.NewStyle().
			Foreground(SubtleColor).
			Italic(true)

	LabelStyle = lipgloss.NewStyle().
			Foreground(TextColor).
			Bold(true)

	HintStyle = lipgloss.NewStyle().
			Foreground(SubtleColor)

	SpinnerStyle = lipgloss.NewStyle().
			Foreground(PrimaryColor)

	FocusedInputStyle = lipgloss.NewStyle().
				Foreground(PrimaryColor).
				Bold(true)

	BlurredInputStyle = lipgloss.NewStyle().
				Foreground(SubtleColor)

	ButtonStyle = lipgloss.NewStyle().
			Foreground(TextColor).
			Border(lipgloss.RoundedBorder()).
			BorderForeground(SubtleColor).
			Padding(0, 3)

	FocusedButtonStyle = ButtonStyle.
				BorderForeground(HighlightColor).
				Foreground(HighlightColor).
				Bold(true)

	InfoBoxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(BorderColor).
			Padding(1, 2).
			MarginTop(1)

	ErrorBoxStyle = lipgloss.NewStyle().
			Foreground(ErrorColor).
			Bold(true).
			Border(lipgloss.RoundedBorder()).
			BorderForeground(ErrorColor).
			Padding(1, 2)

	WarningStyle = lipgloss.NewStyle().
			Foreground(WarningColor)

	// Left margin for content blocks
	indent = lipgloss.NewStyle().MarginLeft(2)
)

// Cell styles. Every cell renders cellWidth columns wide so mouse
// coordinates map back to grid positions.
var (
	CellStyle = lipgloss.NewStyle().
			Width(cellWidth).
			Align(lipgloss.Center).
			Foreground(TextColor)

	CellCorrectStyle = CellStyle.
				Background(SelectedColor).
				Bold(true)

	CellIncorrectStyle = CellStyle.
				Background(ErrorColor)

	CursorStyle = lipgloss.NewStyle().
			Underline(true).
			Reverse(true)
)

// RenderTitle renders a title with consistent styling
func RenderTitle(text string) string {
	return TitleStyle.Render(text)
}

// RenderButton renders a button, highlighted when focused
func RenderButton(label string, focused bool) string {
	if focused {
		return FocusedButtonStyle.Render(label)
	}
	return ButtonStyle.Render(label)
}

// BuildHeaderContent creates header content with app name and GitHub URL
func BuildHeaderContent() string {
	left := lipgloss.NewStyle().
		Foreground(TextColor).
		Bold(true).
		Render(AppName + " v" + AppVersion())

	right := lipgloss.NewStyle().
		Foreground(SubtleColor).
		Render(GitHubURL)

	return lipgloss.JoinHorizontal(lipgloss.Top, left, " ", right)
}

// BuildFooterContent creates footer content with help text
func BuildFooterContent(helpText string) string {
	return lipgloss.NewStyle().
		Foreground(SubtleColor).
		Render(helpText)
}

// containerSize substitutes usable dimensions before the first WindowSizeMsg.
func containerSize(width, height int) (int, int) {
	if width <= 0 {
		width = MinTerminalWidth
	}
	if height <= 0 {
		height = MinTerminalHeight
	}
	return width, height
}

func renderHeader(terminalWidth int) string {
	headerStyle := lipgloss.NewStyle().
		BorderStyle(lipgloss.Border{Bottom: "─"}).
		BorderBottom(true).
		BorderForeground(BorderColor).
		Width(terminalWidth-4). // Leave room for outer border
		Padding(0, 1)

	return headerStyle.Render(BuildHeaderContent())
}

// ContentOrigin returns the terminal cell where screen content begins inside
// RenderApplicationContainer.
func ContentOrigin(terminalWidth int) (x, y int) {
	terminalWidth, _ = containerSize(terminalWidth, 0)
	// One column and one row for the outer border, then the header block.
	return 1, 1 + lipgloss.Height(renderHeader(terminalWidth))
}

// contentStyle wraps screen content to the width inside the container.
// No padding here: callers control their own content margins.
func contentStyle(terminalWidth int) lipgloss.Style {
	return lipgloss.NewStyle().Width(terminalWidth - 4)
}

// ContentOffset returns how many rows below the content origin text appended
// after content starts, counting the rows long lines wrap onto.
func ContentOffset(content string, terminalWidth int) int {
	terminalWidth, _ = containerSize(terminalWidth, 0)
	body := strings.TrimRight(content, "\n")
	trailing := len(content) - len(body)
	if body == "" {
		return trailing
	}
	return lipgloss.Height(contentStyle(terminalWidth).Render(body)) - 1 + trailing
}

// RenderApplicationContainer is the wrapper for all screens in the application.
// It draws the application header, the screen content and a footer with
// context-sensitive help inside a full-screen bordered panel.
//
//	func (m Model) View() string {
//	    content := m.buildContent()
//	    return RenderApplicationContainer(content, m.Help.View(m.Keys), m.Width, m.Height)
//	}
func RenderApplicationContainer(content string, footerText string, terminalWidth int, terminalHeight int) string {
	terminalWidth, terminalHeight = containerSize(terminalWidth, terminalHeight)

	styledHeader := renderHeader(terminalWidth)

	footerStyle := lipgloss.NewStyle().
		BorderStyle(lipgloss.Border{Top: "─"}).
		BorderTop(true).
		BorderForeground(BorderColor).
		Width(terminalWidth-4).
		Padding(0, 1)

	styledFooter := footerStyle.Render(BuildFooterContent(footerText))

	styledContent := contentStyle(terminalWidth).Render(content)

	innerContent := lipgloss.JoinVertical(
		lipgloss.Left,
		styledHeader,
		styledContent,
		styledFooter,
	)

	borderStyle := lipgloss.NewStyle().
		Border(lipgloss.NormalBorder()).
		BorderForeground(BorderColor).
		Width(terminalWidth - 2).
		Height(terminalHeight - 2).
		AlignVertical(lipgloss.Top)

	bordered := borderStyle.Render(innerContent)

	return lipgloss.Place(
		terminalWidth,
		terminalHeight,
		lipgloss.Left,
		lipgloss.Top,
		bordered,
	)
}
