// Package ui renders one-shot command output for the wordfinder CLI.
//
// Unlike the interactive TUI, these components print and return. A Printer
// draws lipgloss boxes when writing to a terminal and falls back to plain
// text when output is piped, so commands like
//
//	wordfinder generate --words CAT --words DOG > puzzle.txt
//
// produce clean text files.
//
// # Components
//
//   - Header: command banner with parameters
//   - Result boxes: success, warning and failure (with troubleshooting tips)
//   - Puzzle: a generated grid and its word list
//   - Runner: header → step lines → result for multi-step commands such as check
//   - Confirm: a y/N prompt
//
// # Logging Integration
//
// zap logging is silent unless WORDFINDER_LOG_LEVEL or --log-level is set,
// leaving stdout to the curated output here.
package ui
