// Package tui implements the terminal user interface for playing word search
// puzzles.
//
// Built on Bubble Tea, the package follows the Elm architecture: every screen
// is a model with Init, Update and View, and the root AppModel routes
// messages to whichever screen is mounted.
//
// # Screens
//
//   - Landing: title and a Start control
//   - Configuration: word list, rows and columns, and a Generate button
//   - Generate: the puzzle grid, the words to find and attempt counters
//
// All screens draw inside RenderApplicationContainer for a consistent header,
// content area and context-sensitive footer.
//
// # State
//
// The configuration lives in a Store owned by AppModel. The configuration
// screen reports each edit as a message carrying the raw value, and the
// puzzle screen reads the store when it is mounted. Screens are rebuilt on
// every transition, so going back from a puzzle discards the grid,
// selections and counters.
//
// Generation requests run as tea.Cmds. Each is tagged with a number from the
// root Sequence and the puzzle screen applies only the response to its latest
// request. A failed request puts the screen in a failed state where r
// retries.
//
// # Usage Example
//
//	client := generator.NewClient(endpoint)
//	app := tui.NewAppModel(tui.Options{
//	    Config:   puzzle.NewConfiguration(),
//	    Generate: client.Generate,
//	    Endpoint: endpoint,
//	})
//	program := tea.NewProgram(app, tea.WithAltScreen(), tea.WithMouseCellMotion())
//	if _, err := program.Run(); err != nil {
//	    log.Fatal(err)
//	}
//
// # Key Bindings
//
//   - Landing: enter/s start, q quit
//   - Configuration: tab/shift+tab move focus, ctrl+g generate, esc back
//   - Puzzle: arrows move, space/enter select, r retry, esc/b back, q quit
//
// ctrl+c quits from any screen. Mouse clicks on grid cells select them.
package tui
