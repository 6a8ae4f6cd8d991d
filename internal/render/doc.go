// Package render formats release views for the terminal.
//
// The package is purely presentational: it receives an already filtered
// and sorted view together with the display settings and the active sort
// key, and never decides which releases are shown.
//
// # Table
//
//	out := render.Table(view, display, model.SortReleaseDate, render.Options{Now: time.Now()})
//	fmt.Println(out)
//
// Only the visible columns are rendered, in the order of model.Columns.
// The header of the column the view is sorted by carries an arrow.
//
// # Values
//
// Cell values follow the release card conventions:
//   - Type chip: secondary type, else primary type, else "Unknown"
//   - Tags: each tag cut to 26 display cells (23 + "...")
//   - Listens: abbreviated, e.g. "1.2k"
//   - Future releases are marked with an hourglass
package render
