package render

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
	"github.com/mattn/go-isatty"

	"github.com/handiism/fresh-releases/internal/model"
	"github.com/handiism/fresh-releases/internal/releases"
)

// SortArrow marks the header of the column the view is sorted by.
const SortArrow = "▲"

// Options controls table rendering.
type Options struct {
	// Now anchors the future marker. The zero value means time.Now.
	Now time.Time

	// Styled enables rounded borders and a bold header.
	Styled bool

	// MaxTextWidth truncates release titles and artists, 0 for no limit.
	MaxTextWidth int
}

func (o Options) now() time.Time {
	if o.Now.IsZero() {
		return time.Now()
	}
	return o.Now
}

// Table renders the visible columns of view.
//
// An empty view renders a single "No releases found" line instead of an
// empty table.
func Table(view []model.Release, display model.DisplaySettings, sort model.SortKey, opts Options) string {
	columns := display.VisibleColumns()
	if len(columns) == 0 {
		return "No columns selected\n"
	}
	if len(view) == 0 {
		return "No releases found\n"
	}

	now := opts.now()

	tw := table.NewWriter()
	if opts.Styled {
		tw.SetStyle(table.StyleRounded)
		tw.Style().Color.Header = text.Colors{text.Bold}
	} else {
		tw.SetStyle(table.StyleDefault)
	}
	tw.Style().Format.Header = text.FormatDefault

	header := make(table.Row, len(columns))
	configs := make([]table.ColumnConfig, 0, len(columns))
	for i, c := range columns {
		label := string(c)
		if sortColumn(sort) == c {
			label += " " + SortArrow
		}
		header[i] = label

		align := text.AlignLeft
		if c == model.ColumnListens {
			align = text.AlignRight
		}
		configs = append(configs, table.ColumnConfig{
			Number:      i + 1,
			Align:       align,
			AlignHeader: text.AlignLeft,
		})
	}
	tw.AppendHeader(header)
	tw.SetColumnConfigs(configs)

	for _, r := range view {
		row := make(table.Row, len(columns))
		for i, c := range columns {
			row[i] = Cell(r, c, now, opts.MaxTextWidth)
		}
		tw.AppendRow(row)
	}

	return tw.Render() + "\n"
}

// Cell returns the value of column c for release r.
func Cell(r model.Release, c model.Column, now time.Time, maxWidth int) string {
	switch c {
	case model.ColumnReleaseTitle:
		return fit(r.ReleaseName, maxWidth)
	case model.ColumnArtist:
		return fit(r.ArtistCreditName, maxWidth)
	case model.ColumnInformation:
		return Information(r, now)
	case model.ColumnTags:
		return FormatTags(r.Tags)
	case model.ColumnListens:
		return FormatListenCount(r.ListenCount)
	default:
		return ""
	}
}

// sortColumn maps a sort key to the column showing its field.
func sortColumn(sort model.SortKey) model.Column {
	switch sort {
	case model.SortArtistCreditName:
		return model.ColumnArtist
	case model.SortReleaseName:
		return model.ColumnReleaseTitle
	default:
		return model.ColumnInformation
	}
}

// Write renders view to w, styling the table when w is a terminal.
func Write(w io.Writer, view []model.Release, display model.DisplaySettings, sort model.SortKey, now time.Time) error {
	_, err := io.WriteString(w, Table(view, display, sort, Options{
		Now:    now,
		Styled: IsTerminal(w),
	}))
	return err
}

// IsTerminal reports whether w is an interactive terminal.
func IsTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	fd := f.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

// Facets renders the facet lists with their counts. Selected values are
// prefixed with "*".
func Facets(f releases.Facets, selectedTypes, selectedTags model.StringSet) string {
	var b strings.Builder
	writeFacetList(&b, "Release types", f.ReleaseTypes, selectedTypes)
	b.WriteString("\n")
	writeFacetList(&b, "Tags", f.ReleaseTags, selectedTags)
	return b.String()
}

func writeFacetList(b *strings.Builder, title string, values []releases.FacetValue, selected model.StringSet) {
	fmt.Fprintf(b, "%s (%d)\n", title, len(values))
	if len(values) == 0 {
		b.WriteString("  none\n")
		return
	}
	for _, v := range values {
		mark := " "
		if selected.Has(v.Value) {
			mark = "*"
		}
		fmt.Fprintf(b, " %s %s (%s)\n", mark, v.Value, humanize.Comma(int64(v.Count)))
	}
}

// Summary returns the one line count summary of a view.
func Summary(view, all []model.Release) string {
	return fmt.Sprintf("Showing %s of %s releases",
		humanize.Comma(int64(len(view))), humanize.Comma(int64(len(all))))
}
