package model

// Column names a toggleable display column of the release view.
type Column string

const (
	ColumnReleaseTitle Column = "Release Title"
	ColumnArtist       Column = "Artist"
	ColumnInformation  Column = "Information"
	ColumnTags         Column = "Tags"
	ColumnListens      Column = "Listens"
)

// Columns lists every display column in rendering order.
var Columns = []Column{ColumnReleaseTitle, ColumnArtist, ColumnInformation, ColumnTags, ColumnListens}

// DisplaySettings records which columns are visible.
//
// The zero value hides every column; use DefaultDisplaySettings for the
// initial page state (title, artist and information shown).
type DisplaySettings map[Column]bool

// DefaultDisplaySettings returns the initial column visibility.
func DefaultDisplaySettings() DisplaySettings {
	return DisplaySettings{
		ColumnReleaseTitle: true,
		ColumnArtist:       true,
		ColumnInformation:  true,
		ColumnTags:         false,
		ColumnListens:      false,
	}
}

// Visible reports whether column c is shown.
func (d DisplaySettings) Visible(c Column) bool {
	return d[c]
}

// Toggle returns a copy of the settings with column c flipped.
// The receiver is left unchanged.
func (d DisplaySettings) Toggle(c Column) DisplaySettings {
	next := d.Clone()
	next[c] = !d[c]
	return next
}

// Clone returns an independent copy of the settings.
func (d DisplaySettings) Clone() DisplaySettings {
	next := make(DisplaySettings, len(d)+1)
	for k, v := range d {
		next[k] = v
	}
	return next
}

// VisibleColumns returns the shown columns in rendering order.
func (d DisplaySettings) VisibleColumns() []Column {
	var cols []Column
	for _, c := range Columns {
		if d[c] {
			cols = append(cols, c)
		}
	}
	return cols
}
