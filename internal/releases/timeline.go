package releases

import (
	"strings"
	"unicode/utf8"

	"github.com/handiism/fresh-releases/internal/model"
)

// UndatedLabel labels the timeline section of releases without a date.
const UndatedLabel = "Undated"

// Section is one mark on the release timeline.
type Section struct {
	// Label is the date ("15 May") or the initial letter of the section.
	Label string

	// Index is the position of the first release of the section in the view.
	Index int

	// Count is the number of releases in the section.
	Count int
}

// Timeline groups an ordered view into sections for the timeline rail.
//
// Views sorted by release date are grouped by day, the others by the
// uppercased first letter of the sort field. A section is a contiguous
// run of releases sharing a label, so sections never overlap. A label may
// occur in more than one section when the sort order separates its
// releases (text sorts are case-sensitive).
func Timeline(view []model.Release, key model.SortKey) []Section {
	var out []Section
	for i, r := range view {
		label := sectionLabel(r, key)
		if n := len(out); n > 0 && out[n-1].Label == label {
			out[n-1].Count++
			continue
		}
		out = append(out, Section{Label: label, Index: i, Count: 1})
	}
	return out
}

func sectionLabel(r model.Release, key model.SortKey) string {
	switch key {
	case model.SortArtistCreditName:
		return initial(r.ArtistCreditName)
	case model.SortReleaseName:
		return initial(r.ReleaseName)
	default:
		if !r.HasDate() {
			return UndatedLabel
		}
		return r.ReleaseDate.Format("02 Jan")
	}
}

func initial(s string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return "#"
	}
	first, _ := utf8.DecodeRuneInString(s)
	return strings.ToUpper(string(first))
}
