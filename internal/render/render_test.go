package render

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/handiism/fresh-releases/internal/model"
	"github.com/handiism/fresh-releases/internal/releases"
)

var now = time.Date(2024, 6, 15, 9, 0, 0, 0, time.UTC)

func TestTypeChipAndTooltip(t *testing.T) {
	tests := []struct {
		name        string
		r           model.Release
		wantChip    string
		wantTooltip string
	}{
		{"primary", model.Release{PrimaryType: "Album"}, "Album", "Album"},
		{"secondary wins", model.Release{PrimaryType: "Album", SecondaryType: "Live"}, "Live", "Album + Live"},
		{"unknown", model.Release{}, "Unknown", "Unknown"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.wantChip, TypeChip(tt.r))
			assert.Equal(t, tt.wantTooltip, TypeTooltip(tt.r))
		})
	}
}

func TestTruncateTag(t *testing.T) {
	tests := []struct {
		tag  string
		want string
	}{
		{"jazz", "jazz"},
		{strings.Repeat("a", 26), strings.Repeat("a", 26)},
		{strings.Repeat("a", 27), strings.Repeat("a", 23) + "..."},
		{"progressive electronic dance music", "progressive electronic ..."},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, TruncateTag(tt.tag), tt.tag)
	}
}

func TestFormatTags(t *testing.T) {
	assert.Equal(t, "jazz, rock", FormatTags([]string{"jazz", "", "rock"}))
	assert.Equal(t, "", FormatTags(nil))
	assert.Equal(t, "electronic, ambient, do...", FormatTags([]string{"electronic", "ambient", "downtempo", "idm"}))
}

func TestFormatListenCount(t *testing.T) {
	tests := []struct {
		n    int
		want string
	}{
		{0, ""},
		{-1, ""},
		{1, "1"},
		{999, "999"},
		{1000, "1k"},
		{1234, "1.2k"},
		{2500000, "2.5M"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, FormatListenCount(tt.n))
	}
}

func TestFormatReleaseDate(t *testing.T) {
	past := model.Release{ReleaseDate: time.Date(2024, 6, 10, 0, 0, 0, 0, time.UTC)}
	today := model.Release{ReleaseDate: time.Date(2024, 6, 15, 0, 0, 0, 0, time.UTC)}
	future := model.Release{ReleaseDate: time.Date(2024, 6, 20, 0, 0, 0, 0, time.UTC)}

	assert.Equal(t, "10 Jun", FormatReleaseDate(past, now))
	assert.Equal(t, "15 Jun", FormatReleaseDate(today, now))
	assert.Equal(t, "20 Jun "+FutureMarker, FormatReleaseDate(future, now))
	assert.Equal(t, "-", FormatReleaseDate(model.Release{}, now))
}

func TestRelativeDate(t *testing.T) {
	assert.Equal(t, "today", RelativeDate(time.Date(2024, 6, 15, 0, 0, 0, 0, time.UTC), now))
	assert.Equal(t, "3 days ago", RelativeDate(time.Date(2024, 6, 12, 0, 0, 0, 0, time.UTC), now))
	assert.Equal(t, "", RelativeDate(time.Time{}, now))
}

func sampleView() []model.Release {
	return []model.Release{
		{
			ReleaseName:      "First Light",
			ArtistCreditName: "Amy",
			ReleaseDate:      time.Date(2024, 6, 14, 0, 0, 0, 0, time.UTC),
			PrimaryType:      "Album",
			Tags:             []string{"jazz"},
			ListenCount:      1234,
		},
		{
			ReleaseName:      "Soon",
			ArtistCreditName: "Bob",
			ReleaseDate:      time.Date(2024, 6, 18, 0, 0, 0, 0, time.UTC),
			SecondaryType:    "Live",
		},
	}
}

func TestTable_DefaultColumns(t *testing.T) {
	out := Table(sampleView(), model.DefaultDisplaySettings(), model.SortReleaseDate, Options{Now: now})

	assert.Contains(t, out, "Release Title")
	assert.Contains(t, out, "Artist")
	assert.Contains(t, out, "Information "+SortArrow)
	assert.NotContains(t, out, "Tags")
	assert.NotContains(t, out, "Listens")

	assert.Contains(t, out, "First Light")
	assert.Contains(t, out, "Album · 14 Jun")
	assert.Contains(t, out, "Live · 18 Jun "+FutureMarker)
	assert.Less(t, strings.Index(out, "First Light"), strings.Index(out, "Soon"), "view order is kept")
}

func TestTable_ToggledColumns(t *testing.T) {
	display := model.DefaultDisplaySettings().
		Toggle(model.ColumnInformation).
		Toggle(model.ColumnTags).
		Toggle(model.ColumnListens)

	out := Table(sampleView(), display, model.SortArtistCreditName, Options{Now: now, Styled: true})

	assert.Contains(t, out, "Artist "+SortArrow)
	assert.NotContains(t, out, "Information")
	assert.Contains(t, out, "jazz")
	assert.Contains(t, out, "1.2k")
	assert.Contains(t, out, "╭", "styled tables use rounded borders")
}

func TestTable_Empty(t *testing.T) {
	assert.Equal(t, "No releases found\n", Table(nil, model.DefaultDisplaySettings(), model.SortReleaseDate, Options{}))
	assert.Equal(t, "No columns selected\n", Table(sampleView(), model.DisplaySettings{}, model.SortReleaseDate, Options{}))
}

func TestCell_TruncatesText(t *testing.T) {
	r := model.Release{ReleaseName: "Waterslide, Diving Board, Ladder to the Sky"}
	assert.Equal(t, "Waterslid…", Cell(r, model.ColumnReleaseTitle, now, 10))
	assert.Equal(t, r.ReleaseName, Cell(r, model.ColumnReleaseTitle, now, 0))
}

func TestCell_ZeroListensIsBlank(t *testing.T) {
	assert.Equal(t, "", Cell(model.Release{}, model.ColumnListens, now, 0))
	assert.Equal(t, "1.2k", Cell(model.Release{ListenCount: 1234}, model.ColumnListens, now, 0))
}

func TestWrite_PlainForNonTerminal(t *testing.T) {
	var buf bytes.Buffer
	err := Write(&buf, sampleView(), model.DefaultDisplaySettings(), model.SortReleaseDate, now)

	assert.NoError(t, err)
	assert.NotContains(t, buf.String(), "╭")
	assert.False(t, IsTerminal(&buf))
}

func TestFacets(t *testing.T) {
	f := releases.ExtractFacets(sampleView())
	out := Facets(f, model.NewStringSet("Live"), nil)

	assert.Contains(t, out, "Release types (2)")
	assert.Contains(t, out, "   Album (1)")
	assert.Contains(t, out, " * Live (1)")
	assert.Contains(t, out, "Tags (1)")
	assert.Contains(t, out, "jazz (1)")
}

func TestSummary(t *testing.T) {
	assert.Equal(t, "Showing 1 of 2 releases", Summary(sampleView()[:1], sampleView()))
}
