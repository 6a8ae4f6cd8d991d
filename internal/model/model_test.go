package model

import (
	"testing"
	"time"
)

func TestRelease_Type(t *testing.T) {
	tests := []struct {
		name      string
		primary   string
		secondary string
		want      string
		wantLabel string
		wantDesc  string
	}{
		{"primary only", "Album", "", "Album", "Album", "Album"},
		{"secondary only", "", "Live", "Live", "Live", "Live"},
		{"both", "Album", "Compilation", "Compilation", "Compilation", "Album + Compilation"},
		{"neither", "", "", "", ReleaseTypeUnknown, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := Release{PrimaryType: tt.primary, SecondaryType: tt.secondary}
			if got := r.Type(); got != tt.want {
				t.Errorf("Type() = %q, want %q", got, tt.want)
			}
			if got := r.TypeLabel(); got != tt.wantLabel {
				t.Errorf("TypeLabel() = %q, want %q", got, tt.wantLabel)
			}
			if got := r.TypeDescription(); got != tt.wantDesc {
				t.Errorf("TypeDescription() = %q, want %q", got, tt.wantDesc)
			}
		})
	}
}

func TestRelease_IsFuture(t *testing.T) {
	now := time.Date(2024, 3, 10, 12, 0, 0, 0, time.UTC)

	future := Release{ReleaseDate: time.Date(2024, 3, 11, 0, 0, 0, 0, time.UTC)}
	if !future.IsFuture(now) {
		t.Error("release dated tomorrow should be future")
	}

	past := Release{ReleaseDate: time.Date(2024, 3, 9, 0, 0, 0, 0, time.UTC)}
	if past.IsFuture(now) {
		t.Error("release dated yesterday should not be future")
	}

	if (Release{}).IsFuture(now) {
		t.Error("undated release should not be future")
	}

	today := Release{ReleaseDate: time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC)}
	if today.IsFuture(now) {
		t.Error("release dated today should not be future")
	}
}

func TestRelease_Links(t *testing.T) {
	r := Release{ReleaseMBID: "rel-1", ArtistMBIDs: []string{"art-1", "art-2"}}

	if got, want := r.PlayerURL(), "https://listenbrainz.org/player/release/rel-1"; got != want {
		t.Errorf("PlayerURL() = %q, want %q", got, want)
	}
	if got, want := r.ArtistURL(), "https://musicbrainz.org/artist/art-1"; got != want {
		t.Errorf("ArtistURL() = %q, want %q", got, want)
	}

	var empty Release
	if empty.PlayerURL() != "" || empty.ArtistURL() != "" {
		t.Error("links without MBIDs should be empty")
	}
}

func TestRelease_CoverArtURL(t *testing.T) {
	id := int64(42)
	r := Release{CAAID: &id, CAAReleaseMBID: "abc"}
	want := "https://archive.org/download/mbid-abc/mbid-abc-42_thumb250.jpg"
	if got := r.CoverArtURL(); got != want {
		t.Errorf("CoverArtURL() = %q, want %q", got, want)
	}

	if got := (Release{CAAReleaseMBID: "abc"}).CoverArtURL(); got != "" {
		t.Errorf("CoverArtURL() without CAA id = %q, want empty", got)
	}
}

func TestRange_Days(t *testing.T) {
	tests := []struct {
		rng  Range
		want int
	}{
		{RangeWeek, 7},
		{RangeMonth, 30},
		{RangeThreeMonths, 90},
		{Range("fortnight"), 1},
		{Range(""), 1},
	}

	for _, tt := range tests {
		t.Run(string(tt.rng), func(t *testing.T) {
			if got := tt.rng.Days(); got != tt.want {
				t.Errorf("Days() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestParseSortKey(t *testing.T) {
	for _, k := range SortKeys {
		got, err := ParseSortKey(string(k))
		if err != nil || got != k {
			t.Errorf("ParseSortKey(%q) = %q, %v", k, got, err)
		}
	}

	if _, err := ParseSortKey("listen_count"); err == nil {
		t.Error("expected error for unknown sort key")
	}
}

func TestSortKey_Next(t *testing.T) {
	k := SortReleaseDate
	seen := map[SortKey]bool{}
	for i := 0; i < len(SortKeys); i++ {
		seen[k] = true
		k = k.Next()
	}
	if k != SortReleaseDate {
		t.Errorf("Next() should wrap around to %q, got %q", SortReleaseDate, k)
	}
	if len(seen) != len(SortKeys) {
		t.Errorf("Next() visited %d keys, want %d", len(seen), len(SortKeys))
	}
}

func TestDefaultPageType(t *testing.T) {
	if got := DefaultPageType("rob"); got != PageTypeUser {
		t.Errorf("DefaultPageType(user) = %q, want %q", got, PageTypeUser)
	}
	if got := DefaultPageType(""); got != PageTypeSitewide {
		t.Errorf("DefaultPageType(\"\") = %q, want %q", got, PageTypeSitewide)
	}
}

func TestDisplaySettings_Toggle(t *testing.T) {
	d := DefaultDisplaySettings()
	toggled := d.Toggle(ColumnTags)

	if d.Visible(ColumnTags) {
		t.Error("Toggle should not modify the receiver")
	}
	if !toggled.Visible(ColumnTags) {
		t.Error("Tags should be visible after toggle")
	}

	want := []Column{ColumnReleaseTitle, ColumnArtist, ColumnInformation, ColumnTags}
	got := toggled.VisibleColumns()
	if len(got) != len(want) {
		t.Fatalf("VisibleColumns() = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("VisibleColumns()[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestStringSet(t *testing.T) {
	s := NewStringSet("a", "b")
	s.Toggle("a")
	s.Toggle("c")

	if s.Has("a") || !s.Has("b") || !s.Has("c") {
		t.Errorf("unexpected set contents: %v", s)
	}

	c := s.Clone()
	c.Toggle("b")
	if !s.Has("b") {
		t.Error("Clone should be independent of the original")
	}

	var nilSet StringSet
	if nilSet.Has("a") {
		t.Error("nil set should contain nothing")
	}
}
