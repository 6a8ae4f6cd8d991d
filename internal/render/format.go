package render

import (
	"strconv"
	"strings"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/mattn/go-runewidth"

	"github.com/handiism/fresh-releases/internal/model"
	"github.com/handiism/fresh-releases/internal/releases"
)

const (
	// MaxTagWidth is the display width beyond which a tag is truncated.
	MaxTagWidth = 26

	// FutureMarker flags releases dated after today.
	FutureMarker = "⏳"

	// DateLayout formats release dates in cells.
	DateLayout = "02 Jan"

	tagEllipsis = "..."
	ellipsis    = "…"
)

// TypeChip returns the release type label shown on the card.
func TypeChip(r model.Release) string {
	return r.TypeLabel()
}

// TypeTooltip returns the full type description, naming both types
// when present ("Album + Live").
func TypeTooltip(r model.Release) string {
	if d := r.TypeDescription(); d != "" {
		return d
	}
	return model.ReleaseTypeUnknown
}

// TruncateTag cuts text wider than MaxTagWidth cells to 23 cells followed
// by "...".
func TruncateTag(tag string) string {
	if runewidth.StringWidth(tag) <= MaxTagWidth {
		return tag
	}
	return runewidth.Truncate(tag, MaxTagWidth, tagEllipsis)
}

// FormatTags joins the tags of a release and cuts the list like a
// single tag, so the cell is never wider than MaxTagWidth.
func FormatTags(tags []string) string {
	out := make([]string, 0, len(tags))
	for _, tag := range tags {
		if tag != "" {
			out = append(out, tag)
		}
	}
	return TruncateTag(strings.Join(out, ", "))
}

// FormatListenCount abbreviates a listen count: 999, 1.2k, 3.4M.
// Releases without listens yield an empty string.
func FormatListenCount(n int) string {
	if n <= 0 {
		return ""
	}
	if n < 1000 {
		return strconv.Itoa(n)
	}
	return strings.ReplaceAll(humanize.SIWithDigits(float64(n), 1, ""), " ", "")
}

// FormatReleaseDate formats a release date as "15 Jun", with the future
// marker for releases after now. Undated releases yield "-".
func FormatReleaseDate(r model.Release, now time.Time) string {
	if !r.HasDate() {
		return "-"
	}
	s := r.ReleaseDate.Format(DateLayout)
	if r.IsFuture(now) {
		s += " " + FutureMarker
	}
	return s
}

// RelativeDate describes a release date relative to now, e.g.
// "today", "3 days ago" or "2 days from now".
func RelativeDate(t, now time.Time) string {
	if t.IsZero() {
		return ""
	}
	if releases.DaysFrom(now, t) == 0 {
		return "today"
	}
	return humanize.RelTime(t, now, "ago", "from now")
}

// Information returns the information cell: type chip and release date.
func Information(r model.Release, now time.Time) string {
	return TypeChip(r) + " · " + FormatReleaseDate(r, now)
}

// fit truncates s to width display cells.
func fit(s string, width int) string {
	if width <= 0 {
		return s
	}
	return runewidth.Truncate(s, width, ellipsis)
}
