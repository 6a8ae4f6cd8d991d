package model

import (
	"fmt"
	"time"
)

// ReleaseTypeUnknown is shown when a release has neither a primary nor a
// secondary release group type.
const ReleaseTypeUnknown = "Unknown"

// Release represents one fresh release as returned by ListenBrainz.
//
// Release is read-only input to the release set processor. Optional fields
// that are missing in the API response keep their zero value:
//   - ReleaseDate is the zero time when the date is absent or unparseable
//   - PrimaryType and SecondaryType are empty when the release group has no type
//   - Confidence and CAAID are nil when not provided
//
// Example:
//
//	r := model.Release{
//	    ReleaseName:      "Waterslide, Diving Board, Ladder to the Sky",
//	    ArtistCreditName: "Jon Hopkins",
//	    ReleaseDate:      time.Date(2023, 5, 15, 0, 0, 0, 0, time.UTC),
//	    PrimaryType:      "Album",
//	    Tags:             []string{"electronic"},
//	}
//	fmt.Println(r.Type()) // "Album"
type Release struct {
	// ReleaseName is the release title.
	ReleaseName string

	// ArtistCreditName is the credited artist string.
	ArtistCreditName string

	// ReleaseDate is the release day (UTC midnight).
	ReleaseDate time.Time

	// PrimaryType is the release group primary type (Album, Single, EP...).
	PrimaryType string

	// SecondaryType is the release group secondary type (Live, Compilation...).
	// It takes precedence over PrimaryType when deriving the release type.
	SecondaryType string

	// Tags are the release tags, possibly empty.
	Tags []string

	// Confidence is the recommendation confidence for user pages.
	Confidence *float64

	// ListenCount is the number of listens of the release.
	ListenCount int

	ReleaseMBID      string
	ReleaseGroupMBID string
	ArtistMBIDs      []string

	// CAAID and CAAReleaseMBID identify the cover art archive image.
	CAAID          *int64
	CAAReleaseMBID string
}

// Type returns the derived release type: the secondary type if present,
// otherwise the primary type. Returns an empty string when neither is set.
func (r Release) Type() string {
	if r.SecondaryType != "" {
		return r.SecondaryType
	}
	return r.PrimaryType
}

// TypeLabel returns the type for display, falling back to ReleaseTypeUnknown.
func (r Release) TypeLabel() string {
	if t := r.Type(); t != "" {
		return t
	}
	return ReleaseTypeUnknown
}

// TypeDescription returns the full type description of the release.
//
// When both types are present the description names both:
//
//	Release{PrimaryType: "Album", SecondaryType: "Live"}.TypeDescription() // "Album + Live"
//
// Otherwise the present type is returned, or an empty string if none is.
func (r Release) TypeDescription() string {
	switch {
	case r.PrimaryType != "" && r.SecondaryType != "":
		return fmt.Sprintf("%s + %s", r.PrimaryType, r.SecondaryType)
	case r.SecondaryType != "":
		return r.SecondaryType
	default:
		return r.PrimaryType
	}
}

// HasDate reports whether the release carries a release date.
func (r Release) HasDate() bool {
	return !r.ReleaseDate.IsZero()
}

// IsFuture reports whether the release is dated after the UTC day of now.
// A release dated today is not a future release.
func (r Release) IsFuture(now time.Time) bool {
	if !r.HasDate() {
		return false
	}
	return utcDay(r.ReleaseDate).After(utcDay(now))
}

func utcDay(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// HasCoverArt reports whether a cover art archive image is known.
func (r Release) HasCoverArt() bool {
	return r.CAAID != nil && r.CAAReleaseMBID != ""
}

// CoverArtURL returns the 250px thumbnail URL of the release cover art, or
// an empty string when no image is known.
func (r Release) CoverArtURL() string {
	if !r.HasCoverArt() {
		return ""
	}
	return fmt.Sprintf("https://archive.org/download/mbid-%s/mbid-%s-%d_thumb250.jpg",
		r.CAAReleaseMBID, r.CAAReleaseMBID, *r.CAAID)
}

// PlayerURL returns the ListenBrainz player link for the release, or an
// empty string when the release MBID is unknown.
func (r Release) PlayerURL() string {
	if r.ReleaseMBID == "" {
		return ""
	}
	return "https://listenbrainz.org/player/release/" + r.ReleaseMBID
}

// ArtistURL returns the MusicBrainz link of the first credited artist.
func (r Release) ArtistURL() string {
	if len(r.ArtistMBIDs) == 0 {
		return ""
	}
	return "https://musicbrainz.org/artist/" + r.ArtistMBIDs[0]
}
