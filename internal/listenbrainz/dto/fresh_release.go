package dto

import (
	"encoding/json"
	"time"

	"github.com/handiism/fresh-releases/internal/model"
)

// ReleaseDate is a custom time type that handles ListenBrainz release dates.
//
// Malformed or missing dates never fail decoding; they leave the zero time.
type ReleaseDate struct {
	time.Time
}

// UnmarshalJSON parses ListenBrainz's date format: "2023-01-31"
func (rd *ReleaseDate) UnmarshalJSON(data []byte) error {
	rd.Time = time.Time{}

	var s string
	if err := json.Unmarshal(data, &s); err != nil || s == "" {
		return nil
	}

	formats := []string{
		"2006-01-02", // "2023-01-31"
		time.RFC3339, // "2023-01-31T00:00:00Z"
		"2006-01",    // partial date: "2023-01"
		"2006",       // partial date: "2023"
		time.RFC1123, // "Tue, 31 Jan 2023 00:00:00 GMT"
	}

	for _, format := range formats {
		if t, err := time.Parse(format, s); err == nil {
			y, m, d := t.UTC().Date()
			rd.Time = time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
			return nil
		}
	}

	return nil
}

// FreshRelease represents one release in a fresh releases payload.
type FreshRelease struct {
	ArtistCreditName          string      `json:"artist_credit_name"`
	ArtistMBIDs               []string    `json:"artist_mbids"`
	CAAID                     *int64      `json:"caa_id"`
	CAAReleaseMBID            *string     `json:"caa_release_mbid"`
	Confidence                *float64    `json:"confidence"`
	ListenCount               *int        `json:"listen_count"`
	ReleaseDate               ReleaseDate `json:"release_date"`
	ReleaseGroupMBID          string      `json:"release_group_mbid"`
	ReleaseGroupPrimaryType   *string     `json:"release_group_primary_type"`
	ReleaseGroupSecondaryType *string     `json:"release_group_secondary_type"`
	ReleaseMBID               string      `json:"release_mbid"`
	ReleaseName               string      `json:"release_name"`
	ReleaseTags               []string    `json:"release_tags"`
}

// FreshReleasesPayload is the payload of both fresh releases endpoints.
type FreshReleasesPayload struct {
	Releases []FreshRelease `json:"releases"`
	UserID   string         `json:"user_id,omitempty"`
}

// FreshReleasesResponse is the envelope returned by the API.
type FreshReleasesResponse struct {
	Payload FreshReleasesPayload `json:"payload"`
}

// ErrorResponse is the body of a failed API call.
type ErrorResponse struct {
	Code  int    `json:"code"`
	Error string `json:"error"`
}

// ToRelease converts FreshRelease to a model.Release.
func (fr *FreshRelease) ToRelease() model.Release {
	return model.Release{
		ReleaseName:      fr.ReleaseName,
		ArtistCreditName: fr.ArtistCreditName,
		ReleaseDate:      fr.ReleaseDate.Time,
		PrimaryType:      deref(fr.ReleaseGroupPrimaryType),
		SecondaryType:    deref(fr.ReleaseGroupSecondaryType),
		Tags:             fr.ReleaseTags,
		Confidence:       fr.Confidence,
		ListenCount:      derefInt(fr.ListenCount),
		ReleaseMBID:      fr.ReleaseMBID,
		ReleaseGroupMBID: fr.ReleaseGroupMBID,
		ArtistMBIDs:      fr.ArtistMBIDs,
		CAAID:            fr.CAAID,
		CAAReleaseMBID:   deref(fr.CAAReleaseMBID),
	}
}

// ToReleases converts every release of the payload, keeping order.
func (p *FreshReleasesPayload) ToReleases() []model.Release {
	out := make([]model.Release, 0, len(p.Releases))
	for i := range p.Releases {
		out = append(out, p.Releases[i].ToRelease())
	}
	return out
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func derefInt(n *int) int {
	if n == nil {
		return 0
	}
	return *n
}
