package dto

import (
	"encoding/json"
	"testing"
	"time"
)

func TestReleaseDate_UnmarshalJSON(t *testing.T) {
	tests := []struct {
		input string
		want  time.Time
	}{
		{`"2023-05-15"`, time.Date(2023, 5, 15, 0, 0, 0, 0, time.UTC)},
		{`"2023-05-15T22:10:00Z"`, time.Date(2023, 5, 15, 0, 0, 0, 0, time.UTC)},
		{`"2023-05"`, time.Date(2023, 5, 1, 0, 0, 0, 0, time.UTC)},
		{`"2023"`, time.Date(2023, 1, 1, 0, 0, 0, 0, time.UTC)},
		{`""`, time.Time{}},
		{`null`, time.Time{}},
		{`"someday"`, time.Time{}},
		{`20230515`, time.Time{}},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			var rd ReleaseDate
			if err := json.Unmarshal([]byte(tt.input), &rd); err != nil {
				t.Fatalf("UnmarshalJSON(%s) error = %v", tt.input, err)
			}
			if !rd.Time.Equal(tt.want) {
				t.Errorf("UnmarshalJSON(%s) = %v, want %v", tt.input, rd.Time, tt.want)
			}
		})
	}
}

func TestFreshRelease_ToRelease(t *testing.T) {
	body := `{
		"payload": {
			"releases": [
				{
					"artist_credit_name": "Jon Hopkins",
					"artist_mbids": ["a1"],
					"caa_id": 123,
					"caa_release_mbid": "r1",
					"confidence": 0.8,
					"listen_count": 42,
					"release_date": "2023-05-15",
					"release_group_mbid": "rg1",
					"release_group_primary_type": "Album",
					"release_group_secondary_type": null,
					"release_mbid": "r1",
					"release_name": "Music for Psychedelic Therapy",
					"release_tags": ["ambient", "electronic"]
				},
				{
					"artist_credit_name": "Someone",
					"release_name": "Bare",
					"release_date": null
				}
			]
		}
	}`

	var resp FreshReleasesResponse
	if err := json.Unmarshal([]byte(body), &resp); err != nil {
		t.Fatalf("failed to decode: %v", err)
	}

	releases := resp.Payload.ToReleases()
	if len(releases) != 2 {
		t.Fatalf("got %d releases, want 2", len(releases))
	}

	r := releases[0]
	if r.Type() != "Album" {
		t.Errorf("Type() = %q, want %q", r.Type(), "Album")
	}
	if r.ListenCount != 42 {
		t.Errorf("ListenCount = %d, want 42", r.ListenCount)
	}
	if r.Confidence == nil || *r.Confidence != 0.8 {
		t.Errorf("Confidence = %v, want 0.8", r.Confidence)
	}
	if !r.HasCoverArt() {
		t.Error("release with caa_id should have cover art")
	}
	if len(r.Tags) != 2 {
		t.Errorf("Tags = %v, want 2 tags", r.Tags)
	}

	bare := releases[1]
	if bare.HasDate() || bare.Type() != "" || bare.Tags != nil || bare.Confidence != nil {
		t.Errorf("missing fields should be absent, got %+v", bare)
	}
}
