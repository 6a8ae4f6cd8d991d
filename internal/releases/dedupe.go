package releases

import (
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/handiism/fresh-releases/internal/model"
)

// Dedupe removes releases sharing the same case-insensitive name and
// artist credit. The first occurrence wins and the relative order of the
// kept releases is preserved.
//
// Example:
//
//	in := []model.Release{
//	    {ReleaseName: "A", ArtistCreditName: "B", Tags: []string{"x"}},
//	    {ReleaseName: "a", ArtistCreditName: "b", Tags: []string{"y"}},
//	}
//	out := Dedupe(in) // only the release tagged "x" remains
func Dedupe(records []model.Release) []model.Release {
	lower := cases.Lower(language.Und)
	seen := make(map[string]struct{}, len(records))
	out := make([]model.Release, 0, len(records))

	for _, r := range records {
		key := dedupKey(lower, r)
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		out = append(out, r)
	}

	return out
}

// dedupKey lowercases with full Unicode case mapping so that titles
// differing only in case (including final sigma forms) collide.
func dedupKey(lower cases.Caser, r model.Release) string {
	return lower.String(r.ReleaseName) + lower.String(r.ArtistCreditName)
}
