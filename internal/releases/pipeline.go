package releases

import (
	"time"

	"github.com/handiism/fresh-releases/internal/model"
)

// Process prepares freshly fetched releases: duplicates are removed and the
// facets of the remaining set are extracted.
func Process(fetched []model.Release) ([]model.Release, Facets) {
	clean := Dedupe(fetched)
	return clean, ExtractFacets(clean)
}

// Apply filters the processed releases and sorts the result.
func Apply(clean []model.Release, c model.Criteria, now time.Time) []model.Release {
	return Sort(Filter(clean, c, now), c.SortKey)
}
