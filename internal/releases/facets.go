package releases

import (
	"github.com/elliotchance/orderedmap/v2"

	"github.com/handiism/fresh-releases/internal/model"
)

// FacetValue is one filter option together with the number of releases
// carrying it.
type FacetValue struct {
	Value string `json:"value"`
	Count int    `json:"count"`
}

// Facets holds the filter options available for a release set.
//
// Both lists are unique and in first-seen order.
type Facets struct {
	ReleaseTypes []FacetValue `json:"release_types"`
	ReleaseTags  []FacetValue `json:"release_tags"`
}

// TypeNames returns the release type values without counts.
func (f Facets) TypeNames() []string {
	return facetNames(f.ReleaseTypes)
}

// TagNames returns the tag values without counts.
func (f Facets) TagNames() []string {
	return facetNames(f.ReleaseTags)
}

// ExtractFacets derives the release type and tag facets of a release set.
//
// The release type of each release is its secondary type, or its primary
// type when no secondary type is set. Releases with neither contribute no
// type. Every tag of every release contributes to the tag facet; empty
// tags are ignored.
//
// ExtractFacets is deterministic: running it twice on the same input
// yields identical facets.
func ExtractFacets(records []model.Release) Facets {
	types := orderedmap.NewOrderedMap[string, int]()
	tags := orderedmap.NewOrderedMap[string, int]()

	for _, r := range records {
		if t := r.Type(); t != "" {
			increment(types, t)
		}
		for _, tag := range r.Tags {
			if tag != "" {
				increment(tags, tag)
			}
		}
	}

	return Facets{
		ReleaseTypes: facetValues(types),
		ReleaseTags:  facetValues(tags),
	}
}

func increment(m *orderedmap.OrderedMap[string, int], key string) {
	n, _ := m.Get(key)
	m.Set(key, n+1)
}

func facetValues(m *orderedmap.OrderedMap[string, int]) []FacetValue {
	values := make([]FacetValue, 0, m.Len())
	for _, key := range m.Keys() {
		n, _ := m.Get(key)
		values = append(values, FacetValue{Value: key, Count: n})
	}
	return values
}

func facetNames(values []FacetValue) []string {
	names := make([]string, len(values))
	for i, v := range values {
		names[i] = v.Value
	}
	return names
}
