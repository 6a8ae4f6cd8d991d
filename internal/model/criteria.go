package model

import "fmt"

// SortKey names the field a release view is ordered by.
type SortKey string

const (
	SortReleaseDate      SortKey = "release_date"
	SortArtistCreditName SortKey = "artist_credit_name"
	SortReleaseName      SortKey = "release_name"
)

// SortKeys lists the sort keys in selector order.
var SortKeys = []SortKey{SortReleaseDate, SortArtistCreditName, SortReleaseName}

// ParseSortKey converts a string to a SortKey.
func ParseSortKey(s string) (SortKey, error) {
	for _, k := range SortKeys {
		if string(k) == s {
			return k, nil
		}
	}
	return "", fmt.Errorf("unknown sort key %q", s)
}

// Label returns the human readable selector label.
func (k SortKey) Label() string {
	switch k {
	case SortArtistCreditName:
		return "Artist"
	case SortReleaseName:
		return "Release Title"
	default:
		return "Release Date"
	}
}

// Next returns the sort key following k in selector order, wrapping around.
func (k SortKey) Next() SortKey {
	for i, key := range SortKeys {
		if key == k {
			return SortKeys[(i+1)%len(SortKeys)]
		}
	}
	return SortReleaseDate
}

// Range is a named release window.
type Range string

const (
	RangeWeek        Range = "week"
	RangeMonth       Range = "month"
	RangeThreeMonths Range = "three_months"
)

// Ranges lists the selectable ranges from shortest to longest.
var Ranges = []Range{RangeWeek, RangeMonth, RangeThreeMonths}

// Days converts the range to its window size in days.
//
//   - "week" - 7
//   - "month" - 30
//   - "three_months" - 90
//
// Any other value yields a one day window.
func (r Range) Days() int {
	switch r {
	case RangeWeek:
		return 7
	case RangeMonth:
		return 30
	case RangeThreeMonths:
		return 90
	default:
		return 1
	}
}

// Label returns the human readable range label.
func (r Range) Label() string {
	switch r {
	case RangeWeek:
		return "1 Week"
	case RangeMonth:
		return "1 Month"
	case RangeThreeMonths:
		return "3 Months"
	default:
		return "1 Day"
	}
}

// Next returns the range following r, wrapping around.
func (r Range) Next() Range {
	for i, rng := range Ranges {
		if rng == r {
			return Ranges[(i+1)%len(Ranges)]
		}
	}
	return RangeWeek
}

// PageType selects between the sitewide and the personalized release list.
type PageType string

const (
	PageTypeUser     PageType = "user"
	PageTypeSitewide PageType = "sitewide"
)

// DefaultPageType returns the user page when a user is known and the
// sitewide page otherwise.
func DefaultPageType(userName string) PageType {
	if userName != "" {
		return PageTypeUser
	}
	return PageTypeSitewide
}

// Criteria holds the user selected filter and sort options.
//
// Empty ReleaseTypes or ReleaseTags place no restriction on the view.
// A RangeDays value of zero or less leaves the date window unbounded.
//
// Example:
//
//	c := model.Criteria{
//	    ReleaseTypes:  model.NewStringSet("Album", "EP"),
//	    RangeDays:     model.RangeWeek.Days(),
//	    IncludePast:   true,
//	    IncludeFuture: true,
//	    SortKey:       model.SortReleaseDate,
//	}
type Criteria struct {
	ReleaseTypes  StringSet
	ReleaseTags   StringSet
	RangeDays     int
	IncludePast   bool
	IncludeFuture bool
	SortKey       SortKey
}

// DefaultCriteria returns criteria showing a week of past and future
// releases ordered by release date.
func DefaultCriteria() Criteria {
	return Criteria{
		ReleaseTypes:  StringSet{},
		ReleaseTags:   StringSet{},
		RangeDays:     RangeWeek.Days(),
		IncludePast:   true,
		IncludeFuture: true,
		SortKey:       SortReleaseDate,
	}
}

// StringSet is a set of facet values.
type StringSet map[string]struct{}

// NewStringSet builds a set from the given values.
func NewStringSet(values ...string) StringSet {
	s := make(StringSet, len(values))
	for _, v := range values {
		s[v] = struct{}{}
	}
	return s
}

// Has reports whether v is in the set. A nil set contains nothing.
func (s StringSet) Has(v string) bool {
	_, ok := s[v]
	return ok
}

// Toggle adds v when absent and removes it when present.
func (s StringSet) Toggle(v string) {
	if s.Has(v) {
		delete(s, v)
		return
	}
	s[v] = struct{}{}
}

// Clone returns an independent copy of the set.
func (s StringSet) Clone() StringSet {
	c := make(StringSet, len(s))
	for v := range s {
		c[v] = struct{}{}
	}
	return c
}
