package releases

import (
	"slices"
	"strings"

	"github.com/handiism/fresh-releases/internal/model"
)

// Sort returns a copy of records ordered ascending by the given key.
//
// The sort is stable: releases with equal keys keep their relative order.
//   - SortReleaseDate compares release dates; undated releases sort last
//   - SortArtistCreditName and SortReleaseName compare the raw strings,
//     so the order is case-sensitive ("Zebra" sorts before "apple")
//
// Unknown keys sort by release date.
func Sort(records []model.Release, key model.SortKey) []model.Release {
	out := slices.Clone(records)
	slices.SortStableFunc(out, comparator(key))
	return out
}

func comparator(key model.SortKey) func(a, b model.Release) int {
	switch key {
	case model.SortArtistCreditName:
		return func(a, b model.Release) int {
			return strings.Compare(a.ArtistCreditName, b.ArtistCreditName)
		}
	case model.SortReleaseName:
		return func(a, b model.Release) int {
			return strings.Compare(a.ReleaseName, b.ReleaseName)
		}
	default:
		return compareDates
	}
}

func compareDates(a, b model.Release) int {
	switch {
	case !a.HasDate() && !b.HasDate():
		return 0
	case !a.HasDate():
		return 1
	case !b.HasDate():
		return -1
	}
	return a.ReleaseDate.Compare(b.ReleaseDate)
}
