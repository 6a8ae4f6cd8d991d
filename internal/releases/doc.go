// Package releases implements the release set processor: the pure
// transforms that turn a fetched list of fresh releases into the view a
// user browses.
//
// # Pipeline
//
// Fetched releases pass through two stages. Process runs once per fetch:
//
//	clean, facets := releases.Process(fetched)
//	// clean has duplicates removed, facets lists the filter options
//
// Apply runs on every filter or sort change:
//
//	view := releases.Apply(clean, criteria, time.Now())
//
// # Deduplication
//
// Two releases are the same when their names and artist credits are equal
// ignoring case. The first occurrence is kept:
//
//	"Waterslide, Diving Board, Ladder to the Sky" / "Jon Hopkins"
//	"Waterslide, Diving Board, Ladder To The Sky" / "Jon Hopkins"  // dropped
//
// # Purity
//
// No function in this package performs I/O, mutates its input, or fails.
// Missing optional fields are treated as absent.
package releases
