package releases

import (
	"time"

	"github.com/handiism/fresh-releases/internal/model"
)

// Filter returns the releases matching the criteria, in input order.
//
// A release is kept when all of the following hold:
//   - no release types are selected, or its derived type is selected
//   - no tags are selected, or it carries at least one selected tag
//   - it lies inside the date window around now
//
// The date window works on whole UTC days. A release dated after today is
// a future release and is kept only when IncludeFuture is set and it is at
// most RangeDays ahead. A release dated today or earlier is a past release
// and is kept only when IncludePast is set and it is at most RangeDays
// back. Undated releases are not restricted by the window.
func Filter(records []model.Release, c model.Criteria, now time.Time) []model.Release {
	today := startOfDay(now)
	out := make([]model.Release, 0, len(records))

	for _, r := range records {
		if matches(r, c, today) {
			out = append(out, r)
		}
	}

	return out
}

func matches(r model.Release, c model.Criteria, today time.Time) bool {
	return matchesType(r, c.ReleaseTypes) &&
		matchesTags(r, c.ReleaseTags) &&
		inWindow(r, c, today)
}

func matchesType(r model.Release, types model.StringSet) bool {
	if len(types) == 0 {
		return true
	}
	t := r.Type()
	return t != "" && types.Has(t)
}

func matchesTags(r model.Release, tags model.StringSet) bool {
	if len(tags) == 0 {
		return true
	}
	for _, tag := range r.Tags {
		if tags.Has(tag) {
			return true
		}
	}
	return false
}

func inWindow(r model.Release, c model.Criteria, today time.Time) bool {
	if !r.HasDate() {
		return true
	}

	days := DaysFrom(today, r.ReleaseDate)
	if days > 0 {
		return c.IncludeFuture && withinRange(days, c.RangeDays)
	}
	return c.IncludePast && withinRange(-days, c.RangeDays)
}

func withinRange(days, rangeDays int) bool {
	return rangeDays <= 0 || days <= rangeDays
}

// DaysFrom returns the number of whole UTC days from the day of now to the
// day of t. It is negative for days before today and zero for today.
func DaysFrom(now, t time.Time) int {
	return int(startOfDay(t).Sub(startOfDay(now)).Hours() / 24)
}

func startOfDay(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
