package session

import (
	"github.com/handiism/fresh-releases/internal/model"
	"github.com/handiism/fresh-releases/internal/releases"
)

// State is a snapshot of a fresh releases page.
type State struct {
	PageType model.PageType

	// Users are the user names of the personalized page, in priority
	// order. Duplicates across users keep the first user's copy.
	Users []string

	Range      model.Range
	Sort       model.SortKey
	ShowPast   bool
	ShowFuture bool

	SelectedTypes model.StringSet
	SelectedTags  model.StringSet

	Display model.DisplaySettings

	// Releases is the deduplicated set from the last successful fetch.
	Releases []model.Release

	// Facets are extracted from Releases.
	Facets releases.Facets

	// View is Releases filtered and sorted by the current criteria.
	View []model.Release

	Loading bool

	// Notification is the last raised toast, nil once dismissed.
	Notification *Notification
}

// Criteria returns the filter and sort criteria of the state.
func (s State) Criteria() model.Criteria {
	return model.Criteria{
		ReleaseTypes:  s.SelectedTypes,
		ReleaseTags:   s.SelectedTags,
		RangeDays:     s.Range.Days(),
		IncludePast:   s.ShowPast,
		IncludeFuture: s.ShowFuture,
		SortKey:       s.Sort,
	}
}

// HasUser reports whether a personalized page is available.
func (s State) HasUser() bool {
	return len(s.Users) > 0
}

// clone returns a copy that shares no mutable data with s.
// Release slices are shared; they are never modified in place.
func (s State) clone() State {
	c := s
	c.Users = append([]string(nil), s.Users...)
	c.SelectedTypes = s.SelectedTypes.Clone()
	c.SelectedTags = s.SelectedTags.Clone()
	c.Display = s.Display.Clone()
	if s.Notification != nil {
		n := *s.Notification
		c.Notification = &n
	}
	return c
}
