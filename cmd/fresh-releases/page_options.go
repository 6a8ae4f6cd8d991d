package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/handiism/fresh-releases/internal/config"
	"github.com/handiism/fresh-releases/internal/model"
)

// pageOptions are the flags selecting which page is fetched.
type pageOptions struct {
	user     string
	sitewide bool
	rng      string
	sort     string
	past     bool
	future   bool
}

func (o *pageOptions) register(cmd *cobra.Command) {
	f := cmd.Flags()
	f.StringVarP(&o.user, "user", "u", "", "ListenBrainz user name(s), comma-separated")
	f.BoolVar(&o.sitewide, "sitewide", false, "Show the sitewide page even when a user is configured")
	f.StringVarP(&o.rng, "range", "r", "", "Date window: week, month, three_months")
	f.StringVarP(&o.sort, "sort", "s", "", "Sort by: release_date, artist_credit_name, release_name")
	f.BoolVar(&o.past, "past", true, "Include releases up to today")
	f.BoolVar(&o.future, "future", true, "Include upcoming releases")
}

// apply returns a copy of settings with the page flags applied.
func (o *pageOptions) apply(cmd *cobra.Command, settings *config.Settings) (*config.Settings, error) {
	s := *settings
	f := cmd.Flags()

	if o.user != "" {
		s.UserName = o.user
	}
	if o.sitewide {
		s.UserName = ""
	}
	if o.rng != "" {
		s.Range = o.rng
	}
	if o.sort != "" {
		if _, err := model.ParseSortKey(o.sort); err != nil {
			return nil, err
		}
		s.Sort = o.sort
	}
	if f.Changed("past") {
		s.ShowPastReleases = o.past
	}
	if f.Changed("future") {
		s.ShowFutureReleases = o.future
	}

	if err := s.Validate(); err != nil {
		return nil, fmt.Errorf("invalid options: %w", err)
	}
	return &s, nil
}

// columnNames maps --columns values to display columns.
var columnNames = map[string]model.Column{
	"title":       model.ColumnReleaseTitle,
	"artist":      model.ColumnArtist,
	"info":        model.ColumnInformation,
	"information": model.ColumnInformation,
	"tags":        model.ColumnTags,
	"listens":     model.ColumnListens,
}

// parseColumns builds display settings showing exactly the named columns.
func parseColumns(names []string) (model.DisplaySettings, error) {
	display := model.DisplaySettings{}
	for _, name := range names {
		c, ok := columnNames[strings.ToLower(strings.TrimSpace(name))]
		if !ok {
			return nil, fmt.Errorf("unknown column %q (want title, artist, info, tags or listens)", name)
		}
		display[c] = true
	}
	return display, nil
}
