package main

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/cobra"

	ioutils "github.com/handiism/fresh-releases/internal/io"
	"github.com/handiism/fresh-releases/internal/model"
	"github.com/handiism/fresh-releases/internal/render"
	"github.com/handiism/fresh-releases/internal/session"
)

type releaseJSON struct {
	ReleaseName      string   `json:"release_name"`
	ArtistCreditName string   `json:"artist_credit_name"`
	ReleaseDate      string   `json:"release_date,omitempty"`
	Type             string   `json:"type,omitempty"`
	Tags             []string `json:"tags"`
	ListenCount      int      `json:"listen_count"`
	ReleaseMBID      string   `json:"release_mbid,omitempty"`
	CoverArtURL      string   `json:"cover_art_url,omitempty"`
	PlayerURL        string   `json:"player_url,omitempty"`
	ArtistURL        string   `json:"artist_url,omitempty"`
}

func newListCommand(ctx *commandContext) *cobra.Command {
	var (
		page    pageOptions
		types   []string
		tags    []string
		columns []string
		asJSON  bool
		output  string
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List fresh releases",
		Long: `List fresh releases as a table.

Without --user the sitewide page is fetched. Type and tag filters keep a
release when it matches any of the given values.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			settings, err := page.apply(cmd, ctx.settings)
			if err != nil {
				return err
			}

			s := session.New(ctx.client(), settings, session.WithLogger(ctx.logger()))
			defer s.Close()

			if err := s.Refresh(cmd.Context()); err != nil {
				return err
			}

			s.SelectTypes(types...)
			s.SelectTags(tags...)

			state := s.State()
			now := time.Now()

			display := state.Display
			if cmd.Flags().Changed("columns") {
				if display, err = parseColumns(columns); err != nil {
					return err
				}
			}

			if output != "" {
				var data []byte
				if asJSON {
					if data, err = json.MarshalIndent(toReleaseJSON(state.View), "", "  "); err != nil {
						return err
					}
				} else {
					data = []byte(render.Table(state.View, display, state.Sort, render.Options{Now: now}))
				}
				path := reportPath(output, state, now)
				if err := ioutils.WriteFile(cmd.Context(), path, data); err != nil {
					return err
				}
				ctx.logger().Infow("report written", "path", path, "releases", len(state.View))
				return nil
			}

			if asJSON {
				return writeJSON(cmd, toReleaseJSON(state.View))
			}
			return render.Write(cmd.OutOrStdout(), state.View, display, state.Sort, now)
		},
	}

	page.register(cmd)
	cmd.Flags().StringSliceVarP(&types, "type", "t", nil, "Only show these release types (repeatable)")
	cmd.Flags().StringSliceVar(&tags, "tag", nil, "Only show releases with one of these tags (repeatable)")
	cmd.Flags().StringSliceVar(&columns, "columns", nil, "Columns to show: title, artist, info, tags, listens")
	cmd.Flags().BoolVar(&asJSON, "json", false, "Output JSON")
	cmd.Flags().StringVarP(&output, "output", "o", "", "Write to this file, or to a generated file name inside this directory")

	return cmd
}

func toReleaseJSON(view []model.Release) []releaseJSON {
	out := make([]releaseJSON, 0, len(view))
	for _, r := range view {
		item := releaseJSON{
			ReleaseName:      r.ReleaseName,
			ArtistCreditName: r.ArtistCreditName,
			Type:             r.Type(),
			Tags:             r.Tags,
			ListenCount:      r.ListenCount,
			ReleaseMBID:      r.ReleaseMBID,
			CoverArtURL:      r.CoverArtURL(),
			PlayerURL:        r.PlayerURL(),
			ArtistURL:        r.ArtistURL(),
		}
		if item.Tags == nil {
			item.Tags = []string{}
		}
		if r.HasDate() {
			item.ReleaseDate = r.ReleaseDate.Format(time.DateOnly)
		}
		out = append(out, item)
	}
	return out
}

// reportPath resolves --output: an existing directory receives a file
// named after the page and the day.
func reportPath(output string, state session.State, now time.Time) string {
	info, err := os.Stat(output)
	if err != nil || !info.IsDir() {
		return output
	}

	page := "sitewide"
	if state.PageType == model.PageTypeUser {
		page = strings.Join(state.Users, ",")
	}
	name := ioutils.SanitizeFileName(fmt.Sprintf("fresh-releases-%s-%s.txt", page, now.Format(time.DateOnly)))
	return filepath.Join(output, name)
}
