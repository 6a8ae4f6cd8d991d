package main

import (
	"io"

	"github.com/spf13/cobra"

	"github.com/handiism/fresh-releases/internal/model"
	"github.com/handiism/fresh-releases/internal/render"
	"github.com/handiism/fresh-releases/internal/session"
)

func newFacetsCommand(ctx *commandContext) *cobra.Command {
	var (
		page   pageOptions
		asJSON bool
	)

	cmd := &cobra.Command{
		Use:   "facets",
		Short: "List the release types and tags of a page",
		Args:  cobra.NoArgs,
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

			facets := s.State().Facets
			if asJSON {
				return writeJSON(cmd, facets)
			}

			_, err = io.WriteString(cmd.OutOrStdout(), render.Facets(facets, model.StringSet{}, model.StringSet{}))
			return err
		},
	}

	page.register(cmd)
	cmd.Flags().BoolVar(&asJSON, "json", false, "Output JSON")

	return cmd
}
