package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/goliatone/go-cvtemplates/components/catalog"
)

func newListCmd(a *app) *cobra.Command {
	var (
		query string
		limit int
	)
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List catalog templates",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			g, err := a.gallery(cmd.Context())
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			for _, entry := range catalog.Search(g.Entries(), query, limit, catalog.NewOptions()) {
				fmt.Fprintf(out, "%2d  %s\n", entry.ID, entry.Name)
			}
			return nil
		},
	}
	cmd.Flags().StringVarP(&query, "query", "q", "", "filter by name or id")
	cmd.Flags().IntVarP(&limit, "limit", "n", 0, "maximum entries (default 40)")
	return cmd
}
