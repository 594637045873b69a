package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

func newCategoriesCmd(c *cli) *cobra.Command {
	return &cobra.Command{
		Use:   "categories",
		Short: "List the document categories",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(tw, "ID\tTITLE\tDESCRIPTION")
			for _, cat := range c.svc.ListCategories(cmd.Context()) {
				fmt.Fprintf(tw, "%s\t%s\t%s\n", cat.ID, cat.Title, cat.Description)
			}
			return tw.Flush()
		},
	}
}
