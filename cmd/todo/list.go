package main

import (
	"github.com/spf13/cobra"

	"todo/internal/format"
)

func newListCmd(a *app) *cobra.Command {
	var jsonOutput bool

	cmd := &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "Show all tasks",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			list, err := a.loadForUpdate(cmd.Context())
			if err != nil {
				return err
			}
			if jsonOutput {
				return writeFormatted(cmd.OutOrStdout(), format.JSONFormatter{}, taskViews(list))
			}
			return list.Show(cmd.OutOrStdout())
		},
	}

	cmd.Flags().BoolVar(&jsonOutput, "json", false, "output JSON")
	return cmd
}
