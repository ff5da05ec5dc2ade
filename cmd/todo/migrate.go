package main

import (
	"errors"

	"github.com/spf13/cobra"

	"todo/internal/config"
	"todo/internal/format"
	"todo/internal/store"
)

type migrateReport struct {
	store.MigrationStatus `yaml:",inline"`
	Saves                 int `json:"saves" yaml:"saves"`
}

func newMigrateCmd(a *app) *cobra.Command {
	var formatName string

	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Apply pending SQLite schema migrations and report the schema version",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if a.cfg.Backend != config.BackendSQLite {
				return errors.New("migrate requires backend = \"sqlite\"")
			}
			formatter, err := format.ForName(formatName)
			if err != nil {
				return err
			}

			st, err := store.Open(a.path())
			if err != nil {
				return err
			}
			defer st.Close()

			status, err := st.MigrationStatus(cmd.Context())
			if err != nil {
				return err
			}
			saves, err := st.SaveCount(cmd.Context())
			if err != nil {
				return err
			}
			return writeFormatted(cmd.OutOrStdout(), formatter, migrateReport{MigrationStatus: *status, Saves: saves})
		},
	}

	cmd.Flags().StringVar(&formatName, "format", "yaml", "output format: json|yaml")
	return cmd
}
