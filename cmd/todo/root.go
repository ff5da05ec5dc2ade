package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"todo/internal/config"
)

func newRootCmd(cfg *config.Config) *cobra.Command {
	a := &app{cfg: cfg}

	cmd := &cobra.Command{
		Use:           "todo",
		Short:         "A simple to-do list CLI application",
		Long:          "Todo keeps a prioritized task list in a flat file. Run without a subcommand for the interactive menu.",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if warning := configureLoggerForCLI(cmd.ErrOrStderr(), cfg.LogLevel); warning != "" {
				fmt.Fprintln(cmd.ErrOrStderr(), warning)
			}
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInteractive(cmd, a)
		},
	}

	cmd.Version = version
	cmd.PersistentFlags().StringVarP(&a.filePath, "file", "f", "", fmt.Sprintf("task file (default %q)", cfg.DataPath()))

	cmd.AddCommand(
		newAddCmd(a),
		newListCmd(a),
		newDoneCmd(a),
		newEditCmd(a),
		newRmCmd(a),
		newImportCmd(a),
		newExportCmd(a),
		newMigrateCmd(a),
		newConfigCmd(cfg),
	)

	return cmd
}
