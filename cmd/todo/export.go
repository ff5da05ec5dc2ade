package main

import (
	"io"
	"os"

	"github.com/spf13/cobra"

	"todo/internal/format"
)

func newExportCmd(a *app) *cobra.Command {
	var (
		outputPath string
		formatName string
	)

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export all tasks as JSON or YAML",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			formatter, err := format.ForName(formatName)
			if err != nil {
				return err
			}
			list, err := a.loadForUpdate(cmd.Context())
			if err != nil {
				return err
			}

			if outputPath == "" {
				return writeFormatted(cmd.OutOrStdout(), formatter, taskViews(list))
			}
			f, err := os.Create(outputPath)
			if err != nil {
				return err
			}
			return writeAndClose(f, formatter, taskViews(list))
		},
	}

	cmd.Flags().StringVarP(&outputPath, "output", "o", "", "output file (default: stdout)")
	cmd.Flags().StringVar(&formatName, "format", "json", "output format: json|yaml")

	return cmd
}

// writeAndClose writes payload and closes wc, reporting a close failure when
// the write itself succeeded.
func writeAndClose(wc io.WriteCloser, formatter format.Formatter, payload any) (err error) {
	defer func() {
		if closeErr := wc.Close(); err == nil {
			err = closeErr
		}
	}()
	return writeFormatted(wc, formatter, payload)
}
