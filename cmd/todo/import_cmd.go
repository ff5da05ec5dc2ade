package main

import (
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"todo/internal/models"
	"todo/internal/tasklist"
)

func newImportCmd(a *app) *cobra.Command {
	var dryRun bool

	cmd := &cobra.Command{
		Use:   "import <file.md>",
		Short: "Add tasks from a markdown checklist",
		Long:  "Each - or * list item becomes a task. Optional YAML front matter sets priority, deadline and completed for every item; [x] and [ ] boxes override completed.",
		Args:  requireExactlyArgs(1, "markdown file is required"),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := os.ReadFile(args[0])
			if err != nil {
				return err
			}

			frontMatter, items, err := parseMarkdown(string(data))
			if err != nil {
				return fmt.Errorf("parse %s: %w", args[0], err)
			}
			if len(items) == 0 {
				return errors.New("no list items found in input file")
			}
			defaults, err := frontMatterDefaults(frontMatter)
			if err != nil {
				return err
			}

			tasks := make([]models.Task, 0, len(items))
			for _, item := range items {
				tasks = append(tasks, defaults.task(item))
			}

			if dryRun {
				for i, task := range tasks {
					if err := writePlain(cmd.OutOrStdout(), "%s\n", tasklist.FormatTaskLine(i+1, task)); err != nil {
						return err
					}
				}
				return nil
			}

			err = a.mutate(cmd.Context(), func(list *tasklist.TaskList) error {
				for _, task := range tasks {
					list.Add(task.Description, task.Priority, task.Deadline)
					if task.Completed {
						if err := list.Complete(list.Len()); err != nil {
							return err
						}
					}
				}
				return nil
			})
			if err != nil {
				return err
			}
			slog.Debug("markdown imported", "file", args[0], "tasks", len(tasks))
			return writePlain(cmd.OutOrStdout(), "imported: %d\n", len(tasks))
		},
	}

	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "print the tasks without saving")
	return cmd
}
