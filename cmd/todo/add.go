package main

import (
	"fmt"
	"log/slog"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"todo/internal/models"
	"todo/internal/tasklist"
)

type addCmdOptions struct {
	priority string
	deadline string
}

func newAddCmd(a *app) *cobra.Command {
	opts := &addCmdOptions{}
	cmd := &cobra.Command{
		Use:   "add <description>",
		Short: "Add a task",
		Args:  requireAtLeastArgs(1, "description is required"),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runAdd(cmd, a, opts, args)
		},
	}

	cmd.Flags().StringVarP(&opts.priority, "priority", "p", strconv.Itoa(models.DefaultPriority), "priority 1-5, 1 is highest")
	cmd.Flags().StringVarP(&opts.deadline, "deadline", "d", "", "deadline as YYYY-MM-DD")
	return cmd
}

func runAdd(cmd *cobra.Command, a *app, opts *addCmdOptions, args []string) error {
	description := strings.Join(args, " ")

	priority, err := models.ParsePriority(opts.priority)
	if err != nil {
		fmt.Fprintf(cmd.ErrOrStderr(), "warning: %v; using %d\n", err, priority)
	}
	deadline, err := models.ParseDeadline(opts.deadline)
	if err != nil {
		fmt.Fprintf(cmd.ErrOrStderr(), "warning: %v; skipping deadline\n", err)
	}

	var index int
	err = a.mutate(cmd.Context(), func(list *tasklist.TaskList) error {
		list.Add(description, priority, deadline)
		index = list.Len()
		return nil
	})
	if err != nil {
		return err
	}
	slog.Debug("task added", "index", index, "priority", priority)
	return writePlain(cmd.OutOrStdout(), "%d\n", index)
}
