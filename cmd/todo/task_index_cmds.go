package main

import (
	"strings"

	"github.com/spf13/cobra"

	"todo/internal/tasklist"
)

type indexMutationFunc func(list *tasklist.TaskList, index int, rest []string) error

func newDoneCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "done <n>",
		Short: "Mark a task completed",
		Args:  requireIndex,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runIndexMutation(cmd, a, args, func(list *tasklist.TaskList, index int, _ []string) error {
				return list.Complete(index)
			})
		},
	}
}

func newEditCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "edit <n> <description>",
		Short: "Replace a task's description",
		Args:  requireAtLeastArgs(2, "task number and new description are required"),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runIndexMutation(cmd, a, args, func(list *tasklist.TaskList, index int, rest []string) error {
				return list.Edit(index, strings.Join(rest, " "))
			})
		},
	}
}

func newRmCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:     "rm <n>",
		Aliases: []string{"delete"},
		Short:   "Delete a task",
		Args:    requireIndex,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runIndexMutation(cmd, a, args, func(list *tasklist.TaskList, index int, _ []string) error {
				return list.Delete(index)
			})
		},
	}
}

func runIndexMutation(cmd *cobra.Command, a *app, args []string, mutate indexMutationFunc) error {
	index, err := parseIndex(args[0])
	if err != nil {
		return err
	}
	err = a.mutate(cmd.Context(), func(list *tasklist.TaskList) error {
		return mutate(list, index, args[1:])
	})
	if err != nil {
		return err
	}
	return writePlain(cmd.OutOrStdout(), "ok\n")
}
