package main

import (
	"fmt"
	"io"

	"todo/internal/format"
	"todo/internal/models"
	"todo/internal/tasklist"
)

// taskView is the export shape of a task; deadlines are plain dates.
type taskView struct {
	Index       int    `json:"index" yaml:"index"`
	Description string `json:"description" yaml:"description"`
	Priority    int    `json:"priority" yaml:"priority"`
	Deadline    string `json:"deadline,omitempty" yaml:"deadline,omitempty"`
	Completed   bool   `json:"completed" yaml:"completed"`
}

func writePlain(w io.Writer, format string, args ...any) error {
	_, err := fmt.Fprintf(w, format, args...)
	return err
}

func writeFormatted(w io.Writer, formatter format.Formatter, payload any) error {
	return formatter.Write(w, payload)
}

func taskViews(list *tasklist.TaskList) []taskView {
	tasks := list.Tasks()
	out := make([]taskView, 0, len(tasks))
	for i, task := range tasks {
		out = append(out, taskView{
			Index:       i + 1,
			Description: task.Description,
			Priority:    task.Priority,
			Deadline:    models.FormatDeadline(task.Deadline),
			Completed:   task.Completed,
		})
	}
	return out
}
