package main

import (
	"errors"
	"fmt"
	"io/fs"

	"todo/internal/tasklist"
)

func formatCLIError(err error) []string {
	if err == nil {
		return nil
	}

	lines := []string{err.Error()}

	var loadErr *tasklist.LoadError
	if errors.As(err, &loadErr) {
		if loadErr.Line > 0 {
			lines = append(lines, fmt.Sprintf("hint: fix line %d of %s or move the file aside to start a new list.", loadErr.Line, loadErr.Path))
		}
		if errors.Is(err, fs.ErrPermission) {
			lines = append(lines, "hint: check read permission on the task file.")
		}
		return uniqueLines(lines)
	}

	var saveErr *tasklist.SaveError
	if errors.As(err, &saveErr) {
		lines = append(lines, "hint: check that the directory of the task file exists and is writable.")
		return uniqueLines(lines)
	}

	if errors.Is(err, tasklist.ErrTaskNotFound) {
		lines = append(lines, "hint: run `todo list` to see task numbers.")
		return uniqueLines(lines)
	}

	var parseErr *ParseError
	if errors.As(err, &parseErr) {
		lines = append(lines, "hint: task numbers are whole numbers starting at 1.")
		return uniqueLines(lines)
	}

	return uniqueLines(lines)
}

func uniqueLines(lines []string) []string {
	seen := make(map[string]struct{}, len(lines))
	out := make([]string, 0, len(lines))
	for _, line := range lines {
		if line == "" {
			continue
		}
		if _, ok := seen[line]; ok {
			continue
		}
		seen[line] = struct{}{}
		out = append(out, line)
	}
	return out
}
