package store

import (
	"context"
	"errors"
	"fmt"
	"os"

	"todo/internal/tasklist"
)

// Backend persists task lists in a SQLite file.
type Backend struct{}

var _ tasklist.Backend = Backend{}

func (Backend) Name() string { return "sqlite" }

// Load reads the task sequence. A missing database is reported as a
// LoadError wrapping fs.ErrNotExist rather than created empty.
func (Backend) Load(ctx context.Context, path string) (*tasklist.TaskList, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, &tasklist.LoadError{Path: path, Err: err}
	}
	if info.IsDir() {
		return nil, &tasklist.LoadError{Path: path, Err: errors.New("is a directory")}
	}

	st, err := Open(path)
	if err != nil {
		return nil, &tasklist.LoadError{Path: path, Err: err}
	}
	defer st.Close()

	tasks, err := st.ListTasks(ctx)
	if err != nil {
		return nil, &tasklist.LoadError{Path: path, Err: fmt.Errorf("list tasks: %w", err)}
	}
	return tasklist.FromTasks(tasks), nil
}

// Save replaces the stored sequence with the list's tasks.
func (Backend) Save(ctx context.Context, path string, list *tasklist.TaskList) error {
	st, err := Open(path)
	if err != nil {
		return &tasklist.SaveError{Path: path, Err: err}
	}
	defer st.Close()

	if err := st.ReplaceTasks(ctx, list.Tasks()); err != nil {
		return &tasklist.SaveError{Path: path, Err: err}
	}
	return nil
}
