package main

import (
	"context"
	"errors"
	"io"
	"io/fs"
	"log/slog"

	"todo/internal/config"
	"todo/internal/store"
	"todo/internal/tasklist"
)

// app carries what every command needs to reach the task list.
type app struct {
	cfg      *config.Config
	filePath string
}

func (a *app) path() string {
	if a.filePath != "" {
		return a.filePath
	}
	return a.cfg.DataPath()
}

func (a *app) backend() tasklist.Backend {
	if a.cfg.Backend == config.BackendSQLite {
		return store.Backend{}
	}
	return tasklist.TextBackend{}
}

// loadOrNew loads the list and falls back to an empty one on any load error.
func (a *app) loadOrNew(ctx context.Context, out io.Writer) *tasklist.TaskList {
	list, err := a.backend().Load(ctx, a.path())
	if err == nil {
		slog.Debug("task list loaded", "path", a.path(), "backend", a.backend().Name(), "tasks", list.Len())
		return list
	}
	if errors.Is(err, fs.ErrNotExist) {
		slog.Debug("task file not found", "path", a.path())
	} else {
		slog.Warn("task file unreadable; starting fresh", "path", a.path(), "err", err)
	}
	_ = writePlain(out, "Creating a new to-do list.\n")
	return tasklist.New()
}

// loadForUpdate treats a missing file as an empty list but refuses to
// continue from a malformed one, so one-shot commands never overwrite it.
func (a *app) loadForUpdate(ctx context.Context) (*tasklist.TaskList, error) {
	list, err := a.backend().Load(ctx, a.path())
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return tasklist.New(), nil
		}
		return nil, err
	}
	return list, nil
}

func (a *app) save(ctx context.Context, list *tasklist.TaskList) error {
	if err := a.backend().Save(ctx, a.path(), list); err != nil {
		return err
	}
	slog.Debug("task list saved", "path", a.path(), "backend", a.backend().Name(), "tasks", list.Len())
	return nil
}

// mutate loads the list, applies fn and saves the result.
func (a *app) mutate(ctx context.Context, fn func(*tasklist.TaskList) error) error {
	list, err := a.loadForUpdate(ctx)
	if err != nil {
		return err
	}
	if err := fn(list); err != nil {
		return err
	}
	return a.save(ctx, list)
}
