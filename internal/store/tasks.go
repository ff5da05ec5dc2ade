package store

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"todo/internal/models"
)

type rowScanner interface {
	Scan(dest ...any) error
}

// ListTasks returns all tasks in display order.
func (s *Store) ListTasks(ctx context.Context) ([]models.Task, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT description, priority, deadline, completed
		FROM tasks ORDER BY position ASC
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	tasks := []models.Task{}
	for rows.Next() {
		task, err := scanTask(rows)
		if err != nil {
			return nil, err
		}
		tasks = append(tasks, task)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return tasks, nil
}

// ReplaceTasks swaps the stored sequence for tasks in one transaction.
func (s *Store) ReplaceTasks(ctx context.Context, tasks []models.Task) (err error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	if _, err = tx.ExecContext(ctx, "DELETE FROM tasks"); err != nil {
		return err
	}

	stmt, err := tx.PrepareContext(ctx, `
		INSERT INTO tasks (position, description, priority, deadline, completed)
		VALUES (?, ?, ?, ?, ?)
	`)
	if err != nil {
		return err
	}
	defer stmt.Close()

	for i, task := range tasks {
		if _, err = stmt.ExecContext(ctx, i, task.Description, task.Priority, nullDate(task.Deadline), task.Completed); err != nil {
			return fmt.Errorf("insert task %d: %w", i+1, err)
		}
	}

	if _, err = tx.ExecContext(ctx,
		"INSERT INTO saves (saved_at, task_count) VALUES (?, ?)",
		time.Now().UTC().Format(time.RFC3339), len(tasks),
	); err != nil {
		return err
	}

	return tx.Commit()
}

// SaveCount returns how many times the sequence has been replaced.
func (s *Store) SaveCount(ctx context.Context) (int, error) {
	var count int
	err := s.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM saves").Scan(&count)
	return count, err
}

func scanTask(row rowScanner) (models.Task, error) {
	var (
		task     models.Task
		deadline sql.NullString
	)
	if err := row.Scan(&task.Description, &task.Priority, &deadline, &task.Completed); err != nil {
		return models.Task{}, err
	}
	if deadline.Valid {
		parsed, err := models.ParseDeadline(deadline.String)
		if err != nil {
			return models.Task{}, err
		}
		task.Deadline = parsed
	}
	return task, nil
}

func nullDate(value *time.Time) any {
	if value == nil {
		return nil
	}
	return models.FormatDeadline(value)
}
