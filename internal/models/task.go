package models

import "time"

// Task represents a single to-do entry.
type Task struct {
	Description string     `json:"description"`
	Priority    int        `json:"priority"`
	Deadline    *time.Time `json:"deadline,omitempty"`
	Completed   bool       `json:"completed"`
}

// NewTask returns an incomplete task.
func NewTask(description string, priority int, deadline *time.Time) Task {
	return Task{
		Description: description,
		Priority:    priority,
		Deadline:    cloneDate(deadline),
	}
}

// HasDeadline reports whether the task carries a deadline.
func (t Task) HasDeadline() bool {
	return t.Deadline != nil
}

// Equal compares tasks field by field, treating deadlines as calendar dates.
func (t Task) Equal(other Task) bool {
	if t.Description != other.Description || t.Priority != other.Priority || t.Completed != other.Completed {
		return false
	}
	if t.Deadline == nil || other.Deadline == nil {
		return t.Deadline == nil && other.Deadline == nil
	}
	return FormatDeadline(t.Deadline) == FormatDeadline(other.Deadline)
}

func cloneDate(d *time.Time) *time.Time {
	if d == nil {
		return nil
	}
	y, m, day := d.Date()
	out := time.Date(y, m, day, 0, 0, 0, 0, time.UTC)
	return &out
}
