// Package tasklist holds the ordered task collection and its flat-file format.
package tasklist

import (
	"fmt"
	"io"
	"time"

	"todo/internal/models"
)

// TaskList is an ordered collection of tasks addressed by 1-based index.
type TaskList struct {
	tasks []models.Task
}

// New returns an empty list.
func New() *TaskList {
	return &TaskList{}
}

// FromTasks builds a list from an existing sequence, preserving order.
func FromTasks(tasks []models.Task) *TaskList {
	l := &TaskList{tasks: make([]models.Task, 0, len(tasks))}
	l.tasks = append(l.tasks, tasks...)
	return l
}

// Len returns the number of tasks.
func (l *TaskList) Len() int {
	return len(l.tasks)
}

// Tasks returns a copy of the tasks in display order.
func (l *TaskList) Tasks() []models.Task {
	out := make([]models.Task, len(l.tasks))
	copy(out, l.tasks)
	return out
}

// Get returns the task at the given 1-based index.
func (l *TaskList) Get(index int) (models.Task, error) {
	pos, err := l.position(index)
	if err != nil {
		return models.Task{}, err
	}
	return l.tasks[pos], nil
}

// Add appends a new incomplete task. A priority outside 1-5 is stored as
// models.DefaultPriority.
func (l *TaskList) Add(description string, priority int, deadline *time.Time) {
	if !models.IsValidPriority(priority) {
		priority = models.DefaultPriority
	}
	l.tasks = append(l.tasks, models.NewTask(description, priority, deadline))
}

// Complete marks the task at the given 1-based index completed.
func (l *TaskList) Complete(index int) error {
	pos, err := l.position(index)
	if err != nil {
		return err
	}
	l.tasks[pos].Completed = true
	return nil
}

// Edit replaces the description of the task at the given 1-based index.
func (l *TaskList) Edit(index int, description string) error {
	pos, err := l.position(index)
	if err != nil {
		return err
	}
	l.tasks[pos].Description = description
	return nil
}

// Delete removes the task at the given 1-based index; later tasks shift up.
func (l *TaskList) Delete(index int) error {
	pos, err := l.position(index)
	if err != nil {
		return err
	}
	l.tasks = append(l.tasks[:pos], l.tasks[pos+1:]...)
	return nil
}

// Show writes a numbered listing of all tasks to w.
func (l *TaskList) Show(w io.Writer) error {
	if len(l.tasks) == 0 {
		_, err := fmt.Fprintln(w, "No tasks.")
		return err
	}
	for i, task := range l.tasks {
		if _, err := fmt.Fprintln(w, FormatTaskLine(i+1, task)); err != nil {
			return err
		}
	}
	return nil
}

// FormatTaskLine renders one listing line, e.g.
// "2. [x] Pay bills (priority: 1, deadline: 2025-01-01)".
func FormatTaskLine(index int, task models.Task) string {
	marker := " "
	if task.Completed {
		marker = "x"
	}
	details := fmt.Sprintf("priority: %d", task.Priority)
	if task.HasDeadline() {
		details += ", deadline: " + models.FormatDeadline(task.Deadline)
	}
	return fmt.Sprintf("%d. [%s] %s (%s)", index, marker, task.Description, details)
}

func (l *TaskList) position(index int) (int, error) {
	if index < 1 || index > len(l.tasks) {
		return 0, fmt.Errorf("%w: %d", ErrTaskNotFound, index)
	}
	return index - 1, nil
}
