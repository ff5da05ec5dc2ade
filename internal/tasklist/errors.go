package tasklist

import (
	"errors"
	"fmt"
)

// ErrTaskNotFound is returned when a 1-based index does not name a task.
var ErrTaskNotFound = errors.New("task not found")

// LoadError reports a task file that is missing or malformed.
type LoadError struct {
	Path string
	Line int // 1-based line of the offending record, 0 when not line-specific
	Err  error
}

func (e *LoadError) Error() string {
	switch {
	case e.Path != "" && e.Line > 0:
		return fmt.Sprintf("load %s: line %d: %v", e.Path, e.Line, e.Err)
	case e.Line > 0:
		return fmt.Sprintf("load: line %d: %v", e.Line, e.Err)
	case e.Path != "":
		return fmt.Sprintf("load %s: %v", e.Path, e.Err)
	default:
		return fmt.Sprintf("load: %v", e.Err)
	}
}

// Unwrap returns the underlying error.
func (e *LoadError) Unwrap() error {
	return e.Err
}

// SaveError reports a failure to persist the task list.
type SaveError struct {
	Path string
	Err  error
}

func (e *SaveError) Error() string {
	return fmt.Sprintf("save %s: %v", e.Path, e.Err)
}

// Unwrap returns the underlying error.
func (e *SaveError) Unwrap() error {
	return e.Err
}
