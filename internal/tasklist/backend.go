package tasklist

import "context"

// Backend persists a TaskList at a path.
type Backend interface {
	Name() string
	Load(ctx context.Context, path string) (*TaskList, error)
	Save(ctx context.Context, path string, list *TaskList) error
}

// TextBackend stores tasks in the line-oriented text format.
type TextBackend struct{}

var _ Backend = TextBackend{}

func (TextBackend) Name() string { return "text" }

func (TextBackend) Load(_ context.Context, path string) (*TaskList, error) {
	return Load(path)
}

func (TextBackend) Save(_ context.Context, path string, list *TaskList) error {
	return list.Save(path)
}
