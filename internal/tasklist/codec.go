package tasklist

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"todo/internal/models"
)

const (
	fieldSeparator = '|'
	fieldCount     = 4

	maxLineBytes = 1024 * 1024
)

// Load reads a task file written by Save. A missing or malformed file yields
// a *LoadError; no partial list is returned.
func Load(path string) (*TaskList, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, &LoadError{Path: path, Err: err}
	}
	defer f.Close()

	list, err := Decode(f)
	if err != nil {
		var loadErr *LoadError
		if errors.As(err, &loadErr) {
			loadErr.Path = path
			return nil, loadErr
		}
		return nil, &LoadError{Path: path, Err: err}
	}
	return list, nil
}

// Save writes every task to path, replacing the file in one rename.
func (l *TaskList) Save(path string) error {
	if err := writeFileAtomic(path, l.Encode); err != nil {
		return &SaveError{Path: path, Err: err}
	}
	return nil
}

// Decode parses the line format: description|priority|deadline|completed.
// Blank lines are skipped.
func Decode(r io.Reader) (*TaskList, error) {
	list := New()
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineBytes)
	lineNum := 0
	for scanner.Scan() {
		lineNum++
		line := strings.TrimRight(scanner.Text(), "\r")
		if strings.TrimSpace(line) == "" {
			continue
		}
		task, err := decodeLine(line)
		if err != nil {
			return nil, &LoadError{Line: lineNum, Err: err}
		}
		list.tasks = append(list.tasks, task)
	}
	if err := scanner.Err(); err != nil {
		return nil, &LoadError{Err: fmt.Errorf("reading input: %w", err)}
	}
	return list, nil
}

// Encode writes one line per task.
func (l *TaskList) Encode(w io.Writer) error {
	bw := bufio.NewWriter(w)
	for _, task := range l.tasks {
		if _, err := bw.WriteString(encodeLine(task)); err != nil {
			return err
		}
		if err := bw.WriteByte('\n'); err != nil {
			return err
		}
	}
	return bw.Flush()
}

func encodeLine(task models.Task) string {
	fields := []string{
		escapeField(task.Description),
		strconv.Itoa(task.Priority),
		models.FormatDeadline(task.Deadline),
		strconv.FormatBool(task.Completed),
	}
	return strings.Join(fields, string(fieldSeparator))
}

func decodeLine(line string) (models.Task, error) {
	fields, err := splitFields(line)
	if err != nil {
		return models.Task{}, err
	}
	if len(fields) != fieldCount {
		return models.Task{}, fmt.Errorf("expected %d fields, got %d", fieldCount, len(fields))
	}

	priority, err := strconv.Atoi(fields[1])
	if err != nil {
		return models.Task{}, fmt.Errorf("invalid priority: %q", fields[1])
	}
	if !models.IsValidPriority(priority) {
		return models.Task{}, fmt.Errorf("priority out of range: %d", priority)
	}
	deadline, err := models.ParseDeadline(fields[2])
	if err != nil {
		return models.Task{}, err
	}
	completed, err := strconv.ParseBool(fields[3])
	if err != nil {
		return models.Task{}, fmt.Errorf("invalid completed flag: %q", fields[3])
	}

	return models.Task{
		Description: fields[0],
		Priority:    priority,
		Deadline:    deadline,
		Completed:   completed,
	}, nil
}

func escapeField(value string) string {
	var b strings.Builder
	b.Grow(len(value))
	// Escaped characters are all ASCII, so walking bytes leaves any
	// non-UTF-8 content untouched.
	for i := 0; i < len(value); i++ {
		c := value[i]
		switch c {
		case '\\':
			b.WriteString(`\\`)
		case fieldSeparator:
			b.WriteString(`\|`)
		case '\n':
			b.WriteString(`\n`)
		case '\r':
			b.WriteString(`\r`)
		default:
			b.WriteByte(c)
		}
	}
	return b.String()
}

// splitFields splits on unescaped separators and unescapes each field.
func splitFields(line string) ([]string, error) {
	var (
		fields  []string
		current strings.Builder
		escaped bool
	)
	for i := 0; i < len(line); i++ {
		c := line[i]
		if escaped {
			switch c {
			case '\\', fieldSeparator:
				current.WriteByte(c)
			case 'n':
				current.WriteByte('\n')
			case 'r':
				current.WriteByte('\r')
			default:
				return nil, fmt.Errorf("invalid escape sequence \\%c", c)
			}
			escaped = false
			continue
		}
		switch c {
		case '\\':
			escaped = true
		case fieldSeparator:
			fields = append(fields, current.String())
			current.Reset()
		default:
			current.WriteByte(c)
		}
	}
	if escaped {
		return nil, errors.New("dangling escape at end of line")
	}
	return append(fields, current.String()), nil
}

func writeFileAtomic(path string, write func(io.Writer) error) error {
	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+".tmp-*")
	if err != nil {
		return err
	}
	tmpPath := tmp.Name()
	defer func() {
		if err != nil {
			_ = os.Remove(tmpPath)
		}
	}()

	if err = write(tmp); err != nil {
		_ = tmp.Close()
		return err
	}
	if err = tmp.Chmod(0o644); err != nil {
		_ = tmp.Close()
		return err
	}
	if err = tmp.Close(); err != nil {
		return err
	}
	err = os.Rename(tmpPath, path)
	return err
}
