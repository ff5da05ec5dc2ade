package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/spf13/cobra"

	"todo/internal/models"
	"todo/internal/tasklist"
)

// menu drives the numbered interactive loop over one task list.
type menu struct {
	lines  <-chan inputLine
	out    io.Writer
	list   *tasklist.TaskList
	styles menuStyles
	clear  bool
	hold   bool // keep the last message on screen for one redraw
	save   func(*tasklist.TaskList) error
}

func runInteractive(cmd *cobra.Command, a *app) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	out := cmd.OutOrStdout()

	_ = writePlain(out, "Welcome to the To-Do List CLI Application!\n")
	list := a.loadOrNew(ctx, out)

	m := &menu{
		lines:  readLines(ctx, cmd.InOrStdin()),
		out:    out,
		list:   list,
		styles: newMenuStyles(out, a.cfg.Color),
		clear:  isTerminal(out),
		save: func(l *tasklist.TaskList) error {
			return a.save(ctx, l)
		},
	}
	return m.run(ctx)
}

// run loops until the user exits, input ends, or ctx is cancelled.
// Only an output failure is returned; task errors are reported inline.
func (m *menu) run(ctx context.Context) error {
	for {
		if err := ctx.Err(); err != nil {
			return m.println("Goodbye!")
		}

		if !m.hold {
			m.clearScreen()
		}
		m.hold = false
		m.printMenu()
		choice, ok := m.prompt(ctx, "Enter your choice: ")
		if !ok {
			return m.println("Goodbye!")
		}

		switch choice {
		case "1":
			m.addTask(ctx)
		case "2":
			m.viewTasks(ctx)
		case "3":
			m.withIndex(ctx, "Enter task number to complete: ", m.list.Complete)
		case "4":
			m.editTask(ctx)
		case "5":
			m.withIndex(ctx, "Enter task number to delete: ", m.list.Delete)
		case "6":
			if err := m.save(m.list); err != nil {
				slog.Error("save failed", "err", err)
				m.printf("Failed to save to-do list: %v\n", err)
			}
			return m.println("Goodbye!")
		case "7":
			return m.println("Goodbye!")
		default:
			m.notify("Invalid choice, please try again.")
		}
	}
}

func (m *menu) printMenu() {
	s := m.styles
	m.println(s.header.Render("To-Do List"))
	m.println(s.add.Render("1. Add a task"))
	m.println(s.view.Render("2. View tasks"))
	m.println(s.complete.Render("3. Complete a task"))
	m.println(s.edit.Render("4. Edit a task"))
	m.println(s.remove.Render("5. Delete a task"))
	m.println(s.save.Render("6. Save and exit"))
	m.println(s.quit.Render("7. Exit without saving"))
}

func (m *menu) addTask(ctx context.Context) {
	description, ok := m.prompt(ctx, "Enter task description: ")
	if !ok {
		return
	}

	rawPriority, ok := m.prompt(ctx, fmt.Sprintf("Enter task priority (%d-%d, %d is highest): ", models.PriorityMin, models.PriorityMax, models.PriorityMin))
	if !ok && ctx.Err() != nil {
		return
	}
	priority, err := models.ParsePriority(rawPriority)
	if err != nil {
		m.notify(fmt.Sprintf("Invalid priority, using %d.", priority))
	}

	rawDeadline, ok := m.prompt(ctx, "Enter task deadline (YYYY-MM-DD) or press Enter to skip: ")
	if !ok && ctx.Err() != nil {
		return
	}
	deadline, err := models.ParseDeadline(rawDeadline)
	if err != nil {
		m.notify("Invalid date format, skipping deadline.")
	}

	m.list.Add(description, priority, deadline)
	slog.Debug("task added", "index", m.list.Len(), "priority", priority)
}

func (m *menu) viewTasks(ctx context.Context) {
	m.clearScreen()
	m.println(m.styles.header.Render("Current Tasks"))
	if err := m.list.Show(m.out); err != nil {
		slog.Error("show tasks", "err", err)
	}
	m.prompt(ctx, "Press Enter to continue...")
}

func (m *menu) editTask(ctx context.Context) {
	raw, ok := m.prompt(ctx, "Enter task number to edit: ")
	if !ok {
		return
	}
	index, err := parseIndex(raw)
	if err != nil {
		m.reportInputError(err)
		return
	}
	description, ok := m.prompt(ctx, "Enter new task description: ")
	if !ok {
		return
	}
	m.reportTaskError(m.list.Edit(index, description))
}

func (m *menu) withIndex(ctx context.Context, label string, op func(int) error) {
	raw, ok := m.prompt(ctx, label)
	if !ok {
		return
	}
	index, err := parseIndex(raw)
	if err != nil {
		m.reportInputError(err)
		return
	}
	m.reportTaskError(op(index))
}

func (m *menu) reportInputError(err error) {
	var parseErr *ParseError
	if errors.As(err, &parseErr) {
		m.notify("Please enter a valid number.")
		return
	}
	m.notify(err.Error())
}

func (m *menu) reportTaskError(err error) {
	if err == nil {
		return
	}
	if errors.Is(err, tasklist.ErrTaskNotFound) {
		m.notify("Task not found.")
		return
	}
	m.notify(err.Error())
}

// inputLine is one read from the menu's input, delivered over a channel so
// a prompt can give up on cancellation while the read is still blocked.
type inputLine struct {
	text string
	err  error
}

// readLines feeds lines from r until the first read error or until ctx is
// done, then closes the channel. A read already blocked on r is abandoned.
func readLines(ctx context.Context, r io.Reader) <-chan inputLine {
	lines := make(chan inputLine, 1)
	go func() {
		defer close(lines)
		reader := bufio.NewReader(r)
		for {
			text, err := reader.ReadString('\n')
			select {
			case lines <- inputLine{text: text, err: err}:
			case <-ctx.Done():
				return
			}
			if err != nil {
				return
			}
		}
	}()
	return lines
}

// prompt writes label and reads one trimmed line. ok is false once input is
// exhausted and nothing was read, or when ctx is cancelled.
func (m *menu) prompt(ctx context.Context, label string) (string, bool) {
	m.printf("%s", label)
	select {
	case <-ctx.Done():
		m.printf("\n")
		return "", false
	case line, open := <-m.lines:
		if !open {
			return "", false
		}
		if line.err != nil && (line.text == "" || !errors.Is(line.err, io.EOF)) {
			return "", false
		}
		return strings.TrimSpace(line.text), true
	}
}

func (m *menu) clearScreen() {
	if m.clear {
		m.printf("%s", clearScreen)
	}
}

func (m *menu) notify(message string) {
	m.hold = true
	_ = m.println(message)
}

func (m *menu) println(line string) error {
	_, err := fmt.Fprintln(m.out, line)
	return err
}

func (m *menu) printf(format string, args ...any) {
	_, _ = fmt.Fprintf(m.out, format, args...)
}
