package main

import (
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
	"github.com/muesli/termenv"

	"todo/internal/config"
)

const clearScreen = "\x1b[2J\x1b[H"

type menuStyles struct {
	header   lipgloss.Style
	add      lipgloss.Style
	view     lipgloss.Style
	complete lipgloss.Style
	edit     lipgloss.Style
	remove   lipgloss.Style
	save     lipgloss.Style
	quit     lipgloss.Style
}

func newMenuStyles(w io.Writer, colorMode string) menuStyles {
	r := lipgloss.NewRenderer(w)
	switch colorMode {
	case config.ColorAlways:
		r.SetColorProfile(termenv.ANSI)
	case config.ColorNever:
		r.SetColorProfile(termenv.Ascii)
	}

	fg := func(color string) lipgloss.Style {
		return r.NewStyle().Foreground(lipgloss.Color(color))
	}
	return menuStyles{
		header:   fg("2").Bold(true),
		add:      fg("2"),
		view:     fg("4"),
		complete: fg("3"),
		edit:     fg("5"),
		remove:   fg("1"),
		save:     fg("6"),
		quit:     fg("1"),
	}
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	fd := f.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}
