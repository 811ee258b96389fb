package ui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/cwbudde/sbbviewer/internal/canvas"
)

var (
	nord3  = lipgloss.Color("#4C566A")
	nord4  = lipgloss.Color("#D8DEE9")
	nord8  = lipgloss.Color("#88C0D0")
	nord9  = lipgloss.Color("#81A1C1")
	nord11 = lipgloss.Color("#BF616A")
	nord13 = lipgloss.Color("#EBCB8B")
	nord14 = lipgloss.Color("#A3BE8C")
)

type styles struct {
	title    lipgloss.Style
	heading  lipgloss.Style
	focus    lipgloss.Style
	item     lipgloss.Style
	selected lipgloss.Style
	muted    lipgloss.Style
	status   lipgloss.Style
	err      lipgloss.Style
	plot     canvas.Styles
}

func defaultStyles() styles {
	return styles{
		title:    lipgloss.NewStyle().Bold(true).Foreground(nord8),
		heading:  lipgloss.NewStyle().Foreground(nord9),
		focus:    lipgloss.NewStyle().Bold(true).Foreground(nord13),
		item:     lipgloss.NewStyle().Foreground(nord4),
		selected: lipgloss.NewStyle().Foreground(nord14),
		muted:    lipgloss.NewStyle().Foreground(nord3),
		status:   lipgloss.NewStyle().Foreground(nord4),
		err:      lipgloss.NewStyle().Bold(true).Foreground(nord11),
		plot:     canvas.DefaultStyles(),
	}
}

// plainStyles renders without any color or attribute.
func plainStyles() styles {
	p := lipgloss.NewStyle()

	return styles{
		title:    p,
		heading:  p,
		focus:    p,
		item:     p,
		selected: p,
		muted:    p,
		status:   p,
		err:      p,
	}
}
