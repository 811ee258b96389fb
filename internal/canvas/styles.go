package canvas

import "github.com/charmbracelet/lipgloss"

// Styles colors a rendered plot. The zero value renders plain text.
type Styles struct {
	Traces    []lipgloss.Style
	Axis      lipgloss.Style
	Muted     lipgloss.Style
	Selection lipgloss.Style

	enabled bool
}

var tracePalette = []lipgloss.Color{
	"#88C0D0",
	"#e57373",
	"#A3BE8C",
	"#ffd54f",
	"#b48ead",
	"#ff8a65",
	"#4db6ac",
	"#5E81AC",
}

// DefaultStyles returns the colored style set.
func DefaultStyles() Styles {
	s := Styles{
		Axis:      lipgloss.NewStyle().Foreground(lipgloss.Color("#81A1C1")),
		Muted:     lipgloss.NewStyle().Faint(true),
		Selection: lipgloss.NewStyle().Background(lipgloss.Color("#434C5E")),
		enabled:   true,
	}
	for _, c := range tracePalette {
		s.Traces = append(s.Traces, lipgloss.NewStyle().Foreground(c))
	}

	return s
}

func (s Styles) render(st lipgloss.Style, text string) string {
	if !s.enabled || text == "" {
		return text
	}

	return st.Render(text)
}

func (s Styles) trace(color int, text string) string {
	if color < 0 || len(s.Traces) == 0 {
		return text
	}

	return s.render(s.Traces[color%len(s.Traces)], text)
}

func (s Styles) cell(color int, selected bool, text string) string {
	if !s.enabled {
		return text
	}

	st := lipgloss.NewStyle()
	if color >= 0 && len(s.Traces) > 0 {
		st = s.Traces[color%len(s.Traces)]
	}
	if selected {
		st = s.Selection.Inherit(st)
	}

	return st.Render(text)
}
