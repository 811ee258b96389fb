package ui

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/cwbudde/sbbviewer/internal/canvas"
	"github.com/cwbudde/sbbviewer/internal/view"
)

const (
	minSidebar  = 20
	footerLines = 2

	// sidebar rows above the first list
	titleRow  = 0
	fileRow   = 1
	openRow   = 2
	filterRow = 3
	list1Row  = 5
)

// geometry is where things are on screen. View and the mouse handlers share
// it so clicks land where items are drawn.
type geometry struct {
	sidebar    int
	rows       int
	listRows   [view.NumPanels]int
	listHeight int
	plotTop    [view.NumPanels]int
	plots      [view.NumPanels]canvas.Plot
}

func (m Model) geometry() geometry {
	items := m.lists[0].items
	avail := max(m.height-footerLines, 2)

	g := geometry{
		sidebar: sidebarWidth(items),
		rows:    avail,
	}

	// Both lists share what is left below the fixed rows; each needs a
	// blank line and a title above its items.
	g.listHeight = min(len(items), max((avail-list1Row-2)/2, 1))
	g.listRows[0] = list1Row
	g.listRows[1] = list1Row + g.listHeight + 2

	top := avail / 2
	w := max(m.width-g.sidebar, 1)

	g.plotTop = [view.NumPanels]int{0, top}
	g.plots[0] = canvas.Plot{Width: w, Height: top, Styles: m.styles.plot}
	g.plots[1] = canvas.Plot{Width: w, Height: avail - top, XAxis: true, Styles: m.styles.plot}

	if m.drag != nil {
		d := m.drag
		g.plots[d.panel].Selection = &canvas.Rect{X0: d.x0, Y0: d.y0, X1: d.x1, Y1: d.y1}
	}

	return g
}

// listAt maps a sidebar row to a list and the visible line within it.
func (g geometry) listAt(y int) (list, line int, ok bool) {
	if y >= g.rows {
		return 0, 0, false
	}

	for i, top := range g.listRows {
		if d := y - top; d >= 0 && d < g.listHeight {
			return i, d, true
		}
	}

	return 0, 0, false
}

// plotAt maps a screen cell to a panel and plot-local coordinates.
func (g geometry) plotAt(x, y int) (panel, lx, ly int, ok bool) {
	if x < g.sidebar {
		return 0, 0, 0, false
	}

	for i, p := range g.plots {
		ly := y - g.plotTop[i]
		if ly >= 0 && ly < p.Height {
			return i, x - g.sidebar, ly, true
		}
	}

	return 0, 0, 0, false
}

func sidebarWidth(items []string) int {
	w := minSidebar
	for _, it := range items {
		w = max(w, len([]rune(it))+6)
	}

	return w
}

// View implements tea.Model.
func (m Model) View() string {
	if m.picking {
		return lipgloss.JoinVertical(lipgloss.Left,
			m.styles.title.Render("Open .sbb file"),
			m.styles.muted.Render(m.picker.CurrentDirectory),
			m.picker.View(),
			m.styles.muted.Render("enter open • esc cancel"),
		)
	}

	g := m.geometry()

	sidebar := m.sidebar(g)
	if len(sidebar) > g.rows {
		sidebar = sidebar[:g.rows]
	}
	left := lipgloss.NewStyle().Width(g.sidebar).Render(strings.Join(sidebar, "\n"))

	x := m.session.XRange()
	plots := make([]string, 0, view.NumPanels)
	for i, p := range g.plots {
		plots = append(plots, p.Render(m.session.Panel(i), x))
	}
	right := strings.Join(plots, "\n")

	return lipgloss.JoinVertical(lipgloss.Left,
		lipgloss.JoinHorizontal(lipgloss.Top, left, right),
		m.statusLine(),
		m.help.View(m.keys),
	)
}

func (m Model) sidebar(g geometry) []string {
	lines := make([]string, max(g.listRows[1]+g.listHeight, filterRow+1))

	lines[titleRow] = m.styles.title.Render("SBB viewer")

	name := "no file loaded"
	if src := m.session.Source(); src != "" {
		name = filepath.Base(src)
	}
	lines[fileRow] = m.styles.muted.Render(truncate(name, g.sidebar-1))
	lines[openRow] = m.styles.heading.Render("[ Load SBB file ]")

	box := "[ ]"
	if m.session.Filtered() {
		box = "[x]"
	}
	label := box + " Filter"
	if m.focus == focusFilter {
		lines[filterRow] = "> " + m.styles.focus.Render(label)
	} else {
		lines[filterRow] = "  " + m.styles.item.Render(label)
	}

	for i, l := range m.lists {
		copy(lines[g.listRows[i]-1:], l.lines(m.focus == i, m.styles, g.listHeight))
	}

	return lines
}

func (m Model) statusLine() string {
	x := m.session.XRange()
	filter := "off"
	if m.session.Filtered() {
		filter = "on"
	}

	info := m.styles.muted.Render(fmt.Sprintf("x %s … %s │ filter %s",
		canvas.FormatTick(x.Min, 12), canvas.FormatTick(x.Max, 12), filter))

	msg := m.styles.status.Render(m.status)
	if m.statusErr {
		msg = m.styles.err.Render(m.status)
	}

	return msg + "  " + info
}

func truncate(s string, n int) string {
	r := []rune(s)
	if n < 1 || len(r) <= n {
		return s
	}

	return string(r[:n-1]) + "…"
}
