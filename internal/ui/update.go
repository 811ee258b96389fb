package ui

import (
	"fmt"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"github.com/cwbudde/sbbviewer/internal/view"
)

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.help.Width = msg.Width
		m.picker.Height = max(msg.Height-4, 3)
		return m, nil
	case openFileMsg:
		m.load(string(msg))
		return m, nil
	}

	if m.picking {
		return m.updatePicker(msg)
	}

	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.MouseMsg:
		return m.handleMouse(msg)
	}

	return m, nil
}

func (m Model) updatePicker(msg tea.Msg) (tea.Model, tea.Cmd) {
	if k, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(k, m.keys.Cancel):
			m.picking = false
			m.setStatus("open cancelled")
			return m, nil
		case k.String() == "ctrl+c":
			return m, tea.Quit
		}
	}

	var cmd tea.Cmd
	m.picker, cmd = m.picker.Update(msg)

	if ok, path := m.picker.DidSelectFile(msg); ok {
		m.picking = false
		m.load(path)
		return m, cmd
	}

	if ok, path := m.picker.DidSelectDisabledFile(msg); ok {
		m.setError(fmt.Errorf("%s is not an .sbb file", filepath.Base(path)))
		return m, cmd
	}

	return m, cmd
}

func (m Model) openPicker() (tea.Model, tea.Cmd) {
	m.picker = newPicker(m.dir, m.height-4)
	m.picking = true

	return m, m.picker.Init()
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.Open):
		return m.openPicker()
	case key.Matches(msg, m.keys.Filter):
		m.toggleFilter()
	case key.Matches(msg, m.keys.Reset):
		m.reset()
	case key.Matches(msg, m.keys.PanLeft):
		m.session.Scroll(-1)
	case key.Matches(msg, m.keys.PanRight):
		m.session.Scroll(1)
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
	case key.Matches(msg, m.keys.Cancel):
		m.drag = nil
	case key.Matches(msg, m.keys.Focus):
		if msg.String() == "shift+tab" {
			m.focus = (m.focus + numFocus - 1) % numFocus
		} else {
			m.focus = (m.focus + 1) % numFocus
		}
	case key.Matches(msg, m.keys.Up):
		if l := m.focusedList(); l != nil {
			l.Move(-1)
		}
	case key.Matches(msg, m.keys.Down):
		if l := m.focusedList(); l != nil {
			l.Move(1)
		}
	case key.Matches(msg, m.keys.Toggle):
		if l := m.focusedList(); l != nil {
			l.Toggle()
			m.applySelection(m.focus)
		} else {
			m.toggleFilter()
		}
	case key.Matches(msg, m.keys.Select):
		if l := m.focusedList(); l != nil {
			l.SelectCursor()
			m.applySelection(m.focus)
		} else {
			m.toggleFilter()
		}
	}

	return m, nil
}

func (m Model) focusedList() *channelList {
	if m.focus < len(m.lists) {
		return m.lists[m.focus]
	}

	return nil
}

func (m Model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	g := m.geometry()

	if m.drag != nil {
		return m.updateDrag(msg, g), nil
	}

	if msg.X < g.sidebar {
		if msg.Action != tea.MouseActionPress {
			return m, nil
		}
		switch msg.Button {
		case tea.MouseButtonLeft:
			return m.clickSidebar(msg, g)
		case tea.MouseButtonWheelUp:
			if i, _, ok := g.listAt(msg.Y); ok {
				m.lists[i].Scroll(-1, g.listHeight)
			}
		case tea.MouseButtonWheelDown:
			if i, _, ok := g.listAt(msg.Y); ok {
				m.lists[i].Scroll(1, g.listHeight)
			}
		}
		return m, nil
	}

	panel, lx, ly, ok := g.plotAt(msg.X, msg.Y)
	if !ok {
		return m, nil
	}
	layout := g.plots[panel].Layout()

	switch {
	case msg.Action != tea.MouseActionPress:
	case msg.Button == tea.MouseButtonWheelUp:
		if layout.Contains(lx, ly) {
			m.session.Scroll(1)
		}
	case msg.Button == tea.MouseButtonWheelDown:
		if layout.Contains(lx, ly) {
			m.session.Scroll(-1)
		}
	case msg.Button == tea.MouseButtonRight:
		now := m.now()
		if !m.lastRight.IsZero() && now.Sub(m.lastRight) <= doubleClickWindow {
			m.lastRight = time.Time{}
			m.reset()
		} else {
			m.lastRight = now
		}
	case msg.Button == tea.MouseButtonLeft:
		if layout.Contains(lx, ly) {
			m.drag = &drag{panel: panel, x0: lx, y0: ly, x1: lx, y1: ly}
		}
	}

	return m, nil
}

func (m Model) updateDrag(msg tea.MouseMsg, g geometry) Model {
	d := *m.drag
	layout := g.plots[d.panel].Layout()
	d.x1, d.y1 = layout.Clamp(msg.X-g.sidebar, msg.Y-g.plotTop[d.panel])

	switch msg.Action {
	case tea.MouseActionMotion:
		m.drag = &d
	case tea.MouseActionRelease:
		m.drag = nil
		m.zoom(d, g)
	}

	return m
}

func (m *Model) zoom(d drag, g geometry) {
	if abs(d.x1-d.x0) < minZoomCols || abs(d.y1-d.y0) < minZoomRows {
		m.log.Debug("zoom rectangle too small", zap.Int("cols", abs(d.x1-d.x0)), zap.Int("rows", abs(d.y1-d.y0)))
		return
	}

	layout := g.plots[d.panel].Layout()
	xr, yr := m.session.XRange(), m.session.Panel(d.panel).YRange()
	ax, ay := layout.ToData(d.x0, d.y0, xr, yr)
	bx, by := layout.ToData(d.x1, d.y1, xr, yr)

	if err := m.session.Zoom(d.panel, view.NewRange(ax, bx), view.NewRange(ay, by)); err != nil {
		m.setError(err)
	}
}

func (m Model) clickSidebar(msg tea.MouseMsg, g geometry) (tea.Model, tea.Cmd) {
	if msg.Y >= g.rows {
		return m, nil
	}

	switch msg.Y {
	case openRow:
		return m.openPicker()
	case filterRow:
		m.focus = focusFilter
		m.toggleFilter()
		return m, nil
	}

	i, line, ok := g.listAt(msg.Y)
	if !ok {
		return m, nil
	}

	l := m.lists[i]
	if item := l.window(g.listHeight) + line; item < len(l.items) {
		m.focus = i
		l.Click(item, msg.Ctrl, msg.Shift)
		m.applySelection(i)
	}

	return m, nil
}

func (m *Model) applySelection(panel int) {
	if err := m.session.Select(panel, m.lists[panel].Selection()); err != nil {
		m.setError(err)
		return
	}
	m.reportPanelErrors()
}

func (m *Model) toggleFilter() {
	m.session.SetFiltered(!m.session.Filtered())
	if m.session.Filtered() {
		m.setStatus("filter on")
	} else {
		m.setStatus("filter off")
	}
	m.reportPanelErrors()
}

func (m *Model) reset() {
	m.drag = nil
	m.session.Reset()
}

func (m *Model) load(path string) {
	if err := m.session.Load(path); err != nil {
		m.setError(fmt.Errorf("load failed: %w", err))
		return
	}

	m.dir = filepath.Dir(path)
	m.setStatus(fmt.Sprintf("loaded %s, %d samples", filepath.Base(path), m.session.Dataset().Len()))
	m.reportPanelErrors()
}

func (m *Model) reportPanelErrors() {
	for i := 0; i < view.NumPanels; i++ {
		if err := m.session.Panel(i).Err(); err != nil {
			m.setError(err)
			return
		}
	}
}

func (m *Model) setStatus(s string) {
	m.status = s
	m.statusErr = false
}

func (m *Model) setError(err error) {
	m.status = err.Error()
	m.statusErr = true
}

func abs(v int) int {
	if v < 0 {
		return -v
	}

	return v
}
