// Package ui is the terminal front end of the viewer: a file picker, two
// channel lists, a filter toggle and two stacked plots that share their
// sample axis.
package ui

import (
	"time"

	"github.com/charmbracelet/bubbles/filepicker"
	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"github.com/cwbudde/sbbviewer/internal/view"
)

const (
	doubleClickWindow = 500 * time.Millisecond

	// A zoom rectangle must span at least 5 dots each way: 3 cells across
	// (2 dots each) and 2 cells down (4 dots each).
	minZoomCols = 3
	minZoomRows = 2

	defaultWidth  = 80
	defaultHeight = 24
)

// focus targets in tab order.
const (
	focusList1 = iota
	focusList2
	focusFilter
	numFocus
)

// openFileMsg asks the model to load a file.
type openFileMsg string

// drag is a rectangle selection in progress, in plot-local cells.
type drag struct {
	panel          int
	x0, y0, x1, y1 int
}

// Option configures a Model.
type Option func(*Model)

// WithLogger sets the logger. Default is a no-op logger.
func WithLogger(l *zap.Logger) Option {
	return func(m *Model) {
		if l != nil {
			m.log = l
		}
	}
}

// WithClock replaces time.Now for double-click detection.
func WithClock(now func() time.Time) Option {
	return func(m *Model) {
		m.now = now
	}
}

// WithFile loads path as soon as the program starts.
func WithFile(path string) Option {
	return func(m *Model) {
		m.initial = path
	}
}

// WithStartDir sets the directory the file picker opens in.
func WithStartDir(dir string) Option {
	return func(m *Model) {
		m.dir = dir
	}
}

// WithPlainStyles disables colors.
func WithPlainStyles() Option {
	return func(m *Model) {
		m.styles = plainStyles()
	}
}

// Model is the bubbletea model of the viewer. All state changes go through
// the session it wraps.
type Model struct {
	session *view.Session
	log     *zap.Logger
	keys    keyMap
	help    help.Model
	styles  styles
	now     func() time.Time

	lists [view.NumPanels]*channelList
	focus int

	picker  filepicker.Model
	picking bool
	dir     string
	initial string

	width, height int

	status    string
	statusErr bool

	drag      *drag
	lastRight time.Time
}

// New returns a model driving session.
func New(session *view.Session, opts ...Option) Model {
	m := Model{
		session: session,
		log:     zap.NewNop(),
		keys:    defaultKeyMap(),
		help:    help.New(),
		styles:  defaultStyles(),
		now:     time.Now,
		dir:     ".",
		width:   defaultWidth,
		height:  defaultHeight,
		status:  "press o to open a file",
	}
	for i := range m.lists {
		m.lists[i] = newChannelList(panelTitle(i), session.Channels())
	}
	for _, opt := range opts {
		opt(&m)
	}

	return m
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	if m.initial == "" {
		return nil
	}

	path := m.initial

	return func() tea.Msg { return openFileMsg(path) }
}

func panelTitle(i int) string {
	if i == 0 {
		return "Top plot"
	}

	return "Bottom plot"
}

func newPicker(dir string, height int) filepicker.Model {
	fp := filepicker.New()
	fp.AllowedTypes = []string{".sbb"}
	fp.CurrentDirectory = dir
	fp.Height = max(height, 3)

	return fp
}
