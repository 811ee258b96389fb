package view

import (
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/cwbudde/sbbviewer/sbb"
)

// NumPanels is the number of stacked plots.
const NumPanels = 2

const defaultPanStep = 1000

var (
	// ErrPanel is returned for a panel index outside [0, NumPanels).
	ErrPanel = errors.New("view: no such panel")
	// ErrEmptyZoom is returned for a zoom rectangle without area.
	ErrEmptyZoom = errors.New("view: zoom rectangle is empty")
)

// Loader reads a dataset from disk.
type Loader interface {
	ReadFile(path string) (*sbb.Dataset, error)
}

// Processor turns a channel into a filtered, decimated trace.
type Processor interface {
	Process(sample, series []float64) (x, y []float64, err error)
}

// Option configures a Session.
type Option func(*Session)

// WithLogger sets the session logger. Default is a no-op logger.
func WithLogger(l *zap.Logger) Option {
	return func(s *Session) {
		if l != nil {
			s.log = l
		}
	}
}

// WithPanStep sets the sample-axis shift of one scroll step.
func WithPanStep(step float64) Option {
	return func(s *Session) {
		if step > 0 {
			s.panStep = step
		}
	}
}

// Session is the viewer's application state. It is not safe for concurrent
// use; the UI event loop owns it.
type Session struct {
	channels []string
	loader   Loader
	proc     Processor
	log      *zap.Logger
	panStep  float64

	data     *sbb.Dataset
	source   string
	filtered bool
	x        Range
	panels   [NumPanels]*Panel
	cache    map[string]Trace
}

// NewSession returns an empty session for the configured channel set.
func NewSession(channels []string, loader Loader, proc Processor, opts ...Option) *Session {
	s := &Session{
		channels: append([]string(nil), channels...),
		loader:   loader,
		proc:     proc,
		log:      zap.NewNop(),
		panStep:  defaultPanStep,
		x:        Range{Min: 0, Max: 1},
		cache:    make(map[string]Trace),
	}
	for i := range s.panels {
		s.panels[i] = newPanel()
	}
	for _, opt := range opts {
		opt(s)
	}

	return s
}

// Channels returns the configured channel names.
func (s *Session) Channels() []string {
	return append([]string(nil), s.channels...)
}

// Dataset returns the loaded dataset, or nil.
func (s *Session) Dataset() *sbb.Dataset {
	return s.data
}

// Source returns the path of the loaded file.
func (s *Session) Source() string {
	return s.source
}

// Filtered reports whether the filter is on.
func (s *Session) Filtered() bool {
	return s.filtered
}

// PanStep returns the scroll step in samples.
func (s *Session) PanStep() float64 {
	return s.panStep
}

// XRange returns the sample-axis window shared by all panels.
func (s *Session) XRange() Range {
	return s.x
}

// Panel returns panel i. It panics for an index outside [0, NumPanels).
func (s *Session) Panel(i int) *Panel {
	return s.panels[i]
}

// Load reads path and makes it the current dataset. On failure the error is
// logged and returned and the session is left exactly as it was.
func (s *Session) Load(path string) error {
	ds, err := s.loader.ReadFile(path)
	if err != nil {
		s.log.Error("load failed", zap.String("path", path), zap.Error(err))
		return err
	}

	s.SetDataset(ds, path)
	s.log.Info("dataset loaded",
		zap.String("path", path),
		zap.Int("samples", ds.Len()),
		zap.Int("channels", len(ds.Names())),
	)

	return nil
}

// SetDataset replaces the dataset, shows all of it and redraws both panels.
func (s *Session) SetDataset(ds *sbb.Dataset, source string) {
	s.data = ds
	s.source = source
	s.cache = make(map[string]Trace)
	s.x = Range{Min: 0, Max: ds.LastSample()}
	s.redrawAll()
}

// Select replaces the selection of a panel. Unknown names are ignored and
// the selection is kept in channel order.
func (s *Session) Select(panel int, names []string) error {
	if panel < 0 || panel >= NumPanels {
		return fmt.Errorf("%w: %d", ErrPanel, panel)
	}

	want := make(map[string]bool, len(names))
	for _, n := range names {
		want[n] = true
	}

	p := s.panels[panel]
	p.selection = make([]string, 0, len(want))
	for _, ch := range s.channels {
		if want[ch] {
			p.selection = append(p.selection, ch)
		}
	}

	s.redraw(p)
	s.log.Debug("selection changed",
		zap.Int("panel", panel),
		zap.Strings("channels", p.selection),
		zap.Stringer("mode", p.mode),
	)

	return nil
}

// SetFiltered switches the filter and redraws both panels.
func (s *Session) SetFiltered(on bool) {
	s.filtered = on
	s.redrawAll()
	s.log.Debug("filter toggled", zap.Bool("on", on))
}

// Pan shifts the shared sample window by delta samples.
func (s *Session) Pan(delta float64) {
	s.x = s.x.Shift(delta)
}

// Scroll pans by the configured step: forward for positive steps, back for
// negative ones.
func (s *Session) Scroll(steps int) {
	s.Pan(float64(steps) * s.panStep)
}

// Zoom shows the rectangle x by y in a panel. The sample window is shared,
// so the other panel follows along x and keeps its value window.
func (s *Session) Zoom(panel int, x, y Range) error {
	if panel < 0 || panel >= NumPanels {
		return fmt.Errorf("%w: %d", ErrPanel, panel)
	}

	x = NewRange(x.Min, x.Max)
	y = NewRange(y.Min, y.Max)
	if !x.Valid() || !y.Valid() {
		return ErrEmptyZoom
	}

	s.x = x
	s.panels[panel].y = y

	return nil
}

// Reset shows the whole dataset: the sample window returns to
// (0, last sample) and both value axes are fitted to the data.
func (s *Session) Reset() {
	if s.data == nil {
		s.x = Range{Min: 0, Max: 1}
		for _, p := range s.panels {
			p.y = Range{Min: 0, Max: 1}
		}

		return
	}

	s.x = Range{Min: 0, Max: s.data.LastSample()}
	for _, p := range s.panels {
		p.y = Autoscale(p.traces, s.x)
	}
}

func (s *Session) redrawAll() {
	for _, p := range s.panels {
		s.redraw(p)
	}
}

// redraw rebuilds one panel's traces for the current selection and filter
// state. The sample window is left alone.
func (s *Session) redraw(p *Panel) {
	switch {
	case len(p.selection) == 0:
		p.mode = ModeEmpty
	case s.filtered:
		p.mode = ModeFiltered
	default:
		p.mode = ModeRaw
	}

	if s.data == nil {
		return
	}

	p.traces = make([]Trace, 0, len(p.selection))
	p.err = nil

	for _, name := range p.selection {
		tr, err := s.trace(name)
		if err != nil {
			p.err = errors.Join(p.err, fmt.Errorf("%s: %w", name, err))
			s.log.Warn("channel not drawn", zap.String("channel", name), zap.Error(err))
			continue
		}
		p.traces = append(p.traces, tr)
	}

	p.y = Autoscale(p.traces, s.x)
}

func (s *Session) trace(name string) (Trace, error) {
	series, ok := s.data.Series(name)
	if !ok {
		return Trace{}, fmt.Errorf("channel %q not in dataset", name)
	}

	if !s.filtered {
		return Trace{Name: name, X: s.data.Sample(), Y: series}, nil
	}

	if tr, ok := s.cache[name]; ok {
		return tr, nil
	}

	x, y, err := s.proc.Process(s.data.Sample(), series)
	if err != nil {
		return Trace{}, err
	}

	tr := Trace{Name: name, X: x, Y: y}
	s.cache[name] = tr

	return tr, nil
}
