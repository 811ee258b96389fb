package view

// Mode is the state of one plot panel.
type Mode int

const (
	// ModeEmpty means no channel is selected.
	ModeEmpty Mode = iota
	// ModeRaw shows the selected channels unfiltered.
	ModeRaw
	// ModeFiltered shows the selected channels filtered and decimated.
	ModeFiltered
)

func (m Mode) String() string {
	switch m {
	case ModeEmpty:
		return "empty"
	case ModeRaw:
		return "raw"
	case ModeFiltered:
		return "filtered"
	default:
		return "unknown"
	}
}

// Trace is one plotted channel. X is ascending.
type Trace struct {
	Name string
	X, Y []float64
}

// Panel is the state of one plot.
type Panel struct {
	selection []string
	mode      Mode
	traces    []Trace
	y         Range
	err       error
}

func newPanel() *Panel {
	return &Panel{y: Range{Min: 0, Max: 1}}
}

// Selection returns the selected channel names in channel order.
func (p *Panel) Selection() []string {
	return append([]string(nil), p.selection...)
}

// Selected reports whether name is selected.
func (p *Panel) Selected(name string) bool {
	for _, s := range p.selection {
		if s == name {
			return true
		}
	}

	return false
}

// Mode returns the panel state.
func (p *Panel) Mode() Mode {
	return p.mode
}

// Traces returns the traces to draw, in channel order.
func (p *Panel) Traces() []Trace {
	return p.traces
}

// Legend returns the names of the drawn traces.
func (p *Panel) Legend() []string {
	names := make([]string, len(p.traces))
	for i, tr := range p.traces {
		names[i] = tr.Name
	}

	return names
}

// YRange returns the value-axis window.
func (p *Panel) YRange() Range {
	return p.y
}

// Err returns the error of the last redraw, for channels that could not be
// filtered. It is nil when every selected channel was drawn.
func (p *Panel) Err() error {
	return p.err
}
