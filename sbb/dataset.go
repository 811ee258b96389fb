package sbb

import (
	"fmt"

	"gonum.org/v1/gonum/floats"

	"github.com/cwbudde/sbbviewer/stats"
)

// SampleName is the reserved name of the synthetic sample-index channel.
const SampleName = "sample"

// Dataset holds the named channels of one loaded file. All series, including
// the sample axis, share the same length. A Dataset is read-only.
type Dataset struct {
	names  []string
	series map[string][]float64
	sample []float64
}

// NewDataset names the first len(names) rows. Rows beyond the named ones are
// dropped. Every row must have the same length.
func NewDataset(names []string, rows [][]float64) (*Dataset, error) {
	if len(names) > len(rows) {
		return nil, fmt.Errorf("%w: %d names for %d channels", ErrNames, len(names), len(rows))
	}

	length := 0
	if len(rows) > 0 {
		length = len(rows[0])
	}

	ds := &Dataset{
		names:  append([]string(nil), names...),
		series: make(map[string][]float64, len(names)),
		sample: sampleAxis(length),
	}

	for i, name := range names {
		if name == "" || name == SampleName {
			return nil, fmt.Errorf("%w: %q", ErrNames, name)
		}
		if _, dup := ds.series[name]; dup {
			return nil, fmt.Errorf("%w: duplicate %q", ErrNames, name)
		}
		if len(rows[i]) != length {
			return nil, fmt.Errorf("%w: channel %q has %d samples, want %d", ErrMisaligned, name, len(rows[i]), length)
		}
		ds.series[name] = rows[i]
	}

	return ds, nil
}

// sampleAxis returns 1, 2, ..., length.
func sampleAxis(length int) []float64 {
	switch length {
	case 0:
		return []float64{}
	case 1:
		return []float64{1}
	default:
		return floats.Span(make([]float64, length), 1, float64(length))
	}
}

// Len returns the number of samples per channel.
func (d *Dataset) Len() int {
	return len(d.sample)
}

// Names returns the channel names in file order, without the sample axis.
func (d *Dataset) Names() []string {
	return append([]string(nil), d.names...)
}

// Series returns the values of a channel. The name "sample" returns the
// sample axis. The returned slice must not be modified.
func (d *Dataset) Series(name string) ([]float64, bool) {
	if name == SampleName {
		return d.sample, true
	}

	s, ok := d.series[name]

	return s, ok
}

// Sample returns the sample-index axis 1..Len(). It must not be modified.
func (d *Dataset) Sample() []float64 {
	return d.sample
}

// LastSample returns the last sample index, or 0 for an empty dataset.
func (d *Dataset) LastSample() float64 {
	if len(d.sample) == 0 {
		return 0
	}

	return d.sample[len(d.sample)-1]
}

// Stats returns time-domain statistics of a channel.
// It reports false for unknown channels.
func (d *Dataset) Stats(name string) (stats.Summary, bool) {
	s, ok := d.Series(name)
	if !ok {
		return stats.Summary{}, false
	}

	return stats.Summarize(s), true
}
