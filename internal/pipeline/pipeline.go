// Package pipeline prepares one channel for plotting: an optional low-pass
// filter followed by fixed-stride decimation of the series and its sample
// axis.
package pipeline

import (
	"errors"
	"fmt"

	"github.com/cwbudde/sbbviewer/dsp/decimate"
	"github.com/cwbudde/sbbviewer/dsp/filter/design/pass"
	"github.com/cwbudde/sbbviewer/dsp/filter/zerophase"
	"github.com/cwbudde/sbbviewer/internal/config"
)

// ErrDesign is returned when no filter can be designed for the parameters.
var ErrDesign = errors.New("pipeline: invalid filter parameters")

// Filter maps a series to its filtered copy of the same length.
type Filter interface {
	Apply(x []float64) ([]float64, error)
}

// Lowpass is a zero-phase Butterworth low-pass Filter.
type Lowpass struct {
	*zerophase.Filter

	cutoff, sampleRate float64
	order              int
}

// NewLowpass designs a zero-phase Butterworth low-pass filter.
func NewLowpass(cutoff, sampleRate float64, order int) (*Lowpass, error) {
	sections := pass.ButterworthLP(cutoff, order, sampleRate)
	if sections == nil {
		return nil, fmt.Errorf("%w: cutoff %v Hz, rate %v Hz, order %d", ErrDesign, cutoff, sampleRate, order)
	}

	zp, err := zerophase.New(sections)
	if err != nil {
		return nil, err
	}

	return &Lowpass{Filter: zp, cutoff: cutoff, sampleRate: sampleRate, order: order}, nil
}

// String describes the filter for status lines and logs.
func (l *Lowpass) String() string {
	return fmt.Sprintf("butterworth lowpass order %d, %g Hz @ %g Hz", l.order, l.cutoff, l.sampleRate)
}

// Pipeline filters and decimates channel series.
type Pipeline struct {
	filter Filter
	stride int
}

// New returns a Pipeline. A stride below 1 keeps every sample.
func New(f Filter, stride int) *Pipeline {
	if stride < 1 {
		stride = 1
	}

	return &Pipeline{filter: f, stride: stride}
}

// FromSettings builds the low-pass pipeline described by the settings.
func FromSettings(s *config.Settings) (*Pipeline, error) {
	lp, err := NewLowpass(s.Fcut, s.Fs, s.Order)
	if err != nil {
		return nil, err
	}

	return New(lp, s.Decim), nil
}

// Stride returns the decimation stride.
func (p *Pipeline) Stride() int {
	return p.stride
}

// Filter returns the configured filter.
func (p *Pipeline) Filter() Filter {
	return p.filter
}

// Process filters series and strides both the result and the sample axis.
// Both outputs have length ceil(len(series)/Stride()).
func (p *Pipeline) Process(sample, series []float64) (x, y []float64, err error) {
	if len(sample) != len(series) {
		return nil, nil, fmt.Errorf("pipeline: %d sample indices for %d values", len(sample), len(series))
	}

	filtered, err := p.filter.Apply(series)
	if err != nil {
		return nil, nil, err
	}

	return decimate.Stride(sample, p.stride), decimate.Stride(filtered, p.stride), nil
}
