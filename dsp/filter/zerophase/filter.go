package zerophase

import (
	"errors"
	"fmt"

	"github.com/cwbudde/sbbviewer/dsp/filter/biquad"
)

var (
	// ErrTooShort is returned when a signal is not longer than the padding
	// required by the cascade.
	ErrTooShort = errors.New("zerophase: signal too short for filter order")
	// ErrNoSections is returned by New for an empty cascade.
	ErrNoSections = errors.New("zerophase: no filter sections")
)

// Filter is a zero-phase forward/backward filter built from a biquad cascade.
// A Filter holds no signal state and may be reused for any number of calls.
type Filter struct {
	sections []biquad.Coefficients
	padLen   int
}

// New returns a Filter for the given cascade.
func New(sections []biquad.Coefficients) (*Filter, error) {
	if len(sections) == 0 {
		return nil, ErrNoSections
	}

	return &Filter{
		sections: append([]biquad.Coefficients(nil), sections...),
		padLen:   padLength(sections),
	}, nil
}

// padLength returns three times the number of filter taps, where trailing
// zero coefficients shared by every first-order section do not count.
func padLength(sections []biquad.Coefficients) int {
	zeroB2, zeroA2 := 0, 0
	for _, s := range sections {
		if s.B2 == 0 {
			zeroB2++
		}
		if s.A2 == 0 {
			zeroA2++
		}
	}

	return 3 * (2*len(sections) + 1 - min(zeroB2, zeroA2))
}

// PadLen returns the number of samples reflected onto each end of the signal.
// Apply requires len(x) > PadLen().
func (f *Filter) PadLen() int {
	return f.padLen
}

// MinLength returns the shortest signal Apply accepts.
func (f *Filter) MinLength() int {
	return f.padLen + 1
}

// Sections returns a copy of the cascade coefficients.
func (f *Filter) Sections() []biquad.Coefficients {
	return append([]biquad.Coefficients(nil), f.sections...)
}

// Apply returns the zero-phase filtered copy of x. x is not modified.
func (f *Filter) Apply(x []float64) ([]float64, error) {
	n := len(x)
	if n <= f.padLen {
		return nil, fmt.Errorf("%w: %d samples, need more than %d", ErrTooShort, n, f.padLen)
	}

	buf := oddExtend(x, f.padLen)
	chain := biquad.NewChain(f.sections)

	chain.Prime(buf[0])
	chain.ProcessBlock(buf)

	reverse(buf)
	chain.Prime(buf[0])
	chain.ProcessBlock(buf)
	reverse(buf)

	out := make([]float64, n)
	copy(out, buf[f.padLen:f.padLen+n])

	return out, nil
}

// oddExtend reflects pad samples about each end point:
// left[i] = 2*x[0] - x[pad-i], right[i] = 2*x[n-1] - x[n-2-i].
func oddExtend(x []float64, pad int) []float64 {
	n := len(x)
	out := make([]float64, n+2*pad)

	first, last := x[0], x[n-1]
	for i := range pad {
		out[i] = 2*first - x[pad-i]
		out[pad+n+i] = 2*last - x[n-2-i]
	}

	copy(out[pad:], x)

	return out
}

func reverse(x []float64) {
	for i, j := 0, len(x)-1; i < j; i, j = i+1, j-1 {
		x[i], x[j] = x[j], x[i]
	}
}
