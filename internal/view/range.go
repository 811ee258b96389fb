package view

import (
	"math"
	"sort"

	"gonum.org/v1/gonum/floats"
)

// autoscaleMargin is the fraction of the data span added above and below.
const autoscaleMargin = 0.1

// Range is a closed axis interval.
type Range struct {
	Min, Max float64
}

// NewRange returns the range spanned by a and b in either order.
func NewRange(a, b float64) Range {
	if a > b {
		a, b = b, a
	}

	return Range{Min: a, Max: b}
}

// Span returns Max - Min.
func (r Range) Span() float64 {
	return r.Max - r.Min
}

// Shift returns the range moved by delta.
func (r Range) Shift(delta float64) Range {
	return Range{Min: r.Min + delta, Max: r.Max + delta}
}

// Valid reports whether the range is finite and not empty.
func (r Range) Valid() bool {
	return r.Max > r.Min && !math.IsInf(r.Min, 0) && !math.IsInf(r.Max, 0)
}

// visible returns the index interval [i, j) of the ascending axis xs that
// lies strictly inside win.
func visible(xs []float64, win Range) (int, int) {
	i := sort.Search(len(xs), func(k int) bool { return xs[k] > win.Min })
	j := sort.Search(len(xs), func(k int) bool { return xs[k] >= win.Max })
	if j < i {
		j = i
	}

	return i, j
}

// Autoscale fits a value range to the trace points whose x lies inside
// win, padded by 10 % of the span. It returns (0, 1) when no point is
// visible and widens flat data so the range is never empty.
func Autoscale(traces []Trace, win Range) Range {
	lo, hi := math.Inf(1), math.Inf(-1)

	for _, tr := range traces {
		i, j := visible(tr.X, win)
		if i >= j {
			continue
		}

		ys := tr.Y[i:j]
		lo = math.Min(lo, floats.Min(ys))
		hi = math.Max(hi, floats.Max(ys))
	}

	if math.IsInf(lo, 1) {
		return Range{Min: 0, Max: 1}
	}

	h := hi - lo
	r := Range{Min: lo - autoscaleMargin*h, Max: hi + autoscaleMargin*h}

	if r.Span() == 0 {
		d := 0.05 * math.Abs(lo)
		if d == 0 {
			d = 0.05
		}
		r = Range{Min: lo - d, Max: hi + d}
	}

	return r
}
