// Package stats summarizes a channel in the time domain.
package stats

import (
	"math"

	"gonum.org/v1/gonum/stat"
)

// Summary holds time-domain statistics of one channel.
type Summary struct {
	Count int

	Min, Max           float64
	MinIndex, MaxIndex int // first occurrence, 0-based

	Mean, StdDev float64 // StdDev is the sample standard deviation
	RMS          float64
	Peak         float64 // max(|Min|, |Max|)
	Crest        float64 // Peak / RMS, 0 when RMS is 0

	MeanCrossings int
}

// Range returns Max - Min.
func (s Summary) Range() float64 {
	return s.Max - s.Min
}

// Summarize computes the Summary of x. Empty input yields the zero Summary.
func Summarize(x []float64) Summary {
	n := len(x)
	if n == 0 {
		return Summary{}
	}

	s := Summary{Count: n, Min: x[0], Max: x[0]}

	for i, v := range x {
		if v > s.Max {
			s.Max, s.MaxIndex = v, i
		}
		if v < s.Min {
			s.Min, s.MinIndex = v, i
		}
	}

	s.Mean, s.StdDev = stat.MeanStdDev(x, nil)
	if n == 1 {
		s.StdDev = 0
	}

	s.RMS = RMS(x)
	s.Peak = math.Max(math.Abs(s.Min), math.Abs(s.Max))
	if s.RMS > 0 {
		s.Crest = s.Peak / s.RMS
	}

	s.MeanCrossings = crossings(x, s.Mean)

	return s
}

// RMS returns the root-mean-square of x, or 0 for empty input.
func RMS(x []float64) float64 {
	if len(x) == 0 {
		return 0
	}

	var sumSq float64
	for _, v := range x {
		sumSq += v * v
	}

	return math.Sqrt(sumSq / float64(len(x)))
}

// crossings counts sign changes of x - level between consecutive samples.
// Samples exactly at level do not start or end a crossing.
func crossings(x []float64, level float64) int {
	var count int

	prev := 0.0
	for _, v := range x {
		d := v - level
		if d == 0 {
			continue
		}
		if prev*d < 0 {
			count++
		}
		prev = d
	}

	return count
}
