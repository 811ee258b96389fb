package canvas

import (
	"math"
	"strconv"
)

// Ticks returns round tick values inside [lo, hi], about n of them, spaced
// by 1, 2 or 5 times a power of ten.
func Ticks(lo, hi float64, n int) []float64 {
	if !(hi > lo) || n < 1 || math.IsInf(hi-lo, 0) {
		return nil
	}

	step := niceStep((hi - lo) / float64(n))
	first := math.Ceil(lo/step) * step

	var ticks []float64
	for k := 0; ; k++ {
		v := first + float64(k)*step
		if v > hi+step*1e-9 {
			break
		}
		if math.Abs(v) < step*1e-9 {
			v = 0
		}
		ticks = append(ticks, v)
	}

	return ticks
}

func niceStep(raw float64) float64 {
	exp := math.Floor(math.Log10(raw))
	pow := math.Pow(10, exp)

	switch f := raw / pow; {
	case f <= 1:
		return pow
	case f <= 2:
		return 2 * pow
	case f <= 5:
		return 5 * pow
	default:
		return 10 * pow
	}
}

// FormatTick renders v in at most width characters.
func FormatTick(v float64, width int) string {
	s := strconv.FormatFloat(v, 'g', 6, 64)
	for prec := 5; len(s) > width && prec > 0; prec-- {
		s = strconv.FormatFloat(v, 'g', prec, 64)
	}
	if len(s) > width {
		s = s[:width]
	}

	return s
}
