// Package decimate reduces the number of plotted points by keeping every
// k-th sample of a series.
//
// No anti-alias filtering is applied here; callers that need it low-pass
// the series first.
package decimate

// Stride returns x[0], x[k], x[2k], ... as a new slice of length
// ceil(len(x)/k). A stride below 1 is treated as 1, which returns a copy of x.
func Stride[T any](x []T, k int) []T {
	if k < 1 {
		k = 1
	}

	out := make([]T, 0, Len(len(x), k))
	for i := 0; i < len(x); i += k {
		out = append(out, x[i])
	}

	return out
}

// Len returns the length Stride produces for an n-element input.
func Len(n, k int) int {
	if n <= 0 {
		return 0
	}

	if k < 1 {
		k = 1
	}

	return (n + k - 1) / k
}
