package sbb

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
)

// Reshaper turns a sample-major flat sequence into n channel rows.
//
// Implementations must fail with ErrMisaligned when len(flat) is not a
// multiple of n and otherwise return rows with row[c][k] == flat[k*n+c].
type Reshaper interface {
	Reshape(flat []float64, n int) ([][]float64, error)
}

func checkShape(flat []float64, n int) (int, error) {
	if n <= 0 {
		return 0, fmt.Errorf("%w: %d", ErrChannelCount, n)
	}

	if len(flat)%n != 0 {
		return 0, fmt.Errorf("%w: %d elements, %d channels", ErrMisaligned, len(flat), n)
	}

	return len(flat) / n, nil
}

// Interleaved deinterleaves with plain strided loops.
type Interleaved struct{}

// Reshape implements Reshaper.
func (Interleaved) Reshape(flat []float64, n int) ([][]float64, error) {
	length, err := checkShape(flat, n)
	if err != nil {
		return nil, err
	}

	rows := make([][]float64, n)
	for c := range rows {
		row := make([]float64, length)
		for k := range row {
			row[k] = flat[k*n+c]
		}
		rows[c] = row
	}

	return rows, nil
}

// Dense views the flat sequence as a length x n matrix and reads the rows of
// its transpose.
type Dense struct{}

// Reshape implements Reshaper.
func (Dense) Reshape(flat []float64, n int) ([][]float64, error) {
	length, err := checkShape(flat, n)
	if err != nil {
		return nil, err
	}

	rows := make([][]float64, n)
	if length == 0 {
		for c := range rows {
			rows[c] = []float64{}
		}

		return rows, nil
	}

	t := mat.NewDense(length, n, flat).T()
	for c := range rows {
		rows[c] = mat.Row(nil, c, t)
	}

	return rows, nil
}
