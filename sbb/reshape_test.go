package sbb

import (
	"errors"
	"fmt"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/cwbudde/sbbviewer/internal/testutil"
)

func reshapers() map[string]Reshaper {
	return map[string]Reshaper{
		"interleaved": Interleaved{},
		"dense":       Dense{},
	}
}

func TestReshape_SampleMajorLayout(t *testing.T) {
	// Three channels, four samples: channel c of sample k is 10*c + k.
	flat := []float64{
		0, 10, 20,
		1, 11, 21,
		2, 12, 22,
		3, 13, 23,
	}
	want := [][]float64{
		{0, 1, 2, 3},
		{10, 11, 12, 13},
		{20, 21, 22, 23},
	}

	for name, r := range reshapers() {
		t.Run(name, func(t *testing.T) {
			rows, err := r.Reshape(flat, 3)
			if err != nil {
				t.Fatal(err)
			}
			if diff := cmp.Diff(want, rows); diff != "" {
				t.Fatalf("Reshape mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestReshape_EqualLengthsForAlignedBuffers(t *testing.T) {
	for name, r := range reshapers() {
		for n := 1; n <= 7; n++ {
			for length := 0; length <= 12; length++ {
				t.Run(fmt.Sprintf("%s/n=%d/len=%d", name, n, length), func(t *testing.T) {
					flat := testutil.Ramp(0, 1, n*length)
					rows, err := r.Reshape(flat, n)
					if err != nil {
						t.Fatal(err)
					}
					if len(rows) != n {
						t.Fatalf("rows=%d, want %d", len(rows), n)
					}
					for c, row := range rows {
						if len(row) != length {
							t.Fatalf("row %d: len=%d, want %d", c, len(row), length)
						}
						for k, v := range row {
							if v != flat[k*n+c] {
								t.Fatalf("row %d sample %d: %v, want %v", c, k, v, flat[k*n+c])
							}
						}
					}
				})
			}
		}
	}
}

func TestReshape_Misaligned(t *testing.T) {
	for name, r := range reshapers() {
		for n := 2; n <= 6; n++ {
			for extra := 1; extra < n; extra++ {
				flat := make([]float64, 3*n+extra)
				rows, err := r.Reshape(flat, n)
				if !errors.Is(err, ErrMisaligned) {
					t.Fatalf("%s n=%d extra=%d: err=%v, want ErrMisaligned", name, n, extra, err)
				}
				if rows != nil {
					t.Fatalf("%s: expected no rows on failure", name)
				}
			}
		}
	}
}

func TestReshape_InvalidChannelCount(t *testing.T) {
	for name, r := range reshapers() {
		if _, err := r.Reshape([]float64{1, 2}, 0); !errors.Is(err, ErrChannelCount) {
			t.Fatalf("%s: err=%v, want ErrChannelCount", name, err)
		}
	}
}

func TestReshape_BackendsAgree(t *testing.T) {
	flat := testutil.DeterministicNoise(3, 10, 5*200)
	a, err := Interleaved{}.Reshape(flat, 5)
	if err != nil {
		t.Fatal(err)
	}
	b, err := Dense{}.Reshape(flat, 5)
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff(a, b); diff != "" {
		t.Fatalf("backends disagree (-interleaved +dense):\n%s", diff)
	}
}
