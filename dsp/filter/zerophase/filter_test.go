package zerophase

import (
	"errors"
	"math"
	"testing"

	"github.com/cwbudde/sbbviewer/dsp/filter/biquad"
	"github.com/cwbudde/sbbviewer/dsp/filter/design/pass"
	"github.com/cwbudde/sbbviewer/internal/testutil"
	"github.com/cwbudde/sbbviewer/stats"
)

func mustLowpass(t *testing.T, fc, fs float64, order int) *Filter {
	t.Helper()
	f, err := New(pass.ButterworthLP(fc, order, fs))
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return f
}

func TestNew_Empty(t *testing.T) {
	if _, err := New(nil); !errors.Is(err, ErrNoSections) {
		t.Fatalf("err=%v, want ErrNoSections", err)
	}
}

func TestPadLen(t *testing.T) {
	tests := []struct {
		order int
		want  int
	}{
		{1, 6},
		{2, 9},
		{3, 12},
		{4, 15},
		{5, 18},
	}
	for _, tt := range tests {
		f := mustLowpass(t, 10, 100, tt.order)
		if f.PadLen() != tt.want {
			t.Fatalf("order %d: PadLen=%d, want %d", tt.order, f.PadLen(), tt.want)
		}
		if f.MinLength() != tt.want+1 {
			t.Fatalf("order %d: MinLength=%d, want %d", tt.order, f.MinLength(), tt.want+1)
		}
	}
}

func TestApply_TooShort(t *testing.T) {
	f := mustLowpass(t, 10, 100, 2)
	for _, n := range []int{0, 1, 5, 9} {
		out, err := f.Apply(make([]float64, n))
		if !errors.Is(err, ErrTooShort) {
			t.Fatalf("len %d: err=%v, want ErrTooShort", n, err)
		}
		if out != nil {
			t.Fatalf("len %d: expected nil output", n)
		}
	}

	if _, err := f.Apply(make([]float64, 10)); err != nil {
		t.Fatalf("len 10: unexpected error %v", err)
	}
}

func TestApply_ConstantIsPreserved(t *testing.T) {
	for _, order := range []int{1, 2, 3, 4} {
		f := mustLowpass(t, 5, 100, order)
		in := testutil.DC(-4.5, 200)
		out, err := f.Apply(in)
		if err != nil {
			t.Fatalf("order %d: %v", order, err)
		}
		testutil.RequireSliceNearlyEqual(t, out, in, 1e-9)
	}
}

func TestApply_DoesNotModifyInput(t *testing.T) {
	f := mustLowpass(t, 10, 100, 2)
	in := testutil.DeterministicNoise(7, 1, 64)
	orig := append([]float64(nil), in...)

	out, err := f.Apply(in)
	if err != nil {
		t.Fatal(err)
	}
	if len(out) != len(in) {
		t.Fatalf("len=%d, want %d", len(out), len(in))
	}
	testutil.RequireSliceNearlyEqual(t, in, orig, 0)
}

func TestApply_PassbandSineHasNoPhaseShift(t *testing.T) {
	const fs, fc = 100.0, 10.0
	f := mustLowpass(t, fc, fs, 2)

	in := testutil.DeterministicSine(1, fs, 1, 1000)
	out, err := f.Apply(in)
	if err != nil {
		t.Fatal(err)
	}

	// Away from the edges the output tracks the input sample for sample.
	testutil.RequireSliceNearlyEqual(t, out[100:900], in[100:900], 1e-3)
}

func TestApply_StopbandIsAttenuated(t *testing.T) {
	const fs, fc = 100.0, 5.0
	f := mustLowpass(t, fc, fs, 2)

	in := testutil.DeterministicSine(40, fs, 1, 1000)
	out, err := f.Apply(in)
	if err != nil {
		t.Fatal(err)
	}
	testutil.RequireFinite(t, out)

	// Second-order Butterworth applied twice: |H(40 Hz)|^2 is far below -40 dB.
	if rms := stats.RMS(out[100:900]); rms > 0.01 {
		t.Fatalf("stopband RMS %v, want < 0.01", rms)
	}
}

func TestApply_MatchesSquaredMagnitude(t *testing.T) {
	const fs, fc, f0 = 200.0, 20.0, 15.0
	sections := pass.ButterworthLP(fc, 2, fs)
	f, err := New(sections)
	if err != nil {
		t.Fatal(err)
	}

	in := testutil.DeterministicSine(f0, fs, 1, 4000)
	out, err := f.Apply(in)
	if err != nil {
		t.Fatal(err)
	}

	gain := math.Pow(10, biquad.NewChain(sections).MagnitudeDB(f0, fs)/10)
	want := gain / math.Sqrt2
	if got := stats.RMS(out[500:3500]); math.Abs(got-want) > 1e-3 {
		t.Fatalf("RMS %v, want %v", got, want)
	}
}

func TestOddExtend(t *testing.T) {
	got := oddExtend([]float64{1, 2, 4, 7}, 2)
	// left: 2*1-4, 2*1-2; right: 2*7-4, 2*7-2
	want := []float64{-2, 0, 1, 2, 4, 7, 10, 12}
	testutil.RequireSliceNearlyEqual(t, got, want, 0)
}

func TestSections_ReturnsCopy(t *testing.T) {
	f := mustLowpass(t, 10, 100, 2)
	s := f.Sections()
	s[0].B0 = 42
	if f.Sections()[0].B0 == 42 {
		t.Fatal("Sections exposed internal slice")
	}
}
