package pipeline

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cwbudde/sbbviewer/dsp/filter/zerophase"
	"github.com/cwbudde/sbbviewer/internal/config"
	"github.com/cwbudde/sbbviewer/internal/testutil"
)

type scaleFilter float64

func (s scaleFilter) Apply(x []float64) ([]float64, error) {
	out := make([]float64, len(x))
	for i, v := range x {
		out[i] = v * float64(s)
	}
	return out, nil
}

func TestNewLowpass_Invalid(t *testing.T) {
	_, err := NewLowpass(60, 100, 2)
	assert.ErrorIs(t, err, ErrDesign)

	_, err = NewLowpass(10, 100, 0)
	assert.ErrorIs(t, err, ErrDesign)
}

func TestLowpass_String(t *testing.T) {
	lp, err := NewLowpass(20, 1000, 2)
	require.NoError(t, err)
	assert.Equal(t, "butterworth lowpass order 2, 20 Hz @ 1000 Hz", lp.String())
}

func TestProcess_DecimatedLengthIsCeil(t *testing.T) {
	for _, stride := range []int{1, 2, 3, 7, 10} {
		for _, n := range []int{1, 9, 10, 11, 100, 101} {
			p := New(scaleFilter(2), stride)
			sample := testutil.Ramp(1, 1, n)
			series := testutil.Ramp(0, 0.5, n)

			x, y, err := p.Process(sample, series)
			require.NoError(t, err)

			want := (n + stride - 1) / stride
			assert.Len(t, x, want, "stride %d n %d", stride, n)
			assert.Len(t, y, want, "stride %d n %d", stride, n)
			assert.Equal(t, 1.0, x[0])
			if len(x) > 1 {
				assert.Equal(t, float64(1+stride), x[1])
			}
		}
	}
}

func TestProcess_StrideOneKeepsFullFilteredSeries(t *testing.T) {
	lp, err := NewLowpass(5, 100, 2)
	require.NoError(t, err)
	p := New(lp, 1)

	series := testutil.DeterministicNoise(11, 1, 300)
	x, y, err := p.Process(testutil.Ramp(1, 1, 300), series)
	require.NoError(t, err)

	full, err := lp.Apply(series)
	require.NoError(t, err)
	testutil.RequireSliceNearlyEqual(t, y, full, 0)
	assert.Len(t, x, 300)
}

func TestProcess_TooShort(t *testing.T) {
	lp, err := NewLowpass(5, 100, 2)
	require.NoError(t, err)

	_, _, err = New(lp, 4).Process([]float64{1, 2, 3}, []float64{1, 2, 3})
	assert.True(t, errors.Is(err, zerophase.ErrTooShort))
}

func TestProcess_LengthMismatch(t *testing.T) {
	_, _, err := New(scaleFilter(1), 1).Process([]float64{1, 2}, []float64{1})
	assert.Error(t, err)
}

func TestNew_ClampsStride(t *testing.T) {
	assert.Equal(t, 1, New(scaleFilter(1), 0).Stride())
	assert.Equal(t, 1, New(scaleFilter(1), -3).Stride())
}

func TestFromSettings(t *testing.T) {
	s := &config.Settings{Signals: []string{"a"}, N: 1, Decim: 5, Fs: 500, Fcut: 10, Order: 2}
	p, err := FromSettings(s)
	require.NoError(t, err)
	assert.Equal(t, 5, p.Stride())

	lp, ok := p.Filter().(*Lowpass)
	require.True(t, ok)
	assert.Equal(t, 9, lp.PadLen())
}
