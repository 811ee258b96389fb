package view

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/cwbudde/sbbviewer/dsp/decimate"
	"github.com/cwbudde/sbbviewer/internal/testutil"
	"github.com/cwbudde/sbbviewer/sbb"
)

var channels = []string{"speed", "temp", "load"}

// doubler scales by two and keeps every second sample.
type doubler struct {
	calls int
	fail  map[int]bool
}

func (d *doubler) Process(sample, series []float64) ([]float64, []float64, error) {
	d.calls++
	if d.fail[len(series)] {
		return nil, nil, errors.New("too short")
	}

	x := decimate.Stride(sample, 2)
	y := decimate.Stride(series, 2)
	for i := range y {
		y[i] *= 2
	}

	return x, y, nil
}

func newTestSession(t *testing.T, proc Processor, opts ...Option) (*Session, *observer.ObservedLogs) {
	t.Helper()

	core, logs := observer.New(zapcore.DebugLevel)
	loader, err := sbb.NewLoader(channels, 3)
	require.NoError(t, err)

	opts = append([]Option{WithLogger(zap.New(core))}, opts...)

	return NewSession(channels, loader, proc, opts...), logs
}

// writeRun stores 10 samples: speed 0..9, temp flat 5, load 100..109.
func writeRun(t *testing.T) string {
	t.Helper()

	speed := testutil.Ramp(0, 1, 10)
	temp := testutil.DC(5, 10)
	load := testutil.Ramp(100, 1, 10)

	return testutil.WriteSBB(t, "run.sbb", testutil.Interleave(speed, temp, load))
}

func TestNewSession_Empty(t *testing.T) {
	s, _ := newTestSession(t, &doubler{})

	assert.Nil(t, s.Dataset())
	assert.Equal(t, Range{Min: 0, Max: 1}, s.XRange())
	assert.Equal(t, float64(defaultPanStep), s.PanStep())
	for i := 0; i < NumPanels; i++ {
		p := s.Panel(i)
		assert.Equal(t, ModeEmpty, p.Mode())
		assert.Empty(t, p.Traces())
		assert.Equal(t, Range{Min: 0, Max: 1}, p.YRange())
	}
}

func TestSession_SelectWithoutData(t *testing.T) {
	s, _ := newTestSession(t, &doubler{})

	require.NoError(t, s.Select(0, []string{"speed"}))
	assert.Equal(t, ModeRaw, s.Panel(0).Mode())
	assert.Empty(t, s.Panel(0).Traces())

	s.SetFiltered(true)
	assert.Equal(t, ModeFiltered, s.Panel(0).Mode())
	assert.Equal(t, ModeEmpty, s.Panel(1).Mode())
}

func TestSession_Load(t *testing.T) {
	s, logs := newTestSession(t, &doubler{})
	require.NoError(t, s.Select(0, []string{"speed"}))
	require.NoError(t, s.Select(1, []string{"temp"}))

	path := writeRun(t)
	require.NoError(t, s.Load(path))

	assert.Equal(t, path, s.Source())
	assert.Equal(t, 10, s.Dataset().Len())
	assert.Equal(t, Range{Min: 0, Max: 10}, s.XRange())

	p := s.Panel(0)
	require.Len(t, p.Traces(), 1)
	assert.Equal(t, []string{"speed"}, p.Legend())
	assert.Equal(t, testutil.Ramp(0, 1, 10), p.Traces()[0].Y)
	// Samples 1..9 are strictly inside (0, 10): speed 0..8.
	assert.InDelta(t, -0.8, p.YRange().Min, 1e-12)
	assert.InDelta(t, 8.8, p.YRange().Max, 1e-12)

	flat := s.Panel(1).YRange()
	assert.InDelta(t, 4.75, flat.Min, 1e-12)
	assert.InDelta(t, 5.25, flat.Max, 1e-12)

	assert.Equal(t, 1, logs.FilterMessage("dataset loaded").Len())
}

func TestSession_LoadFailureKeepsState(t *testing.T) {
	s, logs := newTestSession(t, &doubler{})
	require.NoError(t, s.Select(0, []string{"speed"}))
	require.NoError(t, s.Load(writeRun(t)))
	require.NoError(t, s.Zoom(0, Range{Min: 2, Max: 6}, Range{Min: -1, Max: 1}))

	before := s.Dataset()
	beforeSrc := s.Source()
	beforeTraces := s.Panel(0).Traces()

	bad := testutil.WriteSBB(t, "bad.sbb", []float64{1, 2, 3, 4})
	err := s.Load(bad)
	require.ErrorIs(t, err, sbb.ErrMisaligned)

	assert.Same(t, before, s.Dataset())
	assert.Equal(t, beforeSrc, s.Source())
	assert.Equal(t, Range{Min: 2, Max: 6}, s.XRange())
	assert.Equal(t, Range{Min: -1, Max: 1}, s.Panel(0).YRange())
	assert.Equal(t, beforeTraces, s.Panel(0).Traces())

	entries := logs.FilterMessage("load failed").All()
	require.Len(t, entries, 1)
	assert.Equal(t, zapcore.ErrorLevel, entries[0].Level)
	assert.Equal(t, bad, entries[0].ContextMap()["path"])
}

func TestSession_LoadMissingFile(t *testing.T) {
	s, _ := newTestSession(t, &doubler{})

	err := s.Load(t.TempDir() + "/missing.sbb")
	require.Error(t, err)
	assert.Nil(t, s.Dataset())
	assert.Equal(t, Range{Min: 0, Max: 1}, s.XRange())
}

func TestSession_SelectOrderAndUnknown(t *testing.T) {
	s, _ := newTestSession(t, &doubler{})
	require.NoError(t, s.Load(writeRun(t)))

	require.NoError(t, s.Select(0, []string{"load", "bogus", "speed"}))
	assert.Equal(t, []string{"speed", "load"}, s.Panel(0).Selection())
	assert.Equal(t, []string{"speed", "load"}, s.Panel(0).Legend())
	assert.True(t, s.Panel(0).Selected("load"))
	assert.False(t, s.Panel(0).Selected("temp"))

	require.NoError(t, s.Select(0, nil))
	assert.Equal(t, ModeEmpty, s.Panel(0).Mode())
	assert.Empty(t, s.Panel(0).Traces())
	assert.Equal(t, Range{Min: 0, Max: 1}, s.Panel(0).YRange())

	assert.ErrorIs(t, s.Select(2, []string{"speed"}), ErrPanel)
	assert.ErrorIs(t, s.Select(-1, nil), ErrPanel)
}

func TestSession_FilterToggle(t *testing.T) {
	proc := &doubler{}
	s, _ := newTestSession(t, proc)
	require.NoError(t, s.Load(writeRun(t)))
	require.NoError(t, s.Select(0, []string{"speed", "load"}))

	raw := s.Panel(0).Traces()[0]

	s.SetFiltered(true)
	assert.True(t, s.Filtered())
	p := s.Panel(0)
	assert.Equal(t, ModeFiltered, p.Mode())
	require.Len(t, p.Traces(), 2)
	assert.Equal(t, []float64{1, 3, 5, 7, 9}, p.Traces()[0].X)
	assert.Equal(t, []float64{0, 4, 8, 12, 16}, p.Traces()[0].Y)
	assert.Equal(t, Range{Min: 0, Max: 10}, s.XRange())

	s.SetFiltered(false)
	assert.Equal(t, ModeRaw, p.Mode())
	assert.Equal(t, raw, p.Traces()[0])
}

func TestSession_FilteredTracesCached(t *testing.T) {
	proc := &doubler{}
	s, _ := newTestSession(t, proc)
	require.NoError(t, s.Load(writeRun(t)))
	require.NoError(t, s.Select(0, []string{"speed"}))
	require.NoError(t, s.Select(1, []string{"speed", "temp"}))

	s.SetFiltered(true)
	assert.Equal(t, 2, proc.calls)

	s.SetFiltered(false)
	s.SetFiltered(true)
	assert.Equal(t, 2, proc.calls)

	// A new load drops the cache.
	require.NoError(t, s.Load(writeRun(t)))
	assert.Equal(t, 4, proc.calls)
}

func TestSession_FilterErrorSkipsChannel(t *testing.T) {
	proc := &doubler{fail: map[int]bool{10: true}}
	s, logs := newTestSession(t, proc)
	require.NoError(t, s.Load(writeRun(t)))
	require.NoError(t, s.Select(0, []string{"speed", "temp"}))

	s.SetFiltered(true)
	p := s.Panel(0)
	assert.Equal(t, ModeFiltered, p.Mode())
	assert.Empty(t, p.Traces())
	require.Error(t, p.Err())
	assert.Contains(t, p.Err().Error(), "speed")
	assert.Contains(t, p.Err().Error(), "temp")
	assert.Equal(t, 2, logs.FilterMessage("channel not drawn").Len())

	s.SetFiltered(false)
	assert.NoError(t, p.Err())
	assert.Len(t, p.Traces(), 2)
}

func TestSession_Pan(t *testing.T) {
	s, _ := newTestSession(t, &doubler{}, WithPanStep(250))
	require.NoError(t, s.Load(writeRun(t)))

	s.Scroll(1)
	assert.Equal(t, Range{Min: 250, Max: 260}, s.XRange())
	s.Scroll(-2)
	assert.Equal(t, Range{Min: -250, Max: -240}, s.XRange())
	s.Pan(240)
	assert.Equal(t, Range{Min: -10, Max: 0}, s.XRange())
}

func TestSession_ZoomSharesX(t *testing.T) {
	s, _ := newTestSession(t, &doubler{})
	require.NoError(t, s.Load(writeRun(t)))
	require.NoError(t, s.Select(0, []string{"speed"}))
	require.NoError(t, s.Select(1, []string{"load"}))
	y1 := s.Panel(1).YRange()

	require.NoError(t, s.Zoom(0, Range{Min: 6, Max: 2}, Range{Min: 4, Max: 1}))
	assert.Equal(t, Range{Min: 2, Max: 6}, s.XRange())
	assert.Equal(t, Range{Min: 1, Max: 4}, s.Panel(0).YRange())
	assert.Equal(t, y1, s.Panel(1).YRange())

	assert.ErrorIs(t, s.Zoom(0, Range{Min: 3, Max: 3}, Range{Min: 0, Max: 1}), ErrEmptyZoom)
	assert.ErrorIs(t, s.Zoom(5, Range{Min: 0, Max: 1}, Range{Min: 0, Max: 1}), ErrPanel)
	assert.Equal(t, Range{Min: 2, Max: 6}, s.XRange())
}

func TestSession_Reset(t *testing.T) {
	s, _ := newTestSession(t, &doubler{})
	require.NoError(t, s.Load(writeRun(t)))
	require.NoError(t, s.Select(0, []string{"speed"}))
	want := s.Panel(0).YRange()

	require.NoError(t, s.Zoom(0, Range{Min: 2, Max: 6}, Range{Min: 0, Max: 1}))
	s.Pan(1000)
	s.Reset()

	assert.Equal(t, Range{Min: 0, Max: 10}, s.XRange())
	assert.Equal(t, want, s.Panel(0).YRange())
	assert.Equal(t, Range{Min: 0, Max: 1}, s.Panel(1).YRange())
}

func TestSession_ResetWithoutData(t *testing.T) {
	s, _ := newTestSession(t, &doubler{})
	s.Pan(50)
	s.Reset()
	assert.Equal(t, Range{Min: 0, Max: 1}, s.XRange())
}

func TestSession_ZoomThenSelectKeepsX(t *testing.T) {
	s, _ := newTestSession(t, &doubler{})
	require.NoError(t, s.Load(writeRun(t)))
	require.NoError(t, s.Zoom(1, Range{Min: 3, Max: 7}, Range{Min: 0, Max: 1}))

	require.NoError(t, s.Select(0, []string{"speed"}))
	assert.Equal(t, Range{Min: 3, Max: 7}, s.XRange())
	// Samples 4..6 are inside (3, 7): speed 3..5.
	assert.InDelta(t, 2.8, s.Panel(0).YRange().Min, 1e-12)
	assert.InDelta(t, 5.2, s.Panel(0).YRange().Max, 1e-12)
}
