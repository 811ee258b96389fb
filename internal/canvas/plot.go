package canvas

import (
	"fmt"
	"math"
	"sort"
	"strings"

	"github.com/cwbudde/sbbviewer/internal/view"
)

// Gutter is the width of the value-axis labels left of the plot area.
const Gutter = 10

const (
	xLabel = "Sample"
	yLabel = "Signal(s)"
)

// Rect is a cell rectangle in plot-local coordinates. Corners are inclusive
// and may be given in any order.
type Rect struct {
	X0, Y0, X1, Y1 int
}

func (r Rect) contains(x, y int) bool {
	return x >= min(r.X0, r.X1) && x <= max(r.X0, r.X1) &&
		y >= min(r.Y0, r.Y1) && y <= max(r.Y0, r.Y1)
}

// Layout locates the plot area inside a rendered plot.
type Layout struct {
	Left, Top  int
	Cols, Rows int
}

// Contains reports whether the plot-local cell (x, y) is in the plot area.
func (l Layout) Contains(x, y int) bool {
	return x >= l.Left && x < l.Left+l.Cols && y >= l.Top && y < l.Top+l.Rows
}

// Clamp moves a plot-local cell into the plot area.
func (l Layout) Clamp(x, y int) (int, int) {
	return min(max(x, l.Left), l.Left+l.Cols-1), min(max(y, l.Top), l.Top+l.Rows-1)
}

// ToData maps the center of a plot-local cell to data coordinates for the
// given axis windows.
func (l Layout) ToData(x, y int, xr, yr view.Range) (float64, float64) {
	w, h := float64(2*l.Cols-1), float64(4*l.Rows-1)
	dx := float64(2*(x-l.Left)) + 0.5
	dy := float64(4*(y-l.Top)) + 1.5

	return xr.Min + dx/w*xr.Span(), yr.Max - dy/h*yr.Span()
}

// frame maps data coordinates to dots.
type frame struct {
	x, y view.Range
	w, h float64
}

func (f frame) dotX(v float64) float64 { return (v - f.x.Min) / f.x.Span() * f.w }
func (f frame) dotY(v float64) float64 { return (f.y.Max - v) / f.y.Span() * f.h }

// Plot renders one panel: a legend line, the braille plot area with value
// ticks in the gutter, and an axis line below. With XAxis set the sample
// ticks and the axis label are drawn under the axis line.
type Plot struct {
	Width, Height int
	XAxis         bool
	Selection     *Rect
	Styles        Styles
}

// Layout returns where the plot area lies.
func (p Plot) Layout() Layout {
	return Layout{
		Left: Gutter,
		Top:  1,
		Cols: max(p.Width-Gutter, 1),
		Rows: max(p.Height-2-p.axisLabels(), 1),
	}
}

// axisLabels is how many of the tick-label and axis-name rows fit below the
// axis line. They are dropped before the plot area shrinks under two rows.
func (p Plot) axisLabels() int {
	if !p.XAxis {
		return 0
	}

	return min(max(p.Height-4, 0), 2)
}

// Render draws panel over the sample window x and returns at most Height
// lines.
func (p Plot) Render(panel *view.Panel, x view.Range) string {
	l := p.Layout()
	y := panel.YRange()

	cv := New(l.Cols, l.Rows)
	f := frame{x: x, y: y, w: float64(cv.Width() - 1), h: float64(cv.Height() - 1)}
	if x.Valid() && y.Valid() {
		for i, tr := range panel.Traces() {
			drawTrace(cv, tr, f, i)
		}
	}

	lines := make([]string, 0, p.Height)
	lines = append(lines, p.legend(panel, l))

	labels := make(map[int]string)
	if y.Valid() {
		for _, v := range Ticks(y.Min, y.Max, max(l.Rows/3, 2)) {
			row := int(math.Round(f.dotY(v))) / 4
			if _, taken := labels[row]; !taken && row >= 0 && row < l.Rows {
				labels[row] = FormatTick(v, Gutter-1)
			}
		}
	}

	for row := 0; row < l.Rows; row++ {
		lines = append(lines, p.row(cv, l, row, labels))
	}

	lines = append(lines, p.bottom(l, f)...)
	if p.Height > 0 && len(lines) > p.Height {
		lines = lines[:p.Height]
	}

	return strings.Join(lines, "\n")
}

func (p Plot) legend(panel *view.Panel, l Layout) string {
	var b strings.Builder
	b.WriteString(p.Styles.render(p.Styles.Axis, fmt.Sprintf("%-*s", l.Left, yLabel)))

	if panel.Mode() == view.ModeEmpty {
		b.WriteString(p.Styles.render(p.Styles.Muted, "no channel selected"))
		return b.String()
	}

	width := l.Left
	for i, name := range panel.Legend() {
		entry := "⣿ " + name
		n := len([]rune(entry)) + 2
		if width+n > p.Width {
			b.WriteString("…")
			break
		}
		b.WriteString(p.Styles.trace(i, entry))
		b.WriteString("  ")
		width += n
	}

	if panel.Mode() == view.ModeFiltered {
		b.WriteString(p.Styles.render(p.Styles.Muted, "(filtered)"))
	}

	return b.String()
}

func (p Plot) row(cv *Canvas, l Layout, row int, labels map[int]string) string {
	var b strings.Builder

	tick := "│"
	label, ok := labels[row]
	if ok {
		tick = "┤"
	}
	b.WriteString(p.Styles.render(p.Styles.Axis, fmt.Sprintf("%*s%s", l.Left-1, label, tick)))

	var run strings.Builder
	runColor, runSel := NoColor, false
	flush := func() {
		if run.Len() > 0 {
			b.WriteString(p.Styles.cell(runColor, runSel, run.String()))
			run.Reset()
		}
	}

	for col := 0; col < cv.Cols(); col++ {
		r, color := cv.Cell(col, row)
		sel := p.Selection != nil && p.Selection.contains(l.Left+col, l.Top+row)
		if color != runColor || sel != runSel {
			flush()
			runColor, runSel = color, sel
		}
		run.WriteRune(r)
	}
	flush()

	return b.String()
}

func (p Plot) bottom(l Layout, f frame) []string {
	axis := []rune(strings.Repeat("─", l.Cols))
	if !p.XAxis {
		return []string{p.Styles.render(p.Styles.Axis, strings.Repeat(" ", l.Left-1)+"└"+string(axis))}
	}

	labels := []rune(strings.Repeat(" ", l.Cols))
	next := 0
	if f.x.Valid() {
		for _, v := range Ticks(f.x.Min, f.x.Max, max(l.Cols/12, 2)) {
			col := int(math.Round(f.dotX(v))) / 2
			if col < 0 || col >= l.Cols {
				continue
			}
			axis[col] = '┬'

			text := []rune(FormatTick(v, 12))
			start := min(col, l.Cols-len(text))
			if start < next || start < 0 {
				continue
			}
			copy(labels[start:], text)
			next = start + len(text) + 1
		}
	}

	pad := strings.Repeat(" ", l.Left-1)
	name := fmt.Sprintf("%*s", l.Left+(l.Cols+len(xLabel))/2, xLabel)

	out := []string{
		p.Styles.render(p.Styles.Axis, pad+"└"+string(axis)),
		p.Styles.render(p.Styles.Axis, pad+" "+string(labels)),
		p.Styles.render(p.Styles.Axis, name),
	}

	return out[:1+p.axisLabels()]
}

// drawTrace plots the points of tr inside the frame plus one neighbor on
// each side so lines run to the edges. Dense traces are drawn as a min/max
// envelope per dot column.
func drawTrace(cv *Canvas, tr view.Trace, f frame, color int) {
	n := min(len(tr.X), len(tr.Y))
	xs := tr.X[:n]

	i := sort.SearchFloat64s(xs, f.x.Min)
	j := sort.Search(n, func(k int) bool { return xs[k] > f.x.Max })
	if i > 0 {
		i--
	}
	if j < n {
		j++
	}
	if i >= j {
		return
	}

	if j-i <= 2*cv.Width() {
		px, py := f.dotX(xs[i]), f.dotY(tr.Y[i])
		cv.Line(px, py, px, py, color)
		for k := i + 1; k < j; k++ {
			qx, qy := f.dotX(xs[k]), f.dotY(tr.Y[k])
			cv.Line(px, py, qx, qy, color)
			px, py = qx, qy
		}

		return
	}

	col, prevCol := math.MinInt, math.MinInt
	var first, last, lo, hi, prevLast float64
	flush := func() {
		if col == math.MinInt {
			return
		}
		cx := float64(col)
		if prevCol != math.MinInt {
			cv.Line(float64(prevCol), prevLast, cx, first, color)
		}
		cv.Line(cx, lo, cx, hi, color)
		prevCol, prevLast = col, last
	}

	for k := i; k < j; k++ {
		c := int(math.Round(f.dotX(xs[k])))
		v := f.dotY(tr.Y[k])
		if c != col {
			flush()
			col, first, last, lo, hi = c, v, v, v, v
			continue
		}
		last = v
		lo = math.Min(lo, v)
		hi = math.Max(hi, v)
	}
	flush()
}
