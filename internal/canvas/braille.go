// Package canvas rasterizes plot traces onto a terminal grid of braille
// characters. Each cell holds a 2x4 block of dots, so a canvas of c columns
// and r rows has 2c by 4r addressable dots.
package canvas

import "math"

const brailleBase = 0x2800

// dotBits maps a dot position inside a cell, [row][col], to its bit in the
// braille code point.
var dotBits = [4][2]uint8{
	{0x01, 0x08},
	{0x02, 0x10},
	{0x04, 0x20},
	{0x40, 0x80},
}

// NoColor marks a cell without any set dot.
const NoColor = -1

// Canvas is a braille dot raster. Dot (0, 0) is the top-left corner.
type Canvas struct {
	cols, rows int
	bits       []uint8
	color      []int
}

// New returns a blank canvas of cols by rows cells.
func New(cols, rows int) *Canvas {
	cols = max(cols, 0)
	rows = max(rows, 0)

	c := &Canvas{
		cols:  cols,
		rows:  rows,
		bits:  make([]uint8, cols*rows),
		color: make([]int, cols*rows),
	}
	c.Clear()

	return c
}

// Cols returns the width in cells.
func (c *Canvas) Cols() int { return c.cols }

// Rows returns the height in cells.
func (c *Canvas) Rows() int { return c.rows }

// Width returns the width in dots.
func (c *Canvas) Width() int { return 2 * c.cols }

// Height returns the height in dots.
func (c *Canvas) Height() int { return 4 * c.rows }

// Clear unsets every dot.
func (c *Canvas) Clear() {
	for i := range c.bits {
		c.bits[i] = 0
		c.color[i] = NoColor
	}
}

// Set turns on dot (x, y) in the given color. Dots outside the canvas are
// ignored. A cell takes the color of the last dot set in it.
func (c *Canvas) Set(x, y, color int) {
	if x < 0 || y < 0 || x >= c.Width() || y >= c.Height() {
		return
	}

	i := (y/4)*c.cols + x/2
	c.bits[i] |= dotBits[y%4][x%2]
	c.color[i] = color
}

// IsSet reports whether dot (x, y) is on.
func (c *Canvas) IsSet(x, y int) bool {
	if x < 0 || y < 0 || x >= c.Width() || y >= c.Height() {
		return false
	}

	return c.bits[(y/4)*c.cols+x/2]&dotBits[y%4][x%2] != 0
}

// Cell returns the character and color of cell (col, row). Blank cells are
// a space with NoColor.
func (c *Canvas) Cell(col, row int) (rune, int) {
	i := row*c.cols + col
	if c.bits[i] == 0 {
		return ' ', NoColor
	}

	return rune(brailleBase + int(c.bits[i])), c.color[i]
}

// Line draws a straight line between two dot positions given in floating
// point, clipped to the canvas.
func (c *Canvas) Line(x0, y0, x1, y1 float64, color int) {
	w, h := float64(c.Width()-1), float64(c.Height()-1)
	if w < 0 || h < 0 {
		return
	}

	var ok bool
	x0, y0, x1, y1, ok = clip(x0, y0, x1, y1, w, h)
	if !ok {
		return
	}

	c.bresenham(int(math.Round(x0)), int(math.Round(y0)), int(math.Round(x1)), int(math.Round(y1)), color)
}

func (c *Canvas) bresenham(x0, y0, x1, y1, color int) {
	dx := abs(x1 - x0)
	dy := -abs(y1 - y0)
	sx, sy := 1, 1
	if x0 > x1 {
		sx = -1
	}
	if y0 > y1 {
		sy = -1
	}

	e := dx + dy
	for {
		c.Set(x0, y0, color)
		if x0 == x1 && y0 == y1 {
			return
		}

		e2 := 2 * e
		if e2 >= dy {
			e += dy
			x0 += sx
		}
		if e2 <= dx {
			e += dx
			y0 += sy
		}
	}
}

// clip is Liang-Barsky clipping of a segment against [0, w] x [0, h].
func clip(x0, y0, x1, y1, w, h float64) (float64, float64, float64, float64, bool) {
	if math.IsNaN(x0) || math.IsNaN(y0) || math.IsNaN(x1) || math.IsNaN(y1) {
		return 0, 0, 0, 0, false
	}

	dx, dy := x1-x0, y1-y0
	t0, t1 := 0.0, 1.0

	edges := [4][2]float64{
		{-dx, x0},
		{dx, w - x0},
		{-dy, y0},
		{dy, h - y0},
	}
	for _, e := range edges {
		p, q := e[0], e[1]
		if p == 0 {
			if q < 0 {
				return 0, 0, 0, 0, false
			}
			continue
		}

		r := q / p
		if p < 0 {
			if r > t1 {
				return 0, 0, 0, 0, false
			}
			t0 = math.Max(t0, r)
		} else {
			if r < t0 {
				return 0, 0, 0, 0, false
			}
			t1 = math.Min(t1, r)
		}
	}

	return x0 + t0*dx, y0 + t0*dy, x0 + t1*dx, y0 + t1*dy, true
}

func abs(v int) int {
	if v < 0 {
		return -v
	}

	return v
}
