package termhost

import "github.com/phanxgames/asteroids"

const (
	brailleBase = 0x2800
	dotsX       = 2
	dotsY       = 4
)

// brailleBits maps a dot position inside a cell to its Unicode braille bit.
var brailleBits = [dotsX][dotsY]uint8{
	{0x01, 0x02, 0x04, 0x40},
	{0x08, 0x10, 0x20, 0x80},
}

// brailleGrid is a monochrome bitmap with 2x4 dots per terminal cell.
type brailleGrid struct {
	cols, rows int
	cells      []uint8
}

func newBrailleGrid(cols, rows int) *brailleGrid {
	g := &brailleGrid{}
	g.resize(cols, rows)
	return g
}

func (g *brailleGrid) resize(cols, rows int) {
	g.cols, g.rows = max(cols, 0), max(rows, 0)
	if n := g.cols * g.rows; cap(g.cells) >= n {
		g.cells = g.cells[:n]
	} else {
		g.cells = make([]uint8, n)
	}
	g.clear()
}

func (g *brailleGrid) clear() { clear(g.cells) }

// width and height are the dot resolution.
func (g *brailleGrid) width() int  { return g.cols * dotsX }
func (g *brailleGrid) height() int { return g.rows * dotsY }

func (g *brailleGrid) set(x, y int) {
	if x < 0 || y < 0 || x >= g.width() || y >= g.height() {
		return
	}
	g.cells[(y/dotsY)*g.cols+x/dotsX] |= brailleBits[x%dotsX][y%dotsY]
}

// line plots a Bresenham line between two dots, inclusive.
func (g *brailleGrid) line(x0, y0, x1, y1 int) {
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
		g.set(x0, y0)
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

// cell returns the braille rune for a cell, or a space if no dot is set.
func (g *brailleGrid) cell(col, row int) rune {
	bits := g.cells[row*g.cols+col]
	if bits == 0 {
		return ' '
	}
	return rune(brailleBase + int(bits))
}

// plot rasterizes canvas segments from a field of fieldW x fieldH pixels.
func (g *brailleGrid) plot(segs []asteroids.Segment, fieldW, fieldH float64) {
	sx := float64(g.width()) / fieldW
	sy := float64(g.height()) / fieldH
	for _, s := range segs {
		g.line(int(s.X0*sx), int(s.Y0*sy), int(s.X1*sx), int(s.Y1*sy))
	}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
