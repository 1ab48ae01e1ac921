// Package snapshot rasterizes asteroids frames to PNG with gogpu/gg.
//
// A Canvas implements asteroids.Renderer on top of a software gg.Context.
// It is used by the replay tool to turn a scripted session into a series of
// still images without opening a window.
package snapshot

import (
	"fmt"
	"io"
	"math"

	"github.com/gogpu/gg"
	"github.com/gogpu/gg/text"
	"golang.org/x/image/font/gofont/goregular"

	"github.com/phanxgames/asteroids"
)

type state struct {
	m         asteroids.Matrix
	lineWidth float64
}

// Canvas is an asteroids.Renderer backed by a gg.Context. White strokes on a
// black background, labels in Go Regular.
type Canvas struct {
	ctx   *gg.Context
	font  *text.FontSource
	faces map[float64]text.Face

	state state
	stack []state
	err   error
}

// New returns a cleared canvas of the given pixel size.
func New(width, height int) (*Canvas, error) {
	font, err := text.NewFontSource(goregular.TTF)
	if err != nil {
		return nil, fmt.Errorf("load font: %w", err)
	}
	c := &Canvas{
		ctx:   gg.NewContext(width, height),
		font:  font,
		faces: make(map[float64]text.Face),
	}
	c.Clear()
	return c, nil
}

// Clear paints the background black and resets the transform stack and the
// sticky error.
func (c *Canvas) Clear() {
	c.ctx.Identity()
	c.ctx.ClearPath()
	c.ctx.ClearWithColor(gg.Black)
	c.ctx.SetRGB(1, 1, 1)
	c.state = state{m: asteroids.IdentityMatrix, lineWidth: 1}
	c.stack = c.stack[:0]
	c.err = nil
}

// Err returns the first stroke error since the last Clear.
func (c *Canvas) Err() error { return c.err }

// Width returns the canvas width in pixels.
func (c *Canvas) Width() int { return c.ctx.Width() }

// Height returns the canvas height in pixels.
func (c *Canvas) Height() int { return c.ctx.Height() }

// SavePNG writes the canvas to path.
func (c *Canvas) SavePNG(path string) error {
	if err := c.ctx.SavePNG(path); err != nil {
		return fmt.Errorf("save %s: %w", path, err)
	}
	return nil
}

// EncodePNG writes the canvas as PNG to w.
func (c *Canvas) EncodePNG(w io.Writer) error {
	return c.ctx.EncodePNG(w)
}

// Close releases the gg context and the font.
func (c *Canvas) Close() error {
	c.font.Close()
	return c.ctx.Close()
}

// Save pushes the transform and line width.
func (c *Canvas) Save() {
	c.stack = append(c.stack, c.state)
	c.ctx.Push()
}

// Restore pops the state pushed by Save. An unmatched Restore is ignored.
func (c *Canvas) Restore() {
	if len(c.stack) == 0 {
		return
	}
	c.state = c.stack[len(c.stack)-1]
	c.stack = c.stack[:len(c.stack)-1]
	c.ctx.Pop()
}

// Translate moves the origin by (x, y).
func (c *Canvas) Translate(x, y float64) {
	c.state.m = c.state.m.Multiply(asteroids.Matrix{1, 0, 0, 1, x, y})
	c.ctx.Translate(x, y)
}

// Rotate turns the axes by rad radians.
func (c *Canvas) Rotate(rad float64) {
	sin, cos := math.Sincos(rad)
	c.state.m = c.state.m.Multiply(asteroids.Matrix{cos, sin, -sin, cos, 0, 0})
	c.ctx.Rotate(rad)
}

// Scale stretches the axes by sx and sy.
func (c *Canvas) Scale(sx, sy float64) {
	c.state.m = c.state.m.Multiply(asteroids.Matrix{sx, 0, 0, sy, 0, 0})
	c.ctx.Scale(sx, sy)
}

// SetLineWidth is tracked here and applied at Stroke time because gg's
// Push and Pop do not save paint state.
func (c *Canvas) SetLineWidth(w float64) { c.state.lineWidth = w }

// BeginPath drops any pending path.
func (c *Canvas) BeginPath() { c.ctx.ClearPath() }

// MoveTo starts a subpath at (x, y).
func (c *Canvas) MoveTo(x, y float64) { c.ctx.MoveTo(x, y) }

// LineTo adds a segment from the current point to (x, y).
func (c *Canvas) LineTo(x, y float64) { c.ctx.LineTo(x, y) }

// ClosePath joins the current point back to the subpath start.
func (c *Canvas) ClosePath() { c.ctx.ClosePath() }

// Stroke draws and clears the path. The first failure is kept for Err.
func (c *Canvas) Stroke() {
	c.ctx.SetLineWidth(c.state.lineWidth)
	if err := c.ctx.Stroke(); err != nil && c.err == nil {
		c.err = fmt.Errorf("stroke: %w", err)
	}
}

// Text draws s at the transformed baseline position. gg draws text in device
// space, so the size is scaled by the current transform.
func (c *Canvas) Text(s string, size, x, y float64) {
	m := c.state.m
	px, py := m.Apply(x, y)
	scaled := size * math.Sqrt(math.Abs(m[0]*m[3]-m[2]*m[1]))
	c.ctx.SetFont(c.face(scaled))
	c.ctx.DrawString(s, px, py)
}

func (c *Canvas) face(size float64) text.Face {
	f, ok := c.faces[size]
	if !ok {
		f = c.font.Face(size)
		c.faces[size] = f
	}
	return f
}
