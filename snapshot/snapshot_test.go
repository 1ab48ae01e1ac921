package snapshot

import (
	"bytes"
	"image"
	"image/png"
	"path/filepath"
	"testing"
	"time"

	"github.com/phanxgames/asteroids"
)

func newCanvas(t *testing.T, w, h int) *Canvas {
	t.Helper()
	c, err := New(w, h)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	t.Cleanup(func() { c.Close() })
	return c
}

func decode(t *testing.T, c *Canvas) image.Image {
	t.Helper()
	var buf bytes.Buffer
	if err := c.EncodePNG(&buf); err != nil {
		t.Fatalf("EncodePNG: %v", err)
	}
	img, err := png.Decode(&buf)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	return img
}

func lit(img image.Image, x, y int) bool {
	r, g, b, _ := img.At(x, y).RGBA()
	return r > 0x8000 && g > 0x8000 && b > 0x8000
}

func TestCanvasStrokesWhiteOnBlack(t *testing.T) {
	c := newCanvas(t, 40, 40)
	c.SetLineWidth(3)
	c.BeginPath()
	c.MoveTo(0, 20)
	c.LineTo(40, 20)
	c.Stroke()
	if err := c.Err(); err != nil {
		t.Fatal(err)
	}

	img := decode(t, c)
	if img.Bounds().Dx() != 40 || img.Bounds().Dy() != 40 {
		t.Fatalf("bounds = %v", img.Bounds())
	}
	if !lit(img, 20, 20) {
		t.Error("pixel on the line should be white")
	}
	if lit(img, 20, 5) {
		t.Error("pixel off the line should be black")
	}
}

func TestCanvasTransformStack(t *testing.T) {
	c := newCanvas(t, 40, 40)
	c.Save()
	c.Translate(20, 20)
	c.Scale(2, 2)
	c.SetLineWidth(1)
	c.BeginPath()
	c.MoveTo(-5, 0)
	c.LineTo(5, 0)
	c.Stroke()
	c.Restore()

	if c.state.lineWidth != 1 || c.state.m != asteroids.IdentityMatrix {
		t.Errorf("state not restored: %+v", c.state)
	}
	img := decode(t, c)
	if !lit(img, 12, 20) || !lit(img, 28, 20) {
		t.Error("scaled line should span x 10..30")
	}
	if lit(img, 5, 20) {
		t.Error("line drawn past its scaled end")
	}
}

func TestCanvasClear(t *testing.T) {
	c := newCanvas(t, 20, 20)
	c.Translate(3, 3)
	c.Save()
	c.BeginPath()
	c.MoveTo(0, 10)
	c.LineTo(20, 10)
	c.Stroke()

	c.Clear()
	if len(c.stack) != 0 || c.state.m != asteroids.IdentityMatrix {
		t.Error("Clear should reset the transform stack")
	}
	img := decode(t, c)
	for x := 0; x < 20; x++ {
		if lit(img, x, 13) {
			t.Fatalf("pixel %d survived Clear", x)
		}
	}
}

func TestCanvasRendersWorld(t *testing.T) {
	cfg := asteroids.DefaultConfig()
	cfg.Seed = 7
	w := asteroids.NewWorld(cfg, asteroids.NewManualClock(time.Unix(0, 0)), nil)
	w.Step(nil, 1)

	c := newCanvas(t, int(cfg.Width), int(cfg.Height))
	w.Render(c)
	if err := c.Err(); err != nil {
		t.Fatal(err)
	}
	c.Text("GAME OVER", 50, cfg.Width/2-160, cfg.Height/2+10)

	img := decode(t, c)
	count := 0
	b := img.Bounds()
	for y := b.Min.Y; y < b.Max.Y; y += 2 {
		for x := b.Min.X; x < b.Max.X; x += 2 {
			if lit(img, x, y) {
				count++
			}
		}
	}
	if count == 0 {
		t.Error("rendered world has no lit pixels")
	}

	path := filepath.Join(t.TempDir(), "frame.png")
	if err := c.SavePNG(path); err != nil {
		t.Fatalf("SavePNG: %v", err)
	}
}
