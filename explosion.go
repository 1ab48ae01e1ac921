package asteroids

import (
	"math"

	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

const (
	explosionLines    = 5
	explosionMaxScale = 8.0
)

// newExplosion builds a burst of short radial strokes at (x, y). The burst
// grows linearly by one unit of scale per tick and dies once it is larger
// than explosionMaxScale.
func newExplosion(w *World, x, y float64) *Actor {
	e := newActor(w, KindExplosion)
	e.Pos.X, e.Pos.Y = x, y
	e.Visible = true

	// Each stroke is stored as a two-point outline from the unit circle to
	// twice its radius.
	e.Parts = make([]Part, explosionLines)
	for i := range e.Parts {
		sin, cos := math.Sincos(2 * math.Pi * w.rng.Float64())
		e.Parts[i] = Part{
			Outline: Polygon{{cos, sin}, {cos * 2, sin * 2}},
			Visible: true,
		}
	}
	// The tween runs one unit past the limit so the last tick overshoots it.
	end := float32(explosionMaxScale + 1)
	e.growth = gween.New(float32(e.Scale), end, end-float32(e.Scale), ease.Linear)
	return e
}

func explosionPreMove(e *Actor, delta float64) {
	scale, done := e.growth.Update(float32(delta))
	e.Scale = float64(scale)
	if done || e.Scale > explosionMaxScale {
		e.die()
	}
}

func drawExplosion(e *Actor, r Renderer) {
	r.BeginPath()
	for _, p := range e.Parts {
		r.MoveTo(p.Outline[0].X, p.Outline[0].Y)
		r.LineTo(p.Outline[1].X, p.Outline[1].Y)
	}
	r.Stroke()
}
