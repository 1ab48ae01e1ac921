package asteroids

import (
	"strconv"
	"time"
)

// Loop drives a World from a host's frame callback. It turns wall time into
// ticks, routes input, and draws the HUD and debug overlays around the
// simulation.
type Loop struct {
	World *World

	Paused        bool
	ShowFramerate bool

	clock Clock
	last  time.Time
	hud   *Actor

	frames    int
	sinceRate time.Duration
	framerate int
}

// NewLoop returns a loop for w anchored at the current clock time.
func NewLoop(w *World) *Loop {
	return &Loop{
		World: w,
		clock: w.clock,
		last:  w.clock.Now(),
		hud:   newHUDShip(w),
	}
}

// KeyDown records an intent press. Pause, mute and framerate toggle here.
func (l *Loop) KeyDown(i Intent) {
	w := l.World
	switch i {
	case IntentPause:
		l.Paused = !l.Paused
		if !l.Paused {
			l.last = l.clock.Now()
		}
	case IntentMute:
		w.Muted = !w.Muted
	case IntentFramerate:
		l.ShowFramerate = !l.ShowFramerate
	}
	w.Keys.Set(i, true)
	w.Keys.AnyDown = true
}

// KeyUp records an intent release.
func (l *Loop) KeyUp(i Intent) {
	l.World.Keys.Set(i, false)
	l.World.Keys.AnyDown = false
}

// Framerate returns the number of frames counted in the last full second.
func (l *Loop) Framerate() int { return l.framerate }

// Frame advances the world by the wall time since the previous frame and
// draws everything into r. While paused the world is drawn frozen and the
// clock is not consumed.
func (l *Loop) Frame(r Renderer) {
	w := l.World
	if l.Paused {
		w.Render(r)
		l.drawHUD(r)
		r.Text("PAUSED", 72, w.cfg.Width/2-160, 120)
		return
	}

	now := l.clock.Now()
	elapsed := now.Sub(l.last)
	l.last = now

	delta := l.ticks(elapsed)
	w.Step(r, delta)

	if w.Keys.Held(IntentDebugGrid) {
		l.drawGrid(r)
	}
	l.drawHUD(r)

	l.frames++
	l.sinceRate += elapsed
	if l.sinceRate > time.Second {
		l.sinceRate -= time.Second
		l.framerate = l.frames
		l.frames = 0
	}
	if l.ShowFramerate {
		r.Text(strconv.Itoa(l.framerate), 24, w.cfg.Width-38, w.cfg.Height-2)
	}

	if w.cfg.DebugStats {
		s := w.Stats()
		Logger().Debug("frame",
			"state", w.state, "actors", len(w.actors), "advanced", s.Advanced,
			"tests", s.CollisionTests, "reaped", s.Reaped, "delta", delta)
	}
}

// ticks converts elapsed wall time into simulation ticks, clamped to
// [0, MaxDelta].
func (l *Loop) ticks(elapsed time.Duration) float64 {
	cfg := &l.World.cfg
	delta := max(0, float64(elapsed)/float64(time.Millisecond)/cfg.TickMillis)
	if delta > cfg.MaxDelta {
		Logger().Debug("frame delta clamped", "ticks", delta, "max", cfg.MaxDelta)
		delta = cfg.MaxDelta
	}
	return delta
}

// drawHUD draws the score and one small ship per spare life.
func (l *Loop) drawHUD(r Renderer) {
	w := l.World
	score := strconv.Itoa(w.Score)
	r.Text(score, 18, w.cfg.Width-14*float64(len(score)), 20)

	for i := 0; i < w.Lives; i++ {
		l.hud.Pos.X = w.cfg.Width - 8*float64(i+1)
		l.hud.Pos.Y = 32
		l.hud.render(r)
	}
}

// drawGrid outlines every bucket and highlights the buckets that currently
// hold a visible actor.
func (l *Loop) drawGrid(r Renderer) {
	g := l.World.grid
	cell := g.cell

	r.Save()
	r.SetLineWidth(1)
	r.BeginPath()
	for col := 0; col < g.cols; col++ {
		r.MoveTo(float64(col)*cell, 0)
		r.LineTo(float64(col)*cell, g.height)
	}
	for row := 0; row < g.rows; row++ {
		r.MoveTo(0, float64(row)*cell)
		r.LineTo(g.width, float64(row)*cell)
	}
	r.Stroke()

	r.SetLineWidth(3)
	r.BeginPath()
	for _, a := range l.World.actors {
		b := a.bucket
		if !a.Visible || b == nil {
			continue
		}
		x, y := float64(b.Col)*cell+2, float64(b.Row)*cell+2
		side := cell - 4
		r.MoveTo(x, y)
		r.LineTo(x+side, y)
		r.LineTo(x+side, y+side)
		r.LineTo(x, y+side)
		r.ClosePath()
	}
	r.Stroke()
	r.Restore()
}
