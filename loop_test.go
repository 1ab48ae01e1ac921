package asteroids

import (
	"testing"
	"time"
)

func newTestLoop(t *testing.T) (*Loop, *ManualClock) {
	t.Helper()
	w, clock := newTestWorld(t)
	return NewLoop(w), clock
}

func hasLabel(c *LineCanvas, text string) bool {
	for _, l := range c.Labels {
		if l.Text == text {
			return true
		}
	}
	return false
}

func TestLoopTicks(t *testing.T) {
	l, _ := newTestLoop(t)
	tests := []struct {
		elapsed time.Duration
		want    float64
	}{
		{30 * time.Millisecond, 1},
		{15 * time.Millisecond, 0.5},
		{0, 0},
		{-time.Second, 0},
		{10 * time.Second, 4},
	}
	for _, tt := range tests {
		assertNear(t, tt.elapsed.String(), l.ticks(tt.elapsed), tt.want)
	}
}

func TestLoopFrameDrawsPromptAndHUD(t *testing.T) {
	l, clock := newTestLoop(t)
	c := NewLineCanvas()
	l.Frame(c) // boot
	clock.Advance(30 * time.Millisecond)
	c.Reset()
	l.Frame(c)

	if !hasLabel(c, "Press Space to Start") {
		t.Error("waiting prompt missing")
	}
	if !hasLabel(c, "0") {
		t.Error("score missing")
	}
	if len(c.Segments) == 0 {
		t.Error("asteroids should have been drawn")
	}
}

func TestLoopLivesIndicator(t *testing.T) {
	l, _ := newTestLoop(t)
	l.World.state = StateWaiting
	l.World.Lives = 2

	c := NewLineCanvas()
	l.drawHUD(c)
	// Two three-sided ships.
	if len(c.Segments) != 6 {
		t.Errorf("segments = %d, want 6", len(c.Segments))
	}
	for _, s := range c.Segments {
		if s.X0 < 780 || s.Y0 > 50 {
			t.Errorf("life marker segment %+v should be in the top right corner", s)
		}
	}
}

func TestLoopPause(t *testing.T) {
	l, clock := newTestLoop(t)
	c := NewLineCanvas()
	l.Frame(c) // boot

	var before []Pose
	for _, a := range l.World.Actors() {
		before = append(before, a.Pos)
	}

	l.KeyDown(IntentPause)
	l.KeyUp(IntentPause)
	if !l.Paused {
		t.Fatal("pause should toggle on")
	}
	clock.Advance(time.Second)
	c.Reset()
	l.Frame(c)
	if !hasLabel(c, "PAUSED") {
		t.Error("pause banner missing")
	}
	for i, a := range l.World.Actors() {
		if a.Pos != before[i] {
			t.Fatalf("actor %d moved while paused", i)
		}
	}

	clock.Advance(10 * time.Second)
	l.KeyDown(IntentPause)
	if l.Paused {
		t.Fatal("pause should toggle off")
	}
	if !l.last.Equal(clock.Now()) {
		t.Error("resume should re-anchor the frame clock")
	}
}

func TestLoopToggles(t *testing.T) {
	l, _ := newTestLoop(t)
	muted := l.World.Muted
	l.KeyDown(IntentMute)
	l.KeyUp(IntentMute)
	if l.World.Muted == muted {
		t.Error("mute should toggle")
	}

	l.KeyDown(IntentFramerate)
	if !l.ShowFramerate {
		t.Error("framerate readout should toggle on")
	}
	if !l.World.Keys.AnyDown {
		t.Error("any-key flag should be set while a key is down")
	}
	l.KeyUp(IntentFramerate)
	if l.World.Keys.AnyDown {
		t.Error("any-key flag should clear on release")
	}
}

func TestLoopFramerate(t *testing.T) {
	l, clock := newTestLoop(t)
	l.ShowFramerate = true
	c := NewLineCanvas()
	for range 34 {
		clock.Advance(30 * time.Millisecond)
		c.Reset()
		l.Frame(c)
	}
	if l.Framerate() != 34 {
		t.Errorf("framerate = %d, want 34", l.Framerate())
	}
	if !hasLabel(c, "34") {
		t.Error("framerate readout missing")
	}
}

func TestLoopDebugGrid(t *testing.T) {
	l, _ := newTestLoop(t)
	c := NewLineCanvas()
	l.Frame(c)
	plain := len(c.Segments)

	l.KeyDown(IntentDebugGrid)
	c.Reset()
	l.Frame(c)
	g := l.World.Grid()
	if extra := len(c.Segments) - plain; extra < g.Cols()+g.Rows() {
		t.Errorf("grid overlay added %d segments, want at least %d", extra, g.Cols()+g.Rows())
	}
}
