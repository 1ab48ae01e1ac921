package asteroids

import "testing"

func TestCollisionNotifiesBothSidesOnce(t *testing.T) {
	w, _ := newRunningWorld(t)
	w.Lives = 2
	s := w.Ship()
	s.Pos = Pose{X: 400, Y: 300}
	s.Visible = true
	a := placeAsteroid(w, 400, 300)

	w.Step(nil, 0)

	if s.Visible || s.Bucket() != nil {
		t.Error("ship should be hidden and out of the grid")
	}
	if w.State() != StatePlayerDied {
		t.Errorf("state = %v, want player_died", w.State())
	}
	if w.Lives != 1 {
		t.Errorf("lives = %d, want 1 (ship notified exactly once)", w.Lives)
	}
	if !a.Reap {
		t.Error("asteroid should have been destroyed")
	}
	if got := countKind(w, KindAsteroid); got != asteroidFragments {
		t.Errorf("asteroids = %d, want %d fragments (asteroid notified exactly once)", got, asteroidFragments)
	}
	if got := countKind(w, KindExplosion); got != 2 {
		t.Errorf("explosions = %d, want one per side", got)
	}
	if w.Score != 0 {
		t.Errorf("score = %d, ship collisions score nothing", w.Score)
	}
}

func TestCollisionFilters(t *testing.T) {
	w, _ := newRunningWorld(t)
	a := placeAsteroid(w, 200, 200)
	b := placeAsteroid(w, 200, 200)
	w.Step(nil, 0)

	if a.Reap || b.Reap {
		t.Error("asteroids do not collide with each other")
	}
	if a.test(a) {
		t.Error("an actor never collides with itself")
	}

	bullet := w.Ship().bullets[0]
	bullet.Pos = Pose{X: 200, Y: 200}
	if a.test(bullet) {
		t.Error("invisible actors are skipped")
	}
}

func TestCollisionAcrossHorizontalSeam(t *testing.T) {
	w, _ := newRunningWorld(t)
	w.Lives = 2
	s := w.Ship()
	s.Pos = Pose{X: 795, Y: 300}
	s.Visible = true
	a := placeAsteroid(w, 5, 300)

	w.Step(nil, 0)

	if s.Visible {
		t.Error("ship at the right edge should be hit by the asteroid's replica from the left edge")
	}
	if !a.Reap {
		t.Error("asteroid should have been destroyed")
	}
}

func TestCollisionAcrossCorner(t *testing.T) {
	w, _ := newRunningWorld(t)
	w.Lives = 2
	s := w.Ship()
	s.Pos = Pose{X: 797, Y: 597}
	s.Visible = true
	a := placeAsteroid(w, 3, 3)

	w.Step(nil, 0)

	if s.Visible || !a.Reap {
		t.Error("diagonal replica should collide across the corner")
	}
	for _, f := range w.Actors() {
		if f.Kind == KindAsteroid && f.Bucket() == nil {
			t.Error("fragments should be bucketed")
		}
	}
}

func TestReplicaRestoresPosition(t *testing.T) {
	w, _ := newRunningWorld(t)
	a := placeAsteroid(w, 10, 10)
	w.Step(nil, 0)
	if a.Pos.X != 10 || a.Pos.Y != 10 {
		t.Errorf("position after replica passes = (%v,%v), want (10,10)", a.Pos.X, a.Pos.Y)
	}
	if got := a.WorldOutline()[0]; got.X > 100 || got.Y > 100 {
		t.Errorf("cached outline still displaced: %+v", got)
	}
}

func TestNoWrapActorsSkipReplicas(t *testing.T) {
	w, _ := newRunningWorld(t)
	al := w.BigAlien()
	al.counter = alienFireCooldown
	al.Visible = true

	// The alien wraps vertically but not horizontally, so an edge column
	// draws it once and an edge row draws it twice.
	segments := func(x, y float64) int {
		al.Pos = Pose{X: x, Y: y}
		al.Vel = Pose{}
		c := NewLineCanvas()
		w.Step(c, 0)
		return len(c.Segments)
	}
	interior := segments(400, 300)
	if interior == 0 {
		t.Fatal("alien drew nothing")
	}
	if got := segments(5, 300); got != interior {
		t.Errorf("edge column drew %d segments, want %d (no horizontal replica)", got, interior)
	}
	if got := segments(400, 5); got != 2*interior {
		t.Errorf("edge row drew %d segments, want %d (one vertical replica)", got, 2*interior)
	}
}

func TestCollisionAcrossSeamAfterWrap(t *testing.T) {
	w, _ := newRunningWorld(t)
	b := w.Ship().bullets[0]
	b.Pos = Pose{X: 10, Y: 301}
	b.Visible = true

	// The rock crosses the left edge this tick and lands at x=799.5; its
	// horizontal replica at x=-0.5 covers the bullet.
	a := placeAsteroid(w, 0.5, 301)
	a.Vel = Pose{X: -1}

	w.Step(nil, 1)
	if a.Pos.X != 799.5 {
		t.Fatalf("asteroid x = %v, want 799.5", a.Pos.X)
	}
	if b.Visible {
		t.Error("bullet across the seam should have been hit")
	}
	if !a.Reap || w.Score != 20 {
		t.Errorf("asteroid reap = %v, score = %d; want destroyed for 20", a.Reap, w.Score)
	}
}

func TestCandidatesCoverNeighborhood(t *testing.T) {
	w, _ := newRunningWorld(t)
	a := placeAsteroid(w, 30, 30)
	placeAsteroid(w, 790, 590) // diagonal neighbour across the corner
	placeAsteroid(w, 400, 300) // far away
	w.Step(nil, 0)

	heads := a.candidates()
	if len(heads) != 2 {
		t.Errorf("candidates = %d chains, want 2 (own bucket and corner)", len(heads))
	}
}
