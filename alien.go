package asteroids

import "math"

const (
	alienSpeed        = 1.5
	alienMargin       = 20.0 // distance beyond the field where the alien enters and leaves
	alienFireCooldown = 22.0
	alienBulletSpeed  = 6.0
	alienBulletCount  = 3
	alienPoints       = 200
	// alienDriftFlip is the chance per tick of reversing vertical drift
	// when both sides are equally crowded.
	alienDriftFlip = 0.01
)

var (
	alienOutline = Polygon{
		{-20, 0}, {-12, -4}, {12, -4}, {20, 0},
		{12, 4}, {-12, 4}, {-20, 0}, {20, 0},
	}
	alienTop    = Polygon{{-8, -4}, {-6, -6}, {6, -6}, {8, -4}}
	alienBottom = Polygon{{8, 4}, {6, 6}, {-6, 6}, {-8, 4}}
)

// newBigAlien builds the hidden saucer and its bullet pool.
func newBigAlien(w *World) (*Actor, []*Actor) {
	a := newActor(w, KindBigAlien)
	a.Outline = alienOutline
	a.Parts = []Part{
		{Name: "top", Outline: alienTop, Visible: true},
		{Name: "bottom", Outline: alienBottom, Visible: true},
	}
	a.WrapV = true
	a.CollidesWith = Kinds(KindAsteroid, KindShip, KindBullet)

	a.bullets = make([]*Actor, alienBulletCount)
	for i := range a.bullets {
		a.bullets[i] = newBullet(w, KindAlienBullet)
	}
	alienReposition(a)
	return a, a.bullets
}

// alienReposition puts the alien just off a random side edge, heading in,
// at a random height.
func alienReposition(a *Actor) {
	w := a.world
	if w.rng.Float64() < 0.5 {
		a.Pos.X = -alienMargin
		a.Vel.X = alienSpeed
	} else {
		a.Pos.X = w.cfg.Width + alienMargin
		a.Vel.X = -alienSpeed
	}
	a.Pos.Y = w.rng.Float64() * w.cfg.Height
	a.invalidate()
}

func occupied(b *Bucket) int {
	if b.head != nil {
		return 1
	}
	return 0
}

func alienPreMove(a *Actor, delta float64) {
	b := a.bucket
	if b == nil {
		return
	}
	w := a.world

	// Drift away from the more crowded side.
	top := occupied(b.north) + occupied(b.north.east) + occupied(b.north.west)
	bottom := occupied(b.south) + occupied(b.south.east) + occupied(b.south.west)
	switch {
	case top > bottom:
		a.Vel.Y = 1
	case top < bottom:
		a.Vel.Y = -1
	case w.rng.Float64() < alienDriftFlip:
		a.Vel.Y = -a.Vel.Y
	}

	a.counter -= delta
	if a.counter <= 0 {
		a.counter = alienFireCooldown
		alienFire(a)
	}
}

func alienFire(a *Actor) {
	w := a.world
	for _, b := range a.bullets {
		if b.Visible {
			continue
		}
		sin, cos := math.Sincos(2 * math.Pi * w.rng.Float64())
		b.Pos.X, b.Pos.Y = a.Pos.X, a.Pos.Y
		b.Vel.X = alienBulletSpeed * cos
		b.Vel.Y = alienBulletSpeed * sin
		b.counter = 0
		b.Visible = true
		w.play(CueLaser)
		return
	}
}

// alienPostMove wraps vertically and retires the alien once it has crossed
// the field horizontally.
func alienPostMove(a *Actor) {
	w := a.world
	if a.Pos.Y > w.cfg.Height {
		a.Pos.Y = 0
	} else if a.Pos.Y < 0 {
		a.Pos.Y = w.cfg.Height
	}

	if (a.Vel.X > 0 && a.Pos.X > w.cfg.Width+alienMargin) ||
		(a.Vel.X < 0 && a.Pos.X < -alienMargin) {
		a.hide()
		alienReposition(a)
	}
}

func alienCollide(a *Actor, other *Actor) {
	w := a.world
	if other.Kind == KindBullet {
		w.Score += alienPoints
	}
	w.play(CueExplosion)
	w.explosionAt(other.Pos.X, other.Pos.Y)
	a.hide()
	alienReposition(a)
}
