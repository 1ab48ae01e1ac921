package asteroids

import "math"

const (
	asteroidScale = 6.0
	// asteroidMinScale is the size below which a hit asteroid leaves no
	// fragments.
	asteroidMinScale   = 0.5
	asteroidFragments  = 3
	asteroidPointsBase = 120.0
)

var (
	asteroidOutline = Polygon{
		{-10, 0}, {-5, 7}, {-3, 4}, {1, 10}, {5, 4},
		{10, 0}, {5, -6}, {2, -10}, {-4, -10}, {-4, -5},
	}

	spawnVel     = Range{-2, 2}
	fragmentVel  = Range{-3, 3}
	asteroidSpin = Range{-1, 1}
)

func newAsteroid(w *World) *Actor {
	a := newActor(w, KindAsteroid)
	a.Outline = asteroidOutline
	a.Scale = asteroidScale
	a.WrapH, a.WrapV = true, true
	a.CollidesWith = Kinds(KindShip, KindBullet, KindBigAlien, KindAlienBullet)
	return a
}

// fragment builds one piece of a split asteroid. Only the semantic fields
// of the parent are copied: kind, outline, scale, collision set, wrap flags
// and position. The piece gets a fresh random velocity and spin, a coin-flip
// mirrored outline, and is pushed away from the impact point.
func fragment(parent *Actor) *Actor {
	w := parent.world
	f := newActor(w, parent.Kind)
	f.Outline = parent.Outline
	f.Scale = parent.Scale
	f.CollidesWith = parent.CollidesWith
	f.WrapH, f.WrapV = parent.WrapH, parent.WrapV
	f.Pos = parent.Pos
	f.Visible = true

	f.Vel.X = fragmentVel.sample(w.rng)
	f.Vel.Y = fragmentVel.sample(w.rng)
	if w.rng.Float64() > 0.5 {
		f.Outline = f.Outline.reversed()
	}
	f.Vel.Rot = asteroidSpin.sample(w.rng)
	f.move(f.Scale * 3)
	return f
}

func asteroidCollide(a *Actor, other *Actor) {
	w := a.world
	w.play(CueExplosion)
	if other.Kind == KindBullet {
		w.Score += int(math.Round(asteroidPointsBase / a.Scale))
	}
	a.Scale /= 3
	if a.Scale > asteroidMinScale {
		for range asteroidFragments {
			w.add(fragment(a))
		}
	}
	w.explosionAt(other.Pos.X, other.Pos.Y)
	a.die()
}
