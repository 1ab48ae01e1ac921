package asteroids

import "math"

const (
	shipTurnRate     = 6.0  // degrees per tick
	shipThrust       = 0.5  // acceleration per tick along the heading
	shipFireCooldown = 10.0 // ticks between shots
	shipSpeedLimit   = 8.0
	shipDrag         = 0.95
	shipNoseOffset   = 4.0
	shipBulletSpeed  = 6.0
	shipBulletCount  = 10

	// exhaustFlicker is the chance the exhaust flame is hidden on a thrusting tick.
	exhaustFlicker = 0.1

	partExhaust = "exhaust"
)

var (
	shipOutline    = Polygon{{-5, 4}, {0, -12}, {5, 4}}
	exhaustOutline = Polygon{{-3, 6}, {0, 11}, {3, 6}}
)

// newShip builds the hidden player ship together with its bullet pool. The
// bullets are returned separately so the caller can add them to the roster.
func newShip(w *World) (*Actor, []*Actor) {
	s := newActor(w, KindShip)
	s.Outline = shipOutline
	s.Parts = []Part{{Name: partExhaust, Outline: exhaustOutline}}
	s.WrapH, s.WrapV = true, true
	s.CollidesWith = Kinds(KindAsteroid, KindBigAlien, KindAlienBullet)

	s.bullets = make([]*Actor, shipBulletCount)
	for i := range s.bullets {
		s.bullets[i] = newBullet(w, KindBullet)
	}
	return s, s.bullets
}

// newHUDShip builds an inert ship used to draw the remaining lives.
func newHUDShip(w *World) *Actor {
	s := newActor(w, KindShip)
	s.Outline = shipOutline
	s.Scale = 0.6
	s.Visible = true
	return s
}

// heading returns the unit vector the nose points along. Rotation zero
// points up the screen.
func heading(rot float64) (float64, float64) {
	sin, cos := math.Sincos(radians(rot - 90))
	return cos, sin
}

func shipPreMove(s *Actor, delta float64) {
	keys := &s.world.Keys

	switch {
	case keys.Held(IntentRotateLeft):
		s.Vel.Rot = -shipTurnRate
	case keys.Held(IntentRotateRight):
		s.Vel.Rot = shipTurnRate
	default:
		s.Vel.Rot = 0
	}

	exhaust := s.part(partExhaust)
	if keys.Held(IntentThrust) {
		dx, dy := heading(s.Pos.Rot)
		s.Acc.X = shipThrust * dx
		s.Acc.Y = shipThrust * dy
		exhaust.Visible = s.world.rng.Float64() > exhaustFlicker
	} else {
		s.Acc.X, s.Acc.Y = 0, 0
		exhaust.Visible = false
	}

	if s.counter > 0 {
		s.counter -= delta
	}
	if keys.Held(IntentFire) && s.counter <= 0 {
		s.counter = shipFireCooldown
		shipFire(s)
	}

	if math.Hypot(s.Vel.X, s.Vel.Y) > shipSpeedLimit {
		s.Vel.X *= shipDrag
		s.Vel.Y *= shipDrag
	}
}

// shipFire launches the first idle bullet from the nose. With every bullet
// in flight the shot is dropped.
func shipFire(s *Actor) {
	for _, b := range s.bullets {
		if b.Visible {
			continue
		}
		dx, dy := heading(s.Pos.Rot)
		b.Pos.X = s.Pos.X + dx*shipNoseOffset
		b.Pos.Y = s.Pos.Y + dy*shipNoseOffset
		b.Vel.X = shipBulletSpeed*dx + s.Vel.X
		b.Vel.Y = shipBulletSpeed*dy + s.Vel.Y
		b.counter = 0
		b.Visible = true
		s.world.play(CueLaser)
		return
	}
}

func shipCollide(s *Actor, other *Actor) {
	w := s.world
	w.play(CueExplosion)
	w.explosionAt(other.Pos.X, other.Pos.Y)
	w.setState(StatePlayerDied)
	s.hide()
	w.Lives--
}
