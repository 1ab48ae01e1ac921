package asteroids

import (
	"math"
	"math/rand/v2"
)

// Vec2 is a 2D vector used for outline points and segment endpoints.
type Vec2 struct {
	X, Y float64
}

// Pose is a position plus a rotation in degrees. Actors use it for their
// position, velocity and acceleration alike.
type Pose struct {
	X, Y, Rot float64
}

// Range is a half-open [Min, Max) interval sampled for random spawn values.
type Range struct {
	Min, Max float64
}

func (r Range) sample(rng *rand.Rand) float64 {
	return r.Min + rng.Float64()*(r.Max-r.Min)
}

// Kind tags an Actor with its behavior. Dispatch on Kind is a plain switch.
type Kind uint8

const (
	KindShip        Kind = iota // player ship
	KindBullet                  // player bullet
	KindAlienBullet             // bullet fired by the big alien
	KindAsteroid                // rock, splits in three when hit
	KindBigAlien                // roaming saucer
	KindExplosion               // short-lived debris, never collides
	kindCount
)

var kindNames = [kindCount]string{
	KindShip:        "ship",
	KindBullet:      "bullet",
	KindAlienBullet: "alienbullet",
	KindAsteroid:    "asteroid",
	KindBigAlien:    "bigalien",
	KindExplosion:   "explosion",
}

func (k Kind) String() string {
	if k < kindCount {
		return kindNames[k]
	}
	return "unknown"
}

// KindSet is a bitmask of Kinds. The zero value is the empty set.
type KindSet uint8

// Kinds returns the set containing ks.
func Kinds(ks ...Kind) KindSet {
	var s KindSet
	for _, k := range ks {
		s |= 1 << k
	}
	return s
}

// Has reports whether k is in the set.
func (s KindSet) Has(k Kind) bool { return s&(1<<k) != 0 }

// Empty reports whether the set has no members.
func (s KindSet) Empty() bool { return s == 0 }

// Cue identifies a sound effect requested by the simulation.
type Cue uint8

const (
	CueLaser     Cue = iota // a shot was fired
	CueExplosion            // something blew up
)

// wrapDegrees folds an angle into [0, 360).
func wrapDegrees(deg float64) float64 {
	deg = math.Mod(deg, 360)
	if deg < 0 {
		deg += 360
	}
	return deg
}

// wrapCoord folds v into [0, size).
func wrapCoord(v, size float64) float64 {
	v = math.Mod(v, size)
	if v < 0 {
		v += size
	}
	if v >= size {
		v = 0
	}
	return v
}

func radians(deg float64) float64 { return deg * math.Pi / 180 }
