package asteroids

import (
	"math/rand/v2"
	"time"
)

// FrameStats counts the work done in the most recent frame.
type FrameStats struct {
	Advanced       int // actors that ran
	CollisionTests int // pairs that passed the cheap filters and were tested
	Reaped         int // actors removed at the end of the frame
}

// World owns everything a game needs: the roster of actors, the collision
// grid, the round counters and the state machine. It is not safe for
// concurrent use; drive it from one goroutine.
type World struct {
	// Keys is the held input state read by the ship and the state machine.
	Keys Keys

	Score          int
	Lives          int
	AsteroidTarget int
	Muted          bool

	cfg   Config
	grid  *Grid
	rng   *rand.Rand
	clock Clock
	audio Audio

	actors      []*Actor
	ship        *Actor
	alien       *Actor
	nextAlienAt time.Time

	state        State
	timerStart   time.Time
	timerRunning bool

	headBuf [9]*Actor
	stats   FrameStats
}

// NewWorld builds a world in the boot state. The ship, its bullets, the
// alien bullets and the alien are created hidden, in that roster order.
// audio may be nil.
func NewWorld(cfg Config, clock Clock, audio Audio) *World {
	seed := cfg.Seed
	if seed == 0 {
		seed = uint64(clock.Now().UnixNano())
	}
	w := &World{
		Muted: cfg.StartMuted,
		cfg:   cfg,
		grid:  NewGrid(cfg.Width, cfg.Height, cfg.CellSize),
		rng:   rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)),
		clock: clock,
		audio: audio,
		state: StateBoot,
	}

	ship, bullets := newShip(w)
	w.ship = ship
	w.add(ship)
	w.add(bullets...)

	alien, alienBullets := newBigAlien(w)
	w.alien = alien
	w.add(alienBullets...)
	w.add(alien)
	return w
}

// Config returns the configuration the world was built with.
func (w *World) Config() Config { return w.cfg }

// Grid returns the collision grid.
func (w *World) Grid() *Grid { return w.grid }

// State returns the current state machine state.
func (w *World) State() State { return w.state }

// Ship returns the player ship.
func (w *World) Ship() *Actor { return w.ship }

// BigAlien returns the roaming saucer.
func (w *World) BigAlien() *Actor { return w.alien }

// Actors returns the roster in update order. The slice is owned by the world.
func (w *World) Actors() []*Actor { return w.actors }

// Stats returns the counters of the most recent Step.
func (w *World) Stats() FrameStats { return w.stats }

// Step runs one frame: the state machine, then every visible actor in roster
// order, then removal of reaped actors. Actors added during the frame run in
// the same frame. delta is in ticks. r may be nil.
func (w *World) Step(r Renderer, delta float64) {
	if r == nil {
		r = nopRenderer{}
	}
	w.stats = FrameStats{}
	w.execute(r)

	for i := 0; i < len(w.actors); i++ {
		a := w.actors[i]
		if !a.Visible {
			continue
		}
		a.run(r, delta)
		w.stats.Advanced++
	}
	w.reap()
}

// Render draws every visible actor where it stands without simulating.
func (w *World) Render(r Renderer) {
	for _, a := range w.actors {
		a.render(r)
	}
}

func (w *World) add(actors ...*Actor) {
	w.actors = append(w.actors, actors...)
}

// reap compacts the roster, dropping actors flagged for removal.
func (w *World) reap() {
	kept := w.actors[:0]
	for _, a := range w.actors {
		if a.Reap {
			if a.bucket != nil {
				a.bucket.Leave(a)
			}
			w.stats.Reaped++
			continue
		}
		kept = append(kept, a)
	}
	clear(w.actors[len(kept):])
	w.actors = kept
}

func (w *World) play(c Cue) {
	if w.audio != nil && !w.Muted {
		w.audio.Play(c)
	}
}

func (w *World) explosionAt(x, y float64) {
	w.add(newExplosion(w, x, y))
}

// liveAsteroids counts asteroids not yet flagged for removal.
func (w *World) liveAsteroids() int {
	n := 0
	for _, a := range w.actors {
		if a.Kind == KindAsteroid && !a.Reap {
			n++
		}
	}
	return n
}

// spawnAsteroids adds n full-size asteroids at random clear positions.
func (w *World) spawnAsteroids(n int) {
	for range n {
		a := newAsteroid(w)
		w.placeClear(a)
		a.Vel.X = spawnVel.sample(w.rng)
		a.Vel.Y = spawnVel.sample(w.rng)
		if w.rng.Float64() > 0.5 {
			a.Outline = a.Outline.reversed()
		}
		a.Vel.Rot = asteroidSpin.sample(w.rng)
		a.Visible = true
		w.add(a)
	}
}

// placeClear picks random positions until the actor's neighbourhood is
// clear. After SpawnAttempts tries the last position is kept.
func (w *World) placeClear(a *Actor) {
	for attempt := 0; attempt < w.cfg.SpawnAttempts; attempt++ {
		a.Pos.X = w.rng.Float64() * w.cfg.Width
		a.Pos.Y = w.rng.Float64() * w.cfg.Height
		if a.isClear() {
			return
		}
	}
	Logger().Warn("no clear spawn position",
		"kind", a.Kind, "attempts", w.cfg.SpawnAttempts, "x", a.Pos.X, "y", a.Pos.Y)
}
