package asteroids

import "time"

// State is a game state machine state.
type State uint8

const (
	StateBoot       State = iota // populate the attract screen
	StateWaiting                 // prompt for a start signal
	StateStart                   // reset the round
	StateSpawnShip               // wait for a clear centre, then launch the ship
	StateRun                     // play
	StateNewLevel                // pause, then spawn a bigger wave
	StatePlayerDied              // pause, then respawn or end
	StateEndGame                 // show game over, then return to waiting
)

var stateNames = [...]string{
	StateBoot:       "boot",
	StateWaiting:    "waiting",
	StateStart:      "start",
	StateSpawnShip:  "spawn_ship",
	StateRun:        "run",
	StateNewLevel:   "new_level",
	StatePlayerDied: "player_died",
	StateEndGame:    "end_game",
}

func (s State) String() string {
	if int(s) < len(stateNames) {
		return stateNames[s]
	}
	return "unknown"
}

const (
	levelPause    = time.Second
	respawnPause  = time.Second
	gameOverPause = 5 * time.Second

	alienFirstDelay = 30 * time.Second // plus a random share of the same again
	alienRespawn    = 30 * time.Second // upper bound of the random gap between visits
)

func (w *World) setState(s State) {
	if s == w.state {
		return
	}
	Logger().Debug("state", "from", w.state, "to", s)
	w.state = s
}

// waitingFor is a single shared timer. The first call starts it; it then
// reports true until more than d has elapsed, at which point it resets and
// reports false once.
func (w *World) waitingFor(d time.Duration) bool {
	now := w.clock.Now()
	if !w.timerRunning {
		w.timerRunning = true
		w.timerStart = now
	}
	if now.Sub(w.timerStart) <= d {
		return true
	}
	w.timerRunning = false
	return false
}

// execute runs the current state once.
func (w *World) execute(r Renderer) {
	switch w.state {
	case StateBoot:
		w.spawnAsteroids(w.cfg.BootAsteroids)
		w.setState(StateWaiting)

	case StateWaiting:
		r.Text("Press Space to Start", 36, w.cfg.Width/2-270, w.cfg.Height/2)
		if w.Keys.Held(IntentFire) || w.Keys.Held(IntentStart) {
			w.Keys.Set(IntentFire, false)
			w.Keys.Set(IntentStart, false)
			w.setState(StateStart)
		}

	case StateStart:
		w.resetRound()
		w.setState(StateSpawnShip)

	case StateSpawnShip:
		s := w.ship
		s.Pos.X, s.Pos.Y = w.cfg.Width/2, w.cfg.Height/2
		s.invalidate()
		if s.isClear() {
			s.Pos.Rot = 0
			s.Vel.X, s.Vel.Y = 0, 0
			s.Visible = true
			w.setState(StateRun)
		}

	case StateRun:
		if w.liveAsteroids() == 0 {
			w.setState(StateNewLevel)
			return
		}
		now := w.clock.Now()
		if !w.alien.Visible && now.After(w.nextAlienAt) {
			w.alien.Visible = true
			w.nextAlienAt = now.Add(time.Duration(w.rng.Float64() * float64(alienRespawn)))
		}

	case StateNewLevel:
		if w.waitingFor(levelPause) {
			return
		}
		w.AsteroidTarget = min(w.AsteroidTarget+1, w.cfg.MaxAsteroids)
		Logger().Info("new level", "asteroids", w.AsteroidTarget, "score", w.Score)
		w.spawnAsteroids(w.AsteroidTarget)
		w.setState(StateRun)

	case StatePlayerDied:
		if w.Lives < 0 {
			Logger().Info("game over", "score", w.Score)
			w.setState(StateEndGame)
			return
		}
		if !w.waitingFor(respawnPause) {
			w.setState(StateSpawnShip)
		}

	case StateEndGame:
		r.Text("GAME OVER", 50, w.cfg.Width/2-160, w.cfg.Height/2+10)
		w.Keys.Set(IntentStart, false)
		if !w.waitingFor(gameOverPause) {
			w.setState(StateWaiting)
		}
	}
}

// resetRound clears the field and starts a fresh round.
func (w *World) resetRound() {
	for _, a := range w.actors {
		switch a.Kind {
		case KindAsteroid:
			a.die()
		case KindBullet, KindAlienBullet, KindBigAlien:
			a.hide()
		}
	}
	w.Score = 0
	w.Lives = w.cfg.StartLives
	w.AsteroidTarget = w.cfg.StartAsteroids
	w.spawnAsteroids(w.AsteroidTarget)

	jitter := time.Duration(w.rng.Float64() * float64(alienFirstDelay))
	w.nextAlienAt = w.clock.Now().Add(alienFirstDelay + jitter)
}
