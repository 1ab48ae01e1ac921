package termhost

import (
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/phanxgames/asteroids"
)

// holdTimeout is how long a key counts as held after its last event.
// Terminals report no key releases, only auto-repeat presses, so a key is
// released once the repeats stop.
const holdTimeout = 150 * time.Millisecond

// intentFor maps a key event to an intent.
func intentFor(ev *tcell.EventKey) (asteroids.Intent, bool) {
	switch ev.Key() {
	case tcell.KeyLeft:
		return asteroids.IntentRotateLeft, true
	case tcell.KeyRight:
		return asteroids.IntentRotateRight, true
	case tcell.KeyUp:
		return asteroids.IntentThrust, true
	case tcell.KeyEnter:
		return asteroids.IntentStart, true
	case tcell.KeyRune:
		switch ev.Rune() {
		case ' ':
			return asteroids.IntentFire, true
		case 'a':
			return asteroids.IntentRotateLeft, true
		case 'd':
			return asteroids.IntentRotateRight, true
		case 'w':
			return asteroids.IntentThrust, true
		case 'g':
			return asteroids.IntentDebugGrid, true
		case 'p':
			return asteroids.IntentPause, true
		case 'm':
			return asteroids.IntentMute, true
		case 'f':
			return asteroids.IntentFramerate, true
		}
	}
	return 0, false
}

// isQuit reports whether the key ends the session.
func isQuit(ev *tcell.EventKey) bool {
	return ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC ||
		(ev.Key() == tcell.KeyRune && ev.Rune() == 'q')
}

// holds turns a stream of key presses into press and release edges.
type holds struct {
	last map[asteroids.Intent]time.Time
}

func newHolds() holds {
	return holds{last: make(map[asteroids.Intent]time.Time)}
}

// press refreshes the intent, sending KeyDown only on the first event.
func (h holds) press(l *asteroids.Loop, in asteroids.Intent, now time.Time) {
	if _, held := h.last[in]; !held {
		l.KeyDown(in)
	}
	h.last[in] = now
}

// expire releases intents whose repeats have stopped.
func (h holds) expire(l *asteroids.Loop, now time.Time) {
	for in, t := range h.last {
		if now.Sub(t) > holdTimeout {
			delete(h.last, in)
			l.KeyUp(in)
		}
	}
}
