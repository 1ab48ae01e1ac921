package asteroids

import "fmt"

// Intent is a player action, decoupled from whatever key or touch produced
// it. Hosts translate their native events into intents.
type Intent uint8

const (
	IntentRotateLeft  Intent = iota // turn counterclockwise while held
	IntentRotateRight               // turn clockwise while held
	IntentThrust                    // accelerate along the heading while held
	IntentFire                      // shoot while held; also starts a game
	IntentDebugGrid                 // overlay the collision grid while held
	IntentStart                     // start a game (touch or click)
	IntentPause                     // toggle pause on press
	IntentMute                      // toggle sound on press
	IntentFramerate                 // toggle the framerate readout on press
	intentCount
)

var intentNames = [intentCount]string{
	IntentRotateLeft:  "left",
	IntentRotateRight: "right",
	IntentThrust:      "thrust",
	IntentFire:        "fire",
	IntentDebugGrid:   "grid",
	IntentStart:       "start",
	IntentPause:       "pause",
	IntentMute:        "mute",
	IntentFramerate:   "framerate",
}

func (i Intent) String() string {
	if i < intentCount {
		return intentNames[i]
	}
	return "unknown"
}

// ParseIntent maps an intent name as used in input scripts to an Intent.
func ParseIntent(name string) (Intent, error) {
	for i, n := range intentNames {
		if n == name {
			return Intent(i), nil
		}
	}
	return 0, fmt.Errorf("unknown intent %q", name)
}

// Keys is the held state of every intent plus whether any key is down.
type Keys struct {
	held    [intentCount]bool
	AnyDown bool
}

// Held reports whether the intent is currently held.
func (k *Keys) Held(i Intent) bool {
	return i < intentCount && k.held[i]
}

// Set records the held state of an intent. AnyDown is left alone.
func (k *Keys) Set(i Intent, down bool) {
	if i < intentCount {
		k.held[i] = down
	}
}

// Clear releases every intent.
func (k *Keys) Clear() {
	k.held = [intentCount]bool{}
	k.AnyDown = false
}
