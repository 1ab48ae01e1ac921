package ebitenhost

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/phanxgames/asteroids"
)

type binding struct {
	key    ebiten.Key
	intent asteroids.Intent
}

// bindings maps physical keys to intents. Several keys may share an intent.
var bindings = []binding{
	{ebiten.KeyArrowLeft, asteroids.IntentRotateLeft},
	{ebiten.KeyA, asteroids.IntentRotateLeft},
	{ebiten.KeyArrowRight, asteroids.IntentRotateRight},
	{ebiten.KeyD, asteroids.IntentRotateRight},
	{ebiten.KeyArrowUp, asteroids.IntentThrust},
	{ebiten.KeyW, asteroids.IntentThrust},
	{ebiten.KeySpace, asteroids.IntentFire},
	{ebiten.KeyG, asteroids.IntentDebugGrid},
	{ebiten.KeyEnter, asteroids.IntentStart},
	{ebiten.KeyP, asteroids.IntentPause},
	{ebiten.KeyM, asteroids.IntentMute},
	{ebiten.KeyF, asteroids.IntentFramerate},
}

// pollInput forwards this tick's key edges to the loop. A left click counts
// as the start intent so the game can be started without a keyboard.
func pollInput(l *asteroids.Loop) {
	for _, b := range bindings {
		if inpututil.IsKeyJustPressed(b.key) {
			l.KeyDown(b.intent)
		}
		if inpututil.IsKeyJustReleased(b.key) {
			l.KeyUp(b.intent)
		}
	}
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		l.KeyDown(asteroids.IntentStart)
	}
	if inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft) {
		l.KeyUp(asteroids.IntentStart)
	}
}
