// Package asteroids is the simulation core of a vector asteroids arcade game.
//
// The core has no graphics, audio or input dependency. Hosts supply a
// [Renderer], an optional [Audio] and a [Clock], translate their native
// input into [Intent] values, and call [Loop.Frame] once per display frame.
// Ready-made hosts live in the ebitenhost, termhost and snapshot packages.
//
// # Quick start
//
//	cfg := asteroids.DefaultConfig()
//	world := asteroids.NewWorld(cfg, asteroids.SystemClock{}, nil)
//	loop := asteroids.NewLoop(world)
//
//	canvas := asteroids.NewLineCanvas()
//	for {
//		canvas.Reset()
//		loop.Frame(canvas)
//		// stroke canvas.Segments, print canvas.Labels
//	}
//
// # Field and grid
//
// The play field is a torus: actors leaving one edge reappear at the
// opposite one. A [Grid] of square buckets partitions the field so each
// actor only tests the actors in its own bucket and the eight around it.
// Buckets on the outer rows and columns carry a [WrapOffset]; actors in
// them are drawn and tested a second time (and a third and fourth in the
// corners) shifted across the seam, so collisions work across edges.
//
// # Actors
//
// Every object is an [Actor]: one flat struct tagged with a [Kind]. Each
// frame a visible actor moves, re-enters the bucket under its position,
// draws itself and tests its outline against nearby actors using even-odd
// point-in-polygon. A hit notifies both actors, the tested one first.
//
// # Game flow
//
// A small state machine ([State]) sequences attract mode, round start, ship
// spawning, levels, death and game over. Its timers read the [Clock], so
// tests and replays drive it with a [ManualClock].
//
// # Scripts
//
// [LoadScript] parses a JSON list of press, release, tap, wait and
// snapshot steps. Hosts feed it to the loop one step per frame for
// automated runs.
package asteroids
