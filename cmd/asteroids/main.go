// asteroids opens a window and plays the game with keyboard controls:
// arrows to turn and thrust, space to fire, enter to start, P to pause,
// M to mute, F for the framerate and G to show the collision grid.
//
// With -script the given input script is replayed, snapshots are written to
// -shots and the window closes when the script ends.
package main

import (
	"flag"
	"log"
	"os"

	"github.com/phanxgames/asteroids"
	"github.com/phanxgames/asteroids/ebitenhost"
	"github.com/phanxgames/asteroids/internal/cli"
)

func main() {
	var (
		flags      cli.Flags
		scale      float64
		scriptPath string
		shotsDir   string
	)
	flags.Register(flag.CommandLine)
	flag.Float64Var(&scale, "scale", 1, "window scale factor")
	flag.StringVar(&scriptPath, "script", "", "input script to replay")
	flag.StringVar(&shotsDir, "shots", "screenshots", "directory for script snapshots")
	flag.Parse()

	logger, err := flags.Logger(os.Stderr)
	if err != nil {
		log.Fatal(err)
	}
	cfg, err := flags.Config()
	if err != nil {
		log.Fatal(err)
	}

	opts := ebitenhost.Options{ScreenshotDir: shotsDir}
	if scriptPath != "" {
		data, err := os.ReadFile(scriptPath)
		if err != nil {
			log.Fatalf("read script: %v", err)
		}
		if opts.Script, err = asteroids.LoadScript(data); err != nil {
			log.Fatal(err)
		}
		opts.ExitWhenScriptDone = true
	}

	world := asteroids.NewWorld(cfg, asteroids.SystemClock{}, ebitenhost.NewAudio())
	game := ebitenhost.New(world, opts)
	logger.Info("starting", "width", cfg.Width, "height", cfg.Height, "seed", cfg.Seed)
	if err := ebitenhost.Run(game, "Asteroids", scale); err != nil {
		log.Fatal(err)
	}
}
