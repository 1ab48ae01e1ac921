// asteroids-replay runs an input script headless on a simulated clock and
// writes a PNG for every snapshot step. The same seed and script always
// produce the same images.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"time"

	"github.com/phanxgames/asteroids"
	"github.com/phanxgames/asteroids/internal/cli"
	"github.com/phanxgames/asteroids/snapshot"
)

func main() {
	var (
		flags      cli.Flags
		scriptPath string
		outDir     string
		maxFrames  int
		fps        int
	)
	flags.Register(flag.CommandLine)
	flag.StringVar(&scriptPath, "script", "", "input script to replay (required)")
	flag.StringVar(&outDir, "out", "snapshots", "output directory")
	flag.IntVar(&maxFrames, "frames", 10_000, "stop after this many frames")
	flag.IntVar(&fps, "fps", 33, "simulated frames per second")
	flag.Parse()

	logger, err := flags.Logger(os.Stderr)
	if err != nil {
		log.Fatal(err)
	}
	if scriptPath == "" || fps <= 0 {
		flag.Usage()
		os.Exit(2)
	}
	cfg, err := flags.Config()
	if err != nil {
		log.Fatal(err)
	}
	if cfg.Seed == 0 {
		cfg.Seed = 1
	}
	data, err := os.ReadFile(scriptPath)
	if err != nil {
		log.Fatalf("read script: %v", err)
	}
	script, err := asteroids.LoadScript(data)
	if err != nil {
		log.Fatal(err)
	}
	if err := os.MkdirAll(outDir, 0o755); err != nil {
		log.Fatal(err)
	}

	canvas, err := snapshot.New(int(cfg.Width), int(cfg.Height))
	if err != nil {
		log.Fatal(err)
	}
	defer canvas.Close()

	clock := asteroids.NewManualClock(time.Unix(0, 0))
	loop := asteroids.NewLoop(asteroids.NewWorld(cfg, clock, nil))
	step := time.Second / time.Duration(fps)

	written := 0
	for frame := 0; frame < maxFrames && !script.Done(); frame++ {
		clock.Advance(step)
		label := script.Step(loop)
		if label == "" {
			loop.Frame(asteroids.Discard)
			continue
		}
		canvas.Clear()
		loop.Frame(canvas)
		if err := canvas.Err(); err != nil {
			logger.Warn("render", "frame", frame, "err", err)
		}
		path := filepath.Join(outDir, fmt.Sprintf("%05d_%s.png", frame, label))
		if err := canvas.SavePNG(path); err != nil {
			log.Fatal(err)
		}
		written++
		logger.Info("snapshot", "frame", frame, "path", path)
	}
	logger.Info("replay finished", "snapshots", written, "state", loop.World.State().String(), "score", loop.World.Score)
}
