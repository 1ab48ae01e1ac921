// asteroids-term plays the game in a terminal using braille characters.
// Logs go to stderr, so redirect it when playing: asteroids-term 2>game.log
package main

import (
	"context"
	"errors"
	"flag"
	"log"
	"os"
	"os/signal"

	"github.com/gdamore/tcell/v2"

	"github.com/phanxgames/asteroids"
	"github.com/phanxgames/asteroids/internal/cli"
	"github.com/phanxgames/asteroids/termhost"
)

func main() {
	var (
		flags cli.Flags
		quiet bool
	)
	flags.Register(flag.CommandLine)
	flag.BoolVar(&quiet, "quiet", false, "do not open the audio device")
	flag.Parse()

	if _, err := flags.Logger(os.Stderr); err != nil {
		log.Fatal(err)
	}
	cfg, err := flags.Config()
	if err != nil {
		log.Fatal(err)
	}

	var audio asteroids.Audio
	if !quiet {
		a := termhost.NewAudio()
		defer a.Close()
		audio = a
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		log.Fatal(err)
	}
	if err := screen.Init(); err != nil {
		log.Fatal(err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	world := asteroids.NewWorld(cfg, asteroids.SystemClock{}, audio)
	err = termhost.New(screen, asteroids.NewLoop(world)).Run(ctx)
	screen.Fini()
	if err != nil && !errors.Is(err, context.Canceled) {
		log.Fatal(err)
	}
}
