// Package ebitenhost runs an asteroids game in an Ebitengine window.
//
// The simulation draws into an asteroids.LineCanvas during Update; Draw
// replays the recorded segments with the vector package and the labels with
// the debug font, scaled to the requested size.
package ebitenhost

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/phanxgames/asteroids"
)

const (
	// debugGlyphW and debugGlyphH are the cell size of ebitenutil's debug font.
	debugGlyphW = 6
	debugGlyphH = 16

	maxCachedLabels = 64
)

// Options configures a Game.
type Options struct {
	// Script, if set, is stepped once per tick before the loop runs.
	Script *asteroids.Script
	// ScreenshotDir receives snapshot PNGs. Defaults to "screenshots".
	ScreenshotDir string
	// ExitWhenScriptDone ends the game once the script has finished and every
	// queued snapshot has been written.
	ExitWhenScriptDone bool
}

// Game adapts an asteroids.Loop to ebiten.Game.
type Game struct {
	loop   *asteroids.Loop
	canvas *asteroids.LineCanvas

	script        *asteroids.Script
	exitOnDone    bool
	screenshotDir string
	shots         []string

	labels map[string]*ebiten.Image
}

// New returns a Game driving w.
func New(w *asteroids.World, opts Options) *Game {
	dir := opts.ScreenshotDir
	if dir == "" {
		dir = "screenshots"
	}
	return &Game{
		loop:          asteroids.NewLoop(w),
		canvas:        asteroids.NewLineCanvas(),
		script:        opts.Script,
		exitOnDone:    opts.ExitWhenScriptDone,
		screenshotDir: dir,
		labels:        make(map[string]*ebiten.Image),
	}
}

// Loop returns the underlying frame loop.
func (g *Game) Loop() *asteroids.Loop { return g.loop }

// Update polls input, steps the script and runs one frame of the loop.
func (g *Game) Update() error {
	if g.script != nil {
		if g.script.Done() {
			if g.exitOnDone && len(g.shots) == 0 {
				return ebiten.Termination
			}
		} else if label := g.script.Step(g.loop); label != "" {
			g.shots = append(g.shots, label)
		}
	}
	pollInput(g.loop)

	g.canvas.Reset()
	g.loop.Frame(g.canvas)
	return nil
}

// Draw replays the last frame's segments and labels.
func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(color.Black)
	for _, s := range g.canvas.Segments {
		vector.StrokeLine(screen,
			float32(s.X0), float32(s.Y0), float32(s.X1), float32(s.Y1),
			float32(s.Width), color.White, true)
	}
	for _, l := range g.canvas.Labels {
		g.drawLabel(screen, l)
	}
	g.flushScreenshots(screen)
}

// Layout keeps the logical screen at the configured field size.
func (g *Game) Layout(_, _ int) (int, int) {
	cfg := g.loop.World.Config()
	return int(cfg.Width), int(cfg.Height)
}

func (g *Game) drawLabel(screen *ebiten.Image, l asteroids.Label) {
	img := g.labelImage(l.Text)
	s := l.Size / debugGlyphH
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(s, s)
	op.GeoM.Translate(l.X, l.Y-l.Size)
	screen.DrawImage(img, op)
}

// labelImage renders text with the debug font once and caches the result.
func (g *Game) labelImage(text string) *ebiten.Image {
	if img, ok := g.labels[text]; ok {
		return img
	}
	if len(g.labels) >= maxCachedLabels {
		for k, img := range g.labels {
			img.Deallocate()
			delete(g.labels, k)
		}
	}
	w := max(1, len([]rune(text))*debugGlyphW)
	img := ebiten.NewImage(w, debugGlyphH)
	ebitenutil.DebugPrint(img, text)
	g.labels[text] = img
	return img
}

// Run opens a window scaled by scale and blocks until it is closed.
func Run(g *Game, title string, scale float64) error {
	cfg := g.loop.World.Config()
	ebiten.SetWindowSize(int(cfg.Width*scale), int(cfg.Height*scale))
	ebiten.SetWindowTitle(title)
	ebiten.SetTPS(int(1000 / cfg.TickMillis))
	return ebiten.RunGame(g)
}
