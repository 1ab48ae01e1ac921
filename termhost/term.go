// Package termhost runs an asteroids game in a terminal.
//
// Each frame is drawn into an asteroids.LineCanvas and rasterized onto a
// braille dot grid, giving eight dots per character cell. Labels are printed
// as plain text over the grid.
package termhost

import (
	"context"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/phanxgames/asteroids"
)

const frameInterval = 16 * time.Millisecond

// Host draws a Loop onto a tcell screen.
type Host struct {
	screen tcell.Screen
	loop   *asteroids.Loop
	canvas *asteroids.LineCanvas
	dots   *brailleGrid
	holds  holds

	style tcell.Style
	text  tcell.Style
}

// New returns a host for an initialized screen. The caller owns the screen
// and must Fini it after Run returns.
func New(screen tcell.Screen, l *asteroids.Loop) *Host {
	cols, rows := screen.Size()
	return &Host{
		screen: screen,
		loop:   l,
		canvas: asteroids.NewLineCanvas(),
		dots:   newBrailleGrid(cols, rows),
		holds:  newHolds(),
		style:  tcell.StyleDefault.Foreground(tcell.ColorGreen),
		text:   tcell.StyleDefault.Foreground(tcell.ColorWhite).Bold(true),
	}
}

// Run pumps events and draws frames until ctx is done or a quit key is
// pressed.
func (h *Host) Run(ctx context.Context) error {
	ticker := time.NewTicker(frameInterval)
	defer ticker.Stop()

	events := make(chan tcell.Event, 100)
	go func() {
		for {
			ev := h.screen.PollEvent()
			if ev == nil {
				return
			}
			select {
			case events <- ev:
			case <-ctx.Done():
				return
			}
		}
	}()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case ev := <-events:
			if h.handleEvent(ev, time.Now()) {
				return nil
			}
		case now := <-ticker.C:
			h.frame(now)
		}
	}
}

// handleEvent applies one terminal event and reports whether to quit.
func (h *Host) handleEvent(ev tcell.Event, now time.Time) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		if isQuit(ev) {
			return true
		}
		if in, ok := intentFor(ev); ok {
			h.holds.press(h.loop, in, now)
		}
	case *tcell.EventResize:
		cols, rows := h.screen.Size()
		h.dots.resize(cols, rows)
		h.screen.Sync()
	}
	return false
}

// frame runs one loop frame and presents it.
func (h *Host) frame(now time.Time) {
	h.holds.expire(h.loop, now)
	h.canvas.Reset()
	h.loop.Frame(h.canvas)
	h.draw()
}

func (h *Host) draw() {
	cfg := h.loop.World.Config()
	h.dots.clear()
	h.dots.plot(h.canvas.Segments, cfg.Width, cfg.Height)

	h.screen.Clear()
	for row := 0; row < h.dots.rows; row++ {
		for col := 0; col < h.dots.cols; col++ {
			if r := h.dots.cell(col, row); r != ' ' {
				h.screen.SetContent(col, row, r, nil, h.style)
			}
		}
	}
	for _, l := range h.canvas.Labels {
		h.drawLabel(l, cfg)
	}
	h.screen.Show()
}

// drawLabel prints a label at the cell holding the middle of its glyphs.
func (h *Host) drawLabel(l asteroids.Label, cfg asteroids.Config) {
	col := int(l.X / cfg.Width * float64(h.dots.cols))
	row := int((l.Y - l.Size/2) / cfg.Height * float64(h.dots.rows))
	row = max(0, min(row, h.dots.rows-1))
	col = max(0, min(col, h.dots.cols-len([]rune(l.Text))))
	for i, r := range []rune(l.Text) {
		h.screen.SetContent(col+i, row, r, nil, h.text)
	}
}
