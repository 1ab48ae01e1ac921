package ebitenhost

import (
	"fmt"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"time"
	"unicode"
	"unicode/utf8"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/phanxgames/asteroids"
)

// flushScreenshots captures the rendered frame for every queued label and
// writes each as a PNG file. Called at the end of Draw.
func (g *Game) flushScreenshots(screen *ebiten.Image) {
	if len(g.shots) == 0 {
		return
	}
	defer func() { g.shots = g.shots[:0] }()

	log := asteroids.Logger()
	if err := os.MkdirAll(g.screenshotDir, 0o755); err != nil {
		log.Warn("screenshot mkdir failed", "dir", g.screenshotDir, "err", err)
		return
	}

	bounds := screen.Bounds()
	w, h := bounds.Dx(), bounds.Dy()
	pixels := make([]byte, 4*w*h)
	screen.ReadPixels(pixels)
	img := toNRGBA(pixels, w, h)

	stamp := time.Now().Format("20060102_150405")
	for _, label := range g.shots {
		path := shotPath(g.screenshotDir, stamp, label)
		if err := savePNG(path, img); err != nil {
			log.Warn("screenshot failed", "err", err)
			continue
		}
		log.Info("screenshot", "path", path)
	}
}

// toNRGBA converts premultiplied RGBA pixels to straight alpha.
func toNRGBA(pixels []byte, w, h int) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for i := 0; i+3 < len(pixels) && i+3 < len(img.Pix); i += 4 {
		r, g, b, a := pixels[i], pixels[i+1], pixels[i+2], pixels[i+3]
		if a > 0 && a < 255 {
			r = uint8(min(int(r)*255/int(a), 255))
			g = uint8(min(int(g)*255/int(a), 255))
			b = uint8(min(int(b)*255/int(a), 255))
		}
		img.Pix[i] = r
		img.Pix[i+1] = g
		img.Pix[i+2] = b
		img.Pix[i+3] = a
	}
	return img
}

// savePNG encodes img to a new file at path.
func savePNG(path string, img image.Image) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer func() {
		if cerr := f.Close(); err == nil && cerr != nil {
			err = fmt.Errorf("close %s: %w", path, cerr)
		}
	}()
	if err := png.Encode(f, img); err != nil {
		return fmt.Errorf("encode %s: %w", path, err)
	}
	return nil
}

// shotPath names the PNG for a script snapshot label. Labels come from
// script files, so anything other than ASCII letters, digits, '-' and '.'
// becomes '_' and a blank label is written as "snapshot".
func shotPath(dir, stamp, label string) string {
	label = strings.TrimSpace(label)
	if label == "" {
		label = "snapshot"
	}
	name := strings.Map(func(r rune) rune {
		if r == '-' || r == '.' || r < utf8.RuneSelf && (unicode.IsLetter(r) || unicode.IsDigit(r)) {
			return r
		}
		return '_'
	}, label)
	return filepath.Join(dir, stamp+"_"+name+".png")
}
