package asteroids

// Renderer receives the vector drawing issued by actors, the HUD and the
// debug overlay. The model follows a 2D canvas: a transform stack, path
// construction and stroking. Angles are in radians.
type Renderer interface {
	Save()
	Restore()
	Translate(x, y float64)
	Rotate(rad float64)
	Scale(sx, sy float64)
	SetLineWidth(w float64)

	BeginPath()
	MoveTo(x, y float64)
	LineTo(x, y float64)
	ClosePath()
	Stroke()

	// Text draws s with its baseline starting at (x, y) in the current
	// transform. size is the nominal glyph height in pixels.
	Text(s string, size, x, y float64)
}

// Audio plays sound cues. Implementations must not block.
type Audio interface {
	Play(c Cue)
}

// Discard is a Renderer that draws nothing. Headless hosts pass it for
// frames nobody looks at.
var Discard Renderer = nopRenderer{}

// nopRenderer discards everything. It stands in when a frame is stepped
// without a renderer.
type nopRenderer struct{}

func (nopRenderer) Save()                                  {}
func (nopRenderer) Restore()                               {}
func (nopRenderer) Translate(float64, float64)             {}
func (nopRenderer) Rotate(float64)                         {}
func (nopRenderer) Scale(float64, float64)                 {}
func (nopRenderer) SetLineWidth(float64)                   {}
func (nopRenderer) BeginPath()                             {}
func (nopRenderer) MoveTo(float64, float64)                {}
func (nopRenderer) LineTo(float64, float64)                {}
func (nopRenderer) ClosePath()                             {}
func (nopRenderer) Stroke()                                {}
func (nopRenderer) Text(string, float64, float64, float64) {}
