package asteroids

// Segment is a stroked line in screen space.
type Segment struct {
	X0, Y0, X1, Y1 float64
	Width          float64
}

// Label is a text draw in screen space. Y is the baseline.
type Label struct {
	Text string
	Size float64
	X, Y float64
}

type canvasState struct {
	m         Matrix
	lineWidth float64
}

// LineCanvas is a Renderer that flattens every stroke into screen-space
// segments. Hosts that can only draw lines replay Segments and Labels after
// each frame. Stroke widths are scaled by the transform in effect at
// Stroke time.
type LineCanvas struct {
	Segments []Segment
	Labels   []Label

	state canvasState
	stack []canvasState

	path       []Vec2 // pending segment endpoints, pairs in screen space
	cur, start Vec2
	hasCur     bool
}

// NewLineCanvas returns an empty canvas with an identity transform.
func NewLineCanvas() *LineCanvas {
	c := &LineCanvas{}
	c.Reset()
	return c
}

// Reset drops all recorded output and restores the initial state.
func (c *LineCanvas) Reset() {
	c.Segments = c.Segments[:0]
	c.Labels = c.Labels[:0]
	c.state = canvasState{m: IdentityMatrix, lineWidth: 1}
	c.stack = c.stack[:0]
	c.path = c.path[:0]
	c.hasCur = false
}

// Save pushes the current transform and line width.
func (c *LineCanvas) Save() { c.stack = append(c.stack, c.state) }

// Restore pops the state pushed by Save. An unmatched Restore is ignored.
func (c *LineCanvas) Restore() {
	if len(c.stack) == 0 {
		return
	}
	c.state = c.stack[len(c.stack)-1]
	c.stack = c.stack[:len(c.stack)-1]
}

// Translate moves the origin by (x, y).
func (c *LineCanvas) Translate(x, y float64) {
	c.state.m = c.state.m.Multiply(translateMatrix(x, y))
}

// Rotate turns the axes by rad radians.
func (c *LineCanvas) Rotate(rad float64) {
	c.state.m = c.state.m.Multiply(rotateMatrix(rad))
}

// Scale stretches the axes by sx and sy.
func (c *LineCanvas) Scale(sx, sy float64) {
	c.state.m = c.state.m.Multiply(scaleMatrix(sx, sy))
}

// SetLineWidth sets the stroke width in local units.
func (c *LineCanvas) SetLineWidth(w float64) { c.state.lineWidth = w }

// BeginPath drops any pending path.
func (c *LineCanvas) BeginPath() {
	c.path = c.path[:0]
	c.hasCur = false
}

// MoveTo starts a subpath at (x, y).
func (c *LineCanvas) MoveTo(x, y float64) {
	x, y = c.state.m.Apply(x, y)
	c.cur = Vec2{x, y}
	c.start = c.cur
	c.hasCur = true
}

// LineTo adds a segment from the current point to (x, y).
func (c *LineCanvas) LineTo(x, y float64) {
	x, y = c.state.m.Apply(x, y)
	p := Vec2{x, y}
	if !c.hasCur {
		c.cur, c.start, c.hasCur = p, p, true
		return
	}
	c.path = append(c.path, c.cur, p)
	c.cur = p
}

// ClosePath joins the current point back to the subpath start.
func (c *LineCanvas) ClosePath() {
	if !c.hasCur {
		return
	}
	if c.cur != c.start {
		c.path = append(c.path, c.cur, c.start)
	}
	c.cur = c.start
}

// Stroke records the pending segments. The path is kept until the next
// BeginPath.
func (c *LineCanvas) Stroke() {
	w := c.state.lineWidth * c.state.m.scaleFactor()
	for i := 0; i+1 < len(c.path); i += 2 {
		a, b := c.path[i], c.path[i+1]
		c.Segments = append(c.Segments, Segment{a.X, a.Y, b.X, b.Y, w})
	}
}

// Text records a label at the transformed baseline position.
func (c *LineCanvas) Text(s string, size, x, y float64) {
	x, y = c.state.m.Apply(x, y)
	c.Labels = append(c.Labels, Label{Text: s, Size: size * c.state.m.scaleFactor(), X: x, Y: y})
}
