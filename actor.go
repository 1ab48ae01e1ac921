package asteroids

import "github.com/tanema/gween"

// Part is a rigid outline drawn in its parent's local space. Parts are not
// simulated and never collide.
type Part struct {
	Name    string
	Outline Polygon
	Visible bool
}

// Actor is a simulated object. A single flat struct is used for every kind;
// per-kind behavior is selected by switching on Kind.
type Actor struct {
	Kind    Kind
	Outline Polygon
	Parts   []Part

	Pos, Vel, Acc Pose
	Scale         float64

	Visible bool
	// Reap marks the actor for removal at the end of the frame.
	Reap bool

	// WrapH and WrapV enable replica passes across the vertical and
	// horizontal seams respectively.
	WrapH, WrapV bool

	CollidesWith KindSet

	world  *World
	bucket *Bucket
	next   *Actor

	worldOutline Polygon
	outlineValid bool

	// Kind state. counter is the fire cooldown for shooters and the age of
	// bullets.
	counter float64
	bullets []*Actor
	growth  *gween.Tween
}

func newActor(w *World, kind Kind) *Actor {
	return &Actor{Kind: kind, Scale: 1, world: w}
}

// Bucket returns the grid bucket the actor currently occupies, or nil.
func (a *Actor) Bucket() *Bucket { return a.bucket }

// Matrix returns the actor's local-to-world transform.
func (a *Actor) Matrix() Matrix { return Configure(a.Scale, a.Pos) }

// part returns the named part, or nil.
func (a *Actor) part(name string) *Part {
	for i := range a.Parts {
		if a.Parts[i].Name == name {
			return &a.Parts[i]
		}
	}
	return nil
}

// WorldOutline returns the outline in world space, computed lazily and
// cached until the actor next moves. Actors without an outline report their
// position as a single point.
func (a *Actor) WorldOutline() Polygon {
	if a.outlineValid {
		return a.worldOutline
	}
	if len(a.Outline) == 0 {
		a.worldOutline = append(a.worldOutline[:0], Vec2{a.Pos.X, a.Pos.Y})
	} else {
		a.worldOutline = a.Outline.transform(a.Matrix(), a.worldOutline)
	}
	a.outlineValid = true
	return a.worldOutline
}

func (a *Actor) invalidate() { a.outlineValid = false }

// hide makes the actor invisible and removes it from the grid.
func (a *Actor) hide() {
	a.Visible = false
	if a.bucket != nil {
		a.bucket.Leave(a)
	}
}

// die hides the actor and flags it for removal.
func (a *Actor) die() {
	a.hide()
	a.Reap = true
}

// move advances the actor by delta ticks.
func (a *Actor) move(delta float64) {
	if !a.Visible {
		return
	}
	a.invalidate()
	a.preMove(delta)

	a.Vel.X += a.Acc.X * delta
	a.Vel.Y += a.Acc.Y * delta
	a.Pos.X += a.Vel.X * delta
	a.Pos.Y += a.Vel.Y * delta
	a.Pos.Rot = wrapDegrees(a.Pos.Rot + a.Vel.Rot*delta)

	a.postMove()
}

// rebucket moves the actor into the bucket under its position.
func (a *Actor) rebucket() {
	if !a.Visible {
		return
	}
	b := a.world.grid.Locate(a.Pos.X, a.Pos.Y)
	if b == a.bucket {
		return
	}
	if a.bucket != nil {
		a.bucket.Leave(a)
	}
	b.Enter(a)
}

// run is the per-frame update: move, re-bucket, draw and collide, then
// repeat the draw and collide for each wrap replica.
func (a *Actor) run(r Renderer, delta float64) {
	a.move(delta)
	if !a.Visible {
		return
	}
	a.rebucket()

	heads := a.candidates()
	a.render(r)
	a.checkAgainst(heads)

	if a.bucket == nil {
		return
	}
	off := a.bucket.Wrap
	if a.WrapH && off.HasH {
		a.replica(r, heads, off.H, 0)
	}
	if a.bucket != nil && a.WrapV && off.HasV {
		a.replica(r, heads, 0, off.V)
	}
	if a.bucket != nil && a.WrapH && a.WrapV && off.HasH && off.HasV {
		a.replica(r, heads, off.H, off.V)
	}
}

// replica draws and collides a copy of the actor displaced by (dx, dy).
func (a *Actor) replica(r Renderer, heads []*Actor, dx, dy float64) {
	home := a.Pos
	a.Pos.X += dx
	a.Pos.Y += dy
	shifted := a.Pos
	a.invalidate()

	a.render(r)
	a.checkAgainst(heads)

	// A collision may have repositioned the actor; keep that.
	if a.Pos == shifted {
		a.Pos.X, a.Pos.Y = home.X, home.Y
	}
	a.invalidate()
}

// render draws the actor in its own transform.
func (a *Actor) render(r Renderer) {
	if !a.Visible {
		return
	}
	r.Save()
	a.applyTransform(r)
	a.draw(r)
	r.Restore()
}

func (a *Actor) applyTransform(r Renderer) {
	switch a.Kind {
	case KindBullet, KindAlienBullet:
		// Bullets draw in world space.
		return
	}
	r.Translate(a.Pos.X, a.Pos.Y)
	r.Rotate(radians(a.Pos.Rot))
	r.Scale(a.Scale, a.Scale)
	r.SetLineWidth(1 / a.Scale)
}

func (a *Actor) draw(r Renderer) {
	switch a.Kind {
	case KindBullet:
		drawBullet(a, r)
	case KindAlienBullet:
		drawAlienBullet(a, r)
	case KindExplosion:
		drawExplosion(a, r)
	default:
		drawOutline(a, r)
	}
}

// drawOutline strokes the visible parts and then the actor's own outline.
func drawOutline(a *Actor, r Renderer) {
	for i := range a.Parts {
		if a.Parts[i].Visible {
			r.BeginPath()
			a.Parts[i].Outline.trace(r)
			r.Stroke()
		}
	}
	r.BeginPath()
	a.Outline.trace(r)
	r.Stroke()
}

func (a *Actor) preMove(delta float64) {
	switch a.Kind {
	case KindShip:
		shipPreMove(a, delta)
	case KindBullet, KindAlienBullet:
		bulletPreMove(a, delta)
	case KindBigAlien:
		alienPreMove(a, delta)
	case KindExplosion:
		explosionPreMove(a, delta)
	}
}

func (a *Actor) postMove() {
	switch a.Kind {
	case KindBigAlien:
		alienPostMove(a)
	default:
		wrapPostMove(a)
	}
}

// collide is the reaction of a to being hit by other.
func (a *Actor) collide(other *Actor) {
	switch a.Kind {
	case KindShip:
		shipCollide(a, other)
	case KindBullet, KindAlienBullet:
		bulletCollide(a)
	case KindAsteroid:
		asteroidCollide(a, other)
	case KindBigAlien:
		alienCollide(a, other)
	}
}

// wrapPostMove folds the position back onto the torus, keeping any
// overshoot past the edge.
func wrapPostMove(a *Actor) {
	a.Pos.X = wrapCoord(a.Pos.X, a.world.cfg.Width)
	a.Pos.Y = wrapCoord(a.Pos.Y, a.world.cfg.Height)
}

// isClear reports whether the 3x3 neighbourhood around the actor holds no
// visible actor it could collide with.
func (a *Actor) isClear() bool {
	if a.CollidesWith.Empty() {
		return true
	}
	b := a.bucket
	if b == nil {
		b = a.world.grid.Locate(a.Pos.X, a.Pos.Y)
	}
	for _, n := range a.world.grid.Neighborhood(b) {
		if !n.IsEmptyOf(a.CollidesWith) {
			return false
		}
	}
	return true
}
