package asteroids

// bulletLifetime is the number of ticks a bullet stays in flight.
const bulletLifetime = 50.0

// newBullet builds a hidden bullet of the given kind. Bullets have no
// outline; their position is their only test point.
func newBullet(w *World, kind Kind) *Actor {
	return newActor(w, kind)
}

func bulletPreMove(b *Actor, delta float64) {
	b.counter += delta
	if b.counter > bulletLifetime {
		b.counter = 0
		b.hide()
	}
}

func bulletCollide(b *Actor) {
	b.counter = 0
	b.hide()
}

// drawBullet strokes a small cross at the bullet's world position.
func drawBullet(b *Actor, r Renderer) {
	x, y := b.Pos.X, b.Pos.Y
	r.SetLineWidth(2)
	r.BeginPath()
	r.MoveTo(x-1, y-1)
	r.LineTo(x+1, y+1)
	r.MoveTo(x+1, y-1)
	r.LineTo(x-1, y+1)
	r.Stroke()
}

// drawAlienBullet strokes a trail from the bullet back along its velocity.
func drawAlienBullet(b *Actor, r Renderer) {
	x, y := b.Pos.X, b.Pos.Y
	r.SetLineWidth(2)
	r.BeginPath()
	r.MoveTo(x, y)
	r.LineTo(x-b.Vel.X, y-b.Vel.Y)
	r.Stroke()
}
