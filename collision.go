package asteroids

// candidates returns the non-empty chain heads of the 3x3 neighbourhood
// around the actor's bucket. The slice aliases a world scratch buffer and is
// valid until the next call.
func (a *Actor) candidates() []*Actor {
	if a.bucket == nil {
		return nil
	}
	heads := a.world.headBuf[:0]
	for _, b := range a.world.grid.Neighborhood(a.bucket) {
		if b.head != nil {
			heads = append(heads, b.head)
		}
	}
	return heads
}

// checkAgainst tests a against every member of every chain in heads. The
// walk stops as soon as a stops being visible.
func (a *Actor) checkAgainst(heads []*Actor) {
	for _, head := range heads {
		for b := head; b != nil; {
			if !a.Visible {
				return
			}
			next := b.next
			a.test(b)
			b = next
		}
	}
}

// test reports whether any test point of b lies inside a's outline. On the
// first hit both sides are notified, b first, and testing stops.
func (a *Actor) test(b *Actor) bool {
	if !b.Visible || a == b || !a.CollidesWith.Has(b.Kind) {
		return false
	}
	a.world.stats.CollisionTests++
	container := a.WorldOutline()
	for _, p := range b.WorldOutline() {
		if container.Contains(p.X, p.Y) {
			b.collide(a)
			a.collide(b)
			return true
		}
	}
	return false
}
