package asteroids

// Polygon is a closed outline; the last point connects back to the first.
// Degenerate and self-intersecting outlines are allowed.
type Polygon []Vec2

// Contains reports whether (x, y) lies inside the polygon using the even-odd
// ray casting rule. Edges are half-open in y so a ray through a shared vertex
// is counted once. Polygons with fewer than three points contain nothing.
func (p Polygon) Contains(x, y float64) bool {
	n := len(p)
	if n < 3 {
		return false
	}
	inside := false
	j := n - 1
	for i := 0; i < n; i++ {
		xi, yi := p[i].X, p[i].Y
		xj, yj := p[j].X, p[j].Y
		if (yi > y) != (yj > y) && x < (xj-xi)*(y-yi)/(yj-yi)+xi {
			inside = !inside
		}
		j = i
	}
	return inside
}

// transform writes m applied to every point of p into dst and returns it.
func (p Polygon) transform(m Matrix, dst Polygon) Polygon {
	dst = dst[:0]
	for _, pt := range p {
		x, y := m.Apply(pt.X, pt.Y)
		dst = append(dst, Vec2{x, y})
	}
	return dst
}

// reversed returns a copy of p with the vertex order flipped.
func (p Polygon) reversed() Polygon {
	out := make(Polygon, len(p))
	for i, pt := range p {
		out[len(p)-1-i] = pt
	}
	return out
}

// trace issues the path commands that stroke p as a closed outline.
func (p Polygon) trace(r Renderer) {
	if len(p) == 0 {
		return
	}
	r.MoveTo(p[0].X, p[0].Y)
	for _, pt := range p[1:] {
		r.LineTo(pt.X, pt.Y)
	}
	r.ClosePath()
}
