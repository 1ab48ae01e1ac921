package asteroids

import "math"

// WrapOffset is the displacement that carries a replica of an actor in an
// edge bucket across the seam to the opposite edge. Interior buckets have
// neither component.
type WrapOffset struct {
	H, V       float64
	HasH, HasV bool
}

// Bucket is one cell of the grid. Members form an intrusive singly linked
// list threaded through Actor.next, newest first.
type Bucket struct {
	Col, Row int
	Wrap     WrapOffset

	north, south, east, west *Bucket
	head                     *Actor
}

// Head returns the most recently entered member, or nil if the bucket is empty.
func (b *Bucket) Head() *Actor { return b.head }

// Enter pushes a onto the front of the member list and records the bucket on a.
func (b *Bucket) Enter(a *Actor) {
	a.next = b.head
	b.head = a
	a.bucket = b
}

// Leave unlinks a from the member list. Leaving a bucket the actor is not in
// is a no-op.
func (b *Bucket) Leave(a *Actor) {
	if b.head == a {
		b.head = a.next
	} else {
		prev := b.head
		for prev != nil && prev.next != a {
			prev = prev.next
		}
		if prev == nil {
			return
		}
		prev.next = a.next
	}
	a.next = nil
	if a.bucket == b {
		a.bucket = nil
	}
}

// Each calls fn for every member in list order.
func (b *Bucket) Each(fn func(*Actor)) {
	for a := b.head; a != nil; a = a.next {
		fn(a)
	}
}

// IsEmptyOf reports whether no visible member has a kind in kinds.
func (b *Bucket) IsEmptyOf(kinds KindSet) bool {
	for a := b.head; a != nil; a = a.next {
		if a.Visible && kinds.Has(a.Kind) {
			return false
		}
	}
	return true
}

// North and the other accessors return the toroidal neighbours.
func (b *Bucket) North() *Bucket { return b.north }
func (b *Bucket) South() *Bucket { return b.south }
func (b *Bucket) East() *Bucket  { return b.east }
func (b *Bucket) West() *Bucket  { return b.west }

// Grid partitions the play field into square buckets. Links wrap at every
// edge so the field is a torus.
type Grid struct {
	cols, rows    int
	cell          float64
	width, height float64
	buckets       []Bucket
}

// NewGrid builds a grid covering width by height with square cells of edge
// cell. Partial cells at the far edges are kept.
func NewGrid(width, height, cell float64) *Grid {
	g := &Grid{
		cols:   max(1, int(math.Ceil(width/cell))),
		rows:   max(1, int(math.Ceil(height/cell))),
		cell:   cell,
		width:  width,
		height: height,
	}
	g.buckets = make([]Bucket, g.cols*g.rows)
	for row := 0; row < g.rows; row++ {
		for col := 0; col < g.cols; col++ {
			b := g.at(col, row)
			b.Col, b.Row = col, row
			b.north = g.Bucket(col, row-1)
			b.south = g.Bucket(col, row+1)
			b.east = g.Bucket(col+1, row)
			b.west = g.Bucket(col-1, row)

			if row == 0 {
				b.Wrap.V, b.Wrap.HasV = height, true
			} else if row == g.rows-1 {
				b.Wrap.V, b.Wrap.HasV = -height, true
			}
			if col == 0 {
				b.Wrap.H, b.Wrap.HasH = width, true
			} else if col == g.cols-1 {
				b.Wrap.H, b.Wrap.HasH = -width, true
			}
		}
	}
	return g
}

func (g *Grid) at(col, row int) *Bucket { return &g.buckets[row*g.cols+col] }

// Cols returns the number of bucket columns.
func (g *Grid) Cols() int { return g.cols }

// Rows returns the number of bucket rows.
func (g *Grid) Rows() int { return g.rows }

// CellSize returns the bucket edge length.
func (g *Grid) CellSize() float64 { return g.cell }

// Bucket returns the bucket at (col, row). Out-of-range indices wrap.
func (g *Grid) Bucket(col, row int) *Bucket {
	col %= g.cols
	if col < 0 {
		col += g.cols
	}
	row %= g.rows
	if row < 0 {
		row += g.rows
	}
	return g.at(col, row)
}

// Locate returns the bucket containing the world position (x, y). Positions
// outside the field are folded back onto it first.
func (g *Grid) Locate(x, y float64) *Bucket {
	x = wrapCoord(x, g.width)
	y = wrapCoord(y, g.height)
	return g.Bucket(int(math.Floor(x/g.cell)), int(math.Floor(y/g.cell)))
}

// Neighborhood returns b followed by its N, S, E, W, NE, NW, SE and SW
// neighbours.
func (g *Grid) Neighborhood(b *Bucket) [9]*Bucket {
	return [9]*Bucket{
		b,
		b.north, b.south, b.east, b.west,
		b.north.east, b.north.west,
		b.south.east, b.south.west,
	}
}

// Each calls fn for every bucket in row-major order.
func (g *Grid) Each(fn func(*Bucket)) {
	for i := range g.buckets {
		fn(&g.buckets[i])
	}
}
