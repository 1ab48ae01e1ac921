package asteroids

import "math"

// Matrix is a 2D affine matrix stored as [a, b, c, d, tx, ty]:
//
//	| a  c  tx |
//	| b  d  ty |
//	| 0  0   1 |
type Matrix [6]float64

// IdentityMatrix leaves points unchanged.
var IdentityMatrix = Matrix{1, 0, 0, 1, 0, 0}

// Configure builds the local-to-world matrix for an actor with uniform scale
// s at pose p. Rotation is in degrees.
func Configure(s float64, p Pose) Matrix {
	sin, cos := math.Sincos(radians(p.Rot))
	return Matrix{cos * s, sin * s, -sin * s, cos * s, p.X, p.Y}
}

// Apply transforms the point (x, y) as a homogeneous vector with w = 1.
func (m Matrix) Apply(x, y float64) (float64, float64) {
	return m[0]*x + m[2]*y + m[4], m[1]*x + m[3]*y + m[5]
}

// Multiply returns m * c, applying c first.
func (m Matrix) Multiply(c Matrix) Matrix {
	return Matrix{
		m[0]*c[0] + m[2]*c[1],
		m[1]*c[0] + m[3]*c[1],
		m[0]*c[2] + m[2]*c[3],
		m[1]*c[2] + m[3]*c[3],
		m[0]*c[4] + m[2]*c[5] + m[4],
		m[1]*c[4] + m[3]*c[5] + m[5],
	}
}

// Invert returns the inverse of m, or the identity if m is singular.
func (m Matrix) Invert() Matrix {
	det := m.det()
	if det > -1e-12 && det < 1e-12 {
		return IdentityMatrix
	}
	invDet := 1.0 / det
	a := m[3] * invDet
	b := -m[1] * invDet
	c := -m[2] * invDet
	d := m[0] * invDet
	return Matrix{
		a, b, c, d,
		-(a*m[4] + c*m[5]),
		-(b*m[4] + d*m[5]),
	}
}

func (m Matrix) det() float64 { return m[0]*m[3] - m[2]*m[1] }

// scaleFactor is the uniform scale the matrix applies to lengths.
func (m Matrix) scaleFactor() float64 { return math.Sqrt(math.Abs(m.det())) }

func translateMatrix(x, y float64) Matrix { return Matrix{1, 0, 0, 1, x, y} }

func rotateMatrix(rad float64) Matrix {
	sin, cos := math.Sincos(rad)
	return Matrix{cos, sin, -sin, cos, 0, 0}
}

func scaleMatrix(sx, sy float64) Matrix { return Matrix{sx, 0, 0, sy, 0, 0} }
