package geom

import "math"

// Matrix2D is a 2D affine transform in SVG's row-vector convention:
// x2 = x1*A + y1*C + E, y2 = x1*B + y1*D + F. Adapted from oksvg's
// Matrix2D, trimmed to the affine-transform core since propose never
// rasterizes a path (no fixed.Point26_6/MatrixAdder plumbing is needed).
type Matrix2D struct {
	A, B, C, D, E, F float64
}

// Identity is the no-op transform.
var Identity = Matrix2D{1, 0, 0, 1, 0, 0}

// Mult composes a and b: applying a.Mult(b) to a point is equivalent to
// transforming by b first, then by a.
func (a Matrix2D) Mult(b Matrix2D) Matrix2D {
	return Matrix2D{
		A: a.A*b.A + a.C*b.B,
		B: a.B*b.A + a.D*b.B,
		C: a.A*b.C + a.C*b.D,
		D: a.B*b.C + a.D*b.D,
		E: a.A*b.E + a.C*b.F + a.E,
		F: a.B*b.E + a.D*b.F + a.F,
	}
}

// Transform applies the matrix to a point.
func (m Matrix2D) Transform(x1, y1 float64) (x2, y2 float64) {
	x2 = x1*m.A + y1*m.C + m.E
	y2 = x1*m.B + y1*m.D + m.F
	return
}

// TransformPoint is the Point-typed form of Transform.
func (m Matrix2D) TransformPoint(p Point) Point {
	x, y := m.Transform(p.X, p.Y)
	return Point{x, y}
}

func (a Matrix2D) Scale(x, y float64) Matrix2D {
	return a.Mult(Matrix2D{A: x, B: 0, C: 0, D: y, E: 0, F: 0})
}

func (a Matrix2D) Translate(x, y float64) Matrix2D {
	return Matrix2D{A: a.A, B: a.B, C: a.C, D: a.D, E: a.E + x, F: a.F + y}
}

func (a Matrix2D) Rotate(theta float64) Matrix2D {
	return a.Mult(Matrix2D{
		A: math.Cos(theta), B: math.Sin(theta),
		C: -math.Sin(theta), D: math.Cos(theta),
		E: 0, F: 0,
	})
}

// translationMatrix is the general-composition translation matrix (unlike
// the Translate method above, which folds directly into E/F and so only
// composes correctly when called last in a chain).
func translationMatrix(x, y float64) Matrix2D {
	return Matrix2D{A: 1, B: 0, C: 0, D: 1, E: x, F: y}
}

// RotationAbout returns the matrix that rotates by theta around center:
// translate center to the origin, rotate, translate back. Built with Mult
// throughout (not the Translate method) since Mult composes left-to-right
// in point-transform order (a.Mult(b) applies b first, then a).
func RotationAbout(center Point, theta float64) Matrix2D {
	return translationMatrix(center.X, center.Y).
		Mult(Identity.Rotate(theta)).
		Mult(translationMatrix(-center.X, -center.Y))
}

// ScalingAbout returns the matrix that scales by k around center.
func ScalingAbout(center Point, k float64) Matrix2D {
	return translationMatrix(center.X, center.Y).
		Mult(Identity.Scale(k, k)).
		Mult(translationMatrix(-center.X, -center.Y))
}
