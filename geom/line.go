package geom

import "math"

// Line is stored in normalized implicit form A*x + B*y = C, with
// A^2+B^2 = 1. A and B together give the line's unit normal.
type Line struct {
	A, B, C float64
}

func normalizeLine(a, b, c float64) (Line, error) {
	n := math.Hypot(a, b)
	if n == 0 {
		return Line{}, except(DegenerateLine)
	}
	return Line{A: a / n, B: b / n, C: c / n}, nil
}

// LineFrom2P builds the line through two distinct points.
func LineFrom2P(p, q Point) (Line, error) {
	dx, dy := q.X-p.X, q.Y-p.Y
	if dx == 0 && dy == 0 {
		return Line{}, except(DegenerateLine)
	}
	// Normal is (-dy, dx); line passes through p.
	a, b := -dy, dx
	c := a*p.X + b*p.Y
	return normalizeLine(a, b, c)
}

// LineFromCoeff builds a line directly from implicit coefficients a*x+b*y=c.
func LineFromCoeff(a, b, c float64) (Line, error) {
	return normalizeLine(a, b, c)
}

// LineFromSlopeAndPoint builds the line through p with direction (dx, dy).
func LineFromSlopeAndPoint(dx, dy float64, p Point) (Line, error) {
	return LineFrom2P(p, Point{p.X + dx, p.Y + dy})
}

// Direction returns a unit vector along the line.
func (l Line) Direction() Point {
	return Point{-l.B, l.A}
}

// Normal returns the line's unit normal vector.
func (l Line) Normal() Point {
	return Point{l.A, l.B}
}

// SignedDistance returns A*x+B*y-C for point p (positive on the normal side).
func (l Line) SignedDistance(p Point) float64 {
	return l.A*p.X + l.B*p.Y - l.C
}

// DistanceToPoint is the library's point-to-line distance primitive.
func (l Line) DistanceToPoint(p Point) float64 {
	return math.Abs(l.SignedDistance(p))
}

// DistanceToLine is the library's line-to-line distance primitive: zero
// unless the lines are parallel and distinct.
func (l Line) DistanceToLine(k Line) float64 {
	if !l.parallelTo(k) {
		return 0
	}
	return math.Abs(l.C - k.C*sameOrientation(l, k))
}

func sameOrientation(l, k Line) float64 {
	if l.A*k.A+l.B*k.B < 0 {
		return -1
	}
	return 1
}

func (l Line) parallelTo(k Line) bool {
	cross := l.A*k.B - l.B*k.A
	return math.Abs(cross) < 1e-9
}

// anyPoint returns the foot of the perpendicular from the origin to the
// line; ReflectLineInLine uses it as a point known to lie on l.
func (l Line) anyPoint() Point {
	return Point{l.A * l.C, l.B * l.C}
}

// Intersect finds the intersection of two lines, when it exists.
func (l Line) Intersect(k Line) (Point, error) {
	det := l.A*k.B - l.B*k.A
	if math.Abs(det) < 1e-9 {
		return Point{}, except(ParallelLines)
	}
	x := (l.C*k.B - l.B*k.C) / det
	y := (l.A*k.C - l.C*k.A) / det
	return Point{x, y}, nil
}

// AngleBetween returns the unsigned angle between two lines' directions.
func AngleBetween(l, k Line) float64 {
	cos := l.A*k.A + l.B*k.B
	if cos > 1 {
		cos = 1
	} else if cos < -1 {
		cos = -1
	}
	a := math.Acos(cos)
	if a > math.Pi/2 {
		a = math.Pi - a
	}
	return a
}

// Perp returns the line through p perpendicular to l.
func Perp(p Point, l Line) Line {
	out, _ := normalizeLine(l.B, -l.A, l.B*p.X-l.A*p.Y)
	return out
}

// Parallel returns the line through p parallel to l.
func Parallel(p Point, l Line) Line {
	out, _ := normalizeLine(l.A, l.B, l.A*p.X+l.B*p.Y)
	return out
}

// Projection returns the foot of the perpendicular from p onto l.
func Projection(p Point, l Line) Point {
	d := l.SignedDistance(p)
	return Point{p.X - d*l.A, p.Y - d*l.B}
}

// PerpBisector returns the perpendicular bisector of segment ab.
func PerpBisector(a, b Point) (Line, error) {
	if a == b {
		return Line{}, except(DegenerateLine)
	}
	m := Midpoint(a, b)
	dx, dy := b.X-a.X, b.Y-a.Y
	return normalizeLine(dx, dy, dx*m.X+dy*m.Y)
}

// ReflectPointInLine reflects a Point across a Line (reflection of a Point
// through a center Point is ReflectInPoint in point.go).
func ReflectPointInLine(p Point, l Line) Point {
	d := l.SignedDistance(p)
	return Point{p.X - 2*d*l.A, p.Y - 2*d*l.B}
}

// ReflectLineInPoint reflects a line through a center point.
func ReflectLineInPoint(l Line, center Point) Line {
	c := l.A*center.X + l.B*center.Y
	out, _ := normalizeLine(l.A, l.B, 2*c-l.C)
	return out
}

// ReflectLineInLine reflects line l across mirror line m.
func ReflectLineInLine(l, m Line) Line {
	p := l.anyPoint()
	q := Point{p.X + l.Direction().X, p.Y + l.Direction().Y}
	rp := ReflectPointInLine(p, m)
	rq := ReflectPointInLine(q, m)
	out, _ := LineFrom2P(rp, rq)
	return out
}

// ScaleLine scales a line about center by factor k (direction unchanged,
// offset scaled about the center's projection).
func ScaleLine(l Line, center Point, k float64) Line {
	p := Projection(center, l)
	p2 := ScalePoint(p, center, k)
	out, _ := normalizeLine(l.A, l.B, l.A*p2.X+l.B*p2.Y)
	return out
}

// RotateLine rotates a line about center by theta. The normal rotates with
// the line; a point on the new line is found by rotating the foot of the
// perpendicular from center.
func RotateLine(l Line, center Point, theta float64) Line {
	p := Projection(center, l)
	p2 := Rotate(p, center, theta)
	n2 := RotationAbout(Point{}, theta).TransformPoint(l.Normal())
	out, _ := normalizeLine(n2.X, n2.Y, n2.X*p2.X+n2.Y*p2.Y)
	return out
}

// AngleBisect3P returns the two lines bisecting angle AOB: the internal
// bisector (direction unit(OA)+unit(OB)) and the external one
// (unit(OA)-unit(OB)), both through O. If A, O, B are collinear (the angle
// is straight or null) the bisectors degenerate to AB and its perpendicular
// through O.
func AngleBisect3P(a, o, b Point) (Line, Line, error) {
	va, vb := a.Sub(o), b.Sub(o)
	na, nb := va.Norm(), vb.Norm()
	if na == 0 || nb == 0 {
		return Line{}, Line{}, except(DegenerateLine)
	}
	ua, ub := va.Scale(1/na), vb.Scale(1/nb)
	ab, err := LineFrom2P(a, b)
	if err != nil {
		return Line{}, Line{}, err
	}
	internal, err := LineFrom2P(o, o.Add(ua.Add(ub)))
	if err != nil {
		internal = Perp(o, ab)
	}
	external, err := LineFrom2P(o, o.Add(ua.Sub(ub)))
	if err != nil {
		external = ab
	}
	return internal, external, nil
}

// AngleBisect returns the two angle bisectors of lines l and k, oriented so
// the first uses the "sum of unit normals" construction (internal when the
// normals point the same general way) and the second the "difference".
func AngleBisect(l, k Line) (Line, Line) {
	n1 := Point{l.A + k.A, l.B + k.B}
	n2 := Point{l.A - k.A, l.B - k.B}
	p, _ := l.Intersect(k)
	first, _ := normalizeLine(n1.X, n1.Y, n1.X*p.X+n1.Y*p.Y)
	second, _ := normalizeLine(n2.X, n2.Y, n2.X*p.X+n2.Y*p.Y)
	return first, second
}
