package geom

import "math"

// Point is a location in the plane.
type Point struct {
	X, Y float64
}

func (p Point) Add(q Point) Point { return Point{p.X + q.X, p.Y + q.Y} }
func (p Point) Sub(q Point) Point { return Point{p.X - q.X, p.Y - q.Y} }
func (p Point) Scale(k float64) Point { return Point{p.X * k, p.Y * k} }

// Lerp returns the point at parameter t on the segment from p to q,
// t=0 at p and t=1 at q.
func Lerp(p, q Point, t float64) Point {
	return Point{p.X + (q.X-p.X)*t, p.Y + (q.Y-p.Y)*t}
}

func (p Point) Dot(q Point) float64   { return p.X*q.X + p.Y*q.Y }
func (p Point) Cross(q Point) float64 { return p.X*q.Y - p.Y*q.X }
func (p Point) Norm() float64         { return math.Hypot(p.X, p.Y) }

// DistanceTo returns the Euclidean distance between two points.
func (p Point) DistanceTo(q Point) float64 {
	return math.Hypot(p.X-q.X, p.Y-q.Y)
}

// Center returns the centroid of a point sequence (used for Polygon labels).
func Center(pts []Point) Point {
	var sx, sy float64
	for _, p := range pts {
		sx += p.X
		sy += p.Y
	}
	n := float64(len(pts))
	return Point{sx / n, sy / n}
}

// Angle returns the angle AOB in [0, pi], the library's angle() primitive.
func Angle(a, o, b Point) (float64, error) {
	va, vb := a.Sub(o), b.Sub(o)
	na, nb := va.Norm(), vb.Norm()
	if na == 0 || nb == 0 {
		return 0, except(DegenerateLine)
	}
	cos := va.Dot(vb) / (na * nb)
	if cos > 1 {
		cos = 1
	} else if cos < -1 {
		cos = -1
	}
	return math.Acos(cos), nil
}

// Midpoint returns the point halfway between a and b.
func Midpoint(a, b Point) Point {
	return Point{(a.X + b.X) / 2, (a.Y + b.Y) / 2}
}

// Rotate rotates p about center by theta radians.
func Rotate(p, center Point, theta float64) Point {
	return RotationAbout(center, theta).TransformPoint(p)
}

// ScalePoint scales p about center by factor k.
func ScalePoint(p, center Point, k float64) Point {
	return ScalingAbout(center, k).TransformPoint(p)
}

// ReflectInPoint reflects p through center.
func ReflectInPoint(p, center Point) Point {
	return ScalePoint(p, center, -1)
}
