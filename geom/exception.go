// Package geom implements the planar-geometry primitives propose's
// interpreter is built on: points, lines, circles, the extended Segment
// and Arc types, and the constructions the function table dispatches to.
package geom

import "fmt"

// Kind tags the reason a construction refused to produce a value.
type Kind int

const (
	// ParallelLines: two lines have no unique intersection.
	ParallelLines Kind = iota
	// CoincidentCircles: two circles coincide, so no radical axis/intersection exists.
	CoincidentCircles
	// NoIntersection: two objects that could intersect don't, given their parameters.
	NoIntersection
	// DegenerateLine: the two defining points of a line coincide.
	DegenerateLine
	// DegenerateCircle: a requested radius is not strictly positive.
	DegenerateCircle
	// CollinearPoints: three points meant to be non-collinear (e.g. a triangle's
	// circumcircle) are collinear.
	CollinearPoints
	// PointOnCircle: a point to be inverted coincides with the center of the
	// inversion circle, so it has no image.
	PointOnCircle
)

func (k Kind) String() string {
	switch k {
	case ParallelLines:
		return "parallel lines have no intersection"
	case CoincidentCircles:
		return "coincident circles have no radical axis"
	case NoIntersection:
		return "objects do not intersect"
	case DegenerateLine:
		return "line's two defining points coincide"
	case DegenerateCircle:
		return "circle radius must be strictly positive"
	case CollinearPoints:
		return "three points are collinear"
	case PointOnCircle:
		return "point coincides with the inversion center"
	default:
		return "geometry exception"
	}
}

// CalcException is the fallible result type every construction in this
// package threads through; propose's interpreter wraps it into a CalcError.
type CalcException struct {
	Kind Kind
}

func (e *CalcException) Error() string {
	return fmt.Sprintf("calc exception: %s", e.Kind)
}

func except(k Kind) error { return &CalcException{Kind: k} }
