package geom

import "math"

// PointOn is implemented by the extended drawable shapes (Segment, Arc) that
// support fractional-position parametrization, mirroring original_source's
// PointOn trait.
type PointOn interface {
	PointOn(t float64) Point
}

// Segment is a straight drawable run from From to To.
type Segment struct {
	From, To Point
}

// PointOn returns the point at parameter t, t=0 at From and t=1 at To.
func (s Segment) PointOn(t float64) Point {
	return Lerp(s.From, s.To, t)
}

// Length returns the segment's length.
func (s Segment) Length() float64 {
	return s.From.DistanceTo(s.To)
}

// Arc is a circular arc drawn from From to To about center O with radius R.
// Sweep and LargeArc follow the SVG elliptical-arc flag convention; Angle is
// the signed subtended angle (positive counterclockwise).
type Arc struct {
	From, To Point
	O        Point
	R        float64
	Sweep    bool
	LargeArc bool
	Angle    float64
}

// ArcFrom3P builds the arc through A and C, center taken from the
// circumcircle of A, B, C, with B used only to pick which of the two arcs
// through A and C to take (the one passing near B).
func ArcFrom3P(a, b, c Point) (Arc, error) {
	circ, err := CircleFrom3P(a, b, c)
	if err != nil {
		return Arc{}, err
	}
	v1 := b.Sub(a)
	v2 := c.Sub(b)
	largeArc := v1.Dot(v2) < 0
	sweep := v1.X*v2.Y > v2.X*v1.Y
	angle, err := Angle(a, circ.O, c)
	if err != nil {
		return Arc{}, err
	}
	if largeArc {
		angle = 2*math.Pi - angle
	}
	if !sweep {
		angle = -angle
	}
	return Arc{
		From:     a,
		To:       c,
		O:        circ.O,
		R:        circ.R,
		Sweep:    sweep,
		LargeArc: largeArc,
		Angle:    angle,
	}, nil
}

// ArcFromCenter builds the arc starting at A, centered at O, with radius
// |OA|, sweeping towards the direction of B (B itself need not lie on the
// circle — only its direction from O matters, the endpoint is recomputed
// on the circle). Used for constructing the small arc mark of an Angle3P
// decoration, where only the start point is pre-scaled to the mark radius.
func ArcFromCenter(a, o, b Point) (Arc, error) {
	circ, err := CircleFromCenterPoint(o, a)
	if err != nil {
		return Arc{}, err
	}
	v1 := a.Sub(o)
	v2 := b.Sub(o)
	n2 := v2.Norm()
	if n2 < 1e-12 {
		return Arc{}, except(DegenerateLine)
	}
	to := Point{o.X + v2.X/n2*circ.R, o.Y + v2.Y/n2*circ.R}
	sweep := v1.X*v2.Y > v2.X*v1.Y
	angle, err := Angle(a, o, b)
	if err != nil {
		return Arc{}, err
	}
	largeArc := angle > math.Pi
	if !sweep {
		angle = -angle
	}
	return Arc{
		From:     a,
		To:       to,
		O:        circ.O,
		R:        circ.R,
		Sweep:    sweep,
		LargeArc: largeArc,
		Angle:    angle,
	}, nil
}

// PointOn returns the point at angular fraction t around the arc, t=0 at
// From and t=1 at To, following the arc's own sweep direction.
func (arc Arc) PointOn(t float64) Point {
	startAngle := math.Atan2(arc.From.Y-arc.O.Y, arc.From.X-arc.O.X)
	theta := startAngle + arc.Angle*t
	return Point{arc.O.X + arc.R*math.Cos(theta), arc.O.Y + arc.R*math.Sin(theta)}
}

