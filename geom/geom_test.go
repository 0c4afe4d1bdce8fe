package geom

import (
	"math"
	"testing"
)

func approxEqual(a, b, tol float64) bool { return math.Abs(a-b) < tol }

func TestLineFrom2PAndIntersect(t *testing.T) {
	l, err := LineFrom2P(Point{0, 0}, Point{1, 0})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	k, err := LineFrom2P(Point{0, 0}, Point{0, 1})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	p, err := l.Intersect(k)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !approxEqual(p.X, 0, 1e-9) || !approxEqual(p.Y, 0, 1e-9) {
		t.Errorf("got %v, want origin", p)
	}
}

func TestLineFrom2PDegenerate(t *testing.T) {
	_, err := LineFrom2P(Point{1, 1}, Point{1, 1})
	if err == nil {
		t.Fatal("expected DegenerateLine error")
	}
	if e, ok := err.(*CalcException); !ok || e.Kind != DegenerateLine {
		t.Errorf("got %v, want DegenerateLine", err)
	}
}

func TestParallelLinesIntersect(t *testing.T) {
	l, _ := LineFrom2P(Point{0, 0}, Point{1, 0})
	k, _ := LineFrom2P(Point{0, 1}, Point{1, 1})
	_, err := l.Intersect(k)
	if err == nil {
		t.Fatal("expected ParallelLines error")
	}
}

func TestMidpoint(t *testing.T) {
	m := Midpoint(Point{0, 0}, Point{2, 0})
	if m != (Point{1, 0}) {
		t.Errorf("got %v, want (1,0)", m)
	}
}

func TestAngleBisect3P(t *testing.T) {
	o := Point{0, 0}
	a := Point{1, 0}
	b := Point{0, 1}
	internal, external, err := AngleBisect3P(a, o, b)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	// Internal bisector of the right angle at O between (1,0) and (0,1)
	// runs along y=x through the origin.
	p := Point{1, 1}
	if internal.DistanceToPoint(p) > 1e-6 {
		t.Errorf("internal bisector doesn't pass through (1,1): dist=%v", internal.DistanceToPoint(p))
	}
	if external.DistanceToPoint(o) > 1e-6 {
		t.Errorf("external bisector should pass through O")
	}
}

func TestCircleFrom3P(t *testing.T) {
	c, err := CircleFrom3P(Point{1, 0}, Point{0, 1}, Point{-1, 0})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !approxEqual(c.O.X, 0, 1e-9) || !approxEqual(c.O.Y, 0, 1e-9) {
		t.Errorf("got center %v, want origin", c.O)
	}
	if !approxEqual(c.R, 1, 1e-9) {
		t.Errorf("got radius %v, want 1", c.R)
	}
}

func TestCircleFrom3PCollinear(t *testing.T) {
	_, err := CircleFrom3P(Point{0, 0}, Point{1, 0}, Point{2, 0})
	if err == nil {
		t.Fatal("expected CollinearPoints error")
	}
}

func TestCircleFromCenterRadiusRejectsNonPositive(t *testing.T) {
	if _, err := CircleFromCenterRadius(Point{}, 0); err == nil {
		t.Fatal("expected DegenerateCircle error for r=0")
	}
	if _, err := CircleFromCenterRadius(Point{}, -1); err == nil {
		t.Fatal("expected DegenerateCircle error for r<0")
	}
}

func TestIntersectLineCircle(t *testing.T) {
	l, _ := LineFrom2P(Point{-2, 0}, Point{2, 0})
	c := Circle{O: Point{0, 0}, R: 1}
	p1, p2, err := IntersectLineCircle(l, c)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	pts := map[Point]bool{p1: true, p2: true}
	if !pts[Point{1, 0}] || !pts[Point{-1, 0}] {
		t.Errorf("got %v, %v; want (1,0) and (-1,0)", p1, p2)
	}
}

func TestIntersectCirclesCoincident(t *testing.T) {
	c1 := Circle{O: Point{0, 0}, R: 1}
	_, _, err := IntersectCircles(c1, c1)
	if err == nil {
		t.Fatal("expected CoincidentCircles error")
	}
}

func TestRotatePointAboutOrigin(t *testing.T) {
	p := Rotate(Point{1, 0}, Point{0, 0}, math.Pi/2)
	if !approxEqual(p.X, 0, 1e-9) || !approxEqual(p.Y, 1, 1e-9) {
		t.Errorf("got %v, want (0,1)", p)
	}
}

func TestScalePointAboutCenter(t *testing.T) {
	p := ScalePoint(Point{2, 0}, Point{1, 0}, 3)
	if !approxEqual(p.X, 4, 1e-9) || !approxEqual(p.Y, 0, 1e-9) {
		t.Errorf("got %v, want (4,0)", p)
	}
}

func TestArcFrom3PSemicircle(t *testing.T) {
	arc, err := ArcFrom3P(Point{1, 0}, Point{0, 1}, Point{-1, 0})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !approxEqual(arc.R, 1, 1e-9) {
		t.Errorf("got radius %v, want 1", arc.R)
	}
	if !approxEqual(math.Abs(arc.Angle), math.Pi, 1e-9) {
		t.Errorf("got angle %v, want +/-pi", arc.Angle)
	}
}

func TestSegmentPointOn(t *testing.T) {
	s := Segment{From: Point{0, 0}, To: Point{10, 0}}
	if p := s.PointOn(0.5); p != (Point{5, 0}) {
		t.Errorf("got %v, want (5,0)", p)
	}
}

func TestRadicalAxisCoincidentCenters(t *testing.T) {
	c1 := Circle{O: Point{0, 0}, R: 1}
	c2 := Circle{O: Point{0, 0}, R: 2}
	_, err := RadicalAxis(c1, c2)
	if err == nil {
		t.Fatal("expected CoincidentCircles error")
	}
}

func TestInvertPointOfCenterFails(t *testing.T) {
	c := Circle{O: Point{0, 0}, R: 1}
	_, err := InvertPoint(Point{0, 0}, c)
	if err == nil {
		t.Fatal("expected PointOnCircle error")
	}
}
