package funcs

import (
	"math"
	"testing"

	"github.com/atzlt/propose/geom"
	"github.com/atzlt/propose/value"
)

func TestCallMid(t *testing.T) {
	a := value.GPoint{P: geom.Point{X: 0, Y: 0}}
	b := value.GPoint{P: geom.Point{X: 2, Y: 0}}
	r1, r2, err := Call("mid", []value.GValue{a, b})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, ok := r2.(value.GNull); !ok {
		t.Errorf("expected second slot Null, got %T", r2)
	}
	p, ok := r1.(value.GPoint)
	if !ok || p.P != (geom.Point{X: 1, Y: 0}) {
		t.Errorf("got %v, want (1,0)", r1)
	}
}

func TestCallMidSamePoint(t *testing.T) {
	a := value.GPoint{P: geom.Point{X: 3, Y: 4}}
	r1, _, err := Call("mid", []value.GValue{a, a})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	p := r1.(value.GPoint).P
	if p != (geom.Point{X: 3, Y: 4}) {
		t.Errorf("got %v, want (3,4)", p)
	}
}

func TestCallUnknownFunction(t *testing.T) {
	_, _, err := Call("nope", nil)
	if _, ok := err.(*NoFuncError); !ok {
		t.Fatalf("got %v, want NoFuncError", err)
	}
}

func TestCallArgError(t *testing.T) {
	_, _, err := Call("mid", []value.GValue{value.GNumber{N: 1}})
	if _, ok := err.(*ArgError); !ok {
		t.Fatalf("got %v, want ArgError", err)
	}
}

func TestCallIntersectCoincidentLines(t *testing.T) {
	l, _ := geom.LineFrom2P(geom.Point{X: 0, Y: 0}, geom.Point{X: 1, Y: 0})
	_, _, err := Call("i", []value.GValue{value.GLine{L: l}, value.GLine{L: l}})
	if err == nil {
		t.Fatal("expected CalcError for coincident lines")
	}
	if _, ok := err.(*CalcError); !ok {
		t.Fatalf("got %v, want CalcError", err)
	}
}

func TestCallOnCircleAntipodal(t *testing.T) {
	c := value.GCircle{C: geom.Circle{O: geom.Point{}, R: 1}}
	r0, _, err := Call("on", []value.GValue{c, value.GNumber{N: 0}})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	r1, _, err := Call("on", []value.GValue{c, value.GNumber{N: 0.5}})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	p0, p1 := r0.(value.GPoint).P, r1.(value.GPoint).P
	if math.Abs(p0.X+p1.X) > 1e-9 || math.Abs(p0.Y+p1.Y) > 1e-9 {
		t.Errorf("got %v and %v, want antipodal points", p0, p1)
	}
}

func TestCallCG(t *testing.T) {
	tri := value.GTriangle{A: geom.Point{X: 0, Y: 0}, B: geom.Point{X: 3, Y: 0}, C: geom.Point{X: 0, Y: 3}}
	r1, _, err := Call("cG", []value.GValue{tri})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	p := r1.(value.GPoint).P
	if math.Abs(p.X-1) > 1e-9 || math.Abs(p.Y-1) > 1e-9 {
		t.Errorf("got %v, want (1,1)", p)
	}
}
