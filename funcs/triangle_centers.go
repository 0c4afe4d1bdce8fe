package funcs

import (
	"math"

	"github.com/atzlt/propose/geom"
	"github.com/atzlt/propose/value"
)

// Triangle centers are expressed as normalized barycentric weights over
// (A,B,C) and realized through baryPoint, the same indirection "bary" itself
// exposes to scripts.

func sideLengths(a, b, c geom.Point) (x, y, z float64) {
	// x = |BC| opposite A, y = |CA| opposite B, z = |AB| opposite C.
	return b.DistanceTo(c), c.DistanceTo(a), a.DistanceTo(b)
}

func baryPoint(a, b, c geom.Point, wa, wb, wc float64) (geom.Point, error) {
	sum := wa + wb + wc
	if math.Abs(sum) < 1e-12 {
		return geom.Point{}, &geom.CalcException{Kind: geom.DegenerateLine}
	}
	return geom.Point{
		X: (wa*a.X + wb*b.X + wc*c.X) / sum,
		Y: (wa*a.Y + wb*b.Y + wc*c.Y) / sum,
	}, nil
}

func triangleArg(args []value.GValue) (geom.Point, geom.Point, geom.Point, bool) {
	if len(args) != 1 {
		return geom.Point{}, geom.Point{}, geom.Point{}, false
	}
	return asTriangle(args[0])
}

// dispatchCO: circumcenter.
func dispatchCO(args []value.GValue) (value.GValue, value.GValue, error) {
	a, b, c, ok := triangleArg(args)
	if !ok {
		return nil, nil, &ArgError{Name: "cO", Args: args}
	}
	circ, err := geom.CircleFrom3P(a, b, c)
	if err != nil {
		return nil, nil, calc(err)
	}
	return value.GPoint{P: circ.O}, value.GNull{}, nil
}

// dispatchCI: incenter, barycentric weights equal to the opposite side lengths.
func dispatchCI(args []value.GValue) (value.GValue, value.GValue, error) {
	a, b, c, ok := triangleArg(args)
	if !ok {
		return nil, nil, &ArgError{Name: "cI", Args: args}
	}
	x, y, z := sideLengths(a, b, c)
	p, err := baryPoint(a, b, c, x, y, z)
	if err != nil {
		return nil, nil, calc(err)
	}
	return value.GPoint{P: p}, value.GNull{}, nil
}

// dispatchCJ: the A-excenter, barycentric weights (-x, y, z).
func dispatchCJ(args []value.GValue) (value.GValue, value.GValue, error) {
	a, b, c, ok := triangleArg(args)
	if !ok {
		return nil, nil, &ArgError{Name: "cJ", Args: args}
	}
	x, y, z := sideLengths(a, b, c)
	p, err := baryPoint(a, b, c, -x, y, z)
	if err != nil {
		return nil, nil, calc(err)
	}
	return value.GPoint{P: p}, value.GNull{}, nil
}

// dispatchCG: centroid.
func dispatchCG(args []value.GValue) (value.GValue, value.GValue, error) {
	a, b, c, ok := triangleArg(args)
	if !ok {
		return nil, nil, &ArgError{Name: "cG", Args: args}
	}
	return value.GPoint{P: geom.Center([]geom.Point{a, b, c})}, value.GNull{}, nil
}

// dispatchCH: orthocenter, barycentric weights tan A : tan B : tan C,
// computed in the equivalent polynomial form (b^2+c^2-a^2 style products)
// to avoid a tangent singularity at a right angle.
func dispatchCH(args []value.GValue) (value.GValue, value.GValue, error) {
	a, b, c, ok := triangleArg(args)
	if !ok {
		return nil, nil, &ArgError{Name: "cH", Args: args}
	}
	x, y, z := sideLengths(a, b, c)
	x2, y2, z2 := x*x, y*y, z*z
	wA := (z2 + x2 - y2) * (x2 + y2 - z2)
	wB := (x2 + y2 - z2) * (y2 + z2 - x2)
	wC := (y2 + z2 - x2) * (z2 + x2 - y2)
	p, err := baryPoint(a, b, c, wA, wB, wC)
	if err != nil {
		return nil, nil, calc(err)
	}
	return value.GPoint{P: p}, value.GNull{}, nil
}

// dispatchCK: symmedian point (Lemoine point), barycentrics a^2:b^2:c^2.
func dispatchCK(args []value.GValue) (value.GValue, value.GValue, error) {
	a, b, c, ok := triangleArg(args)
	if !ok {
		return nil, nil, &ArgError{Name: "cK", Args: args}
	}
	x, y, z := sideLengths(a, b, c)
	p, err := baryPoint(a, b, c, x*x, y*y, z*z)
	if err != nil {
		return nil, nil, calc(err)
	}
	return value.GPoint{P: p}, value.GNull{}, nil
}

// dispatchCGe: Gergonne point, barycentrics 1/(s-a) : 1/(s-b) : 1/(s-c).
func dispatchCGe(args []value.GValue) (value.GValue, value.GValue, error) {
	a, b, c, ok := triangleArg(args)
	if !ok {
		return nil, nil, &ArgError{Name: "cGe", Args: args}
	}
	x, y, z := sideLengths(a, b, c)
	s := (x + y + z) / 2
	da, db, dc := s-x, s-y, s-z
	if math.Abs(da) < 1e-12 || math.Abs(db) < 1e-12 || math.Abs(dc) < 1e-12 {
		return nil, nil, &CalcError{Err: &geom.CalcException{Kind: geom.DegenerateLine}}
	}
	p, err := baryPoint(a, b, c, 1/da, 1/db, 1/dc)
	if err != nil {
		return nil, nil, calc(err)
	}
	return value.GPoint{P: p}, value.GNull{}, nil
}

func dispatchBary(args []value.GValue) (value.GValue, value.GValue, error) {
	if len(args) != 4 {
		return nil, nil, &ArgError{Name: "bary", Args: args}
	}
	a, b, c, ok := asTriangle(args[0])
	if !ok {
		return nil, nil, &ArgError{Name: "bary", Args: args}
	}
	wa, ok1 := asNumber(args[1])
	wb, ok2 := asNumber(args[2])
	wc, ok3 := asNumber(args[3])
	if !ok1 || !ok2 || !ok3 {
		return nil, nil, &ArgError{Name: "bary", Args: args}
	}
	p, err := baryPoint(a, b, c, wa, wb, wc)
	if err != nil {
		return nil, nil, calc(err)
	}
	return value.GPoint{P: p}, value.GNull{}, nil
}

// dispatchIsogConj computes the isogonal conjugate of P with respect to
// triangle ABC: if P has barycentric (u:v:w), its isogonal conjugate has
// barycentric (a^2/u : b^2/v : c^2/w). P's barycentric coordinates are
// recovered from its Cartesian position via signed-area ratios.
func dispatchIsogConj(args []value.GValue) (value.GValue, value.GValue, error) {
	if len(args) != 2 {
		return nil, nil, &ArgError{Name: "isog-conj", Args: args}
	}
	a, b, c, ok := asTriangle(args[0])
	if !ok {
		return nil, nil, &ArgError{Name: "isog-conj", Args: args}
	}
	p, ok := asPoint(args[1])
	if !ok {
		return nil, nil, &ArgError{Name: "isog-conj", Args: args}
	}
	areaPBC := signedArea(p, b, c)
	areaPCA := signedArea(p, c, a)
	areaPAB := signedArea(p, a, b)
	if math.Abs(areaPBC) < 1e-12 || math.Abs(areaPCA) < 1e-12 || math.Abs(areaPAB) < 1e-12 {
		return nil, nil, &CalcError{Err: &geom.CalcException{Kind: geom.DegenerateLine}}
	}
	x, y, z := sideLengths(a, b, c)
	u := x * x / areaPBC
	v := y * y / areaPCA
	w := z * z / areaPAB
	q, err := baryPoint(a, b, c, u, v, w)
	if err != nil {
		return nil, nil, calc(err)
	}
	return value.GPoint{P: q}, value.GNull{}, nil
}

func signedArea(a, b, c geom.Point) float64 {
	return (b.X-a.X)*(c.Y-a.Y) - (c.X-a.X)*(b.Y-a.Y)
}
