// Package value implements the two tagged-variant universes the
// interpreter computes over: GValue (spec §3/§4.1) for computation, and
// DValue for drawables. Modeled the way the teacher's package models its
// own small closed variant sets (plain concrete types implementing a
// marker interface), the idiomatic Go stand-in for a Rust enum.
package value

import "github.com/atzlt/propose/geom"

// GValue is the closed computational tagged union: Point, Line, Circle,
// Triangle, Number, Null.
type GValue interface{ gvalue() }

type GPoint struct{ P geom.Point }

func (GPoint) gvalue() {}

type GLine struct{ L geom.Line }

func (GLine) gvalue() {}

type GCircle struct{ C geom.Circle }

func (GCircle) gvalue() {}

type GTriangle struct{ A, B, C geom.Point }

func (GTriangle) gvalue() {}

type GNumber struct{ N float64 }

func (GNumber) gvalue() {}

// GNull is the second slot of a single-valued overload result.
type GNull struct{}

func (GNull) gvalue() {}

// WrongGeometricTypeError reports a GValue/DValue that doesn't satisfy the
// context it was used in.
type WrongGeometricTypeError struct {
	Want string
	Got  string
}

func (e *WrongGeometricTypeError) Error() string {
	return "wrong geometric type: want " + e.Want + ", got " + e.Got
}

// TypeName returns a GValue's variant name, used in WrongGeometricType
// error messages.
func TypeName(v GValue) string {
	switch v.(type) {
	case GPoint:
		return "Point"
	case GLine:
		return "Line"
	case GCircle:
		return "Circle"
	case GTriangle:
		return "Triangle"
	case GNumber:
		return "Number"
	case GNull:
		return "Null"
	default:
		return "?"
	}
}

// ToDrawable lifts a GValue to a DValue. The lift is partial per spec
// §4.1: only Circle->Circle and Point->Point succeed; everything else
// fails WrongGeometricType. All other DValue variants (Segment, Arc,
// Polygon, Angle3P) are produced only via the drawable-form resolver in
// package interp, never by lifting a GValue.
func ToDrawable(v GValue) (DValue, error) {
	switch g := v.(type) {
	case GCircle:
		return DCircle{C: g.C}, nil
	case GPoint:
		return DPoint{P: g.P}, nil
	default:
		return nil, &WrongGeometricTypeError{Want: "Circle or Point", Got: TypeName(v)}
	}
}

// DValue is the closed drawable tagged union: Segment, Arc, Point, Circle,
// Polygon, Angle3P.
type DValue interface{ dvalue() }

type DSegment struct{ S geom.Segment }

func (DSegment) dvalue() {}

type DArc struct{ A geom.Arc }

func (DArc) dvalue() {}

type DPoint struct{ P geom.Point }

func (DPoint) dvalue() {}

type DCircle struct{ C geom.Circle }

func (DCircle) dvalue() {}

// DPolygon is a closed polygon with an implicit last-to-first edge.
type DPolygon struct{ Points []geom.Point }

func (DPolygon) dvalue() {}

// DAngle3P is a rendered arc mark of the angle at vertex O.
type DAngle3P struct{ A, O, B geom.Point }

func (DAngle3P) dvalue() {}

// DValueTypeName returns a DValue's variant name.
func DValueTypeName(v DValue) string {
	switch v.(type) {
	case DSegment:
		return "Segment"
	case DArc:
		return "Arc"
	case DPoint:
		return "Point"
	case DCircle:
		return "Circle"
	case DPolygon:
		return "Polygon"
	case DAngle3P:
		return "Angle3P"
	default:
		return "?"
	}
}
