package interp

import (
	"github.com/atzlt/propose/evalexpr"
	"github.com/atzlt/propose/geom"
	"github.com/atzlt/propose/lang"
	"github.com/atzlt/propose/value"
)

// numberContext adapts an *State's Number-typed bindings to
// evalexpr.Context, for inline `$ expr $` evaluation (spec §4.3).
type numberContext struct{ s *State }

func (c numberContext) Var(name string) (float64, bool) {
	v, ok := c.s.Env[name]
	if !ok {
		return 0, false
	}
	n, ok := v.(value.GNumber)
	return n.N, ok
}

func (s *State) point(name string) (geom.Point, error) {
	v, ok := s.Env[name]
	if !ok {
		return geom.Point{}, &MissingKey{Name: name}
	}
	p, ok := v.(value.GPoint)
	if !ok {
		return geom.Point{}, &WrongGeometricType{Want: "Point", Got: value.TypeName(v)}
	}
	return p.P, nil
}

func (s *State) line(name string) (geom.Line, error) {
	v, ok := s.Env[name]
	if !ok {
		return geom.Line{}, &MissingKey{Name: name}
	}
	l, ok := v.(value.GLine)
	if !ok {
		return geom.Line{}, &WrongGeometricType{Want: "Line", Got: value.TypeName(v)}
	}
	return l.L, nil
}

// resolveLinear resolves a lang.Linear (a name or the "AB" two-point
// shorthand) to a geom.Line.
func (s *State) resolveLinear(l lang.Linear) (geom.Line, error) {
	switch o := l.(type) {
	case lang.LinearName:
		return s.line(o.Name)
	case lang.LinearTwoPoint:
		a, err := s.point(o.A)
		if err != nil {
			return geom.Line{}, err
		}
		b, err := s.point(o.B)
		if err != nil {
			return geom.Line{}, err
		}
		return geom.LineFrom2P(a, b)
	default:
		return geom.Line{}, &ParseError{Message: "unknown linear form"}
	}
}

// resolveNumeric evaluates a Numeric AST node to a float64, spec §4.3.
func (s *State) resolveNumeric(n lang.Numeric) (float64, error) {
	switch o := n.(type) {
	case lang.Literal:
		return o.Value, nil
	case lang.VarRef:
		v, ok := s.Env[o.Name]
		if !ok {
			return 0, &MissingKey{Name: o.Name}
		}
		num, ok := v.(value.GNumber)
		if !ok {
			return 0, &WrongGeometricType{Want: "Number", Got: value.TypeName(v)}
		}
		return num.N, nil
	case lang.DistancePP:
		a, err := s.point(o.A)
		if err != nil {
			return 0, err
		}
		b, err := s.point(o.B)
		if err != nil {
			return 0, err
		}
		return a.DistanceTo(b), nil
	case lang.DistancePL:
		p, err := s.point(o.Point)
		if err != nil {
			return 0, err
		}
		l, err := s.resolveLinear(o.Linear)
		if err != nil {
			return 0, err
		}
		return l.DistanceToPoint(p), nil
	case lang.DistanceLL:
		l, err := s.resolveLinear(o.L)
		if err != nil {
			return 0, err
		}
		k, err := s.resolveLinear(o.K)
		if err != nil {
			return 0, err
		}
		return l.DistanceToLine(k), nil
	case lang.AngleNumeric:
		a, err := s.point(o.A)
		if err != nil {
			return 0, err
		}
		v, err := s.point(o.O)
		if err != nil {
			return 0, err
		}
		b, err := s.point(o.B)
		if err != nil {
			return 0, err
		}
		return geom.Angle(a, v, b)
	case lang.Angle2L:
		l, err := s.resolveLinear(o.L)
		if err != nil {
			return 0, err
		}
		k, err := s.resolveLinear(o.K)
		if err != nil {
			return 0, err
		}
		return geom.AngleBetween(l, k), nil
	case lang.Eval:
		v, err := evalexpr.Eval(o.Expr, numberContext{s: s})
		if err != nil {
			return 0, &EvalError{Err: err}
		}
		return v, nil
	default:
		return 0, &ParseError{Message: "unknown numeric form"}
	}
}

// resolveCommon is the fallback shared by argument- and drawable-form
// resolution: bare name lookup and the Circle-constructor object forms
// (spec §4.3).
func (s *State) resolveCommon(o lang.Object) (value.GValue, error) {
	switch t := o.(type) {
	case lang.Name:
		v, ok := s.Env[t.Name]
		if !ok {
			return nil, &MissingKey{Name: t.Name}
		}
		return v, nil
	case lang.Circ3P:
		a, err := s.point(t.A)
		if err != nil {
			return nil, err
		}
		b, err := s.point(t.B)
		if err != nil {
			return nil, err
		}
		c, err := s.point(t.C)
		if err != nil {
			return nil, err
		}
		circ, err := geom.CircleFrom3P(a, b, c)
		if err != nil {
			return nil, err
		}
		return value.GCircle{C: circ}, nil
	case lang.CircOr:
		o2, err := s.point(t.O)
		if err != nil {
			return nil, err
		}
		r, err := s.resolveNumeric(t.R)
		if err != nil {
			return nil, err
		}
		circ, err := geom.CircleFromCenterRadius(o2, r)
		if err != nil {
			return nil, err
		}
		return value.GCircle{C: circ}, nil
	case lang.CircOA:
		o2, err := s.point(t.A)
		if err != nil {
			return nil, err
		}
		p, err := s.point(t.B)
		if err != nil {
			return nil, err
		}
		circ, err := geom.CircleFromCenterPoint(o2, p)
		if err != nil {
			return nil, err
		}
		return value.GCircle{C: circ}, nil
	case lang.CircDiam:
		a, err := s.point(t.A)
		if err != nil {
			return nil, err
		}
		b, err := s.point(t.B)
		if err != nil {
			return nil, err
		}
		circ, err := geom.CircleFromDiameter(a, b)
		if err != nil {
			return nil, err
		}
		return value.GCircle{C: circ}, nil
	default:
		return nil, &WrongGeometricType{Want: "resolvable object", Got: "?"}
	}
}

// resolveArgument resolves an Object used as a method argument or the RHS
// of a direct Decl (spec §4.3).
func (s *State) resolveArgument(o lang.Object) (value.GValue, error) {
	switch t := o.(type) {
	case lang.Line2P:
		a, err := s.point(t.A)
		if err != nil {
			return nil, err
		}
		b, err := s.point(t.B)
		if err != nil {
			return nil, err
		}
		l, err := geom.LineFrom2P(a, b)
		if err != nil {
			return nil, err
		}
		return value.GLine{L: l}, nil
	case lang.Triangle3P:
		a, err := s.point(t.A)
		if err != nil {
			return nil, err
		}
		b, err := s.point(t.B)
		if err != nil {
			return nil, err
		}
		c, err := s.point(t.C)
		if err != nil {
			return nil, err
		}
		return value.GTriangle{A: a, B: b, C: c}, nil
	case lang.NumericObject:
		n, err := s.resolveNumeric(t.Value)
		if err != nil {
			return nil, err
		}
		return value.GNumber{N: n}, nil
	default:
		return s.resolveCommon(o)
	}
}

// resolveDrawable resolves an Object used as a Draw/Decor step's target
// (spec §4.3). Line2P becomes a Segment here, not a Line; Names bound to a
// Line value are rejected (raw Lines aren't drawable).
func (s *State) resolveDrawable(o lang.Object) (value.DValue, error) {
	switch t := o.(type) {
	case lang.Line2P:
		a, err := s.point(t.A)
		if err != nil {
			return nil, err
		}
		b, err := s.point(t.B)
		if err != nil {
			return nil, err
		}
		return value.DSegment{S: geom.Segment{From: a, To: b}}, nil
	case lang.ArcThrough:
		a, err := s.point(t.A)
		if err != nil {
			return nil, err
		}
		b, err := s.point(t.B)
		if err != nil {
			return nil, err
		}
		c, err := s.point(t.C)
		if err != nil {
			return nil, err
		}
		arc, err := geom.ArcFrom3P(a, b, c)
		if err != nil {
			return nil, err
		}
		return value.DArc{A: arc}, nil
	case lang.ArcCentered:
		a, err := s.point(t.A)
		if err != nil {
			return nil, err
		}
		o2, err := s.point(t.O)
		if err != nil {
			return nil, err
		}
		b, err := s.point(t.B)
		if err != nil {
			return nil, err
		}
		arc, err := geom.ArcFromCenter(a, o2, b)
		if err != nil {
			return nil, err
		}
		return value.DArc{A: arc}, nil
	case lang.Polygon:
		pts := make([]geom.Point, len(t.Points))
		for i, name := range t.Points {
			p, err := s.point(name)
			if err != nil {
				return nil, err
			}
			pts[i] = p
		}
		return value.DPolygon{Points: pts}, nil
	case lang.Angle3P:
		a, err := s.point(t.A)
		if err != nil {
			return nil, err
		}
		o2, err := s.point(t.O)
		if err != nil {
			return nil, err
		}
		b, err := s.point(t.B)
		if err != nil {
			return nil, err
		}
		return value.DAngle3P{A: a, O: o2, B: b}, nil
	case lang.Name:
		v, ok := s.Env[t.Name]
		if !ok {
			return nil, &MissingKey{Name: t.Name}
		}
		if _, isLine := v.(value.GLine); isLine {
			return nil, &WrongGeometricType{Want: "drawable", Got: "Line"}
		}
		return value.ToDrawable(v)
	default:
		g, err := s.resolveCommon(o)
		if err != nil {
			return nil, err
		}
		return value.ToDrawable(g)
	}
}
