package funcs

import (
	"github.com/atzlt/propose/geom"
	"github.com/atzlt/propose/value"
)

// dispatchRfl: reflection of Point/Line/Circle in a center Point or mirror
// Line, per spec's "rfl/scl/rot: reflection/scale/rotation of Point/Line/
// Circle by a center (Point or Line)".
func dispatchRfl(args []value.GValue) (value.GValue, value.GValue, error) {
	if len(args) != 2 {
		return nil, nil, &ArgError{Name: "rfl", Args: args}
	}
	if p, ok := asPoint(args[1]); ok {
		switch a := args[0].(type) {
		case value.GPoint:
			return value.GPoint{P: geom.ReflectInPoint(a.P, p)}, value.GNull{}, nil
		case value.GLine:
			return value.GLine{L: geom.ReflectLineInPoint(a.L, p)}, value.GNull{}, nil
		case value.GCircle:
			return value.GCircle{C: geom.ReflectCircleInPoint(a.C, p)}, value.GNull{}, nil
		}
	}
	if l, ok := asLine(args[1]); ok {
		switch a := args[0].(type) {
		case value.GPoint:
			return value.GPoint{P: geom.ReflectPointInLine(a.P, l)}, value.GNull{}, nil
		case value.GLine:
			return value.GLine{L: geom.ReflectLineInLine(a.L, l)}, value.GNull{}, nil
		case value.GCircle:
			return value.GCircle{C: geom.ReflectCircleInLine(a.C, l)}, value.GNull{}, nil
		}
	}
	return nil, nil, &ArgError{Name: "rfl", Args: args}
}

func dispatchScl(args []value.GValue) (value.GValue, value.GValue, error) {
	if len(args) != 3 {
		return nil, nil, &ArgError{Name: "scl", Args: args}
	}
	p, ok := asPoint(args[1])
	if !ok {
		return nil, nil, &ArgError{Name: "scl", Args: args}
	}
	k, ok := asNumber(args[2])
	if !ok {
		return nil, nil, &ArgError{Name: "scl", Args: args}
	}
	switch a := args[0].(type) {
	case value.GPoint:
		return value.GPoint{P: geom.ScalePoint(a.P, p, k)}, value.GNull{}, nil
	case value.GLine:
		return value.GLine{L: geom.ScaleLine(a.L, p, k)}, value.GNull{}, nil
	case value.GCircle:
		return value.GCircle{C: geom.ScaleCircle(a.C, p, k)}, value.GNull{}, nil
	}
	return nil, nil, &ArgError{Name: "scl", Args: args}
}

func dispatchRot(args []value.GValue) (value.GValue, value.GValue, error) {
	if len(args) != 3 {
		return nil, nil, &ArgError{Name: "rot", Args: args}
	}
	p, ok := asPoint(args[1])
	if !ok {
		return nil, nil, &ArgError{Name: "rot", Args: args}
	}
	theta, ok := asNumber(args[2])
	if !ok {
		return nil, nil, &ArgError{Name: "rot", Args: args}
	}
	switch a := args[0].(type) {
	case value.GPoint:
		return value.GPoint{P: geom.Rotate(a.P, p, theta)}, value.GNull{}, nil
	case value.GLine:
		return value.GLine{L: geom.RotateLine(a.L, p, theta)}, value.GNull{}, nil
	case value.GCircle:
		return value.GCircle{C: geom.RotateCircle(a.C, p, theta)}, value.GNull{}, nil
	}
	return nil, nil, &ArgError{Name: "rot", Args: args}
}

// dispatchInv implements inversion in a Circle. Open question (spec §9):
// the result may be a Line or a Circle, so "inv" always returns a single
// GValue in slot one (dynamically either GLine or GCircle) and GNull in
// slot two — the overload set already returns two GValue slots uniformly,
// so a variant union in slot one composes cleanly with destructuring
// without needing a third DValue-like wrapper type. Documented in
// DESIGN.md.
func dispatchInv(args []value.GValue) (value.GValue, value.GValue, error) {
	if len(args) != 2 {
		return nil, nil, &ArgError{Name: "inv", Args: args}
	}
	c, ok := asCircle(args[1])
	if !ok {
		return nil, nil, &ArgError{Name: "inv", Args: args}
	}
	switch a := args[0].(type) {
	case value.GPoint:
		p, err := geom.InvertPoint(a.P, c)
		if err != nil {
			return nil, nil, calc(err)
		}
		return value.GPoint{P: p}, value.GNull{}, nil
	case value.GLine:
		l, circ, isLine, err := geom.InvertLine(a.L, c)
		if err != nil {
			return nil, nil, calc(err)
		}
		if isLine {
			return value.GLine{L: l}, value.GNull{}, nil
		}
		return value.GCircle{C: circ}, value.GNull{}, nil
	case value.GCircle:
		l, circ, isLine, err := geom.InvertCircle(a.C, c)
		if err != nil {
			return nil, nil, calc(err)
		}
		if isLine {
			return value.GLine{L: l}, value.GNull{}, nil
		}
		return value.GCircle{C: circ}, value.GNull{}, nil
	}
	return nil, nil, &ArgError{Name: "inv", Args: args}
}
