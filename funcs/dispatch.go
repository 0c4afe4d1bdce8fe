// Package funcs implements the static function table and first-match-wins
// overload dispatcher of spec §4.2. Grounded on original_source's
// builtin/functions.rs entry!/ret_branch! macros: each Rust match arm
// there is one overload here — an ordered type switch over the argument
// tag sequence, the idiomatic Go replacement for the macro's pattern match.
package funcs

import (
	"fmt"

	"github.com/atzlt/propose/geom"
	"github.com/atzlt/propose/value"
)

// NoFuncError reports a method name absent from the table.
type NoFuncError struct{ Name string }

func (e *NoFuncError) Error() string { return fmt.Sprintf("no such function %q", e.Name) }

// ArgError reports that no overload matched the supplied argument tags.
type ArgError struct {
	Name string
	Args []value.GValue
}

func (e *ArgError) Error() string {
	tags := make([]string, len(e.Args))
	for i, a := range e.Args {
		tags[i] = value.TypeName(a)
	}
	return fmt.Sprintf("function %q: no overload for argument types %v", e.Name, tags)
}

// CalcError wraps a geometry-primitive failure surfaced during an
// overload's body.
type CalcError struct{ Err error }

func (e *CalcError) Error() string { return "calc error: " + e.Err.Error() }
func (e *CalcError) Unwrap() error { return e.Err }

// Dispatcher is one function-table entry: an ordered list of overloads.
type Dispatcher func(args []value.GValue) (value.GValue, value.GValue, error)

// Table is the static method-name to dispatcher mapping.
var Table = map[string]Dispatcher{
	"i":          dispatchIntersect,
	"perp":       dispatchPerp,
	"par":        dispatchPar,
	"proj":       dispatchProj,
	"pb":         dispatchPb,
	"ab":         dispatchAb,
	"tan":        dispatchTan,
	"outer-tan":  dispatchOuterTan,
	"inner-tan":  dispatchInnerTan,
	"mid":        dispatchMid,
	"rad-ax":     dispatchRadAx,
	"polar":      dispatchPolar,
	"on":         dispatchOn,
	"rfl":        dispatchRfl,
	"scl":        dispatchScl,
	"rot":        dispatchRot,
	"inv":        dispatchInv,
	"l":          dispatchL,
	"circ":       dispatchCirc,
	"cO":         dispatchCO,
	"cI":         dispatchCI,
	"cJ":         dispatchCJ,
	"cG":         dispatchCG,
	"cH":         dispatchCH,
	"cK":         dispatchCK,
	"cGe":        dispatchCGe,
	"bary":       dispatchBary,
	"isog-conj":  dispatchIsogConj,
}

// Call looks up name and runs it against args, the single entry point the
// interpreter's Call-statement evaluator needs.
func Call(name string, args []value.GValue) (value.GValue, value.GValue, error) {
	d, ok := Table[name]
	if !ok {
		return nil, nil, &NoFuncError{Name: name}
	}
	return d(args)
}

func asPoint(g value.GValue) (geom.Point, bool) {
	p, ok := g.(value.GPoint)
	return p.P, ok
}

func asLine(g value.GValue) (geom.Line, bool) {
	l, ok := g.(value.GLine)
	return l.L, ok
}

func asCircle(g value.GValue) (geom.Circle, bool) {
	c, ok := g.(value.GCircle)
	return c.C, ok
}

func asTriangle(g value.GValue) (geom.Point, geom.Point, geom.Point, bool) {
	t, ok := g.(value.GTriangle)
	return t.A, t.B, t.C, ok
}

func asNumber(g value.GValue) (float64, bool) {
	n, ok := g.(value.GNumber)
	return n.N, ok
}

func calc(err error) error {
	if err == nil {
		return nil
	}
	return &CalcError{Err: err}
}
