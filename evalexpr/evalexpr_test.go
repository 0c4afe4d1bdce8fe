package evalexpr

import (
	"math"
	"testing"
)

func TestEvalArithmetic(t *testing.T) {
	cases := map[string]float64{
		"1+2*3":    7,
		"(1+2)*3":  9,
		"2^3":      8,
		"-2^2":     -4,
		"10/2-3":   2,
		"sqrt(16)": 4,
	}
	for expr, want := range cases {
		got, err := Eval(expr, nil)
		if err != nil {
			t.Fatalf("Eval(%q) error: %v", expr, err)
		}
		if math.Abs(got-want) > 1e-9 {
			t.Errorf("Eval(%q) = %v, want %v", expr, got, want)
		}
	}
}

func TestEvalConstantsAndVars(t *testing.T) {
	ctx := MapContext{"r": 2}
	got, err := Eval("r*pi", ctx)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if math.Abs(got-2*math.Pi) > 1e-9 {
		t.Errorf("got %v, want 2*pi", got)
	}
}

func TestEvalDivisionByZero(t *testing.T) {
	_, err := Eval("1/0", nil)
	if err == nil {
		t.Fatal("expected division-by-zero error")
	}
}

func TestEvalUnknownName(t *testing.T) {
	_, err := Eval("foo", MapContext{})
	if err == nil {
		t.Fatal("expected unknown-name error")
	}
}
