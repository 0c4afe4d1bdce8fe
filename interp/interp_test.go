package interp

import (
	"strings"
	"testing"

	"github.com/atzlt/propose/parse"
	"github.com/atzlt/propose/value"
)

func run(t *testing.T, src string) *State {
	t.Helper()
	s := New()
	if err := s.Interpret(src, parse.Parse); err != nil {
		t.Fatalf("Interpret(%q): unexpected error: %v", src, err)
	}
	return s
}

func TestInterpretCoordAndLine(t *testing.T) {
	s := run(t, `
A = (0, 0);
B = (1, 0);
l = AB;
`)
	a, ok := s.Env["A"].(value.GPoint)
	if !ok || a.P.X != 0 || a.P.Y != 0 {
		t.Fatalf("A = %#v, want GPoint{0,0}", s.Env["A"])
	}
	l, ok := s.Env["l"].(value.GLine)
	if !ok {
		t.Fatalf("l = %#v, want GLine", s.Env["l"])
	}
	if l.L.DistanceToPoint(a.P) > 1e-9 {
		t.Errorf("l doesn't pass through A: dist=%v", l.L.DistanceToPoint(a.P))
	}
}

func TestInterpretDrawAndEmitProducesSVG(t *testing.T) {
	s := run(t, `
A = (0, 0);
B = (1, 0);
C = (0, 1);
draw A, B, C, AB;
save;
`)
	svg, err := s.Emit()
	if err != nil {
		t.Fatalf("Emit: unexpected error: %v", err)
	}
	if !strings.Contains(svg, "<svg") || !strings.Contains(svg, "</svg>") {
		t.Errorf("Emit() = %q, want a well-formed <svg> document", svg)
	}
}

func TestInterpretMissingKey(t *testing.T) {
	s := New()
	err := s.Interpret(`l = AB;`, parse.Parse)
	if err == nil {
		t.Fatal("expected a MissingKey error referencing A")
	}
	if _, ok := err.(*MissingKey); !ok {
		t.Errorf("got %T (%v), want *MissingKey", err, err)
	}
}

func TestInterpretDestructuringDecl(t *testing.T) {
	s := run(t, `
A = (0, 0);
B = (2, 0);
C = (0, 2);
O, r = cO ABC;
`)
	if _, ok := s.Env["O"].(value.GPoint); !ok {
		t.Errorf("O = %#v, want GPoint", s.Env["O"])
	}
	if _, ok := s.Env["r"]; !ok {
		t.Errorf("expected r to be bound by destructuring decl")
	}
}

func TestInterpretDiscardUnderscore(t *testing.T) {
	s := run(t, `
A = (0, 0);
B = (2, 0);
C = (0, 2);
_, r = cO ABC;
`)
	if _, ok := s.Env["_"]; ok {
		t.Error("\"_\" must never be bound")
	}
	if _, ok := s.Env["r"]; !ok {
		t.Error("expected r to be bound")
	}
}

func TestClearResetsEnvLayersAndConfig(t *testing.T) {
	s := run(t, `
A = (0, 0);
config color = red;
`)
	if len(s.Env) == 0 {
		t.Fatal("expected a non-empty Env before Clear")
	}
	s.Clear()
	if len(s.Env) != 0 {
		t.Errorf("Env after Clear = %v, want empty", s.Env)
	}
	if got := s.Config["color"].AsString(); got != "#000000" {
		t.Errorf("Config[color] after Clear = %q, want default #000000", got)
	}
}

func TestConfigStatementOverridesDefault(t *testing.T) {
	s := run(t, `config width = 20;`)
	w, err := s.Config["width"].AsNumber("width")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if w != 20 {
		t.Errorf("width = %v, want 20", w)
	}
}

func TestDecorUnknownGlyphFails(t *testing.T) {
	err := New().Interpret(`
A = (0, 0);
B = (1, 0);
decor AB : none;
`, parse.Parse)
	if err == nil {
		t.Fatal("expected an error parsing/evaluating an unknown decoration glyph")
	}
}
