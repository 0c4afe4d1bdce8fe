package parse

import (
	"testing"

	"github.com/atzlt/propose/lang"
)

func TestParseBasicProgram(t *testing.T) {
	src := `
	# a triangle with its circumcenter
	config width=20, height=20;
	A = (0, 0);
	B = (4, 0);
	C = (0, 3);
	O = cO ABC;
	draw AB, BC, CA, O;
	decor AB: |;
	save "out.svg";
	`
	main, err := Parse(src)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if len(main.Statements) != 8 {
		t.Fatalf("expected 8 statements, got %d", len(main.Statements))
	}
	if _, ok := main.Statements[0].(lang.Config); !ok {
		t.Errorf("statement 0 should be Config, got %T", main.Statements[0])
	}
	decl, ok := main.Statements[4].(lang.Decl)
	if !ok {
		t.Fatalf("statement 4 should be Decl, got %T", main.Statements[4])
	}
	call, ok := decl.Right.(lang.Call)
	if !ok || call.Name != "cO" {
		t.Fatalf("expected call to cO, got %#v", decl.Right)
	}
	if _, ok := call.Args[0].(lang.Triangle3P); !ok {
		t.Errorf("expected Triangle3P arg, got %#v", call.Args[0])
	}
}

func TestParseDestructuring(t *testing.T) {
	src := `
	A = (0,0);
	B = (3,4);
	l = AB;
	c = @(A, 2);
	P, Q = i l, c, B;
	draw P, Q;
	`
	main, err := Parse(src)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	decl, ok := main.Statements[4].(lang.Decl)
	if !ok {
		t.Fatalf("expected Decl, got %T", main.Statements[4])
	}
	if !decl.Left.Destruct || decl.Left.Name1 != "P" || decl.Left.Name2 != "Q" {
		t.Errorf("unexpected destructuring left side: %#v", decl.Left)
	}
}

func TestParseAngleAndDistance(t *testing.T) {
	src := `
	A = (0,0);
	B = (1,0);
	C = (0,1);
	t = <ABC>;
	d = |AB|;
	config label=$string-like$;
	`
	_, err := Parse(src)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
}

func TestParseSyntaxError(t *testing.T) {
	_, err := Parse(`A = (0, 0`)
	if err == nil {
		t.Fatal("expected a syntax error for unterminated coordinate")
	}
}
