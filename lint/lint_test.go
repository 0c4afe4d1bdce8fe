package lint

import (
	"testing"

	"github.com/atzlt/propose/config"
	"github.com/atzlt/propose/parse"
)

func TestCheckColorsFlagsUnknownName(t *testing.T) {
	main, err := parse.Parse(`config color = notacolor;`)
	if err != nil {
		t.Fatalf("unexpected parse error: %v", err)
	}
	findings := CheckColors(main)
	if len(findings) != 1 {
		t.Fatalf("got %d findings, want 1: %v", len(findings), findings)
	}
}

func TestCheckColorsAcceptsHexNoneAndKnownName(t *testing.T) {
	main, err := parse.Parse(`
config color = red, fill = none;
A = (0, 0);
draw A [color = "#ff0000"];
`)
	if err != nil {
		t.Fatalf("unexpected parse error: %v", err)
	}
	findings := CheckColors(main)
	if len(findings) != 0 {
		t.Errorf("got %d findings, want 0: %v", len(findings), findings)
	}
}

func TestCheckColorsIgnoresNonColorKeys(t *testing.T) {
	main, err := parse.Parse(`config width = 10;`)
	if err != nil {
		t.Fatalf("unexpected parse error: %v", err)
	}
	if findings := CheckColors(main); len(findings) != 0 {
		t.Errorf("got %d findings, want 0: %v", len(findings), findings)
	}
}

func TestCheckLabelBoundsFlagsOverlongLabel(t *testing.T) {
	main, err := parse.Parse(`
A = (0, 0);
draw A [label = "a very long label that will not fit", labelsize = 500];
`)
	if err != nil {
		t.Fatalf("unexpected parse error: %v", err)
	}
	findings := CheckLabelBounds(main, config.NewDefault())
	if len(findings) == 0 {
		t.Fatal("expected a label-overflow finding")
	}
}

func TestCheckLabelBoundsAcceptsShortLabel(t *testing.T) {
	main, err := parse.Parse(`
A = (0, 0);
draw A [label = "A"];
`)
	if err != nil {
		t.Fatalf("unexpected parse error: %v", err)
	}
	findings := CheckLabelBounds(main, config.NewDefault())
	if len(findings) != 0 {
		t.Errorf("got %d findings, want 0: %v", len(findings), findings)
	}
}

func TestCheckLabelBoundsIgnoresDrawItemsWithoutLabel(t *testing.T) {
	main, err := parse.Parse(`
A = (0, 0);
draw A;
`)
	if err != nil {
		t.Fatalf("unexpected parse error: %v", err)
	}
	if findings := CheckLabelBounds(main, config.NewDefault()); len(findings) != 0 {
		t.Errorf("got %d findings, want 0: %v", len(findings), findings)
	}
}
