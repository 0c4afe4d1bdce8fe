package draw

import (
	"strings"
	"testing"

	"github.com/atzlt/propose/config"
	"github.com/atzlt/propose/geom"
	"github.com/atzlt/propose/value"
)

func TestStoreConcatRespectsLayerOrder(t *testing.T) {
	s := NewStore()
	s.Append(Text, "text-frag")
	s.Append(Area, "area-frag")
	s.Append(Dots, "dots-frag")
	got := s.Concat()
	wantOrder := []string{"area-frag", "dots-frag", "text-frag"}
	idx := -1
	for _, w := range wantOrder {
		i := strings.Index(got, w)
		if i < idx {
			t.Fatalf("Concat() = %q: layer %q out of order", got, w)
		}
		idx = i
	}
}

func TestStoreClearAndIsEmpty(t *testing.T) {
	s := NewStore()
	if !s.IsEmpty() {
		t.Fatal("fresh Store should be empty")
	}
	s.Append(Lines, "x")
	if s.IsEmpty() {
		t.Fatal("Store with an appended fragment should not be empty")
	}
	s.Clear()
	if !s.IsEmpty() {
		t.Fatal("Store after Clear should be empty")
	}
}

func view() config.View {
	return config.NewView(nil, config.NewDefault())
}

func TestTargetLayerByVariant(t *testing.T) {
	cases := []struct {
		obj  value.DValue
		want Layer
	}{
		{value.DPoint{}, Dots},
		{value.DPolygon{}, Area},
		{value.DSegment{}, Lines},
		{value.DCircle{}, Lines},
		{value.DArc{}, Lines},
		{value.DAngle3P{}, Lines},
	}
	for _, c := range cases {
		sd := StyledDrawable{Obj: c.obj, View: view()}
		if got := sd.TargetLayer(); got != c.want {
			t.Errorf("TargetLayer(%T) = %v, want %v", c.obj, got, c.want)
		}
	}
}

func TestRenderSegmentProducesLineElement(t *testing.T) {
	sd := StyledDrawable{
		Obj:  value.DSegment{S: geom.Segment{From: geom.Point{X: 0, Y: 0}, To: geom.Point{X: 1, Y: 0}}},
		View: view(),
	}
	frag, err := sd.Render()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.HasPrefix(frag, "<line ") {
		t.Errorf("Render() = %q, want a <line> element", frag)
	}
}

func TestRenderCircleUsesCmUnits(t *testing.T) {
	sd := StyledDrawable{
		Obj:  value.DCircle{C: geom.Circle{O: geom.Point{X: 0, Y: 0}, R: 1}},
		View: view(),
	}
	frag, err := sd.Render()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(frag, `r="1cm"`) {
		t.Errorf("Render() = %q, want r in cm units", frag)
	}
}

func TestDecorUnknownGlyph(t *testing.T) {
	sd := StyledDrawable{
		Obj:  value.DSegment{S: geom.Segment{From: geom.Point{X: 0, Y: 0}, To: geom.Point{X: 1, Y: 0}}},
		View: view(),
	}
	_, err := sd.Decor("nope")
	if err == nil {
		t.Fatal("expected NoSuchDecorError")
	}
	if _, ok := err.(*NoSuchDecorError); !ok {
		t.Errorf("got %T, want *NoSuchDecorError", err)
	}
}

func TestDecorTickRendersLine(t *testing.T) {
	sd := StyledDrawable{
		Obj:  value.DSegment{S: geom.Segment{From: geom.Point{X: 0, Y: 0}, To: geom.Point{X: 1, Y: 0}}},
		View: view(),
	}
	frag, err := sd.Decor("|")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.HasPrefix(frag, "<line ") {
		t.Errorf("Decor(|) = %q, want a <line> element", frag)
	}
}

func TestEmitProducesWellFormedDocument(t *testing.T) {
	s := NewStore()
	s.Append(Dots, `<circle cx="0" cy="0" r="1"/>`)
	svg, err := Emit(s, config.NewDefault())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.HasPrefix(svg, "<svg ") || !strings.HasSuffix(svg, "</svg>") {
		t.Errorf("Emit() = %q, want a well-formed <svg>...</svg> document", svg)
	}
	if !strings.Contains(svg, `viewBox="`) {
		t.Errorf("Emit() = %q, want a viewBox attribute", svg)
	}
}

func TestHasLabelAndLabelRendering(t *testing.T) {
	sd := StyledDrawable{
		Obj:  value.DPoint{P: geom.Point{X: 0, Y: 0}},
		View: view(),
	}
	if sd.HasLabel() {
		t.Fatal("HasLabel() should be false with no local label override")
	}
	local := config.Config{"label": config.StringValue("A")}
	sd.View = config.NewView(local, config.NewDefault())
	if !sd.HasLabel() {
		t.Fatal("HasLabel() should be true once a local label is set")
	}
	frag, err := sd.Label()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.HasPrefix(frag, "<text ") || !strings.Contains(frag, ">A</text>") {
		t.Errorf("Label() = %q, want a <text> element wrapping \"A\"", frag)
	}
}

func TestLabelSubscriptSplitsIntoTspan(t *testing.T) {
	local := config.Config{"label": config.StringValue("A_1")}
	sd := StyledDrawable{
		Obj:  value.DPoint{P: geom.Point{X: 0, Y: 0}},
		View: config.NewView(local, config.NewDefault()),
	}
	frag, err := sd.Label()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(frag, "<tspan") {
		t.Errorf("Label() = %q, want an embedded <tspan> for the subscript", frag)
	}
}

func TestEmitRespectsExplicitMinXMinY(t *testing.T) {
	s := NewStore()
	cfg := config.NewDefault()
	cfg["minX"] = config.NumberValue(5)
	cfg["minY"] = config.NumberValue(7)
	svg, err := Emit(s, cfg)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(svg, `viewBox="5 7 `) {
		t.Errorf("Emit() = %q, want viewBox starting at explicit minX/minY", svg)
	}
}
