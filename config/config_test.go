package config

import "testing"

func TestNewDefaultIsIndependentCopy(t *testing.T) {
	a := NewDefault()
	b := NewDefault()
	a["width"] = NumberValue(99)
	if got, _ := b["width"].AsNumber("width"); got != 10 {
		t.Errorf("NewDefault() copies share state: b[width]=%v, want 10", got)
	}
	if got, _ := Defaults["width"].AsNumber("width"); got != 10 {
		t.Errorf("mutating a NewDefault() copy leaked into Defaults: %v", got)
	}
}

func TestValueAsAccessorsRejectWrongKind(t *testing.T) {
	n := NumberValue(3)
	if _, err := n.AsBool("k"); err == nil {
		t.Error("expected WrongConfigType reading a Number as Bool")
	}
	s := StringValue("x")
	if _, err := s.AsNumber("k"); err == nil {
		t.Error("expected WrongConfigType reading a String as Number")
	}
	b := BoolValue(true)
	if _, err := b.AsNumber("k"); err == nil {
		t.Error("expected WrongConfigType reading a Bool as Number")
	}
}

func TestValueString(t *testing.T) {
	cases := []struct {
		v    Value
		want string
	}{
		{NumberValue(1.5), "1.5"},
		{StringValue("red"), "red"},
		{BoolValue(true), "true"},
		{BoolValue(false), "false"},
	}
	for _, c := range cases {
		if got := c.v.String(); got != c.want {
			t.Errorf("String() = %q, want %q", got, c.want)
		}
	}
}

func TestConfigMergeLaterKeyWins(t *testing.T) {
	c := make(Config)
	c.Merge([]Pair{
		{Key: "color", Value: StringValue("red")},
		{Key: "color", Value: StringValue("blue")},
	})
	if got := c["color"].AsString(); got != "blue" {
		t.Errorf("Merge: got %q, want %q", got, "blue")
	}
}

func TestViewLocalOverridesGlobal(t *testing.T) {
	global := NewDefault()
	local := Config{"color": StringValue("red")}
	v := NewView(local, global)
	if got := v.String("color"); got != "red" {
		t.Errorf("View.String(color) = %q, want %q (local override)", got, "red")
	}
	if got := v.String("fill"); got != "none" {
		t.Errorf("View.String(fill) = %q, want %q (global fallback)", got, "none")
	}
}

func TestViewHasAndNumber(t *testing.T) {
	global := NewDefault()
	v := NewView(nil, global)
	if !v.Has("width") {
		t.Error("expected Has(width) true from global defaults")
	}
	if v.Has("nonexistent-key") {
		t.Error("expected Has(nonexistent-key) false")
	}
	width, err := v.Number("width")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if width != 10 {
		t.Errorf("Number(width) = %v, want 10", width)
	}
	if _, err := v.Number("color"); err == nil {
		t.Error("expected WrongConfigType reading color (a String) as Number")
	}
}

func TestViewNumberMissingKey(t *testing.T) {
	v := NewView(nil, Config{})
	if _, err := v.Number("missing"); err == nil {
		t.Error("expected an error for a key absent from both local and global")
	}
}
