package textmetrics

import "testing"

func TestMeasureWidthGrowsWithTextAndSize(t *testing.T) {
	short, err := MeasureWidth("A", 15)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if short <= 0 {
		t.Fatalf("MeasureWidth(\"A\", 15) = %v, want > 0", short)
	}

	long, err := MeasureWidth("A very long label string", 15)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if long <= short {
		t.Errorf("MeasureWidth of a longer string = %v, want > %v", long, short)
	}

	bigger, err := MeasureWidth("A", 30)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if bigger <= short {
		t.Errorf("MeasureWidth at a larger font size = %v, want > %v", bigger, short)
	}
}

func TestMeasureWidthEmptyString(t *testing.T) {
	w, err := MeasureWidth("", 15)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if w != 0 {
		t.Errorf("MeasureWidth(\"\", 15) = %v, want 0", w)
	}
}
