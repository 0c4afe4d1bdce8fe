// Package textmetrics estimates the rendered width of a label string,
// grounded on the teacher-sibling svg_text.go's font.Drawer/MeasureString
// pattern: parse an embedded TrueType face once, build a font.Drawer sized
// to the label's configured size, and measure.
package textmetrics

import (
	"fmt"
	"sync"

	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
)

var (
	parseOnce sync.Once
	baseFont  *truetype.Font
	parseErr  error
)

func loadBaseFont() (*truetype.Font, error) {
	parseOnce.Do(func() {
		baseFont, parseErr = truetype.Parse(goregular.TTF)
	})
	return baseFont, parseErr
}

// MeasureWidth returns the rendered width, in px, of text set at fontSize
// px using the embedded goregular face — the same face svg_text.go falls
// back to when no italic/bold/small-caps variant is requested.
func MeasureWidth(text string, fontSize float64) (float64, error) {
	if fontSize <= 0 {
		return 0, fmt.Errorf("textmetrics: non-positive font size %g", fontSize)
	}
	f, err := loadBaseFont()
	if err != nil {
		return 0, err
	}
	face := truetype.NewFace(f, &truetype.Options{Size: fontSize})
	d := &font.Drawer{Face: face}
	w := d.MeasureString(text)
	return float64(w) / 64, nil
}
