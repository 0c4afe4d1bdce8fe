package draw

import (
	"fmt"
	"math"
	"strings"

	"github.com/atzlt/propose/config"
	"github.com/atzlt/propose/geom"
)

// DecorConfig is the resolved parameters a decoration glyph renders from,
// grounded on original_source's decor.rs DecorConfig.
type DecorConfig struct {
	Pos         geom.Point
	Size        float64
	TangentAngle float64
	Width       float64
	Color       string
	Fill        string
}

func (d StyledDrawable) decorConfig() (DecorConfig, error) {
	loc, err := d.View.Number("loc")
	if err != nil {
		return DecorConfig{}, err
	}
	size, err := d.View.Number("decorsize")
	if err != nil {
		return DecorConfig{}, err
	}
	width, err := d.View.Number("decorwidth")
	if err != nil {
		return DecorConfig{}, err
	}
	pos, err := d.GetPosition(loc)
	if err != nil {
		return DecorConfig{}, err
	}
	return DecorConfig{
		Pos:          pos,
		Size:         size,
		TangentAngle: d.TangentAngle(loc),
		Width:        width,
		Color:        d.View.String("decorcolor"),
		Fill:         d.View.String("decorfill"),
	}, nil
}

// decorations is the fixed registry of decoration glyphs (spec §4.5),
// grounded on original_source's builtin/decor.rs DECORATIONS map.
var decorations = map[string]func(DecorConfig) string{
	"|":  decorTick,
	"||": decorDoubleTick,
	">":  decorArrow,
}

// NoSuchDecorError reports a decoration glyph key absent from the registry.
type NoSuchDecorError struct{ Glyph string }

func (e *NoSuchDecorError) Error() string { return fmt.Sprintf("no such decoration %q", e.Glyph) }

// Decor renders the glyph decoration for this drawable.
func (d StyledDrawable) Decor(glyph string) (string, error) {
	fn, ok := decorations[glyph]
	if !ok {
		return "", &NoSuchDecorError{Glyph: glyph}
	}
	cfg, err := d.decorConfig()
	if err != nil {
		return "", err
	}
	return fn(cfg), nil
}

func decorLine(p1, p2 geom.Point, color string, width float64) string {
	x1, y1 := p1.X, -p1.Y
	x2, y2 := p2.X, -p2.Y
	return fmt.Sprintf(`<line x1="%s" y1="%s" x2="%s" y2="%s" stroke="%s" stroke-width="%s"/>`,
		fnum(x1), fnum(y1), fnum(x2), fnum(y2), color, fnum(width))
}

// decorTick draws one tick of length 2*size perpendicular to the tangent.
func decorTick(c DecorConfig) string {
	s, cosv := math.Sin(c.TangentAngle), math.Cos(c.TangentAngle)
	offset := geom.Point{X: -s * c.Size, Y: cosv * c.Size}
	pos := geom.Point{X: c.Pos.X * config.CM, Y: c.Pos.Y * config.CM}
	p1 := pos.Add(offset)
	p2 := pos.Sub(offset)
	return decorLine(p1, p2, c.Color, c.Width)
}

// decorDoubleTick draws two parallel ticks offset by +/-size/3 along the tangent.
func decorDoubleTick(c DecorConfig) string {
	s, cosv := math.Sin(c.TangentAngle), math.Cos(c.TangentAngle)
	offset := geom.Point{X: -s * c.Size, Y: cosv * c.Size}
	gap := geom.Point{X: cosv * c.Size / 3, Y: s * c.Size / 3}
	pos := geom.Point{X: c.Pos.X * config.CM, Y: c.Pos.Y * config.CM}
	var b strings.Builder
	b.WriteString(decorLine(pos.Sub(gap).Add(offset), pos.Sub(gap).Sub(offset), c.Color, c.Width))
	b.WriteByte('\n')
	b.WriteString(decorLine(pos.Add(gap).Add(offset), pos.Add(gap).Sub(offset), c.Color, c.Width))
	return b.String()
}

// decorArrow draws a three-segment arrowhead at the tangent direction.
func decorArrow(c DecorConfig) string {
	offset1 := geom.Point{X: math.Cos(c.TangentAngle) * c.Size, Y: math.Sin(c.TangentAngle) * c.Size}
	a2 := c.TangentAngle + 2*math.Pi/3
	a3 := c.TangentAngle - 2*math.Pi/3
	offset2 := geom.Point{X: math.Cos(a2) * c.Size, Y: math.Sin(a2) * c.Size}
	offset3 := geom.Point{X: math.Cos(a3) * c.Size, Y: math.Sin(a3) * c.Size}
	pos := geom.Point{X: c.Pos.X * config.CM, Y: c.Pos.Y * config.CM}
	pt1, pt2, pt3 := pos.Add(offset1), pos.Add(offset2), pos.Add(offset3)
	pts := fmt.Sprintf("%s,%s %s,%s %s,%s",
		fnum(pt2.X), fnum(-pt2.Y), fnum(pt1.X), fnum(-pt1.Y), fnum(pt3.X), fnum(-pt3.Y))
	return fmt.Sprintf(`<polyline points="%s" stroke="%s" stroke-width="%s" fill="none"/>`, pts, c.Color, fnum(c.Width))
}
