package draw

import (
	"fmt"
	"math"
	"strings"

	"github.com/atzlt/propose/config"
)

// Label builds the <text> fragment for the drawable, per spec §4.5.
// Assumes the "label" option is present in the cascading view; callers
// check HasLabel first.
func (d StyledDrawable) Label() (string, error) {
	text := d.View.String("label")
	size, err := d.View.Number("labelsize")
	if err != nil {
		return "", err
	}
	dist, err := d.View.Number("dist")
	if err != nil {
		return "", err
	}
	dist /= config.CM
	angle, err := d.View.Number("angle")
	if err != nil {
		return "", err
	}
	loc, err := d.View.Number("loc")
	if err != nil {
		return "", err
	}
	font := d.View.String("font")
	pos, err := d.GetPosition(loc)
	if err != nil {
		return "", err
	}

	if strings.Contains(text, "_") {
		sub := fmt.Sprintf(`<tspan dy="%s" font-size="%s">`, fnum(size*0.3), fnum(size*0.5))
		text = strings.Replace(text, "_", sub, 1) + "</tspan>"
	}

	x := pos.X + dist*math.Cos(angle)
	y := -(pos.Y + dist*math.Sin(angle))
	return fmt.Sprintf(`<text font-size="%s" font-family="%s" font-style="italic" text-anchor="middle" dominant-baseline="middle" x="%scm" y="%scm">%s</text>`,
		fnum(size), font, fnum(x), fnum(y), text), nil
}

// HasLabel reports whether the cascading view resolves "label" to anything
// (spec §4.3: "if configuration resolves 'label' to a non-absent value").
func (d StyledDrawable) HasLabel() bool {
	return d.View.Has("label")
}
