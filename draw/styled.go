package draw

import (
	"fmt"
	"math"
	"strings"

	"github.com/atzlt/propose/config"
	"github.com/atzlt/propose/geom"
	"github.com/atzlt/propose/value"
)

// StyledDrawable pairs a DValue with a cascading (local, global) config
// view, spec §4.4's "styled drawable".
type StyledDrawable struct {
	Obj  value.DValue
	View config.View
}

// toSVG converts a plane point (cm, Y up) to SVG coordinates (px, Y down).
func toSVG(p geom.Point) (x, y float64) {
	return p.X * config.CM, -p.Y * config.CM
}

func fnum(v float64) string { return fmt.Sprintf("%g", v) }

func dashAttr(v config.View) string {
	s := v.String("dash")
	if s == "" {
		return ""
	}
	return fmt.Sprintf(` stroke-dasharray="%s"`, s)
}

// TargetLayer returns the layer a drawable's variant belongs to (spec
// §4.3: "Point->Dots; Segment/Arc/Circle->Lines; Polygon->Area;
// Angle3P->Lines").
func (d StyledDrawable) TargetLayer() Layer {
	switch d.Obj.(type) {
	case value.DPoint:
		return Dots
	case value.DPolygon:
		return Area
	default:
		return Lines
	}
}

// Render serializes the drawable to its SVG fragment.
func (d StyledDrawable) Render() (string, error) {
	switch o := d.Obj.(type) {
	case value.DSegment:
		return d.renderSegment(o.S), nil
	case value.DPoint:
		return d.renderPoint(o.P), nil
	case value.DCircle:
		return d.renderCircle(o.C)
	case value.DArc:
		return d.renderArc(o.A)
	case value.DPolygon:
		return d.renderPolygon(o.Points)
	case value.DAngle3P:
		return d.renderAngle3P(o.A, o.O, o.B)
	default:
		return "", fmt.Errorf("unknown drawable variant")
	}
}

func (d StyledDrawable) renderSegment(s geom.Segment) string {
	x1, y1 := toSVG(s.From)
	x2, y2 := toSVG(s.To)
	color := d.View.String("color")
	lw, _ := d.View.Number("linewidth")
	return fmt.Sprintf(`<line x1="%s" y1="%s" x2="%s" y2="%s" stroke="%s" stroke-width="%s"%s/>`,
		fnum(x1), fnum(y1), fnum(x2), fnum(y2), color, fnum(lw), dashAttr(d.View))
}

func (d StyledDrawable) renderPoint(p geom.Point) string {
	x, y := toSVG(p)
	size, _ := d.View.Number("dotsize")
	stroke := d.View.String("dotstroke")
	fill := d.View.String("dotfill")
	width, _ := d.View.Number("dotwidth")
	return fmt.Sprintf(`<circle cx="%s" cy="%s" r="%s" stroke="%s" stroke-width="%s" fill="%s"/>`,
		fnum(x), fnum(y), fnum(size), stroke, fnum(width), fill)
}

// renderCircle uses cm units directly (unlike Segment/Point, which convert
// to px), matching the canonical fixture of spec §9's worked example:
// `<circle cx="0cm" cy="-0cm" r="1cm" .../>`.
func (d StyledDrawable) renderCircle(c geom.Circle) (string, error) {
	color := d.View.String("color")
	fill := d.View.String("fill")
	lw, err := d.View.Number("linewidth")
	if err != nil {
		return "", err
	}
	return fmt.Sprintf(`<circle cx="%scm" cy="%scm" r="%scm" stroke="%s" stroke-width="%s" fill="%s"%s/>`,
		fnum(c.O.X), fnum(-c.O.Y), fnum(c.R), color, fnum(lw), fill, dashAttr(d.View)), nil
}

func (d StyledDrawable) renderArc(a geom.Arc) (string, error) {
	color := d.View.String("color")
	fill := d.View.String("fill")
	lw, err := d.View.Number("linewidth")
	if err != nil {
		return "", err
	}
	path := arcPathData(a)
	return fmt.Sprintf(`<path d="%s" stroke="%s" stroke-width="%s" fill="%s"%s/>`,
		path, color, fnum(lw), fill, dashAttr(d.View)), nil
}

// arcPathData builds the SVG elliptical-arc "M...A..." command. The sweep
// flag is inverted versus the arc's own CCW-positive convention because
// toSVG flips the Y axis (spec §4.4).
func arcPathData(a geom.Arc) string {
	x1, y1 := toSVG(a.From)
	x2, y2 := toSVG(a.To)
	large := 0
	if a.LargeArc {
		large = 1
	}
	sweep := 1
	if a.Sweep {
		sweep = 0
	}
	rpx := a.R * config.CM
	return fmt.Sprintf("M %s %s A %s %s 0 %d %d %s %s",
		fnum(x1), fnum(y1), fnum(rpx), fnum(rpx), large, sweep, fnum(x2), fnum(y2))
}

func (d StyledDrawable) renderPolygon(points []geom.Point) (string, error) {
	fill := d.View.String("fill")
	parts := make([]string, len(points))
	for i, p := range points {
		x, y := toSVG(p)
		parts[i] = fmt.Sprintf("%s,%s", fnum(x), fnum(y))
	}
	return fmt.Sprintf(`<polygon points="%s" fill="%s"/>`, strings.Join(parts, " "), fill), nil
}

func (d StyledDrawable) renderAngle3P(a, o, b geom.Point) (string, error) {
	anglesize, err := d.View.Number("anglesize")
	if err != nil {
		return "", err
	}
	r := anglesize / config.CM
	markA, err := pointTowards(o, a, r)
	if err != nil {
		return "", err
	}
	arc, err := geom.ArcFromCenter(markA, o, b)
	if err != nil {
		return "", err
	}
	color := d.View.String("anglecolor")
	lw, err := d.View.Number("anglewidth")
	if err != nil {
		return "", err
	}
	path := arcPathData(arc)
	return fmt.Sprintf(`<path d="%s" stroke="%s" stroke-width="%s" fill="none"%s/>`,
		path, color, fnum(lw), dashAttr(d.View)), nil
}

// GetPosition returns the point at fractional parameter loc on the
// drawable, used by both label placement and decoration tangent-point
// lookup (spec §4.5).
func (d StyledDrawable) GetPosition(loc float64) (geom.Point, error) {
	switch o := d.Obj.(type) {
	case value.DPoint:
		return o.P, nil
	case value.DCircle:
		return o.C.PointOn(loc), nil
	case value.DArc:
		return o.A.PointOn(loc), nil
	case value.DSegment:
		return o.S.PointOn(loc), nil
	case value.DPolygon:
		return geom.Center(o.Points), nil
	case value.DAngle3P:
		arc, err := geom.ArcFromCenter(o.A, o.O, o.B)
		if err != nil {
			return geom.Point{}, err
		}
		return arc.PointOn(loc), nil
	default:
		return geom.Point{}, fmt.Errorf("unknown drawable variant")
	}
}

// TangentAngle returns the direction of travel at fractional parameter loc,
// used to orient decoration glyphs.
func (d StyledDrawable) TangentAngle(loc float64) float64 {
	switch o := d.Obj.(type) {
	case value.DSegment:
		return math.Atan2(o.S.From.Y-o.S.To.Y, o.S.From.X-o.S.To.X)
	case value.DCircle:
		return -(loc + 0.25) * 2 * math.Pi
	case value.DArc:
		start := math.Atan2(o.A.O.X-o.A.From.X, o.A.From.Y-o.A.O.Y)
		end := math.Atan2(o.A.O.X-o.A.To.X, o.A.To.Y-o.A.O.Y)
		return loc*end + (1-loc)*start
	case value.DAngle3P:
		start := math.Atan2(o.O.X-o.A.X, o.A.Y-o.O.Y)
		end := math.Atan2(o.O.X-o.B.X, o.B.Y-o.O.Y)
		return loc*end + (1-loc)*start
	default:
		return 0
	}
}

// pointTowards returns the point at distance r from o towards p.
func pointTowards(o, p geom.Point, r float64) (geom.Point, error) {
	dir := p.Sub(o)
	n := dir.Norm()
	if n < 1e-12 {
		return geom.Point{}, fmt.Errorf("degenerate angle vertex")
	}
	return o.Add(dir.Scale(r / n)), nil
}
