// Package lint implements static pre-flight checks over a parsed script
// that the CLI can run before committing to writing output (spec.md's
// ambient stack extension, SPEC_FULL.md §2). Unknown color names are
// resolved against golang.org/x/image/colornames the same way the
// teacher's ParseSVGColor does in svgd.go; label-bbox overflow uses
// package textmetrics to approximate rendered width.
package lint

import (
	"fmt"
	"strings"

	"golang.org/x/image/colornames"

	"github.com/atzlt/propose/config"
	"github.com/atzlt/propose/lang"
	"github.com/atzlt/propose/textmetrics"
)

// Finding is one lint warning, not a hard error: in --strict mode the CLI
// logs these and fails that file's run (a non-zero exit in file mode; in
// directory mode the failure is logged and the next file is processed).
type Finding struct {
	Message string
}

func (f Finding) String() string { return f.Message }

var colorKeys = []string{"color", "fill", "dotstroke", "dotfill", "anglecolor", "decorcolor", "decorfill"}

// CheckColors walks every Config statement's pairs and every per-step
// config block, flagging any color-option string value that is neither a
// "#"-prefixed hex literal, "none", nor a name colornames.Map recognizes —
// mirroring the color keywords ParseSVGColor resolves through the same
// package.
func CheckColors(main *lang.Main) []Finding {
	var findings []Finding
	check := func(pairs []lang.ConfigPair) {
		for _, p := range pairs {
			if p.Value.Kind != lang.ConfigLitString {
				continue
			}
			if !isColorKey(p.Key) {
				continue
			}
			if !validColorLiteral(p.Value.Str) {
				findings = append(findings, Finding{
					Message: fmt.Sprintf("unrecognized color name %q for option %q", p.Value.Str, p.Key),
				})
			}
		}
	}
	for _, stmt := range main.Statements {
		switch t := stmt.(type) {
		case lang.Config:
			check(t.Pairs)
		case lang.Draw:
			for _, item := range t.Items {
				if item.Local != nil {
					check(item.Local.Pairs)
				}
			}
		case lang.Decor:
			for _, item := range t.Items {
				if item.Local != nil {
					check(item.Local.Pairs)
				}
			}
		}
	}
	return findings
}

func isColorKey(key string) bool {
	for _, k := range colorKeys {
		if k == key {
			return true
		}
	}
	return false
}

func validColorLiteral(s string) bool {
	if s == "none" || strings.HasPrefix(s, "#") {
		return true
	}
	_, ok := colornames.Map[strings.ToLower(s)]
	return ok
}

// CheckLabelBounds estimates, for every Draw item that carries a "label"
// option, whether half the label's rendered width exceeds the document's
// viewBox half-width. The label's position (loc, dist, angle) is not taken
// into account, only its width at the configured labelsize — a check
// the teacher's text layer sidesteps by measuring and centering text at
// render time (svg_text.go), which propose's plain <text> output never
// does on its own.
func CheckLabelBounds(main *lang.Main, global config.Config) []Finding {
	var findings []Finding
	view := config.NewView(nil, global)
	width, err := view.Number("width")
	if err != nil {
		return findings
	}
	halfW := width * config.CM / 2
	for _, stmt := range main.Statements {
		d, ok := stmt.(lang.Draw)
		if !ok {
			continue
		}
		for _, item := range d.Items {
			local := configFrom(item.Local)
			v := config.NewView(local, global)
			if !v.Has("label") {
				continue
			}
			label := v.String("label")
			size, err := v.Number("labelsize")
			if err != nil {
				continue
			}
			w, err := textmetrics.MeasureWidth(strings.ReplaceAll(label, "_", ""), size)
			if err != nil {
				continue
			}
			if w/2 > halfW {
				findings = append(findings, Finding{
					Message: fmt.Sprintf("label %q may overflow the document viewBox (estimated half-width %.1fpx > %.1fpx)", label, w/2, halfW),
				})
			}
		}
	}
	return findings
}

func configFrom(c *lang.Config) config.Config {
	if c == nil {
		return nil
	}
	out := make(config.Config, len(c.Pairs))
	pairs := make([]config.Pair, len(c.Pairs))
	for i, p := range c.Pairs {
		var v config.Value
		switch p.Value.Kind {
		case lang.ConfigLitNumber:
			v = config.NumberValue(p.Value.Num)
		case lang.ConfigLitBool:
			v = config.BoolValue(p.Value.Bool)
		default:
			v = config.StringValue(p.Value.Str)
		}
		pairs[i] = config.Pair{Key: p.Key, Value: v}
	}
	out.Merge(pairs)
	return out
}
