package parse

import (
	"strconv"
	"strings"

	"github.com/atzlt/propose/funcs"
	"github.com/atzlt/propose/lang"
)

// Parse lexes and parses src into a lang.Main, the single entry point the
// interpreter's Interpret method calls through.
func Parse(src string) (*lang.Main, error) {
	toks, err := lexAll(src)
	if err != nil {
		return nil, err
	}
	p := &parser{toks: toks}
	return p.parseMain()
}

func lexAll(src string) ([]token, error) {
	l := newLexer(src)
	var toks []token
	for {
		t, err := l.next()
		if err != nil {
			return nil, err
		}
		if t.kind == tEOF {
			toks = append(toks, t)
			return toks, nil
		}
		toks = append(toks, t)
	}
}

type parser struct {
	toks []token
	pos  int
}

func (p *parser) cur() token  { return p.toks[p.pos] }
func (p *parser) advance()    { p.pos++ }
func (p *parser) atEOF() bool { return p.cur().kind == tEOF }

func (p *parser) errf(msg string) error {
	return &SyntaxError{Pos: p.pos, Msg: msg}
}

func (p *parser) expectSymbol(sym string) error {
	if p.cur().kind != tSymbol || p.cur().text != sym {
		return p.errf("expected " + sym)
	}
	p.advance()
	return nil
}

func (p *parser) isSymbol(sym string) bool {
	return p.cur().kind == tSymbol && p.cur().text == sym
}

func (p *parser) expectIdent() (string, error) {
	if p.cur().kind != tIdent {
		return "", p.errf("expected identifier")
	}
	s := p.cur().text
	p.advance()
	return s, nil
}

func (p *parser) parseMain() (*lang.Main, error) {
	var stmts []lang.Statement
	for !p.atEOF() {
		stmt, err := p.parseStatement()
		if err != nil {
			return nil, err
		}
		stmts = append(stmts, stmt)
	}
	return &lang.Main{Statements: stmts}, nil
}

func (p *parser) parseStatement() (lang.Statement, error) {
	if p.cur().kind == tIdent {
		switch p.cur().text {
		case "config":
			p.advance()
			return p.parseConfigStatement()
		case "draw":
			p.advance()
			return p.parseDrawStatement()
		case "decor":
			p.advance()
			return p.parseDecorStatement()
		case "save":
			p.advance()
			return p.parseSaveStatement()
		}
	}
	return p.parseDeclStatement()
}

func (p *parser) parseConfigStatement() (lang.Statement, error) {
	pairs, err := p.parseConfigPairs()
	if err != nil {
		return nil, err
	}
	if err := p.expectSymbol(";"); err != nil {
		return nil, err
	}
	return lang.Config{Pairs: pairs}, nil
}

// parseConfigPairs parses a comma-separated key=literal list, stopping
// before ';' or ']'.
func (p *parser) parseConfigPairs() ([]lang.ConfigPair, error) {
	var pairs []lang.ConfigPair
	for {
		key, err := p.expectIdent()
		if err != nil {
			return nil, err
		}
		if err := p.expectSymbol("="); err != nil {
			return nil, err
		}
		lit, err := p.parseConfigLit()
		if err != nil {
			return nil, err
		}
		pairs = append(pairs, lang.ConfigPair{Key: key, Value: lit})
		if p.isSymbol(",") {
			p.advance()
			continue
		}
		break
	}
	return pairs, nil
}

func (p *parser) parseConfigLit() (lang.ConfigLit, error) {
	t := p.cur()
	switch t.kind {
	case tNumber:
		p.advance()
		n, err := parseFloatToken(t.text)
		if err != nil {
			return lang.ConfigLit{}, err
		}
		return lang.ConfigLit{Kind: lang.ConfigLitNumber, Num: n, Raw: t.text}, nil
	case tString:
		p.advance()
		return lang.ConfigLit{Kind: lang.ConfigLitString, Str: t.text, Raw: t.text}, nil
	case tIdent:
		if t.text == "true" || t.text == "false" {
			p.advance()
			return lang.ConfigLit{Kind: lang.ConfigLitBool, Bool: t.text == "true", Raw: t.text}, nil
		}
		// a bare identifier (e.g. a color keyword, or a font family name)
		// is taken as a string literal, matching the teacher's own
		// permissive SVG attribute values.
		p.advance()
		return lang.ConfigLit{Kind: lang.ConfigLitString, Str: t.text, Raw: t.text}, nil
	default:
		// handle a signed number, e.g. minX=-5
		if t.kind == tSymbol && (t.text == "-" || t.text == "+") {
			neg := t.text == "-"
			p.advance()
			if p.cur().kind != tNumber {
				return lang.ConfigLit{}, p.errf("expected number after sign")
			}
			n, err := parseFloatToken(p.cur().text)
			if err != nil {
				return lang.ConfigLit{}, err
			}
			p.advance()
			if neg {
				n = -n
			}
			return lang.ConfigLit{Kind: lang.ConfigLitNumber, Num: n}, nil
		}
		return lang.ConfigLit{}, p.errf("expected config literal")
	}
}

func (p *parser) parseDrawStatement() (lang.Statement, error) {
	var items []lang.StyledObject
	for {
		obj, err := p.parseObject(true)
		if err != nil {
			return nil, err
		}
		var local *lang.Config
		if p.isSymbol("[") {
			p.advance()
			pairs, err := p.parseConfigPairs()
			if err != nil {
				return nil, err
			}
			if err := p.expectSymbol("]"); err != nil {
				return nil, err
			}
			local = &lang.Config{Pairs: pairs}
		}
		items = append(items, lang.StyledObject{Object: obj, Local: local})
		if p.isSymbol(",") {
			p.advance()
			continue
		}
		break
	}
	if err := p.expectSymbol(";"); err != nil {
		return nil, err
	}
	return lang.Draw{Items: items}, nil
}

func (p *parser) parseDecorStatement() (lang.Statement, error) {
	var items []lang.DecorObject
	for {
		obj, err := p.parseObject(true)
		if err != nil {
			return nil, err
		}
		var local *lang.Config
		if p.isSymbol("[") {
			p.advance()
			pairs, err := p.parseConfigPairs()
			if err != nil {
				return nil, err
			}
			if err := p.expectSymbol("]"); err != nil {
				return nil, err
			}
			local = &lang.Config{Pairs: pairs}
		}
		if err := p.expectSymbol(":"); err != nil {
			return nil, err
		}
		glyph, err := p.parseGlyph()
		if err != nil {
			return nil, err
		}
		items = append(items, lang.DecorObject{Object: obj, Decoration: glyph, Local: local})
		if p.isSymbol(",") {
			p.advance()
			continue
		}
		break
	}
	if err := p.expectSymbol(";"); err != nil {
		return nil, err
	}
	return lang.Decor{Items: items}, nil
}

func (p *parser) parseGlyph() (string, error) {
	t := p.cur()
	if t.kind != tSymbol || (t.text != "|" && t.text != "||" && t.text != ">") {
		return "", p.errf("expected decoration glyph")
	}
	p.advance()
	return t.text, nil
}

func (p *parser) parseSaveStatement() (lang.Statement, error) {
	if p.isSymbol(";") {
		p.advance()
		return lang.Save{Path: ""}, nil
	}
	if p.cur().kind != tString {
		return nil, p.errf("expected save path string")
	}
	path := p.cur().text
	p.advance()
	if err := p.expectSymbol(";"); err != nil {
		return nil, err
	}
	return lang.Save{Path: path}, nil
}

func (p *parser) parseDeclStatement() (lang.Statement, error) {
	name1, err := p.expectIdent()
	if err != nil {
		return nil, err
	}
	left := lang.DeclLeft{Name1: name1}
	if p.isSymbol(",") {
		p.advance()
		name2, err := p.expectIdent()
		if err != nil {
			return nil, err
		}
		left.Name2 = name2
		left.Destruct = true
	}
	if err := p.expectSymbol("="); err != nil {
		return nil, err
	}
	right, err := p.parseDeclRight()
	if err != nil {
		return nil, err
	}
	if err := p.expectSymbol(";"); err != nil {
		return nil, err
	}
	return lang.Decl{Left: left, Right: right}, nil
}

func (p *parser) parseDeclRight() (lang.DeclRight, error) {
	if p.isSymbol("(") {
		return p.parseCoordOrPolar()
	}
	if p.cur().kind == tIdent && isMethodName(p.cur().text) {
		name := p.cur().text
		p.advance()
		var args []lang.Object
		for {
			arg, err := p.parseObject(true)
			if err != nil {
				return nil, err
			}
			args = append(args, arg)
			if p.isSymbol(",") {
				p.advance()
				continue
			}
			break
		}
		return lang.Call{Name: name, Args: args}, nil
	}
	obj, err := p.parseObject(true)
	if err != nil {
		return nil, err
	}
	return lang.ObjectRef{Object: obj}, nil
}

func (p *parser) parseCoordOrPolar() (lang.DeclRight, error) {
	if err := p.expectSymbol("("); err != nil {
		return nil, err
	}
	first, err := p.parseNumeric()
	if err != nil {
		return nil, err
	}
	if p.isSymbol(":") {
		p.advance()
		theta, err := p.parseNumeric()
		if err != nil {
			return nil, err
		}
		if err := p.expectSymbol(")"); err != nil {
			return nil, err
		}
		return lang.Polar{R: first, Theta: theta}, nil
	}
	if err := p.expectSymbol(","); err != nil {
		return nil, err
	}
	y, err := p.parseNumeric()
	if err != nil {
		return nil, err
	}
	if err := p.expectSymbol(")"); err != nil {
		return nil, err
	}
	return lang.Coord{X: first, Y: y}, nil
}

var methodNames = buildMethodNameSet()

func buildMethodNameSet() map[string]bool {
	m := make(map[string]bool, len(funcs.Table))
	for name := range funcs.Table {
		m[name] = true
	}
	return m
}

func isMethodName(name string) bool { return methodNames[name] }

// isAllUpper reports whether name is the point-identifier convention form:
// a non-empty run of single uppercase ASCII letters (spec.md §3).
func isAllUpper(name string) bool {
	if name == "" {
		return false
	}
	for _, r := range name {
		if r < 'A' || r > 'Z' {
			return false
		}
	}
	return true
}

// parseObject parses one Object per the §4 surface syntax. allowTriangle
// governs whether a bare 3-letter point run resolves to Triangle3P (method
// arguments and ObjectRef positions both allow it, since resolve_argument
// handles Triangle directly).
func (p *parser) parseObject(allowTriangle bool) (lang.Object, error) {
	t := p.cur()
	switch {
	case t.kind == tString && strings.HasPrefix(t.text, "$"):
		p.advance()
		return lang.NumericObject{Value: lang.Eval{Expr: strings.TrimPrefix(t.text, "$")}}, nil
	case t.kind == tNumber || (t.kind == tSymbol && (t.text == "-" || t.text == "+")) || (t.kind == tSymbol && t.text == "|"):
		n, err := p.parseNumeric()
		if err != nil {
			return nil, err
		}
		return lang.NumericObject{Value: n}, nil
	case t.kind == tSymbol && t.text == "<":
		return p.parseAngleObject()
	case t.kind == tSymbol && t.text == "%%":
		p.advance()
		a, b, err := p.parseParenPair()
		if err != nil {
			return nil, err
		}
		return lang.CircDiam{A: a, B: b}, nil
	case t.kind == tSymbol && t.text == "%":
		p.advance()
		return p.parsePercentObject()
	case t.kind == tSymbol && t.text == "@":
		p.advance()
		return p.parseAtObject()
	case t.kind == tIdent && t.text == "arc":
		p.advance()
		a, b, c, err := p.parseParenTriple()
		if err != nil {
			return nil, err
		}
		return lang.ArcThrough{A: a, B: b, C: c}, nil
	case t.kind == tIdent && t.text == "arcO":
		p.advance()
		a, o, b, err := p.parseParenTriple()
		if err != nil {
			return nil, err
		}
		return lang.ArcCentered{A: a, O: o, B: b}, nil
	case t.kind == tIdent && t.text == "tri":
		p.advance()
		a, b, c, err := p.parseParenTriple()
		if err != nil {
			return nil, err
		}
		return lang.Triangle3P{A: a, B: b, C: c}, nil
	case t.kind == tIdent && t.text == "poly":
		p.advance()
		names, err := p.parseParenNames()
		if err != nil {
			return nil, err
		}
		return lang.Polygon{Points: names}, nil
	case t.kind == tIdent:
		name := t.text
		p.advance()
		if isAllUpper(name) {
			switch len(name) {
			case 1:
				return lang.Name{Name: name}, nil
			case 2:
				return lang.Line2P{A: string(name[0]), B: string(name[1])}, nil
			case 3:
				if allowTriangle {
					return lang.Triangle3P{A: string(name[0]), B: string(name[1]), C: string(name[2])}, nil
				}
				return nil, p.errf("unexpected 3-point run where a Triangle isn't allowed")
			default:
				return nil, p.errf("point-identifier run longer than 3 letters")
			}
		}
		return lang.Name{Name: name}, nil
	default:
		return nil, p.errf("expected object")
	}
}

func (p *parser) parseAngleObject() (lang.Object, error) {
	if err := p.expectSymbol("<"); err != nil {
		return nil, err
	}
	n, err := p.parseAngleInteriorAsNumeric()
	if err != nil {
		return nil, err
	}
	if err := p.expectSymbol(">"); err != nil {
		return nil, err
	}
	if a, ok := n.(lang.AngleNumeric); ok {
		return lang.Angle3P{A: a.A, O: a.O, B: a.B}, nil
	}
	return lang.NumericObject{Value: n}, nil
}

// parseAngleInteriorAsNumeric parses the "AOB" or "l,k" interior of a <...>
// numeric/angle form, shared by parseNumeric and parseAngleObject.
func (p *parser) parseAngleInteriorAsNumeric() (lang.Numeric, error) {
	if p.cur().kind == tIdent && isAllUpper(p.cur().text) && len(p.cur().text) == 3 {
		name := p.cur().text
		p.advance()
		return lang.AngleNumeric{A: string(name[0]), O: string(name[1]), B: string(name[2])}, nil
	}
	l, err := p.parseLinear()
	if err != nil {
		return nil, err
	}
	if err := p.expectSymbol(","); err != nil {
		return nil, err
	}
	k, err := p.parseLinear()
	if err != nil {
		return nil, err
	}
	return lang.Angle2L{L: l, K: k}, nil
}

func (p *parser) parseLinear() (lang.Linear, error) {
	name, err := p.expectIdent()
	if err != nil {
		return nil, err
	}
	if isAllUpper(name) && len(name) == 2 {
		return lang.LinearTwoPoint{A: string(name[0]), B: string(name[1])}, nil
	}
	return lang.LinearName{Name: name}, nil
}

func (p *parser) parsePercentObject() (lang.Object, error) {
	if err := p.expectSymbol("("); err != nil {
		return nil, err
	}
	first, err := p.expectIdent()
	if err != nil {
		return nil, err
	}
	if err := p.expectSymbol(","); err != nil {
		return nil, err
	}
	second, err := p.expectIdent()
	if err != nil {
		return nil, err
	}
	if p.isSymbol(",") {
		p.advance()
		third, err := p.expectIdent()
		if err != nil {
			return nil, err
		}
		if err := p.expectSymbol(")"); err != nil {
			return nil, err
		}
		return lang.Circ3P{A: first, B: second, C: third}, nil
	}
	if err := p.expectSymbol(")"); err != nil {
		return nil, err
	}
	return lang.CircOA{A: first, B: second}, nil
}

func (p *parser) parseAtObject() (lang.Object, error) {
	if err := p.expectSymbol("("); err != nil {
		return nil, err
	}
	o, err := p.expectIdent()
	if err != nil {
		return nil, err
	}
	if err := p.expectSymbol(","); err != nil {
		return nil, err
	}
	r, err := p.parseNumeric()
	if err != nil {
		return nil, err
	}
	if err := p.expectSymbol(")"); err != nil {
		return nil, err
	}
	return lang.CircOr{O: o, R: r}, nil
}

func (p *parser) parseParenPair() (a, b string, err error) {
	if err = p.expectSymbol("("); err != nil {
		return
	}
	a, err = p.expectIdent()
	if err != nil {
		return
	}
	if err = p.expectSymbol(","); err != nil {
		return
	}
	b, err = p.expectIdent()
	if err != nil {
		return
	}
	err = p.expectSymbol(")")
	return
}

func (p *parser) parseParenTriple() (a, b, c string, err error) {
	if err = p.expectSymbol("("); err != nil {
		return
	}
	a, err = p.expectIdent()
	if err != nil {
		return
	}
	if err = p.expectSymbol(","); err != nil {
		return
	}
	b, err = p.expectIdent()
	if err != nil {
		return
	}
	if err = p.expectSymbol(","); err != nil {
		return
	}
	c, err = p.expectIdent()
	if err != nil {
		return
	}
	err = p.expectSymbol(")")
	return
}

func (p *parser) parseParenNames() ([]string, error) {
	if err := p.expectSymbol("("); err != nil {
		return nil, err
	}
	var names []string
	for {
		name, err := p.expectIdent()
		if err != nil {
			return nil, err
		}
		names = append(names, name)
		if p.isSymbol(",") {
			p.advance()
			continue
		}
		break
	}
	if err := p.expectSymbol(")"); err != nil {
		return nil, err
	}
	return names, nil
}

// parseNumeric parses one Numeric per the §4 surface syntax.
func (p *parser) parseNumeric() (lang.Numeric, error) {
	t := p.cur()
	switch {
	case t.kind == tString && strings.HasPrefix(t.text, "$"):
		p.advance()
		return lang.Eval{Expr: strings.TrimPrefix(t.text, "$")}, nil
	case t.kind == tSymbol && (t.text == "-" || t.text == "+"):
		neg := t.text == "-"
		p.advance()
		inner, err := p.parseNumeric()
		if err != nil {
			return nil, err
		}
		if neg {
			if lit, ok := inner.(lang.Literal); ok {
				return lang.Literal{Value: -lit.Value}, nil
			}
		}
		return inner, nil
	case t.kind == tNumber:
		p.advance()
		n, err := parseFloatToken(t.text)
		if err != nil {
			return nil, err
		}
		if p.cur().kind == tIdent && p.cur().text == "deg" {
			p.advance()
			n = n * degToRad
		}
		return lang.Literal{Value: n}, nil
	case t.kind == tSymbol && t.text == "|":
		return p.parseDistance()
	case t.kind == tSymbol && t.text == "<":
		p.advance()
		n, err := p.parseAngleInteriorAsNumeric()
		if err != nil {
			return nil, err
		}
		if err := p.expectSymbol(">"); err != nil {
			return nil, err
		}
		return n, nil
	case t.kind == tIdent:
		name := t.text
		p.advance()
		return lang.VarRef{Name: name}, nil
	default:
		return nil, p.errf("expected numeric")
	}
}

const degToRad = 3.14159265358979323846 / 180

func (p *parser) parseDistance() (lang.Numeric, error) {
	if err := p.expectSymbol("|"); err != nil {
		return nil, err
	}
	first, err := p.expectIdent()
	if err != nil {
		return nil, err
	}
	if p.isSymbol(",") {
		p.advance()
		linear2, err := p.parseLinear()
		if err != nil {
			return nil, err
		}
		if err := p.expectSymbol("|"); err != nil {
			return nil, err
		}
		if isAllUpper(first) && len(first) == 1 {
			return lang.DistancePL{Point: first, Linear: linear2}, nil
		}
		var l1 lang.Linear
		if isAllUpper(first) && len(first) == 2 {
			l1 = lang.LinearTwoPoint{A: string(first[0]), B: string(first[1])}
		} else {
			l1 = lang.LinearName{Name: first}
		}
		return lang.DistanceLL{L: l1, K: linear2}, nil
	}
	if err := p.expectSymbol("|"); err != nil {
		return nil, err
	}
	if !isAllUpper(first) || len(first) != 2 {
		return nil, p.errf("expected two-point run inside |..|")
	}
	return lang.DistancePP{A: string(first[0]), B: string(first[1])}, nil
}

func parseFloatToken(s string) (float64, error) {
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, &SyntaxError{Msg: "invalid number literal " + s}
	}
	return v, nil
}
