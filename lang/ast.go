// Package lang defines the statement AST the interpreter consumes: the
// external contract described by spec §6, produced by package parse.
package lang

// Statement is one parsed statement. The interpreter type-switches over
// concrete variants below.
type Statement interface{ statement() }

// Config merges option-name to value pairs into the global configuration.
// Later entries in Pairs replace earlier ones with the same Key.
type Config struct {
	Pairs []ConfigPair
}

type ConfigPair struct {
	Key   string
	Value ConfigLit
}

// ConfigLit is the literal form a config value is written in. Raw keeps
// the literal's source text (left empty for a signed number); nothing reads
// it back, and a config value displays from its converted config.Value.
type ConfigLit struct {
	Kind ConfigLitKind
	Num  float64
	Str  string
	Bool bool
	Raw  string
}

type ConfigLitKind int

const (
	ConfigLitNumber ConfigLitKind = iota
	ConfigLitString
	ConfigLitBool
)

func (Config) statement() {}

// Decl binds the result of evaluating Right to Left.
type Decl struct {
	Left  DeclLeft
	Right DeclRight
}

func (Decl) statement() {}

// DeclLeft is either a single binding or a destructuring pair. Name2 == ""
// and Destruct == false for a single binding; "_" in either slot discards.
type DeclLeft struct {
	Name1, Name2 string
	Destruct     bool
}

// DeclRight is the tagged union of a Decl's right-hand side.
type DeclRight interface{ declRight() }

// Coord is an orthogonal (x,y) coordinate.
type Coord struct{ X, Y Numeric }

func (Coord) declRight() {}

// Polar is an (r : theta) coordinate.
type Polar struct{ R, Theta Numeric }

func (Polar) declRight() {}

// ObjectRef is a raw Object reference to resolve with resolve_argument.
type ObjectRef struct{ Object Object }

func (ObjectRef) declRight() {}

// Call is a method call: name arg, arg, ...
type Call struct {
	Name string
	Args []Object
}

func (Call) declRight() {}

// Draw is an ordered list of styled drawable references.
type Draw struct {
	Items []StyledObject
}

func (Draw) statement() {}

// StyledObject pairs an Object with an optional per-step config.
type StyledObject struct {
	Object Object
	Local  *Config
}

// Decor is like Draw but each item also names a decoration glyph.
type Decor struct {
	Items []DecorObject
}

func (Decor) statement() {}

type DecorObject struct {
	Object     Object
	Decoration string
	Local      *Config
}

// Save emits the document to Path. Path == "" means an emit()-only call
// (spec §4.3's "save without a path"), exercised by the CLI's --dry-run.
type Save struct {
	Path string
}

func (Save) statement() {}

// Object is the tagged union of object forms (§4.3 argument/drawable
// resolution operates on this type).
type Object interface{ object() }

// Name is a bare identifier reference.
type Name struct{ Name string }

func (Name) object() {}

// Line2P is the "AB" adjacent-capital-letter shorthand.
type Line2P struct{ A, B string }

func (Line2P) object() {}

// Triangle3P is the "ABC" adjacent-capital-letter shorthand.
type Triangle3P struct{ A, B, C string }

func (Triangle3P) object() {}

// Circ3P is "%(A,B,C)".
type Circ3P struct{ A, B, C string }

func (Circ3P) object() {}

// CircOr is "@(O, r)".
type CircOr struct {
	O string
	R Numeric
}

func (CircOr) object() {}

// CircOA is "%(A,B)": circle centered at A through B.
type CircOA struct{ A, B string }

func (CircOA) object() {}

// CircDiam is "%%(A,B)": circle with diameter AB.
type CircDiam struct{ A, B string }

func (CircDiam) object() {}

// ArcThrough is "arc(A,B,C)": arc through three points.
type ArcThrough struct{ A, B, C string }

func (ArcThrough) object() {}

// ArcCentered is "arcO(A,O,B)": arc from A to B centered at O.
type ArcCentered struct{ A, O, B string }

func (ArcCentered) object() {}

// Polygon is "poly(A,B,C,...)".
type Polygon struct{ Points []string }

func (Polygon) object() {}

// Angle3P is "<AOB>": the angle at vertex O.
type Angle3P struct{ A, O, B string }

func (Angle3P) object() {}

// NumericObject wraps a Numeric used where an Object is syntactically
// expected (a bare number, or $ expr $).
type NumericObject struct{ Value Numeric }

func (NumericObject) object() {}

// Numeric is the tagged union of numeric expression forms (§4.3).
type Numeric interface{ numeric() }

// Literal is a float literal, already adjusted for a parsed "deg" suffix.
type Literal struct{ Value float64 }

func (Literal) numeric() {}

// VarRef looks up a Number binding by name.
type VarRef struct{ Name string }

func (VarRef) numeric() {}

// DistancePP is |AB|.
type DistancePP struct{ A, B string }

func (DistancePP) numeric() {}

// DistancePL is |A,l| (point to a Linear).
type DistancePL struct {
	Point  string
	Linear Linear
}

func (DistancePL) numeric() {}

// DistanceLL is |l,k| (line to line).
type DistanceLL struct{ L, K Linear }

func (DistanceLL) numeric() {}

// AngleNumeric is <AOB>, the three-point angle.
type AngleNumeric struct{ A, O, B string }

func (AngleNumeric) numeric() {}

// Angle2L is the angle between two Linear forms.
type Angle2L struct{ L, K Linear }

func (Angle2L) numeric() {}

// Eval is an inline `$ expr $` arithmetic expression.
type Eval struct{ Expr string }

func (Eval) numeric() {}

// Linear names a Line-valued operand inside a distance/angle Numeric: a
// bound Name, or the "AB" two-letter shorthand.
type Linear interface{ linear() }

type LinearName struct{ Name string }

func (LinearName) linear() {}

type LinearTwoPoint struct{ A, B string }

func (LinearTwoPoint) linear() {}

// Main is a full parsed program: an ordered statement list.
type Main struct {
	Statements []Statement
}
