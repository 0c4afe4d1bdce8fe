// Package config implements the cascading style configuration (spec §4.1,
// §4.4): a tagged ConfigValue, the Config map it populates, default seeding
// in the style of the teacher's package-level DefaultStyle var, and a
// two-level (local, global) cascading view.
package config

import "fmt"

// Kind tags a Value's variant.
type Kind int

const (
	Number Kind = iota
	String
	Bool
)

// Value is a tagged union {Number, String, Bool}. Display is always the
// value's raw lexical form — no quoting around strings.
type Value struct {
	Kind Kind
	Num  float64
	Str  string
	Flag bool
}

func NumberValue(n float64) Value { return Value{Kind: Number, Num: n} }
func StringValue(s string) Value  { return Value{Kind: String, Str: s} }
func BoolValue(b bool) Value      { return Value{Kind: Bool, Flag: b} }

func (v Value) String() string {
	switch v.Kind {
	case Number:
		return fmt.Sprintf("%g", v.Num)
	case String:
		return v.Str
	case Bool:
		if v.Flag {
			return "true"
		}
		return "false"
	default:
		return ""
	}
}

// WrongConfigTypeError is returned by AsNumber/AsBool when the stored
// variant can't satisfy the requested accessor.
type WrongConfigTypeError struct {
	Key  string
	Want Kind
	Got  Kind
}

func (e *WrongConfigTypeError) Error() string {
	return fmt.Sprintf("config key %q: wrong type (want %v, got %v)", e.Key, e.Want, e.Got)
}

// AsNumber returns the value as a float64, failing WrongConfigType unless
// Kind is Number.
func (v Value) AsNumber(key string) (float64, error) {
	if v.Kind != Number {
		return 0, &WrongConfigTypeError{Key: key, Want: Number, Got: v.Kind}
	}
	return v.Num, nil
}

// AsString returns the value's raw lexical string form; unlike AsNumber
// this never fails, since every Value displays as a string.
func (v Value) AsString() string { return v.String() }

// AsBool returns the value as a bool, failing WrongConfigType unless Kind is Bool.
func (v Value) AsBool(key string) (bool, error) {
	if v.Kind != Bool {
		return false, &WrongConfigTypeError{Key: key, Want: Bool, Got: v.Kind}
	}
	return v.Flag, nil
}

// Config is a flat option-name to Value mapping.
type Config map[string]Value

// Clone returns a shallow copy (Values are themselves immutable scalars).
func (c Config) Clone() Config {
	out := make(Config, len(c))
	for k, v := range c {
		out[k] = v
	}
	return out
}

// Pair is an ordered key/value update, as produced by a parsed Config
// statement (lang.ConfigPair carries the same shape before literal
// evaluation).
type Pair struct {
	Key   string
	Value Value
}

// Merge upserts pairs into c in order, so a later pair with a repeated key
// wins, matching spec §4.3's "later keys replace earlier ones in the same
// statement".
func (c Config) Merge(pairs []Pair) {
	for _, p := range pairs {
		c[p.Key] = p.Value
	}
}

// Package config declares no counterpart of lang.ConfigLitKind and does not
// import package lang (which would create config<->lang layering neither
// package needs otherwise); callers translate their own ConfigLit-shaped
// value into a Value via NumberValue/StringValue/BoolValue directly, as
// interp and lint both do.
