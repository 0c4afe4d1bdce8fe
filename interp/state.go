package interp

import (
	"math"
	"os"

	"github.com/atzlt/propose/config"
	"github.com/atzlt/propose/draw"
	"github.com/atzlt/propose/funcs"
	"github.com/atzlt/propose/geom"
	"github.com/atzlt/propose/lang"
	"github.com/atzlt/propose/value"
)

// State is the interpreter instance of spec §3: an environment, a layer
// store, and a global configuration, mirroring the teacher's svgd.go
// IconChunk holding cumulative render state across a parse.
type State struct {
	Env    map[string]value.GValue
	Layers *draw.Store
	Config config.Config
}

// New returns a freshly initialized interpreter: empty environment, empty
// layers, default configuration.
func New() *State {
	return &State{
		Env:    make(map[string]value.GValue),
		Layers: draw.NewStore(),
		Config: config.NewDefault(),
	}
}

// Clear resets the environment, layers and configuration to their initial
// state without discarding the State value itself (spec §3's lifecycle
// invariant).
func (s *State) Clear() {
	s.Env = make(map[string]value.GValue)
	s.Layers.Clear()
	s.Config = config.NewDefault()
}

func configLitToValue(l lang.ConfigLit) config.Value {
	switch l.Kind {
	case lang.ConfigLitNumber:
		return config.NumberValue(l.Num)
	case lang.ConfigLitBool:
		return config.BoolValue(l.Bool)
	default:
		return config.StringValue(l.Str)
	}
}

func toConfig(c *lang.Config) config.Config {
	if c == nil {
		return nil
	}
	pairs := make([]config.Pair, len(c.Pairs))
	for i, p := range c.Pairs {
		pairs[i] = config.Pair{Key: p.Key, Value: configLitToValue(p.Value)}
	}
	out := make(config.Config, len(pairs))
	out.Merge(pairs)
	return out
}

// Interpret parses and evaluates src against the current state, in the
// order the statements appear. A later statement sees every binding,
// config change and drawn fragment produced by the ones before it.
func (s *State) Interpret(src string, parseFn func(string) (*lang.Main, error)) error {
	main, err := parseFn(src)
	if err != nil {
		return &ParseError{Message: err.Error()}
	}
	return s.EvalProgram(main)
}

// EvalProgram evaluates an already-parsed program against the current
// state, letting a caller that needs the AST for its own purposes (the
// CLI driver's lint pass) parse once and reuse it instead of going through
// Interpret's own parseFn hook.
func (s *State) EvalProgram(main *lang.Main) error {
	for _, stmt := range main.Statements {
		if err := s.evalStatement(stmt); err != nil {
			return err
		}
	}
	return nil
}

func (s *State) evalStatement(stmt lang.Statement) error {
	switch t := stmt.(type) {
	case lang.Config:
		pairs := make([]config.Pair, len(t.Pairs))
		for i, p := range t.Pairs {
			pairs[i] = config.Pair{Key: p.Key, Value: configLitToValue(p.Value)}
		}
		s.Config.Merge(pairs)
		return nil
	case lang.Decl:
		return s.evalDecl(t)
	case lang.Draw:
		return s.evalDraw(t)
	case lang.Decor:
		return s.evalDecor(t)
	case lang.Save:
		return s.evalSave(t)
	default:
		return &ParseError{Message: "unknown statement"}
	}
}

func (s *State) evalDecl(d lang.Decl) error {
	var r1, r2 value.GValue
	switch rhs := d.Right.(type) {
	case lang.Coord:
		x, err := s.resolveNumeric(rhs.X)
		if err != nil {
			return err
		}
		y, err := s.resolveNumeric(rhs.Y)
		if err != nil {
			return err
		}
		r1 = value.GPoint{P: geom.Point{X: x, Y: y}}
		r2 = value.GNull{}
	case lang.Polar:
		radius, err := s.resolveNumeric(rhs.R)
		if err != nil {
			return err
		}
		theta, err := s.resolveNumeric(rhs.Theta)
		if err != nil {
			return err
		}
		r1 = value.GPoint{P: geom.Point{X: radius * math.Cos(theta), Y: radius * math.Sin(theta)}}
		r2 = value.GNull{}
	case lang.ObjectRef:
		v, err := s.resolveArgument(rhs.Object)
		if err != nil {
			return err
		}
		r1 = v
		r2 = value.GNull{}
	case lang.Call:
		args := make([]value.GValue, len(rhs.Args))
		for i, a := range rhs.Args {
			v, err := s.resolveArgument(a)
			if err != nil {
				return err
			}
			args[i] = v
		}
		a, b, err := funcs.Call(rhs.Name, args)
		if err != nil {
			return wrapFuncError(rhs.Name, err)
		}
		r1, r2 = a, b
	default:
		return &ParseError{Message: "unknown decl right-hand side"}
	}
	if d.Left.Name1 != "_" {
		s.Env[d.Left.Name1] = r1
	}
	if d.Left.Destruct && d.Left.Name2 != "_" {
		s.Env[d.Left.Name2] = r2
	}
	return nil
}

func wrapFuncError(name string, err error) error {
	switch e := err.(type) {
	case *funcs.NoFuncError:
		return &FuncError{Kind: NoFunc, Name: name, Err: e}
	case *funcs.ArgError:
		return &FuncError{Kind: ArgError, Name: name, Err: e}
	case *funcs.CalcError:
		return &FuncError{Kind: CalcError, Name: name, Err: e}
	default:
		return err
	}
}

func (s *State) evalDraw(d lang.Draw) error {
	for _, item := range d.Items {
		dv, err := s.resolveDrawable(item.Object)
		if err != nil {
			return err
		}
		sd := draw.StyledDrawable{Obj: dv, View: config.NewView(toConfig(item.Local), s.Config)}
		frag, err := sd.Render()
		if err != nil {
			return err
		}
		s.Layers.Append(sd.TargetLayer(), frag)
		if sd.HasLabel() {
			label, err := sd.Label()
			if err != nil {
				return err
			}
			s.Layers.Append(draw.Text, label)
		}
	}
	return nil
}

func (s *State) evalDecor(d lang.Decor) error {
	for _, item := range d.Items {
		dv, err := s.resolveDrawable(item.Object)
		if err != nil {
			return err
		}
		sd := draw.StyledDrawable{Obj: dv, View: config.NewView(toConfig(item.Local), s.Config)}
		frag, err := sd.Decor(item.Decoration)
		if err != nil {
			if nsd, ok := err.(*draw.NoSuchDecorError); ok {
				return &NoSuchDecor{Glyph: nsd.Glyph}
			}
			return err
		}
		s.Layers.Append(draw.Decor, frag)
	}
	return nil
}

func (s *State) evalSave(save lang.Save) error {
	svg, err := draw.Emit(s.Layers, s.Config)
	if err != nil {
		return err
	}
	if save.Path == "" {
		return nil
	}
	if err := os.WriteFile(save.Path, []byte(svg), 0o644); err != nil {
		return &IOError{Err: err}
	}
	return nil
}

// Emit returns the current document without writing it, the "emit()"
// surface spec §4.3/§4.6 allows.
func (s *State) Emit() (string, error) {
	return draw.Emit(s.Layers, s.Config)
}
