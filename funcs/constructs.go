package funcs

import (
	"github.com/atzlt/propose/geom"
	"github.com/atzlt/propose/value"
)

func dispatchIntersect(args []value.GValue) (value.GValue, value.GValue, error) {
	switch len(args) {
	case 3:
		if l, ok1 := asLine(args[0]); ok1 {
			if k, ok2 := asLine(args[1]); ok2 {
				if p, ok3 := asPoint(args[2]); ok3 {
					q, err := l.Intersect(k)
					if err != nil {
						return nil, nil, calc(err)
					}
					_ = p
					return value.GPoint{P: q}, value.GNull{}, nil
				}
			}
			if c, ok2 := asCircle(args[1]); ok2 {
				if p, ok3 := asPoint(args[2]); ok3 {
					p1, p2, err := geom.IntersectLineCircleNear(l, c, p)
					if err != nil {
						return nil, nil, calc(err)
					}
					return value.GPoint{P: p1}, value.GPoint{P: p2}, nil
				}
			}
		}
		if c, ok1 := asCircle(args[0]); ok1 {
			if l, ok2 := asLine(args[1]); ok2 {
				if p, ok3 := asPoint(args[2]); ok3 {
					p1, p2, err := geom.IntersectLineCircleNear(l, c, p)
					if err != nil {
						return nil, nil, calc(err)
					}
					return value.GPoint{P: p1}, value.GPoint{P: p2}, nil
				}
			}
			if d, ok2 := asCircle(args[1]); ok2 {
				if p, ok3 := asPoint(args[2]); ok3 {
					p1, p2, err := geom.IntersectCirclesNear(c, d, p)
					if err != nil {
						return nil, nil, calc(err)
					}
					return value.GPoint{P: p1}, value.GPoint{P: p2}, nil
				}
			}
		}
	case 2:
		if l, ok1 := asLine(args[0]); ok1 {
			if k, ok2 := asLine(args[1]); ok2 {
				p, err := l.Intersect(k)
				if err != nil {
					return nil, nil, calc(err)
				}
				return value.GPoint{P: p}, value.GNull{}, nil
			}
			if c, ok2 := asCircle(args[1]); ok2 {
				p1, p2, err := geom.IntersectLineCircle(l, c)
				if err != nil {
					return nil, nil, calc(err)
				}
				return value.GPoint{P: p1}, value.GPoint{P: p2}, nil
			}
		}
		if c, ok1 := asCircle(args[0]); ok1 {
			if l, ok2 := asLine(args[1]); ok2 {
				p1, p2, err := geom.IntersectLineCircle(l, c)
				if err != nil {
					return nil, nil, calc(err)
				}
				return value.GPoint{P: p1}, value.GPoint{P: p2}, nil
			}
			if d, ok2 := asCircle(args[1]); ok2 {
				p1, p2, err := geom.IntersectCircles(c, d)
				if err != nil {
					return nil, nil, calc(err)
				}
				return value.GPoint{P: p1}, value.GPoint{P: p2}, nil
			}
		}
	}
	return nil, nil, &ArgError{Name: "i", Args: args}
}

func dispatchPerp(args []value.GValue) (value.GValue, value.GValue, error) {
	if len(args) == 2 {
		if p, ok1 := asPoint(args[0]); ok1 {
			if l, ok2 := asLine(args[1]); ok2 {
				return value.GLine{L: geom.Perp(p, l)}, value.GNull{}, nil
			}
		}
	}
	return nil, nil, &ArgError{Name: "perp", Args: args}
}

func dispatchPar(args []value.GValue) (value.GValue, value.GValue, error) {
	if len(args) == 2 {
		if p, ok1 := asPoint(args[0]); ok1 {
			if l, ok2 := asLine(args[1]); ok2 {
				return value.GLine{L: geom.Parallel(p, l)}, value.GNull{}, nil
			}
		}
	}
	return nil, nil, &ArgError{Name: "par", Args: args}
}

func dispatchProj(args []value.GValue) (value.GValue, value.GValue, error) {
	if len(args) == 2 {
		if p, ok1 := asPoint(args[0]); ok1 {
			if l, ok2 := asLine(args[1]); ok2 {
				return value.GPoint{P: geom.Projection(p, l)}, value.GNull{}, nil
			}
		}
	}
	return nil, nil, &ArgError{Name: "proj", Args: args}
}

func dispatchPb(args []value.GValue) (value.GValue, value.GValue, error) {
	if len(args) == 2 {
		if a, ok1 := asPoint(args[0]); ok1 {
			if b, ok2 := asPoint(args[1]); ok2 {
				l, err := geom.PerpBisector(a, b)
				if err != nil {
					return nil, nil, calc(err)
				}
				return value.GLine{L: l}, value.GNull{}, nil
			}
		}
	}
	return nil, nil, &ArgError{Name: "pb", Args: args}
}

func dispatchAb(args []value.GValue) (value.GValue, value.GValue, error) {
	if len(args) == 3 {
		if a, ok1 := asPoint(args[0]); ok1 {
			if o, ok2 := asPoint(args[1]); ok2 {
				if b, ok3 := asPoint(args[2]); ok3 {
					l1, l2, err := geom.AngleBisect3P(a, o, b)
					if err != nil {
						return nil, nil, calc(err)
					}
					return value.GLine{L: l1}, value.GLine{L: l2}, nil
				}
			}
		}
	}
	if len(args) == 2 {
		if l, ok1 := asLine(args[0]); ok1 {
			if k, ok2 := asLine(args[1]); ok2 {
				l1, l2 := geom.AngleBisect(l, k)
				return value.GLine{L: l1}, value.GLine{L: l2}, nil
			}
		}
	}
	return nil, nil, &ArgError{Name: "ab", Args: args}
}

func dispatchMid(args []value.GValue) (value.GValue, value.GValue, error) {
	if len(args) == 2 {
		if a, ok1 := asPoint(args[0]); ok1 {
			if b, ok2 := asPoint(args[1]); ok2 {
				return value.GPoint{P: geom.Midpoint(a, b)}, value.GNull{}, nil
			}
		}
	}
	return nil, nil, &ArgError{Name: "mid", Args: args}
}

func dispatchTan(args []value.GValue) (value.GValue, value.GValue, error) {
	if len(args) == 2 {
		if p, ok1 := asPoint(args[0]); ok1 {
			if c, ok2 := asCircle(args[1]); ok2 {
				l1, l2, err := geom.TangentsFromPoint(p, c)
				if err != nil {
					return nil, nil, calc(err)
				}
				return value.GLine{L: l1}, value.GLine{L: l2}, nil
			}
		}
	}
	return nil, nil, &ArgError{Name: "tan", Args: args}
}

func dispatchOuterTan(args []value.GValue) (value.GValue, value.GValue, error) {
	if len(args) == 2 {
		if c, ok1 := asCircle(args[0]); ok1 {
			if d, ok2 := asCircle(args[1]); ok2 {
				l1, l2, err := geom.OuterTangents(c, d)
				if err != nil {
					return nil, nil, calc(err)
				}
				return value.GLine{L: l1}, value.GLine{L: l2}, nil
			}
		}
	}
	return nil, nil, &ArgError{Name: "outer-tan", Args: args}
}

func dispatchInnerTan(args []value.GValue) (value.GValue, value.GValue, error) {
	if len(args) == 2 {
		if c, ok1 := asCircle(args[0]); ok1 {
			if d, ok2 := asCircle(args[1]); ok2 {
				l1, l2, err := geom.InnerTangents(c, d)
				if err != nil {
					return nil, nil, calc(err)
				}
				return value.GLine{L: l1}, value.GLine{L: l2}, nil
			}
		}
	}
	return nil, nil, &ArgError{Name: "inner-tan", Args: args}
}

func dispatchRadAx(args []value.GValue) (value.GValue, value.GValue, error) {
	if len(args) == 2 {
		if c, ok1 := asCircle(args[0]); ok1 {
			if d, ok2 := asCircle(args[1]); ok2 {
				l, err := geom.RadicalAxis(c, d)
				if err != nil {
					return nil, nil, calc(err)
				}
				return value.GLine{L: l}, value.GNull{}, nil
			}
		}
	}
	return nil, nil, &ArgError{Name: "rad-ax", Args: args}
}

func dispatchPolar(args []value.GValue) (value.GValue, value.GValue, error) {
	if len(args) == 2 {
		if p, ok1 := asPoint(args[0]); ok1 {
			if c, ok2 := asCircle(args[1]); ok2 {
				l, err := geom.Polar(p, c)
				if err != nil {
					return nil, nil, calc(err)
				}
				return value.GLine{L: l}, value.GNull{}, nil
			}
		}
	}
	return nil, nil, &ArgError{Name: "polar", Args: args}
}

func dispatchOn(args []value.GValue) (value.GValue, value.GValue, error) {
	if len(args) == 2 {
		if c, ok1 := asCircle(args[0]); ok1 {
			if t, ok2 := asNumber(args[1]); ok2 {
				return value.GPoint{P: c.PointOn(t)}, value.GNull{}, nil
			}
		}
	}
	if len(args) == 3 {
		if a, ok1 := asPoint(args[0]); ok1 {
			if b, ok2 := asPoint(args[1]); ok2 {
				if t, ok3 := asNumber(args[2]); ok3 {
					s := geom.Segment{From: a, To: b}
					return value.GPoint{P: s.PointOn(t)}, value.GNull{}, nil
				}
			}
		}
	}
	return nil, nil, &ArgError{Name: "on", Args: args}
}

func dispatchL(args []value.GValue) (value.GValue, value.GValue, error) {
	if len(args) == 2 {
		if a, ok1 := asPoint(args[0]); ok1 {
			if b, ok2 := asPoint(args[1]); ok2 {
				l, err := geom.LineFrom2P(a, b)
				if err != nil {
					return nil, nil, calc(err)
				}
				return value.GLine{L: l}, value.GNull{}, nil
			}
		}
	}
	if len(args) == 3 {
		if a, ok1 := asNumber(args[0]); ok1 {
			if b, ok2 := asNumber(args[1]); ok2 {
				if c, ok3 := asNumber(args[2]); ok3 {
					l, err := geom.LineFromCoeff(a, b, c)
					if err != nil {
						return nil, nil, calc(err)
					}
					return value.GLine{L: l}, value.GNull{}, nil
				}
			}
		}
		if a, ok1 := asNumber(args[0]); ok1 {
			if b, ok2 := asNumber(args[1]); ok2 {
				if p, ok3 := asPoint(args[2]); ok3 {
					l, err := geom.LineFromSlopeAndPoint(a, b, p)
					if err != nil {
						return nil, nil, calc(err)
					}
					return value.GLine{L: l}, value.GNull{}, nil
				}
			}
		}
	}
	return nil, nil, &ArgError{Name: "l", Args: args}
}

func dispatchCirc(args []value.GValue) (value.GValue, value.GValue, error) {
	if len(args) == 1 {
		if c, ok := asCircle(args[0]); ok {
			return value.GPoint{P: c.O}, value.GNumber{N: c.R}, nil
		}
	}
	return nil, nil, &ArgError{Name: "circ", Args: args}
}
