// Package draw implements the styled drawable (spec §4.4), label and decor
// geometry (§4.5), and the layered document emitter (§4.6). SVG fragment
// shapes are grounded on the teacher's svgp.go path-command assembly style:
// small string-building helper functions rather than a template engine.
package draw

import "strings"

// Layer tags one of the fixed z-order layers.
type Layer int

const (
	Area Layer = iota
	Lines
	Decor
	Dots
	Text
)

// emitOrder is the layer concatenation order spec §4.6 fixes as part of
// the output contract, independent of Layer's own iota values.
var emitOrder = []Layer{Area, Lines, Decor, Dots, Text}

// Store accumulates SVG fragments per layer, spec §3's "Layer store": a
// fixed ordered set of layers, each an accumulating string buffer.
type Store struct {
	bufs map[Layer]*strings.Builder
}

// NewStore returns an empty layer store.
func NewStore() *Store {
	s := &Store{bufs: make(map[Layer]*strings.Builder, len(emitOrder))}
	for _, l := range emitOrder {
		s.bufs[l] = &strings.Builder{}
	}
	return s
}

// Append adds a fragment to layer, separated by a newline from any
// fragment already there.
func (s *Store) Append(layer Layer, fragment string) {
	b := s.bufs[layer]
	if b.Len() > 0 {
		b.WriteByte('\n')
	}
	b.WriteString(fragment)
}

// IsEmpty reports whether every layer is empty.
func (s *Store) IsEmpty() bool {
	for _, l := range emitOrder {
		if s.bufs[l].Len() > 0 {
			return false
		}
	}
	return true
}

// Clear resets every layer to empty.
func (s *Store) Clear() {
	for _, l := range emitOrder {
		s.bufs[l].Reset()
	}
}

// Concat joins every layer's content in the fixed emission order, each
// separated by a single newline (spec §4.6: "concatenated ... with single
// newlines").
func (s *Store) Concat() string {
	parts := make([]string, 0, len(emitOrder))
	for _, l := range emitOrder {
		if s.bufs[l].Len() > 0 {
			parts = append(parts, s.bufs[l].String())
		}
	}
	return strings.Join(parts, "\n")
}
