package config

// View is a (local, global) cascading lookup, the Go analogue of the
// teacher's style-stack pattern in PushStyle: start from the current
// (global) style and let a narrower scope's explicit settings (local)
// override it, rather than mutating the global in place.
type View struct {
	Local  Config // optional: nil means no per-step overrides
	Global Config
}

// NewView builds a cascading view over local (may be nil) and global.
func NewView(local, global Config) View {
	return View{Local: local, Global: global}
}

// Get returns the local value for key if set, else the global one. The
// caller is guaranteed a hit for any of the canonical default keys, since
// Global is always seeded from Defaults.
func (v View) Get(key string) (Value, bool) {
	if v.Local != nil {
		if val, ok := v.Local[key]; ok {
			return val, true
		}
	}
	val, ok := v.Global[key]
	return val, ok
}

// Number looks up key and requires it to be a Number, as required-option
// reads do throughout draw/label/decor geometry (spec §4.4: "all
// option-name reads that drive shape output are required").
func (v View) Number(key string) (float64, error) {
	val, ok := v.Get(key)
	if !ok {
		return 0, &WrongConfigTypeError{Key: key, Want: Number, Got: -1}
	}
	return val.AsNumber(key)
}

// String looks up key's raw lexical form.
func (v View) String(key string) string {
	val, ok := v.Get(key)
	if !ok {
		return ""
	}
	return val.AsString()
}

// Has reports whether key resolves to anything (local or global), used by
// the "label" option's absence check (spec §4.3: "if configuration resolves
// 'label' to a non-absent value").
func (v View) Has(key string) bool {
	_, ok := v.Get(key)
	return ok
}
