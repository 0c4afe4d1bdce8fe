package config

// CM is the px-per-cm conversion constant used throughout document emission.
const CM = 37.795

// Defaults is the canonical option set a fresh interpreter/clear() resets
// to, matching the teacher's pattern of seeding style state from a
// package-level var (oksvg.DefaultStyle) rather than a lazily-initialized
// singleton.
var Defaults = Config{
	"width":      NumberValue(10),
	"height":     NumberValue(10),
	"color":      StringValue("#000000"),
	"fill":       StringValue("none"),
	"linewidth":  NumberValue(1.5),
	"dotsize":    NumberValue(2.5),
	"dotstroke":  StringValue("#000000"),
	"dotfill":    StringValue("#000000"),
	"dotwidth":   NumberValue(0.0),
	"labelsize":  NumberValue(15),
	"dist":       NumberValue(10),
	"angle":      NumberValue(0),
	"anglesize":  NumberValue(20),
	"anglecolor": StringValue("#000000"),
	"anglewidth": NumberValue(1.5),
	"decorsize":  NumberValue(5),
	"decorwidth": NumberValue(1.5),
	"decorcolor": StringValue("#000000"),
	"decorfill":  StringValue("none"),
	"loc":        NumberValue(0.5),
	"font":       StringValue("serif"),
}

// NewDefault returns a fresh copy of Defaults, safe for a new interpreter
// instance or a clear() reset to mutate independently.
func NewDefault() Config {
	return Defaults.Clone()
}
