package draw

import (
	"fmt"

	"github.com/atzlt/propose/config"
)

// Emit assembles the complete SVG document from the layer store and global
// config, per spec §4.6.
func Emit(store *Store, global config.Config) (string, error) {
	view := config.NewView(nil, global)
	width, err := view.Number("width")
	if err != nil {
		return "", err
	}
	height, err := view.Number("height")
	if err != nil {
		return "", err
	}
	w := width * config.CM
	h := height * config.CM
	minX := -w / 2
	if view.Has("minX") {
		n, err := view.Number("minX")
		if err != nil {
			return "", err
		}
		minX = n
	}
	minY := -h / 2
	if view.Has("minY") {
		n, err := view.Number("minY")
		if err != nil {
			return "", err
		}
		minY = n
	}
	body := store.Concat()
	return fmt.Sprintf(
		"<svg xmlns=\"http://www.w3.org/2000/svg\" width=\"%s\" height=\"%s\" viewBox=\"%s %s %s %s\">\n%s\n</svg>",
		fnum(w), fnum(h), fnum(minX), fnum(minY), fnum(w), fnum(h), body,
	), nil
}
