package components

import (
	"image/color"

	"github.com/lucasb-eyer/go-colorful"

	"notepad/internal/models"
)

// highlightColor backs every find mark.
var highlightColor = mustHex("#ffd54f")

// ParseColor converts a palette token to a color. Malformed tokens fall back
// to white so a bad value never blanks the editor.
func ParseColor(token models.ColorToken) color.Color {
	c, err := colorful.Hex(string(token))
	if err != nil {
		return color.White
	}
	return c
}

func mustHex(s string) colorful.Color {
	c, err := colorful.Hex(s)
	if err != nil {
		panic(err)
	}
	return c
}
