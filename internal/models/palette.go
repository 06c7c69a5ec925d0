package models

import "fmt"

// ColorToken is a hex RGB color such as "#ff9999".
type ColorToken string

const (
	White ColorToken = "#ffffff"
	Black ColorToken = "#000000"
)

// Palette is one of the fixed background swatches.
type Palette int

const (
	PaletteDefault Palette = iota
	PaletteRed
	PaletteBlue
	PaletteGreen
	PaletteBlack
)

// Swatch is the presentation a palette entry applies to every tab.
type Swatch struct {
	Palette    Palette
	Label      string
	Background ColorToken
	Text       ColorToken
}

var swatches = []Swatch{
	{PaletteDefault, "Default", White, Black},
	{PaletteRed, "Red", "#ff9999", Black},
	{PaletteBlue, "Blue", "#99ccff", Black},
	{PaletteGreen, "Green", "#99ff99", Black},
	{PaletteBlack, "Black", "#333333", White},
}

// Swatches returns the palette table in display order.
func Swatches() []Swatch {
	out := make([]Swatch, len(swatches))
	copy(out, swatches)
	return out
}

// Swatch looks up the colors for p.
func (p Palette) Swatch() (Swatch, error) {
	if p < 0 || int(p) >= len(swatches) {
		return Swatch{}, fmt.Errorf("palette %d: %w", int(p), ErrUnknownPalette)
	}
	return swatches[p], nil
}

func (p Palette) String() string {
	if s, err := p.Swatch(); err == nil {
		return s.Label
	}
	return fmt.Sprintf("Palette(%d)", int(p))
}
