package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSwatchTable(t *testing.T) {
	got := Swatches()
	require.Len(t, got, 5)

	labels := make([]string, 0, len(got))
	for i, s := range got {
		assert.Equal(t, Palette(i), s.Palette)
		labels = append(labels, s.Label)
		if s.Palette == PaletteBlack {
			assert.Equal(t, White, s.Text)
		} else {
			assert.Equal(t, Black, s.Text)
		}
	}
	assert.Equal(t, []string{"Default", "Red", "Blue", "Green", "Black"}, labels)
	assert.Equal(t, White, got[0].Background)
	assert.Equal(t, ColorToken("#333333"), got[4].Background)
}

func TestSwatchesReturnsCopy(t *testing.T) {
	got := Swatches()
	got[0].Label = "changed"
	assert.Equal(t, "Default", Swatches()[0].Label)
}

func TestUnknownPalette(t *testing.T) {
	_, err := Palette(9).Swatch()
	assert.ErrorIs(t, err, ErrUnknownPalette)
	assert.Equal(t, "Palette(9)", Palette(9).String())
	assert.Equal(t, "Blue", PaletteBlue.String())
}
