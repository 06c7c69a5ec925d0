package components

import (
	"testing"

	"fyne.io/fyne/v2/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"notepad/internal/models"
)

func TestToolbarPaletteButtons(t *testing.T) {
	test.NewTempApp(t)
	toolbar := NewToolbar()

	var got []models.Palette
	toolbar.SetPaletteHandler(func(p models.Palette) { got = append(got, p) })

	require.Len(t, toolbar.paletteButtons, len(models.Swatches()))
	assert.Equal(t, "Switch to Default", toolbar.paletteButtons[0].Text)
	assert.Equal(t, "Switch to Black", toolbar.paletteButtons[4].Text)

	test.Tap(toolbar.paletteButtons[4])
	test.Tap(toolbar.paletteButtons[1])
	assert.Equal(t, []models.Palette{models.PaletteBlack, models.PaletteRed}, got)
}

func TestToolbarTipButton(t *testing.T) {
	test.NewTempApp(t)
	toolbar := NewToolbar()

	tapped := 0
	test.Tap(toolbar.tipButton)
	toolbar.SetTipHandler(func() { tapped++ })
	test.Tap(toolbar.tipButton)

	assert.Equal(t, 1, tapped)
}
