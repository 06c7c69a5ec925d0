package components

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/theme"

	"notepad/internal/models"
)

// tabTheme overrides the editor colors and text size of a single tab.
type tabTheme struct {
	base       fyne.Theme
	background color.Color
	foreground color.Color
	textSize   float32
}

var _ fyne.Theme = (*tabTheme)(nil)

func newTabTheme(buffer *models.Buffer) *tabTheme {
	return &tabTheme{
		base:       theme.DefaultTheme(),
		background: ParseColor(buffer.Background()),
		foreground: ParseColor(buffer.TextColor()),
		textSize:   buffer.Font().Size,
	}
}

func (t *tabTheme) Color(name fyne.ThemeColorName, variant fyne.ThemeVariant) color.Color {
	switch name {
	case theme.ColorNameBackground, theme.ColorNameInputBackground:
		return t.background
	case theme.ColorNameForeground:
		return t.foreground
	}
	return t.base.Color(name, variant)
}

func (t *tabTheme) Font(style fyne.TextStyle) fyne.Resource {
	return t.base.Font(style)
}

func (t *tabTheme) Icon(name fyne.ThemeIconName) fyne.Resource {
	return t.base.Icon(name)
}

func (t *tabTheme) Size(name fyne.ThemeSizeName) float32 {
	if name == theme.SizeNameText && t.textSize > 0 {
		return t.textSize
	}
	return t.base.Size(name)
}
