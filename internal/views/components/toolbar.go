package components

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"notepad/internal/models"
)

// Toolbar holds the Tip button and one "Switch to X" button per palette swatch.
type Toolbar struct {
	container      *fyne.Container
	tipButton      *widget.Button
	paletteButtons []*widget.Button

	tipHandler     func()
	paletteHandler func(models.Palette)
}

// NewToolbar creates a new toolbar component
func NewToolbar() *Toolbar {
	toolbar := &Toolbar{}
	toolbar.createComponents()
	toolbar.buildLayout()
	return toolbar
}

func (t *Toolbar) createComponents() {
	t.tipButton = widget.NewButton("Tip", func() {
		if t.tipHandler != nil {
			t.tipHandler()
		}
	})
	t.tipButton.Importance = widget.HighImportance

	for _, swatch := range models.Swatches() {
		palette := swatch.Palette
		t.paletteButtons = append(t.paletteButtons, widget.NewButton("Switch to "+swatch.Label, func() {
			if t.paletteHandler != nil {
				t.paletteHandler(palette)
			}
		}))
	}
}

func (t *Toolbar) buildLayout() {
	swatches := container.NewHBox()
	for _, b := range t.paletteButtons {
		swatches.Add(b)
	}

	t.container = container.NewVBox(
		container.NewCenter(t.tipButton),
		container.NewCenter(swatches),
	)
}

func (t *Toolbar) SetTipHandler(handler func()) {
	t.tipHandler = handler
}

func (t *Toolbar) SetPaletteHandler(handler func(models.Palette)) {
	t.paletteHandler = handler
}

// GetContainer returns the toolbar container
func (t *Toolbar) GetContainer() *fyne.Container {
	return t.container
}
