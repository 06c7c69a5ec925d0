package views

import (
	"errors"
	"testing"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/test"
	"fyne.io/fyne/v2/widget"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"notepad/internal/models"
)

func TestMainViewTabs(t *testing.T) {
	a := test.NewTempApp(t)
	view := NewMainView(test.NewTempWindow(t, widget.NewLabel("")), a.Clipboard())
	session := models.NewSession(nil, nil)

	var selected []int
	view.Bind(Actions{SelectTab: func(i int) { selected = append(selected, i) }})

	first := session.Tabs()[0]
	second := session.AddTab()
	view.AddTab(first)
	view.AddTab(second)

	require.Len(t, view.tabs.Items, 2)
	require.Len(t, view.editors, 2)
	assert.Same(t, first, view.editors[0].Tab())
	assert.Same(t, second, view.editors[1].Tab())
	assert.Equal(t, "Tab 1", view.tabs.Items[0].Text)
	assert.Equal(t, "Tab 2", view.tabs.Items[1].Text)
	assert.Equal(t, 0, view.SelectedTab())

	view.SelectTab(1)
	assert.Equal(t, 1, view.SelectedTab())
	require.NotEmpty(t, selected)
	assert.Equal(t, 1, selected[len(selected)-1])

	view.SelectTab(5)
	assert.Equal(t, 1, view.SelectedTab())
}

func TestMainViewMenuAndStatus(t *testing.T) {
	a := test.NewTempApp(t)
	w := test.NewTempWindow(t, widget.NewLabel(""))
	view := NewMainView(w, a.Clipboard())

	newTabs := 0
	view.Bind(Actions{NewTab: func() { newTabs++ }})

	menu := w.MainMenu()
	require.NotNil(t, menu)
	require.Len(t, menu.Items, 3)
	assert.Equal(t, "File", menu.Items[0].Label)
	assert.Equal(t, "Edit", menu.Items[1].Label)

	labels := []string{}
	for _, item := range menu.Items[1].Items {
		labels = append(labels, item.Label)
	}
	assert.Equal(t, []string{"Cut", "Copy", "Paste", "Find"}, labels)

	menu.Items[0].Items[0].Action()
	menu.Items[1].Items[0].Action()
	assert.Equal(t, 1, newTabs)

	view.UpdateStatus("Saved notes.txt")
	view.UpdateTabInfo("Tab 1", 0, 1)
	assert.Equal(t, "Saved notes.txt", view.statusBar.GetStatus())
	assert.Equal(t, "Tab 1 (1 of 1)", view.statusBar.GetTabInfo())
}

func TestShowErrorUsesTitle(t *testing.T) {
	test.NewTempApp(t)
	w := test.NewTempWindow(t, widget.NewLabel(""))
	view := NewMainView(w, nil)

	view.ShowError("Save failed", errors.New("disk full"))

	top := w.Canvas().Overlays().Top()
	require.NotNil(t, top)
	texts := labelTexts(top)
	assert.Contains(t, texts, "Save failed")
	assert.Contains(t, texts, "disk full")
}

func labelTexts(obj fyne.CanvasObject) []string {
	var texts []string
	switch o := obj.(type) {
	case *widget.Label:
		return append(texts, o.Text)
	case *fyne.Container:
		for _, child := range o.Objects {
			texts = append(texts, labelTexts(child)...)
		}
	case fyne.Widget:
		for _, child := range test.WidgetRenderer(o).Objects() {
			texts = append(texts, labelTexts(child)...)
		}
	}
	return texts
}
