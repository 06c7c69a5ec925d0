package components

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"notepad/internal/models"
)

// EditorTab is the on-screen editor for one session tab: a multi-line entry
// plus a find-results pane that shows the text with every mark highlighted.
type EditorTab struct {
	tab       *models.Tab
	clipboard fyne.Clipboard

	entry     *widget.Entry
	grid      *widget.TextGrid
	marksPane *fyne.Container
	override  *container.ThemeOverride

	// set while the buffer pushes text into the entry
	syncing bool

	background models.ColorToken
	foreground models.ColorToken
}

var _ models.TextEditor = (*EditorTab)(nil)

// NewEditorTab builds the widgets for tab and attaches itself as the tab's
// editor.
func NewEditorTab(tab *models.Tab, clipboard fyne.Clipboard) *EditorTab {
	e := &EditorTab{tab: tab, clipboard: clipboard}
	e.createComponents()
	e.buildLayout()

	tab.Buffer.AddListener(e.onBufferChanged)
	tab.AttachEditor(e)
	e.onBufferChanged(tab.Buffer)
	return e
}

func (e *EditorTab) createComponents() {
	e.entry = widget.NewMultiLineEntry()
	e.entry.Wrapping = fyne.TextWrapWord
	e.entry.OnChanged = func(text string) {
		if e.syncing {
			return
		}
		e.tab.Buffer.SetText(text)
	}

	e.grid = widget.NewTextGrid()
}

func (e *EditorTab) buildLayout() {
	results := container.NewVScroll(e.grid)
	results.SetMinSize(fyne.NewSize(0, 120))

	e.marksPane = container.NewBorder(
		widget.NewLabelWithStyle("Find results", fyne.TextAlignLeading, fyne.TextStyle{Bold: true}),
		nil, nil, nil,
		results,
	)
	e.marksPane.Hide()

	content := container.NewBorder(nil, e.marksPane, nil, nil, e.entry)
	e.override = container.NewThemeOverride(content, newTabTheme(e.tab.Buffer))
}

// Content returns the canvas object placed in the tab item.
func (e *EditorTab) Content() fyne.CanvasObject {
	return e.override
}

// Tab returns the session tab this editor displays.
func (e *EditorTab) Tab() *models.Tab {
	return e.tab
}

func (e *EditorTab) onBufferChanged(buffer *models.Buffer) {
	if e.entry.Text != buffer.Text() {
		e.syncing = true
		e.entry.SetText(buffer.Text())
		e.syncing = false
	}

	if buffer.Background() != e.background || buffer.TextColor() != e.foreground {
		e.background, e.foreground = buffer.Background(), buffer.TextColor()
		e.override.Theme = newTabTheme(buffer)
		e.override.Refresh()
	}

	e.renderMarks(buffer.Text(), buffer.Matches())
}

func (e *EditorTab) renderMarks(text string, matches []models.Match) {
	if len(matches) == 0 {
		e.marksPane.Hide()
		return
	}

	e.grid.SetText(text)
	style := &widget.CustomTextGridStyle{FGColor: ParseColor(models.Black), BGColor: highlightColor}
	for _, r := range markCells(text, matches) {
		e.grid.SetStyleRange(r.startRow, r.startCol, r.endRow, r.endCol, style)
	}
	e.marksPane.Show()
}

func (e *EditorTab) Cut() {
	e.entry.TypedShortcut(&fyne.ShortcutCut{Clipboard: e.clipboard})
}

func (e *EditorTab) Copy() {
	e.entry.TypedShortcut(&fyne.ShortcutCopy{Clipboard: e.clipboard})
}

func (e *EditorTab) Paste() {
	e.entry.TypedShortcut(&fyne.ShortcutPaste{Clipboard: e.clipboard})
}

// cellRange is an inclusive grid range, as SetStyleRange expects.
type cellRange struct {
	startRow, startCol int
	endRow, endCol     int
}

// markCells maps rune-offset matches onto TextGrid rows and columns.
func markCells(text string, matches []models.Match) []cellRange {
	if len(matches) == 0 {
		return nil
	}

	type cell struct{ row, col int }
	runes := []rune(text)
	positions := make([]cell, len(runes)+1)
	row, col := 0, 0
	for i, r := range runes {
		positions[i] = cell{row, col}
		if r == '\n' {
			row++
			col = 0
			continue
		}
		col++
	}
	positions[len(runes)] = cell{row, col}

	out := make([]cellRange, 0, len(matches))
	for _, m := range matches {
		if m.Start < 0 || m.End > len(runes) || m.End <= m.Start {
			continue
		}
		start, end := positions[m.Start], positions[m.End-1]
		out = append(out, cellRange{start.row, start.col, end.row, end.col})
	}
	return out
}
