package views

import (
	"io"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/storage"
	"fyne.io/fyne/v2/widget"

	"notepad/internal/models"
	"notepad/internal/views/components"
)

// Actions are the user commands the view forwards to the controller.
type Actions struct {
	NewTab        func()
	Open          func()
	Save          func()
	SaveAs        func()
	Cut           func()
	Copy          func()
	Paste         func()
	Find          func()
	ShowTip       func()
	SwitchPalette func(models.Palette)
	SelectTab     func(index int)
}

// MainView is the notepad window content
type MainView struct {
	window    fyne.Window
	clipboard fyne.Clipboard

	mainContainer *fyne.Container
	tabs          *container.AppTabs
	editors       []*components.EditorTab
	toolbar       *components.Toolbar
	statusBar     *components.StatusBar

	actions Actions
}

// NewMainView creates a new main view
func NewMainView(window fyne.Window, clipboard fyne.Clipboard) *MainView {
	view := &MainView{
		window:    window,
		clipboard: clipboard,
	}

	view.initializeComponents()
	view.buildLayout()
	view.setupEventHandlers()

	return view
}

func (mv *MainView) initializeComponents() {
	mv.tabs = container.NewAppTabs()
	mv.toolbar = components.NewToolbar()
	mv.statusBar = components.NewStatusBar()
}

func (mv *MainView) buildLayout() {
	bottomArea := container.NewVBox(
		mv.toolbar.GetContainer(),
		widget.NewSeparator(),
		mv.statusBar.GetContainer(),
	)

	mv.mainContainer = container.NewBorder(
		nil,        // top
		bottomArea, // bottom
		nil,        // left
		nil,        // right
		mv.tabs,    // center
	)

	mv.window.SetContent(mv.mainContainer)
}

func (mv *MainView) buildMainMenu() *fyne.MainMenu {
	fileMenu := fyne.NewMenu("File",
		fyne.NewMenuItem("New Tab", orNoop(mv.actions.NewTab)),
		fyne.NewMenuItem("Open", orNoop(mv.actions.Open)),
		fyne.NewMenuItem("Save", orNoop(mv.actions.Save)),
		fyne.NewMenuItem("Save As", orNoop(mv.actions.SaveAs)),
	)

	editMenu := fyne.NewMenu("Edit",
		fyne.NewMenuItem("Cut", orNoop(mv.actions.Cut)),
		fyne.NewMenuItem("Copy", orNoop(mv.actions.Copy)),
		fyne.NewMenuItem("Paste", orNoop(mv.actions.Paste)),
		fyne.NewMenuItem("Find", orNoop(mv.actions.Find)),
	)

	helpMenu := fyne.NewMenu("Help",
		fyne.NewMenuItem("Tip", orNoop(mv.actions.ShowTip)),
	)

	return fyne.NewMainMenu(fileMenu, editMenu, helpMenu)
}

func orNoop(fn func()) func() {
	if fn == nil {
		return func() {}
	}
	return fn
}

func (mv *MainView) setupEventHandlers() {
	mv.tabs.OnSelected = func(*container.TabItem) {
		if mv.actions.SelectTab != nil {
			mv.actions.SelectTab(mv.tabs.SelectedIndex())
		}
	}
}

// Bind connects the view's commands to the controller.
func (mv *MainView) Bind(actions Actions) {
	mv.actions = actions

	mv.window.SetMainMenu(mv.buildMainMenu())
	mv.toolbar.SetTipHandler(orNoop(actions.ShowTip))
	mv.toolbar.SetPaletteHandler(func(p models.Palette) {
		if actions.SwitchPalette != nil {
			actions.SwitchPalette(p)
		}
	})
}

// AddTab creates the editor for tab and appends it to the tab strip.
func (mv *MainView) AddTab(tab *models.Tab) {
	editor := components.NewEditorTab(tab, mv.clipboard)
	mv.editors = append(mv.editors, editor)
	mv.tabs.Append(container.NewTabItem(tab.Name, editor.Content()))
}

func (mv *MainView) SelectTab(index int) {
	if index >= 0 && index < len(mv.tabs.Items) && mv.tabs.SelectedIndex() != index {
		mv.tabs.SelectIndex(index)
	}
}

func (mv *MainView) SelectedTab() int {
	return mv.tabs.SelectedIndex()
}

func (mv *MainView) UpdateStatus(status string) {
	mv.statusBar.SetStatus(status)
}

func (mv *MainView) UpdateTabInfo(name string, index, count int) {
	mv.statusBar.SetTabInfo(name, index, count)
}

// ShowError displays an error dialog headed by title.
func (mv *MainView) ShowError(title string, err error) {
	message := widget.NewLabel(err.Error())
	message.Wrapping = fyne.TextWrapWord
	d := dialog.NewCustom(title, "OK", message, mv.window)
	d.Resize(fyne.NewSize(360, d.MinSize().Height))
	d.Show()
}

// ShowInfo displays an information dialog
func (mv *MainView) ShowInfo(title, message string) {
	dialog.ShowInformation(title, message, mv.window)
}

// ChooseOpenPath asks for a text file to open. The callback receives an
// empty path and nil error when the user cancels.
func (mv *MainView) ChooseOpenPath(callback func(path string, err error)) {
	fd := dialog.NewFileOpen(func(reader fyne.URIReadCloser, err error) {
		if err != nil {
			callback("", err)
			return
		}
		if reader == nil {
			callback("", nil)
			return
		}
		path := reader.URI().Path()
		reader.Close()
		callback(path, nil)
	}, mv.window)
	fd.SetFilter(storage.NewExtensionFileFilter([]string{".txt"}))
	fd.Show()
}

// SaveTarget is the destination picked in the save dialog. The dialog has
// already created or truncated the file behind Writer, so the caller must
// close Writer once the save is finished.
type SaveTarget struct {
	Path   string
	Writer io.WriteCloser
}

// ChooseSavePath asks where to save, suggesting fileName. Cancel is reported
// as a zero SaveTarget and nil error.
func (mv *MainView) ChooseSavePath(fileName string, callback func(target SaveTarget, err error)) {
	fd := dialog.NewFileSave(func(writer fyne.URIWriteCloser, err error) {
		if err != nil {
			callback(SaveTarget{}, err)
			return
		}
		if writer == nil {
			callback(SaveTarget{}, nil)
			return
		}
		callback(SaveTarget{Path: writer.URI().Path(), Writer: writer}, nil)
	}, mv.window)
	fd.SetFileName(fileName)
	fd.Show()
}

// ShowFind opens the find dialog. onFind runs each time Find is pressed or
// the query is submitted; the dialog stays open until closed.
func (mv *MainView) ShowFind(onFind func(query string)) {
	query := widget.NewEntry()
	query.SetPlaceHolder("Text to find")
	query.OnSubmitted = onFind

	findButton := widget.NewButton("Find", func() {
		onFind(query.Text)
	})

	content := container.NewBorder(nil, nil, widget.NewLabel("Find:"), findButton, query)
	d := dialog.NewCustom("Find", "Close", content, mv.window)
	d.Resize(fyne.NewSize(360, d.MinSize().Height))
	d.Show()
	mv.window.Canvas().Focus(query)
}

// Show displays the view
func (mv *MainView) Show() {
	mv.window.Show()
}
