package controllers

import (
	"errors"
	"fmt"
	"io"
	"path/filepath"

	"notepad/internal/logger"
	"notepad/internal/models"
	"notepad/internal/sound"
	"notepad/internal/views"
)

// View is the window surface the controller drives. Choosers report a
// cancelled dialog as an empty path with a nil error.
type View interface {
	Bind(actions views.Actions)
	AddTab(tab *models.Tab)
	SelectTab(index int)
	UpdateStatus(status string)
	UpdateTabInfo(name string, index, count int)
	ShowError(title string, err error)
	ShowInfo(title, message string)
	ChooseOpenPath(callback func(path string, err error))
	ChooseSavePath(fileName string, callback func(target views.SaveTarget, err error))
	ShowFind(onFind func(query string))
}

var _ View = (*views.MainView)(nil)

// MainController owns the editing session and turns UI commands into session
// operations, dialogs and sounds.
type MainController struct {
	session *models.Session
	view    View
	player  sound.Player
	tips    *models.TipPicker
	logger  logger.Logger
}

// NewMainController creates a new main controller
func NewMainController(session *models.Session, player sound.Player, tips *models.TipPicker, log logger.Logger) *MainController {
	if player == nil {
		player = sound.NopPlayer{}
	}
	if tips == nil {
		tips = models.NewTipPicker(nil)
	}
	if log == nil {
		log = logger.NopLogger{}
	}
	return &MainController{
		session: session,
		player:  player,
		tips:    tips,
		logger:  log,
	}
}

// SetMainView attaches the view, shows the existing tabs and wires commands.
func (mc *MainController) SetMainView(view View) {
	mc.view = view

	for _, tab := range mc.session.Tabs() {
		view.AddTab(tab)
	}
	view.SelectTab(mc.session.ActiveIndex())

	view.Bind(views.Actions{
		NewTab:        mc.NewTab,
		Open:          mc.Open,
		Save:          mc.Save,
		SaveAs:        mc.SaveAs,
		Cut:           mc.session.Cut,
		Copy:          mc.session.Copy,
		Paste:         mc.session.Paste,
		Find:          mc.ShowFind,
		ShowTip:       mc.ShowTip,
		SwitchPalette: mc.SwitchPalette,
		SelectTab:     mc.SelectTab,
	})
	mc.refreshTabInfo()
}

// Session exposes the session for wiring and tests.
func (mc *MainController) Session() *models.Session {
	return mc.session
}

func (mc *MainController) NewTab() {
	tab := mc.session.AddTab()
	mc.view.AddTab(tab)
	mc.refreshTabInfo()
}

func (mc *MainController) SelectTab(index int) {
	if err := mc.session.SetActive(index); err != nil {
		mc.logger.Warning("MainController", "ignoring invalid tab selection", map[string]interface{}{
			"index": index,
			"error": err.Error(),
		})
		return
	}
	mc.refreshTabInfo()
}

// Open replaces the current tab's content with a file the user picks.
func (mc *MainController) Open() {
	mc.view.ChooseOpenPath(func(path string, err error) {
		if err != nil {
			mc.handleError("Open failed", err)
			return
		}
		if path == "" {
			mc.logger.Debug("MainController", "open cancelled", nil)
			return
		}

		if err := mc.session.OpenFile(path); err != nil {
			mc.handleError("Open failed", err)
			return
		}
		mc.view.UpdateStatus(fmt.Sprintf("Opened %s", filepath.Base(path)))
	})
}

// Save writes to the tab's remembered path, prompting only when the tab has
// never been opened from or saved to a file.
func (mc *MainController) Save() {
	tab, err := mc.session.CurrentTab()
	if err != nil {
		mc.handleError("Save failed", err)
		return
	}
	if path := tab.Buffer.Path(); path != "" {
		mc.writeTo(path, mc.session.SaveFile)
		return
	}
	mc.promptSave(tab, mc.session.SaveFile)
}

// SaveAs always asks for a destination.
func (mc *MainController) SaveAs() {
	tab, err := mc.session.CurrentTab()
	if err != nil {
		mc.handleError("Save failed", err)
		return
	}
	mc.promptSave(tab, mc.session.SaveAsFile)
}

func (mc *MainController) promptSave(tab *models.Tab, save func(string) error) {
	mc.view.ChooseSavePath(suggestedFileName(tab), func(target views.SaveTarget, err error) {
		if err != nil {
			mc.handleError("Save failed", err)
			return
		}
		if target.Path == "" {
			mc.logger.Debug("MainController", "save cancelled", nil)
			return
		}
		if target.Writer == nil {
			mc.writeTo(target.Path, save)
			return
		}
		defer target.Writer.Close()

		mc.writeTo(target.Path, func(path string) error {
			saveErr := save(path)
			if saveErr == nil {
				return nil
			}
			return mc.writeThrough(tab, target, saveErr)
		})
	})
}

// writeThrough stores the tab's text through the dialog's writer after the
// atomic replace failed. The dialog has already truncated the target.
func (mc *MainController) writeThrough(tab *models.Tab, target views.SaveTarget, saveErr error) error {
	mc.logger.Warning("MainController", "atomic save failed, writing through dialog", map[string]interface{}{
		"path":  target.Path,
		"error": saveErr.Error(),
	})
	if _, err := io.WriteString(target.Writer, tab.Buffer.Text()); err != nil {
		return saveErr
	}
	tab.Buffer.SetPath(target.Path)
	return nil
}

func (mc *MainController) writeTo(path string, save func(string) error) {
	if err := save(path); err != nil {
		mc.handleError("Save failed", err)
		return
	}
	mc.view.ShowInfo("Info", "File saved successfully!")
	mc.view.UpdateStatus(fmt.Sprintf("Saved %s", filepath.Base(path)))
}

func suggestedFileName(tab *models.Tab) string {
	if path := tab.Buffer.Path(); path != "" {
		return filepath.Base(path)
	}
	return tab.Name + ".txt"
}

func (mc *MainController) ShowFind() {
	mc.view.ShowFind(mc.Find)
}

// Find marks every occurrence of query in the current tab.
func (mc *MainController) Find(query string) {
	matches, err := mc.session.Find(query)
	if errors.Is(err, models.ErrEmptyQuery) {
		mc.view.UpdateStatus("Enter text to find")
		return
	}
	if err != nil {
		mc.handleError("Find failed", err)
		return
	}

	switch len(matches) {
	case 0:
		mc.view.UpdateStatus(fmt.Sprintf("No matches for %q", query))
	case 1:
		mc.view.UpdateStatus(fmt.Sprintf("1 match for %q", query))
	default:
		mc.view.UpdateStatus(fmt.Sprintf("%d matches for %q", len(matches), query))
	}
}

// SwitchPalette plays the cue and recolors every tab.
func (mc *MainController) SwitchPalette(p models.Palette) {
	mc.player.Play()

	if err := mc.session.SwitchBackgroundColor(p); err != nil {
		mc.handleError("Color change failed", err)
		return
	}
	mc.view.UpdateStatus(fmt.Sprintf("Background: %s", p))
}

func (mc *MainController) ShowTip() {
	mc.view.ShowInfo("Tip", mc.tips.Next())
	mc.player.Play()
}

func (mc *MainController) refreshTabInfo() {
	tab, err := mc.session.CurrentTab()
	if err != nil {
		return
	}
	mc.view.UpdateTabInfo(tab.Name, mc.session.ActiveIndex(), mc.session.Len())
}

// handleError logs err and reports it to the user. The session state is
// already unchanged by the failed operation.
func (mc *MainController) handleError(title string, err error) {
	mc.logger.Error("MainController", err, map[string]interface{}{"action": title})
	mc.view.ShowError(title, err)
}

// Shutdown releases the sound device.
func (mc *MainController) Shutdown() {
	mc.player.Shutdown()
}
