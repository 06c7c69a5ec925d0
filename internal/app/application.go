package app

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"

	"notepad/internal/config"
	"notepad/internal/controllers"
	"notepad/internal/logger"
	"notepad/internal/models"
	"notepad/internal/services"
	"notepad/internal/shutdown"
	"notepad/internal/sound"
	"notepad/internal/views"
)

const (
	AppName    = "Notepad"
	AppID      = "com.example.notepad"
	AppVersion = "1.0.0"
)

type Application struct {
	fyneApp    fyne.App
	window     fyne.Window
	view       *views.MainView
	controller *controllers.MainController
	shutdown   *shutdown.Manager
	logger     logger.Logger
}

// NewApplication creates the fyne app and wires every component.
func NewApplication(cfg *config.Config, log logger.Logger) (*Application, error) {
	app.SetMetadata(fyne.AppMetadata{
		ID:      AppID,
		Name:    AppName,
		Version: AppVersion,
	})
	fyneApp := app.NewWithID(AppID)
	return newApplication(fyneApp, cfg, log), nil
}

func newApplication(fyneApp fyne.App, cfg *config.Config, log logger.Logger) *Application {
	window := fyneApp.NewWindow(AppName)
	window.Resize(fyne.NewSize(cfg.Window.Width, cfg.Window.Height))
	window.CenterOnScreen()
	window.SetMaster()

	log.Info("Application", "starting application", map[string]interface{}{
		"version":       AppVersion,
		"window_width":  cfg.Window.Width,
		"window_height": cfg.Window.Height,
		"sound_enabled": cfg.Sound.Enabled,
	})

	docs := services.NewDocumentService(log)
	session := models.NewSessionWithFont(docs, log, models.Font{Name: cfg.Font.Name, Size: cfg.Font.Size})

	var player sound.Player = sound.NopPlayer{}
	if cfg.Sound.Enabled {
		player = sound.NewBeepPlayer(cfg.Sound.File, log)
	}

	controller := controllers.NewMainController(session, player, models.NewTipPicker(nil), log)
	view := views.NewMainView(window, fyneApp.Clipboard())
	controller.SetMainView(view)

	shutdownMgr := shutdown.NewManager(log)
	shutdownMgr.Register("controller", controller)

	log.Info("Application", "initialization complete", nil)

	return &Application{
		fyneApp:    fyneApp,
		window:     window,
		view:       view,
		controller: controller,
		shutdown:   shutdownMgr,
		logger:     log,
	}
}

// Run shows the window and blocks until the UI loop ends.
func (a *Application) Run() error {
	a.shutdown.Listen(func() {
		fyne.Do(a.fyneApp.Quit)
	})

	a.view.Show()
	a.logger.Info("Application", "GUI displayed", nil)
	a.fyneApp.Run()

	a.shutdown.Shutdown()
	return nil
}
