package app

import (
	"context"
	"errors"
	"image"
	"sync"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"
	"go.uber.org/zap"

	"github.com/pokeapi-desk/pokemon-viewer/internal/config"
	"github.com/pokeapi-desk/pokemon-viewer/internal/gui"
	"github.com/pokeapi-desk/pokemon-viewer/internal/gui/panels"
	"github.com/pokeapi-desk/pokemon-viewer/internal/gui/state"
	"github.com/pokeapi-desk/pokemon-viewer/internal/services"
)

// noticeKind selects how a blocking notification is styled.
type noticeKind int

const (
	noticeWarning noticeKind = iota
	noticeError
)

// Searcher runs one species search. *services.LookupService implements it.
type Searcher interface {
	Search(ctx context.Context, raw string) (*services.Result, error)
}

// Application represents the main GUI application
type Application struct {
	logger *zap.Logger
	cfg    *config.Config

	// Fyne app and window
	fyneApp fyne.App
	window  fyne.Window

	state    *state.ViewState
	searcher Searcher

	searchPanel *panels.SearchPanel
	infoPanel   *panels.InfoPanel

	// dispatch runs f on the UI goroutine; notify shows a blocking dialog.
	dispatch func(f func())
	notify   func(kind noticeKind, title, message string)

	// Context and lifecycle
	ctx    context.Context
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

// NewApplication creates the window on fyneApp. The caller owns fyneApp so
// tests can pass a test app.
func NewApplication(logger *zap.Logger, cfg *config.Config, fyneApp fyne.App, searcher Searcher) *Application {
	if logger == nil {
		logger = zap.NewNop()
	}
	ctx, cancel := context.WithCancel(context.Background())

	// Apply dark theme if configured
	if cfg.GUI.Theme == "dark" {
		fyneApp.Settings().SetTheme(theme.DarkTheme())
	}

	window := fyneApp.NewWindow(cfg.GUI.Title)
	window.Resize(fyne.NewSize(float32(cfg.GUI.Width), float32(cfg.GUI.Height)))

	a := &Application{
		logger:   logger,
		cfg:      cfg,
		fyneApp:  fyneApp,
		window:   window,
		state:    state.NewViewState(),
		searcher: searcher,
		dispatch: fyne.Do,
		ctx:      ctx,
		cancel:   cancel,
	}
	a.notify = a.showDialog

	return a
}

// Initialize builds the layout and hooks window lifecycle events.
func (a *Application) Initialize() error {
	if a.searcher == nil {
		return errors.New("searcher is nil")
	}

	artworkSize := fyne.NewSize(float32(a.cfg.Artwork.Width), float32(a.cfg.Artwork.Height))
	a.searchPanel = panels.NewSearchPanel(a.state, artworkSize, a.HandleSearch)
	a.infoPanel = panels.NewInfoPanel(a.state)

	a.createLayout()
	a.window.SetOnClosed(a.handleWindowClose)
	a.window.Canvas().Focus(a.searchPanel.Entry)

	return nil
}

// createLayout places the search pane left and the info pane right.
func (a *Application) createLayout() {
	split := container.NewHSplit(a.searchPanel.Content(), a.infoPanel.Content())
	split.Offset = 0.55

	content := container.NewBorder(
		nil,
		gui.CreateBottomBar(a.cfg.API.BaseURL, a.cfg.Application.Version),
		nil, nil,
		split,
	)

	a.window.SetContent(content)
}

// Run starts the application
func (a *Application) Run() {
	a.logger.Info("Starting GUI application")
	a.window.ShowAndRun()
}

// HandleSearch is the Search action. It must be called on the UI goroutine.
func (a *Application) HandleSearch(raw string) {
	if a.state.Searching() {
		return
	}

	// Empty input is rejected without touching the network.
	if _, err := services.ValidateQuery(raw); err != nil {
		title, msg := services.UserMessage(err)
		a.notify(noticeWarning, title, msg)
		return
	}

	a.state.SetSearching(raw, true)
	a.searchPanel.SetBusy(true)

	a.wg.Add(1)
	go func() {
		defer a.wg.Done()
		a.runSearch(raw)
	}()
}

func (a *Application) runSearch(raw string) {
	res, err := a.searcher.Search(a.ctx, raw)
	a.dispatch(func() {
		a.applyResult(res, err)
	})
}

// applyResult renders a finished search. It runs on the UI goroutine.
func (a *Application) applyResult(res *services.Result, err error) {
	a.searchPanel.SetBusy(false)

	if err != nil {
		a.state.SetSearching("", false)
		if errors.Is(err, context.Canceled) && a.ctx.Err() != nil {
			return
		}
		title, msg := services.UserMessage(err)
		a.notify(noticeError, title, msg)
		return
	}

	if a.state.Render(res) {
		a.searchPanel.SetImage(a.state.Image())
	}
}

func (a *Application) showDialog(kind noticeKind, title, message string) {
	dialog.NewCustom(title, "OK", noticeContent(kind, message), a.window).Show()
}

// noticeContent pairs the message with a warning or error icon.
func noticeContent(kind noticeKind, message string) *fyne.Container {
	icon := theme.WarningIcon()
	if kind == noticeError {
		icon = theme.ErrorIcon()
	}
	return container.NewHBox(widget.NewIcon(icon), widget.NewLabel(message))
}

// CurrentImage returns the artwork currently bound to the image region.
func (a *Application) CurrentImage() image.Image {
	return a.searchPanel.Artwork.Image
}

func (a *Application) handleWindowClose() {
	a.logger.Info("GUI: Window closed")
	a.Stop()
}

// Stop cancels in-flight searches and waits for them to finish.
func (a *Application) Stop() {
	a.cancel()
	a.wg.Wait()
}
