package main

import (
	"context"
	"fmt"
	"net/http"
	"runtime"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"

	"sports-explorer/internal/config"
	"sports-explorer/internal/controllers"
	"sports-explorer/internal/imaging"
	"sports-explorer/internal/logger"
	"sports-explorer/internal/metrics"
	"sports-explorer/internal/shutdown"
	"sports-explorer/internal/sportsdb"
	"sports-explorer/internal/views"
	"sports-explorer/internal/views/pages"
)

const (
	AppName = "Sports Explorer"
	AppID   = "com.sportsexplorer.desktop"

	statsInterval = 30 * time.Second
)

// Application owns the window and every long-lived component behind it
type Application struct {
	fyneApp fyne.App
	window  fyne.Window
	logger  logger.Logger

	view       *views.MainView
	playerPage *pages.PlayerPage
	recorder   *metrics.Recorder
	metrics    *metrics.Server
	buffers    *imaging.BufferManager
	client     *sportsdb.Client

	shutdown *shutdown.Manager
}

func newFyneApp() fyne.App {
	app.SetMetadata(fyne.AppMetadata{
		ID:      AppID,
		Name:    AppName,
		Version: version,
	})
	return app.NewWithID(AppID)
}

// NewApplication wires configuration, clients and pages into a ready-to-show window.
func NewApplication(ctx context.Context, fyneApp fyne.App, cfg config.Config, log logger.Logger) *Application {
	a := &Application{
		fyneApp:  fyneApp,
		logger:   log,
		recorder: metrics.NewRecorder(),
		shutdown: shutdown.NewManager(ctx, log),
	}

	a.client = sportsdb.NewClient(sportsdb.Config{
		BaseURL:    cfg.API.BaseURL,
		APIKey:     cfg.API.APIKey,
		HTTPClient: &http.Client{Timeout: cfg.API.Timeout},
		Observer:   a.recorder,
	})

	a.buffers = imaging.NewBufferManager(cfg.Images.PoolSize, log)
	a.shutdown.Register("photo buffers", a.buffers)
	fetcher := imaging.NewFetcher(imaging.FetcherConfig{
		HTTPClient: &http.Client{Timeout: cfg.Images.Timeout},
		Width:      cfg.Images.Width,
		Height:     cfg.Images.Height,
		MaxBytes:   cfg.Images.MaxBytes,
		Observer:   a.recorder,
	}, a.buffers, log)

	a.window = fyneApp.NewWindow(cfg.Window.Title)
	a.window.Resize(fyne.NewSize(cfg.Window.Width, cfg.Window.Height))
	a.window.CenterOnScreen()

	a.view = views.NewMainView(a.window, views.Options{
		Version:  version,
		Requests: a.recorder,
		Buffers:  a.buffers,
		OnQuit:   a.quit,
	})

	deps := pages.Deps{
		Window:  a.window,
		Context: a.shutdown.Context(),
		Timeout: cfg.API.Timeout,
		Log:     log,
		OnDone:  a.view.QueryDone,
	}
	a.playerPage = pages.NewPlayerPage(controllers.NewPlayerController(a.client, fetcher, log), deps)

	a.view.AddPage(pages.NewWelcomePage())
	a.view.AddPage(pages.NewSportsPage(controllers.NewSportsController(a.client, log), deps))
	a.view.AddPage(a.playerPage)
	a.view.AddPage(pages.NewTeamPage(controllers.NewTeamController(a.client, log), deps))
	a.view.AddPage(pages.NewHeadToHeadPage(controllers.NewHeadToHeadController(a.client, log), deps))

	a.setupWindowEvents()
	a.startMetrics(cfg.Metrics.Addr)

	log.Info("Main", "application initialized", map[string]interface{}{
		"version":      version,
		"base_url":     cfg.API.BaseURL,
		"window_size":  fmt.Sprintf("%.0fx%.0f", cfg.Window.Width, cfg.Window.Height),
		"metrics_addr": cfg.Metrics.Addr,
		"go_version":   runtime.Version(),
	})

	return a
}

// startMetrics serves /metrics when addr is set. A listener that cannot bind costs only the
// endpoint: the error is reported in the window and the application keeps running.
func (a *Application) startMetrics(addr string) {
	if addr == "" {
		return
	}
	srv, err := metrics.Listen(addr, a.recorder, a.logger)
	if err != nil {
		a.logger.Error("Main", err, map[string]interface{}{"metrics_addr": addr})
		a.view.ShowError(fmt.Errorf("metrics endpoint %s disabled: %w", addr, err))
		return
	}
	a.metrics = srv
	a.shutdown.Register("metrics server", srv)
}

// Run shows the window and blocks until the application exits.
func (a *Application) Run() error {
	a.shutdown.Listen(func() {
		fyne.Do(func() {
			a.playerPage.Release()
			a.fyneApp.Quit()
		})
	})
	go a.startStatsMonitoring()

	a.window.ShowAndRun()

	a.shutdown.Shutdown()
	a.logger.Info("Main", "application terminated", nil)
	return nil
}

func (a *Application) setupWindowEvents() {
	a.window.SetCloseIntercept(func() {
		a.logger.Info("Main", "window close requested", nil)
		a.quit()
	})

	// Photo cards leave the screen with the window; only then go their buffers.
	a.window.SetOnClosed(func() {
		a.playerPage.Release()
		a.shutdown.Shutdown()
	})
}

// quit must run on the UI goroutine.
func (a *Application) quit() {
	a.logger.Debug("Main", "closing window", map[string]interface{}{
		"pages": len(a.view.Pages()),
	})
	a.window.Close()
}

func (a *Application) startStatsMonitoring() {
	ticker := time.NewTicker(statsInterval)
	defer ticker.Stop()

	ctx := a.shutdown.Context()
	for {
		select {
		case <-ticker.C:
			a.logStats()
		case <-ctx.Done():
			return
		}
	}
}

func (a *Application) logStats() {
	totals := a.recorder.Totals()
	buffers := a.buffers.GetStats()

	a.logger.Debug("Main", "usage statistics", map[string]interface{}{
		"api_requests":    totals.Requests,
		"api_failures":    totals.Failed,
		"last_latency_ms": totals.LastLatency.Milliseconds(),
		"photo_buffers":   buffers.ActiveBuffers,
		"goroutine_count": runtime.NumGoroutine(),
	})

	a.view.RefreshStats()
}
