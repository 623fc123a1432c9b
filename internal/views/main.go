package views

import (
	"errors"
	"fmt"
	"strings"

	"sports-explorer/internal/controllers"
	"sports-explorer/internal/imaging"
	"sports-explorer/internal/metrics"
	"sports-explorer/internal/views/components"
	"sports-explorer/internal/views/pages"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
)

// RequestStats reports API traffic totals.
type RequestStats interface {
	Totals() metrics.Totals
}

// BufferStats reports photo buffer usage.
type BufferStats interface {
	GetStats() imaging.Stats
}

// Options configures the main view
type Options struct {
	Version  string
	Requests RequestStats
	Buffers  BufferStats
	// OnQuit runs when File → Quit is chosen. Defaults to closing the window.
	OnQuit func()
}

// MainView is the top-level window content: one tab per page plus a status bar
type MainView struct {
	window    fyne.Window
	tabs      *container.AppTabs
	statusBar *components.StatusBar
	pages     []pages.Page
	opts      Options
}

// NewMainView creates the window content and menus. Pages are added with AddPage.
func NewMainView(window fyne.Window, opts Options) *MainView {
	view := &MainView{
		window: window,
		opts:   opts,
	}
	if view.opts.OnQuit == nil {
		view.opts.OnQuit = window.Close
	}

	view.initializeComponents()
	view.buildLayout()
	view.setupMenus()

	return view
}

func (mv *MainView) initializeComponents() {
	mv.tabs = container.NewAppTabs()
	mv.tabs.SetTabLocation(container.TabLocationTop)
	mv.statusBar = components.NewStatusBar()
}

func (mv *MainView) buildLayout() {
	mv.window.SetContent(container.NewBorder(
		nil,
		mv.statusBar.GetContainer(),
		nil,
		nil,
		mv.tabs,
	))
}

func (mv *MainView) setupMenus() {
	quit := fyne.NewMenuItem("Quit", func() {
		mv.opts.OnQuit()
	})
	quit.IsQuit = true
	fileMenu := fyne.NewMenu("File", quit)

	helpMenu := fyne.NewMenu("Help",
		fyne.NewMenuItem("About", func() {
			dialog.ShowInformation("About", mv.AboutText(), mv.window)
		}),
	)

	debugMenu := fyne.NewMenu("Debug",
		fyne.NewMenuItem("Request Statistics", func() {
			dialog.ShowInformation("Request Statistics", mv.StatsReport(), mv.window)
		}),
	)

	mv.window.SetMainMenu(fyne.NewMainMenu(fileMenu, helpMenu, debugMenu))
}

// AddPage registers a page as a new tab, in call order.
func (mv *MainView) AddPage(page pages.Page) {
	mv.pages = append(mv.pages, page)
	mv.tabs.Append(container.NewTabItem(page.Title(), page.Content()))
}

// Pages returns the registered pages in tab order
func (mv *MainView) Pages() []pages.Page {
	return mv.pages
}

// TabTitles returns the tab labels in display order
func (mv *MainView) TabTitles() []string {
	titles := make([]string, 0, len(mv.tabs.Items))
	for _, item := range mv.tabs.Items {
		titles = append(titles, item.Text)
	}
	return titles
}

// QueryDone is called on the UI goroutine when a page finishes a query.
func (mv *MainView) QueryDone(page string, err error) {
	switch {
	case err == nil:
		mv.statusBar.SetStatus(page + ": done")
	case errors.Is(err, controllers.ErrEmptyInput):
		mv.statusBar.SetStatus(page + ": waiting for input")
	default:
		mv.statusBar.SetStatus(page + ": failed")
	}
	mv.refreshStats()
}

// RefreshStats updates the status bar counters from any goroutine.
func (mv *MainView) RefreshStats() {
	fyne.Do(mv.refreshStats)
}

func (mv *MainView) refreshStats() {
	if mv.opts.Requests != nil {
		mv.statusBar.SetRequestStats(mv.opts.Requests.Totals())
	}
	if mv.opts.Buffers != nil {
		mv.statusBar.SetBufferStats(mv.opts.Buffers.GetStats())
	}
}

// AboutText is the body of the Help → About dialog
func (mv *MainView) AboutText() string {
	version := mv.opts.Version
	if version == "" {
		version = "dev"
	}
	return fmt.Sprintf("Sports Explorer %s\nSports data provided by TheSportsDB.", version)
}

// StatsReport is the body of the Debug → Request Statistics dialog
func (mv *MainView) StatsReport() string {
	var b strings.Builder
	if mv.opts.Requests != nil {
		totals := mv.opts.Requests.Totals()
		fmt.Fprintf(&b, "API requests: %d\n", totals.Requests)
		fmt.Fprintf(&b, "Failed: %d\n", totals.Failed)
		fmt.Fprintf(&b, "Last latency: %d ms\n", totals.LastLatency.Milliseconds())
	}
	if mv.opts.Buffers != nil {
		stats := mv.opts.Buffers.GetStats()
		fmt.Fprintf(&b, "Photo buffers in use: %d\n", stats.ActiveBuffers)
		fmt.Fprintf(&b, "Allocated: %d, released: %d\n", stats.TotalAllocated, stats.TotalReleased)
		fmt.Fprintf(&b, "Pool hits: %d, misses: %d\n", stats.PoolHits, stats.PoolMisses)
	}
	if b.Len() == 0 {
		return "No statistics available"
	}
	return strings.TrimRight(b.String(), "\n")
}

// ShowError displays an error dialog and notes it in the status bar. Call it on the UI goroutine.
func (mv *MainView) ShowError(err error) {
	mv.statusBar.SetStatus("Error: " + err.Error())
	dialog.ShowError(err, mv.window)
}

// GetWindow returns the main window
func (mv *MainView) GetWindow() fyne.Window {
	return mv.window
}

// StatusBar exposes the status bar for inspection
func (mv *MainView) StatusBar() *components.StatusBar {
	return mv.statusBar
}
