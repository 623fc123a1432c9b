package pages

import (
	"context"
	"strings"
	"sync"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"

	"sports-explorer/internal/controllers"
	"sports-explorer/internal/imaging"
	"sports-explorer/internal/logger"
	"sports-explorer/internal/views/components"
)

const (
	component      = "Pages"
	defaultTimeout = 20 * time.Second
)

// Deps are the collaborators every query page shares.
type Deps struct {
	Window  fyne.Window
	Context context.Context
	Timeout time.Duration
	Log     logger.Logger
	// OnDone runs on the UI goroutine after each query.
	OnDone func(page string, err error)
	// Dispatch starts a query off the UI goroutine. Defaults to a new goroutine.
	Dispatch func(func())
}

func (d Deps) withDefaults() Deps {
	if d.Context == nil {
		d.Context = context.Background()
	}
	if d.Timeout <= 0 {
		d.Timeout = defaultTimeout
	}
	if d.Log == nil {
		d.Log = logger.NewNop()
	}
	if d.Dispatch == nil {
		d.Dispatch = func(f func()) { go f() }
	}
	return d
}

// Page is one tab of the main window.
type Page interface {
	Title() string
	Content() fyne.CanvasObject
}

type SportsFetcher interface {
	Fetch(ctx context.Context, out controllers.TextOutput) error
}

type PlayerSearcher interface {
	Search(ctx context.Context, name string, out controllers.PlayerOutput) error
}

type TeamSearcher interface {
	Search(ctx context.Context, name string, out controllers.TextOutput) error
}

type TeamComparer interface {
	Compare(ctx context.Context, team1, team2 string, out controllers.TextOutput) error
}

// query runs one page action at a time. The trigger button stays disabled until the
// action has finished, so a page never has two queries in flight.
type query struct {
	deps   Deps
	page   string
	button *widget.Button
}

func newQuery(deps Deps, page string, button *widget.Button) *query {
	return &query{deps: deps, page: page, button: button}
}

// run must be called on the UI goroutine; inputs are read before task leaves it.
func (q *query) run(task func(ctx context.Context) error) {
	if q.button.Disabled() {
		return
	}
	q.button.Disable()

	q.deps.Dispatch(func() {
		ctx, cancel := context.WithTimeout(q.deps.Context, q.deps.Timeout)
		defer cancel()

		err := task(ctx)
		if err != nil {
			q.deps.Log.Debug(component, "query finished with error", map[string]interface{}{
				"page":  q.page,
				"error": err.Error(),
			})
		}

		fyne.Do(func() {
			q.button.Enable()
			if q.deps.OnDone != nil {
				q.deps.OnDone(q.page, err)
			}
		})
	})
}

// textOutput marshals controller output onto the UI goroutine. Writes made before the UI
// goroutine gets to them are merged into a single update.
type textOutput struct {
	text   *components.ResultText
	window fyne.Window
	do     func(func())

	mu        sync.Mutex
	pending   strings.Builder
	cleared   bool
	scheduled bool
}

func newTextOutput(text *components.ResultText, window fyne.Window) *textOutput {
	return &textOutput{text: text, window: window, do: fyne.Do}
}

func (o *textOutput) Clear() {
	o.mu.Lock()
	o.pending.Reset()
	o.cleared = true
	schedule := o.claimFlushLocked()
	o.mu.Unlock()

	if schedule {
		o.do(o.flush)
	}
}

func (o *textOutput) Append(text string) {
	o.mu.Lock()
	o.pending.WriteString(text)
	schedule := o.claimFlushLocked()
	o.mu.Unlock()

	if schedule {
		o.do(o.flush)
	}
}

// claimFlushLocked reports whether the caller must schedule a flush.
func (o *textOutput) claimFlushLocked() bool {
	if o.scheduled {
		return false
	}
	o.scheduled = true
	return true
}

// flush runs on the UI goroutine.
func (o *textOutput) flush() {
	o.mu.Lock()
	cleared, text := o.cleared, o.pending.String()
	o.cleared = false
	o.pending.Reset()
	o.scheduled = false
	o.mu.Unlock()

	if cleared {
		o.text.Clear()
	}
	o.text.Append(text)
}

func (o *textOutput) ShowError(err error) {
	showError(err, o.window)
}

type playerOutput struct {
	list   *components.PlayerList
	window fyne.Window
}

func (o playerOutput) Clear() {
	fyne.Do(o.list.Clear)
}

func (o playerOutput) Append(text string) {
	text = strings.TrimRight(text, "\n")
	fyne.Do(func() { o.list.AddMessage(text) })
}

func (o playerOutput) AppendPlayer(text string, thumb *imaging.Thumbnail) {
	fyne.Do(func() { o.list.AddPlayer(text, thumb) })
}

func (o playerOutput) ShowError(err error) {
	showError(err, o.window)
}

func showError(err error, window fyne.Window) {
	if window == nil {
		return
	}
	fyne.Do(func() { dialog.ShowError(err, window) })
}

func entry(placeholder string) *widget.Entry {
	e := widget.NewEntry()
	e.SetPlaceHolder(placeholder)
	return e
}
