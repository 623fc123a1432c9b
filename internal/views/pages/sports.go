package pages

import (
	"context"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"sports-explorer/internal/views/components"
)

// SportsPage lists every sport the service knows about.
type SportsPage struct {
	controller SportsFetcher
	button     *widget.Button
	result     *components.ResultText
	query      *query
	content    fyne.CanvasObject
	window     fyne.Window
}

func NewSportsPage(controller SportsFetcher, deps Deps) *SportsPage {
	deps = deps.withDefaults()
	p := &SportsPage{
		controller: controller,
		result:     components.NewResultText(),
		window:     deps.Window,
	}
	p.button = widget.NewButton("Fetch Information", p.fetch)
	p.query = newQuery(deps, p.Title(), p.button)
	p.content = container.NewBorder(p.button, nil, nil, nil, p.result.GetContainer())
	return p
}

func (p *SportsPage) fetch() {
	out := newTextOutput(p.result, p.window)
	p.query.run(func(ctx context.Context) error {
		return p.controller.Fetch(ctx, out)
	})
}

func (p *SportsPage) Title() string { return "About the Sports" }

func (p *SportsPage) Content() fyne.CanvasObject { return p.content }
