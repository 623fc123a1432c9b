package pages

import (
	"context"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"sports-explorer/internal/views/components"
)

// PlayerPage searches players by name and shows one card per match.
type PlayerPage struct {
	controller PlayerSearcher
	name       *widget.Entry
	button     *widget.Button
	list       *components.PlayerList
	query      *query
	content    fyne.CanvasObject
	window     fyne.Window
}

func NewPlayerPage(controller PlayerSearcher, deps Deps) *PlayerPage {
	deps = deps.withDefaults()
	p := &PlayerPage{
		controller: controller,
		name:       entry("Player name"),
		list:       components.NewPlayerList(),
		window:     deps.Window,
	}
	p.button = widget.NewButton("Search Player", p.search)
	p.name.OnSubmitted = func(string) { p.search() }
	p.query = newQuery(deps, p.Title(), p.button)

	form := container.NewVBox(widget.NewLabel("Enter Player Name:"), p.name, p.button)
	p.content = container.NewBorder(form, nil, nil, nil, p.list.GetContainer())
	return p
}

func (p *PlayerPage) search() {
	name := p.name.Text
	out := playerOutput{list: p.list, window: p.window}
	p.query.run(func(ctx context.Context) error {
		return p.controller.Search(ctx, name, out)
	})
}

func (p *PlayerPage) Title() string { return "Player Search" }

func (p *PlayerPage) Content() fyne.CanvasObject { return p.content }

// Release drops every displayed card, returns its photo buffer and makes the page discard
// photos from queries that finish later.
func (p *PlayerPage) Release() {
	p.list.Close()
}
