package pages

import (
	"context"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"sports-explorer/internal/views/components"
)

// TeamPage shows the details of the first team matching a name.
type TeamPage struct {
	controller TeamSearcher
	name       *widget.Entry
	button     *widget.Button
	result     *components.ResultText
	query      *query
	content    fyne.CanvasObject
	window     fyne.Window
}

func NewTeamPage(controller TeamSearcher, deps Deps) *TeamPage {
	deps = deps.withDefaults()
	p := &TeamPage{
		controller: controller,
		name:       entry("Team name"),
		result:     components.NewResultText(),
		window:     deps.Window,
	}
	p.button = widget.NewButton("Search Team", p.search)
	p.name.OnSubmitted = func(string) { p.search() }
	p.query = newQuery(deps, p.Title(), p.button)

	form := container.NewVBox(widget.NewLabel("Enter Team Name:"), p.name, p.button)
	p.content = container.NewBorder(form, nil, nil, nil, p.result.GetContainer())
	return p
}

func (p *TeamPage) search() {
	name := p.name.Text
	out := newTextOutput(p.result, p.window)
	p.query.run(func(ctx context.Context) error {
		return p.controller.Search(ctx, name, out)
	})
}

func (p *TeamPage) Title() string { return "Team Info" }

func (p *TeamPage) Content() fyne.CanvasObject { return p.content }
