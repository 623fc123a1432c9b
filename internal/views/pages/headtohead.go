package pages

import (
	"context"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"sports-explorer/internal/views/components"
)

// HeadToHeadPage compares two teams and lists the matches between them.
type HeadToHeadPage struct {
	controller TeamComparer
	team1      *widget.Entry
	team2      *widget.Entry
	button     *widget.Button
	result     *components.ResultText
	query      *query
	content    fyne.CanvasObject
	window     fyne.Window
}

func NewHeadToHeadPage(controller TeamComparer, deps Deps) *HeadToHeadPage {
	deps = deps.withDefaults()
	p := &HeadToHeadPage{
		controller: controller,
		team1:      entry("First team"),
		team2:      entry("Second team"),
		result:     components.NewResultText(),
		window:     deps.Window,
	}
	p.button = widget.NewButton("Compare Teams", p.compare)
	p.query = newQuery(deps, p.Title(), p.button)

	form := container.NewVBox(
		widget.NewForm(
			widget.NewFormItem("Team 1:", p.team1),
			widget.NewFormItem("Team 2:", p.team2),
		),
		p.button,
	)
	p.content = container.NewBorder(form, nil, nil, nil, p.result.GetContainer())
	return p
}

func (p *HeadToHeadPage) compare() {
	team1, team2 := p.team1.Text, p.team2.Text
	out := newTextOutput(p.result, p.window)
	p.query.run(func(ctx context.Context) error {
		return p.controller.Compare(ctx, team1, team2, out)
	})
}

func (p *HeadToHeadPage) Title() string { return "Head-to-Head Comparison" }

func (p *HeadToHeadPage) Content() fyne.CanvasObject { return p.content }
