package pages

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"
)

const (
	WelcomeHeading = "WELCOME TO FUTBALL"
	WelcomeBody    = "Choose any navigation bar and do your research."
)

// WelcomePage is the static landing tab.
type WelcomePage struct {
	heading *widget.Label
	body    *widget.Label
	content fyne.CanvasObject
}

func NewWelcomePage() *WelcomePage {
	p := &WelcomePage{
		heading: widget.NewLabelWithStyle(WelcomeHeading, fyne.TextAlignCenter, fyne.TextStyle{Bold: true}),
		body:    widget.NewLabelWithStyle(WelcomeBody, fyne.TextAlignCenter, fyne.TextStyle{}),
	}
	p.content = container.NewCenter(container.NewVBox(p.heading, p.body))
	return p
}

func (p *WelcomePage) Title() string { return "Welcome" }

func (p *WelcomePage) Content() fyne.CanvasObject { return p.content }
