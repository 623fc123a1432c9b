package components

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"sports-explorer/internal/imaging"
)

// PlayerCard pairs a player's text with the widget drawing their photo. The card owns the
// thumbnail; the thumbnail is released only once the card is off screen.
type PlayerCard struct {
	container *fyne.Container
	label     *widget.Label
	image     *canvas.Image
	thumb     *imaging.Thumbnail
}

func newPlayerCard(text string, thumb *imaging.Thumbnail) *PlayerCard {
	card := &PlayerCard{
		label: widget.NewLabel(text),
		thumb: thumb,
	}
	card.label.Wrapping = fyne.TextWrapWord

	if thumb != nil && thumb.Image() != nil {
		bounds := thumb.Bounds()
		card.image = canvas.NewImageFromImage(thumb.Image())
		card.image.FillMode = canvas.ImageFillContain
		card.image.ScaleMode = canvas.ImageScaleSmooth
		card.image.SetMinSize(fyne.NewSize(float32(bounds.Dx()), float32(bounds.Dy())))
		card.container = container.NewBorder(nil, nil, card.image, nil, card.label)
	} else {
		card.container = container.NewStack(card.label)
	}
	return card
}

func (c *PlayerCard) Text() string {
	return c.label.Text
}

func (c *PlayerCard) HasImage() bool {
	return c.image != nil
}

// Thumbnail returns the owned thumbnail, nil when the player has no photo.
func (c *PlayerCard) Thumbnail() *imaging.Thumbnail {
	return c.thumb
}

func (c *PlayerCard) release() {
	if c.image != nil {
		c.image.Image = nil
	}
	if c.thumb != nil {
		c.thumb.Release()
	}
}

// PlayerList lays out player cards and plain message lines. Methods must run on the UI goroutine.
type PlayerList struct {
	box      *fyne.Container
	scroll   *container.Scroll
	cards    []*PlayerCard
	messages []string
	closed   bool
}

func NewPlayerList() *PlayerList {
	pl := &PlayerList{box: container.NewVBox()}
	pl.scroll = container.NewVScroll(pl.box)
	pl.scroll.SetMinSize(fyne.NewSize(700, 420))
	return pl
}

// AddMessage appends a plain text line. It is a no-op once the list is closed.
func (pl *PlayerList) AddMessage(text string) {
	if pl.closed {
		return
	}
	pl.messages = append(pl.messages, text)
	pl.box.Add(widget.NewLabel(text))
}

// AddPlayer appends a card and takes ownership of thumb. Once the list is closed the thumbnail
// is released straight away and no card is shown.
func (pl *PlayerList) AddPlayer(text string, thumb *imaging.Thumbnail) {
	if pl.closed {
		if thumb != nil {
			thumb.Release()
		}
		return
	}
	card := newPlayerCard(text, thumb)
	pl.cards = append(pl.cards, card)
	pl.box.Add(card.container)
}

// Clear removes every card, then releases the thumbnails they displayed.
func (pl *PlayerList) Clear() {
	cards := pl.cards
	pl.cards = nil
	pl.messages = nil
	pl.box.RemoveAll()

	for _, card := range cards {
		card.release()
	}
	pl.scroll.ScrollToTop()
}

// Close clears the list for good; output from queries still in flight is dropped.
func (pl *PlayerList) Close() {
	pl.closed = true
	pl.Clear()
}

func (pl *PlayerList) Closed() bool {
	return pl.closed
}

func (pl *PlayerList) Cards() []*PlayerCard {
	return pl.cards
}

func (pl *PlayerList) Messages() []string {
	return pl.messages
}

// ImageCount is the number of photo widgets currently shown.
func (pl *PlayerList) ImageCount() int {
	n := 0
	for _, card := range pl.cards {
		if card.HasImage() {
			n++
		}
	}
	return n
}

// ObjectCount is the number of rows in the list.
func (pl *PlayerList) ObjectCount() int {
	return len(pl.box.Objects)
}

func (pl *PlayerList) GetContainer() fyne.CanvasObject {
	return pl.scroll
}
