package components

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"
)

// ResultText is an append-only, scrollable text area. Each Append adds one segment, so earlier
// output is never rebuilt. Methods must run on the UI goroutine.
type ResultText struct {
	container *container.Scroll
	rich      *widget.RichText
}

// NewResultText creates an empty result area
func NewResultText() *ResultText {
	rt := &ResultText{}
	rt.rich = widget.NewRichText()
	rt.rich.Wrapping = fyne.TextWrapWord
	rt.container = container.NewVScroll(rt.rich)
	rt.container.SetMinSize(fyne.NewSize(700, 420))
	return rt
}

// Clear empties the area.
func (rt *ResultText) Clear() {
	rt.rich.Segments = nil
	rt.rich.Refresh()
	rt.container.ScrollToTop()
}

// Append adds text after whatever is already shown.
func (rt *ResultText) Append(text string) {
	if text == "" {
		return
	}
	rt.rich.Segments = append(rt.rich.Segments, &widget.TextSegment{
		Text:  text,
		Style: widget.RichTextStyleInline,
	})
	rt.rich.Refresh()
}

// Text returns everything currently shown
func (rt *ResultText) Text() string {
	return rt.rich.String()
}

// SegmentCount is the number of appended pieces currently shown.
func (rt *ResultText) SegmentCount() int {
	return len(rt.rich.Segments)
}

func (rt *ResultText) GetContainer() fyne.CanvasObject {
	return rt.container
}
