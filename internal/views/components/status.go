package components

import (
	"fmt"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"sports-explorer/internal/imaging"
	"sports-explorer/internal/metrics"
)

// StatusBar displays the last query outcome and traffic counters
type StatusBar struct {
	container     *fyne.Container
	statusLabel   *widget.Label
	requestsLabel *widget.Label
	buffersLabel  *widget.Label
}

// NewStatusBar creates a new status bar component
func NewStatusBar() *StatusBar {
	sb := &StatusBar{}
	sb.createComponents()
	sb.buildLayout()
	return sb
}

func (sb *StatusBar) createComponents() {
	sb.statusLabel = widget.NewLabel("Ready")
	sb.requestsLabel = widget.NewLabel("Requests: 0")
	sb.buffersLabel = widget.NewLabel("Images: 0")
}

func (sb *StatusBar) buildLayout() {
	sb.container = container.NewHBox(
		sb.statusLabel,
		widget.NewSeparator(),
		sb.requestsLabel,
		widget.NewSeparator(),
		sb.buffersLabel,
	)
}

// SetStatus updates the main status message
func (sb *StatusBar) SetStatus(status string) {
	sb.statusLabel.SetText(status)
}

// GetStatus returns the current status message
func (sb *StatusBar) GetStatus() string {
	return sb.statusLabel.Text
}

// SetRequestStats shows API traffic totals
func (sb *StatusBar) SetRequestStats(totals metrics.Totals) {
	text := fmt.Sprintf("Requests: %d (%d failed)", totals.Requests, totals.Failed)
	if totals.LastLatency > 0 {
		text += fmt.Sprintf(", last %d ms", totals.LastLatency.Milliseconds())
	}
	sb.requestsLabel.SetText(text)
}

func (sb *StatusBar) GetRequestStats() string {
	return sb.requestsLabel.Text
}

// SetBufferStats shows how many photo buffers are in use
func (sb *StatusBar) SetBufferStats(stats imaging.Stats) {
	sb.buffersLabel.SetText(fmt.Sprintf("Images: %d shown, %d allocated", stats.ActiveBuffers, stats.TotalAllocated))
}

// GetContainer returns the status bar container
func (sb *StatusBar) GetContainer() *fyne.Container {
	return sb.container
}
