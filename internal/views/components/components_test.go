package components

import (
	"image"
	"testing"
	"time"

	"fyne.io/fyne/v2/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sports-explorer/internal/imaging"
	"sports-explorer/internal/metrics"
)

func TestResultTextAppendAndClear(t *testing.T) {
	test.NewApp()
	rt := NewResultText()

	rt.Append("one\n")
	rt.Append("")
	rt.Append("two\n")
	assert.Equal(t, "one\ntwo\n", rt.Text())
	assert.Equal(t, 2, rt.SegmentCount())

	first := rt.rich.Segments[0]
	rt.Append("three\n")
	assert.Same(t, first, rt.rich.Segments[0])

	rt.Clear()
	assert.Empty(t, rt.Text())
	assert.Zero(t, rt.SegmentCount())
}

func TestPlayerListReleasesAfterRemoval(t *testing.T) {
	test.NewApp()
	buffers := imaging.NewBufferManager(2, nil)
	list := NewPlayerList()

	thumb := imaging.NewThumbnail("http://example.test/a.png", buffers.Get(10, 12))
	list.AddPlayer("Name: A - Team: B - Position: C", thumb)
	list.AddPlayer("Name: D - Team: E - Position: F", nil)
	list.AddMessage("note")

	require.Len(t, list.Cards(), 2)
	assert.Equal(t, 3, list.ObjectCount())
	assert.Equal(t, 1, list.ImageCount())
	assert.Equal(t, float32(10), list.Cards()[0].image.MinSize().Width)
	assert.Equal(t, float32(12), list.Cards()[0].image.MinSize().Height)

	list.Clear()
	assert.Zero(t, list.ObjectCount())
	assert.Empty(t, list.Cards())
	assert.Empty(t, list.Messages())
	assert.True(t, thumb.Released())
	assert.Nil(t, thumb.Image())
}

func TestClosedPlayerListReleasesLateThumbnails(t *testing.T) {
	test.NewApp()
	buffers := imaging.NewBufferManager(2, nil)
	list := NewPlayerList()

	shown := imaging.NewThumbnail("http://example.test/a.png", buffers.Get(4, 4))
	list.AddPlayer("Name: A - Team: B - Position: C", shown)
	list.Close()
	assert.True(t, shown.Released())
	assert.True(t, list.Closed())

	late := imaging.NewThumbnail("http://example.test/b.png", buffers.Get(4, 4))
	list.AddPlayer("Name: D - Team: E - Position: F", late)
	list.AddMessage("No player found!")

	assert.True(t, late.Released())
	assert.Empty(t, list.Cards())
	assert.Empty(t, list.Messages())
	assert.Zero(t, list.ObjectCount())
}

func TestPlayerCardWithoutImage(t *testing.T) {
	test.NewApp()
	released := imaging.NewThumbnail("x", image.NewRGBA(image.Rect(0, 0, 2, 2)))
	released.Release()

	card := newPlayerCard("text", released)
	assert.False(t, card.HasImage())
	assert.Equal(t, "text", card.Text())
}

func TestStatusBar(t *testing.T) {
	test.NewApp()
	sb := NewStatusBar()
	assert.Equal(t, "Ready", sb.GetStatus())

	sb.SetStatus("Player Search: done")
	sb.SetRequestStats(metrics.Totals{Requests: 4, Failed: 1, LastLatency: 120 * time.Millisecond})
	sb.SetBufferStats(imaging.Stats{ActiveBuffers: 2, TotalAllocated: 3})

	assert.Equal(t, "Player Search: done", sb.GetStatus())
	assert.Equal(t, "Requests: 4 (1 failed), last 120 ms", sb.GetRequestStats())
	assert.Equal(t, "Images: 2 shown, 3 allocated", sb.buffersLabel.Text)
}
