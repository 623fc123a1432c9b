package imaging

import (
	"image"
	"sync"
)

// Thumbnail is a decoded, resized player photo. It owns its pixel buffer: the buffer stays
// valid until Release, after which Image returns nil and the buffer may be handed to another
// thumbnail. Whoever displays the image must release it only after the display is gone.
type Thumbnail struct {
	mu      sync.Mutex
	source  string
	img     *image.RGBA
	release func(*image.RGBA)
}

// NewThumbnail wraps an unpooled image.
func NewThumbnail(source string, img *image.RGBA) *Thumbnail {
	return &Thumbnail{source: source, img: img}
}

func newPooledThumbnail(source string, img *image.RGBA, buffers *BufferManager) *Thumbnail {
	return &Thumbnail{source: source, img: img, release: buffers.Release}
}

// Image returns the pixels, or nil once released.
func (t *Thumbnail) Image() image.Image {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.img == nil {
		return nil
	}
	return t.img
}

// Source is the URL the thumbnail was fetched from.
func (t *Thumbnail) Source() string {
	return t.source
}

func (t *Thumbnail) Bounds() image.Rectangle {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.img == nil {
		return image.Rectangle{}
	}
	return t.img.Rect
}

// Release hands the buffer back. It is safe to call more than once.
func (t *Thumbnail) Release() {
	t.mu.Lock()
	img := t.img
	t.img = nil
	t.mu.Unlock()

	if img != nil && t.release != nil {
		t.release(img)
	}
}

func (t *Thumbnail) Released() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.img == nil
}
