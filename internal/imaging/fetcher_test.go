package imaging

import (
	"bytes"
	"context"
	"image"
	"image/color"
	"image/png"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type countingObserver struct {
	mu       sync.Mutex
	outcomes []string
}

func (c *countingObserver) ObserveThumbnail(outcome string, _ time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.outcomes = append(c.outcomes, outcome)
}

func encodePNG(t *testing.T, w, h int, c color.Color) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.Set(x, y, c)
		}
	}
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	return buf.Bytes()
}

func serve(t *testing.T, status int, body []byte) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(status)
		_, _ = w.Write(body)
	}))
	t.Cleanup(srv.Close)
	return srv
}

func TestFetchDecodesAndResizes(t *testing.T) {
	red := color.RGBA{R: 255, A: 255}
	srv := serve(t, http.StatusOK, encodePNG(t, 40, 20, red))
	obs := &countingObserver{}

	buffers := NewBufferManager(2, nil)
	f := NewFetcher(FetcherConfig{Width: 16, Height: 16, Observer: obs}, buffers, nil)

	thumb, err := f.Fetch(context.Background(), srv.URL+"/player.png")
	require.NoError(t, err)
	defer thumb.Release()

	assert.Equal(t, image.Rect(0, 0, 16, 16), thumb.Bounds())
	r, g, b, a := thumb.Image().At(8, 8).RGBA()
	assert.Greater(t, r, uint32(0xf000))
	assert.Less(t, g, uint32(0x1000))
	assert.Less(t, b, uint32(0x1000))
	assert.Greater(t, a, uint32(0xf000))
	assert.Equal(t, []string{OutcomeOK}, obs.outcomes)
	assert.Equal(t, int64(1), buffers.GetStats().ActiveBuffers)
}

func TestFetchRejectsUndecodableBody(t *testing.T) {
	srv := serve(t, http.StatusOK, []byte("<html>not an image</html>"))
	buffers := NewBufferManager(2, nil)
	f := NewFetcher(FetcherConfig{}, buffers, nil)

	_, err := f.Fetch(context.Background(), srv.URL)
	require.Error(t, err)
	assert.Equal(t, int64(0), buffers.GetStats().ActiveBuffers, "buffer is returned on failure")
}

func TestFetchRejectsBadStatus(t *testing.T) {
	srv := serve(t, http.StatusNotFound, nil)
	f := NewFetcher(FetcherConfig{}, nil, nil)

	_, err := f.Fetch(context.Background(), srv.URL)
	assert.Error(t, err)
}

func TestFetchEnforcesSizeLimit(t *testing.T) {
	srv := serve(t, http.StatusOK, encodePNG(t, 64, 64, color.White))
	f := NewFetcher(FetcherConfig{MaxBytes: 16}, nil, nil)

	_, err := f.Fetch(context.Background(), srv.URL)
	assert.ErrorIs(t, err, ErrTooLarge)
}

func TestFetchEmptyURL(t *testing.T) {
	obs := &countingObserver{}
	f := NewFetcher(FetcherConfig{Observer: obs}, nil, nil)

	_, err := f.Fetch(context.Background(), "  ")
	assert.ErrorIs(t, err, ErrEmptyURL)
	assert.Equal(t, []string{OutcomeError}, obs.outcomes)
}

func TestReleasedBufferIsReusedByNextFetch(t *testing.T) {
	srv := serve(t, http.StatusOK, encodePNG(t, 4, 4, color.Black))
	buffers := NewBufferManager(2, nil)
	f := NewFetcher(FetcherConfig{Width: 4, Height: 4}, buffers, nil)

	first, err := f.Fetch(context.Background(), srv.URL)
	require.NoError(t, err)
	first.Release()

	second, err := f.Fetch(context.Background(), srv.URL)
	require.NoError(t, err)
	defer second.Release()

	assert.Equal(t, int64(1), buffers.GetStats().PoolHits)
	assert.Same(t, f.Buffers(), buffers)
}
