package imaging

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"sports-explorer/internal/logger"
	"sports-explorer/internal/metrics"
)

const (
	defaultWidth    = 250
	defaultHeight   = 250
	defaultMaxBytes = 8 << 20
	defaultTimeout  = 10 * time.Second
)

var (
	ErrEmptyURL = errors.New("imaging: empty image url")
	ErrTooLarge = errors.New("imaging: image exceeds size limit")
)

// Thumbnail outcomes reported to a ThumbnailObserver.
const (
	OutcomeOK    = metrics.OutcomeOK
	OutcomeError = metrics.OutcomeError
)

// ThumbnailObserver is notified after every fetch.
type ThumbnailObserver interface {
	ObserveThumbnail(outcome string, elapsed time.Duration)
}

type httpDoer interface {
	Do(req *http.Request) (*http.Response, error)
}

type FetcherConfig struct {
	HTTPClient *http.Client
	Width      int
	Height     int
	MaxBytes   int64
	Scaler     Scaler
	Observer   ThumbnailObserver
}

// Fetcher downloads player photos and turns them into pooled thumbnails.
type Fetcher struct {
	client   httpDoer
	buffers  *BufferManager
	scaler   Scaler
	width    int
	height   int
	maxBytes int64
	observer ThumbnailObserver
	log      logger.Logger
}

func NewFetcher(cfg FetcherConfig, buffers *BufferManager, log logger.Logger) *Fetcher {
	f := &Fetcher{
		client:   &http.Client{Timeout: defaultTimeout},
		buffers:  buffers,
		scaler:   cfg.Scaler,
		width:    cfg.Width,
		height:   cfg.Height,
		maxBytes: cfg.MaxBytes,
		observer: cfg.Observer,
		log:      log,
	}
	if cfg.HTTPClient != nil {
		f.client = cfg.HTTPClient
	}
	if f.buffers == nil {
		f.buffers = NewBufferManager(0, log)
	}
	if f.scaler == nil {
		f.scaler = NewScaler()
	}
	if f.width <= 0 {
		f.width = defaultWidth
	}
	if f.height <= 0 {
		f.height = defaultHeight
	}
	if f.maxBytes <= 0 {
		f.maxBytes = defaultMaxBytes
	}
	if f.log == nil {
		f.log = logger.NewNop()
	}
	return f
}

// Fetch downloads rawURL, decodes it and scales it into a buffer owned by the returned
// thumbnail. The caller must Release the thumbnail.
func (f *Fetcher) Fetch(ctx context.Context, rawURL string) (*Thumbnail, error) {
	start := time.Now()
	thumb, err := f.fetch(ctx, strings.TrimSpace(rawURL))
	if f.observer != nil {
		outcome := OutcomeOK
		if err != nil {
			outcome = OutcomeError
		}
		f.observer.ObserveThumbnail(outcome, time.Since(start))
	}
	return thumb, err
}

func (f *Fetcher) fetch(ctx context.Context, rawURL string) (*Thumbnail, error) {
	if rawURL == "" {
		return nil, ErrEmptyURL
	}

	data, err := f.download(ctx, rawURL)
	if err != nil {
		return nil, err
	}

	buf := f.buffers.Get(f.width, f.height)
	if err := f.scaler.Scale(buf, data); err != nil {
		f.buffers.Release(buf)
		return nil, fmt.Errorf("imaging: %s: %w", rawURL, err)
	}

	f.log.Debug("Imaging", "thumbnail ready", map[string]interface{}{
		"url":   rawURL,
		"bytes": len(data),
	})
	return newPooledThumbnail(rawURL, buf, f.buffers), nil
}

func (f *Fetcher) download(ctx context.Context, rawURL string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return nil, fmt.Errorf("imaging: build request: %w", err)
	}

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("imaging: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("imaging: %s: unexpected status %d", rawURL, resp.StatusCode)
	}

	data, err := io.ReadAll(io.LimitReader(resp.Body, f.maxBytes+1))
	if err != nil {
		return nil, fmt.Errorf("imaging: read body: %w", err)
	}
	if int64(len(data)) > f.maxBytes {
		return nil, ErrTooLarge
	}
	return data, nil
}

// Buffers exposes the buffer manager backing this fetcher.
func (f *Fetcher) Buffers() *BufferManager {
	return f.buffers
}
