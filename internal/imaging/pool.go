package imaging

import (
	"image"
	"sync"

	"sports-explorer/internal/logger"
)

// Pool is a bounded free list of equally sized RGBA buffers.
type Pool struct {
	buffers []*image.RGBA
	maxSize int
	mu      sync.Mutex
}

func NewPool(maxSize int) *Pool {
	return &Pool{
		buffers: make([]*image.RGBA, 0, maxSize),
		maxSize: maxSize,
	}
}

func (p *Pool) Get() *image.RGBA {
	p.mu.Lock()
	defer p.mu.Unlock()

	if len(p.buffers) == 0 {
		return nil
	}

	buf := p.buffers[len(p.buffers)-1]
	p.buffers = p.buffers[:len(p.buffers)-1]
	return buf
}

func (p *Pool) Put(buf *image.RGBA) bool {
	if buf == nil || buf.Rect.Empty() {
		return false
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	if len(p.buffers) >= p.maxSize {
		return false
	}

	p.buffers = append(p.buffers, buf)
	return true
}

func (p *Pool) Size() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return len(p.buffers)
}

func (p *Pool) Cleanup() int {
	p.mu.Lock()
	defer p.mu.Unlock()

	count := len(p.buffers)
	p.buffers = p.buffers[:0]
	return count
}

// PoolKey identifies buffers of one footprint.
type PoolKey struct {
	Width  int
	Height int
}

// Stats summarises buffer traffic.
type Stats struct {
	TotalAllocated int64
	TotalReleased  int64
	ActiveBuffers  int64
	PoolHits       int64
	PoolMisses     int64
}

// BufferManager hands out thumbnail pixel buffers and recycles them once their owner releases
// them. A buffer must not be released while any widget still draws from it.
type BufferManager struct {
	pools      map[PoolKey]*Pool
	maxPerPool int
	mu         sync.Mutex
	stats      Stats
	log        logger.Logger
}

func NewBufferManager(maxPerPool int, log logger.Logger) *BufferManager {
	if maxPerPool <= 0 {
		maxPerPool = 8
	}
	if log == nil {
		log = logger.NewNop()
	}
	return &BufferManager{
		pools:      make(map[PoolKey]*Pool),
		maxPerPool: maxPerPool,
		log:        log,
	}
}

// Get returns a width×height buffer, reusing a released one when available.
func (m *BufferManager) Get(width, height int) *image.RGBA {
	m.mu.Lock()
	defer m.mu.Unlock()

	key := PoolKey{Width: width, Height: height}
	if pool, exists := m.pools[key]; exists {
		if buf := pool.Get(); buf != nil {
			m.stats.PoolHits++
			m.stats.ActiveBuffers++
			return buf
		}
	}

	m.stats.PoolMisses++
	m.stats.TotalAllocated++
	m.stats.ActiveBuffers++
	return image.NewRGBA(image.Rect(0, 0, width, height))
}

// Release returns buf to its pool, or drops it when the pool is full.
func (m *BufferManager) Release(buf *image.RGBA) {
	if buf == nil {
		return
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	m.stats.TotalReleased++
	m.stats.ActiveBuffers--

	key := PoolKey{Width: buf.Rect.Dx(), Height: buf.Rect.Dy()}
	pool, exists := m.pools[key]
	if !exists {
		pool = NewPool(m.maxPerPool)
		m.pools[key] = pool
	}
	if !pool.Put(buf) {
		m.log.Debug("BufferManager", "pool full, dropping buffer", map[string]interface{}{
			"width":  key.Width,
			"height": key.Height,
		})
	}
}

func (m *BufferManager) GetStats() Stats {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.stats
}

// Cleanup empties every pool and returns the number of buffers dropped.
func (m *BufferManager) Cleanup() int {
	m.mu.Lock()
	defer m.mu.Unlock()

	count := 0
	for key, pool := range m.pools {
		count += pool.Cleanup()
		delete(m.pools, key)
	}
	return count
}

func (m *BufferManager) Shutdown() {
	dropped := m.Cleanup()
	stats := m.GetStats()
	m.log.Info("BufferManager", "buffers released", map[string]interface{}{
		"dropped":   dropped,
		"active":    stats.ActiveBuffers,
		"allocated": stats.TotalAllocated,
	})
}
