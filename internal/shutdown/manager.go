package shutdown

import (
	"context"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"sports-explorer/internal/logger"
)

const (
	component          = "ShutdownManager"
	defaultStepTimeout = 10 * time.Second
)

type Shutdownable interface {
	Shutdown()
}

// Func adapts a plain function to Shutdownable.
type Func func()

func (f Func) Shutdown() { f() }

type entry struct {
	name      string
	component Shutdownable
}

// Manager stops registered components in reverse registration order, exactly once.
type Manager struct {
	components  []entry
	logger      logger.Logger
	mu          sync.Mutex
	done        chan struct{}
	ctx         context.Context
	cancel      context.CancelFunc
	stepTimeout time.Duration
	stopSignals func()
}

func NewManager(parent context.Context, log logger.Logger) *Manager {
	if parent == nil {
		parent = context.Background()
	}
	if log == nil {
		log = logger.NewNop()
	}
	ctx, cancel := context.WithCancel(parent)

	return &Manager{
		logger:      log,
		done:        make(chan struct{}),
		ctx:         ctx,
		cancel:      cancel,
		stepTimeout: defaultStepTimeout,
	}
}

// SetStepTimeout bounds how long a single component may take to stop.
func (m *Manager) SetStepTimeout(d time.Duration) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if d > 0 {
		m.stepTimeout = d
	}
}

func (m *Manager) Register(name string, component Shutdownable) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.components = append(m.components, entry{name: name, component: component})
}

// Listen shuts down on SIGINT or SIGTERM and then calls onSignal, if set.
func (m *Manager) Listen(onSignal func()) {
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	m.mu.Lock()
	m.stopSignals = func() { signal.Stop(sigChan) }
	m.mu.Unlock()

	go func() {
		select {
		case sig := <-sigChan:
			m.logger.Info(component, "shutdown signal received", map[string]interface{}{
				"signal": sig.String(),
			})
			m.Shutdown()
			if onSignal != nil {
				onSignal()
			}
		case <-m.done:
		}
	}()
}

func (m *Manager) Shutdown() {
	m.mu.Lock()
	select {
	case <-m.done:
		m.mu.Unlock()
		return
	default:
		close(m.done)
	}
	components := append([]entry(nil), m.components...)
	timeout := m.stepTimeout
	stopSignals := m.stopSignals
	m.mu.Unlock()

	if stopSignals != nil {
		stopSignals()
	}

	m.logger.Info(component, "shutdown sequence initiated", map[string]interface{}{
		"components": len(components),
	})

	m.cancel()

	for i := len(components) - 1; i >= 0; i-- {
		c := components[i]

		finished := make(chan struct{})
		go func() {
			defer close(finished)
			c.component.Shutdown()
		}()

		select {
		case <-finished:
			m.logger.Debug(component, "component stopped", map[string]interface{}{
				"step": c.name,
			})
		case <-time.After(timeout):
			m.logger.Warning(component, "component shutdown timeout", map[string]interface{}{
				"step":    c.name,
				"timeout": timeout.String(),
			})
		}
	}

	m.logger.Info(component, "shutdown sequence completed", nil)
}

// Context is cancelled as soon as shutdown begins.
func (m *Manager) Context() context.Context {
	return m.ctx
}

func (m *Manager) Done() <-chan struct{} {
	return m.done
}
