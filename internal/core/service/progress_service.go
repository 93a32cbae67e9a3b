package service

import (
	"sync"
	"time"

	"github.com/campuseats/canteen/internal/core/domain"
)

const (
	defaultTickInterval = 1500 * time.Millisecond
	defaultReadyDelay   = time.Second
)

// ProgressTracker simulates kitchen progress for one placed order.
// A recurring tick advances progress in fixed steps until it reaches
// 100, the ticker stops itself, and one delayed follow-up event raises
// the ready flag. The tracker is single-shot: Stop it and build a new
// one for the next order.
type ProgressTracker struct {
	mu       sync.Mutex
	progress int
	ready    bool

	tick       time.Duration
	readyDelay time.Duration

	stopOnce sync.Once
	stopCh   chan struct{}
	doneCh   chan struct{}
}

func NewProgressTracker(tick, readyDelay time.Duration) *ProgressTracker {
	if tick <= 0 {
		tick = defaultTickInterval
	}
	if readyDelay <= 0 {
		readyDelay = defaultReadyDelay
	}
	return &ProgressTracker{
		tick:       tick,
		readyDelay: readyDelay,
		stopCh:     make(chan struct{}),
		doneCh:     make(chan struct{}),
	}
}

// Start launches the ticker goroutine. Call at most once.
func (p *ProgressTracker) Start() {
	go p.run()
}

func (p *ProgressTracker) run() {
	ticker := time.NewTicker(p.tick)
	defer ticker.Stop()

	for {
		select {
		case <-p.stopCh:
			return
		case <-ticker.C:
			if !p.advance() {
				continue
			}
			ticker.Stop()
			select {
			case <-p.stopCh:
				return
			case <-time.After(p.readyDelay):
			}
			p.mu.Lock()
			p.ready = true
			p.mu.Unlock()
			close(p.doneCh)
			return
		}
	}
}

// advance bumps progress by one step and reports whether the maximum
// has been reached.
func (p *ProgressTracker) advance() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.progress < domain.ProgressMax {
		p.progress += domain.ProgressStep
	}
	return p.progress >= domain.ProgressMax
}

func (p *ProgressTracker) Progress() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.progress
}

// Ready reports whether the delayed pickup notification has fired.
func (p *ProgressTracker) Ready() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.ready
}

// Done is closed after the ready notification fires. It never closes
// on a stopped tracker.
func (p *ProgressTracker) Done() <-chan struct{} {
	return p.doneCh
}

// Stop cancels any pending tick or ready event. Safe to call more
// than once and after completion.
func (p *ProgressTracker) Stop() {
	p.stopOnce.Do(func() { close(p.stopCh) })
}
