// internal/dashboard/poller.go
package dashboard

import (
	"context"
	"sync"
	"time"

	"go.uber.org/zap"
)

// Poller drives one polling loop. It owns its ticker: starting an already
// started poller first cancels the previous loop, so at most one ticker
// exists per poller. Pause and Resume map to the page-visibility toggles.
type Poller struct {
	name     string
	interval time.Duration
	tick     func(ctx context.Context)
	logger   *zap.Logger

	mu     sync.Mutex
	cancel context.CancelFunc
}

// NewPoller creates a poller that invokes tick every interval.
func NewPoller(name string, interval time.Duration, tick func(ctx context.Context), logger *zap.Logger) *Poller {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Poller{
		name:     name,
		interval: interval,
		tick:     tick,
		logger:   logger,
	}
}

// Start begins polling: one tick immediately, then one per interval.
// Any previously running loop is cancelled first.
func (p *Poller) Start(ctx context.Context) {
	p.mu.Lock()
	if p.cancel != nil {
		// Clear the previous handle before creating a new one.
		p.cancel()
	}
	ctx, cancel := context.WithCancel(ctx)
	p.cancel = cancel
	p.mu.Unlock()

	p.logger.Info("poller starting",
		zap.String("poller", p.name),
		zap.Duration("interval", p.interval),
	)

	go p.run(ctx)
}

// Stop cancels the polling loop. Safe to call when not running.
func (p *Poller) Stop() {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.cancel != nil {
		p.cancel()
		p.cancel = nil
	}
}

// Pause stops the ticker when the dashboard goes hidden.
func (p *Poller) Pause() {
	p.logger.Debug("poller paused", zap.String("poller", p.name))
	p.Stop()
}

// Resume restarts polling when the dashboard becomes visible again.
func (p *Poller) Resume(ctx context.Context) {
	p.Start(ctx)
}

// Running reports whether a loop is active.
func (p *Poller) Running() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.cancel != nil
}

func (p *Poller) run(ctx context.Context) {
	p.tick(ctx)

	ticker := time.NewTicker(p.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			p.logger.Debug("poller stopped", zap.String("poller", p.name))
			return
		case <-ticker.C:
			p.tick(ctx)
		}
	}
}
