// Package poller runs a callback immediately and then on a fixed interval.
package poller

import (
	"context"
	"fmt"
	"log/slog"
	"runtime/debug"
	"sync"
	"time"

	"github.com/jonboulle/clockwork"
)

// DefaultInterval is the period between invocations when none is configured.
const DefaultInterval = 10 * time.Second

// Func is the polled callback. A returned error is logged and does not stop
// the loop.
type Func func(ctx context.Context) error

// Option configures a Poller.
type Option func(*Poller)

// WithInterval sets the polling period. Non-positive values are ignored.
func WithInterval(d time.Duration) Option {
	return func(p *Poller) {
		if d > 0 {
			p.interval = d
		}
	}
}

// WithEnabled sets the initial enabled state (default true).
func WithEnabled(enabled bool) Option {
	return func(p *Poller) { p.enabled = enabled }
}

// WithClock replaces the clock, mainly for tests.
func WithClock(c clockwork.Clock) Option {
	return func(p *Poller) {
		if c != nil {
			p.clock = c
		}
	}
}

// WithLogger sets the logger used for callback failures.
func WithLogger(l *slog.Logger) Option {
	return func(p *Poller) {
		if l != nil {
			p.logger = l
		}
	}
}

// Poller invokes fn once on activation and then every interval while enabled.
//
// Invocations never overlap: a tick that arrives while fn is still running is
// coalesced into at most one pending tick. fn should return promptly once its
// ctx is cancelled, and must not call methods on its own Poller.
type Poller struct {
	fn     Func
	clock  clockwork.Clock
	logger *slog.Logger

	mu       sync.Mutex
	parent   context.Context
	interval time.Duration
	enabled  bool
	cancel   context.CancelFunc
	done     chan struct{}
}

// New creates a Poller. It does nothing until Start is called.
func New(fn Func, opts ...Option) *Poller {
	p := &Poller{
		fn:       fn,
		clock:    clockwork.NewRealClock(),
		logger:   slog.Default(),
		interval: DefaultInterval,
		enabled:  true,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Start activates the poller. If enabled, fn runs immediately and then every
// interval until ctx is done, Stop is called or the poller is disabled.
// Calling Start on a running poller restarts it under the new ctx.
func (p *Poller) Start(ctx context.Context) {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.parent = ctx
	p.restartLocked()
}

// SetEnabled turns polling on or off. Disabling cancels the pending timer;
// re-enabling runs fn immediately and resumes the interval.
func (p *Poller) SetEnabled(enabled bool) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.enabled == enabled {
		return
	}
	p.enabled = enabled
	p.restartLocked()
}

// SetInterval changes the period. A running poller is restarted with the new
// period, which runs fn immediately. Non-positive values are ignored.
func (p *Poller) SetInterval(d time.Duration) {
	if d <= 0 {
		return
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	if p.interval == d {
		return
	}
	p.interval = d
	p.restartLocked()
}

// Stop tears the poller down and waits for the loop to exit. It is safe to
// call more than once. A stopped poller can be started again.
func (p *Poller) Stop() {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.stopLocked()
	p.parent = nil
}

// Running reports whether a polling loop is active.
func (p *Poller) Running() bool {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.done == nil {
		return false
	}
	select {
	case <-p.done:
		return false
	default:
		return true
	}
}

// Interval returns the current polling period.
func (p *Poller) Interval() time.Duration {
	p.mu.Lock()
	defer p.mu.Unlock()

	return p.interval
}

func (p *Poller) restartLocked() {
	p.stopLocked()
	if p.parent == nil || !p.enabled {
		return
	}

	ctx, cancel := context.WithCancel(p.parent)
	done := make(chan struct{})
	p.cancel = cancel
	p.done = done

	go p.run(ctx, p.interval, done)
}

func (p *Poller) stopLocked() {
	if p.cancel == nil {
		return
	}
	p.cancel()
	<-p.done
	p.cancel = nil
	p.done = nil
}

// run is the polling loop: one call immediately, then one per tick.
// The ticker starts before the first call so the period is measured from
// activation, not from the end of the first call.
func (p *Poller) run(ctx context.Context, interval time.Duration, done chan struct{}) {
	defer close(done)

	ticker := p.clock.NewTicker(interval)
	defer ticker.Stop()

	p.tick(ctx)

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.Chan():
			if ctx.Err() != nil {
				return
			}
			p.tick(ctx)
		}
	}
}

// tick runs fn once, logging errors and recovering panics.
func (p *Poller) tick(ctx context.Context) {
	defer func() {
		if r := recover(); r != nil {
			p.logger.Error("polling callback panicked",
				"panic", fmt.Sprint(r),
				"stacktrace", string(debug.Stack()),
			)
		}
	}()

	if err := p.fn(ctx); err != nil {
		p.logger.Error("polling callback error", "error", err)
	}
}
