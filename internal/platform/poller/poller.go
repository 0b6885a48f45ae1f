// Package poller runs a refresh callback on a fixed interval through an
// explicitly owned handle.
package poller

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"github.com/riskibarqy/league-portal/internal/platform/logging"
)

var ErrStopped = errors.New("poller stopped")

// Func is the refresh callback. A returned error is logged and the previous
// data stays in place until the next tick.
type Func func(ctx context.Context) error

type ticker interface {
	C() <-chan time.Time
	Stop()
}

type timeTicker struct{ t *time.Ticker }

func (t timeTicker) C() <-chan time.Time { return t.t.C }
func (t timeTicker) Stop()               { t.t.Stop() }

func newTimeTicker(d time.Duration) ticker { return timeTicker{t: time.NewTicker(d)} }

type options struct {
	name      string
	logger    *logging.Logger
	immediate bool
	newTicker func(time.Duration) ticker
}

type Option func(*options)

func WithName(name string) Option {
	return func(o *options) { o.name = name }
}

func WithLogger(logger *logging.Logger) Option {
	return func(o *options) { o.logger = logger }
}

// WithImmediate runs the callback once as soon as the handle starts.
func WithImmediate() Option {
	return func(o *options) { o.immediate = true }
}

func withTickerFactory(f func(time.Duration) ticker) Option {
	return func(o *options) { o.newTicker = f }
}

type resetRequest struct {
	interval time.Duration
	applied  chan struct{}
}

// Handle owns exactly one running ticker. It is safe for concurrent use.
type Handle struct {
	opts options
	fn   Func

	cancel  context.CancelFunc
	done    chan struct{}
	resetCh chan resetRequest
	trigger chan struct{}

	mu       sync.Mutex
	interval time.Duration
	stopped  bool

	runs atomic.Int64
}

// Start launches the poll loop. The loop ends when Stop is called or ctx is done.
func Start(ctx context.Context, interval time.Duration, fn Func, opts ...Option) (*Handle, error) {
	if fn == nil {
		return nil, fmt.Errorf("poll callback is required")
	}
	if interval <= 0 {
		return nil, fmt.Errorf("%w: %s", ErrInvalidInterval, interval)
	}

	o := options{name: "poller", logger: logging.Default(), newTicker: newTimeTicker}
	for _, opt := range opts {
		opt(&o)
	}
	if o.logger == nil {
		o.logger = logging.Default()
	}

	loopCtx, cancel := context.WithCancel(ctx)
	h := &Handle{
		opts:     o,
		fn:       fn,
		cancel:   cancel,
		done:     make(chan struct{}),
		resetCh:  make(chan resetRequest),
		trigger:  make(chan struct{}, 1),
		interval: interval,
	}

	t := o.newTicker(interval)
	go h.loop(loopCtx, t)

	return h, nil
}

func (h *Handle) loop(ctx context.Context, t ticker) {
	defer close(h.done)
	defer func() { t.Stop() }()

	if h.opts.immediate {
		h.invoke(ctx)
	}

	for {
		select {
		case <-ctx.Done():
			return
		case req := <-h.resetCh:
			t.Stop()
			t = h.opts.newTicker(req.interval)
			close(req.applied)
		case <-h.trigger:
			h.invoke(ctx)
		case <-t.C():
			h.invoke(ctx)
		}
	}
}

func (h *Handle) invoke(ctx context.Context) {
	if ctx.Err() != nil {
		return
	}
	h.runs.Add(1)
	if err := h.fn(ctx); err != nil && ctx.Err() == nil {
		h.opts.logger.WarnContext(ctx, "poll refresh failed", "poller", h.opts.name, "error", err)
	}
}

// Reset replaces the running ticker with one at the new interval. The swap has
// happened by the time Reset returns. Resetting to the current interval is a no-op.
func (h *Handle) Reset(interval time.Duration) error {
	if interval <= 0 {
		return fmt.Errorf("%w: %s", ErrInvalidInterval, interval)
	}

	h.mu.Lock()
	defer h.mu.Unlock()

	if h.stopped {
		return ErrStopped
	}
	if interval == h.interval {
		return nil
	}

	req := resetRequest{interval: interval, applied: make(chan struct{})}
	select {
	case h.resetCh <- req:
	case <-h.done:
		return ErrStopped
	}
	select {
	case <-req.applied:
	case <-h.done:
		return ErrStopped
	}

	h.interval = interval
	return nil
}

// Trigger asks for an out-of-band refresh. Requests made while one is pending coalesce.
func (h *Handle) Trigger() error {
	select {
	case <-h.done:
		return ErrStopped
	default:
	}

	select {
	case h.trigger <- struct{}{}:
	default:
	}
	return nil
}

// Stop cancels the loop and waits for it to exit. No callback runs after Stop returns.
func (h *Handle) Stop() {
	h.mu.Lock()
	h.stopped = true
	h.mu.Unlock()

	h.cancel()
	<-h.done
}

func (h *Handle) Interval() time.Duration {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.interval
}

// Runs reports how many times the callback has been invoked.
func (h *Handle) Runs() int64 {
	return h.runs.Load()
}

func (h *Handle) Done() <-chan struct{} {
	return h.done
}
