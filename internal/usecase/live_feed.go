package usecase

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/panjf2000/ants/v2"
	"github.com/riskibarqy/league-portal/internal/platform/logging"
	"github.com/riskibarqy/league-portal/internal/platform/poller"
)

// LiveSnapshot is one applied refresh of the live view.
type LiveSnapshot struct {
	Sequence    uint64
	GeneratedAt time.Time
	Groups      []LiveLeagueGroup
}

// Filter narrows a snapshot for one subscriber. The receiver is not modified.
func (s LiveSnapshot) Filter(filter LiveFilter) LiveSnapshot {
	if filter.IsZero() {
		return s
	}
	s.Groups = GroupByLeague(FilterMatches(flatten(s.Groups), filter))
	return s
}

type liveLister interface {
	ListLive(ctx context.Context, filter LiveFilter) ([]LiveLeagueGroup, error)
}

type LiveFeedConfig struct {
	Interval time.Duration
	Workers  int
}

// LiveFeed polls the live view on one owned poller handle and pushes every
// applied snapshot to its subscribers.
type LiveFeed struct {
	live   liveLister
	logger *logging.Logger
	cfg    LiveFeedConfig
	seq    poller.Sequencer
	now    func() time.Time

	mu       sync.RWMutex
	snapshot LiveSnapshot
	subs     map[*LiveSubscription]struct{}
	handle   *poller.Handle
	pool     *ants.Pool
}

func NewLiveFeed(live liveLister, cfg LiveFeedConfig, logger *logging.Logger) *LiveFeed {
	if logger == nil {
		logger = logging.Default()
	}
	if cfg.Interval <= 0 {
		cfg.Interval = poller.DefaultInterval
	}
	if cfg.Workers <= 0 {
		cfg.Workers = 8
	}

	return &LiveFeed{
		live:   live,
		logger: logger,
		cfg:    cfg,
		now:    time.Now,
		subs:   make(map[*LiveSubscription]struct{}),
	}
}

// Start begins polling with an immediate first refresh.
func (f *LiveFeed) Start(ctx context.Context) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.handle != nil {
		return nil
	}
	pool, err := ants.NewPool(f.cfg.Workers)
	if err != nil {
		return fmt.Errorf("create live feed pool: %w", err)
	}
	handle, err := poller.Start(ctx, f.cfg.Interval, func(ctx context.Context) error {
		_, err := f.refresh(ctx)
		return err
	}, poller.WithName("live-feed"), poller.WithLogger(f.logger), poller.WithImmediate())
	if err != nil {
		pool.Release()
		return fmt.Errorf("start live feed poller: %w", err)
	}

	f.pool = pool
	f.handle = handle
	return nil
}

// Stop ends polling, closes every subscription and waits for in-flight deliveries.
func (f *LiveFeed) Stop() {
	f.mu.Lock()
	handle := f.handle
	pool := f.pool
	f.handle = nil
	f.pool = nil
	f.mu.Unlock()

	if handle != nil {
		handle.Stop()
	}
	if pool != nil {
		_ = pool.ReleaseTimeout(5 * time.Second)
	}

	f.mu.Lock()
	subs := f.subs
	f.subs = make(map[*LiveSubscription]struct{})
	f.mu.Unlock()
	for sub := range subs {
		sub.closeChannel()
	}
}

// Refresh fetches and applies a snapshot right away. When a newer refresh has been
// applied in the meantime the newer snapshot is returned.
func (f *LiveFeed) Refresh(ctx context.Context) (LiveSnapshot, error) {
	return f.refresh(ctx)
}

// SetInterval swaps the poll interval on the running handle.
func (f *LiveFeed) SetInterval(d time.Duration) error {
	if !poller.IsAllowed(d) {
		return fmt.Errorf("%w: %s", ErrInvalidInput, d)
	}
	f.mu.Lock()
	handle := f.handle
	f.cfg.Interval = d
	f.mu.Unlock()

	if handle == nil {
		return nil
	}
	return handle.Reset(d)
}

func (f *LiveFeed) Interval() time.Duration {
	f.mu.RLock()
	defer f.mu.RUnlock()
	return f.cfg.Interval
}

func (f *LiveFeed) Snapshot() LiveSnapshot {
	f.mu.RLock()
	defer f.mu.RUnlock()
	return f.snapshot
}

// Subscribe registers a subscriber that receives the current snapshot first.
// A subscriber that falls behind only ever holds the newest unread snapshot.
func (f *LiveFeed) Subscribe(filter LiveFilter) *LiveSubscription {
	sub := &LiveSubscription{
		feed:   f,
		ch:     make(chan LiveSnapshot, 1),
		filter: filter,
	}

	f.mu.Lock()
	f.subs[sub] = struct{}{}
	current := f.snapshot
	f.mu.Unlock()

	if current.Sequence > 0 {
		sub.offer(current)
	}
	return sub
}

func (f *LiveFeed) Subscribers() int {
	f.mu.RLock()
	defer f.mu.RUnlock()
	return len(f.subs)
}

func (f *LiveFeed) refresh(ctx context.Context) (LiveSnapshot, error) {
	seq := f.seq.Next()
	groups, err := f.live.ListLive(ctx, LiveFilter{})
	if err != nil {
		return f.Snapshot(), err
	}

	snap := LiveSnapshot{Sequence: seq, GeneratedAt: f.now().UTC(), Groups: groups}
	applied := f.seq.Apply(seq, func() {
		f.mu.Lock()
		f.snapshot = snap
		f.mu.Unlock()
	})
	if !applied {
		f.logger.DebugContext(ctx, "discard stale live snapshot", "sequence", seq, "applied", f.seq.Applied())
		return f.Snapshot(), nil
	}

	f.broadcast(snap)
	return snap, nil
}

func (f *LiveFeed) broadcast(snap LiveSnapshot) {
	f.mu.RLock()
	pool := f.pool
	subs := make([]*LiveSubscription, 0, len(f.subs))
	for sub := range f.subs {
		subs = append(subs, sub)
	}
	f.mu.RUnlock()

	var wg sync.WaitGroup
	for _, sub := range subs {
		if pool == nil {
			sub.offer(snap)
			continue
		}
		wg.Add(1)
		if err := pool.Submit(func() {
			defer wg.Done()
			sub.offer(snap)
		}); err != nil {
			wg.Done()
			sub.offer(snap)
		}
	}
	wg.Wait()
}

func (f *LiveFeed) unsubscribe(sub *LiveSubscription) {
	f.mu.Lock()
	_, ok := f.subs[sub]
	delete(f.subs, sub)
	f.mu.Unlock()

	if ok {
		sub.closeChannel()
	}
}

// LiveSubscription receives filtered snapshots until closed.
type LiveSubscription struct {
	feed *LiveFeed
	ch   chan LiveSnapshot

	mu        sync.Mutex
	filter    LiveFilter
	delivered uint64
	closed    bool
}

func (s *LiveSubscription) Updates() <-chan LiveSnapshot {
	return s.ch
}

// SetFilter swaps the filter and re-delivers the current snapshot through it,
// replacing any unread one filtered the old way.
func (s *LiveSubscription) SetFilter(filter LiveFilter) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.filter = filter
	current := s.feed.Snapshot()
	if s.closed || current.Sequence == 0 || current.Sequence < s.delivered {
		return
	}
	s.push(current)
}

func (s *LiveSubscription) Close() {
	s.feed.unsubscribe(s)
}

// offer delivers snap unless the subscriber already got it or something newer.
// Broadcasts may finish out of sequence order, so older ones are skipped here.
func (s *LiveSubscription) offer(snap LiveSnapshot) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed || snap.Sequence <= s.delivered {
		return
	}
	s.push(snap)
}

// push replaces any unread snapshot with snap. s.mu must be held; holders of
// s.mu are the only senders, so the send never blocks.
func (s *LiveSubscription) push(snap LiveSnapshot) {
	select {
	case <-s.ch:
	default:
	}
	s.ch <- snap.Filter(s.filter)
	s.delivered = snap.Sequence
}

func (s *LiveSubscription) closeChannel() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return
	}
	s.closed = true
	close(s.ch)
}
