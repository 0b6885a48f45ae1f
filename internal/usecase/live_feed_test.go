package usecase

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/riskibarqy/league-portal/internal/platform/logging"
)

type funcLister func(ctx context.Context, filter LiveFilter) ([]LiveLeagueGroup, error)

func (f funcLister) ListLive(ctx context.Context, filter LiveFilter) ([]LiveLeagueGroup, error) {
	return f(ctx, filter)
}

func staticLister(rows []LiveMatch) funcLister {
	return func(context.Context, LiveFilter) ([]LiveLeagueGroup, error) {
		return GroupByLeague(rows), nil
	}
}

func TestLiveFeed_StaleRefreshDiscarded(t *testing.T) {
	t.Parallel()

	var calls atomic.Int32
	started := make(chan struct{})
	release := make(chan struct{})
	rows := sampleLiveRows()

	lister := funcLister(func(ctx context.Context, _ LiveFilter) ([]LiveLeagueGroup, error) {
		if calls.Add(1) == 1 {
			close(started)
			<-release
			return GroupByLeague(rows[:1]), nil
		}
		return GroupByLeague(rows), nil
	})
	feed := NewLiveFeed(lister, LiveFeedConfig{}, logging.NewNop())
	ctx := context.Background()

	var wg sync.WaitGroup
	var slow LiveSnapshot
	wg.Add(1)
	go func() {
		defer wg.Done()
		slow, _ = feed.Refresh(ctx)
	}()
	<-started

	fresh, err := feed.Refresh(ctx)
	if err != nil {
		t.Fatalf("refresh: %v", err)
	}
	close(release)
	wg.Wait()

	if fresh.Sequence != 2 {
		t.Fatalf("expected sequence 2, got %d", fresh.Sequence)
	}
	if slow.Sequence != 2 {
		t.Fatalf("stale refresh should report the newer snapshot, got sequence %d", slow.Sequence)
	}
	current := feed.Snapshot()
	if current.Sequence != 2 || len(flatten(current.Groups)) != len(rows) {
		t.Fatalf("stale response overwrote newer data: %+v", current)
	}
}

func TestLiveFeed_RefreshErrorKeepsPreviousSnapshot(t *testing.T) {
	t.Parallel()

	var fail atomic.Bool
	rows := sampleLiveRows()
	lister := funcLister(func(context.Context, LiveFilter) ([]LiveLeagueGroup, error) {
		if fail.Load() {
			return nil, errors.New("upstream down")
		}
		return GroupByLeague(rows), nil
	})
	feed := NewLiveFeed(lister, LiveFeedConfig{}, logging.NewNop())

	first, err := feed.Refresh(context.Background())
	if err != nil {
		t.Fatalf("refresh: %v", err)
	}
	fail.Store(true)
	if _, err := feed.Refresh(context.Background()); err == nil {
		t.Fatalf("expected refresh error")
	}
	if got := feed.Snapshot(); got.Sequence != first.Sequence || len(got.Groups) != len(first.Groups) {
		t.Fatalf("failed refresh must keep previous data, got %+v", got)
	}
}

func TestLiveFeed_SubscriberReceivesFilteredSnapshots(t *testing.T) {
	t.Parallel()

	feed := NewLiveFeed(staticLister(sampleLiveRows()), LiveFeedConfig{}, logging.NewNop())
	sub := feed.Subscribe(LiveFilter{Query: "fasil"})
	defer sub.Close()

	if _, err := feed.Refresh(context.Background()); err != nil {
		t.Fatalf("refresh: %v", err)
	}

	select {
	case snap := <-sub.Updates():
		rows := flatten(snap.Groups)
		if len(rows) != 1 || rows[0].Match.ID != "m2" {
			t.Fatalf("expected only the fasil match, got %+v", rows)
		}
	case <-time.After(time.Second):
		t.Fatalf("subscriber got no snapshot")
	}

	if full := feed.Snapshot(); len(flatten(full.Groups)) != 4 {
		t.Fatalf("subscriber filter must not narrow the shared snapshot")
	}
}

func TestLiveFeed_SlowSubscriberKeepsOnlyNewest(t *testing.T) {
	t.Parallel()

	feed := NewLiveFeed(staticLister(sampleLiveRows()), LiveFeedConfig{}, logging.NewNop())
	sub := feed.Subscribe(LiveFilter{})
	defer sub.Close()

	ctx := context.Background()
	for i := 0; i < 3; i++ {
		if _, err := feed.Refresh(ctx); err != nil {
			t.Fatalf("refresh %d: %v", i, err)
		}
	}

	if feed.Subscribers() != 1 {
		t.Fatalf("a reader that falls behind must stay subscribed, have %d", feed.Subscribers())
	}
	select {
	case snap := <-sub.Updates():
		if snap.Sequence != 3 {
			t.Fatalf("expected the newest snapshot, got sequence %d", snap.Sequence)
		}
	default:
		t.Fatalf("expected a pending snapshot")
	}
	select {
	case snap := <-sub.Updates():
		t.Fatalf("older snapshots should have been replaced, got sequence %d", snap.Sequence)
	default:
	}
}

func TestLiveSubscription_SkipsOutOfOrderBroadcast(t *testing.T) {
	t.Parallel()

	feed := NewLiveFeed(staticLister(nil), LiveFeedConfig{}, logging.NewNop())
	sub := feed.Subscribe(LiveFilter{})
	defer sub.Close()

	sub.offer(LiveSnapshot{Sequence: 3})
	if got := (<-sub.Updates()).Sequence; got != 3 {
		t.Fatalf("expected sequence 3, got %d", got)
	}

	// a broadcast for sequence 2 that lost the race to sequence 3
	sub.offer(LiveSnapshot{Sequence: 2})
	sub.offer(LiveSnapshot{Sequence: 3})
	select {
	case snap := <-sub.Updates():
		t.Fatalf("stale or repeated snapshot delivered: %d", snap.Sequence)
	default:
	}
	if feed.Subscribers() != 1 {
		t.Fatalf("subscriber must not be dropped")
	}
}

func TestLiveFeed_ConcurrentRefreshesDeliverIncreasingSequences(t *testing.T) {
	t.Parallel()

	feed := NewLiveFeed(staticLister(sampleLiveRows()), LiveFeedConfig{}, logging.NewNop())
	subs := []*LiveSubscription{feed.Subscribe(LiveFilter{}), feed.Subscribe(LiveFilter{Query: "fasil"})}
	seen := make([][]uint64, len(subs))
	stop := make(chan struct{})
	var readers sync.WaitGroup
	for i, sub := range subs {
		readers.Add(1)
		go func() {
			defer readers.Done()
			for {
				select {
				case snap, ok := <-sub.Updates():
					if !ok {
						return
					}
					seen[i] = append(seen[i], snap.Sequence)
				case <-stop:
					return
				}
			}
		}()
	}

	var refreshes sync.WaitGroup
	for i := 0; i < 40; i++ {
		refreshes.Add(1)
		go func() {
			defer refreshes.Done()
			if _, err := feed.Refresh(context.Background()); err != nil {
				t.Errorf("refresh: %v", err)
			}
		}()
	}
	refreshes.Wait()
	close(stop)
	readers.Wait()

	final := feed.Snapshot().Sequence
	for i, sub := range subs {
		select {
		case snap := <-sub.Updates():
			seen[i] = append(seen[i], snap.Sequence)
		default:
		}
		got := seen[i]
		if len(got) == 0 || got[len(got)-1] != final {
			t.Fatalf("subscriber %d should end on sequence %d, saw %v", i, final, got)
		}
		for j := 1; j < len(got); j++ {
			if got[j] <= got[j-1] {
				t.Fatalf("subscriber %d saw sequences out of order: %v", i, got)
			}
		}
	}
	if feed.Subscribers() != len(subs) {
		t.Fatalf("no subscriber should be dropped, have %d", feed.Subscribers())
	}
}

func TestLiveSubscription_SetFilterRedeliversCurrentSnapshot(t *testing.T) {
	t.Parallel()

	feed := NewLiveFeed(staticLister(sampleLiveRows()), LiveFeedConfig{}, logging.NewNop())
	sub := feed.Subscribe(LiveFilter{Query: "fasil"})
	defer sub.Close()

	if _, err := feed.Refresh(context.Background()); err != nil {
		t.Fatalf("refresh: %v", err)
	}
	if rows := flatten((<-sub.Updates()).Groups); len(rows) != 1 {
		t.Fatalf("expected filtered snapshot, got %d rows", len(rows))
	}

	sub.SetFilter(LiveFilter{})
	select {
	case snap := <-sub.Updates():
		if snap.Sequence != 1 || len(flatten(snap.Groups)) != 4 {
			t.Fatalf("expected current snapshot with the new filter, got seq %d rows %d", snap.Sequence, len(flatten(snap.Groups)))
		}
	default:
		t.Fatalf("filter change should deliver the current snapshot right away")
	}
}

func TestLiveSubscription_SetFilterBeforeFirstSnapshot(t *testing.T) {
	t.Parallel()

	feed := NewLiveFeed(staticLister(sampleLiveRows()), LiveFeedConfig{}, logging.NewNop())
	sub := feed.Subscribe(LiveFilter{})
	defer sub.Close()

	sub.SetFilter(LiveFilter{Query: "fasil"})
	select {
	case snap := <-sub.Updates():
		t.Fatalf("nothing to deliver before the first refresh, got %+v", snap)
	default:
	}
}

func TestLiveFeed_StartStopAndInterval(t *testing.T) {
	t.Parallel()

	var calls atomic.Int32
	lister := funcLister(func(context.Context, LiveFilter) ([]LiveLeagueGroup, error) {
		calls.Add(1)
		return nil, nil
	})
	feed := NewLiveFeed(lister, LiveFeedConfig{Interval: 10 * time.Second, Workers: 2}, logging.NewNop())
	sub := feed.Subscribe(LiveFilter{})

	if err := feed.Start(context.Background()); err != nil {
		t.Fatalf("start: %v", err)
	}
	select {
	case <-sub.Updates():
	case <-time.After(2 * time.Second):
		t.Fatalf("immediate refresh did not reach subscriber")
	}

	if err := feed.SetInterval(15 * time.Second); err == nil {
		t.Fatalf("expected disallowed interval error")
	}
	if err := feed.SetInterval(60 * time.Second); err != nil {
		t.Fatalf("set interval: %v", err)
	}
	if feed.Interval() != 60*time.Second {
		t.Fatalf("unexpected interval %s", feed.Interval())
	}

	feed.Stop()
	after := calls.Load()
	time.Sleep(20 * time.Millisecond)
	if calls.Load() != after {
		t.Fatalf("poller kept running after stop")
	}
	if _, ok := <-sub.Updates(); ok {
		t.Fatalf("subscription should be closed by stop")
	}
}
