package resilience

import (
	"errors"
	"runtime"
	"sync"
	"sync/atomic"
	"testing"
)

func TestSingleFlight_CollapsesConcurrentCalls(t *testing.T) {
	t.Parallel()

	var g SingleFlight
	var runs atomic.Int32
	release := make(chan struct{})
	entered := make(chan struct{})

	var wg sync.WaitGroup
	results := make(chan bool, 5)
	wg.Add(1)
	go func() {
		defer wg.Done()
		_, _, shared := g.Do("standings:l1", func() (any, error) {
			runs.Add(1)
			close(entered)
			<-release
			return 7, nil
		})
		results <- shared
	}()
	<-entered

	for i := 0; i < 4; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			v, err, shared := g.Do("standings:l1", func() (any, error) {
				runs.Add(1)
				return 0, nil
			})
			if err != nil || v != 7 {
				t.Errorf("waiter got v=%v err=%v", v, err)
			}
			results <- shared
		}()
	}

	// waiters register under the mutex before blocking; spin until all four have
	for {
		g.mu.Lock()
		n := g.inflight["standings:l1"].waiters
		g.mu.Unlock()
		if n == 4 {
			break
		}
		runtime.Gosched()
	}
	close(release)
	wg.Wait()
	close(results)

	if got := runs.Load(); got != 1 {
		t.Fatalf("fn ran %d times, want 1", got)
	}
	for shared := range results {
		if !shared {
			t.Fatalf("every caller should see a shared result once waiters exist")
		}
	}
}

func TestSingleFlight_ErrorsAreNotRemembered(t *testing.T) {
	t.Parallel()

	var g SingleFlight
	boom := errors.New("boom")
	if _, err, _ := g.Do("k", func() (any, error) { return nil, boom }); !errors.Is(err, boom) {
		t.Fatalf("expected boom, got %v", err)
	}
	v, err, shared := g.Do("k", func() (any, error) { return "ok", nil })
	if err != nil || v != "ok" || shared {
		t.Fatalf("second call should run fresh: v=%v err=%v shared=%v", v, err, shared)
	}
}
