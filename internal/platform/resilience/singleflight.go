package resilience

import "sync"

// SingleFlight collapses concurrent calls that share a key into one execution.
// The zero value is ready to use.
type SingleFlight struct {
	mu       sync.Mutex
	inflight map[string]*call
}

type call struct {
	wg      sync.WaitGroup
	val     any
	err     error
	waiters int
}

// Do runs fn unless a call for key is already running, in which case it waits
// for that call and returns its result with shared set.
func (g *SingleFlight) Do(key string, fn func() (any, error)) (val any, err error, shared bool) {
	g.mu.Lock()
	if c, ok := g.inflight[key]; ok {
		c.waiters++
		g.mu.Unlock()
		c.wg.Wait()
		return c.val, c.err, true
	}
	if g.inflight == nil {
		g.inflight = make(map[string]*call)
	}
	c := new(call)
	c.wg.Add(1)
	g.inflight[key] = c
	g.mu.Unlock()

	defer g.finish(key, c)
	c.val, c.err = fn()
	return c.val, c.err, c.waiters > 0
}

func (g *SingleFlight) finish(key string, c *call) {
	g.mu.Lock()
	delete(g.inflight, key)
	g.mu.Unlock()
	c.wg.Done()
}
