package liveapi

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	crerr "github.com/cockroachdb/errors"
	"github.com/riskibarqy/league-portal/internal/platform/logging"
	"github.com/riskibarqy/league-portal/internal/platform/resilience"
)

const liveBody = `{"apiVersion":"2.0","data":[{"league":{"id":"l1","slug":"ethiopian-premier-league","name":"Ethiopian Premier League"},` +
	`"matches":[{"id":"m1","slug":"saint-george-vs-fasil-kenema","homeTeam":{"name":"Saint George","shortName":"STG"},` +
	`"awayTeam":{"name":"Fasil Kenema","shortName":"FAS"},"homeScore":1,"awayScore":1,"clock":{"label":"67'","live":true,"minute":67,"phase":"second_half"}}]}]}`

func newTestClient(t *testing.T, baseURL string, breaker resilience.CircuitBreakerConfig) *Client {
	t.Helper()

	c, err := NewClient(Config{
		BaseURL:        baseURL,
		Timeout:        2 * time.Second,
		RetryBackoff:   time.Millisecond,
		Language:       "en",
		Logger:         logging.NewNop(),
		CircuitBreaker: breaker,
	})
	if err != nil {
		t.Fatalf("new client: %v", err)
	}
	return c
}

func TestClient_ListLiveDecodesGroups(t *testing.T) {
	t.Parallel()

	queries := make(chan string, 1)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/v1/matches/live" {
			http.NotFound(w, r)
			return
		}
		queries <- r.URL.RawQuery
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(liveBody))
	}))
	defer srv.Close()

	c := newTestClient(t, srv.URL+"/", resilience.CircuitBreakerConfig{})
	groups, err := c.ListLive(context.Background(), Filter{League: "ethiopian-premier-league", Query: "george"})
	if err != nil {
		t.Fatalf("list live: %v", err)
	}
	if got := <-queries; got != "lang=en&league=ethiopian-premier-league&q=george" {
		t.Fatalf("unexpected query: %s", got)
	}
	if len(groups) != 1 || len(groups[0].Matches) != 1 {
		t.Fatalf("unexpected groups: %+v", groups)
	}
	m := groups[0].Matches[0]
	if m.HomeTeam.Label() != "STG" || m.Clock.Minute != 67 || !m.Clock.Live {
		t.Fatalf("unexpected match: %+v", m)
	}
}

func TestClient_RetriesTransientStatus(t *testing.T) {
	t.Parallel()

	var hits atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if hits.Add(1) == 1 {
			w.WriteHeader(http.StatusServiceUnavailable)
			return
		}
		_, _ = w.Write([]byte(`{"apiVersion":"2.0","data":[]}`))
	}))
	defer srv.Close()

	c := newTestClient(t, srv.URL, resilience.CircuitBreakerConfig{})
	c.maxRetries = 1

	groups, err := c.ListLive(context.Background(), Filter{})
	if err != nil {
		t.Fatalf("list live after retry: %v", err)
	}
	if len(groups) != 0 || hits.Load() != 2 {
		t.Fatalf("groups=%d hits=%d, want 0 groups and 2 hits", len(groups), hits.Load())
	}
}

func TestClient_ClientErrorIsNotTransient(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"apiVersion":"2.0","error":{"code":400,"message":"bad filter"}}`))
	}))
	defer srv.Close()

	c := newTestClient(t, srv.URL, resilience.CircuitBreakerConfig{Enabled: true, FailureThreshold: 1, OpenTimeout: time.Minute})
	for i := 0; i < 2; i++ {
		_, err := c.ListLive(context.Background(), Filter{})
		if err == nil || IsTransient(err) {
			t.Fatalf("expected permanent error, got %v", err)
		}
		if crerr.Is(err, resilience.ErrCircuitOpen) {
			t.Fatalf("client errors must not open the breaker")
		}
	}
}

func TestClient_CircuitOpensAfterTransientFailures(t *testing.T) {
	t.Parallel()

	var hits atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	c := newTestClient(t, srv.URL, resilience.CircuitBreakerConfig{Enabled: true, FailureThreshold: 2, OpenTimeout: time.Minute})
	for i := 0; i < 2; i++ {
		if _, err := c.ListLive(context.Background(), Filter{}); !IsTransient(err) {
			t.Fatalf("attempt %d: expected transient error, got %v", i, err)
		}
	}

	_, err := c.ListLive(context.Background(), Filter{})
	if !crerr.Is(err, resilience.ErrCircuitOpen) {
		t.Fatalf("expected open circuit, got %v", err)
	}
	if hits.Load() != 2 {
		t.Fatalf("open circuit must not reach the server, hits=%d", hits.Load())
	}
}

func TestNewClient_RejectsRelativeURL(t *testing.T) {
	t.Parallel()

	if _, err := NewClient(Config{BaseURL: "localhost:8080"}); err == nil {
		t.Fatalf("expected error for url without scheme")
	}
}
