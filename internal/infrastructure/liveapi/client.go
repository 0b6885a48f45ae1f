// Package liveapi is a thin client for the public live board endpoint, used by
// terminal and service consumers that poll /v1/matches/live.
package liveapi

import (
	"context"
	"net/url"
	"strings"
	"time"

	sonic "github.com/bytedance/sonic"
	crerr "github.com/cockroachdb/errors"
	"github.com/riskibarqy/league-portal/internal/platform/logging"
	"github.com/riskibarqy/league-portal/internal/platform/resilience"
	"github.com/valyala/fasthttp"
)

const (
	defaultTimeout      = 10 * time.Second
	defaultRetryBackoff = 500 * time.Millisecond
	maxBodySize         = 4 << 20
	livePath            = "/v1/matches/live"
)

// ErrTransient marks failures worth retrying: transport errors, 429 and 5xx.
var ErrTransient = crerr.New("live api transient failure")

type Config struct {
	BaseURL        string
	Timeout        time.Duration
	MaxRetries     int
	RetryBackoff   time.Duration
	Language       string
	Logger         *logging.Logger
	CircuitBreaker resilience.CircuitBreakerConfig
}

type Client struct {
	http         *fasthttp.Client
	baseURL      string
	timeout      time.Duration
	maxRetries   int
	retryBackoff time.Duration
	language     string
	logger       *logging.Logger
	breaker      *resilience.CircuitBreaker
}

type Filter struct {
	League string
	Query  string
}

type Team struct {
	ID        string `json:"id"`
	Slug      string `json:"slug"`
	Name      string `json:"name"`
	ShortName string `json:"shortName"`
}

// Label prefers the short name, which keeps board rows compact.
func (t Team) Label() string {
	if t.ShortName != "" {
		return t.ShortName
	}
	return t.Name
}

type Clock struct {
	Label    string `json:"label"`
	Live     bool   `json:"live"`
	Minute   int    `json:"minute"`
	Stoppage int    `json:"stoppage"`
	Phase    string `json:"phase"`
}

type Match struct {
	ID        string `json:"id"`
	Slug      string `json:"slug"`
	HomeTeam  Team   `json:"homeTeam"`
	AwayTeam  Team   `json:"awayTeam"`
	HomeScore int    `json:"homeScore"`
	AwayScore int    `json:"awayScore"`
	Venue     string `json:"venue"`
	Clock     Clock  `json:"clock"`
}

type League struct {
	ID   string `json:"id"`
	Slug string `json:"slug"`
	Name string `json:"name"`
}

type Group struct {
	League  League  `json:"league"`
	Matches []Match `json:"matches"`
}

type envelope struct {
	APIVersion string    `json:"apiVersion"`
	Data       []Group   `json:"data"`
	Error      *apiError `json:"error"`
}

type apiError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

func NewClient(cfg Config) (*Client, error) {
	baseURL := strings.TrimRight(strings.TrimSpace(cfg.BaseURL), "/")
	parsed, err := url.Parse(baseURL)
	if err != nil || (parsed.Scheme != "http" && parsed.Scheme != "https") || parsed.Host == "" {
		return nil, crerr.Newf("live api base url %q must be an absolute http(s) url", cfg.BaseURL)
	}

	logger := cfg.Logger
	if logger == nil {
		logger = logging.Default()
	}
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	backoff := cfg.RetryBackoff
	if backoff <= 0 {
		backoff = defaultRetryBackoff
	}

	return &Client{
		http: &fasthttp.Client{
			Name:                "league-portal-livewatch",
			ReadTimeout:         timeout,
			WriteTimeout:        timeout,
			MaxResponseBodySize: maxBodySize,
		},
		baseURL:      baseURL,
		timeout:      timeout,
		maxRetries:   max(cfg.MaxRetries, 0),
		retryBackoff: backoff,
		language:     strings.TrimSpace(cfg.Language),
		logger:       logger,
		breaker:      resilience.NewCircuitBreaker(cfg.CircuitBreaker),
	}, nil
}

// ListLive fetches the grouped live board once.
func (c *Client) ListLive(ctx context.Context, filter Filter) ([]Group, error) {
	fullURL := c.liveURL(filter)

	var raw []byte
	err := c.breaker.Execute(func() error {
		var reqErr error
		raw, reqErr = c.executeRequest(ctx, fullURL)
		return reqErr
	}, IsTransient)
	if err != nil {
		if crerr.Is(err, resilience.ErrCircuitOpen) {
			c.logger.WarnContext(ctx, "live api circuit breaker rejected request", "state", c.breaker.State())
		}
		return nil, crerr.Wrap(err, "list live matches")
	}

	var env envelope
	if err := sonic.Unmarshal(raw, &env); err != nil {
		return nil, crerr.Wrap(err, "decode live board")
	}
	if env.Data == nil {
		return []Group{}, nil
	}
	return env.Data, nil
}

func IsTransient(err error) bool {
	return crerr.Is(err, ErrTransient)
}

func (c *Client) liveURL(filter Filter) string {
	values := url.Values{}
	if v := strings.TrimSpace(filter.League); v != "" {
		values.Set("league", v)
	}
	if v := strings.TrimSpace(filter.Query); v != "" {
		values.Set("q", v)
	}
	if c.language != "" {
		values.Set("lang", c.language)
	}

	fullURL := c.baseURL + livePath
	if encoded := values.Encode(); encoded != "" {
		fullURL += "?" + encoded
	}
	return fullURL
}

func (c *Client) executeRequest(ctx context.Context, fullURL string) ([]byte, error) {
	var lastErr error
	for attempt := 0; attempt <= c.maxRetries; attempt++ {
		raw, err := c.doOnce(ctx, fullURL)
		if err == nil {
			return raw, nil
		}
		lastErr = err
		if !IsTransient(err) || attempt == c.maxRetries {
			break
		}

		timer := time.NewTimer(time.Duration(attempt+1) * c.retryBackoff)
		select {
		case <-ctx.Done():
			timer.Stop()
			return nil, ctx.Err()
		case <-timer.C:
		}
	}

	c.logger.WarnContext(ctx, "live api request failed", "url", fullURL, "error", lastErr)
	return nil, lastErr
}

func (c *Client) doOnce(ctx context.Context, fullURL string) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	req := fasthttp.AcquireRequest()
	resp := fasthttp.AcquireResponse()
	defer fasthttp.ReleaseRequest(req)
	defer fasthttp.ReleaseResponse(resp)

	req.SetRequestURI(fullURL)
	req.Header.SetMethod(fasthttp.MethodGet)
	req.Header.Set(fasthttp.HeaderAccept, "application/json")

	deadline := time.Now().Add(c.timeout)
	if d, ok := ctx.Deadline(); ok && d.Before(deadline) {
		deadline = d
	}
	if err := c.http.DoDeadline(req, resp, deadline); err != nil {
		return nil, crerr.Mark(crerr.Wrap(err, "send request"), ErrTransient)
	}

	status := resp.StatusCode()
	body := append([]byte(nil), resp.Body()...)
	if status >= 200 && status < 300 {
		return body, nil
	}

	err := crerr.Newf("live api status=%d: %s", status, errorMessage(body))
	if status == fasthttp.StatusTooManyRequests || status >= 500 {
		return nil, crerr.Mark(err, ErrTransient)
	}
	return nil, err
}

func errorMessage(body []byte) string {
	var env envelope
	if err := sonic.Unmarshal(body, &env); err == nil && env.Error != nil && env.Error.Message != "" {
		return env.Error.Message
	}
	text := strings.TrimSpace(string(body))
	if len(text) > 200 {
		text = text[:200] + "..."
	}
	return text
}
