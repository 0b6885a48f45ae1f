// Command livewatch prints the live match board in a terminal and refreshes it
// on the poll interval. Type r to refresh now, or 10s, 30s or 60s to change the
// interval.
package main

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"sync"
	"syscall"
	"time"

	crerr "github.com/cockroachdb/errors"
	"github.com/joho/godotenv"
	"github.com/riskibarqy/league-portal/internal/infrastructure/liveapi"
	"github.com/riskibarqy/league-portal/internal/platform/logging"
	"github.com/riskibarqy/league-portal/internal/platform/poller"
	"github.com/riskibarqy/league-portal/internal/platform/resilience"
)

type options struct {
	API      string
	Interval time.Duration
	League   string
	Query    string
	Lang     string
}

type liveLister interface {
	ListLive(ctx context.Context, filter liveapi.Filter) ([]liveapi.Group, error)
}

func main() {
	_ = godotenv.Load()

	opts, err := parseFlags(os.Args[1:], os.Stderr)
	if err != nil {
		if crerr.Is(err, flag.ErrHelp) {
			return
		}
		os.Exit(2)
	}

	logger := logging.New(logging.ParseLevel(os.Getenv("APP_LOG_LEVEL")), os.Stderr).With("cmd", "livewatch")
	defer func() { _ = logger.Sync() }()

	client, err := liveapi.NewClient(liveapi.Config{
		BaseURL:        opts.API,
		MaxRetries:     0,
		Language:       opts.Lang,
		Logger:         logger,
		CircuitBreaker: resilience.DefaultCircuitBreakerConfig(),
	})
	if err != nil {
		logger.Error("build live api client", "error", err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, opts, client, os.Stdin, os.Stdout, logger); err != nil {
		logger.Error("livewatch stopped", "error", err)
		os.Exit(1)
	}
}

func parseFlags(args []string, stderr io.Writer) (options, error) {
	fs := flag.NewFlagSet("livewatch", flag.ContinueOnError)
	fs.SetOutput(stderr)

	var opts options
	var interval string
	fs.StringVar(&opts.API, "api", envOr("LIVEWATCH_API", "http://localhost:8080"), "league portal base url")
	fs.StringVar(&interval, "interval", poller.DefaultInterval.String(), "poll interval: 10s, 30s or 60s")
	fs.StringVar(&opts.League, "league", "", "only show this league slug")
	fs.StringVar(&opts.Query, "q", "", "filter by team or league name")
	fs.StringVar(&opts.Lang, "lang", "en", "display language: en or am")
	if err := fs.Parse(args); err != nil {
		return options{}, err
	}

	d, err := poller.ParseInterval(interval)
	if err != nil {
		fmt.Fprintln(stderr, err)
		return options{}, err
	}
	opts.Interval = d
	return opts, nil
}

// run polls until ctx is done. Once it returns no further request is made.
func run(ctx context.Context, opts options, client liveLister, in io.Reader, out io.Writer, logger *logging.Logger) error {
	filter := liveapi.Filter{League: opts.League, Query: opts.Query}
	seq := &poller.Sequencer{}
	con := &console{w: out}

	handle, err := poller.Start(ctx, opts.Interval, func(ctx context.Context) error {
		n := seq.Next()
		groups, err := client.ListLive(ctx, filter)
		if err != nil {
			return err
		}
		seq.Apply(n, func() {
			con.print(func(w io.Writer) { renderBoard(w, groups, time.Now()) })
		})
		return nil
	}, poller.WithName("livewatch"), poller.WithLogger(logger), poller.WithImmediate())
	if err != nil {
		return crerr.Wrap(err, "start poller")
	}
	defer handle.Stop()

	if in != nil {
		go readCommands(in, handle, con)
	}

	<-ctx.Done()
	return nil
}

// console hands the terminal to one writer at a time so a board and command
// feedback never interleave.
type console struct {
	mu sync.Mutex
	w  io.Writer
}

func (c *console) print(fn func(w io.Writer)) {
	c.mu.Lock()
	defer c.mu.Unlock()
	fn(c.w)
}

func (c *console) printf(format string, args ...any) {
	c.print(func(w io.Writer) { fmt.Fprintf(w, format, args...) })
}

func readCommands(in io.Reader, handle *poller.Handle, con *console) {
	scanner := bufio.NewScanner(in)
	for scanner.Scan() {
		cmd := strings.ToLower(strings.TrimSpace(scanner.Text()))
		switch {
		case cmd == "":
		case cmd == "r":
			if err := handle.Trigger(); err != nil {
				return
			}
		default:
			d, err := poller.ParseInterval(cmd)
			if err != nil {
				con.printf("unknown command %q (use r, 10s, 30s or 60s)\n", cmd)
				continue
			}
			if err := handle.Reset(d); err != nil {
				return
			}
			con.printf("interval set to %s\n", d)
		}
	}
}

func envOr(key, fallback string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return fallback
}
