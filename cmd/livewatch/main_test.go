package main

import (
	"bytes"
	"context"
	"io"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/riskibarqy/league-portal/internal/infrastructure/liveapi"
	"github.com/riskibarqy/league-portal/internal/platform/logging"
)

type fakeLister struct {
	calls  atomic.Int32
	groups []liveapi.Group
}

func (f *fakeLister) ListLive(context.Context, liveapi.Filter) ([]liveapi.Group, error) {
	f.calls.Add(1)
	return f.groups, nil
}

type syncBuffer struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (b *syncBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.Write(p)
}

func (b *syncBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.String()
}

func seededGroups() []liveapi.Group {
	return []liveapi.Group{{
		League: liveapi.League{Name: "Ethiopian Premier League"},
		Matches: []liveapi.Match{{
			HomeTeam:  liveapi.Team{Name: "Saint George", ShortName: "STG"},
			AwayTeam:  liveapi.Team{Name: "Fasil Kenema"},
			HomeScore: 2,
			AwayScore: 1,
			Clock:     liveapi.Clock{Label: "45+2'", Live: true},
		}},
	}}
}

func waitFor(t *testing.T, cond func() bool) {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for !cond() {
		if time.Now().After(deadline) {
			t.Fatalf("condition not met before deadline")
		}
		time.Sleep(5 * time.Millisecond)
	}
}

func TestParseFlags(t *testing.T) {
	t.Parallel()

	opts, err := parseFlags([]string{"-api", "http://portal:8080", "-interval", "10s", "-league", "ethiopian-premier-league", "-q", "george"}, io.Discard)
	if err != nil {
		t.Fatalf("parse flags: %v", err)
	}
	if opts.Interval != 10*time.Second || opts.League != "ethiopian-premier-league" || opts.Query != "george" || opts.API != "http://portal:8080" {
		t.Fatalf("unexpected options: %+v", opts)
	}

	if _, err := parseFlags([]string{"-interval", "15s"}, io.Discard); err == nil {
		t.Fatalf("expected error for interval outside the allowed set")
	}
}

func TestRenderBoard(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	renderBoard(&buf, seededGroups(), time.Date(2025, 1, 1, 15, 4, 5, 0, time.UTC))
	out := buf.String()
	for _, want := range []string{"15:04:05", "Ethiopian Premier League (1)", "45+2'", "STG", " 2 - 1 ", "Fasil Kenema"} {
		if !strings.Contains(out, want) {
			t.Fatalf("board missing %q:\n%s", want, out)
		}
	}

	buf.Reset()
	renderBoard(&buf, nil, time.Now())
	if !strings.Contains(buf.String(), "no live matches") {
		t.Fatalf("expected empty board message, got %q", buf.String())
	}
}

func TestTruncate(t *testing.T) {
	t.Parallel()

	if got := truncate("Ethiopia Bunna", 8); got != "Ethiopi~" {
		t.Fatalf("truncate=%q", got)
	}
	if got := truncate("STG", 8); got != "STG" {
		t.Fatalf("truncate=%q", got)
	}
}

func TestRun_ManualRefreshAndCleanStop(t *testing.T) {
	t.Parallel()

	lister := &fakeLister{groups: seededGroups()}
	out := &syncBuffer{}
	in, cmds := io.Pipe()
	defer cmds.Close()

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() {
		done <- run(ctx, options{Interval: 60 * time.Second}, lister, in, out, logging.NewNop())
	}()

	waitFor(t, func() bool { return lister.calls.Load() == 1 })

	if _, err := cmds.Write([]byte("r\n")); err != nil {
		t.Fatalf("write command: %v", err)
	}
	waitFor(t, func() bool { return lister.calls.Load() == 2 })

	if _, err := cmds.Write([]byte("5s\n")); err != nil {
		t.Fatalf("write command: %v", err)
	}
	waitFor(t, func() bool { return strings.Contains(out.String(), "unknown command") })

	cancel()
	select {
	case err := <-done:
		if err != nil {
			t.Fatalf("run: %v", err)
		}
	case <-time.After(2 * time.Second):
		t.Fatalf("run did not stop after cancel")
	}

	calls := lister.calls.Load()
	time.Sleep(50 * time.Millisecond)
	if lister.calls.Load() != calls {
		t.Fatalf("no requests expected after stop")
	}
	if !strings.Contains(out.String(), "STG") {
		t.Fatalf("board not rendered: %s", out.String())
	}
}

func TestReadCommands_WaitsForBoardToFinish(t *testing.T) {
	t.Parallel()

	out := &syncBuffer{}
	con := &console{w: out}

	rendering := make(chan struct{})
	release := make(chan struct{})
	boardDone := make(chan struct{})
	go func() {
		defer close(boardDone)
		con.print(func(w io.Writer) {
			io.WriteString(w, "board start\n")
			close(rendering)
			<-release
			io.WriteString(w, "board end\n")
		})
	}()
	<-rendering

	cmdsDone := make(chan struct{})
	go func() {
		defer close(cmdsDone)
		readCommands(strings.NewReader("5s\n"), nil, con)
	}()

	time.Sleep(50 * time.Millisecond)
	if strings.Contains(out.String(), "unknown command") {
		t.Fatalf("command feedback written mid-board: %q", out.String())
	}
	close(release)
	<-boardDone
	<-cmdsDone

	want := "board start\nboard end\nunknown command \"5s\" (use r, 10s, 30s or 60s)\n"
	if got := out.String(); got != want {
		t.Fatalf("unexpected output:\nwant: %q\ngot:  %q", want, got)
	}
}
