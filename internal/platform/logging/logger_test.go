package logging

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	sonic "github.com/bytedance/sonic"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
)

func TestParseLevel(t *testing.T) {
	t.Parallel()

	cases := map[string]Level{
		"debug":   LevelDebug,
		" WARN ":  LevelWarn,
		"warning": LevelWarn,
		"error":   LevelError,
		"":        LevelInfo,
		"verbose": LevelInfo,
	}
	for raw, want := range cases {
		if got := ParseLevel(raw); got != want {
			t.Fatalf("ParseLevel(%q)=%s, want %s", raw, got, want)
		}
	}
}

func TestLogger_InfoContextAddsTraceFields(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	logger := New(LevelInfo, &buf)

	spanCtx := trace.NewSpanContext(trace.SpanContextConfig{
		TraceID:    trace.TraceID{0x01, 0x02},
		SpanID:     trace.SpanID{0x03},
		TraceFlags: trace.FlagsSampled,
	})
	ctx := trace.ContextWithSpanContext(context.Background(), spanCtx)

	logger.InfoContext(ctx, "live refresh applied", "sequence", 7, "error", errors.New("boom"))

	var line map[string]any
	if err := sonic.Unmarshal(bytes.TrimSpace(buf.Bytes()), &line); err != nil {
		t.Fatalf("decode log line %q: %v", buf.String(), err)
	}
	if line["msg"] != "live refresh applied" {
		t.Fatalf("unexpected msg: %v", line["msg"])
	}
	if line["trace_id"] != spanCtx.TraceID().String() {
		t.Fatalf("unexpected trace_id: %v", line["trace_id"])
	}
	if line["error"] != "boom" {
		t.Fatalf("unexpected error field: %v", line["error"])
	}
}

func TestLogger_RespectsLevel(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	logger := New(LevelWarn, &buf)
	logger.Info("hidden")
	logger.Warn("shown", "dangling")

	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Fatalf("info line should be filtered: %s", out)
	}
	if !strings.Contains(out, "shown") || !strings.Contains(out, "dangling") {
		t.Fatalf("warn line missing: %s", out)
	}
}

func TestNilLoggerFallsBackToDefault(t *testing.T) {
	t.Parallel()

	var logger *Logger
	logger.Info("no panic")
	if logger.With("k", "v") == nil {
		t.Fatalf("With on nil logger should return a usable logger")
	}
}

func TestLogger_SetLevelAppliesToDerivedLoggers(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	root := New(LevelError, &buf)
	child := root.Named("livefeed").With("component", "broadcast")

	child.Info("before")
	root.SetLevel(LevelInfo)
	child.Info("after", "interval", 30*time.Second, zap.Int("subscribers", 2))

	out := buf.String()
	if strings.Contains(out, "before") {
		t.Fatalf("info must be filtered before SetLevel: %s", out)
	}
	for _, want := range []string{`"after"`, `"logger":"livefeed"`, `"interval":"30s"`, `"subscribers":2`, `"component":"broadcast"`} {
		if !strings.Contains(out, want) {
			t.Fatalf("missing %s in %s", want, out)
		}
	}
	if !child.Enabled(LevelInfo) {
		t.Fatalf("child should report info enabled")
	}
}
