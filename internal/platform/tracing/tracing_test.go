package tracing

import (
	"context"
	"testing"

	"go.opentelemetry.io/otel/trace"
)

func parentContext() context.Context {
	sc := trace.NewSpanContext(trace.SpanContextConfig{
		TraceID:    trace.TraceID{0x0a},
		SpanID:     trace.SpanID{0x0b},
		TraceFlags: trace.FlagsSampled,
	})
	return trace.ContextWithSpanContext(context.Background(), sc)
}

func TestScope_Traces(t *testing.T) {
	t.Parallel()

	scope := NewScope("league-portal/test", "httpapi.Handler.")
	cases := map[string]bool{
		"httpapi.Handler.GetMatchPage": true,
		"httpapi.RequestLogging":       false,
		"httpapi.writeError":           false,
		"   ":                          false,
	}
	for name, want := range cases {
		if got := scope.Traces(name); got != want {
			t.Fatalf("Traces(%q)=%v, want %v", name, got, want)
		}
	}
}

func TestScope_StartWithoutParentIsNoop(t *testing.T) {
	t.Parallel()

	scope := NewScope("league-portal/test", "usecase.")
	ctx := context.Background()
	got, span := scope.Start(ctx, "usecase.LiveService.ListLive")
	defer span.End()

	if got != ctx {
		t.Fatalf("context must be returned unchanged without a parent span")
	}
	if span.SpanContext().IsValid() {
		t.Fatalf("expected noop span")
	}
}

func TestScope_StartOutOfScopeKeepsContext(t *testing.T) {
	t.Parallel()

	scope := NewScope("league-portal/test", "usecase.")
	ctx := parentContext()
	got, span := scope.Start(ctx, "repository.List")
	defer span.End()

	if got != ctx {
		t.Fatalf("out-of-scope names must not start spans")
	}
}

func TestScope_StartBelowParentKeepsTrace(t *testing.T) {
	t.Parallel()

	scope := NewScope("league-portal/test", "usecase.")
	ctx := parentContext()
	got, span := scope.Start(ctx, "usecase.MatchService.UpdateStatus")
	defer span.End()

	if got == ctx {
		t.Fatalf("expected a derived context for an in-scope span")
	}
	if trace.SpanContextFromContext(got).TraceID() != trace.SpanContextFromContext(ctx).TraceID() {
		t.Fatalf("child span must stay on the parent trace")
	}
}
