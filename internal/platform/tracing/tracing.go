// Package tracing starts child spans for layers below the HTTP middleware.
package tracing

import (
	"context"
	"strings"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

var noopSpan = trace.SpanFromContext(context.Background())

// Scope starts spans for one package. Only names carrying the prefix become
// spans, and only below an existing span: filtered routes such as /healthz
// have no parent and must not produce root spans from helpers.
type Scope struct {
	tracer trace.Tracer
	prefix string
}

func NewScope(instrumentation, prefix string) Scope {
	return Scope{tracer: otel.Tracer(instrumentation), prefix: prefix}
}

func (s Scope) Start(ctx context.Context, name string, attrs ...attribute.KeyValue) (context.Context, trace.Span) {
	if !s.Traces(name) {
		return ctx, noopSpan
	}
	if !trace.SpanFromContext(ctx).SpanContext().IsValid() {
		return ctx, noopSpan
	}
	if len(attrs) == 0 {
		return s.tracer.Start(ctx, name)
	}
	return s.tracer.Start(ctx, name, trace.WithAttributes(attrs...))
}

// Traces reports whether name is in this scope.
func (s Scope) Traces(name string) bool {
	name = strings.TrimSpace(name)
	return name != "" && strings.HasPrefix(name, s.prefix)
}
