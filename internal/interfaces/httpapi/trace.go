package httpapi

import (
	"context"

	"github.com/riskibarqy/league-portal/internal/platform/tracing"
	"go.opentelemetry.io/otel/trace"
)

// Middleware names are outside the scope on purpose: otelhttp already wraps them.
var handlerTracing = tracing.NewScope("league-portal/internal/interfaces/httpapi", "httpapi.Handler.")

func startSpan(ctx context.Context, name string) (context.Context, trace.Span) {
	return handlerTracing.Start(ctx, name)
}
