package usecase

import (
	"context"

	"github.com/riskibarqy/league-portal/internal/platform/tracing"
	"go.opentelemetry.io/otel/trace"
)

var usecaseTracing = tracing.NewScope("league-portal/internal/usecase", "usecase.")

func startUsecaseSpan(ctx context.Context, name string) (context.Context, trace.Span) {
	return usecaseTracing.Start(ctx, name)
}
