package observability

import (
	"context"

	"github.com/riskibarqy/league-portal/internal/config"
	"github.com/riskibarqy/league-portal/internal/platform/logging"
	"github.com/uptrace/uptrace-go/uptrace"
	"go.opentelemetry.io/otel/attribute"
)

// startTracing installs the global otel providers exporting to Uptrace. The
// returned func flushes and shuts them down.
func startTracing(cfg config.Config, logger *logging.Logger) func(context.Context) error {
	if !cfg.UptraceEnabled {
		logger.Info("tracing export disabled", "reason", "UPTRACE_ENABLED=false")
		return func(context.Context) error { return nil }
	}

	uptrace.ConfigureOpentelemetry(
		uptrace.WithDSN(cfg.UptraceDSN),
		uptrace.WithServiceName(cfg.ServiceName),
		uptrace.WithServiceVersion(cfg.ServiceVersion),
		uptrace.WithDeploymentEnvironment(cfg.AppEnv),
		uptrace.WithResourceAttributes(
			attribute.String("live.poll_interval", cfg.LivePollInterval.String()),
			attribute.Bool("db.enabled", cfg.DBEnabled),
		),
	)
	logger.Info("tracing export enabled", "service_version", cfg.ServiceVersion)

	return uptrace.Shutdown
}
