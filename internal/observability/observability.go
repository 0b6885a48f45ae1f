// Package observability starts the process-wide tracing, profiling and debug
// endpoints and tears them down in reverse order.
package observability

import (
	"context"
	"errors"

	"github.com/riskibarqy/league-portal/internal/config"
	"github.com/riskibarqy/league-portal/internal/platform/logging"
)

type Stack struct {
	logger       *logging.Logger
	flushTraces  func(context.Context) error
	stopProfiler func() error
	debug        *debugServer
}

func Start(cfg config.Config, logger *logging.Logger) (*Stack, error) {
	if logger == nil {
		logger = logging.Default()
	}

	s := &Stack{
		logger:       logger,
		flushTraces:  startTracing(cfg, logger),
		stopProfiler: func() error { return nil },
	}

	stop, err := startProfiler(cfg, logger)
	if err != nil {
		_ = s.flushTraces(context.Background())
		return nil, err
	}
	s.stopProfiler = stop

	debug, err := startDebugServer(cfg, logger)
	if err != nil {
		_ = s.stopProfiler()
		_ = s.flushTraces(context.Background())
		return nil, err
	}
	s.debug = debug

	return s, nil
}

// DebugAddr is the bound pprof address, or "" when pprof is disabled.
func (s *Stack) DebugAddr() string {
	if s.debug == nil {
		return ""
	}
	return s.debug.addr
}

// Shutdown stops pprof, then the profiler, then flushes pending spans.
func (s *Stack) Shutdown(ctx context.Context) error {
	var errs []error
	if s.debug != nil {
		if err := s.debug.srv.Shutdown(ctx); err != nil {
			errs = append(errs, err)
		}
	}
	if err := s.stopProfiler(); err != nil {
		errs = append(errs, err)
	}
	if err := s.flushTraces(ctx); err != nil {
		errs = append(errs, err)
	}
	return errors.Join(errs...)
}
