package observability

import (
	"errors"
	"net"
	"net/http"
	"net/http/pprof"
	"time"

	crerr "github.com/cockroachdb/errors"
	"github.com/riskibarqy/league-portal/internal/config"
	"github.com/riskibarqy/league-portal/internal/platform/logging"
)

type debugServer struct {
	srv  *http.Server
	addr string
}

// startDebugServer binds the pprof listener before returning so a busy port
// fails startup instead of a background goroutine.
func startDebugServer(cfg config.Config, logger *logging.Logger) (*debugServer, error) {
	if !cfg.PprofEnabled {
		logger.Info("pprof disabled", "reason", "PPROF_ENABLED=false")
		return nil, nil
	}

	ln, err := net.Listen("tcp", cfg.PprofAddr)
	if err != nil {
		return nil, crerr.Wrapf(err, "listen pprof on %s", cfg.PprofAddr)
	}

	mux := http.NewServeMux()
	mux.HandleFunc("GET /debug/pprof/", pprof.Index)
	mux.HandleFunc("GET /debug/pprof/cmdline", pprof.Cmdline)
	mux.HandleFunc("GET /debug/pprof/profile", pprof.Profile)
	mux.HandleFunc("GET /debug/pprof/symbol", pprof.Symbol)
	mux.HandleFunc("GET /debug/pprof/trace", pprof.Trace)

	d := &debugServer{
		srv: &http.Server{
			Handler:           mux,
			ReadHeaderTimeout: 5 * time.Second,
		},
		addr: ln.Addr().String(),
	}

	go func() {
		if err := d.srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("pprof server failed", "error", err)
		}
	}()
	logger.Info("pprof listening", "addr", d.addr)

	return d, nil
}
