package httpapi

import (
	"fmt"
	"net/http"

	"github.com/riskibarqy/league-portal/internal/platform/logging"
)

// RouterConfig carries the transport settings the router needs beyond the handler.
type RouterConfig struct {
	CORSAllowedOrigins []string
	AdminToken         string
	MediaDir           string
}

func NewRouter(handler *Handler, logger *logging.Logger, cfg RouterConfig) http.Handler {
	if logger == nil {
		logger = logging.Default()
	}

	mux := http.NewServeMux()
	registerSystemRoutes(mux, handler, cfg.MediaDir)
	registerPublicRoutes(mux, handler)
	registerLiveRoutes(mux, handler)
	registerCMSRoutes(mux, handler, cfg.AdminToken)

	return RequestTracing(RequestLogging(logger, CORS(cfg.CORSAllowedOrigins, recoverPanic(logger, mux))))
}

func recoverPanic(logger *logging.Logger, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if rec := recover(); rec != nil {
				logger.ErrorContext(r.Context(), "panic recovered", "panic", rec, "path", r.URL.Path)
				writeError(r.Context(), w, fmt.Errorf("panic: %v", rec))
			}
		}()
		next.ServeHTTP(w, r)
	})
}
