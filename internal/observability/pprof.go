package observability

import (
	"context"
	"net/http"
	"net/http/pprof"
	"time"

	"github.com/riskibarqy/galero/internal/config"
	"github.com/riskibarqy/galero/internal/platform/logging"
)

var pprofRoutes = map[string]http.HandlerFunc{
	"/debug/pprof/":        pprof.Index,
	"/debug/pprof/cmdline": pprof.Cmdline,
	"/debug/pprof/profile": pprof.Profile,
	"/debug/pprof/symbol":  pprof.Symbol,
	"/debug/pprof/trace":   pprof.Trace,
}

// NewPprofServer builds the debug listener, or returns nil when PPROF_ENABLED
// is off. It is served on its own address so profiling never shares the
// public mux.
func NewPprofServer(cfg config.Config, logger *logging.Logger) *http.Server {
	if logger == nil {
		logger = logging.Default()
	}
	if !cfg.PprofEnabled {
		logger.Info("pprof disabled", "reason", "PPROF_ENABLED=false")
		return nil
	}

	mux := http.NewServeMux()
	for pattern, h := range pprofRoutes {
		mux.Handle("GET "+pattern, h)
	}
	return &http.Server{
		Addr:              cfg.PprofAddr,
		Handler:           mux,
		ReadHeaderTimeout: 5 * time.Second,
	}
}

// StopPprofServer is a no-op for a nil server.
func StopPprofServer(srv *http.Server, logger *logging.Logger, timeout time.Duration) error {
	if srv == nil {
		return nil
	}
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		return err
	}
	if logger != nil {
		logger.Info("pprof server stopped")
	}
	return nil
}
