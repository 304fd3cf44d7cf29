package httpapi

import (
	"net/http"

	"github.com/riskibarqy/galero/internal/platform/id"
	"github.com/riskibarqy/galero/internal/platform/logging"
)

type RouterOptions struct {
	Logger             *logging.Logger
	CORSAllowedOrigins []string
	RequestIDs         id.Generator
	// Observer and MetricsHandler are optional; /metrics is only mounted
	// when MetricsHandler is set.
	Observer       HTTPObserver
	MetricsHandler http.Handler
}

func NewRouter(handler *Handler, opts RouterOptions) http.Handler {
	logger := opts.Logger
	if logger == nil {
		logger = logging.Default()
	}

	mux := http.NewServeMux()
	registerSystemRoutes(mux, handler, opts.MetricsHandler)
	registerChampionRoutes(mux, handler)
	registerPlayerRoutes(mux, handler)
	registerEditionRoutes(mux, handler)

	var routed http.Handler = RequestMetrics(opts.Observer, mux)
	routed = recoverPanic(logger, routed)
	routed = CORS(opts.CORSAllowedOrigins, routed)
	routed = RequestLogging(logger, routed)
	routed = RequestID(opts.RequestIDs, routed)
	return RequestTracing(routed)
}
