package httpapi

import (
	"strings"

	"github.com/riskibarqy/galero/internal/platform/tracing"
)

var tracer = tracing.New("github.com/riskibarqy/galero/internal/interfaces/httpapi", "httpapi.Handler.")

// untracedPaths are served without a server span; handler spans below them
// are skipped as well.
var untracedPaths = map[string]bool{
	"/healthz": true,
	"/health":  true,
	"/livez":   true,
	"/readyz":  true,
	"/metrics": true,
}

func shouldTraceRequest(path string) bool {
	return !untracedPaths[strings.ToLower(strings.TrimSpace(path))]
}
