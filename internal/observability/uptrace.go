package observability

import (
	"context"
	"strings"

	"github.com/riskibarqy/galero/internal/config"
	"github.com/riskibarqy/galero/internal/platform/logging"
	"github.com/uptrace/uptrace-go/uptrace"
)

// ShutdownFunc flushes exporters started by InitUptrace.
type ShutdownFunc func(context.Context) error

func noopShutdown(context.Context) error { return nil }

// uptraceDisabledReason names the setting that keeps export off, or "" when
// export should start.
func uptraceDisabledReason(cfg config.Config) string {
	switch {
	case !cfg.UptraceEnabled:
		return "UPTRACE_ENABLED=false"
	case strings.TrimSpace(cfg.UptraceDSN) == "":
		return "UPTRACE_DSN empty"
	}
	return ""
}

// InitUptrace installs the global trace, metric and (optionally) log
// providers and points the logging mirror at the OTel log pipeline.
func InitUptrace(cfg config.Config, logger *logging.Logger) (ShutdownFunc, error) {
	if logger == nil {
		logger = logging.Default()
	}
	logging.SetMirror(nil)

	if reason := uptraceDisabledReason(cfg); reason != "" {
		logger.Info("uptrace disabled", "reason", reason)
		return noopShutdown, nil
	}

	uptrace.ConfigureOpentelemetry(
		uptrace.WithDSN(cfg.UptraceDSN),
		uptrace.WithServiceName(cfg.ServiceName),
		uptrace.WithServiceVersion(cfg.ServiceVersion),
		uptrace.WithDeploymentEnvironment(cfg.AppEnv),
		uptrace.WithLoggingEnabled(cfg.UptraceLogsEnabled),
	)
	if cfg.UptraceLogsEnabled {
		logging.SetMirror(newLogExporter(cfg.ServiceVersion).mirror)
	}
	logger.Info("uptrace enabled", "environment", cfg.AppEnv, "logs", cfg.UptraceLogsEnabled)

	return func(ctx context.Context) error {
		logging.SetMirror(nil)
		return uptrace.Shutdown(ctx)
	}, nil
}
