// Package logging wraps zap behind a key/value API. Records written through
// the *Context methods carry the request id and active trace ids, and every
// record can be mirrored to an external sink with SetMirror.
package logging

import (
	"context"
	"io"
	"os"
	"strings"
	"sync/atomic"

	crerr "github.com/cockroachdb/errors"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

type Level = zapcore.Level

const (
	LevelDebug = zapcore.DebugLevel
	LevelInfo  = zapcore.InfoLevel
	LevelWarn  = zapcore.WarnLevel
	LevelError = zapcore.ErrorLevel
)

type Format string

const (
	FormatJSON    Format = "json"
	FormatConsole Format = "console"
)

// Logger is safe for concurrent use. Loggers derived via With or Named
// share the Sync latch of their root.
type Logger struct {
	zap    *zap.Logger
	synced *atomic.Bool
}

// MirrorFunc receives each record after it passes the level check.
type MirrorFunc func(ctx context.Context, level Level, msg string, args ...any)

var (
	defaultLogger atomic.Pointer[Logger]
	mirror        atomic.Pointer[MirrorFunc]
)

func init() { defaultLogger.Store(NewNop()) }

// SetMirror installs fn process-wide; nil removes it.
func SetMirror(fn MirrorFunc) {
	if fn == nil {
		mirror.Store(nil)
		return
	}
	mirror.Store(&fn)
}

// ParseLevel accepts zap level names; blank means info.
func ParseLevel(raw string) (Level, error) {
	raw = strings.ToLower(strings.TrimSpace(raw))
	if raw == "" {
		return LevelInfo, nil
	}
	level, err := zapcore.ParseLevel(raw)
	if err != nil {
		return LevelInfo, crerr.Wrapf(err, "parse log level %q", raw)
	}
	return level, nil
}

// FormatForEnv picks the console encoder for local development only.
func FormatForEnv(appEnv string) Format {
	switch strings.ToLower(strings.TrimSpace(appEnv)) {
	case "dev", "development", "local":
		return FormatConsole
	}
	return FormatJSON
}

func New(level Level, format Format) *Logger {
	return build(level, format, zapcore.Lock(os.Stdout))
}

// NewWriter logs JSON to w; tests use it to inspect records.
func NewWriter(level Level, w io.Writer) *Logger {
	return build(level, FormatJSON, zapcore.AddSync(w))
}

func NewNop() *Logger {
	return wrap(zap.NewNop())
}

func build(level Level, format Format, out zapcore.WriteSyncer) *Logger {
	enc := zap.NewProductionEncoderConfig()
	enc.TimeKey = "time"
	enc.EncodeTime = zapcore.RFC3339NanoTimeEncoder
	enc.EncodeDuration = zapcore.StringDurationEncoder
	enc.EncodeLevel = zapcore.CapitalLevelEncoder

	var encoder zapcore.Encoder
	if format == FormatConsole {
		enc.EncodeLevel = zapcore.CapitalColorLevelEncoder
		encoder = zapcore.NewConsoleEncoder(enc)
	} else {
		encoder = zapcore.NewJSONEncoder(enc)
	}

	// Skip emit and the public level method so callers' lines are reported.
	return wrap(zap.New(
		zapcore.NewCore(encoder, out, level),
		zap.AddCaller(),
		zap.AddCallerSkip(2),
		zap.AddStacktrace(zapcore.ErrorLevel),
	))
}

func wrap(z *zap.Logger) *Logger {
	return &Logger{zap: z, synced: new(atomic.Bool)}
}

func Default() *Logger {
	if l := defaultLogger.Load(); l != nil {
		return l
	}
	return NewNop()
}

func SetDefault(l *Logger) {
	if l == nil {
		l = NewNop()
	}
	defaultLogger.Store(l)
}

// Sync flushes the root logger once; later calls are no-ops.
func (l *Logger) Sync() error {
	if l == nil || !l.synced.CompareAndSwap(false, true) {
		return nil
	}
	return l.zap.Sync()
}

func (l *Logger) With(args ...any) *Logger {
	if l == nil {
		return NewNop()
	}
	return &Logger{zap: l.zap.With(fields(args)...), synced: l.synced}
}

func (l *Logger) Named(name string) *Logger {
	if l == nil {
		return NewNop()
	}
	return &Logger{zap: l.zap.Named(name), synced: l.synced}
}

func (l *Logger) Debug(msg string, args ...any) { l.emit(context.Background(), LevelDebug, msg, args) }
func (l *Logger) Info(msg string, args ...any)  { l.emit(context.Background(), LevelInfo, msg, args) }
func (l *Logger) Warn(msg string, args ...any)  { l.emit(context.Background(), LevelWarn, msg, args) }
func (l *Logger) Error(msg string, args ...any) { l.emit(context.Background(), LevelError, msg, args) }

func (l *Logger) InfoContext(ctx context.Context, msg string, args ...any) {
	l.emit(ctx, LevelInfo, msg, args)
}

func (l *Logger) WarnContext(ctx context.Context, msg string, args ...any) {
	l.emit(ctx, LevelWarn, msg, args)
}

func (l *Logger) ErrorContext(ctx context.Context, msg string, args ...any) {
	l.emit(ctx, LevelError, msg, args)
}

func (l *Logger) emit(ctx context.Context, level Level, msg string, args []any) {
	if l == nil {
		l = Default()
	}
	ce := l.zap.Check(level, msg)
	if ce == nil {
		return
	}
	ce.Write(append(fields(args), requestFields(ctx)...)...)

	if fn := mirror.Load(); fn != nil {
		(*fn)(ctx, level, msg, args...)
	}
}

// fields converts alternating key/value args. Errors keep zap's error
// encoding; a non-string key becomes "arg" and a missing value null.
func fields(args []any) []zap.Field {
	out := make([]zap.Field, 0, (len(args)+1)/2+3)
	for i := 0; i < len(args); i += 2 {
		key, _ := args[i].(string)
		if key == "" {
			key = "arg"
		}
		var value any
		if i+1 < len(args) {
			value = args[i+1]
		}
		if err, ok := value.(error); ok {
			out = append(out, zap.NamedError(key, err))
		} else {
			out = append(out, zap.Any(key, value))
		}
	}
	return out
}
