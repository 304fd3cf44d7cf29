package observability

import (
	"context"
	"fmt"
	"reflect"
	"strconv"
	"strings"
	"time"

	"github.com/riskibarqy/galero/internal/platform/logging"
	otellog "go.opentelemetry.io/otel/log"
	otelglobal "go.opentelemetry.io/otel/log/global"
	"go.uber.org/zap/zapcore"
)

const logScope = "github.com/riskibarqy/galero/internal/platform/logging"

// Access log lines for these paths stay local.
var quietPaths = map[string]bool{
	"/healthz": true,
	"/metrics": true,
}

// logExporter forwards application log records to the global OTel logger
// provider configured by uptrace.
type logExporter struct {
	logger otellog.Logger
}

func newLogExporter(version string) *logExporter {
	return &logExporter{
		logger: otelglobal.Logger(logScope, otellog.WithInstrumentationVersion(version)),
	}
}

func (e *logExporter) mirror(ctx context.Context, level logging.Level, msg string, args ...any) {
	if isQuietAccessLog(msg, args) {
		return
	}
	if ctx == nil {
		ctx = context.Background()
	}
	sev := severityOf(level)
	if !e.logger.Enabled(ctx, otellog.EnabledParameters{Severity: sev, EventName: msg}) {
		return
	}

	var rec otellog.Record
	ts := time.Now().UTC()
	rec.SetTimestamp(ts)
	rec.SetObservedTimestamp(ts)
	rec.SetSeverity(sev)
	rec.SetSeverityText(strings.ToUpper(level.String()))
	rec.SetEventName(msg)
	rec.SetBody(otellog.StringValue(msg))
	rec.AddAttributes(attributesOf(args)...)
	e.logger.Emit(ctx, rec)
}

func isQuietAccessLog(msg string, args []any) bool {
	if msg != "http request" {
		return false
	}
	for i := 0; i+1 < len(args); i += 2 {
		if args[i] == "path" {
			path, _ := args[i+1].(string)
			return quietPaths[path]
		}
	}
	return false
}

// attributesOf turns zap-style alternating key/value args into attributes.
// A trailing key without a value becomes an empty attribute.
func attributesOf(args []any) []otellog.KeyValue {
	out := make([]otellog.KeyValue, 0, (len(args)+1)/2)
	for i := 0; i < len(args); i += 2 {
		key, _ := args[i].(string)
		if strings.TrimSpace(key) == "" {
			key = "arg_" + strconv.Itoa(i/2)
		}
		if i+1 == len(args) {
			out = append(out, otellog.Empty(key))
			break
		}
		out = append(out, otellog.KeyValue{Key: key, Value: valueOf(args[i+1], 0)})
	}
	return out
}

func severityOf(level zapcore.Level) otellog.Severity {
	switch {
	case level <= zapcore.DebugLevel:
		return otellog.SeverityDebug
	case level == zapcore.InfoLevel:
		return otellog.SeverityInfo
	case level == zapcore.WarnLevel:
		return otellog.SeverityWarn
	case level == zapcore.ErrorLevel:
		return otellog.SeverityError
	}
	return otellog.SeverityFatal
}

const maxValueDepth = 3

func valueOf(v any, depth int) otellog.Value {
	switch x := v.(type) {
	case nil:
		return otellog.Value{}
	case string:
		return otellog.StringValue(x)
	case bool:
		return otellog.BoolValue(x)
	case time.Duration:
		return otellog.StringValue(x.String())
	case time.Time:
		return otellog.StringValue(x.UTC().Format(time.RFC3339Nano))
	case error:
		return otellog.StringValue(x.Error())
	case fmt.Stringer:
		return otellog.StringValue(x.String())
	}

	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return otellog.Int64Value(rv.Int())
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		if u := rv.Uint(); u <= 1<<63-1 {
			return otellog.Int64Value(int64(u))
		}
		return otellog.StringValue(strconv.FormatUint(rv.Uint(), 10))
	case reflect.Float32, reflect.Float64:
		return otellog.Float64Value(rv.Float())
	}

	if depth >= maxValueDepth {
		return otellog.StringValue(fmt.Sprint(v))
	}
	switch rv.Kind() {
	case reflect.Pointer, reflect.Interface:
		if rv.IsNil() {
			return otellog.Value{}
		}
		return valueOf(rv.Elem().Interface(), depth+1)
	case reflect.Slice, reflect.Array:
		if b, ok := v.([]byte); ok {
			return otellog.BytesValue(append([]byte(nil), b...))
		}
		items := make([]otellog.Value, rv.Len())
		for i := range items {
			items[i] = valueOf(rv.Index(i).Interface(), depth+1)
		}
		return otellog.SliceValue(items...)
	case reflect.Map:
		if rv.Type().Key().Kind() == reflect.String {
			kvs := make([]otellog.KeyValue, 0, rv.Len())
			iter := rv.MapRange()
			for iter.Next() {
				kvs = append(kvs, otellog.KeyValue{Key: iter.Key().String(), Value: valueOf(iter.Value().Interface(), depth+1)})
			}
			return otellog.MapValue(kvs...)
		}
	}
	return otellog.StringValue(fmt.Sprint(v))
}
