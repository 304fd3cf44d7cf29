package observability

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	otellog "go.opentelemetry.io/otel/log"
	"go.uber.org/zap/zapcore"
)

func TestIsQuietAccessLog(t *testing.T) {
	assert.True(t, isQuietAccessLog("http request", []any{"method", "GET", "path", "/healthz"}))
	assert.True(t, isQuietAccessLog("http request", []any{"path", "/metrics"}))
	assert.False(t, isQuietAccessLog("http request", []any{"path", "/v1/champions/overview"}))
	assert.False(t, isQuietAccessLog("edition winners failed", []any{"path", "/healthz"}))
	assert.False(t, isQuietAccessLog("http request", []any{"status", 200}))
}

func TestAttributesOf(t *testing.T) {
	attrs := attributesOf([]any{"player_id", int64(7), "limit", uint16(10), 3, "x", "error", errors.New("tied final"), "dangling"})
	require.Len(t, attrs, 5)

	assert.Equal(t, "player_id", attrs[0].Key)
	assert.Equal(t, int64(7), attrs[0].Value.AsInt64())
	assert.Equal(t, int64(10), attrs[1].Value.AsInt64())
	assert.Equal(t, "arg_2", attrs[2].Key)
	assert.Equal(t, "tied final", attrs[3].Value.AsString())
	assert.Equal(t, otellog.KindEmpty, attrs[4].Value.Kind())
}

func TestValueOf(t *testing.T) {
	v := valueOf(map[string]any{"wins": 2, "editions": []int{1, 2}}, 0)
	require.Equal(t, otellog.KindMap, v.Kind())
	assert.Len(t, v.AsMap(), 2)

	assert.Equal(t, "1.5s", valueOf(1500*time.Millisecond, 0).AsString())
	assert.Equal(t, otellog.KindEmpty, valueOf((*int)(nil), 0).Kind())
	assert.Equal(t, 2.5, valueOf(float32(2.5), 0).AsFloat64())
	assert.Equal(t, otellog.KindString, valueOf(uint64(1<<63), 0).Kind())
	assert.Equal(t, otellog.KindBytes, valueOf([]byte("ab"), 0).Kind())
}

func TestSeverityOf(t *testing.T) {
	cases := map[zapcore.Level]otellog.Severity{
		zapcore.DebugLevel: otellog.SeverityDebug,
		zapcore.InfoLevel:  otellog.SeverityInfo,
		zapcore.WarnLevel:  otellog.SeverityWarn,
		zapcore.ErrorLevel: otellog.SeverityError,
		zapcore.FatalLevel: otellog.SeverityFatal,
	}
	for level, want := range cases {
		assert.Equal(t, want, severityOf(level), level.String())
	}
}
