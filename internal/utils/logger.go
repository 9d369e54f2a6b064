package utils

import (
	"context"
	"io"
	"os"
	"strings"
	"sync"

	"github.com/rs/zerolog"
)

var (
	logMu sync.RWMutex
	zlog  = newLogger("", os.Stdout)
)

func newLogger(env string, w io.Writer) zerolog.Logger {
	logger := zerolog.New(w).With().Timestamp().Logger()
	switch strings.ToLower(strings.TrimSpace(env)) {
	case "production", "release":
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	default:
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}
	return logger
}

// InitLogger configures the shared logger for the given environment.
func InitLogger(env string) {
	logMu.Lock()
	defer logMu.Unlock()
	zlog = newLogger(env, os.Stdout)
}

// SetLogOutput redirects log output, mainly for tests.
func SetLogOutput(w io.Writer) {
	logMu.Lock()
	defer logMu.Unlock()
	zlog = zlog.Output(w)
}

// LogEvent emits a structured log line tagged with module/action/request_id.
// Avoid logging sensitive payload; message should be summarized.
func LogEvent(requestID, module, action, message string) {
	logMu.RLock()
	defer logMu.RUnlock()
	zlog.Info().
		Str("module", strings.ToUpper(module)).
		Str("action", action).
		Str("request_id", strings.TrimSpace(requestID)).
		Msg(message)
}

// LogError mirrors LogEvent at error level, attaching err when present.
func LogError(requestID, module, action string, err error) {
	logMu.RLock()
	defer logMu.RUnlock()
	ev := zlog.Error().
		Str("module", strings.ToUpper(module)).
		Str("action", action).
		Str("request_id", strings.TrimSpace(requestID))
	if err != nil {
		ev = ev.Err(err)
	}
	ev.Msg("operation failed")
}

// AccessLog writes the per-request HTTP log line used by the middleware.
func AccessLog(requestID, method, path string, status int, latencyMS float64, clientIP string) {
	logMu.RLock()
	defer logMu.RUnlock()
	zlog.Info().
		Str("module", "HTTP").
		Str("request_id", requestID).
		Str("method", method).
		Str("path", path).
		Int("status", status).
		Float64("latency_ms", latencyMS).
		Str("ip", clientIP).
		Msg("request")
}

type requestIDCtxKey struct{}

// WithRequestID stores a request id on ctx so work detached from the HTTP
// layer can still tag its log lines.
func WithRequestID(ctx context.Context, rid string) context.Context {
	return context.WithValue(ctx, requestIDCtxKey{}, rid)
}

// RequestIDFrom reads the request id stored by WithRequestID, or "".
func RequestIDFrom(ctx context.Context) string {
	if ctx == nil {
		return ""
	}
	if s, ok := ctx.Value(requestIDCtxKey{}).(string); ok {
		return s
	}
	return ""
}
