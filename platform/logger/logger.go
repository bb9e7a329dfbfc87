package logger

import (
	"context"
	"fmt"
	"os"
	"sync"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

type requestIDKey struct{}

var (
	mu     sync.RWMutex
	global = &logger{zap: zap.NewNop()}
)

type logger struct {
	zap *zap.Logger
}

// Init replaces the global logger. level is one of debug, info, warn, error.
func Init(level string, asJSON bool) error {
	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		return fmt.Errorf("logger.Init: parse level %q: %w", level, err)
	}

	encCfg := zap.NewProductionEncoderConfig()
	encCfg.TimeKey = "ts"
	encCfg.EncodeTime = zapcore.ISO8601TimeEncoder

	var enc zapcore.Encoder
	if asJSON {
		enc = zapcore.NewJSONEncoder(encCfg)
	} else {
		encCfg.EncodeLevel = zapcore.CapitalColorLevelEncoder
		enc = zapcore.NewConsoleEncoder(encCfg)
	}

	core := zapcore.NewCore(enc, zapcore.AddSync(os.Stdout), zap.NewAtomicLevelAt(lvl))

	mu.Lock()
	global = &logger{zap: zap.New(core, zap.AddCaller(), zap.AddCallerSkip(1))}
	mu.Unlock()

	return nil
}

func SetNopLogger() {
	mu.Lock()
	global = &logger{zap: zap.NewNop()}
	mu.Unlock()
}

func L() *logger {
	mu.RLock()
	defer mu.RUnlock()
	return global
}

func With(fields ...Field) *logger {
	return &logger{zap: L().zap.With(fields...)}
}

func Sync() error { return L().zap.Sync() }

// WithRequestID stores the request id so that every entry logged with ctx carries it.
func WithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, requestIDKey{}, id)
}

func RequestID(ctx context.Context) string {
	if ctx == nil {
		return ""
	}
	id, _ := ctx.Value(requestIDKey{}).(string)
	return id
}

func (l *logger) With(fields ...Field) *logger {
	return &logger{zap: l.zap.With(fields...)}
}

func (l *logger) Debug(ctx context.Context, msg string, fields ...Field) {
	l.zap.Debug(msg, withContext(ctx, fields)...)
}

func (l *logger) Info(ctx context.Context, msg string, fields ...Field) {
	l.zap.Info(msg, withContext(ctx, fields)...)
}

func (l *logger) Warn(ctx context.Context, msg string, fields ...Field) {
	l.zap.Warn(msg, withContext(ctx, fields)...)
}

func (l *logger) Error(ctx context.Context, msg string, fields ...Field) {
	l.zap.Error(msg, withContext(ctx, fields)...)
}

func Debug(ctx context.Context, msg string, fields ...Field) { L().Debug(ctx, msg, fields...) }
func Info(ctx context.Context, msg string, fields ...Field)  { L().Info(ctx, msg, fields...) }
func Warn(ctx context.Context, msg string, fields ...Field)  { L().Warn(ctx, msg, fields...) }
func Error(ctx context.Context, msg string, fields ...Field) { L().Error(ctx, msg, fields...) }

func withContext(ctx context.Context, fields []Field) []Field {
	if id := RequestID(ctx); id != "" {
		return append(fields, zap.String("request_id", id))
	}
	return fields
}

// NoopLogger satisfies the Info/Error logger interfaces and drops everything.
type NoopLogger struct{}

func (NoopLogger) Info(context.Context, string, ...Field)  {}
func (NoopLogger) Error(context.Context, string, ...Field) {}
