// Package logging is the service logger: zap underneath, slog-style key/value
// calls on top, and otel trace ids stamped on every *Context call.
package logging

import (
	"context"
	"io"
	"os"
	"sync/atomic"
	"time"

	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// callerSkip hides the exported method and write from reported callers.
const callerSkip = 2

type Logger struct {
	zap    *zap.Logger
	level  zap.AtomicLevel
	synced *atomic.Bool
}

var fallback atomic.Pointer[Logger]

func init() {
	fallback.Store(NewNop())
}

// NewJSON logs JSON lines to stdout.
func NewJSON(level Level) *Logger {
	return New(level, os.Stdout)
}

func New(level Level, w io.Writer) *Logger {
	if w == nil {
		w = os.Stdout
	}

	enc := zap.NewProductionEncoderConfig()
	enc.TimeKey = "time"
	enc.MessageKey = "msg"
	enc.EncodeTime = zapcore.RFC3339NanoTimeEncoder
	enc.EncodeLevel = zapcore.CapitalLevelEncoder
	enc.EncodeDuration = zapcore.StringDurationEncoder

	atom := zap.NewAtomicLevelAt(level)
	core := zapcore.NewCore(zapcore.NewJSONEncoder(enc), zapcore.Lock(zapcore.AddSync(w)), atom)
	z := zap.New(core, zap.AddCaller(), zap.AddCallerSkip(callerSkip), zap.AddStacktrace(LevelError))

	return &Logger{zap: z, level: atom, synced: new(atomic.Bool)}
}

func NewNop() *Logger {
	return &Logger{zap: zap.NewNop(), level: zap.NewAtomicLevelAt(zapcore.InvalidLevel), synced: new(atomic.Bool)}
}

// Default is the process logger installed with SetDefault, or a no-op one.
func Default() *Logger {
	return fallback.Load()
}

func SetDefault(l *Logger) {
	if l == nil {
		l = NewNop()
	}
	fallback.Store(l)
}

// SetLevel changes the level of l and of every logger derived from it.
func (l *Logger) SetLevel(level Level) {
	l.orDefault().level.SetLevel(level)
}

func (l *Logger) Enabled(level Level) bool {
	return l.orDefault().zap.Core().Enabled(level)
}

// Sync flushes buffered entries once; later calls are no-ops.
func (l *Logger) Sync() error {
	l = l.orDefault()
	if !l.synced.CompareAndSwap(false, true) {
		return nil
	}
	return l.zap.Sync()
}

func (l *Logger) With(args ...any) *Logger {
	if l == nil {
		return NewNop()
	}
	return &Logger{zap: l.zap.With(fields(args)...), level: l.level, synced: l.synced}
}

// Named adds a dotted component name, e.g. "livefeed".
func (l *Logger) Named(name string) *Logger {
	if l == nil {
		return NewNop()
	}
	return &Logger{zap: l.zap.Named(name), level: l.level, synced: l.synced}
}

func (l *Logger) Debug(msg string, args ...any) { l.log(nil, LevelDebug, msg, args) }
func (l *Logger) Info(msg string, args ...any)  { l.log(nil, LevelInfo, msg, args) }
func (l *Logger) Warn(msg string, args ...any)  { l.log(nil, LevelWarn, msg, args) }
func (l *Logger) Error(msg string, args ...any) { l.log(nil, LevelError, msg, args) }

func (l *Logger) DebugContext(ctx context.Context, msg string, args ...any) {
	l.log(ctx, LevelDebug, msg, args)
}

func (l *Logger) InfoContext(ctx context.Context, msg string, args ...any) {
	l.log(ctx, LevelInfo, msg, args)
}

func (l *Logger) WarnContext(ctx context.Context, msg string, args ...any) {
	l.log(ctx, LevelWarn, msg, args)
}

func (l *Logger) ErrorContext(ctx context.Context, msg string, args ...any) {
	l.log(ctx, LevelError, msg, args)
}

func (l *Logger) orDefault() *Logger {
	if l == nil || l.zap == nil {
		return Default()
	}
	return l
}

func (l *Logger) log(ctx context.Context, level Level, msg string, args []any) {
	ce := l.orDefault().zap.Check(level, msg)
	if ce == nil {
		return
	}

	fs := fields(args)
	if ctx != nil {
		if sc := trace.SpanContextFromContext(ctx); sc.IsValid() {
			fs = append(fs,
				zap.Stringer("trace_id", sc.TraceID()),
				zap.Stringer("span_id", sc.SpanID()),
			)
		}
	}
	ce.Write(fs...)
}

// fields pairs up key/value args. A non-string key becomes "arg" and a
// trailing key without a value is logged as null. zap.Field values pass through.
func fields(args []any) []zap.Field {
	out := make([]zap.Field, 0, len(args)/2+2)
	for i := 0; i < len(args); i++ {
		if f, ok := args[i].(zap.Field); ok {
			out = append(out, f)
			continue
		}

		key, ok := args[i].(string)
		if !ok || key == "" {
			key = "arg"
		}
		if i+1 == len(args) {
			out = append(out, zap.Any(key, nil))
			break
		}
		i++

		switch v := args[i].(type) {
		case error:
			out = append(out, zap.NamedError(key, v))
		case time.Duration:
			out = append(out, zap.String(key, v.String()))
		default:
			out = append(out, zap.Any(key, v))
		}
	}
	return out
}
