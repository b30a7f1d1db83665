package logging

import (
	"context"
	"io"
	"log/slog"
	"os"
	"runtime"
	"strings"
)

const (
	DEBUG = "DEBUG"
	INFO  = "INFO"
	WARN  = "WARN"
	ERROR = "ERROR"
)

// RunIDKey is the context key of the generation run id
type RunIDKey struct{}

// Logger represents structured logger
type Logger interface {
	IsDebugEnabled() bool
	Info(msg string, args ...any)
	Debug(msg string, args ...any)
	Warn(msg string, args ...any)
	Error(msg string, args ...any)
	Infoc(ctx context.Context, msg string, args ...any)
	Debugc(ctx context.Context, msg string, args ...any)
	Warnc(ctx context.Context, msg string, args ...any)
	Errorc(ctx context.Context, msg string, args ...any)
}

type slogger struct {
	logger *slog.Logger
	level  slog.Level
}

// New creates a structured logger using the JSON Handler.
func New(level string, dest io.Writer) Logger {
	if dest == nil {
		dest = os.Stderr
	}
	logLevel := ParseLevel(level)
	handler := slog.NewJSONHandler(dest, &slog.HandlerOptions{
		AddSource: false,
		Level:     logLevel,
		ReplaceAttr: func(groups []string, a slog.Attr) slog.Attr {
			// Rename the time key to "timestamp"
			if a.Key == slog.TimeKey {
				a.Key = "timestamp"
			}
			return a
		},
	})
	return &slogger{logger: slog.New(handler), level: logLevel}
}

// ParseLevel returns slog level, INFO for unknown values
func ParseLevel(level string) slog.Level {
	switch strings.ToUpper(strings.TrimSpace(level)) {
	case DEBUG:
		return slog.LevelDebug
	case WARN:
		return slog.LevelWarn
	case ERROR:
		return slog.LevelError
	}
	return slog.LevelInfo
}

// WithRunID returns context carrying run id
func WithRunID(ctx context.Context, runID string) context.Context {
	return context.WithValue(ctx, RunIDKey{}, runID)
}

func (s *slogger) IsDebugEnabled() bool {
	return s.level.Level() <= slog.LevelDebug
}

func (s *slogger) enabled(level slog.Level) bool {
	return s.level.Level() <= level
}

// getCallerInfo uses runtime to get the caller's program counter
// and extract info from the stack frame to get the function name, etc.
func (s *slogger) getCallerInfo() []any {
	callers := make([]uintptr, 1)
	count := runtime.Callers(4, callers[:])
	if count == 0 {
		return nil
	}
	frame, _ := runtime.CallersFrames(callers).Next()
	return []any{"function", frame.Function, "line", frame.Line}
}

// getContextValues retrieves known logging values from the Context.
func (s *slogger) getContextValues(ctx context.Context) []any {
	if ctx == nil {
		return nil
	}
	if runID, ok := ctx.Value(RunIDKey{}).(string); ok && runID != "" {
		return []any{"runId", runID}
	}
	return nil
}

func (s *slogger) log(ctx context.Context, level slog.Level, msg string, args []any) {
	if !s.enabled(level) {
		return
	}
	values := s.getCallerInfo()
	values = append(values, s.getContextValues(ctx)...)
	values = append(values, args...)
	s.logger.Log(context.Background(), level, msg, values...)
}

func (s *slogger) Info(msg string, args ...any) {
	s.log(context.Background(), slog.LevelInfo, msg, args)
}

func (s *slogger) Debug(msg string, args ...any) {
	s.log(context.Background(), slog.LevelDebug, msg, args)
}

func (s *slogger) Warn(msg string, args ...any) {
	s.log(context.Background(), slog.LevelWarn, msg, args)
}

func (s *slogger) Error(msg string, args ...any) {
	s.log(context.Background(), slog.LevelError, msg, args)
}

// Infoc logs with known values from the context object.
func (s *slogger) Infoc(ctx context.Context, msg string, args ...any) {
	s.log(ctx, slog.LevelInfo, msg, args)
}

func (s *slogger) Debugc(ctx context.Context, msg string, args ...any) {
	s.log(ctx, slog.LevelDebug, msg, args)
}

func (s *slogger) Warnc(ctx context.Context, msg string, args ...any) {
	s.log(ctx, slog.LevelWarn, msg, args)
}

func (s *slogger) Errorc(ctx context.Context, msg string, args ...any) {
	s.log(ctx, slog.LevelError, msg, args)
}
