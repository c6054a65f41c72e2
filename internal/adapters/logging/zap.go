package logging

import (
	"context"
	"fmt"
	"io"
	"os"
	"sync"

	"github.com/felixgeelhaar/pitchdeck/internal/ports"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// ZapLogger adapts a zap.Logger to the ports.Logger interface.
type ZapLogger struct {
	base  *zap.Logger
	level zap.AtomicLevel
	close func() error
}

type zapSettings struct {
	out   io.Writer
	path  string
	json  bool
	level ports.Level
}

// ZapOption configures the zap logger.
type ZapOption func(*zapSettings)

// WithWriter sets the output writer (default: os.Stderr).
func WithWriter(w io.Writer) ZapOption {
	return func(s *zapSettings) {
		s.out = w
	}
}

// WithFile appends log entries to the file at path instead of a writer.
func WithFile(path string) ZapOption {
	return func(s *zapSettings) {
		s.path = path
	}
}

// WithJSON switches the encoder from console to JSON.
func WithJSON(enabled bool) ZapOption {
	return func(s *zapSettings) {
		s.json = enabled
	}
}

// WithLevel sets the minimum log level (default: Info).
func WithLevel(level ports.Level) ZapOption {
	return func(s *zapSettings) {
		s.level = level
	}
}

// NewZapLogger creates a logger backed by zap.
func NewZapLogger(opts ...ZapOption) (*ZapLogger, error) {
	settings := zapSettings{
		out:   os.Stderr,
		level: ports.LevelInfo,
	}
	for _, opt := range opts {
		opt(&settings)
	}

	encoderConfig := zapcore.EncoderConfig{
		TimeKey:        "time",
		LevelKey:       "level",
		MessageKey:     "msg",
		LineEnding:     zapcore.DefaultLineEnding,
		EncodeLevel:    zapcore.CapitalLevelEncoder,
		EncodeTime:     zapcore.ISO8601TimeEncoder,
		EncodeDuration: zapcore.StringDurationEncoder,
	}

	var encoder zapcore.Encoder
	if settings.json {
		encoder = zapcore.NewJSONEncoder(encoderConfig)
	} else {
		encoder = zapcore.NewConsoleEncoder(encoderConfig)
	}

	closeFn := func() error { return nil }
	sink := zapcore.AddSync(settings.out)
	if settings.path != "" {
		f, err := os.OpenFile(settings.path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
		if err != nil {
			return nil, fmt.Errorf("open log file: %w", err)
		}
		sink = zapcore.AddSync(f)
		closeFn = f.Close
	}

	atom := zap.NewAtomicLevelAt(toZapLevel(settings.level))
	core := zapcore.NewCore(encoder, sink, atom)

	return &ZapLogger{
		base:  zap.New(core),
		level: atom,
		close: sync.OnceValue(closeFn),
	}, nil
}

// Debug logs a debug message.
func (l *ZapLogger) Debug(_ context.Context, msg string, fields ...ports.Field) {
	l.base.Debug(msg, toZapFields(fields)...)
}

// Info logs an informational message.
func (l *ZapLogger) Info(_ context.Context, msg string, fields ...ports.Field) {
	l.base.Info(msg, toZapFields(fields)...)
}

// Warn logs a warning message.
func (l *ZapLogger) Warn(_ context.Context, msg string, fields ...ports.Field) {
	l.base.Warn(msg, toZapFields(fields)...)
}

// Error logs an error message.
func (l *ZapLogger) Error(_ context.Context, msg string, fields ...ports.Field) {
	l.base.Error(msg, toZapFields(fields)...)
}

// With returns a child logger carrying the given fields. The child shares
// the parent's level and output.
func (l *ZapLogger) With(fields ...ports.Field) ports.Logger {
	return &ZapLogger{
		base:  l.base.With(toZapFields(fields)...),
		level: l.level,
		close: l.close,
	}
}

// Level returns the minimum log level.
func (l *ZapLogger) Level() ports.Level {
	switch l.level.Level() {
	case zapcore.DebugLevel:
		return ports.LevelDebug
	case zapcore.WarnLevel:
		return ports.LevelWarn
	case zapcore.InfoLevel:
		return ports.LevelInfo
	default:
		return ports.LevelError
	}
}

// SetLevel sets the minimum log level.
func (l *ZapLogger) SetLevel(level ports.Level) {
	l.level.SetLevel(toZapLevel(level))
}

// Close flushes buffered entries and releases the log file, if any.
func (l *ZapLogger) Close() error {
	_ = l.base.Sync()
	return l.close()
}

func toZapLevel(level ports.Level) zapcore.Level {
	switch level {
	case ports.LevelDebug:
		return zapcore.DebugLevel
	case ports.LevelWarn:
		return zapcore.WarnLevel
	case ports.LevelError:
		return zapcore.ErrorLevel
	default:
		return zapcore.InfoLevel
	}
}

func toZapFields(fields []ports.Field) []zap.Field {
	if len(fields) == 0 {
		return nil
	}
	out := make([]zap.Field, len(fields))
	for i, f := range fields {
		out[i] = zap.Any(f.Key, f.Value)
	}
	return out
}

// Ensure ZapLogger implements Logger.
var _ ports.Logger = (*ZapLogger)(nil)
