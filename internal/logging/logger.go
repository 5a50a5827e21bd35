package logging

import (
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// SafeLogger wraps a zap logger and tolerates a nil receiver or nil inner
// logger, so services built before InitLogger runs never panic.
type SafeLogger struct {
	logger *zap.Logger
}

var (
	// Logger is the global logger instance
	Logger = &SafeLogger{}
)

// InitLogger initializes the global logger
func InitLogger() error {
	config := zap.NewProductionConfig()
	config.EncoderConfig.TimeKey = "timestamp"
	config.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder

	// Set log level from environment
	logLevel := os.Getenv("LOG_LEVEL")
	if logLevel != "" {
		var level zapcore.Level
		if err := level.UnmarshalText([]byte(logLevel)); err == nil {
			config.Level = zap.NewAtomicLevelAt(level)
		}
	}

	zapLogger, err := config.Build(
		zap.AddCallerSkip(1),
		zap.Fields(
			zap.String("service", "app-inscricao"),
			zap.String("version", "v1"),
		),
	)
	if err != nil {
		return err
	}

	Logger = &SafeLogger{logger: zapLogger}
	zap.ReplaceGlobals(zapLogger)

	return nil
}

// NewSafeLogger wraps an existing zap logger.
func NewSafeLogger(l *zap.Logger) *SafeLogger {
	return &SafeLogger{logger: l}
}

// Zap returns the underlying zap logger, or a no-op logger when unset.
func (l *SafeLogger) Zap() *zap.Logger {
	if l == nil || l.logger == nil {
		return zap.NewNop()
	}
	return l.logger
}

// With returns a child logger carrying the given fields.
func (l *SafeLogger) With(fields ...zap.Field) *SafeLogger {
	return &SafeLogger{logger: l.Zap().With(fields...)}
}

// Named returns a child logger with the given name segment.
func (l *SafeLogger) Named(name string) *SafeLogger {
	return &SafeLogger{logger: l.Zap().Named(name)}
}

func (l *SafeLogger) Debug(msg string, fields ...zap.Field) {
	l.Zap().Debug(msg, fields...)
}

func (l *SafeLogger) Info(msg string, fields ...zap.Field) {
	l.Zap().Info(msg, fields...)
}

func (l *SafeLogger) Warn(msg string, fields ...zap.Field) {
	l.Zap().Warn(msg, fields...)
}

func (l *SafeLogger) Error(msg string, fields ...zap.Field) {
	l.Zap().Error(msg, fields...)
}

// Fatal logs and exits. With no logger configured it still exits.
func (l *SafeLogger) Fatal(msg string, fields ...zap.Field) {
	if l == nil || l.logger == nil {
		os.Exit(1)
	}
	l.logger.Fatal(msg, fields...)
}

// Sync flushes buffered entries.
func (l *SafeLogger) Sync() error {
	return l.Zap().Sync()
}
