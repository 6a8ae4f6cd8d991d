// Package logger provides structured logging for fresh-releases using zap.
package logger

import (
	"fmt"
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/handiism/fresh-releases/internal/config"
)

// Logger wraps zap.SugaredLogger with context methods.
type Logger struct {
	*zap.SugaredLogger
	base *zap.Logger
	file *os.File
}

// New creates a new Logger from configuration.
//
// Output may be "stdout", "stderr", "none" or a file path. File output is
// appended to and never mirrored to the terminal, so the interactive
// browser can log without disturbing the screen.
func New(cfg *config.LoggingConfig) (*Logger, error) {
	if cfg.Output == "none" {
		return NewNop(), nil
	}

	writer, file, err := buildWriter(cfg.Output)
	if err != nil {
		return nil, err
	}

	core := zapcore.NewCore(buildEncoder(cfg.Format), writer, parseLevel(cfg.Level))
	baseLogger := zap.New(core, zap.AddCaller(), zap.AddStacktrace(zapcore.ErrorLevel))

	return &Logger{
		SugaredLogger: baseLogger.Sugar(),
		base:          baseLogger,
		file:          file,
	}, nil
}

// NewDefault creates a Logger with default settings (info level, text format, stderr).
func NewDefault() *Logger {
	logger, err := New(&config.LoggingConfig{
		Level:  "info",
		Format: "text",
		Output: "stderr",
	})
	if err != nil {
		return NewNop()
	}
	return logger
}

// NewNop creates a Logger that discards everything.
func NewNop() *Logger {
	base := zap.NewNop()
	return &Logger{
		SugaredLogger: base.Sugar(),
		base:          base,
	}
}

// parseLevel converts string level to zapcore.Level.
func parseLevel(level string) zapcore.Level {
	switch level {
	case "debug":
		return zapcore.DebugLevel
	case "info", "":
		return zapcore.InfoLevel
	case "warn":
		return zapcore.WarnLevel
	case "error":
		return zapcore.ErrorLevel
	default:
		return zapcore.InfoLevel
	}
}

// buildEncoder creates the appropriate encoder based on format.
func buildEncoder(format string) zapcore.Encoder {
	encoderConfig := zapcore.EncoderConfig{
		TimeKey:        "time",
		LevelKey:       "level",
		NameKey:        "logger",
		CallerKey:      "caller",
		FunctionKey:    zapcore.OmitKey,
		MessageKey:     "msg",
		StacktraceKey:  "stacktrace",
		LineEnding:     zapcore.DefaultLineEnding,
		EncodeLevel:    zapcore.LowercaseLevelEncoder,
		EncodeTime:     zapcore.ISO8601TimeEncoder,
		EncodeDuration: zapcore.StringDurationEncoder,
		EncodeCaller:   zapcore.ShortCallerEncoder,
	}

	if format == "json" {
		return zapcore.NewJSONEncoder(encoderConfig)
	}

	encoderConfig.EncodeLevel = zapcore.CapitalLevelEncoder
	return zapcore.NewConsoleEncoder(encoderConfig)
}

// buildWriter creates the output writer based on configuration. The
// returned file is non-nil when the logger owns an open log file.
func buildWriter(output string) (zapcore.WriteSyncer, *os.File, error) {
	switch output {
	case "stderr", "":
		return zapcore.AddSync(os.Stderr), nil, nil
	case "stdout":
		return zapcore.AddSync(os.Stdout), nil, nil
	default:
		file, err := os.OpenFile(output, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to open log file: %w", err)
		}
		return zapcore.AddSync(file), file, nil
	}
}

// WithSession returns a Logger with page session context.
func (l *Logger) WithSession(sessionID string) *Logger {
	return &Logger{
		SugaredLogger: l.SugaredLogger.With("session", sessionID),
		base:          l.base,
	}
}

// WithPage returns a Logger with page type context.
func (l *Logger) WithPage(pageType string) *Logger {
	return &Logger{
		SugaredLogger: l.SugaredLogger.With("page", pageType),
		base:          l.base,
	}
}

// Sync flushes any buffered log entries.
func (l *Logger) Sync() error {
	return l.base.Sync()
}

// Close flushes the logger and closes its log file, if it owns one.
// Loggers derived with WithSession or WithPage never close the file.
func (l *Logger) Close() error {
	if l.file == nil {
		// stderr and stdout reject fsync on some platforms
		_ = l.Sync()
		return nil
	}
	if err := l.Sync(); err != nil {
		l.file.Close()
		return err
	}
	err := l.file.Close()
	l.file = nil
	return err
}
