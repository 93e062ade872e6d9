// Package logging provides a simple leveled logger backed by zap.
package logging

import (
	"io"
	"os"
	"strings"
	"sync"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Level represents log severity.
type Level int

const (
	LevelDebug Level = iota
	LevelInfo
	LevelWarn
	LevelError
)

func (l Level) String() string {
	switch l {
	case LevelDebug:
		return "DEBUG"
	case LevelInfo:
		return "INFO"
	case LevelWarn:
		return "WARN"
	case LevelError:
		return "ERROR"
	default:
		return "UNKNOWN"
	}
}

func (l Level) zapLevel() zapcore.Level {
	switch l {
	case LevelDebug:
		return zapcore.DebugLevel
	case LevelWarn:
		return zapcore.WarnLevel
	case LevelError:
		return zapcore.ErrorLevel
	default:
		return zapcore.InfoLevel
	}
}

// ParseLevel parses a log level string.
func ParseLevel(s string) Level {
	switch strings.ToLower(s) {
	case "debug":
		return LevelDebug
	case "info":
		return LevelInfo
	case "warn", "warning":
		return LevelWarn
	case "error":
		return LevelError
	default:
		return LevelInfo
	}
}

// Format selects the log line encoding.
type Format string

const (
	FormatConsole Format = "console"
	FormatJSON    Format = "json"
)

// Logger is a leveled printf-style logger.
type Logger struct {
	mu     sync.Mutex
	level  zap.AtomicLevel
	format Format
	output io.Writer
	name   string
	sugar  *zap.SugaredLogger
}

// New creates a console logger writing to stderr.
func New(level Level) *Logger {
	return NewWithFormat(level, FormatConsole)
}

// NewWithFormat creates a logger with the given encoding writing to stderr.
func NewWithFormat(level Level, format Format) *Logger {
	l := &Logger{
		level:  zap.NewAtomicLevelAt(level.zapLevel()),
		format: format,
		output: os.Stderr,
	}
	l.build()
	return l
}

// NewFromCore wraps an existing zap core, mainly for tests.
func NewFromCore(core zapcore.Core) *Logger {
	return &Logger{
		level: zap.NewAtomicLevelAt(zapcore.DebugLevel),
		sugar: zap.New(core).Sugar(),
	}
}

func (l *Logger) build() {
	encCfg := zap.NewProductionEncoderConfig()
	encCfg.EncodeTime = zapcore.TimeEncoderOfLayout("15:04:05.000")
	encCfg.EncodeLevel = zapcore.CapitalLevelEncoder

	var enc zapcore.Encoder
	if l.format == FormatJSON {
		enc = zapcore.NewJSONEncoder(encCfg)
	} else {
		enc = zapcore.NewConsoleEncoder(encCfg)
	}

	core := zapcore.NewCore(enc, zapcore.AddSync(l.output), l.level)
	l.sugar = zap.New(core).Named(l.name).Sugar()
}

// SetOutput sets the log output destination.
func (l *Logger) SetOutput(w io.Writer) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.output = w
	l.build()
}

// SetLevel sets the minimum log level.
func (l *Logger) SetLevel(level Level) {
	l.level.SetLevel(level.zapLevel())
}

// Named returns a child logger whose entries carry the given name. The
// child shares the parent's level; its name survives a later SetOutput.
func (l *Logger) Named(name string) *Logger {
	l.mu.Lock()
	defer l.mu.Unlock()
	full := name
	if l.name != "" {
		full = l.name + "." + name
	}
	return &Logger{
		level:  l.level,
		format: l.format,
		output: l.output,
		name:   full,
		sugar:  l.sugar.Named(name),
	}
}

func (l *Logger) logger() *zap.SugaredLogger {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.sugar
}

// Debug logs a debug message.
func (l *Logger) Debug(format string, args ...interface{}) {
	l.logger().Debugf(format, args...)
}

// Info logs an info message.
func (l *Logger) Info(format string, args ...interface{}) {
	l.logger().Infof(format, args...)
}

// Warn logs a warning message.
func (l *Logger) Warn(format string, args ...interface{}) {
	l.logger().Warnf(format, args...)
}

// Error logs an error message.
func (l *Logger) Error(format string, args ...interface{}) {
	l.logger().Errorf(format, args...)
}

// Sync flushes buffered entries.
func (l *Logger) Sync() error {
	return l.logger().Sync()
}

// Discard returns a logger that discards all output.
func Discard() *Logger {
	return &Logger{
		level:  zap.NewAtomicLevelAt(zapcore.FatalLevel),
		output: io.Discard,
		sugar:  zap.NewNop().Sugar(),
	}
}
