package logger

import (
	"context"
	"strings"
	"time"
)

type LogLevel string

const (
	LogLevelDebug LogLevel = "DEBUG"
	LogLevelInfo  LogLevel = "INFO"
	LogLevelWarn  LogLevel = "WARN"
	LogLevelError LogLevel = "ERROR"
	LogLevelFatal LogLevel = "FATAL"
)

var levelRank = map[LogLevel]int{
	LogLevelDebug: 0,
	LogLevelInfo:  1,
	LogLevelWarn:  2,
	LogLevelError: 3,
	LogLevelFatal: 4,
}

// ParseLevel maps "info", "WARN" and friends to a LogLevel. Unknown input is debug.
func ParseLevel(s string) LogLevel {
	level := LogLevel(strings.ToUpper(strings.TrimSpace(s)))
	if _, ok := levelRank[level]; ok {
		return level
	}
	return LogLevelDebug
}

type attributes = map[string]any

type LogEntry struct {
	Level      LogLevel
	Message    string
	Attributes attributes
	Error      error
	Timestamp  time.Time
}

type Logger interface {
	Log(ctx context.Context, entry LogEntry)
	Shutdown(ctx context.Context) error
}

type Options struct {
	// Endpoint is the OTLP gRPC collector, used only in production.
	Endpoint       string
	ServiceName    string
	ServiceVersion string
	Level          LogLevel
	Production     bool
}

type noopLogger struct{}

func (noopLogger) Log(context.Context, LogEntry)  {}
func (noopLogger) Shutdown(context.Context) error { return nil }

// leveled drops entries ranked below floor.
type leveled struct {
	Logger
	floor int
}

func (l leveled) Log(ctx context.Context, entry LogEntry) {
	if levelRank[entry.Level] < l.floor {
		return
	}
	l.Logger.Log(ctx, entry)
}

var globalLogger Logger = noopLogger{}

func newLogEntry(level LogLevel, message string, err error, attrs attributes) LogEntry {
	return LogEntry{
		Level:      level,
		Message:    message,
		Attributes: attrs,
		Error:      err,
		Timestamp:  time.Now(),
	}
}

func Debug(ctx context.Context, message string, attrs attributes) {
	globalLogger.Log(ctx, newLogEntry(LogLevelDebug, message, nil, attrs))
}

func Info(ctx context.Context, message string, attrs attributes) {
	globalLogger.Log(ctx, newLogEntry(LogLevelInfo, message, nil, attrs))
}

func Warn(ctx context.Context, message string, attrs attributes) {
	globalLogger.Log(ctx, newLogEntry(LogLevelWarn, message, nil, attrs))
}

func Error(ctx context.Context, message string, err error, attrs attributes) {
	globalLogger.Log(ctx, newLogEntry(LogLevelError, message, err, attrs))
}

// Fatal logs and, for the stdout logger, exits the process.
func Fatal(ctx context.Context, message string, err error, attrs attributes) {
	globalLogger.Log(ctx, newLogEntry(LogLevelFatal, message, err, attrs))
}

func Log(ctx context.Context, entry LogEntry) {
	globalLogger.Log(ctx, entry)
}

func Shutdown(ctx context.Context) error {
	return globalLogger.Shutdown(ctx)
}

// SetLogger replaces the global logger. Tests use it to capture entries.
func SetLogger(l Logger) {
	if l == nil {
		l = noopLogger{}
	}
	globalLogger = l
}

// Initialize installs the OTLP exporter in production and a stdout logger
// everywhere else.
func Initialize(opts Options) error {
	var (
		l   Logger
		err error
	)

	if opts.Production {
		l, err = newOtelLogger(opts)
	} else {
		l, err = newStdoutLogger(opts)
	}
	if err != nil {
		return err
	}

	if floor := levelRank[ParseLevel(string(opts.Level))]; floor > 0 {
		l = leveled{Logger: l, floor: floor}
	}
	globalLogger = l
	return nil
}
