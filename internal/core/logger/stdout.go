package logger

import (
	"context"
	"log/slog"
	"os"
	"sort"
	"time"
)

type StdoutLogger struct {
	logger *slog.Logger
	exit   func(code int)
}

func newStdoutLogger(opts Options) (Logger, error) {
	handler := slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelDebug,
	})

	attrs := []slog.Attr{slog.String("service", opts.ServiceName)}
	if opts.ServiceVersion != "" {
		attrs = append(attrs, slog.String("version", opts.ServiceVersion))
	}

	return &StdoutLogger{
		logger: slog.New(handler.WithAttrs(attrs)),
		exit:   os.Exit,
	}, nil
}

func (l *StdoutLogger) Log(ctx context.Context, entry LogEntry) {
	if entry.Timestamp.IsZero() {
		entry.Timestamp = time.Now()
	}

	// stable key order keeps local output diffable
	keys := make([]string, 0, len(entry.Attributes))
	for key := range entry.Attributes {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	attrs := make([]any, 0, len(keys)*2+2)
	for _, key := range keys {
		attrs = append(attrs, key, entry.Attributes[key])
	}
	if entry.Error != nil {
		attrs = append(attrs, "error", entry.Error.Error())
	}

	switch entry.Level {
	case LogLevelDebug:
		l.logger.DebugContext(ctx, entry.Message, attrs...)
	case LogLevelInfo:
		l.logger.InfoContext(ctx, entry.Message, attrs...)
	case LogLevelWarn:
		l.logger.WarnContext(ctx, entry.Message, attrs...)
	case LogLevelError:
		l.logger.ErrorContext(ctx, entry.Message, attrs...)
	case LogLevelFatal:
		l.logger.ErrorContext(ctx, entry.Message, attrs...)
		l.exit(1)
	}
}

func (l *StdoutLogger) Shutdown(context.Context) error {
	return nil
}
