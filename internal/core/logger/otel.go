package logger

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.opentelemetry.io/otel/exporters/otlp/otlplog/otlploggrpc"
	otellog "go.opentelemetry.io/otel/log"
	"go.opentelemetry.io/otel/log/global"
	sdklog "go.opentelemetry.io/otel/sdk/log"
	"go.opentelemetry.io/otel/sdk/resource"
	semconv "go.opentelemetry.io/otel/semconv/v1.26.0"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
)

var severities = map[LogLevel]otellog.Severity{
	LogLevelDebug: otellog.SeverityDebug,
	LogLevelInfo:  otellog.SeverityInfo,
	LogLevelWarn:  otellog.SeverityWarn,
	LogLevelError: otellog.SeverityError,
	LogLevelFatal: otellog.SeverityFatal,
}

type OTELLogger struct {
	logger   otellog.Logger
	provider *sdklog.LoggerProvider
	conn     *grpc.ClientConn
}

func newOtelLogger(opts Options) (Logger, error) {
	ctx := context.Background()

	conn, err := grpc.NewClient(
		opts.Endpoint,
		grpc.WithTransportCredentials(insecure.NewCredentials()),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create gRPC connection: %w", err)
	}

	exporter, err := otlploggrpc.New(ctx, otlploggrpc.WithGRPCConn(conn))
	if err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("failed to create log exporter: %w", err)
	}

	res, err := resource.New(ctx,
		resource.WithHost(),
		resource.WithAttributes(
			semconv.ServiceName(opts.ServiceName),
			semconv.ServiceVersion(opts.ServiceVersion),
		),
	)
	if err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("failed to create resource: %w", err)
	}

	provider := sdklog.NewLoggerProvider(
		sdklog.WithProcessor(sdklog.NewBatchProcessor(exporter)),
		sdklog.WithResource(res),
	)
	global.SetLoggerProvider(provider)

	return &OTELLogger{
		logger:   provider.Logger(opts.ServiceName),
		provider: provider,
		conn:     conn,
	}, nil
}

// attribute converts the values services log: ids, amounts, counts, durations.
func attribute(key string, value any) otellog.KeyValue {
	switch v := value.(type) {
	case string:
		return otellog.String(key, v)
	case int:
		return otellog.Int(key, v)
	case int32:
		return otellog.Int64(key, int64(v))
	case int64:
		return otellog.Int64(key, v)
	case float64:
		return otellog.Float64(key, v)
	case bool:
		return otellog.Bool(key, v)
	case time.Duration:
		return otellog.Int64(key+"_ms", v.Milliseconds())
	case fmt.Stringer:
		return otellog.String(key, v.String())
	default:
		return otellog.String(key, fmt.Sprintf("%v", v))
	}
}

func (l *OTELLogger) Log(ctx context.Context, entry LogEntry) {
	var record otellog.Record
	record.SetTimestamp(entry.Timestamp)
	record.SetObservedTimestamp(time.Now())
	record.SetBody(otellog.StringValue(entry.Message))
	record.SetSeverityText(string(entry.Level))
	record.SetSeverity(severities[entry.Level])

	attrs := make([]otellog.KeyValue, 0, len(entry.Attributes)+1)
	for key, value := range entry.Attributes {
		attrs = append(attrs, attribute(key, value))
	}
	if entry.Error != nil {
		attrs = append(attrs, otellog.String("error", entry.Error.Error()))
	}

	record.AddAttributes(attrs...)
	l.logger.Emit(ctx, record)
}

// Shutdown flushes buffered records before closing the collector connection.
func (l *OTELLogger) Shutdown(ctx context.Context) error {
	return errors.Join(l.provider.Shutdown(ctx), l.conn.Close())
}
