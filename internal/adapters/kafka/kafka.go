package kafka

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/segmentio/kafka-go"

	"github.com/rafaelleal24/commerce/internal/adapters/config"
	"github.com/rafaelleal24/commerce/internal/core/domain"
	"github.com/rafaelleal24/commerce/internal/core/logger"
)

const (
	HeaderEventName = "event-name"
	HeaderMessageID = "message-id"
)

var errNoBrokers = errors.New("no kafka brokers configured")

// TopicFor names the topic events of an entity are written to.
func TopicFor(prefix, entityName string) string {
	if prefix == "" {
		return entityName
	}
	return fmt.Sprintf("%s.%s", prefix, entityName)
}

// Producer writes events with acks from all in-sync replicas, so a nil error
// means the cluster has the message.
type Producer struct {
	writer  *kafka.Writer
	brokers []string
	prefix  string
}

func NewProducer(cfg config.KafkaConfig) (*Producer, error) {
	if len(cfg.Brokers) == 0 {
		return nil, errNoBrokers
	}

	return &Producer{
		writer: &kafka.Writer{
			Addr:                   kafka.TCP(cfg.Brokers...),
			Balancer:               &kafka.Hash{},
			RequiredAcks:           kafka.RequireAll,
			AllowAutoTopicCreation: true,
			WriteTimeout:           cfg.WriteTimeout,
		},
		brokers: cfg.Brokers,
		prefix:  cfg.TopicPrefix,
	}, nil
}

func (p *Producer) Publish(ctx context.Context, event domain.Event) error {
	body, err := json.Marshal(event)
	if err != nil {
		logger.Error(ctx, "failed to marshal event", err, map[string]any{
			"event_name":  event.GetName(),
			"entity_name": event.GetEntityName(),
		})
		return fmt.Errorf("failed to marshal event: %w", err)
	}
	return p.PublishRaw(ctx, event.GetName(), event.GetEntityName(), body)
}

// PublishRaw keys messages by event name so events of one kind keep their order.
func (p *Producer) PublishRaw(ctx context.Context, eventName, entityName string, data []byte) error {
	msg := kafka.Message{
		Topic: TopicFor(p.prefix, entityName),
		Key:   []byte(eventName),
		Value: data,
		Time:  time.Now().UTC(),
		Headers: []kafka.Header{
			{Key: HeaderEventName, Value: []byte(eventName)},
			{Key: HeaderMessageID, Value: []byte(uuid.NewString())},
			{Key: "content-type", Value: []byte("application/json")},
		},
	}

	if err := p.writer.WriteMessages(ctx, msg); err != nil {
		logger.Error(ctx, "publish: failed", err, map[string]any{
			"event_name": eventName,
			"topic":      msg.Topic,
		})
		return fmt.Errorf("failed to write message: %w", err)
	}
	return nil
}

func (p *Producer) Close() error {
	return p.writer.Close()
}

// HealthCheck dials the first reachable broker.
func (p *Producer) HealthCheck(ctx context.Context) error {
	var lastErr error
	for _, addr := range p.brokers {
		conn, err := kafka.DialContext(ctx, "tcp", addr)
		if err != nil {
			lastErr = err
			continue
		}
		return conn.Close()
	}
	return fmt.Errorf("no kafka broker reachable: %w", lastErr)
}
