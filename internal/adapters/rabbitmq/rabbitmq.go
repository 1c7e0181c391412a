package rabbitmq

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/google/uuid"
	amqp "github.com/rabbitmq/amqp091-go"

	"github.com/rafaelleal24/commerce/internal/adapters/config"
	"github.com/rafaelleal24/commerce/internal/core/domain"
	"github.com/rafaelleal24/commerce/internal/core/logger"
)

const (
	HeaderEventName = "event-name"
	HeaderMessageID = "message-id"
)

var (
	errNacked = errors.New("broker did not confirm the message")
	ErrClosed = errors.New("publisher is closed")
)

// ExchangeFor names the exchange events of an entity are published to. The
// event name is the routing key.
func ExchangeFor(entityName string) string {
	return fmt.Sprintf("exchange.%s", entityName)
}

// Publisher sends events in confirm mode: a nil error means the broker took
// responsibility for the message. A broken channel is reopened on the next publish.
type Publisher struct {
	mu      sync.Mutex
	conn    *amqp.Connection
	channel *amqp.Channel
	closed  bool
	cfg     config.RabbitMQConfig
}

func NewPublisher(cfg config.RabbitMQConfig) (*Publisher, error) {
	p := &Publisher{cfg: cfg}
	if err := p.connect(); err != nil {
		return nil, fmt.Errorf("failed to connect to RabbitMQ: %w", err)
	}
	return p, nil
}

func (p *Publisher) connect() error {
	conn, err := amqp.Dial(p.cfg.URL)
	if err != nil {
		return fmt.Errorf("failed to dial: %w", err)
	}

	ch, err := p.openChannel(conn)
	if err != nil {
		_ = conn.Close()
		return err
	}

	p.conn = conn
	p.channel = ch
	return nil
}

func (p *Publisher) openChannel(conn *amqp.Connection) (*amqp.Channel, error) {
	ch, err := conn.Channel()
	if err != nil {
		return nil, fmt.Errorf("failed to open channel: %w", err)
	}
	if err := ch.Confirm(false); err != nil {
		_ = ch.Close()
		return nil, fmt.Errorf("failed to enable publisher confirms: %w", err)
	}
	for _, ec := range p.cfg.ExchangeConfigs {
		if err := ch.ExchangeDeclare(ec.Name, ec.Type, ec.Durable, ec.AutoDelete, false, false, nil); err != nil {
			_ = ch.Close()
			return nil, fmt.Errorf("failed to declare exchange %s: %w", ec.Name, err)
		}
	}
	return ch, nil
}

// ensureChannel reopens only the channel while the connection is alive, and
// redials otherwise. Callers hold mu.
func (p *Publisher) ensureChannel() error {
	if p.channel != nil && !p.channel.IsClosed() {
		return nil
	}
	if p.conn != nil && !p.conn.IsClosed() {
		ch, err := p.openChannel(p.conn)
		if err == nil {
			p.channel = ch
			return nil
		}
		_ = p.conn.Close()
	}
	p.conn, p.channel = nil, nil
	return p.connect()
}

func (p *Publisher) Publish(ctx context.Context, event domain.Event) error {
	body, err := json.Marshal(event)
	if err != nil {
		logger.Error(ctx, "rabbitmq: failed to marshal event", err, map[string]any{
			"event_name":  event.GetName(),
			"entity_name": event.GetEntityName(),
		})
		return fmt.Errorf("failed to marshal event: %w", err)
	}
	return p.publish(ctx, event.GetName(), event.GetEntityName(), body)
}

func (p *Publisher) PublishRaw(ctx context.Context, eventName, entityName string, data []byte) error {
	return p.publish(ctx, eventName, entityName, data)
}

func (p *Publisher) retryPolicy(ctx context.Context) backoff.BackOff {
	var b backoff.BackOff = &backoff.ZeroBackOff{}
	if p.cfg.RetryDelay > 0 {
		exp := backoff.NewExponentialBackOff()
		exp.InitialInterval = p.cfg.RetryDelay
		exp.MaxInterval = 10 * p.cfg.RetryDelay
		exp.MaxElapsedTime = 0
		b = exp
	}
	return backoff.WithContext(backoff.WithMaxRetries(b, uint64(max(p.cfg.MaxRetries, 0))), ctx)
}

func (p *Publisher) publish(ctx context.Context, eventName, entityName string, body []byte) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	messageID := uuid.NewString()
	msg := amqp.Publishing{
		ContentType:  "application/json",
		Body:         body,
		DeliveryMode: amqp.Persistent,
		MessageId:    messageID,
		Type:         eventName,
		Timestamp:    time.Now().UTC(),
		Headers: amqp.Table{
			HeaderEventName: eventName,
			HeaderMessageID: messageID,
		},
	}
	exchange := ExchangeFor(entityName)

	attempts := 0
	err := backoff.RetryNotify(func() error {
		attempts++
		err := p.publishOnce(ctx, exchange, eventName, msg)
		if errors.Is(err, ErrClosed) {
			return backoff.Permanent(err)
		}
		return err
	}, p.retryPolicy(ctx), func(err error, wait time.Duration) {
		logger.Warn(ctx, "rabbitmq: publish failed, retrying", map[string]any{
			"attempt":    attempts,
			"event_name": eventName,
			"wait":       wait.String(),
			"error":      err.Error(),
		})
	})
	if err != nil {
		return fmt.Errorf("failed to publish %s after %d attempts: %w", eventName, attempts, err)
	}
	return nil
}

func (p *Publisher) publishOnce(ctx context.Context, exchange, routingKey string, msg amqp.Publishing) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.closed {
		return ErrClosed
	}
	if err := p.ensureChannel(); err != nil {
		return fmt.Errorf("reconnect failed: %w", err)
	}

	confirm, err := p.channel.PublishWithDeferredConfirmWithContext(ctx, exchange, routingKey, false, false, msg)
	if err != nil {
		_ = p.channel.Close()
		p.channel = nil
		return err
	}

	acked, err := confirm.WaitContext(ctx)
	if err != nil {
		return err
	}
	if !acked {
		return errNacked
	}
	return nil
}

func (p *Publisher) Close() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.closed = true
	var errs []error
	if p.channel != nil {
		if err := p.channel.Close(); err != nil && !errors.Is(err, amqp.ErrClosed) {
			errs = append(errs, fmt.Errorf("closing channel: %w", err))
		}
		p.channel = nil
	}
	if p.conn != nil {
		if err := p.conn.Close(); err != nil && !errors.Is(err, amqp.ErrClosed) {
			errs = append(errs, fmt.Errorf("closing connection: %w", err))
		}
		p.conn = nil
	}
	return errors.Join(errs...)
}

// HealthCheck reports a closed publisher or a dropped connection. A closed
// channel alone is healthy since the next publish reopens it.
func (p *Publisher) HealthCheck(context.Context) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	switch {
	case p.closed:
		return ErrClosed
	case p.conn == nil || p.conn.IsClosed():
		return errors.New("connection is closed")
	}
	return nil
}
