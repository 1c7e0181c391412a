package main

import (
	"context"
	"fmt"

	"github.com/rafaelleal24/commerce/internal/adapters/config"
	"github.com/rafaelleal24/commerce/internal/adapters/http/controllers"
	"github.com/rafaelleal24/commerce/internal/adapters/kafka"
	"github.com/rafaelleal24/commerce/internal/adapters/rabbitmq"
	"github.com/rafaelleal24/commerce/internal/core/logger"
	"github.com/rafaelleal24/commerce/internal/core/port"
)

// newBroker connects the configured outbox destination.
func newBroker(ctx context.Context, cfg *config.Config) (port.BrokerPort, controllers.HealthChecker, error) {
	switch cfg.Broker.Driver {
	case config.BrokerRabbitMQ:
		publisher, err := rabbitmq.NewPublisher(cfg.RabbitMQ)
		if err != nil {
			return nil, controllers.HealthChecker{}, err
		}
		logger.Info(ctx, "Connected to RabbitMQ", nil)
		return publisher, controllers.HealthChecker{
			Name:  "rabbitmq",
			Check: publisher.HealthCheck,
		}, nil
	case config.BrokerKafka:
		producer, err := kafka.NewProducer(cfg.Kafka)
		if err != nil {
			return nil, controllers.HealthChecker{}, err
		}
		logger.Info(ctx, "Kafka producer ready", map[string]any{"brokers": cfg.Kafka.Brokers})
		return producer, controllers.HealthChecker{
			Name:  "kafka",
			Check: producer.HealthCheck,
		}, nil
	default:
		return nil, controllers.HealthChecker{}, fmt.Errorf("unknown broker driver %q", cfg.Broker.Driver)
	}
}
