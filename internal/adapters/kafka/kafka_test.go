package kafka_test

import (
	"context"
	"encoding/json"
	"log"
	"os"
	"testing"
	"time"

	"github.com/segmentio/kafka-go"
	tckafka "github.com/testcontainers/testcontainers-go/modules/kafka"

	"github.com/rafaelleal24/commerce/internal/adapters/config"
	adaptkafka "github.com/rafaelleal24/commerce/internal/adapters/kafka"
	"github.com/rafaelleal24/commerce/internal/core/domain"
)

var (
	testProducer *adaptkafka.Producer
	testBrokers  []string
)

func TestMain(m *testing.M) {
	ctx := context.Background()

	container, err := tckafka.Run(ctx, "confluentinc/confluent-local:7.5.0", tckafka.WithClusterID("test-cluster"))
	if err != nil {
		log.Fatalf("failed to start kafka container: %v", err)
	}

	testBrokers, err = container.Brokers(ctx)
	if err != nil {
		log.Fatalf("failed to get brokers: %v", err)
	}

	testProducer, err = adaptkafka.NewProducer(config.KafkaConfig{
		Brokers:      testBrokers,
		TopicPrefix:  "test",
		WriteTimeout: 10 * time.Second,
	})
	if err != nil {
		log.Fatalf("failed to create kafka producer: %v", err)
	}

	code := m.Run()

	_ = testProducer.Close()
	_ = container.Terminate(ctx)

	os.Exit(code)
}

func readOne(t *testing.T, topic string) kafka.Message {
	t.Helper()
	reader := kafka.NewReader(kafka.ReaderConfig{
		Brokers:  testBrokers,
		Topic:    topic,
		MinBytes: 1,
		MaxBytes: 10e6,
	})
	defer reader.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	msg, err := reader.ReadMessage(ctx)
	if err != nil {
		t.Fatalf("expected a message on %s, got %v", topic, err)
	}
	return msg
}

func header(msg kafka.Message, key string) string {
	for _, h := range msg.Headers {
		if h.Key == key {
			return string(h.Value)
		}
	}
	return ""
}

func TestNewProducer_RequiresBrokers(t *testing.T) {
	if _, err := adaptkafka.NewProducer(config.KafkaConfig{}); err == nil {
		t.Fatal("expected error without brokers, got nil")
	}
}

func TestTopicFor(t *testing.T) {
	if got := adaptkafka.TopicFor("commerce", "order"); got != "commerce.order" {
		t.Fatalf("expected commerce.order, got %q", got)
	}
	if got := adaptkafka.TopicFor("", "order"); got != "order" {
		t.Fatalf("expected order, got %q", got)
	}
}

func TestProducer_HealthCheck(t *testing.T) {
	if err := testProducer.HealthCheck(context.Background()); err != nil {
		t.Fatalf("expected healthy, got %v", err)
	}
}

func TestProducer_PublishRaw(t *testing.T) {
	data := []byte(`{"order_id":"abc123","total_amount":3500}`)
	if err := testProducer.PublishRaw(context.Background(), "order.placed", "order", data); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	msg := readOne(t, "test.order")
	if string(msg.Value) != string(data) {
		t.Fatalf("expected body %s, got %s", data, msg.Value)
	}
	if string(msg.Key) != "order.placed" {
		t.Fatalf("expected key order.placed, got %q", msg.Key)
	}
	if header(msg, adaptkafka.HeaderEventName) != "order.placed" {
		t.Fatalf("expected event-name header, got %+v", msg.Headers)
	}
	if header(msg, adaptkafka.HeaderMessageID) == "" {
		t.Fatal("expected a message id header")
	}
}

func TestProducer_Publish(t *testing.T) {
	event := &domain.OrderPlacedEvent{OrderID: "o1", UserID: "buyer", TotalAmount: 1200}
	if err := testProducer.Publish(context.Background(), event); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	// the topic is shared with PublishRaw above, so skip until our order shows up
	reader := kafka.NewReader(kafka.ReaderConfig{Brokers: testBrokers, Topic: "test.order", MinBytes: 1, MaxBytes: 10e6})
	defer reader.Close()
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	for {
		msg, err := reader.ReadMessage(ctx)
		if err != nil {
			t.Fatalf("expected the order.placed event, got %v", err)
		}
		var got domain.OrderPlacedEvent
		if err := json.Unmarshal(msg.Value, &got); err != nil || got.OrderID != "o1" {
			continue
		}
		if got.TotalAmount != 1200 || got.UserID != "buyer" {
			t.Fatalf("unexpected event: %+v", got)
		}
		return
	}
}
