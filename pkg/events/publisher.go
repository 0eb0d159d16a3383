package events

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/segmentio/kafka-go"

	"lawnmow/pkg/logger"
)

// Publisher delivers domain events. Delivery is best effort: callers
// log failures and move on, they never fail the originating request.
type Publisher interface {
	Publish(ctx context.Context, event Event) error
	Close() error
}

type kafkaPublisher struct {
	writer *kafka.Writer
	source string
}

// NewKafkaPublisher builds a publisher writing to a single topic,
// keyed by document id so events for one document stay ordered.
func NewKafkaPublisher(brokers []string, topic, source string) (Publisher, error) {
	if len(brokers) == 0 {
		return nil, fmt.Errorf("at least one broker is required")
	}
	if topic == "" {
		return nil, fmt.Errorf("topic cannot be empty")
	}

	writer := &kafka.Writer{
		Addr:         kafka.TCP(brokers...),
		Topic:        topic,
		Balancer:     &kafka.Hash{},
		RequiredAcks: kafka.RequireOne,
		Logger:       kafka.LoggerFunc(func(msg string, args ...any) {}),
	}

	return &kafkaPublisher{writer: writer, source: source}, nil
}

func (p *kafkaPublisher) Publish(ctx context.Context, event Event) error {
	value, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to encode event: %w", err)
	}

	msg := kafka.Message{
		Key:   []byte(event.DocumentID),
		Value: value,
		Headers: []kafka.Header{
			{Key: HeaderEventID, Value: []byte(event.ID)},
			{Key: HeaderEventType, Value: []byte(event.Type)},
			{Key: HeaderSource, Value: []byte(p.source)},
		},
	}

	if err := p.writer.WriteMessages(ctx, msg); err != nil {
		return fmt.Errorf("failed to publish %s event: %w", event.Type, err)
	}
	return nil
}

func (p *kafkaPublisher) Close() error {
	return p.writer.Close()
}

type noopPublisher struct{}

// NewNoopPublisher stands in when no brokers are configured.
func NewNoopPublisher() Publisher {
	return noopPublisher{}
}

func (noopPublisher) Publish(ctx context.Context, event Event) error { return nil }

func (noopPublisher) Close() error { return nil }

// FromConfig picks the Kafka publisher when brokers are configured and
// the no-op publisher otherwise.
func FromConfig(brokers []string, topic, source string, log *logger.Logger) Publisher {
	if len(brokers) == 0 {
		log.Info("Event publishing disabled, no Kafka brokers configured")
		return NewNoopPublisher()
	}

	publisher, err := NewKafkaPublisher(brokers, topic, source)
	if err != nil {
		log.Fatal("Failed to initialize Kafka publisher", "error", err)
	}

	log.Info("Event publishing enabled", "topic", topic, "brokers", len(brokers))
	return publisher
}
