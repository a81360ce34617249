package pubsub

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"storefront/internal/domain/service"
	"storefront/internal/errors"

	"github.com/segmentio/kafka-go"
)

// messageWriter is the part of kafka.Writer the publisher needs.
type messageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

// kafkaPublisher implements EventPublisher on a Kafka topic keyed by order id
type kafkaPublisher struct {
	writer messageWriter
	logger *slog.Logger
}

// NewKafkaPublisher creates a publisher writing to topic on the given brokers
func NewKafkaPublisher(brokers []string, topic string, logger *slog.Logger) service.EventPublisher {
	writer := &kafka.Writer{
		Addr:                   kafka.TCP(brokers...),
		Topic:                  topic,
		Balancer:               &kafka.Hash{},
		RequiredAcks:           kafka.RequireAll,
		BatchTimeout:           10 * time.Millisecond,
		AllowAutoTopicCreation: true,
	}

	return &kafkaPublisher{writer: writer, logger: logger}
}

// PublishOrderEvent writes the event synchronously; the key keeps one order on one partition.
func (p *kafkaPublisher) PublishOrderEvent(ctx context.Context, event *service.OrderEventMessage) error {
	value, err := json.Marshal(event)
	if err != nil {
		return errors.WithStack(err)
	}

	headers := make([]kafka.Header, 0, len(eventAttributes(event)))
	for key, val := range eventAttributes(event) {
		headers = append(headers, kafka.Header{Key: key, Value: []byte(val)})
	}

	msg := kafka.Message{
		Key:     []byte(event.OrderID),
		Value:   value,
		Headers: headers,
	}
	if err := p.writer.WriteMessages(ctx, msg); err != nil {
		return errors.Wrap(err, "failed to write order event")
	}

	p.logger.Debug("[Kafka] Event published",
		slog.String("event_id", event.EventID),
		slog.String("order_id", event.OrderID),
	)

	return nil
}

// Close flushes pending writes and closes broker connections
func (p *kafkaPublisher) Close() error {
	return errors.WithStack(p.writer.Close())
}
