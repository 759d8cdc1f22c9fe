package messaging

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/suretrust/underwriting-service/pkg/events"
	"github.com/suretrust/underwriting-service/pkg/kafka"
)

// KafkaPublisher implements port.EventPublisher on top of the shared Kafka
// producer. Events are keyed by aggregate ID so all events for one
// application land in the same partition.
type KafkaPublisher struct {
	producer *kafka.Producer
	topic    string
	logger   *slog.Logger
}

// NewKafkaPublisher creates a new Kafka event publisher.
func NewKafkaPublisher(producer *kafka.Producer, topic string, logger *slog.Logger) *KafkaPublisher {
	return &KafkaPublisher{
		producer: producer,
		topic:    topic,
		logger:   logger,
	}
}

// Publish sends domain events to Kafka.
func (p *KafkaPublisher) Publish(ctx context.Context, evts ...interface{}) error {
	messages := make([]kafka.Message, 0, len(evts))

	for _, evt := range evts {
		payload, err := json.Marshal(evt)
		if err != nil {
			return fmt.Errorf("failed to marshal event: %w", err)
		}

		msg := kafka.Message{Value: payload}
		if de, ok := evt.(events.DomainEvent); ok {
			msg.Key = []byte(de.AggregateID().String())
			msg.Headers = map[string]string{"event_type": de.EventType()}
		}
		messages = append(messages, msg)
	}

	if err := p.producer.Publish(ctx, p.topic, messages...); err != nil {
		return fmt.Errorf("failed to publish events: %w", err)
	}

	p.logger.Debug("published events",
		slog.String("topic", p.topic),
		slog.Int("count", len(messages)),
	)

	return nil
}
