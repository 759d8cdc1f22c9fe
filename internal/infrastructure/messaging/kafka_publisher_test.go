package messaging

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/suretrust/underwriting-service/pkg/kafka"
)

func TestPublishRejectsUnmarshalableEvent(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	publisher := NewKafkaPublisher(kafka.NewProducer(kafka.Config{}), "underwriting.events", logger)

	err := publisher.Publish(context.Background(), make(chan int))

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "failed to marshal event")
}
