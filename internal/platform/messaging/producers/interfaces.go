package producers

import (
	"context"

	"github.com/segmentio/kafka-go"
)

// MessagePublisher publishes record events to the primary topic
type MessagePublisher interface {
	Publish(ctx context.Context, key string, value interface{}) error
	Close() error
}

// DeadLetterPublisher routes messages that cannot be processed to a dead
// letter topic for later inspection
type DeadLetterPublisher interface {
	PublishToDLQ(ctx context.Context, key string, originalMessageValue []byte, reason string) error
	Close() error
}

// KafkaWriter is the kafka.Writer surface the producers use, extracted so
// tests can substitute a fake
type KafkaWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}
