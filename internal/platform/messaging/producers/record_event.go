package producers

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/easyxpense-ledger/internal/config"
	"github.com/segmentio/kafka-go"
)

type RecordEventMessageProducer struct {
	logger *slog.Logger
	writer KafkaWriter // Interface for testability
	topic  string
}

// Creates a new record event producer and ensures the topic exists
func NewRecordEventMessageProducer(ctx context.Context, logger *slog.Logger, cfg *config.KafkaConfig) (*RecordEventMessageProducer, error) {
	if cfg.RecordEventTopic == "" {
		return nil, fmt.Errorf("kafka record event topic is not configured")
	}

	conn, err := kafka.Dial("tcp", cfg.Brokers)
	if err != nil {
		return nil, fmt.Errorf("failed to dial kafka for record event producer: %w", err)
	}
	defer conn.Close()

	err = createKafkaTopicIfNotExists(conn, cfg.RecordEventTopic, cfg.NumPartitions, cfg.ReplicationFactor, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to ensure record event topic %s exists: %w", cfg.RecordEventTopic, err)
	}

	writer := &kafka.Writer{
		Addr:         kafka.TCP(cfg.Brokers),
		Topic:        cfg.RecordEventTopic,
		Balancer:     &kafka.LeastBytes{},
		RequiredAcks: kafka.RequireOne,
		Async:        true, // Using async for high throughput
		WriteTimeout: cfg.MaxWait,
		Completion: func(messages []kafka.Message, err error) {
			if err != nil {
				logger.Error("Failed to write messages asynchronously", "topic", cfg.RecordEventTopic, "error", err, "count", len(messages))
			} else {
				logger.Debug("Successfully wrote messages asynchronously", "topic", cfg.RecordEventTopic, "count", len(messages))
			}
		},
	}

	return &RecordEventMessageProducer{
		logger: logger,
		writer: writer,
		topic:  cfg.RecordEventTopic,
	}, nil
}

func (p *RecordEventMessageProducer) Publish(ctx context.Context, key string, value interface{}) error {
	jsonValue, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("failed to marshal message value for record event producer: %w", err)
	}

	msg := kafka.Message{
		Key:   []byte(key),
		Value: jsonValue,
	}

	if err := p.writer.WriteMessages(ctx, msg); err != nil {
		p.logger.Error("Failed to publish record event message",
			"topic", p.topic,
			"key", key,
			"error", err,
		)
		return fmt.Errorf("failed to publish message to %s via record event producer: %w", p.topic, err)
	}

	p.logger.Debug("Published record event message",
		"topic", p.topic,
		"key", key,
	)
	return nil
}

func (p *RecordEventMessageProducer) Close() error {
	p.logger.Info("Closing record event Kafka message producer", "topic", p.topic)
	if err := p.writer.Close(); err != nil {
		return fmt.Errorf("failed to close record event kafka writer for topic %s: %w", p.topic, err)
	}
	return nil
}
