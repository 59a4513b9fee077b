package producers

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/segmentio/kafka-go"
)

const partitionReadRetries = 5

// createKafkaTopicIfNotExists ensures the topic exists before a producer
// starts writing to it. Partition reads are retried because a freshly started
// broker can briefly report no metadata.
func createKafkaTopicIfNotExists(conn *kafka.Conn, topicName string, numPartitions int, replicationFactor int, log *slog.Logger) error {
	log.Info("Checking if Kafka topic exists", "topic", topicName)

	var partitions []kafka.Partition
	var readErr error
	for attempt := 1; attempt <= partitionReadRetries; attempt++ {
		partitions, readErr = conn.ReadPartitions(topicName)
		if readErr == nil {
			break
		}
		log.Warn("Failed to read partitions, retrying",
			"topic", topicName,
			"attempt", attempt,
			"error", readErr,
		)
		time.Sleep(2 * time.Second)
	}

	if len(partitions) > 0 {
		if readErr != nil {
			log.Warn("Kafka topic exists but the final partition read failed", "topic", topicName, "error", readErr)
		} else {
			log.Info("Kafka topic already exists", "topic", topicName)
		}
		return nil
	}

	log.Info("Kafka topic does not exist or is not accessible, creating it", "topic", topicName)

	topicConfig := kafka.TopicConfig{
		Topic:             topicName,
		NumPartitions:     numPartitions,
		ReplicationFactor: replicationFactor,
	}
	if topicConfig.NumPartitions == 0 {
		topicConfig.NumPartitions = 1
	}
	if topicConfig.ReplicationFactor == 0 {
		topicConfig.ReplicationFactor = 1
	}

	if err := conn.CreateTopics(topicConfig); err != nil {
		return fmt.Errorf("failed to create kafka topic %s: %w", topicName, err)
	}

	log.Info("Created Kafka topic", "topic", topicName)
	return nil
}
