// Package config provides configuration structures and validation for the
// application. It handles environment-based configuration for all major
// components including server settings, database connections, message
// queues, and operational parameters.
package config

import (
	"errors"
	"strings"
	"time"
)

// Config holds the complete application configuration with settings for
// all components. Each field represents a major subsystem's configuration
// and is validated during application startup.
type Config struct {
	Application ApplicationConfig
	Logging     LoggingConfig
	Server      ServerConfig
	Auth        AuthConfig
	Kafka       KafkaConfig
	Postgres    PostgresConfig
	MongoDB     MongoDBConfig
	Outbox      OutboxConfig
	WorkerPool  WorkerPoolConfig
}

// ApplicationConfig contains general application configuration
type ApplicationConfig struct {
	Env  string
	Name string
}

// LoggingConfig contains logging configuration
type LoggingConfig struct {
	Level string
}

// ServerConfig contains HTTP server configuration settings
type ServerConfig struct {
	Port            int           // Port to listen on
	ShutdownTimeout time.Duration // Grace period for server shutdown
	ReadTimeout     time.Duration // Maximum duration for reading entire request
	WriteTimeout    time.Duration // Maximum duration for writing response
	IdleTimeout     time.Duration // Maximum duration to wait for next request
}

// AuthConfig contains token signing configuration
type AuthConfig struct {
	JWTSecret string        // HS256 signing key
	TokenTTL  time.Duration // Access token lifetime
}

// KafkaConfig contains Kafka configuration
type KafkaConfig struct {
	Brokers           string
	RecordEventTopic  string
	NumPartitions     int // Number of partitions for topics
	ReplicationFactor int // Replication factor for topics
	ConsumerGroup     string
	MinBytes          int
	MaxBytes          int
	MaxWait           time.Duration
	StartOffset       int64
	DLQTopic          string // Topic for Dead Letter Queue
}

// PostgresConfig contains PostgreSQL configuration
type PostgresConfig struct {
	URL             string        // Database connection string
	MaxConns        int32         // Maximum number of open connections
	MinConns        int32         // Maximum number of idle connections
	ConnMaxLifetime time.Duration // Maximum lifetime of a connection
	ConnMaxIdleTime time.Duration // Maximum idle time of a connection
	MigrationsPath  string        // Path to migration files
}

// MongoDBConfig contains MongoDB configuration
type MongoDBConfig struct {
	URI             string
	Database        string
	Timeout         time.Duration
	MaxPoolSize     uint64
	MinPoolSize     uint64
	MaxConnIdleTime time.Duration
}

// OutboxConfig contains outbox pattern configuration
type OutboxConfig struct {
	PollingInterval  time.Duration
	BatchSize        int
	MaxRetryAttempts int // Maximum number of retry attempts for outbox messages
}

// WorkerPoolConfig contains worker pool configuration
type WorkerPoolConfig struct {
	Size int // Maximum number of workers in the pool
}

// configErrors collects validation failures so a misconfigured deployment
// reports everything wrong at once instead of one variable per restart
type configErrors []string

func (e *configErrors) required(key string, ok bool) {
	if !ok {
		*e = append(*e, key+" is required")
	}
}

func (e *configErrors) positive(key string, ok bool) {
	if !ok {
		*e = append(*e, key+" must be greater than 0")
	}
}

// validate checks all configuration values against their minimum
// requirements before anything connects to the outside world
func (c *Config) validate() error {
	var errs configErrors

	errs.positive("SERVER_PORT", c.Server.Port > 0)
	errs.positive("SERVER_SHUTDOWN_TIMEOUT", c.Server.ShutdownTimeout > 0)
	errs.positive("SERVER_READ_TIMEOUT", c.Server.ReadTimeout > 0)
	errs.positive("SERVER_WRITE_TIMEOUT", c.Server.WriteTimeout > 0)
	errs.positive("SERVER_IDLE_TIMEOUT", c.Server.IdleTimeout > 0)

	errs.required("AUTH_JWT_SECRET", c.Auth.JWTSecret != "")
	errs.positive("AUTH_TOKEN_TTL", c.Auth.TokenTTL > 0)

	errs.required("KAFKA_BROKERS", len(c.Kafka.Brokers) > 0)
	errs.required("KAFKA_RECORD_EVENT_TOPIC", c.Kafka.RecordEventTopic != "")
	errs.required("KAFKA_CONSUMER_GROUP", c.Kafka.ConsumerGroup != "")
	errs.positive("KAFKA_CONSUMER_MIN_BYTES", c.Kafka.MinBytes > 0)
	errs.positive("KAFKA_CONSUMER_MAX_BYTES", c.Kafka.MaxBytes > 0)
	errs.positive("KAFKA_CONSUMER_MAX_WAIT", c.Kafka.MaxWait > 0)
	errs.required("KAFKA_DLQ_TOPIC", c.Kafka.DLQTopic != "")

	errs.required("POSTGRES_URL", c.Postgres.URL != "")
	errs.positive("POSTGRES_MAX_CONNS", c.Postgres.MaxConns > 0)
	errs.positive("POSTGRES_MIN_CONNS", c.Postgres.MinConns > 0)
	errs.positive("POSTGRES_MAX_CONN_LIFETIME", c.Postgres.ConnMaxLifetime > 0)
	errs.positive("POSTGRES_MAX_CONN_IDLE_TIME", c.Postgres.ConnMaxIdleTime > 0)

	errs.required("MONGO_URI", c.MongoDB.URI != "")
	errs.required("MONGO_DATABASE", c.MongoDB.Database != "")
	errs.positive("MONGO_TIMEOUT", c.MongoDB.Timeout > 0)
	errs.positive("MONGO_MAX_POOL_SIZE", c.MongoDB.MaxPoolSize > 0)
	errs.positive("MONGO_MIN_POOL_SIZE", c.MongoDB.MinPoolSize > 0)
	errs.positive("MONGO_MAX_CONN_IDLE_TIME", c.MongoDB.MaxConnIdleTime > 0)

	errs.positive("OUTBOX_POLLING_INTERVAL", c.Outbox.PollingInterval > 0)
	errs.positive("OUTBOX_BATCH_SIZE", c.Outbox.BatchSize > 0)
	errs.positive("OUTBOX_MAX_RETRY_ATTEMPTS", c.Outbox.MaxRetryAttempts > 0)

	errs.positive("WORKER_POOL_SIZE", c.WorkerPool.Size > 0)

	if len(errs) > 0 {
		return errors.New(strings.Join(errs, ", "))
	}

	return nil
}
