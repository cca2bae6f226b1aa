package notifications

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/IBM/sarama"
)

// NotificationProducer publishes email notifications to Kafka.
type NotificationProducer interface {
	PublishNotification(ctx context.Context, notification *EmailNotification) error
	HealthCheck(ctx context.Context) error
	Close() error
}

// KafkaProducerConfig holds producer tuning for the notification topic.
type KafkaProducerConfig struct {
	Brokers           []string
	NotificationTopic string
	RetryMax          int
	RequiredAcks      sarama.RequiredAcks
	Compression       sarama.CompressionCodec
	FlushFrequency    time.Duration
	IdempotentWrites  bool
	MaxMessageBytes   int
}

func DefaultKafkaProducerConfig() *KafkaProducerConfig {
	return &KafkaProducerConfig{
		Brokers:           []string{"localhost:9092"},
		NotificationTopic: "ticket-notifications",
		RetryMax:          3,
		RequiredAcks:      sarama.WaitForAll,
		Compression:       sarama.CompressionSnappy,
		FlushFrequency:    100 * time.Millisecond,
		IdempotentWrites:  true,
		MaxMessageBytes:   1024 * 1024,
	}
}

type kafkaNotificationProducer struct {
	producer sarama.SyncProducer
	config   *KafkaProducerConfig
}

// NewKafkaNotificationProducer connects a sync producer to the brokers.
func NewKafkaNotificationProducer(config *KafkaProducerConfig) (NotificationProducer, error) {
	if config == nil {
		config = DefaultKafkaProducerConfig()
	}

	saramaConfig := sarama.NewConfig()
	saramaConfig.Producer.RequiredAcks = config.RequiredAcks
	saramaConfig.Producer.Retry.Max = config.RetryMax
	saramaConfig.Producer.Compression = config.Compression
	saramaConfig.Producer.Flush.Frequency = config.FlushFrequency
	saramaConfig.Producer.MaxMessageBytes = config.MaxMessageBytes
	saramaConfig.Producer.Return.Successes = true
	saramaConfig.Producer.Return.Errors = true

	// Hash partitioning keeps per-recipient ordering.
	saramaConfig.Producer.Partitioner = sarama.NewHashPartitioner

	if config.IdempotentWrites {
		saramaConfig.Producer.Idempotent = true
		saramaConfig.Net.MaxOpenRequests = 1
	}

	producer, err := sarama.NewSyncProducer(config.Brokers, saramaConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to create kafka producer: %w", err)
	}

	log.Printf("Kafka notification producer connected (brokers: %v, topic: %s)",
		config.Brokers, config.NotificationTopic)

	return &kafkaNotificationProducer{
		producer: producer,
		config:   config,
	}, nil
}

func (p *kafkaNotificationProducer) PublishNotification(ctx context.Context, notification *EmailNotification) error {
	payload, err := notification.ToJSON()
	if err != nil {
		return fmt.Errorf("failed to serialize notification %s: %w", notification.ID, err)
	}

	message := &sarama.ProducerMessage{
		Topic: p.config.NotificationTopic,
		Key:   sarama.StringEncoder(notification.GetPartitionKey()),
		Value: sarama.ByteEncoder(payload),
		Headers: []sarama.RecordHeader{
			{Key: []byte("notification_type"), Value: []byte(notification.Type)},
			{Key: []byte("notification_id"), Value: []byte(notification.ID.String())},
		},
	}

	partition, offset, err := p.producer.SendMessage(message)
	if err != nil {
		return fmt.Errorf("failed to publish notification %s: %w", notification.ID, err)
	}

	log.Printf("Published %s notification %s (partition: %d, offset: %d)",
		notification.Type, notification.ID, partition, offset)

	return nil
}

func (p *kafkaNotificationProducer) HealthCheck(ctx context.Context) error {
	if p.producer == nil {
		return fmt.Errorf("producer is not initialized")
	}
	return nil
}

func (p *kafkaNotificationProducer) Close() error {
	if p.producer != nil {
		return p.producer.Close()
	}
	return nil
}
