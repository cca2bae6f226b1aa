package notifications

import (
	"context"
	"fmt"
	"log"
	"sync"

	"transroute/internal/shared/config"
)

// Service owns the notification pipeline: it publishes messages to
// Kafka and runs the consumer workers that drain them into SMTP.
type Service interface {
	Publish(ctx context.Context, notification *EmailNotification) error

	SendShipmentRegistered(ctx context.Context, recipientID, email, name string, data map[string]interface{}) error

	Start(ctx context.Context) error
	Stop() error
	HealthCheck(ctx context.Context) error
}

const defaultConsumerWorkers = 3

type service struct {
	producer NotificationProducer
	consumer NotificationConsumer
	workers  int

	mu      sync.Mutex
	running bool
}

// NewService wires the producer, consumer group and SMTP sender from
// application config. When Kafka is disabled it returns a no-op
// implementation so callers never need to branch.
func NewService(cfg *config.Config) (Service, error) {
	if !cfg.Kafka.Enabled {
		log.Printf("Notifications disabled (KAFKA_ENABLED=false)")
		return &noopService{}, nil
	}

	emails, err := NewSMTPEmailService(cfg.Email)
	if err != nil {
		return nil, fmt.Errorf("failed to create email service: %w", err)
	}

	producerConfig := DefaultKafkaProducerConfig()
	producerConfig.Brokers = cfg.Kafka.Brokers
	producerConfig.NotificationTopic = cfg.Kafka.NotificationTopic

	producer, err := NewKafkaNotificationProducer(producerConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to create notification producer: %w", err)
	}

	consumerConfig := DefaultConsumerConfig()
	consumerConfig.Brokers = cfg.Kafka.Brokers
	consumerConfig.Topics = []string{cfg.Kafka.NotificationTopic}
	consumerConfig.GroupID = cfg.Kafka.ConsumerGroup

	consumer, err := NewKafkaNotificationConsumer(consumerConfig, emails)
	if err != nil {
		producer.Close()
		return nil, fmt.Errorf("failed to create notification consumer: %w", err)
	}

	return &service{
		producer: producer,
		consumer: consumer,
		workers:  defaultConsumerWorkers,
	}, nil
}

func (s *service) Publish(ctx context.Context, notification *EmailNotification) error {
	return s.producer.PublishNotification(ctx, notification)
}

func (s *service) SendShipmentRegistered(ctx context.Context, recipientID, email, name string, data map[string]interface{}) error {
	builder := NewNotificationBuilder(NotificationShipmentRegistered).
		WithRecipient(recipientID, email, name).
		WithSubject("Tu envío ha sido registrado - Adelas Autotransportes")
	for k, v := range data {
		builder.WithData(k, v)
	}

	notification, err := builder.Build()
	if err != nil {
		return fmt.Errorf("failed to build shipment notification: %w", err)
	}
	return s.Publish(ctx, notification)
}

func (s *service) Start(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.running {
		return fmt.Errorf("notification service is already running")
	}
	if err := s.consumer.StartConsumers(ctx, s.workers); err != nil {
		return fmt.Errorf("failed to start consumers: %w", err)
	}

	s.running = true
	log.Printf("Notification service started")
	return nil
}

func (s *service) Stop() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.running {
		return nil
	}

	if err := s.consumer.Stop(); err != nil {
		log.Printf("Error stopping notification consumer: %v", err)
	}
	if err := s.producer.Close(); err != nil {
		log.Printf("Error closing notification producer: %v", err)
	}

	s.running = false
	log.Printf("Notification service stopped")
	return nil
}

func (s *service) HealthCheck(ctx context.Context) error {
	if err := s.producer.HealthCheck(ctx); err != nil {
		return fmt.Errorf("producer health check failed: %w", err)
	}
	return s.consumer.HealthCheck(ctx)
}

// noopService swallows notifications when the pipeline is disabled.
type noopService struct{}

func (noopService) Publish(context.Context, *EmailNotification) error { return nil }
func (noopService) SendShipmentRegistered(context.Context, string, string, string, map[string]interface{}) error {
	return nil
}
func (noopService) Start(context.Context) error       { return nil }
func (noopService) Stop() error                       { return nil }
func (noopService) HealthCheck(context.Context) error { return nil }
