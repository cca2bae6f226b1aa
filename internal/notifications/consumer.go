package notifications

import (
	"context"
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/IBM/sarama"
)

// NotificationConsumer drains the notification topic and hands each
// message to the email service.
type NotificationConsumer interface {
	StartConsumers(ctx context.Context, workers int) error
	Stop() error
	HealthCheck(ctx context.Context) error
}

// ConsumerConfig holds consumer group tuning.
type ConsumerConfig struct {
	Brokers          []string
	Topics           []string
	GroupID          string
	SessionTimeout   time.Duration
	HeartbeatTimeout time.Duration
}

func DefaultConsumerConfig() *ConsumerConfig {
	return &ConsumerConfig{
		Brokers:          []string{"localhost:9092"},
		Topics:           []string{"ticket-notifications"},
		GroupID:          "transroute-notifications",
		SessionTimeout:   30 * time.Second,
		HeartbeatTimeout: 3 * time.Second,
	}
}

type kafkaNotificationConsumer struct {
	group  sarama.ConsumerGroup
	config *ConsumerConfig
	emails EmailService

	cancel  context.CancelFunc
	wg      sync.WaitGroup
	mu      sync.Mutex
	running bool
}

// NewKafkaNotificationConsumer joins the consumer group for the
// notification topic.
func NewKafkaNotificationConsumer(config *ConsumerConfig, emails EmailService) (NotificationConsumer, error) {
	if config == nil {
		config = DefaultConsumerConfig()
	}

	saramaConfig := sarama.NewConfig()
	saramaConfig.Consumer.Group.Session.Timeout = config.SessionTimeout
	saramaConfig.Consumer.Group.Heartbeat.Interval = config.HeartbeatTimeout
	saramaConfig.Consumer.Offsets.Initial = sarama.OffsetNewest
	saramaConfig.Consumer.Offsets.AutoCommit.Enable = true
	saramaConfig.Consumer.Return.Errors = true

	group, err := sarama.NewConsumerGroup(config.Brokers, config.GroupID, saramaConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to create consumer group: %w", err)
	}

	return &kafkaNotificationConsumer{
		group:  group,
		config: config,
		emails: emails,
	}, nil
}

func (c *kafkaNotificationConsumer) StartConsumers(ctx context.Context, workers int) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.running {
		return fmt.Errorf("consumer is already running")
	}
	if workers <= 0 {
		workers = 1
	}

	runCtx, cancel := context.WithCancel(ctx)
	c.cancel = cancel
	c.running = true

	handler := &notificationHandler{emails: c.emails}

	for i := 0; i < workers; i++ {
		c.wg.Add(1)
		go func(worker int) {
			defer c.wg.Done()
			for {
				// Consume blocks until a rebalance or error, then
				// must be called again.
				if err := c.group.Consume(runCtx, c.config.Topics, handler); err != nil {
					log.Printf("Notification consumer %d error: %v", worker, err)
				}
				if runCtx.Err() != nil {
					return
				}
			}
		}(i)
	}

	log.Printf("Notification consumers started (workers: %d, group: %s)", workers, c.config.GroupID)
	return nil
}

func (c *kafkaNotificationConsumer) Stop() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.running {
		return nil
	}

	c.cancel()
	c.wg.Wait()
	c.running = false

	return c.group.Close()
}

func (c *kafkaNotificationConsumer) HealthCheck(ctx context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.running {
		return fmt.Errorf("consumer is not running")
	}
	return nil
}

// notificationHandler implements sarama.ConsumerGroupHandler.
type notificationHandler struct {
	emails EmailService
}

func (h *notificationHandler) Setup(sarama.ConsumerGroupSession) error   { return nil }
func (h *notificationHandler) Cleanup(sarama.ConsumerGroupSession) error { return nil }

func (h *notificationHandler) ConsumeClaim(session sarama.ConsumerGroupSession, claim sarama.ConsumerGroupClaim) error {
	for message := range claim.Messages() {
		notification, err := NotificationFromJSON(message.Value)
		if err != nil {
			// Poison message, skip past it.
			log.Printf("Dropping undecodable notification at offset %d: %v", message.Offset, err)
			session.MarkMessage(message, "")
			continue
		}

		if err := h.emails.SendNotification(session.Context(), notification); err != nil {
			notification.IncrementRetry()
			if notification.CanRetry() {
				log.Printf("Failed to send notification %s (attempt %d/%d): %v",
					notification.ID, notification.RetryCount, notification.MaxRetries, err)
				// Leave unmarked so the message is redelivered.
				continue
			}
			notification.MarkFailed(err)
			log.Printf("Giving up on notification %s after %d attempts: %v",
				notification.ID, notification.RetryCount, err)
		} else {
			notification.MarkSent()
		}

		session.MarkMessage(message, "")
	}
	return nil
}
