package notifications

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// NotificationType identifies what kind of email a message carries.
type NotificationType string

const (
	NotificationTicketIssued       NotificationType = "TICKET_ISSUED"
	NotificationPaymentDeclined    NotificationType = "PAYMENT_DECLINED"
	NotificationShipmentRegistered NotificationType = "SHIPMENT_REGISTERED"
)

// NotificationStatus tracks delivery lifecycle for a queued message.
type NotificationStatus string

const (
	StatusQueued  NotificationStatus = "QUEUED"
	StatusSending NotificationStatus = "SENDING"
	StatusSent    NotificationStatus = "SENT"
	StatusFailed  NotificationStatus = "FAILED"
)

// EmailNotification is the message published to Kafka and consumed by
// the email workers.
type EmailNotification struct {
	ID             uuid.UUID          `json:"id"`
	Type           NotificationType   `json:"type"`
	RecipientID    string             `json:"recipient_id"`
	RecipientEmail string             `json:"recipient_email"`
	RecipientName  string             `json:"recipient_name"`
	Subject        string             `json:"subject"`
	Status         NotificationStatus `json:"status"`
	RetryCount     int                `json:"retry_count"`
	MaxRetries     int                `json:"max_retries"`

	// Data carries template fields: folio, route, totals, tracking
	// number and so on, depending on Type.
	Data map[string]interface{} `json:"data"`

	CreatedAt time.Time  `json:"created_at"`
	SentAt    *time.Time `json:"sent_at,omitempty"`
	LastError string     `json:"last_error,omitempty"`
}

// GetPartitionKey keeps all of a recipient's notifications on one
// partition so they are delivered in order.
func (n *EmailNotification) GetPartitionKey() string {
	return n.RecipientID
}

func (n *EmailNotification) ToJSON() ([]byte, error) {
	return json.Marshal(n)
}

func NotificationFromJSON(data []byte) (*EmailNotification, error) {
	var n EmailNotification
	if err := json.Unmarshal(data, &n); err != nil {
		return nil, fmt.Errorf("failed to decode notification: %w", err)
	}
	return &n, nil
}

func (n *EmailNotification) MarkSent() {
	now := time.Now()
	n.Status = StatusSent
	n.SentAt = &now
}

func (n *EmailNotification) MarkFailed(err error) {
	n.Status = StatusFailed
	if err != nil {
		n.LastError = err.Error()
	}
}

func (n *EmailNotification) IncrementRetry() {
	n.RetryCount++
}

func (n *EmailNotification) CanRetry() bool {
	return n.RetryCount < n.MaxRetries
}

// NotificationBuilder assembles an EmailNotification step by step.
type NotificationBuilder struct {
	notification *EmailNotification
}

func NewNotificationBuilder(notificationType NotificationType) *NotificationBuilder {
	return &NotificationBuilder{
		notification: &EmailNotification{
			ID:         uuid.New(),
			Type:       notificationType,
			Status:     StatusQueued,
			MaxRetries: 3,
			Data:       make(map[string]interface{}),
			CreatedAt:  time.Now(),
		},
	}
}

func (b *NotificationBuilder) WithRecipient(id, email, name string) *NotificationBuilder {
	b.notification.RecipientID = id
	b.notification.RecipientEmail = email
	b.notification.RecipientName = name
	return b
}

func (b *NotificationBuilder) WithSubject(subject string) *NotificationBuilder {
	b.notification.Subject = subject
	return b
}

func (b *NotificationBuilder) WithData(key string, value interface{}) *NotificationBuilder {
	b.notification.Data[key] = value
	return b
}

func (b *NotificationBuilder) Build() (*EmailNotification, error) {
	if b.notification.RecipientEmail == "" {
		return nil, fmt.Errorf("recipient email is required")
	}
	if b.notification.Subject == "" {
		return nil, fmt.Errorf("subject is required")
	}
	return b.notification, nil
}
