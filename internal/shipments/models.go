package shipments

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Shipment is a registered parcel shipping guide.
type Shipment struct {
	ID             uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey"`
	TrackingNumber string    `gorm:"uniqueIndex;not null"`
	UserID         uuid.UUID `gorm:"type:uuid;not null;index"`
	Origin         string    `gorm:"not null"`
	Destination    string    `gorm:"not null"`

	// ShipDate and EstimatedDelivery are calendar dates (2006-01-02).
	ShipDate          string `gorm:"not null"`
	EstimatedDelivery string `gorm:"not null"`

	WeightKg   float64 `gorm:"not null"`
	PriceCents int64   `gorm:"not null"`

	SenderName     string `gorm:"not null"`
	SenderPhone    string
	SenderEmail    string `gorm:"not null"`
	RecipientName  string `gorm:"not null"`
	RecipientPhone string
	RecipientEmail string

	CreatedAt time.Time
	UpdatedAt time.Time
	DeletedAt gorm.DeletedAt `gorm:"index"`
}

func (Shipment) TableName() string {
	return "shipments"
}

// Price returns the guide price in currency units.
func (s *Shipment) Price() float64 {
	return float64(s.PriceCents) / 100
}
