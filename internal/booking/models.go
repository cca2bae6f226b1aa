package booking

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Booking is a settled purchase. Sessions never reach this table; only
// completed payments do.
type Booking struct {
	ID              uuid.UUID     `gorm:"type:uuid;default:gen_random_uuid();primaryKey"`
	Folio           string        `gorm:"uniqueIndex;not null"`
	UserID          uuid.UUID     `gorm:"type:uuid;not null;index"`
	RouteID         uuid.UUID     `gorm:"type:uuid;not null"`
	Origin          string        `gorm:"not null"`
	Destination     string        `gorm:"not null"`
	DepartureTime   string        `gorm:"not null"`
	ArrivalTime     string        `gorm:"not null"`
	ServiceType     string        `gorm:"not null"`
	TravelDate      string
	Email           string        `gorm:"not null"`
	SubtotalCents   int64         `gorm:"not null"`
	TaxCents        int64         `gorm:"not null"`
	AssistanceCents int64         `gorm:"not null"`
	TotalCents      int64         `gorm:"not null"`
	PaymentMethod   string        `gorm:"not null"`
	PaymentAuthCode string
	Status          BookingStatus `gorm:"type:varchar(20);not null;default:'CONFIRMED'"`
	Passengers      []Passenger   `gorm:"foreignKey:BookingID"`
	CreatedAt       time.Time
	UpdatedAt       time.Time
	DeletedAt       gorm.DeletedAt `gorm:"index"`
}

func (Booking) TableName() string {
	return "bookings"
}

// Passenger is one seated traveler on a booking
type Passenger struct {
	ID         uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey"`
	BookingID  uuid.UUID `gorm:"type:uuid;not null;index"`
	Name       string    `gorm:"not null"`
	LastName   string    `gorm:"not null"`
	SeatNumber int       `gorm:"not null"`
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

func (Passenger) TableName() string {
	return "booking_passengers"
}
