package routes

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ServiceType classifies a route's service level. The stored value is
// authoritative; presentation layers must not re-derive it from price
// or duration.
type ServiceType string

const (
	ServiceOrdinario ServiceType = "Ordinario"
	ServiceRapido    ServiceType = "Rápido"
	ServiceDirecto   ServiceType = "Directo"
)

func IsValidServiceType(s string) bool {
	switch ServiceType(s) {
	case ServiceOrdinario, ServiceRapido, ServiceDirecto:
		return true
	}
	return false
}

// Route is a scheduled bus run between two locations. Times are local
// wall-clock values in "15:04" form; PriceCents keeps money integral.
type Route struct {
	ID            uuid.UUID   `gorm:"type:uuid;default:gen_random_uuid();primaryKey"`
	Origin        string      `gorm:"not null;index:idx_routes_search"`
	Destination   string      `gorm:"not null;index:idx_routes_search"`
	DepartureTime string      `gorm:"not null"`
	ArrivalTime   string      `gorm:"not null"`
	PriceCents    int64       `gorm:"not null"`
	ServiceType   ServiceType `gorm:"type:varchar(20);not null;default:'Ordinario'"`
	Active        bool        `gorm:"default:true"`
	CreatedAt     time.Time
	UpdatedAt     time.Time
	DeletedAt     gorm.DeletedAt `gorm:"index"`
}

func (Route) TableName() string {
	return "routes"
}
