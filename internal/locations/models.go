package locations

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Location is a town or city served by the bus line. Routes reference
// locations by name, so deletion is always a soft delete.
type Location struct {
	ID        uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey"`
	Name      string    `gorm:"uniqueIndex;not null"`
	Active    bool      `gorm:"default:true"`
	CreatedAt time.Time
	UpdatedAt time.Time
	DeletedAt gorm.DeletedAt `gorm:"index"`
}

func (Location) TableName() string {
	return "locations"
}
